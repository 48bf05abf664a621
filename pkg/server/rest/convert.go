package rest

import (
	"math"
	"time"

	"go.openly.dev/pointy"

	"droscher.com/TableScout/pkg/model"
)

type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type RestaurantSummary struct {
	ID            uint       `json:"id"`
	Name          string     `json:"name"`
	Address       string     `json:"address"`
	PhoneNumber   string     `json:"phone_number"`
	Coordinate    Coordinate `json:"coordinate"`
	OpenTime      string     `json:"open_time"`
	SubCategory   string     `json:"sub_category"`
	Category      string     `json:"category"`
	Image         string     `json:"image"`
	AverageRating *float64   `json:"average_rating"`
	ReviewCount   int64      `json:"review_count"`
}

type PopularRestaurant struct {
	RestaurantID   uint     `json:"restaurant_id"`
	RestaurantName string   `json:"restaurant_name"`
	SubCategory    string   `json:"sub_category"`
	Category       string   `json:"category"`
	Address        string   `json:"address"`
	Rating         *float64 `json:"rating"`
	Image          string   `json:"image"`
}

type ReviewCount struct {
	Total       int64 `json:"total"`
	RatingOne   int64 `json:"rating_one"`
	RatingTwo   int64 `json:"rating_two"`
	RatingThree int64 `json:"rating_three"`
	RatingFour  int64 `json:"rating_four"`
	RatingFive  int64 `json:"rating_five"`
}

type RestaurantDetail struct {
	ID            uint        `json:"id"`
	SubCategory   string      `json:"sub_category"`
	Name          string      `json:"name"`
	Address       string      `json:"address"`
	PhoneNumber   string      `json:"phone_number"`
	Coordinate    Coordinate  `json:"coordinate"`
	OpenTime      string      `json:"open_time"`
	UpdatedAt     time.Time   `json:"updated_at"`
	IsWished      bool        `json:"is_wished"`
	ReviewCount   ReviewCount `json:"review_count"`
	AverageRating *float64    `json:"average_rating"`
	AveragePrice  *float64    `json:"average_price"`
}

type Food struct {
	ID     uint     `json:"id"`
	Name   string   `json:"name"`
	Price  float64  `json:"price"`
	Images []string `json:"images"`
}

type ReviewAuthor struct {
	ID           uint   `json:"id"`
	Nickname     string `json:"nickname"`
	ProfileImage string `json:"profile_image"`
	ReviewCount  int64  `json:"review_count"`
}

type Review struct {
	ID        uint          `json:"id"`
	User      *ReviewAuthor `json:"user,omitempty"`
	Content   string        `json:"content"`
	Rating    int           `json:"rating"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

type SubCategory struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
}

func RestaurantSummariesFromModel(restaurants []*model.RestaurantSummary) []RestaurantSummary {
	summaries := make([]RestaurantSummary, 0, len(restaurants))

	for _, restaurant := range restaurants {
		summaries = append(summaries, RestaurantSummary{
			ID:            restaurant.ID,
			Name:          restaurant.Name,
			Address:       restaurant.Address,
			PhoneNumber:   restaurant.PhoneNumber,
			Coordinate:    coordinateFromModel(restaurant.Coordinate),
			OpenTime:      restaurant.OpenTime,
			SubCategory:   restaurant.SubCategoryName,
			Category:      restaurant.CategoryName,
			Image:         restaurant.Image,
			AverageRating: restaurant.AverageRating,
			ReviewCount:   restaurant.ReviewCount,
		})
	}

	return summaries
}

func PopularRestaurantsFromModel(restaurants []*model.RestaurantSummary) []PopularRestaurant {
	popular := make([]PopularRestaurant, 0, len(restaurants))

	for _, restaurant := range restaurants {
		popular = append(popular, PopularRestaurant{
			RestaurantID:   restaurant.ID,
			RestaurantName: restaurant.Name,
			SubCategory:    restaurant.SubCategoryName,
			Category:       restaurant.CategoryName,
			Address:        restaurant.Address,
			Rating:         roundRating(restaurant.AverageRating),
			Image:          restaurant.Image,
		})
	}

	return popular
}

func RestaurantDetailFromModel(detail *model.RestaurantDetail) RestaurantDetail {
	restaurant := detail.Restaurant
	stats := detail.ReviewStats

	return RestaurantDetail{
		ID:          restaurant.ID,
		SubCategory: restaurant.SubCategory.Name,
		Name:        restaurant.Name,
		Address:     restaurant.Address,
		PhoneNumber: restaurant.PhoneNumber,
		Coordinate:  coordinateFromModel(restaurant.Coordinate),
		OpenTime:    restaurant.OpenTime,
		UpdatedAt:   restaurant.UpdatedAt,
		IsWished:    detail.IsWished,
		ReviewCount: ReviewCount{
			Total:       stats.Total,
			RatingOne:   stats.RatingOne,
			RatingTwo:   stats.RatingTwo,
			RatingThree: stats.RatingThree,
			RatingFour:  stats.RatingFour,
			RatingFive:  stats.RatingFive,
		},
		AverageRating: stats.AverageRating,
		AveragePrice:  detail.AveragePrice,
	}
}

func FoodsFromModel(foods []*model.Food) []Food {
	result := make([]Food, 0, len(foods))

	for _, food := range foods {
		images := make([]string, 0, len(food.Images))
		for _, image := range food.Images {
			images = append(images, image.ImageURL)
		}

		result = append(result, Food{ID: food.ID, Name: food.Name, Price: food.Price, Images: images})
	}

	return result
}

func ReviewsFromModel(reviews []*model.ReviewWithAuthor) []Review {
	result := make([]Review, 0, len(reviews))

	for _, review := range reviews {
		view := ReviewFromModel(review.Review)
		view.User = &ReviewAuthor{
			ID:           review.Review.User.ID,
			Nickname:     review.Review.User.Nickname,
			ProfileImage: review.Review.User.ProfileURL,
			ReviewCount:  review.AuthorReviewCount,
		}

		result = append(result, view)
	}

	return result
}

func ReviewFromModel(review *model.Review) Review {
	return Review{
		ID:        review.ID,
		Content:   review.Content,
		Rating:    review.Rating,
		CreatedAt: review.CreatedAt,
		UpdatedAt: review.UpdatedAt,
	}
}

func SubCategoriesFromModel(covers []*model.SubCategoryCover) []SubCategory {
	result := make([]SubCategory, 0, len(covers))

	for _, cover := range covers {
		result = append(result, SubCategory{ID: cover.ID, Name: cover.Name, Image: cover.Image})
	}

	return result
}

func coordinateFromModel(coordinate model.Coordinate) Coordinate {
	return Coordinate{Latitude: coordinate.Latitude, Longitude: coordinate.Longitude}
}

// roundRating keeps one decimal place.
func roundRating(rating *float64) *float64 {
	if rating == nil {
		return nil
	}

	return pointy.Float64(math.Round(*rating*10) / 10) //nolint:mnd // one decimal place
}
