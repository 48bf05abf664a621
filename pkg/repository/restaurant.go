package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"droscher.com/TableScout/pkg/model"
)

type RestaurantRepository interface {
	ListRestaurants(ctx context.Context, filter RestaurantFilter) ([]*model.RestaurantSummary, error)
	GetRestaurantByID(ctx context.Context, restaurantID uint) (*model.Restaurant, error)
	RestaurantExists(ctx context.Context, restaurantID uint) (bool, error)
	GetReviewStats(ctx context.Context, restaurantID uint) (*model.ReviewStats, error)
	GetAveragePrice(ctx context.Context, restaurantID uint) (*float64, error)
	GetFoodsByRestaurant(ctx context.Context, restaurantIDs []uint) (map[uint][]*model.Food, error)
}

type RestaurantFilter struct {
	Keyword       string
	SubCategories []string
	WishedBy      *uint
	Sort          SortKey
	Offset        int
	Limit         int
}

const hasFoodImage = `EXISTS (SELECT 1 FROM foods` +
	` INNER JOIN images ON images.food_id = foods.id AND images.deleted_at IS NULL AND images.image_url <> ''` +
	` WHERE foods.restaurant_id = restaurants.id AND foods.deleted_at IS NULL)`

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func contains(value string) string {
	return "%" + likeEscaper.Replace(value) + "%"
}

func (r *Repository) ListRestaurants(ctx context.Context, filter RestaurantFilter) ([]*model.RestaurantSummary, error) {
	var restaurants []*model.RestaurantSummary

	query := r.DB.WithContext(ctx).Table("restaurants").
		Select("restaurants.id, restaurants.name, restaurants.address, restaurants.phone_number, "+
			"restaurants.coordinate_latitude, restaurants.coordinate_longitude, restaurants.open_time, "+
			"sub_categories.name as sub_category_name, "+
			"categories.name as category_name, "+
			"avg(reviews.rating) as average_rating, "+
			"count(reviews.id) as review_count").
		Joins("INNER JOIN sub_categories on sub_categories.id = restaurants.sub_category_id").
		Joins("INNER JOIN categories on categories.id = sub_categories.category_id").
		Joins("LEFT JOIN reviews on reviews.restaurant_id = restaurants.id AND reviews.deleted_at is null").
		Where("restaurants.deleted_at is null").
		Where(hasFoodImage)

	query = applyRestaurantFilter(filter, query)

	result := query.
		Group("restaurants.id, sub_categories.name, categories.name").
		Order(filter.Sort.orderBy()).
		Offset(filter.Offset).
		Limit(filter.Limit).
		Scan(&restaurants)
	if result.Error != nil {
		return nil, result.Error
	}

	return restaurants, nil
}

func applyRestaurantFilter(filter RestaurantFilter, query *gorm.DB) *gorm.DB {
	if filter.Keyword != "" {
		query = query.Where("restaurants.name LIKE ? OR sub_categories.name = ? OR categories.name = ?",
			contains(filter.Keyword), filter.Keyword, filter.Keyword)
	}

	if len(filter.SubCategories) > 0 {
		conditions := make([]string, 0, len(filter.SubCategories))
		args := make([]interface{}, 0, len(filter.SubCategories))

		for _, name := range filter.SubCategories {
			conditions = append(conditions, "sub_categories.name LIKE ?")
			args = append(args, contains(name))
		}

		query = query.Where(strings.Join(conditions, " OR "), args...)
	}

	if filter.WishedBy != nil {
		query = query.Where("restaurants.id IN (SELECT restaurant_id FROM wishlists WHERE user_id = ?)", *filter.WishedBy)
	}

	return query
}

func (r *Repository) GetRestaurantByID(ctx context.Context, restaurantID uint) (*model.Restaurant, error) {
	var restaurant model.Restaurant

	result := r.DB.WithContext(ctx).
		Joins("SubCategory").
		First(&restaurant, restaurantID)
	if result.Error != nil {
		return nil, notFound(result.Error)
	}

	return &restaurant, nil
}

func (r *Repository) RestaurantExists(ctx context.Context, restaurantID uint) (bool, error) {
	var count int64

	result := r.DB.WithContext(ctx).Model(&model.Restaurant{}).Where("id = ?", restaurantID).Count(&count)
	if result.Error != nil {
		return false, result.Error
	}

	return count > 0, nil
}

func (r *Repository) GetReviewStats(ctx context.Context, restaurantID uint) (*model.ReviewStats, error) {
	var stats model.ReviewStats

	result := r.DB.WithContext(ctx).Table("reviews").
		Select("count(*) as total, "+
			"count(case when rating = 1 then 1 end) as rating_one, "+
			"count(case when rating = 2 then 1 end) as rating_two, "+
			"count(case when rating = 3 then 1 end) as rating_three, "+
			"count(case when rating = 4 then 1 end) as rating_four, "+
			"count(case when rating = 5 then 1 end) as rating_five, "+
			"avg(rating) as average_rating").
		Where("restaurant_id = ?", restaurantID).
		Where("deleted_at is null").
		Scan(&stats)
	if result.Error != nil {
		return nil, result.Error
	}

	return &stats, nil
}

func (r *Repository) GetAveragePrice(ctx context.Context, restaurantID uint) (*float64, error) {
	var price struct {
		AveragePrice *float64
	}

	result := r.DB.WithContext(ctx).Table("foods").
		Select("avg(price) as average_price").
		Where("restaurant_id = ?", restaurantID).
		Where("deleted_at is null").
		Scan(&price)
	if result.Error != nil {
		return nil, result.Error
	}

	return price.AveragePrice, nil
}

// GetFoodsByRestaurant loads the foods of every given restaurant with their images, both in
// id order, using one query per table.
func (r *Repository) GetFoodsByRestaurant(ctx context.Context, restaurantIDs []uint) (map[uint][]*model.Food, error) {
	foodsByRestaurant := make(map[uint][]*model.Food, len(restaurantIDs))
	if len(restaurantIDs) == 0 {
		return foodsByRestaurant, nil
	}

	var foods []*model.Food

	result := r.DB.WithContext(ctx).
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("images.id ASC") }).
		Where("restaurant_id IN ?", restaurantIDs).
		Order("foods.id ASC").
		Find(&foods)
	if result.Error != nil {
		return nil, result.Error
	}

	for _, food := range foods {
		foodsByRestaurant[food.RestaurantID] = append(foodsByRestaurant[food.RestaurantID], food)
	}

	return foodsByRestaurant, nil
}
