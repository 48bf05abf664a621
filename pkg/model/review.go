package model

import "gorm.io/gorm"

const (
	MinimumRating = 1
	MaximumRating = 5
)

type Review struct {
	gorm.Model
	Content      string `gorm:"type:text;not null"`
	Rating       int    `gorm:"not null;check:chk_reviews_rating,rating >= 1 AND rating <= 5"`
	UserID       uint   `gorm:"index"`
	RestaurantID uint   `gorm:"index"`

	User       User       `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Restaurant Restaurant `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

// ReviewStats is the rating histogram of a restaurant. AverageRating is nil when there
// are no reviews.
type ReviewStats struct {
	Total         int64
	RatingOne     int64
	RatingTwo     int64
	RatingThree   int64
	RatingFour    int64
	RatingFive    int64
	AverageRating *float64
}

type ReviewWithAuthor struct {
	Review            *Review
	AuthorReviewCount int64
}

func ValidRating(rating int) bool {
	return rating >= MinimumRating && rating <= MaximumRating
}
