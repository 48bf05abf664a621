package repository

import (
	"context"
	"time"

	"go.uber.org/zap"

	"droscher.com/TableScout/pkg/model"
)

type ReviewRepository interface {
	ListReviews(ctx context.Context, filter ReviewFilter) ([]*model.Review, error)
	CountReviewsByUsers(ctx context.Context, userIDs []uint) (map[uint]int64, error)
	AddReview(ctx context.Context, review model.Review) (*model.Review, error)
	UpdateReview(ctx context.Context, review model.Review) error
	DeleteReview(ctx context.Context, restaurantID uint, reviewID uint, userID uint) error
}

type ReviewFilter struct {
	RestaurantID uint
	RatingMin    int
	RatingMax    int
	Offset       int
	Limit        int
}

func (r *Repository) ListReviews(ctx context.Context, filter ReviewFilter) ([]*model.Review, error) {
	var reviews []*model.Review

	result := r.DB.WithContext(ctx).
		Joins("User").
		Where("reviews.restaurant_id = ?", filter.RestaurantID).
		Where("reviews.rating BETWEEN ? AND ?", filter.RatingMin, filter.RatingMax).
		Order("reviews.created_at DESC, reviews.id DESC").
		Offset(filter.Offset).
		Limit(filter.Limit).
		Find(&reviews)
	if result.Error != nil {
		r.Logger.Error("error listing reviews", zap.Uint("restaurant_id", filter.RestaurantID), zap.Error(result.Error))

		return nil, result.Error
	}

	return reviews, nil
}

// CountReviewsByUsers returns the number of live reviews each user has written across all
// restaurants. Users without reviews are absent from the map.
func (r *Repository) CountReviewsByUsers(ctx context.Context, userIDs []uint) (map[uint]int64, error) {
	counts := make(map[uint]int64, len(userIDs))
	if len(userIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		UserID      uint
		ReviewCount int64
	}

	result := r.DB.WithContext(ctx).Table("reviews").
		Select("user_id, count(*) as review_count").
		Where("user_id IN ?", userIDs).
		Where("deleted_at is null").
		Group("user_id").
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	for _, row := range rows {
		counts[row.UserID] = row.ReviewCount
	}

	return counts, nil
}

func (r *Repository) AddReview(ctx context.Context, review model.Review) (*model.Review, error) {
	if result := r.DB.WithContext(ctx).Create(&review); result.Error != nil {
		return nil, result.Error
	}

	return &review, nil
}

// UpdateReview rewrites content and rating of a review owned by review.UserID in
// review.RestaurantID. ErrNotFound covers both a missing review and one owned by someone else.
func (r *Repository) UpdateReview(ctx context.Context, review model.Review) error {
	result := r.DB.WithContext(ctx).Model(&model.Review{}).
		Where("id = ? AND user_id = ? AND restaurant_id = ?", review.ID, review.UserID, review.RestaurantID).
		Updates(map[string]interface{}{
			"content":    review.Content,
			"rating":     review.Rating,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *Repository) DeleteReview(ctx context.Context, restaurantID uint, reviewID uint, userID uint) error {
	result := r.DB.WithContext(ctx).
		Where("id = ? AND user_id = ? AND restaurant_id = ?", reviewID, userID, restaurantID).
		Delete(&model.Review{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
