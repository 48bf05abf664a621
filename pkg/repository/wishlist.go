package repository

import (
	"context"

	"gorm.io/gorm/clause"

	"droscher.com/TableScout/pkg/model"
)

type WishlistRepository interface {
	AddWishlist(ctx context.Context, userID uint, restaurantID uint) error
	RemoveWishlist(ctx context.Context, userID uint, restaurantID uint) error
	IsWished(ctx context.Context, userID uint, restaurantID uint) (bool, error)
}

// AddWishlist inserts the membership in a single statement; an existing pair is reported as
// ErrDuplicate and left untouched.
func (r *Repository) AddWishlist(ctx context.Context, userID uint, restaurantID uint) error {
	wishlist := model.Wishlist{UserID: userID, RestaurantID: restaurantID}

	result := r.DB.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&wishlist)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrDuplicate
	}

	return nil
}

func (r *Repository) RemoveWishlist(ctx context.Context, userID uint, restaurantID uint) error {
	result := r.DB.WithContext(ctx).
		Where("user_id = ? AND restaurant_id = ?", userID, restaurantID).
		Delete(&model.Wishlist{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *Repository) IsWished(ctx context.Context, userID uint, restaurantID uint) (bool, error) {
	var count int64

	result := r.DB.WithContext(ctx).Model(&model.Wishlist{}).
		Where("user_id = ? AND restaurant_id = ?", userID, restaurantID).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}

	return count > 0, nil
}
