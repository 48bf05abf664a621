package server

import (
	"errors"
	"fmt"

	"droscher.com/TableScout/pkg/model"
)

var (
	ErrNotFound       = errors.New("not found")
	ErrAlreadyExists  = errors.New("already exists")
	ErrMissingField   = errors.New("missing required field")
	ErrInvalidRating  = errors.New("rating must be between 1 and 5")
	ErrInvalidSortKey = errors.New("invalid sort key")
	ErrInvalidValue   = errors.New("invalid value")
	ErrMissingImage   = model.ErrMissingImage

	ErrRestaurantNotFound  = fmt.Errorf("restaurant %w", ErrNotFound)
	ErrReviewNotFound      = fmt.Errorf("review %w", ErrNotFound)
	ErrWishlistNotFound    = fmt.Errorf("wishlist entry %w", ErrNotFound)
	ErrSubCategoryNotFound = fmt.Errorf("subcategory %w", ErrNotFound)
)

func validateWindow(offset int, limit int, maxLimit int) error {
	if offset < 0 {
		return fmt.Errorf("%w: offset %d is negative", ErrInvalidValue, offset)
	}

	if limit < 1 || limit > maxLimit {
		return fmt.Errorf("%w: limit must be between 1 and %d", ErrInvalidValue, maxLimit)
	}

	return nil
}
