package server

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"droscher.com/TableScout/pkg/repository"
)

type WishlistServer struct {
	logger               *zap.Logger
	wishlistRepository   repository.WishlistRepository
	restaurantRepository restaurantChecker
}

func NewWishlistServer(wishlistRepo repository.WishlistRepository, restaurantRepo restaurantChecker, logger *zap.Logger) *WishlistServer {
	return &WishlistServer{logger: logger, wishlistRepository: wishlistRepo, restaurantRepository: restaurantRepo}
}

func (w *WishlistServer) AddWishlist(ctx context.Context, userID uint, restaurantID uint) error {
	if err := w.checkRestaurant(ctx, restaurantID); err != nil {
		return err
	}

	err := w.wishlistRepository.AddWishlist(ctx, userID, restaurantID)
	if errors.Is(err, repository.ErrDuplicate) {
		return fmt.Errorf("%w: restaurant %d is already wished", ErrAlreadyExists, restaurantID)
	}

	if err == nil {
		w.logger.Debug("wishlist added", zap.Uint("user_id", userID), zap.Uint("restaurant_id", restaurantID))
	}

	return err
}

func (w *WishlistServer) RemoveWishlist(ctx context.Context, userID uint, restaurantID uint) error {
	if err := w.checkRestaurant(ctx, restaurantID); err != nil {
		return err
	}

	err := w.wishlistRepository.RemoveWishlist(ctx, userID, restaurantID)
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("%w: restaurant %d", ErrWishlistNotFound, restaurantID)
	}

	return err
}

func (w *WishlistServer) IsWished(ctx context.Context, userID uint, restaurantID uint) (bool, error) {
	if err := w.checkRestaurant(ctx, restaurantID); err != nil {
		return false, err
	}

	return w.wishlistRepository.IsWished(ctx, userID, restaurantID)
}

func (w *WishlistServer) checkRestaurant(ctx context.Context, restaurantID uint) error {
	exists, err := w.restaurantRepository.RestaurantExists(ctx, restaurantID)
	if err != nil {
		return err
	}

	if !exists {
		return fmt.Errorf("%w: id %d", ErrRestaurantNotFound, restaurantID)
	}

	return nil
}
