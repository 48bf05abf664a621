package server

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"droscher.com/TableScout/configs"
	"droscher.com/TableScout/pkg/model"
	"droscher.com/TableScout/pkg/repository"
)

type RestaurantServer struct {
	logger               *zap.Logger
	listing              configs.Listing
	restaurantRepository repository.RestaurantRepository
	wishlistRepository   wishlistChecker
}

type wishlistChecker interface {
	IsWished(ctx context.Context, userID uint, restaurantID uint) (bool, error)
}

type ListRestaurantsRequest struct {
	Keyword       string
	SubCategories []string
	Sort          string
	Offset        int
	Limit         int
}

// popularFilters maps the "filtering" parameter of the popular listing onto sort keys.
var popularFilters = map[string]repository.SortKey{
	"average_rating": repository.SortByRating,
}

func NewRestaurantServer(restaurantRepo repository.RestaurantRepository, wishlistRepo wishlistChecker, logger *zap.Logger, conf *configs.Config) *RestaurantServer {
	return &RestaurantServer{
		logger:               logger,
		listing:              conf.Listing,
		restaurantRepository: restaurantRepo,
		wishlistRepository:   wishlistRepo,
	}
}

func (s *RestaurantServer) ListRestaurants(ctx context.Context, request ListRestaurantsRequest) ([]*model.RestaurantSummary, error) {
	sortKey, err := repository.ParseSortKey(request.Sort)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSortKey, request.Sort)
	}

	if err := validateWindow(request.Offset, request.Limit, s.listing.MaxLimit); err != nil {
		return nil, err
	}

	return s.listRestaurants(ctx, repository.RestaurantFilter{
		Keyword:       request.Keyword,
		SubCategories: request.SubCategories,
		Sort:          sortKey,
		Offset:        request.Offset,
		Limit:         request.Limit,
	})
}

func (s *RestaurantServer) PopularRestaurants(ctx context.Context, filtering string) ([]*model.RestaurantSummary, error) {
	sortKey, ok := popularFilters[filtering]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSortKey, filtering)
	}

	restaurants, err := s.listRestaurants(ctx, repository.RestaurantFilter{Sort: sortKey, Limit: s.listing.PopularLimit})
	if err != nil {
		return nil, err
	}

	if len(restaurants) == 0 {
		return nil, ErrRestaurantNotFound
	}

	return restaurants, nil
}

// ListWishlist lists the restaurants the user has wished for, best rated first.
func (s *RestaurantServer) ListWishlist(ctx context.Context, userID uint, offset int, limit int) ([]*model.RestaurantSummary, error) {
	if err := validateWindow(offset, limit, s.listing.MaxLimit); err != nil {
		return nil, err
	}

	return s.listRestaurants(ctx, repository.RestaurantFilter{
		WishedBy: &userID,
		Sort:     repository.SortByRating,
		Offset:   offset,
		Limit:    limit,
	})
}

func (s *RestaurantServer) listRestaurants(ctx context.Context, filter repository.RestaurantFilter) ([]*model.RestaurantSummary, error) {
	restaurants, err := s.restaurantRepository.ListRestaurants(ctx, filter)
	if err != nil {
		return nil, err
	}

	if err := s.attachImages(ctx, restaurants); err != nil {
		return nil, err
	}

	return restaurants, nil
}

func (s *RestaurantServer) attachImages(ctx context.Context, restaurants []*model.RestaurantSummary) error {
	if len(restaurants) == 0 {
		return nil
	}

	ids := make([]uint, 0, len(restaurants))
	for _, restaurant := range restaurants {
		ids = append(ids, restaurant.ID)
	}

	foods, err := s.restaurantRepository.GetFoodsByRestaurant(ctx, ids)
	if err != nil {
		return err
	}

	for _, restaurant := range restaurants {
		image, err := model.RepresentativeImage(foods[restaurant.ID])
		if err != nil {
			s.logger.Error("restaurant has no food image", zap.Uint("restaurant_id", restaurant.ID))

			return fmt.Errorf("%w: restaurant %d", err, restaurant.ID)
		}

		restaurant.Image = image
	}

	return nil
}

func (s *RestaurantServer) GetRestaurantDetail(ctx context.Context, restaurantID uint, currentUser *model.User) (*model.RestaurantDetail, error) {
	restaurant, err := s.restaurantRepository.GetRestaurantByID(ctx, restaurantID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrRestaurantNotFound, restaurantID)
		}

		return nil, err
	}

	stats, err := s.restaurantRepository.GetReviewStats(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	averagePrice, err := s.restaurantRepository.GetAveragePrice(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	detail := model.RestaurantDetail{
		Restaurant:   *restaurant,
		ReviewStats:  *stats,
		AveragePrice: averagePrice,
	}

	if currentUser != nil {
		detail.IsWished, err = s.wishlistRepository.IsWished(ctx, currentUser.ID, restaurantID)
		if err != nil {
			return nil, err
		}
	}

	return &detail, nil
}

func (s *RestaurantServer) ListFoods(ctx context.Context, restaurantID uint) ([]*model.Food, error) {
	exists, err := s.restaurantRepository.RestaurantExists(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	if !exists {
		return nil, fmt.Errorf("%w: id %d", ErrRestaurantNotFound, restaurantID)
	}

	foods, err := s.restaurantRepository.GetFoodsByRestaurant(ctx, []uint{restaurantID})
	if err != nil {
		return nil, err
	}

	if foods[restaurantID] == nil {
		return []*model.Food{}, nil
	}

	return foods[restaurantID], nil
}
