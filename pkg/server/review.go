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

type ReviewServer struct {
	logger               *zap.Logger
	reviews              configs.Reviews
	reviewRepository     repository.ReviewRepository
	restaurantRepository restaurantChecker
}

type restaurantChecker interface {
	RestaurantExists(ctx context.Context, restaurantID uint) (bool, error)
}

type ListReviewsRequest struct {
	RestaurantID uint
	RatingMin    int
	RatingMax    int
	Offset       int
	Limit        int
}

// ReviewInput is a review body as submitted. Nil fields were absent from the request.
type ReviewInput struct {
	Content *string
	Rating  *int
}

func NewReviewServer(reviewRepo repository.ReviewRepository, restaurantRepo restaurantChecker, logger *zap.Logger, conf *configs.Config) *ReviewServer {
	return &ReviewServer{
		logger:               logger,
		reviews:              conf.Reviews,
		reviewRepository:     reviewRepo,
		restaurantRepository: restaurantRepo,
	}
}

func (s *ReviewServer) ListReviews(ctx context.Context, request ListReviewsRequest) ([]*model.ReviewWithAuthor, error) {
	if !model.ValidRating(request.RatingMin) || !model.ValidRating(request.RatingMax) {
		return nil, fmt.Errorf("%w: rating range %d-%d", ErrInvalidValue, request.RatingMin, request.RatingMax)
	}

	if err := validateWindow(request.Offset, request.Limit, s.reviews.MaxLimit); err != nil {
		return nil, err
	}

	reviews, err := s.reviewRepository.ListReviews(ctx, repository.ReviewFilter{
		RestaurantID: request.RestaurantID,
		RatingMin:    request.RatingMin,
		RatingMax:    request.RatingMax,
		Offset:       request.Offset,
		Limit:        request.Limit,
	})
	if err != nil {
		return nil, err
	}

	authorIDs := make([]uint, 0, len(reviews))
	seen := make(map[uint]struct{}, len(reviews))

	for _, review := range reviews {
		if _, ok := seen[review.UserID]; !ok {
			seen[review.UserID] = struct{}{}
			authorIDs = append(authorIDs, review.UserID)
		}
	}

	counts, err := s.reviewRepository.CountReviewsByUsers(ctx, authorIDs)
	if err != nil {
		return nil, err
	}

	results := make([]*model.ReviewWithAuthor, 0, len(reviews))
	for _, review := range reviews {
		results = append(results, &model.ReviewWithAuthor{Review: review, AuthorReviewCount: counts[review.UserID]})
	}

	return results, nil
}

func (s *ReviewServer) CreateReview(ctx context.Context, restaurantID uint, userID uint, input ReviewInput) (*model.Review, error) {
	content, rating, err := validateReviewInput(input)
	if err != nil {
		return nil, err
	}

	exists, err := s.restaurantRepository.RestaurantExists(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	if !exists {
		return nil, fmt.Errorf("%w: id %d", ErrRestaurantNotFound, restaurantID)
	}

	review, err := s.reviewRepository.AddReview(ctx, model.Review{
		Content:      content,
		Rating:       rating,
		UserID:       userID,
		RestaurantID: restaurantID,
	})
	if err != nil {
		s.logger.Error("error adding review", zap.Uint("restaurant_id", restaurantID), zap.Uint("user_id", userID), zap.Error(err))

		return nil, err
	}

	return review, nil
}

func (s *ReviewServer) UpdateReview(ctx context.Context, restaurantID uint, reviewID uint, userID uint, input ReviewInput) error {
	content, rating, err := validateReviewInput(input)
	if err != nil {
		return err
	}

	review := model.Review{Content: content, Rating: rating, UserID: userID, RestaurantID: restaurantID}
	review.ID = reviewID

	err = s.reviewRepository.UpdateReview(ctx, review)
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("%w: id %d", ErrReviewNotFound, reviewID)
	}

	return err
}

func (s *ReviewServer) DeleteReview(ctx context.Context, restaurantID uint, reviewID uint, userID uint) error {
	err := s.reviewRepository.DeleteReview(ctx, restaurantID, reviewID, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("%w: id %d", ErrReviewNotFound, reviewID)
	}

	return err
}

func validateReviewInput(input ReviewInput) (string, int, error) {
	if input.Content == nil {
		return "", 0, fmt.Errorf("%w: content", ErrMissingField)
	}

	if input.Rating == nil {
		return "", 0, fmt.Errorf("%w: rating", ErrMissingField)
	}

	if !model.ValidRating(*input.Rating) {
		return "", 0, fmt.Errorf("%w: got %d", ErrInvalidRating, *input.Rating)
	}

	return *input.Content, *input.Rating, nil
}
