package server_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"droscher.com/TableScout/mocks"
	"droscher.com/TableScout/pkg/repository"
	"droscher.com/TableScout/pkg/server"
)

type WishlistTestSuite struct {
	suite.Suite
	wishlistRepo   *mocks.WishlistRepository
	restaurantRepo *mocks.RestaurantRepository
	service        *server.WishlistServer
}

func TestWishlistTestSuite(t *testing.T) {
	suite.Run(t, new(WishlistTestSuite))
}

func (suite *WishlistTestSuite) SetupTest() {
	suite.wishlistRepo = mocks.NewWishlistRepository(suite.T())
	suite.restaurantRepo = mocks.NewRestaurantRepository(suite.T())
	suite.service = server.NewWishlistServer(suite.wishlistRepo, suite.restaurantRepo, zap.NewNop())
}

func (suite *WishlistTestSuite) TestAddWishlist() {
	ctx := context.Background()

	suite.restaurantRepo.EXPECT().RestaurantExists(ctx, uint(3)).Return(true, nil)
	suite.wishlistRepo.EXPECT().AddWishlist(ctx, uint(7), uint(3)).Return(nil)

	suite.Require().NoError(suite.service.AddWishlist(ctx, 7, 3))
}

func (suite *WishlistTestSuite) TestAddWishlist_AlreadyWished() {
	ctx := context.Background()

	suite.restaurantRepo.EXPECT().RestaurantExists(ctx, uint(3)).Return(true, nil)
	suite.wishlistRepo.EXPECT().AddWishlist(ctx, uint(7), uint(3)).Return(repository.ErrDuplicate).Once()

	err := suite.service.AddWishlist(ctx, 7, 3)
	suite.Require().ErrorIs(err, server.ErrAlreadyExists)
}

func (suite *WishlistTestSuite) TestAddWishlist_UnknownRestaurant() {
	ctx := context.Background()

	suite.restaurantRepo.EXPECT().RestaurantExists(ctx, uint(99)).Return(false, nil)

	err := suite.service.AddWishlist(ctx, 7, 99)
	suite.Require().ErrorIs(err, server.ErrRestaurantNotFound)
	suite.wishlistRepo.AssertNotCalled(suite.T(), "AddWishlist", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *WishlistTestSuite) TestRemoveWishlist() {
	ctx := context.Background()

	suite.restaurantRepo.EXPECT().RestaurantExists(ctx, uint(3)).Return(true, nil).Twice()
	suite.wishlistRepo.EXPECT().RemoveWishlist(ctx, uint(7), uint(3)).Return(nil).Once()
	suite.wishlistRepo.EXPECT().RemoveWishlist(ctx, uint(7), uint(3)).Return(repository.ErrNotFound).Once()

	suite.Require().NoError(suite.service.RemoveWishlist(ctx, 7, 3))
	suite.Require().ErrorIs(suite.service.RemoveWishlist(ctx, 7, 3), server.ErrWishlistNotFound)
}

func (suite *WishlistTestSuite) TestIsWished() {
	ctx := context.Background()

	suite.restaurantRepo.EXPECT().RestaurantExists(ctx, uint(3)).Return(true, nil)
	suite.wishlistRepo.EXPECT().IsWished(ctx, uint(7), uint(3)).Return(true, nil)

	wished, err := suite.service.IsWished(ctx, 7, 3)
	suite.Require().NoError(err)
	suite.True(wished)
}

func (suite *WishlistTestSuite) TestIsWished_UnknownRestaurant() {
	ctx := context.Background()

	suite.restaurantRepo.EXPECT().RestaurantExists(ctx, uint(99)).Return(false, nil)

	wished, err := suite.service.IsWished(ctx, 7, 99)
	suite.Require().ErrorIs(err, server.ErrNotFound)
	suite.False(wished)
}
