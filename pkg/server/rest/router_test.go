package rest_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.openly.dev/pointy"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/gorm"

	"droscher.com/TableScout/configs"
	"droscher.com/TableScout/mocks"
	"droscher.com/TableScout/pkg/auth"
	"droscher.com/TableScout/pkg/model"
	"droscher.com/TableScout/pkg/repository"
	"droscher.com/TableScout/pkg/server"
	"droscher.com/TableScout/pkg/server/rest"
)

type RouterTestSuite struct {
	suite.Suite
	restaurantRepo  *mocks.RestaurantRepository
	reviewRepo      *mocks.ReviewRepository
	wishlistRepo    *mocks.WishlistRepository
	subCategoryRepo *mocks.SubCategoryRepository
	userRepo        *mocks.UserRepository
	authManager     *auth.Manager
	router          *gin.Engine
	observedLogs    *observer.ObservedLogs
}

func TestRouterTestSuite(t *testing.T) {
	gin.SetMode(gin.TestMode)
	suite.Run(t, new(RouterTestSuite))
}

func (suite *RouterTestSuite) SetupTest() {
	conf := &configs.Config{
		Auth:    configs.Auth{SecretKey: "test-secret"},
		Listing: configs.Listing{DefaultLimit: 6, MaxLimit: 100, PopularLimit: 5},
		Reviews: configs.Reviews{DefaultLimit: 10, MaxLimit: 100},
	}

	observedZapCore, observedLogs := observer.New(zap.InfoLevel)
	suite.observedLogs = observedLogs
	logger := zap.New(observedZapCore)

	suite.restaurantRepo = mocks.NewRestaurantRepository(suite.T())
	suite.reviewRepo = mocks.NewReviewRepository(suite.T())
	suite.wishlistRepo = mocks.NewWishlistRepository(suite.T())
	suite.subCategoryRepo = mocks.NewSubCategoryRepository(suite.T())
	suite.userRepo = mocks.NewUserRepository(suite.T())
	suite.authManager = auth.NewAuthManager(conf, suite.userRepo, logger)

	handler := rest.NewHandler(
		server.NewRestaurantServer(suite.restaurantRepo, suite.wishlistRepo, logger, conf),
		server.NewReviewServer(suite.reviewRepo, suite.restaurantRepo, logger, conf),
		server.NewWishlistServer(suite.wishlistRepo, suite.restaurantRepo, logger),
		server.NewSubCategoryServer(suite.subCategoryRepo, logger),
		logger,
		conf,
	)
	suite.router = rest.NewRouter(handler, suite.authManager, logger)
}

func (suite *RouterTestSuite) serve(method string, target string, body string, token string) *httptest.ResponseRecorder {
	var request *http.Request
	if body == "" {
		request = httptest.NewRequest(method, target, nil)
	} else {
		request = httptest.NewRequest(method, target, strings.NewReader(body))
		request.Header.Set("Content-Type", "application/json")
	}

	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}

	recorder := httptest.NewRecorder()
	suite.router.ServeHTTP(recorder, request)

	return recorder
}

// loginAs issues a token for a user the user repository will resolve.
func (suite *RouterTestSuite) loginAs(userID uint) string {
	token, err := suite.authManager.IssueToken(userID, time.Hour)
	suite.Require().NoError(err)

	suite.userRepo.EXPECT().GetUserByID(mock.Anything, userID).
		Return(&model.User{Model: gorm.Model{ID: userID}, Nickname: "foodie"}, nil)

	return token
}

func (suite *RouterTestSuite) decode(recorder *httptest.ResponseRecorder) map[string]any {
	var body map[string]any
	suite.Require().NoError(json.Unmarshal(recorder.Body.Bytes(), &body))

	return body
}

func (suite *RouterTestSuite) TestHealth() {
	recorder := suite.serve(http.MethodGet, "/health", "", "")
	suite.Equal(http.StatusOK, recorder.Code)
	suite.Equal("success", suite.decode(recorder)["message"])
	suite.NotEmpty(recorder.Header().Get("X-Request-ID"))
}

func (suite *RouterTestSuite) TestGRPCHealthProbe() {
	request := httptest.NewRequest(http.MethodPost, "/grpc.health.v1.Health/Check", strings.NewReader(`{}`))
	request.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	suite.router.ServeHTTP(recorder, request)

	suite.Equal(http.StatusOK, recorder.Code)
	suite.Contains(recorder.Body.String(), "SERVING")
}

func (suite *RouterTestSuite) TestListRestaurants() {
	suite.restaurantRepo.EXPECT().ListRestaurants(mock.Anything, repository.RestaurantFilter{
		Keyword:       "Pasta",
		SubCategories: []string{"Italian", "Ramen"},
		Sort:          repository.SortByReviewCount,
		Offset:        6,
		Limit:         3,
	}).Return([]*model.RestaurantSummary{{ID: 3, Name: "Pasta House", AverageRating: pointy.Float64(4.5), ReviewCount: 2}}, nil)
	suite.restaurantRepo.EXPECT().GetFoodsByRestaurant(mock.Anything, []uint{3}).Return(map[uint][]*model.Food{
		3: {{Model: gorm.Model{ID: 10}, Images: []model.Image{{ImageURL: "https://img/carbonara.jpg"}}}},
	}, nil)

	recorder := suite.serve(http.MethodGet,
		"/restaurants?keyword=Pasta&sub_category=Italian&sub_category=Ramen&sort=review_count&offset=6&limit=3", "", "")
	suite.Require().Equal(http.StatusOK, recorder.Code)

	body := suite.decode(recorder)
	suite.Equal("success", body["message"])

	results, ok := body["result"].([]any)
	suite.Require().True(ok)
	suite.Len(results, 1)

	restaurant, ok := results[0].(map[string]any)
	suite.Require().True(ok)
	suite.Equal("Pasta House", restaurant["name"])
	suite.Equal("https://img/carbonara.jpg", restaurant["image"])
	suite.InDelta(2, restaurant["review_count"], 0)
}

func (suite *RouterTestSuite) TestListRestaurants_InvalidSort() {
	recorder := suite.serve(http.MethodGet, "/restaurants?sort=price", "", "")
	suite.Equal(http.StatusBadRequest, recorder.Code)
	suite.Equal("INVALID_SORT", suite.decode(recorder)["message"])
}

func (suite *RouterTestSuite) TestListRestaurants_MalformedWindow() {
	recorder := suite.serve(http.MethodGet, "/restaurants?offset=abc&limit=xyz", "", "")
	suite.Equal(http.StatusBadRequest, recorder.Code)
	suite.Equal("VALUE_ERROR", suite.decode(recorder)["message"])
}

func (suite *RouterTestSuite) TestListRestaurants_MissingImageIsServerError() {
	suite.restaurantRepo.EXPECT().ListRestaurants(mock.Anything, mock.Anything).Return([]*model.RestaurantSummary{{ID: 3}}, nil)
	suite.restaurantRepo.EXPECT().GetFoodsByRestaurant(mock.Anything, []uint{3}).Return(map[uint][]*model.Food{}, nil)

	recorder := suite.serve(http.MethodGet, "/restaurants", "", "")
	suite.Equal(http.StatusInternalServerError, recorder.Code)
	suite.Equal("IMAGE_NOT_EXIST", suite.decode(recorder)["message"])
	suite.Equal(1, suite.observedLogs.FilterMessage("request failed").Len())
}

func (suite *RouterTestSuite) TestPopularRestaurants_UnknownFiltering() {
	recorder := suite.serve(http.MethodGet, "/restaurants/popular?filtering=cheapest", "", "")
	suite.Equal(http.StatusBadRequest, recorder.Code)
	suite.Equal("INVALID_SORT", suite.decode(recorder)["message"])
}

func (suite *RouterTestSuite) TestGetRestaurantDetail_NotFound() {
	suite.restaurantRepo.EXPECT().GetRestaurantByID(mock.Anything, uint(99)).Return(nil, repository.ErrNotFound)

	recorder := suite.serve(http.MethodGet, "/restaurants/99", "", "")
	suite.Equal(http.StatusNotFound, recorder.Code)
	suite.Equal(map[string]any{"message": "RESTAURANT_NOT_EXIST"}, suite.decode(recorder))
}

func (suite *RouterTestSuite) TestGetRestaurantDetail_WishedBySignedInUser() {
	token := suite.loginAs(7)

	suite.restaurantRepo.EXPECT().GetRestaurantByID(mock.Anything, uint(3)).
		Return(&model.Restaurant{Model: gorm.Model{ID: 3}, Name: "Pasta House", SubCategory: model.SubCategory{Name: "Pasta"}}, nil)
	suite.restaurantRepo.EXPECT().GetReviewStats(mock.Anything, uint(3)).
		Return(&model.ReviewStats{Total: 2, RatingFive: 1, RatingFour: 1, AverageRating: pointy.Float64(4.5)}, nil)
	suite.restaurantRepo.EXPECT().GetAveragePrice(mock.Anything, uint(3)).Return(pointy.Float64(15), nil)
	suite.wishlistRepo.EXPECT().IsWished(mock.Anything, uint(7), uint(3)).Return(true, nil)

	recorder := suite.serve(http.MethodGet, "/restaurants/3", "", token)
	suite.Require().Equal(http.StatusOK, recorder.Code)

	detail, ok := suite.decode(recorder)["result"].(map[string]any)
	suite.Require().True(ok)
	suite.Equal("Pasta House", detail["name"])
	suite.Equal("Pasta", detail["sub_category"])
	suite.Equal(true, detail["is_wished"])
}

func (suite *RouterTestSuite) TestListFoods_BadIDIsValueError() {
	recorder := suite.serve(http.MethodGet, "/restaurants/zero/foods", "", "")
	suite.Equal(http.StatusBadRequest, recorder.Code)
	suite.Equal("VALUE_ERROR", suite.decode(recorder)["message"])
}

func (suite *RouterTestSuite) TestListFoods_EmptyList() {
	suite.restaurantRepo.EXPECT().RestaurantExists(mock.Anything, uint(3)).Return(true, nil)
	suite.restaurantRepo.EXPECT().GetFoodsByRestaurant(mock.Anything, []uint{3}).Return(map[uint][]*model.Food{}, nil)

	recorder := suite.serve(http.MethodGet, "/restaurants/3/foods", "", "")
	suite.Equal(http.StatusOK, recorder.Code)
	suite.JSONEq(`{"message":"success","result":[]}`, recorder.Body.String())
}

func (suite *RouterTestSuite) TestWishlist_RequiresToken() {
	recorder := suite.serve(http.MethodPost, "/restaurants/3/wishlist", "", "")
	suite.Equal(http.StatusUnauthorized, recorder.Code)
	suite.Equal("INVALID_TOKEN", suite.decode(recorder)["message"])
}

func (suite *RouterTestSuite) TestWishlist_UnknownUser() {
	token, err := suite.authManager.IssueToken(404, time.Hour)
	suite.Require().NoError(err)

	suite.userRepo.EXPECT().GetUserByID(mock.Anything, uint(404)).Return(nil, repository.ErrNotFound)

	recorder := suite.serve(http.MethodGet, "/users/me/wishlist", "", token)
	suite.Equal(http.StatusUnauthorized, recorder.Code)
	suite.Equal("INVALID_USER", suite.decode(recorder)["message"])
}

func (suite *RouterTestSuite) TestWishlist_AddStatusRemove() {
	token := suite.loginAs(7)

	suite.restaurantRepo.EXPECT().RestaurantExists(mock.Anything, uint(3)).Return(true, nil)
	suite.wishlistRepo.EXPECT().AddWishlist(mock.Anything, uint(7), uint(3)).Return(nil).Once()
	suite.wishlistRepo.EXPECT().IsWished(mock.Anything, uint(7), uint(3)).Return(true, nil).Once()
	suite.wishlistRepo.EXPECT().RemoveWishlist(mock.Anything, uint(7), uint(3)).Return(nil).Once()

	recorder := suite.serve(http.MethodPost, "/restaurants/3/wishlist", "", token)
	suite.Equal(http.StatusCreated, recorder.Code)
	suite.JSONEq(`{"message":"success"}`, recorder.Body.String())

	recorder = suite.serve(http.MethodGet, "/restaurants/3/wishlist", "", token)
	suite.Equal(http.StatusOK, recorder.Code)
	suite.JSONEq(`{"message":"success","ok":true}`, recorder.Body.String())

	recorder = suite.serve(http.MethodDelete, "/restaurants/3/wishlist", "", token)
	suite.Equal(http.StatusNoContent, recorder.Code)
	suite.Empty(recorder.Body.String())
}

func (suite *RouterTestSuite) TestWishlist_AddTwiceIsAlreadyExist() {
	token := suite.loginAs(7)

	suite.restaurantRepo.EXPECT().RestaurantExists(mock.Anything, uint(3)).Return(true, nil)
	suite.wishlistRepo.EXPECT().AddWishlist(mock.Anything, uint(7), uint(3)).Return(repository.ErrDuplicate)

	recorder := suite.serve(http.MethodPost, "/restaurants/3/wishlist", "", token)
	suite.Equal(http.StatusBadRequest, recorder.Code)
	suite.Equal("ALREADY_EXIST", suite.decode(recorder)["message"])
}

func (suite *RouterTestSuite) TestListReviews() {
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	suite.reviewRepo.EXPECT().ListReviews(mock.Anything, repository.ReviewFilter{RestaurantID: 3, RatingMin: 4, RatingMax: 5, Limit: 10}).
		Return([]*model.Review{{
			Model:   gorm.Model{ID: 21, CreatedAt: created, UpdatedAt: created},
			Content: "Great pasta",
			Rating:  5,
			UserID:  7,
			User:    model.User{Model: gorm.Model{ID: 7}, Nickname: "foodie"},
		}}, nil)
	suite.reviewRepo.EXPECT().CountReviewsByUsers(mock.Anything, []uint{7}).Return(map[uint]int64{7: 12}, nil)

	recorder := suite.serve(http.MethodGet, "/restaurants/3/reviews?rating-min=4", "", "")
	suite.Require().Equal(http.StatusOK, recorder.Code)

	results, ok := suite.decode(recorder)["result"].([]any)
	suite.Require().True(ok)
	suite.Require().Len(results, 1)

	review, ok := results[0].(map[string]any)
	suite.Require().True(ok)
	suite.Equal("Great pasta", review["content"])

	author, ok := review["user"].(map[string]any)
	suite.Require().True(ok)
	suite.Equal("foodie", author["nickname"])
	suite.InDelta(12, author["review_count"], 0)
}

func (suite *RouterTestSuite) TestCreateReview() {
	token := suite.loginAs(7)

	suite.restaurantRepo.EXPECT().RestaurantExists(mock.Anything, uint(3)).Return(true, nil)
	suite.reviewRepo.EXPECT().AddReview(mock.Anything, model.Review{Content: "Great pasta", Rating: 5, UserID: 7, RestaurantID: 3}).
		Return(&model.Review{Model: gorm.Model{ID: 42}, Content: "Great pasta", Rating: 5, UserID: 7, RestaurantID: 3}, nil)

	recorder := suite.serve(http.MethodPost, "/restaurants/3/reviews", `{"content":"Great pasta","rating":5}`, token)
	suite.Require().Equal(http.StatusCreated, recorder.Code)

	review, ok := suite.decode(recorder)["result"].(map[string]any)
	suite.Require().True(ok)
	suite.InDelta(42, review["id"], 0)
}

func (suite *RouterTestSuite) TestCreateReview_MissingContentIsKeyError() {
	token := suite.loginAs(7)

	recorder := suite.serve(http.MethodPost, "/restaurants/3/reviews", `{"rating":3}`, token)
	suite.Equal(http.StatusBadRequest, recorder.Code)
	suite.Equal("KEY_ERROR", suite.decode(recorder)["message"])
	suite.reviewRepo.AssertNotCalled(suite.T(), "AddReview", mock.Anything, mock.Anything)
}

func (suite *RouterTestSuite) TestCreateReview_MalformedBody() {
	token := suite.loginAs(7)

	recorder := suite.serve(http.MethodPost, "/restaurants/3/reviews", `{"rating":`, token)
	suite.Equal(http.StatusBadRequest, recorder.Code)
	suite.Equal("JSON_DECODE_ERROR", suite.decode(recorder)["message"])
}

func (suite *RouterTestSuite) TestCreateReview_RatingOutOfRange() {
	token := suite.loginAs(7)

	recorder := suite.serve(http.MethodPost, "/restaurants/3/reviews", `{"content":"meh","rating":6}`, token)
	suite.Equal(http.StatusBadRequest, recorder.Code)
	suite.Equal("VALUE_ERROR", suite.decode(recorder)["message"])
}

func (suite *RouterTestSuite) TestUpdateAndDeleteReview() {
	token := suite.loginAs(7)
	expected := model.Review{Content: "Changed my mind", Rating: 3, UserID: 7, RestaurantID: 3}
	expected.ID = 42

	suite.reviewRepo.EXPECT().UpdateReview(mock.Anything, expected).Return(nil)
	suite.reviewRepo.EXPECT().DeleteReview(mock.Anything, uint(3), uint(42), uint(7)).Return(nil)

	recorder := suite.serve(http.MethodPatch, "/restaurants/3/reviews/42", `{"content":"Changed my mind","rating":3}`, token)
	suite.Equal(http.StatusNoContent, recorder.Code)

	recorder = suite.serve(http.MethodDelete, "/restaurants/3/reviews/42", "", token)
	suite.Equal(http.StatusNoContent, recorder.Code)
}

func (suite *RouterTestSuite) TestDeleteReview_NotOwned() {
	token := suite.loginAs(9)

	suite.reviewRepo.EXPECT().DeleteReview(mock.Anything, uint(3), uint(42), uint(9)).Return(repository.ErrNotFound)

	recorder := suite.serve(http.MethodDelete, "/restaurants/3/reviews/42", "", token)
	suite.Equal(http.StatusNotFound, recorder.Code)
	suite.Equal("REVIEW_NOT_EXIST", suite.decode(recorder)["message"])
}

func (suite *RouterTestSuite) TestListSubCategories_NoneIsNotFound() {
	suite.subCategoryRepo.EXPECT().ListSubCategoryCovers(mock.Anything).Return(nil, nil)

	recorder := suite.serve(http.MethodGet, "/subcategories", "", "")
	suite.Equal(http.StatusNotFound, recorder.Code)
	suite.Equal("SUBCATEGORY_NOT_EXIST", suite.decode(recorder)["message"])
}

func (suite *RouterTestSuite) TestRecoveryReturnsEnvelope() {
	suite.subCategoryRepo.EXPECT().ListSubCategoryCovers(mock.Anything).
		RunAndReturn(func(context.Context) ([]*model.SubCategoryCover, error) { panic("boom") })

	recorder := suite.serve(http.MethodGet, "/subcategories", "", "")
	suite.Equal(http.StatusInternalServerError, recorder.Code)
	suite.Equal("INTERNAL_ERROR", suite.decode(recorder)["message"])

	panics := suite.observedLogs.FilterMessage("panic recovered").All()
	suite.Require().Len(panics, 1)
	suite.NotEmpty(panics[0].ContextMap()["request_id"])

	accessLogs := suite.observedLogs.FilterMessage("request").All()
	suite.Require().Len(accessLogs, 1)
	suite.Equal(int64(http.StatusInternalServerError), accessLogs[0].ContextMap()["status"])
	suite.Equal("/subcategories", accessLogs[0].ContextMap()["path"])
}
