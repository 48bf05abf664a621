package rest

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"droscher.com/TableScout/configs"
	"droscher.com/TableScout/pkg/auth"
	"droscher.com/TableScout/pkg/model"
	"droscher.com/TableScout/pkg/server"
)

type Handler struct {
	logger        *zap.Logger
	listing       configs.Listing
	reviewConf    configs.Reviews
	restaurants   *server.RestaurantServer
	reviews       *server.ReviewServer
	wishlists     *server.WishlistServer
	subCategories *server.SubCategoryServer
}

func NewHandler(restaurants *server.RestaurantServer, reviews *server.ReviewServer, wishlists *server.WishlistServer,
	subCategories *server.SubCategoryServer, logger *zap.Logger, conf *configs.Config,
) *Handler {
	return &Handler{
		logger:        logger,
		listing:       conf.Listing,
		reviewConf:    conf.Reviews,
		restaurants:   restaurants,
		reviews:       reviews,
		wishlists:     wishlists,
		subCategories: subCategories,
	}
}

func (h *Handler) RegisterRoutes(router *gin.RouterGroup, authManager *auth.Manager) {
	reject := Rejector(h.logger)
	requireUser := authManager.RequireUser(reject)

	router.GET("/restaurants", h.ListRestaurants)
	router.GET("/restaurants/popular", h.PopularRestaurants)
	router.GET("/restaurants/:restaurant_id", authManager.OptionalUser(reject), h.GetRestaurantDetail)
	router.GET("/restaurants/:restaurant_id/foods", h.ListFoods)
	router.GET("/restaurants/:restaurant_id/reviews", h.ListReviews)
	router.GET("/subcategories", h.ListSubCategories)

	protected := router.Group("/", requireUser)
	{
		protected.GET("/restaurants/:restaurant_id/wishlist", h.WishlistStatus)
		protected.POST("/restaurants/:restaurant_id/wishlist", h.AddWishlist)
		protected.DELETE("/restaurants/:restaurant_id/wishlist", h.RemoveWishlist)
		protected.GET("/users/me/wishlist", h.ListWishlist)
		protected.POST("/restaurants/:restaurant_id/reviews", h.CreateReview)
		protected.PATCH("/restaurants/:restaurant_id/reviews/:review_id", h.UpdateReview)
		protected.DELETE("/restaurants/:restaurant_id/reviews/:review_id", h.DeleteReview)
	}
}

func (h *Handler) ListRestaurants(c *gin.Context) {
	params := newQueryParams(c)
	request := server.ListRestaurantsRequest{
		Keyword:       params.String("keyword", ""),
		SubCategories: params.Strings("sub_category"),
		Sort:          params.String("sort", "rating"),
		Offset:        params.Int("offset", 0),
		Limit:         params.Int("limit", h.listing.DefaultLimit),
	}

	if err := params.Err(); err != nil {
		abortWithError(c, h.logger, err)

		return
	}

	restaurants, err := h.restaurants.ListRestaurants(c.Request.Context(), request)
	if err != nil {
		abortWithError(c, h.logger, err)

		return
	}

	ok(c, RestaurantSummariesFromModel(restaurants))
}

func (h *Handler) PopularRestaurants(c *gin.Context) {
	restaurants, err := h.restaurants.PopularRestaurants(c.Request.Context(), c.DefaultQuery("filtering", "average_rating"))
	if err != nil {
		abortWithError(c, h.logger, err)

		return
	}

	ok(c, PopularRestaurantsFromModel(restaurants))
}

func (h *Handler) GetRestaurantDetail(c *gin.Context) {
	restaurantID, err := pathID(c, "restaurant_id")
	if err != nil {
		abortWithError(c, h.logger, err)

		return
	}

	detail, err := h.restaurants.GetRestaurantDetail(c.Request.Context(), restaurantID, auth.UserFromContext(c.Request.Context()))
	if err != nil {
		abortWithError(c, h.logger, err)

		return
	}

	ok(c, RestaurantDetailFromModel(detail))
}

func (h *Handler) ListFoods(c *gin.Context) {
	restaurantID, err := pathID(c, "restaurant_id")
	if err != nil {
		abortWithError(c, h.logger, err)

		return
	}

	foods, err := h.restaurants.ListFoods(c.Request.Context(), restaurantID)
	if err != nil {
		abortWithError(c, h.logger, err)

		return
	}

	ok(c, FoodsFromModel(foods))
}

func (h *Handler) WishlistStatus(c *gin.Context) {
	user, restaurantID, err := userAndRestaurant(c)
	if err != nil {
		abortWithError(c, h.logger, err)

		return
	}

	wished, err := h.wishlists.IsWished(c.Request.Context(), user.ID, restaurantID)
	if err != nil {
		abortWithError(c, h.logger, err)

		return
	}

	status(c, wished)
}

func (h *Handler) AddWishlist(c *gin.Context) {
	user, restaurantID, err := userAndRestaurant(c)
	if err != nil {
		abortWithError(c, h.logger, err)

		return
	}

	if err := h.wishlists.AddWishlist(c.Request.Context(), user.ID, restaurantID); err != nil {
		abortWithError(c, h.logger, err)

		return
	}

	created(c, nil)
}

func (h *Handler) RemoveWishlist(c *gin.Context) {
	user, restaurantID, err := userAndRestaurant(c)
	if err != nil {
		abortWithError(c, h.logger, err)

		return
	}

	if err := h.wishlists.RemoveWishlist(c.Request.Context(), user.ID, restaurantID); err != nil {
		abortWithError(c, h.logger, err)

		return
	}

	noContent(c)
}

func (h *Handler) ListWishlist(c *gin.Context) {
	user, err := currentUser(c)
	if err != nil {
		abortWithError(c, h.logger, err)

		return
	}

	params := newQueryParams(c)
	offset := params.Int("offset", 0)
	limit := params.Int("limit", h.listing.DefaultLimit)

	if err := params.Err(); err != nil {
		abortWithError(c, h.logger, err)

		return
	}

	restaurants, err := h.restaurants.ListWishlist(c.Request.Context(), user.ID, offset, limit)
	if err != nil {
		abortWithError(c, h.logger, err)

		return
	}

	ok(c, RestaurantSummariesFromModel(restaurants))
}

func (h *Handler) ListReviews(c *gin.Context) {
	restaurantID, err := pathID(c, "restaurant_id")
	if err != nil {
		abortWithError(c, h.logger, err)

		return
	}

	params := newQueryParams(c)
	request := server.ListReviewsRequest{
		RestaurantID: restaurantID,
		RatingMin:    params.Int("rating-min", model.MinimumRating),
		RatingMax:    params.Int("rating-max", model.MaximumRating),
		Offset:       params.Int("offset", 0),
		Limit:        params.Int("limit", h.reviewConf.DefaultLimit),
	}

	if err := params.Err(); err != nil {
		abortWithError(c, h.logger, err)

		return
	}

	reviews, err := h.reviews.ListReviews(c.Request.Context(), request)
	if err != nil {
		abortWithError(c, h.logger, err)

		return
	}

	ok(c, ReviewsFromModel(reviews))
}

func (h *Handler) CreateReview(c *gin.Context) {
	user, restaurantID, err := userAndRestaurant(c)
	if err != nil {
		abortWithError(c, h.logger, err)

		return
	}

	input, err := bindReview(c)
	if err != nil {
		abortWithError(c, h.logger, err)

		return
	}

	review, err := h.reviews.CreateReview(c.Request.Context(), restaurantID, user.ID, input)
	if err != nil {
		abortWithError(c, h.logger, err)

		return
	}

	created(c, ReviewFromModel(review))
}

func (h *Handler) UpdateReview(c *gin.Context) {
	user, restaurantID, err := userAndRestaurant(c)
	if err != nil {
		abortWithError(c, h.logger, err)

		return
	}

	reviewID, err := pathID(c, "review_id")
	if err != nil {
		abortWithError(c, h.logger, err)

		return
	}

	input, err := bindReview(c)
	if err != nil {
		abortWithError(c, h.logger, err)

		return
	}

	if err := h.reviews.UpdateReview(c.Request.Context(), restaurantID, reviewID, user.ID, input); err != nil {
		abortWithError(c, h.logger, err)

		return
	}

	noContent(c)
}

func (h *Handler) DeleteReview(c *gin.Context) {
	user, restaurantID, err := userAndRestaurant(c)
	if err != nil {
		abortWithError(c, h.logger, err)

		return
	}

	reviewID, err := pathID(c, "review_id")
	if err != nil {
		abortWithError(c, h.logger, err)

		return
	}

	if err := h.reviews.DeleteReview(c.Request.Context(), restaurantID, reviewID, user.ID); err != nil {
		abortWithError(c, h.logger, err)

		return
	}

	noContent(c)
}

func (h *Handler) ListSubCategories(c *gin.Context) {
	covers, err := h.subCategories.ListSubCategories(c.Request.Context())
	if err != nil {
		abortWithError(c, h.logger, err)

		return
	}

	ok(c, SubCategoriesFromModel(covers))
}

func currentUser(c *gin.Context) (*model.User, error) {
	user := auth.UserFromContext(c.Request.Context())
	if user == nil {
		return nil, auth.ErrUnauthenticated
	}

	return user, nil
}

func userAndRestaurant(c *gin.Context) (*model.User, uint, error) {
	user, err := currentUser(c)
	if err != nil {
		return nil, 0, err
	}

	restaurantID, err := pathID(c, "restaurant_id")
	if err != nil {
		return nil, 0, err
	}

	return user, restaurantID, nil
}
