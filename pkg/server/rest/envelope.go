package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"droscher.com/TableScout/pkg/auth"
	"droscher.com/TableScout/pkg/server"
)

const (
	MessageSuccess             = "success"
	MessageRestaurantNotExist  = "RESTAURANT_NOT_EXIST"
	MessageReviewNotExist      = "REVIEW_NOT_EXIST"
	MessageWishlistNotExist    = "WISHLIST_NOT_EXIST"
	MessageSubCategoryNotExist = "SUBCATEGORY_NOT_EXIST"
	MessageAlreadyExist        = "ALREADY_EXIST"
	MessageKeyError            = "KEY_ERROR"
	MessageValueError          = "VALUE_ERROR"
	MessageInvalidSort         = "INVALID_SORT"
	MessageJSONDecodeError     = "JSON_DECODE_ERROR"
	MessageInvalidUser         = "INVALID_USER"
	MessageInvalidToken        = "INVALID_TOKEN"
	MessageImageNotExist       = "IMAGE_NOT_EXIST"
	MessageInternalError       = "INTERNAL_ERROR"
)

var ErrMalformedBody = errors.New("malformed request body")

// Response is the envelope every JSON response is wrapped in.
type Response struct {
	Message string `json:"message"`
	Result  any    `json:"result,omitempty"`
}

// StatusResponse answers yes/no queries such as the wishlist status.
type StatusResponse struct {
	Message string `json:"message"`
	OK      bool   `json:"ok"`
}

// errorStatus maps a service error onto the HTTP status and message code returned to clients.
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, server.ErrRestaurantNotFound):
		return http.StatusNotFound, MessageRestaurantNotExist
	case errors.Is(err, server.ErrReviewNotFound):
		return http.StatusNotFound, MessageReviewNotExist
	case errors.Is(err, server.ErrWishlistNotFound):
		return http.StatusNotFound, MessageWishlistNotExist
	case errors.Is(err, server.ErrSubCategoryNotFound):
		return http.StatusNotFound, MessageSubCategoryNotExist
	case errors.Is(err, server.ErrAlreadyExists):
		return http.StatusBadRequest, MessageAlreadyExist
	case errors.Is(err, server.ErrMissingField):
		return http.StatusBadRequest, MessageKeyError
	case errors.Is(err, server.ErrInvalidRating), errors.Is(err, server.ErrInvalidValue):
		return http.StatusBadRequest, MessageValueError
	case errors.Is(err, server.ErrInvalidSortKey):
		return http.StatusBadRequest, MessageInvalidSort
	case errors.Is(err, ErrMalformedBody):
		return http.StatusBadRequest, MessageJSONDecodeError
	case errors.Is(err, auth.ErrUnknownUser):
		return http.StatusUnauthorized, MessageInvalidUser
	case errors.Is(err, auth.ErrUnauthenticated):
		return http.StatusUnauthorized, MessageInvalidToken
	case errors.Is(err, server.ErrMissingImage):
		return http.StatusInternalServerError, MessageImageNotExist
	default:
		return http.StatusInternalServerError, MessageInternalError
	}
}

func abortWithError(c *gin.Context, logger *zap.Logger, err error) {
	status, message := errorStatus(err)

	if status == http.StatusInternalServerError {
		logger.Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.String("request_id", c.GetString(requestIDKey)),
			zap.Error(err))
	}

	c.AbortWithStatusJSON(status, Response{Message: message})
}

// Rejector writes the 401 envelope for requests turned away by the auth guards.
func Rejector(logger *zap.Logger) auth.Rejector {
	return func(c *gin.Context, err error) {
		abortWithError(c, logger, err)
	}
}

func ok(c *gin.Context, result any) {
	c.JSON(http.StatusOK, Response{Message: MessageSuccess, Result: result})
}

func created(c *gin.Context, result any) {
	c.JSON(http.StatusCreated, Response{Message: MessageSuccess, Result: result})
}

func status(c *gin.Context, wished bool) {
	c.JSON(http.StatusOK, StatusResponse{Message: MessageSuccess, OK: wished})
}

func noContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
