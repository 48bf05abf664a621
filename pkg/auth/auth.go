package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"

	"droscher.com/TableScout/configs"
	"droscher.com/TableScout/pkg/model"
	"droscher.com/TableScout/pkg/repository"
)

type UserKey struct{}

var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrInvalidToken    = fmt.Errorf("%w: invalid token", ErrUnauthenticated)
	ErrUnknownUser     = fmt.Errorf("%w: unknown user", ErrUnauthenticated)
)

// Claims carries the id of the user a token was issued to.
type Claims struct {
	UserID uint `json:"id"`
	jwt.RegisteredClaims
}

type Manager struct {
	conf   *configs.Config
	repo   repository.UserRepository
	logger *zap.Logger
}

// Rejector writes the response for a request that failed authentication.
type Rejector func(c *gin.Context, err error)

func NewAuthManager(conf *configs.Config, repo repository.UserRepository, logger *zap.Logger) *Manager {
	return &Manager{conf: conf, repo: repo, logger: logger}
}

func (a *Manager) IssueToken(userID uint, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(a.conf.Auth.SecretKey))
}

// RequireUser rejects requests without a valid token for a known user.
func (a *Manager) RequireUser(reject Rejector) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := a.authenticate(c.Request.Context(), c.Request.Header)
		if err != nil {
			reject(c, err)
			c.Abort()

			return
		}

		setUser(c, user)
		c.Next()
	}
}

// OptionalUser lets anonymous requests through unchanged. A request that does present a
// token must present a valid one.
func (a *Manager) OptionalUser(reject Rejector) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.Next()

			return
		}

		user, err := a.authenticate(c.Request.Context(), c.Request.Header)
		if err != nil {
			reject(c, err)
			c.Abort()

			return
		}

		setUser(c, user)
		c.Next()
	}
}

// UserFromContext returns the authenticated user, or nil for anonymous requests.
func UserFromContext(ctx context.Context) *model.User {
	user, _ := ctx.Value(UserKey{}).(*model.User)

	return user
}

func setUser(c *gin.Context, user *model.User) {
	c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), UserKey{}, user))
}

func (a *Manager) authenticate(ctx context.Context, header http.Header) (*model.User, error) {
	keyFunc := func(token *jwt.Token) (interface{}, error) {
		_, ok := token.Method.(*jwt.SigningMethodHMAC)
		if !ok {
			return nil, fmt.Errorf("%w: unexpected signing method: %v", ErrInvalidToken, token.Header["alg"])
		}

		return []byte(a.conf.Auth.SecretKey), nil
	}

	accessToken, err := a.extractTokenFromHeader(header)
	if err != nil {
		return nil, err
	}

	token, err := jwt.ParseWithClaims(*accessToken, &Claims{}, keyFunc)
	if err != nil {
		a.logger.Warn("error parsing token", zap.Error(err))

		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, found := token.Claims.(*Claims)
	if !found || !token.Valid || claims.UserID == 0 {
		a.logger.Warn("invalid token", zap.Any("claims", token.Claims))

		return nil, ErrInvalidToken
	}

	user, err := a.repo.GetUserByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrUnknownUser, claims.UserID)
		}

		a.logger.Error("error authenticating user", zap.Uint("user_id", claims.UserID), zap.Error(err))

		return nil, err
	}

	return user, nil
}

func (a *Manager) extractTokenFromHeader(header http.Header) (*string, error) {
	authorization := strings.TrimSpace(header.Get("Authorization"))
	if len(authorization) == 0 {
		return nil, fmt.Errorf("%w: authorization header not found", ErrUnauthenticated)
	}

	token := authorization

	for _, prefix := range []string{"Bearer ", "bearer "} {
		if trimmed, found := strings.CutPrefix(authorization, prefix); found {
			token = strings.TrimSpace(trimmed)

			break
		}
	}

	if len(token) == 0 {
		return nil, fmt.Errorf("%w: empty token", ErrInvalidToken)
	}

	return &token, nil
}
