package rest

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/multierr"

	"droscher.com/TableScout/pkg/server"
)

// queryParams collects every malformed query parameter so a single response can report them all.
type queryParams struct {
	c    *gin.Context
	errs error
}

func newQueryParams(c *gin.Context) *queryParams {
	return &queryParams{c: c}
}

func (q *queryParams) Int(name string, fallback int) int {
	raw := q.c.Query(name)
	if raw == "" {
		return fallback
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		q.errs = multierr.Append(q.errs, fmt.Errorf("%s: %q is not an integer", name, raw))

		return fallback
	}

	return value
}

func (q *queryParams) String(name string, fallback string) string {
	return q.c.DefaultQuery(name, fallback)
}

func (q *queryParams) Strings(name string) []string {
	return q.c.QueryArray(name)
}

func (q *queryParams) Err() error {
	if q.errs == nil {
		return nil
	}

	return fmt.Errorf("%w: %w", server.ErrInvalidValue, q.errs)
}

func pathID(c *gin.Context, name string) (uint, error) {
	raw := c.Param(name)

	id, err := strconv.ParseUint(raw, 10, 0)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("%w: %s %q", server.ErrInvalidValue, name, raw)
	}

	return uint(id), nil
}

// reviewBody keeps absent fields nil so the services can tell missing from zero.
type reviewBody struct {
	Content *string `json:"content"`
	Rating  *int    `json:"rating"`
}

func bindReview(c *gin.Context) (server.ReviewInput, error) {
	var body reviewBody

	if err := c.ShouldBindJSON(&body); err != nil {
		return server.ReviewInput{}, fmt.Errorf("%w: %v", ErrMalformedBody, err)
	}

	return server.ReviewInput{Content: body.Content, Rating: body.Rating}, nil
}
