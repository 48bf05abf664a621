package repository

import (
	"errors"
	"fmt"
)

type SortKey int

const (
	SortByRating SortKey = iota + 1
	SortByReviewCount
)

var ErrInvalidSortKey = errors.New("invalid sort key")

var sortKeys = map[string]SortKey{
	"rating":       SortByRating,
	"review_count": SortByReviewCount,
}

func ParseSortKey(name string) (SortKey, error) {
	key, ok := sortKeys[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSortKey, name)
	}

	return key, nil
}

// orderBy is the ORDER BY expression for the key. Ties are always broken by id so
// that pages are deterministic.
func (k SortKey) orderBy() string {
	switch k {
	case SortByReviewCount:
		return "review_count DESC, restaurants.id ASC"
	case SortByRating:
		fallthrough
	default:
		return "average_rating DESC NULLS LAST, restaurants.id ASC"
	}
}

func (k SortKey) String() string {
	for name, key := range sortKeys {
		if key == k {
			return name
		}
	}

	return "unknown"
}
