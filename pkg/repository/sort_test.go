package repository_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"droscher.com/TableScout/pkg/repository"
)

func TestParseSortKey(t *testing.T) {
	tests := []struct {
		name    string
		want    repository.SortKey
		wantErr bool
	}{
		{name: "rating", want: repository.SortByRating},
		{name: "review_count", want: repository.SortByReviewCount},
		{name: "average_rating", wantErr: true},
		{name: "", wantErr: true},
		{name: "Rating", wantErr: true},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			key, err := repository.ParseSortKey(testCase.name)
			if testCase.wantErr {
				require.ErrorIs(t, err, repository.ErrInvalidSortKey)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, testCase.want, key)
			assert.Equal(t, testCase.name, key.String())
		})
	}
}
