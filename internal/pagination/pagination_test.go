package pagination

import (
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-movie-watchlist/pkg/apierror"
)

var userColumns = []string{"id", "username", "role_id"}

func TestNormalize(t *testing.T) {
	t.Run("computes offset from page and page size", func(t *testing.T) {
		q, err := Normalize(Raw{Page: "3", PageSize: "25"}, userColumns)

		require.NoError(t, err)
		assert.Equal(t, 3, q.Page)
		assert.Equal(t, 25, q.PageSize)
		assert.Equal(t, 50, q.Offset)
	})

	t.Run("clamps page and page size to one", func(t *testing.T) {
		cases := []struct {
			name     string
			page     string
			pageSize string
		}{
			{"zero values", "0", "0"},
			{"negative values", "-5", "-10"},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				q, err := Normalize(Raw{Page: tc.page, PageSize: tc.pageSize}, userColumns)

				require.NoError(t, err)
				assert.Equal(t, 1, q.Page)
				assert.Equal(t, 1, q.PageSize)
				assert.Equal(t, 0, q.Offset)
			})
		}
	})

	t.Run("rejects non-numeric page inputs", func(t *testing.T) {
		for _, raw := range []Raw{
			{Page: "abc", PageSize: "10"},
			{Page: "1", PageSize: "ten"},
			{Page: "", PageSize: "10"},
			{Page: "1", PageSize: ""},
		} {
			_, err := Normalize(raw, userColumns)

			var apiErr *apierror.APIError
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, "BAD_REQUEST", apiErr.Code)
		}
	})

	t.Run("accepts allow-listed sort column", func(t *testing.T) {
		q, err := Normalize(Raw{Page: "1", PageSize: "5", SortExp: "username", SortOrd: "ASC"}, userColumns)

		require.NoError(t, err)
		assert.Equal(t, "username", q.SortColumn)
		assert.Equal(t, DirectionAsc, q.SortDirection)
	})

	t.Run("rejects unknown sort column", func(t *testing.T) {
		_, err := Normalize(Raw{Page: "1", PageSize: "5", SortExp: "password_hash"}, userColumns)

		var apiErr *apierror.APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, "BAD_REQUEST", apiErr.Code)
		assert.Contains(t, apiErr.Message, "password_hash")
	})

	t.Run("defaults sort column to id when absent", func(t *testing.T) {
		q, err := Normalize(Raw{Page: "1", PageSize: "5"}, userColumns)

		require.NoError(t, err)
		assert.Equal(t, "id", q.SortColumn)
	})

	t.Run("defaults sort direction to DESC", func(t *testing.T) {
		for _, ord := range []string{"", "asc", "desc", "ascending", "DROP TABLE"} {
			q, err := Normalize(Raw{Page: "1", PageSize: "5", SortOrd: ord}, userColumns)

			require.NoError(t, err)
			assert.Equal(t, DirectionDesc, q.SortDirection, "sortOrd=%q", ord)
		}
	})
}

func TestFromRequest(t *testing.T) {
	r := httptest.NewRequest("GET", "/users?page=2&pageSize=10&sortExp=username&sortOrd=ASC", nil)

	raw := FromRequest(r)

	assert.Equal(t, "2", raw.Page)
	assert.Equal(t, "10", raw.PageSize)
	assert.Equal(t, "username", raw.SortExp)
	assert.Equal(t, "ASC", raw.SortOrd)
}
