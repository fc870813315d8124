package listquery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaginateFirstPage(t *testing.T) {
	meta := Paginate(1, 25, 57)

	require.NotNil(t, meta.Next)
	assert.Equal(t, PageRef{Page: 2, Limit: 25}, *meta.Next)
	assert.Nil(t, meta.Prev)
}

func TestPaginateMiddlePage(t *testing.T) {
	meta := Paginate(2, 25, 57)

	require.NotNil(t, meta.Next)
	assert.Equal(t, PageRef{Page: 3, Limit: 25}, *meta.Next)
	require.NotNil(t, meta.Prev)
	assert.Equal(t, PageRef{Page: 1, Limit: 25}, *meta.Prev)
}

func TestPaginateLastPage(t *testing.T) {
	// endIndex = 75 >= 57, so there is no next page.
	meta := Paginate(3, 25, 57)

	assert.Nil(t, meta.Next)
	require.NotNil(t, meta.Prev)
	assert.Equal(t, PageRef{Page: 2, Limit: 25}, *meta.Prev)
}

func TestPaginateExactBoundary(t *testing.T) {
	// endIndex == total: the last record is inside this window.
	meta := Paginate(2, 25, 50)
	assert.Nil(t, meta.Next)
	require.NotNil(t, meta.Prev)
}

func TestPaginateEmptyTotal(t *testing.T) {
	meta := Paginate(1, 25, 0)
	assert.Nil(t, meta.Next)
	assert.Nil(t, meta.Prev)
}

func TestPaginateNonPositiveInputsFallBack(t *testing.T) {
	meta := Paginate(0, -10, 57)

	// page and limit default to 1 and 25.
	require.NotNil(t, meta.Next)
	assert.Equal(t, PageRef{Page: 2, Limit: 25}, *meta.Next)
	assert.Nil(t, meta.Prev)
}
