package listquery

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type shapeItem struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name,omitempty"`
	Housing   bool      `json:"housing"`
	CreatedAt time.Time `json:"created_at"`
}

func TestShapeRestrictsToSelectedFields(t *testing.T) {
	items := []shapeItem{
		{ID: 1, Name: "Devworks Bootcamp", Housing: true},
		{ID: 2, Name: "ModernTech Bootcamp"},
	}

	rows := Shape(items, []string{"name"})
	require.Len(t, rows, 2)

	for _, row := range rows {
		assert.Contains(t, row, "id")
		assert.Contains(t, row, "name")
		// Unselected zero-valued fields must not leak into the response.
		assert.NotContains(t, row, "housing")
		assert.NotContains(t, row, "created_at")
	}
	assert.Equal(t, "Devworks Bootcamp", rows[0]["name"])
}

func TestShapeAlwaysKeepsID(t *testing.T) {
	items := []shapeItem{{ID: 7, Name: "Devworks Bootcamp"}}

	rows := Shape(items, []string{"housing"})
	require.Len(t, rows, 1)
	assert.Equal(t, float64(7), rows[0]["id"])
	assert.NotContains(t, rows[0], "name")
}

func TestShapeEmptySlice(t *testing.T) {
	assert.Empty(t, Shape([]shapeItem{}, []string{"name"}))
}
