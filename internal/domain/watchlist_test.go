package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemsByOrder(t *testing.T) {
	w := Watchlist{
		Items: []MovieItem{
			{ID: "b", Order: 1},
			{ID: "a", Order: 0},
			{ID: "c", Order: 1},
		},
	}

	sorted := w.ItemsByOrder()
	require.Len(t, sorted, 3)
	assert.Equal(t, "a", sorted[0].ID)
	assert.Equal(t, "b", sorted[1].ID, "Equal order keys keep insertion order")
	assert.Equal(t, "c", sorted[2].ID)

	// The receiver's own sequence is left alone.
	assert.Equal(t, "b", w.Items[0].ID)
}

func TestFindItem(t *testing.T) {
	w := Watchlist{Items: []MovieItem{{ID: "a"}, {ID: "b"}}}
	assert.Equal(t, 1, w.FindItem("b"))
	assert.Equal(t, -1, w.FindItem("missing"))
}

func TestMovieItem_MissingOrderReadsAsZero(t *testing.T) {
	// Hand-edited documents may drop the order field entirely.
	var item MovieItem
	require.NoError(t, json.Unmarshal([]byte(`{"id": "a", "title": "The Thing"}`), &item))
	assert.Equal(t, 0, item.Order)
}
