package domain

import "sort"

// Watchlist is a named, ordered collection of tracked movie items.
// ID, Title and Icon are assigned at creation and never change; the
// items sequence only ever grows.
type Watchlist struct {
	// ID is the opaque unique identifier for the watchlist.
	ID string `json:"id"`

	// Title is the user-supplied display name. Write-once.
	Title string `json:"title"`

	// Icon is the display glyph assigned from the icon pool at creation.
	Icon string `json:"icon"`

	// Items holds the tracked movies in insertion order.
	Items []MovieItem `json:"items"`
}

// MovieItem is one tracked piece of content inside a watchlist.
// Identity, title and poster are immutable after creation; the only
// permitted mutations are the one-way watched flip and review edits.
type MovieItem struct {
	// ID is the opaque unique identifier for the item.
	ID string `json:"id"`

	// Title is the movie title. Write-once.
	Title string `json:"title"`

	// PosterURL references the poster image. Must be an absolute
	// http(s) URL; validated at creation, then write-once.
	PosterURL string `json:"posterUrl"`

	// Watched starts false and may flip to true exactly once.
	Watched bool `json:"watched"`

	// Order is the append position at creation time. It is a sort key
	// only: hand-edited data may carry duplicates or omit it entirely,
	// in which case a missing value reads as zero.
	Order int `json:"order"`

	// Review is free text, replaceable at any time, including with "".
	Review string `json:"review"`
}

// ItemsByOrder returns a copy of the items sorted by their Order key.
// The sort is stable so items with equal or missing Order values keep
// their insertion order.
func (w Watchlist) ItemsByOrder() []MovieItem {
	items := make([]MovieItem, len(w.Items))
	copy(items, w.Items)
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Order < items[j].Order
	})
	return items
}

// FindItem returns the index of the item with the given id, or -1.
func (w Watchlist) FindItem(itemID string) int {
	for i := range w.Items {
		if w.Items[i].ID == itemID {
			return i
		}
	}
	return -1
}
