// Package validate holds the pure predicates that gate user-supplied
// and imported data. All functions are side-effect free and report bad
// input by returning false, never by panicking or erroring.
package validate

import (
	"encoding/json"
	"net/url"
	"strings"
)

// PosterURL reports whether raw is an acceptable poster image
// reference: an absolute URL whose scheme is exactly http or https.
// Empty, relative, malformed and other-scheme values (including
// script-capable schemes such as javascript:) are rejected. This is
// the sole gate between a hostile value and a rendered resource
// attribute, so it is a security control, not a format nicety.
func PosterURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	return u.Host != ""
}

// WatchlistTitle reports whether title is usable as a watchlist or
// item title: non-empty once leading and trailing whitespace is
// stripped.
func WatchlistTitle(title string) bool {
	return strings.TrimSpace(title) != ""
}

// ImportedWatchlist structurally checks an already-parsed share
// payload before it is allowed anywhere near the collection. The value
// must be an object with a non-empty-after-trim string title, a string
// icon, and an items sequence where every element carries a non-empty
// string title, a poster URL passing PosterURL, a strictly boolean
// watched flag and a strictly numeric order. Any deviation anywhere
// rejects the whole value; there is no partial acceptance.
func ImportedWatchlist(value any) bool {
	obj, ok := value.(map[string]any)
	if !ok {
		return false
	}
	if !stringField(obj, "title", true) || !stringField(obj, "icon", false) {
		return false
	}
	items, ok := obj["items"].([]any)
	if !ok {
		return false
	}
	for _, raw := range items {
		item, ok := raw.(map[string]any)
		if !ok {
			return false
		}
		if !stringField(item, "title", true) {
			return false
		}
		poster, ok := item["posterUrl"].(string)
		if !ok || !PosterURL(poster) {
			return false
		}
		if _, ok := item["watched"].(bool); !ok {
			return false
		}
		if !numericField(item, "order") {
			return false
		}
	}
	return true
}

func stringField(obj map[string]any, key string, requireNonEmpty bool) bool {
	s, ok := obj[key].(string)
	if !ok {
		return false
	}
	if requireNonEmpty && strings.TrimSpace(s) == "" {
		return false
	}
	return true
}

func numericField(obj map[string]any, key string) bool {
	switch obj[key].(type) {
	case float64, json.Number:
		return true
	default:
		return false
	}
}
