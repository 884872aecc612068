// Package share converts watchlists to and from the portable exchange
// form used for copy-paste sharing, and governs the import-merge
// policy. An export is always a fresh, unstarted copy of the catalog:
// identities are regenerated and watch progress and reviews are
// stripped, so sharing a list never leaks or transfers personal
// history.
package share

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"watchdeck/internal/domain"
	"watchdeck/internal/identity"
	"watchdeck/internal/store"
	"watchdeck/internal/validate"
)

// sharedSuffix disambiguates an imported title that collides with an
// existing watchlist. The import is never blocked, only renamed.
const sharedSuffix = " (Shared with me)"

// Codec handles export and import of portable watchlists. Imports are
// appended through the store so every durable write keeps funnelling
// through one place.
type Codec struct {
	store *store.Store
	log   logrus.FieldLogger
}

// NewCodec creates a Codec on top of the given store.
func NewCodec(st *store.Store, logger logrus.FieldLogger) *Codec {
	return &Codec{
		store: st,
		log:   logger.WithField("component", "share"),
	}
}

// catalogEntry is the only content that survives a share: what the
// movie is and where its poster lives. Everything else is personal
// state or identity and gets reissued.
type catalogEntry struct {
	title     string
	posterURL string
}

// Export builds the portable form of a watchlist: same title, icon and
// item catalog, but fresh identities, watched reset to false, reviews
// cleared, and order recomputed from position in the order-sorted
// sequence.
func (c *Codec) Export(w domain.Watchlist) domain.PortableWatchlist {
	items := w.ItemsByOrder()
	entries := make([]catalogEntry, len(items))
	for i, item := range items {
		entries[i] = catalogEntry{title: item.Title, posterURL: item.PosterURL}
	}
	return freshCopy(w.Title, w.Icon, entries)
}

// Import validates an already-parsed share payload, resolves title
// collisions and appends the result to the collection. The payload
// goes through the same fresh-identity reset as an export, because an
// import is an export applied to input we did not produce: nothing
// from the payload is trusted beyond the catalog itself. A rejected
// payload leaves the collection untouched; there is no partial import.
func (c *Codec) Import(ctx context.Context, payload any) (domain.Watchlist, error) {
	if !validate.ImportedWatchlist(payload) {
		return domain.Watchlist{}, fmt.Errorf("%w: payload failed structural validation", store.ErrInvalidFormat)
	}
	p := toPortable(payload.(map[string]any))

	collision, err := c.store.TitleExists(ctx, p.Title)
	if err != nil {
		return domain.Watchlist{}, err
	}
	if collision {
		p.Title += sharedSuffix
	}

	sort.SliceStable(p.Items, func(i, j int) bool {
		return p.Items[i].Order < p.Items[j].Order
	})
	entries := make([]catalogEntry, len(p.Items))
	for i, item := range p.Items {
		entries[i] = catalogEntry{title: item.Title, posterURL: item.PosterURL}
	}

	stored, err := c.store.Append(ctx, toWatchlist(freshCopy(p.Title, p.Icon, entries)))
	if err != nil {
		return domain.Watchlist{}, err
	}

	c.log.WithFields(logrus.Fields{
		"watchlist_id": stored.ID,
		"title":        stored.Title,
		"item_count":   len(stored.Items),
	}).Info("Watchlist imported")
	return stored, nil
}

// EncodeToString serializes a portable watchlist to the JSON blob the
// user copies around.
func EncodeToString(p domain.PortableWatchlist) (string, error) {
	raw, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("%w: %v", store.ErrInvalidFormat, err)
	}
	return string(raw), nil
}

// DecodeString parses a pasted share blob into the generic structured
// form Import expects. A parse failure is an InvalidFormat condition,
// distinct from structural rejection but reported the same way.
func DecodeString(blob string) (any, error) {
	var payload any
	if err := json.Unmarshal([]byte(strings.TrimSpace(blob)), &payload); err != nil {
		return nil, fmt.Errorf("%w: payload is not valid JSON", store.ErrInvalidFormat)
	}
	return payload, nil
}

// freshCopy is the one reset transformation shared by export and
// import: new identities everywhere, watched false, review empty,
// order = position. Entries must already be in their final order.
func freshCopy(title, icon string, entries []catalogEntry) domain.PortableWatchlist {
	out := domain.PortableWatchlist{
		ID:    identity.NewID(),
		Title: title,
		Icon:  icon,
		Items: make([]domain.PortableItem, len(entries)),
	}
	for i, entry := range entries {
		out.Items[i] = domain.PortableItem{
			ID:        identity.NewID(),
			Title:     entry.title,
			PosterURL: entry.posterURL,
			Watched:   false,
			Order:     i,
			Review:    "",
		}
	}
	return out
}

func toWatchlist(p domain.PortableWatchlist) domain.Watchlist {
	w := domain.Watchlist{
		ID:    p.ID,
		Title: p.Title,
		Icon:  p.Icon,
		Items: make([]domain.MovieItem, len(p.Items)),
	}
	for i, item := range p.Items {
		w.Items[i] = domain.MovieItem{
			ID:        item.ID,
			Title:     item.Title,
			PosterURL: item.PosterURL,
			Watched:   item.Watched,
			Order:     item.Order,
			Review:    item.Review,
		}
	}
	return w
}

// toPortable converts a payload that already passed ImportedWatchlist
// into the typed portable form. Absent optional fields (id, review)
// default to empty; order tolerates both plain and strict JSON number
// decodings.
func toPortable(obj map[string]any) domain.PortableWatchlist {
	p := domain.PortableWatchlist{
		ID:    optionalString(obj, "id"),
		Title: obj["title"].(string),
		Icon:  obj["icon"].(string),
	}
	items := obj["items"].([]any)
	p.Items = make([]domain.PortableItem, len(items))
	for i, raw := range items {
		item := raw.(map[string]any)
		p.Items[i] = domain.PortableItem{
			ID:        optionalString(item, "id"),
			Title:     item["title"].(string),
			PosterURL: item["posterUrl"].(string),
			Watched:   item["watched"].(bool),
			Order:     numeric(item["order"]),
			Review:    optionalString(item, "review"),
		}
	}
	return p
}

func optionalString(obj map[string]any, key string) string {
	s, _ := obj[key].(string)
	return s
}

func numeric(v any) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case json.Number:
		i, _ := n.Int64()
		return int(i)
	default:
		return 0
	}
}
