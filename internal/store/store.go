// Package store is the single authority over the persisted watchlist
// collection. Every operation re-reads the full collection, applies
// exactly one change and writes the whole collection back, so the
// store carries no state of its own between calls.
package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"watchdeck/internal/domain"
	"watchdeck/internal/identity"
	"watchdeck/internal/storage"
	"watchdeck/internal/validate"
)

// iconPool is the rotation pool watchlist icons are assigned from,
// keyed by collection size at creation time. Currently a single glyph.
var iconPool = []string{"🎬"}

// Store exposes the create/query/mutate operations that enforce the
// collection's invariants: write-once identity fields, append-only
// membership and the one-way watched flag.
type Store struct {
	repo storage.Repository
	log  logrus.FieldLogger
}

// New creates a Store on top of the given repository.
func New(repo storage.Repository, logger logrus.FieldLogger) *Store {
	return &Store{
		repo: repo,
		log:  logger.WithField("component", "store"),
	}
}

// List returns the full collection in insertion order. An empty or
// corrupt document reads as an empty collection (the repository
// swallows corruption); only a hard storage failure errors.
func (s *Store) List(ctx context.Context) ([]domain.Watchlist, error) {
	return s.load(ctx)
}

// Get looks up one watchlist by id.
func (s *Store) Get(ctx context.Context, watchlistID string) (domain.Watchlist, error) {
	lists, err := s.load(ctx)
	if err != nil {
		return domain.Watchlist{}, err
	}
	idx := findWatchlist(lists, watchlistID)
	if idx < 0 {
		return domain.Watchlist{}, fmt.Errorf("%w: watchlist %s", ErrNotFound, watchlistID)
	}
	return lists[idx], nil
}

// Create validates the title, appends a new empty watchlist to the
// collection and persists it.
func (s *Store) Create(ctx context.Context, title string) (domain.Watchlist, error) {
	if !validate.WatchlistTitle(title) {
		return domain.Watchlist{}, fmt.Errorf("%w: watchlist title must not be empty", ErrInvalidInput)
	}

	lists, err := s.load(ctx)
	if err != nil {
		return domain.Watchlist{}, err
	}

	w := domain.Watchlist{
		ID:    identity.NewID(),
		Title: title,
		Icon:  iconPool[len(lists)%len(iconPool)],
		Items: []domain.MovieItem{},
	}
	lists = append(lists, w)
	if err := s.persist(ctx, lists); err != nil {
		return domain.Watchlist{}, err
	}

	s.log.WithFields(logrus.Fields{
		"watchlist_id": w.ID,
		"title":        w.Title,
	}).Info("Watchlist created")
	return w, nil
}

// AddItem appends a new unwatched item to the given watchlist. The
// item's order is the watchlist's item count before the append.
func (s *Store) AddItem(ctx context.Context, watchlistID, title, posterURL string) (domain.MovieItem, error) {
	if !validate.WatchlistTitle(title) {
		return domain.MovieItem{}, fmt.Errorf("%w: item title must not be empty", ErrInvalidInput)
	}
	if !validate.PosterURL(posterURL) {
		return domain.MovieItem{}, fmt.Errorf("%w: poster URL must be an absolute http(s) URL", ErrInvalidInput)
	}

	lists, err := s.load(ctx)
	if err != nil {
		return domain.MovieItem{}, err
	}
	idx := findWatchlist(lists, watchlistID)
	if idx < 0 {
		return domain.MovieItem{}, fmt.Errorf("%w: watchlist %s", ErrNotFound, watchlistID)
	}

	item := domain.MovieItem{
		ID:        identity.NewID(),
		Title:     title,
		PosterURL: posterURL,
		Watched:   false,
		Order:     len(lists[idx].Items),
		Review:    "",
	}
	lists[idx].Items = append(lists[idx].Items, item)
	if err := s.persist(ctx, lists); err != nil {
		return domain.MovieItem{}, err
	}

	s.log.WithFields(logrus.Fields{
		"watchlist_id": watchlistID,
		"item_id":      item.ID,
		"title":        item.Title,
	}).Info("Item added")
	return item, nil
}

// MarkWatched flips an item's watched flag to true. Marking an
// already-watched item is a no-op success, not an error, so the call
// stays safe against stale UI state; nothing is written in that case.
// The reverse transition does not exist.
func (s *Store) MarkWatched(ctx context.Context, watchlistID, itemID string) (domain.MovieItem, error) {
	lists, err := s.load(ctx)
	if err != nil {
		return domain.MovieItem{}, err
	}
	wIdx, iIdx, err := findItem(lists, watchlistID, itemID)
	if err != nil {
		return domain.MovieItem{}, err
	}

	if lists[wIdx].Items[iIdx].Watched {
		return lists[wIdx].Items[iIdx], nil
	}

	lists[wIdx].Items[iIdx].Watched = true
	if err := s.persist(ctx, lists); err != nil {
		return domain.MovieItem{}, err
	}

	s.log.WithFields(logrus.Fields{
		"watchlist_id": watchlistID,
		"item_id":      itemID,
	}).Info("Item marked watched")
	return lists[wIdx].Items[iIdx], nil
}

// SetReview replaces an item's review text. Any text is accepted,
// including the empty string, which clears the review.
func (s *Store) SetReview(ctx context.Context, watchlistID, itemID, text string) (domain.MovieItem, error) {
	lists, err := s.load(ctx)
	if err != nil {
		return domain.MovieItem{}, err
	}
	wIdx, iIdx, err := findItem(lists, watchlistID, itemID)
	if err != nil {
		return domain.MovieItem{}, err
	}

	lists[wIdx].Items[iIdx].Review = text
	if err := s.persist(ctx, lists); err != nil {
		return domain.MovieItem{}, err
	}
	return lists[wIdx].Items[iIdx], nil
}

// Append adds an already-built watchlist to the collection and
// persists it. The share codec funnels imports through here so that
// every durable write still goes through the store.
func (s *Store) Append(ctx context.Context, w domain.Watchlist) (domain.Watchlist, error) {
	lists, err := s.load(ctx)
	if err != nil {
		return domain.Watchlist{}, err
	}
	lists = append(lists, w)
	if err := s.persist(ctx, lists); err != nil {
		return domain.Watchlist{}, err
	}
	return w, nil
}

// TitleExists reports whether any watchlist in the collection carries
// the given title, compared case-insensitively.
func (s *Store) TitleExists(ctx context.Context, title string) (bool, error) {
	lists, err := s.load(ctx)
	if err != nil {
		return false, err
	}
	for _, w := range lists {
		if strings.EqualFold(w.Title, title) {
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) load(ctx context.Context) ([]domain.Watchlist, error) {
	lists, err := s.repo.LoadCollection(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return lists, nil
}

func (s *Store) persist(ctx context.Context, lists []domain.Watchlist) error {
	if err := s.repo.SaveCollection(ctx, lists); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return nil
}

func findWatchlist(lists []domain.Watchlist, watchlistID string) int {
	for i := range lists {
		if lists[i].ID == watchlistID {
			return i
		}
	}
	return -1
}

func findItem(lists []domain.Watchlist, watchlistID, itemID string) (int, int, error) {
	wIdx := findWatchlist(lists, watchlistID)
	if wIdx < 0 {
		return 0, 0, fmt.Errorf("%w: watchlist %s", ErrNotFound, watchlistID)
	}
	iIdx := lists[wIdx].FindItem(itemID)
	if iIdx < 0 {
		return 0, 0, fmt.Errorf("%w: item %s in watchlist %s", ErrNotFound, itemID, watchlistID)
	}
	return wIdx, iIdx, nil
}
