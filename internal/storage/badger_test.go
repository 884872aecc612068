package storage

import (
	"context"
	"os"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"watchdeck/internal/domain"
)

// setupTestDB creates a temporary BadgerDB instance for testing.
// t.TempDir() handles directory cleanup after the test completes.
func setupTestDB(t *testing.T) *BadgerRepository {
	t.Helper()

	testLogger := logrus.New()
	testLogger.SetOutput(os.Stderr)
	testLogger.SetLevel(logrus.ErrorLevel)

	repo, err := NewBadgerRepository(t.TempDir(), testLogger)
	require.NoError(t, err, "Failed to create test BadgerDB repository")
	t.Cleanup(func() {
		assert.NoError(t, repo.Close(), "Failed to close test BadgerDB repository")
	})

	return repo
}

func TestBadgerRepository_SaveAndLoadCollection(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	lists := []domain.Watchlist{
		{
			ID:    "w1",
			Title: "MCU Marathon",
			Icon:  "🎬",
			Items: []domain.MovieItem{
				{ID: "i1", Title: "Iron Man", PosterURL: "https://img/im.jpg", Order: 0},
				{ID: "i2", Title: "Iron Man 2", PosterURL: "https://img/im2.jpg", Watched: true, Order: 1, Review: "fun"},
			},
		},
		{ID: "w2", Title: "Horror", Icon: "🎬", Items: []domain.MovieItem{}},
	}

	require.NoError(t, repo.SaveCollection(ctx, lists))

	loaded, err := repo.LoadCollection(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, lists, loaded)

	// A save replaces the whole document, not individual records.
	require.NoError(t, repo.SaveCollection(ctx, lists[:1]))
	loaded, err = repo.LoadCollection(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "w1", loaded[0].ID)
}

func TestBadgerRepository_LoadCollection_AbsentKey(t *testing.T) {
	repo := setupTestDB(t)

	loaded, err := repo.LoadCollection(context.Background())
	require.NoError(t, err, "An absent document must not be an error")
	assert.Empty(t, loaded)
	assert.NotNil(t, loaded, "Absent document should read as an empty collection, not nil")
}

func TestBadgerRepository_LoadCollection_CorruptDocument(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveCollection(ctx, []domain.Watchlist{{ID: "w1", Title: "Horror"}}))

	// Clobber the stored blob with something unparsable.
	err := repo.db.Update(func(txn *badger.Txn) error {
		return txn.SetEntry(badger.NewEntry([]byte(collectionKey), []byte("{not json")))
	})
	require.NoError(t, err)

	loaded, err := repo.LoadCollection(ctx)
	require.NoError(t, err, "Corruption is swallowed, not surfaced")
	assert.Empty(t, loaded, "A corrupt document reads as an empty collection")
}

func TestBadgerRepository_SaveEmptyCollection(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveCollection(ctx, []domain.Watchlist{}))

	loaded, err := repo.LoadCollection(ctx)
	require.NoError(t, err)
	assert.Empty(t, loaded)
}
