package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/sirupsen/logrus"

	"watchdeck/internal/domain"
)

// collectionKey is the one fixed key under which the entire serialized
// collection lives. There is deliberately no per-record keying: the
// document is always read and written whole.
const collectionKey = "watchdeck:watchlists"

// BadgerRepository implements Repository using BadgerDB.
type BadgerRepository struct {
	db  *badger.DB
	log logrus.FieldLogger
}

// NewBadgerRepository opens the database at the specified path and
// wires Badger's internal logging into the application logger.
func NewBadgerRepository(dbPath string, logger logrus.FieldLogger) (*BadgerRepository, error) {
	opts := badger.DefaultOptions(dbPath)
	opts.Logger = &badgerLogger{logger.WithField("component", "badgerdb")}

	db, err := badger.Open(opts)
	if err != nil {
		logger.WithError(err).Error("Failed to open BadgerDB")
		return nil, fmt.Errorf("failed to open badger db at %s: %w", dbPath, err)
	}

	return &BadgerRepository{
		db:  db,
		log: logger.WithField("component", "repository"),
	}, nil
}

// Close closes the BadgerDB database connection.
func (r *BadgerRepository) Close() error {
	if err := r.db.Close(); err != nil {
		r.log.WithError(err).Error("Error closing BadgerDB")
		return err
	}
	return nil
}

// LoadCollection reads the persisted document. An absent key and an
// unparsable value both resolve to an empty collection: losing the
// whole app to one corrupt blob is a worse outcome than starting
// fresh, so corruption is swallowed here and reported only through
// the log.
func (r *BadgerRepository) LoadCollection(ctx context.Context) ([]domain.Watchlist, error) {
	var raw []byte
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(collectionKey))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		raw, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		r.log.WithError(err).Error("Failed to read watchlist document from BadgerDB")
		return nil, fmt.Errorf("failed to read watchlist document: %w", err)
	}

	if len(raw) == 0 {
		return []domain.Watchlist{}, nil
	}

	var lists []domain.Watchlist
	if err := json.Unmarshal(raw, &lists); err != nil {
		r.log.WithError(err).Warn("Stored watchlist document is unreadable, treating it as an empty collection")
		return []domain.Watchlist{}, nil
	}
	return lists, nil
}

// SaveCollection serializes the whole collection and replaces the
// stored document in one Badger transaction.
func (r *BadgerRepository) SaveCollection(ctx context.Context, lists []domain.Watchlist) error {
	payload, err := json.Marshal(lists)
	if err != nil {
		r.log.WithError(err).Error("Failed to marshal watchlist document")
		return fmt.Errorf("failed to marshal watchlist document: %w", err)
	}

	err = r.db.Update(func(txn *badger.Txn) error {
		return txn.SetEntry(badger.NewEntry([]byte(collectionKey), payload))
	})
	if err != nil {
		r.log.WithError(err).Error("Failed to write watchlist document to BadgerDB")
		return fmt.Errorf("failed to write watchlist document: %w", err)
	}

	r.log.WithField("watchlist_count", len(lists)).Debug("Watchlist document saved")
	return nil
}

// badgerLogger adapts logrus.FieldLogger to Badger's logger interface.
type badgerLogger struct {
	logger logrus.FieldLogger
}

func (l *badgerLogger) Errorf(f string, v ...interface{}) {
	l.logger.Errorf(f, v...)
}
func (l *badgerLogger) Warningf(f string, v ...interface{}) {
	l.logger.Warningf(f, v...)
}
func (l *badgerLogger) Infof(f string, v ...interface{}) {
	l.logger.Infof(f, v...)
}
func (l *badgerLogger) Debugf(f string, v ...interface{}) {
	l.logger.Debugf(f, v...)
}
