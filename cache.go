package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Storage keys. The snapshot and the last-update stamp are kept under
// separate keys so a corrupt snapshot never takes the stamp down with it.
const (
	statsKey      = "stats.json"
	lastUpdateKey = "last_update"
)

// Store is the durable key-value backend the cache persists through.
// It exists as an interface so tests can run against an in-memory map.
type Store interface {
	Load(key string) ([]byte, error)
	Save(key string, data []byte) error
}

// FileStore keeps each key as a file in a directory, the same way theme
// files are kept on disk.
type FileStore struct {
	dir string
}

// NewFileStore creates a store rooted at the user config directory
// (e.g. ~/.config/leettui).
func NewFileStore() (*FileStore, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to locate config dir: %w", err)
	}

	dir := filepath.Join(base, "leettui")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create cache dir: %w", err)
	}

	return &FileStore{dir: dir}, nil
}

func (s *FileStore) Load(key string) ([]byte, error) {
	return os.ReadFile(filepath.Join(s.dir, key))
}

func (s *FileStore) Save(key string, data []byte) error {
	return os.WriteFile(filepath.Join(s.dir, key), data, 0o644)
}

// StatsCache holds the last known ProfileStats and when it was last refreshed
// by a successful fetch. It is read and written only from the controller's
// single-threaded update loop, so it needs no locking.
type StatsCache struct {
	store      Store
	stats      ProfileStats
	lastUpdate time.Time // zero when no successful fetch is on record

	persistErr error // last persistence failure, surfaced but never fatal
}

// NewStatsCache restores the previously persisted snapshot, or falls back to
// the built-in default on absence or any decode failure. A nil store yields a
// memory-only cache.
func NewStatsCache(store Store) *StatsCache {
	c := &StatsCache{
		store: store,
		stats: DefaultStats(),
	}

	if store == nil {
		return c
	}

	if data, err := store.Load(statsKey); err == nil {
		var stats ProfileStats
		if err := json.Unmarshal(data, &stats); err == nil {
			c.stats = stats
		}
	}

	if data, err := store.Load(lastUpdateKey); err == nil {
		if t, err := time.Parse(time.RFC3339, string(data)); err == nil {
			c.lastUpdate = t
		}
	}

	return c
}

// Get returns the current snapshot.
func (c *StatsCache) Get() ProfileStats {
	return c.stats
}

// Set overwrites the snapshot and persists it along with the update stamp.
// Persistence failures are recorded for display and otherwise ignored; the
// in-memory snapshot always wins.
func (c *StatsCache) Set(stats ProfileStats, now time.Time) {
	c.stats = stats
	c.lastUpdate = now
	c.persistErr = nil

	if c.store == nil {
		return
	}

	data, err := json.Marshal(stats)
	if err == nil {
		err = c.store.Save(statsKey, data)
	}
	if err == nil {
		err = c.store.Save(lastUpdateKey, []byte(now.Format(time.RFC3339)))
	}
	if err != nil {
		c.persistErr = err
	}
}

// LastUpdate reports when the snapshot was last refreshed by a successful
// fetch. ok is false when no refresh is on record.
func (c *StatsCache) LastUpdate() (t time.Time, ok bool) {
	return c.lastUpdate, !c.lastUpdate.IsZero()
}

// PersistWarning returns the most recent persistence failure, if the last
// Set could not reach the store.
func (c *StatsCache) PersistWarning() error {
	return c.persistErr
}
