package main

import (
	"errors"
	"reflect"
	"testing"
	"time"
)

// memStore is an in-memory Store for tests.
type memStore struct {
	data    map[string][]byte
	saveErr error
}

func newMemStore() *memStore {
	return &memStore{data: make(map[string][]byte)}
}

func (s *memStore) Load(key string) ([]byte, error) {
	data, ok := s.data[key]
	if !ok {
		return nil, errors.New("no such key")
	}
	return data, nil
}

func (s *memStore) Save(key string, data []byte) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.data[key] = data
	return nil
}

func TestStatsCacheDefaults(t *testing.T) {
	tests := []struct {
		name  string
		store Store
	}{
		{
			name:  "nil store",
			store: nil,
		},
		{
			name:  "empty store",
			store: newMemStore(),
		},
		{
			name: "corrupt snapshot",
			store: &memStore{data: map[string][]byte{
				statsKey:      []byte("{{{ not json"),
				lastUpdateKey: []byte("also not a timestamp"),
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cache := NewStatsCache(tt.store)

			if !reflect.DeepEqual(cache.Get(), DefaultStats()) {
				t.Errorf("Get() = %+v, want default snapshot", cache.Get())
			}
			if _, ok := cache.LastUpdate(); ok {
				t.Error("LastUpdate() reports a time for a fresh cache")
			}
		})
	}
}

func TestStatsCacheSetPersistsAndRestores(t *testing.T) {
	store := newMemStore()
	cache := NewStatsCache(store)

	stats := ProfileStats{
		TotalSolved:        42,
		EasySolved:         20,
		MediumSolved:       15,
		HardSolved:         7,
		SubmissionCalendar: SubmissionCalendar{1754352000: 2},
		TotalSubmissions:   99,
	}
	now := time.Date(2026, time.February, 4, 10, 30, 0, 0, time.UTC)

	cache.Set(stats, now)

	if !reflect.DeepEqual(cache.Get(), stats) {
		t.Errorf("Get() after Set = %+v, want %+v", cache.Get(), stats)
	}
	if got, ok := cache.LastUpdate(); !ok || !got.Equal(now) {
		t.Errorf("LastUpdate() = %v, %v; want %v, true", got, ok, now)
	}
	if err := cache.PersistWarning(); err != nil {
		t.Errorf("unexpected persist warning: %v", err)
	}

	// A second cache over the same store restores the snapshot.
	restored := NewStatsCache(store)
	if !reflect.DeepEqual(restored.Get(), stats) {
		t.Errorf("restored Get() = %+v, want %+v", restored.Get(), stats)
	}
	if got, ok := restored.LastUpdate(); !ok || !got.Equal(now) {
		t.Errorf("restored LastUpdate() = %v, %v; want %v, true", got, ok, now)
	}
}

func TestStatsCachePersistFailureNotFatal(t *testing.T) {
	store := newMemStore()
	store.saveErr = errors.New("disk full")
	cache := NewStatsCache(store)

	stats := DefaultStats()
	stats.TotalSolved = 77

	cache.Set(stats, time.Now())

	// The in-memory snapshot wins even when the store is broken.
	if cache.Get().TotalSolved != 77 {
		t.Errorf("Get().TotalSolved = %d, want 77", cache.Get().TotalSolved)
	}
	if cache.PersistWarning() == nil {
		t.Error("expected a persist warning")
	}

	// A later successful Set clears the warning.
	store.saveErr = nil
	cache.Set(stats, time.Now())
	if err := cache.PersistWarning(); err != nil {
		t.Errorf("persist warning not cleared: %v", err)
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	store, err := NewFileStore()
	if err != nil {
		t.Fatalf("NewFileStore() failed: %v", err)
	}

	if err := store.Save(statsKey, []byte(`{"totalSolved":1}`)); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	data, err := store.Load(statsKey)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if string(data) != `{"totalSolved":1}` {
		t.Errorf("Load() = %s", data)
	}

	if _, err := store.Load("missing-key"); err == nil {
		t.Error("Load() of a missing key should fail")
	}
}
