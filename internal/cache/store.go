package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"HotelOS/internal/lib/sl"
)

// ErrNotFound is returned by Load when a key was never saved.
var ErrNotFound = errors.New("cache: key not found")

// Store is the durable local key/value cache seeding the view model before
// any remote snapshot lands. One JSON file per key; a schema change is
// handled by bumping the version suffix in the key name, never in place.
type Store struct {
	dir string
	mu  sync.Mutex
	log *slog.Logger
}

func NewStore(dir string, log *slog.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cache dir %s: %w", dir, err)
	}
	return &Store{
		dir: dir,
		log: log.With(sl.Module("cache")),
	}, nil
}

func (s *Store) Load(key string, out any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return ErrNotFound
		}
		return fmt.Errorf("cache read %s: %w", key, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("cache decode %s: %w", key, err)
	}
	return nil
}

func (s *Store) Save(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("cache encode %s: %w", key, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tmp := s.path(key) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("cache write %s: %w", key, err)
	}
	if err := os.Rename(tmp, s.path(key)); err != nil {
		return fmt.Errorf("cache write %s: %w", key, err)
	}
	return nil
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// LoadOr reads a key and falls back to the provided default on a missing
// or corrupt entry. A corrupt entry must never prevent startup; it is
// logged and replaced by the fallback.
func LoadOr[T any](s *Store, key string, fallback T) T {
	var out T
	err := s.Load(key, &out)
	if err == nil {
		return out
	}
	if !errors.Is(err, ErrNotFound) {
		s.log.Warn("discarding unreadable cache entry", slog.String("key", key), sl.Err(err))
	}
	return fallback
}
