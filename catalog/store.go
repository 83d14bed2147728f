package catalog

import (
	"encoding/json"
	"errors"
	"log"
	"os"
	"sync"
	"time"
)

// DefaultCacheTTL is how long a loaded snapshot is served before the source
// file is re-read. the index file is around 1.7MB, so re-parsing per request
// is off the table.
const DefaultCacheTTL = 5 * time.Minute

// Store loads the people catalog from a JSON file and memoizes the parsed
// snapshot for a bounded duration. a refresh swaps the snapshot pointer
// atomically, so concurrent readers either see the old snapshot or the new
// one in full, never a mix.
type Store struct {
	path string
	ttl  time.Duration

	mu       sync.Mutex
	cached   *Index
	loadedAt time.Time
}

// NewStore creates a catalog store reading from path. ttl <= 0 falls back to
// DefaultCacheTTL.
func NewStore(path string, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &Store{path: path, ttl: ttl}
}

// Load returns the current catalog snapshot, reading and parsing the source
// file only when the cached snapshot has expired. callers within the cache
// window receive the identical *Index, not a copy.
//
// failures map to the sentinel errors in errors.go and are never masked as an
// empty catalog; degrading to "not found" is the caller's decision.
func (s *Store) Load() (*Index, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cached != nil && time.Since(s.loadedAt) < s.ttl {
		return s.cached, nil
	}

	idx, err := s.readIndex()
	if err != nil {
		return nil, err
	}

	s.cached = idx
	s.loadedAt = time.Now()
	return idx, nil
}

// Clear drops the cached snapshot so the next Load re-reads the source file.
// used by tests and the administrative refresh endpoint.
func (s *Store) Clear() {
	s.mu.Lock()
	s.cached = nil
	s.loadedAt = time.Time{}
	s.mu.Unlock()
}

// Path returns the catalog file path the store reads from.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) readIndex() (*Index, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		// log the real error server-side; callers only see the sentinel
		log.Printf("catalog: failed to read %s: %v", s.path, err)
		return nil, ErrDataUnavailable
	}

	var idx Index
	if err := json.Unmarshal(data, &idx); err != nil {
		log.Printf("catalog: failed to parse %s: %v", s.path, err)
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			// valid JSON, wrong shape (e.g. "people" is not a list)
			return nil, ErrDataShape
		}
		return nil, ErrDataFormat
	}

	if idx.People == nil {
		log.Printf("catalog: %s parsed but has no people array", s.path)
		return nil, ErrDataShape
	}

	return &idx, nil
}
