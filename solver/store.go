package solver

import (
	"os"
	"sync"

	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"
)

// A Strategy is the shared mutable table mapping candidate-set keys to
// chosen guess words. It only ever grows: merging a delta never
// replaces an entry, so a state keeps the first guess ever recorded
// for it. Reads see a consistent snapshot while a save is in flight.
type Strategy struct {
	mu      sync.RWMutex
	entries map[StateKey]string
}

// NewStrategy returns an empty strategy table.
func NewStrategy() *Strategy {
	return &Strategy{entries: make(map[StateKey]string)}
}

// Guess looks up the recorded guess for a candidate-set key.
func (s *Strategy) Guess(key StateKey) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	w, ok := s.entries[key]
	return w, ok
}

// Merge folds a build delta into the table, keeping existing entries,
// and returns how many entries were added.
func (s *Strategy) Merge(delta map[StateKey]string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	added := 0
	for k, w := range delta {
		if _, ok := s.entries[k]; !ok {
			s.entries[k] = w
			added++
		}
	}
	return added
}

// Len returns the number of recorded states.
func (s *Strategy) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Save persists the table to path, atomically via a temp file and
// rename. The write lock is held for the duration so the snapshot on
// disk is consistent; it is released on every exit path.
func (s *Strategy) Save(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	flat := make(map[string]string, len(s.entries))
	for k, w := range s.entries {
		flat[string(k)] = w
	}
	raw, err := msgpack.Marshal(flat)
	if err != nil {
		return errors.Wrap(err, "encode strategy")
	}
	return atomicWrite(path, raw)
}

// LoadStrategy reads a table persisted by Save. A missing file is not
// an error; it yields an empty table.
func LoadStrategy(path string) (*Strategy, error) {
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return NewStrategy(), nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "read strategy")
	}
	var flat map[string]string
	if err := msgpack.Unmarshal(raw, &flat); err != nil {
		return nil, errors.Wrap(err, "decode strategy")
	}
	s := NewStrategy()
	for k, w := range flat {
		s.entries[StateKey(k)] = w
	}
	return s, nil
}
