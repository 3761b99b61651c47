package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/five82/folio/internal/logtail"
)

// failingThreshold is the number of consecutive failed loads after which the
// source is reported as failing.
const failingThreshold = 2

// Snapshot represents the latest log data available to the UI.
type Snapshot struct {
	Source              string
	Entries             []logtail.Entry
	HasData             bool
	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int
}

// IsFailing returns true when the log has been unreadable for multiple polls.
func (s Snapshot) IsFailing() bool {
	return s.ConsecutiveFailures >= failingThreshold
}

// Filter returns the entries at or above min severity.
func (s Snapshot) Filter(min logtail.Level) []logtail.Entry {
	if min == logtail.LevelUnknown {
		return s.Entries
	}
	out := make([]logtail.Entry, 0, len(s.Entries))
	for _, e := range s.Entries {
		if e.MatchLevel(min) {
			out = append(out, e)
		}
	}
	return out
}

// Store coordinates concurrent updates to the snapshot.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
	version  uint64
}

// NewStore returns a store for the log at source.
func NewStore(source string) *Store {
	return &Store{snapshot: Snapshot{Source: source}}
}

// Update replaces the stored entries. When err is non-nil the previous
// entries are kept but the error is recorded for visibility.
func (s *Store) Update(entries []logtail.Entry, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.LastUpdated = time.Now()
	if err != nil {
		s.snapshot.LastError = err
		s.snapshot.ConsecutiveFailures++
		return
	}

	s.snapshot.Entries = cloneEntries(entries)
	s.snapshot.HasData = true
	s.snapshot.LastError = nil
	s.snapshot.ConsecutiveFailures = 0
	s.version++
}

// Version increases on every successful update. The UI uses it to skip
// re-paging when nothing new was loaded.
func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Entries = cloneEntries(s.snapshot.Entries)
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}

func cloneEntries(entries []logtail.Entry) []logtail.Entry {
	if len(entries) == 0 {
		return nil
	}
	dup := make([]logtail.Entry, len(entries))
	copy(dup, entries)
	return dup
}
