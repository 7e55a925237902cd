// Package leaderboard ranks submitted scores.
package leaderboard

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

var ErrTopKTooLarge = errors.New("topk exceeds the maximum")

// Entry is a recorded submission.
type Entry struct {
	ID    uuid.UUID
	Score uint32
	At    time.Time
}

// Result is the outcome of a submission.
type Result struct {
	ID   uuid.UUID
	Rank uint32
	Top  []uint32
}

// Store keeps every submitted score sorted highest first. It only ever
// grows. A submission records and ranks the score in a single step.
type Store struct {
	maxTopK uint32
	now     func() time.Time

	mu      sync.Mutex
	entries []Entry
}

// New returns an empty Store. A maxTopK of 0 means no limit.
func New(maxTopK uint32) *Store {
	return &Store{maxTopK: maxTopK, now: time.Now}
}

// Submit records score and returns its rank together with the topK highest
// scores. The rank is the 0-based number of strictly higher scores, so
// equal scores share a rank. An equal score is stored after the ones
// submitted before it.
func (s *Store) Submit(score, topK uint32) (*Result, error) {
	if s.maxTopK > 0 && topK > s.maxTopK {
		return nil, ErrTopKTooLarge
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rank := sort.Search(len(s.entries), func(i int) bool { return s.entries[i].Score <= score })
	at := sort.Search(len(s.entries), func(i int) bool { return s.entries[i].Score < score })
	e := Entry{ID: uuid.New(), Score: score, At: s.now()}
	s.entries = append(s.entries, Entry{})
	copy(s.entries[at+1:], s.entries[at:])
	s.entries[at] = e

	k := min(int(topK), len(s.entries))
	top := make([]uint32, k)
	for i := range top {
		top[i] = s.entries[i].Score
	}
	return &Result{ID: e.ID, Rank: uint32(rank), Top: top}, nil //nolint:gosec
}

// Len returns the number of recorded submissions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Entries returns a copy of every submission, highest score first.
func (s *Store) Entries() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}
