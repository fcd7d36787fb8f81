// Package store owns the current timeline snapshot and its undo/redo
// history. History entries are whole snapshots: simple and correct, at
// the cost of memory on very large snapshots. The stacks are bounded so
// that cost stays fixed.
package store

import "github.com/rowanveldt/chronolane/internal/domain"

// DefaultHistoryLimit bounds each history stack.
const DefaultHistoryLimit = 50

// Store holds the live snapshot and bounded past/future stacks.
// It has a single writer (the interaction controller) and is read-only
// to everything else, so it needs no locking.
type Store struct {
	snapshot *domain.Snapshot
	past     []*domain.Snapshot
	future   []*domain.Snapshot
	limit    int
}

// New creates an empty store. limit <= 0 uses DefaultHistoryLimit.
func New(limit int) *Store {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return &Store{limit: limit}
}

// Load replaces the snapshot and resets history. A nil snapshot is
// valid: it represents the state before the first fetch completes.
func (s *Store) Load(snap *domain.Snapshot) {
	s.snapshot = snap
	s.past = nil
	s.future = nil
}

// Snapshot returns the live snapshot (nil before first load).
func (s *Store) Snapshot() *domain.Snapshot {
	return s.snapshot
}

// Commit records pre as the pre-mutation snapshot of an already-applied
// change: pre goes onto past, future is cleared, the oldest entry is
// evicted past the limit.
func (s *Store) Commit(pre *domain.Snapshot) {
	if pre == nil {
		return
	}
	s.past = append(s.past, pre)
	if len(s.past) > s.limit {
		s.past = s.past[1:]
	}
	s.future = nil
}

// Undo restores the most recent past snapshot, moving the current one
// onto the front of future. Returns false when there is nothing to undo.
func (s *Store) Undo() bool {
	if len(s.past) == 0 || s.snapshot == nil {
		return false
	}
	prev := s.past[len(s.past)-1]
	s.past = s.past[:len(s.past)-1]
	s.future = append([]*domain.Snapshot{s.snapshot}, s.future...)
	if len(s.future) > s.limit {
		s.future = s.future[:s.limit]
	}
	s.snapshot = prev
	return true
}

// Redo is the mirror of Undo.
func (s *Store) Redo() bool {
	if len(s.future) == 0 || s.snapshot == nil {
		return false
	}
	next := s.future[0]
	s.future = s.future[1:]
	s.past = append(s.past, s.snapshot)
	if len(s.past) > s.limit {
		s.past = s.past[1:]
	}
	s.snapshot = next
	return true
}

// CanUndo reports whether an undo entry exists.
func (s *Store) CanUndo() bool { return len(s.past) > 0 }

// CanRedo reports whether a redo entry exists.
func (s *Store) CanRedo() bool { return len(s.future) > 0 }

// DropLastCommit removes the newest past entry and returns it without
// touching the live snapshot. Used by gesture rollback.
func (s *Store) DropLastCommit() *domain.Snapshot {
	if len(s.past) == 0 {
		return nil
	}
	pre := s.past[len(s.past)-1]
	s.past = s.past[:len(s.past)-1]
	return pre
}

// Replace swaps the live snapshot without recording history.
func (s *Store) Replace(snap *domain.Snapshot) {
	s.snapshot = snap
}
