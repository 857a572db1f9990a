package snapshot

import (
	"sync/atomic"
	"time"

	"ledger/internal/core"
)

// Snapshot is one full transaction set as last successfully fetched. It is
// replaced wholesale, never edited, so readers can hand the slice straight
// to the pure report functions.
type Snapshot struct {
	Transactions []core.Transaction
	FetchedAt    time.Time
}

type failure struct {
	kind ErrorKind
	msg  string
	at   time.Time
}

// Store holds the last-known-good snapshot and the last fetch failure. Both
// are swapped with single atomic pointer stores, so readers never observe a
// partially replaced set and a failed poll never clears good data.
type Store struct {
	cur     atomic.Pointer[Snapshot]
	lastErr atomic.Pointer[failure]
}

func NewStore() *Store {
	return &Store{}
}

// Replace installs a freshly fetched set and clears any recorded failure.
func (s *Store) Replace(txs []core.Transaction, at time.Time) {
	s.cur.Store(&Snapshot{Transactions: txs, FetchedAt: at})
	s.lastErr.Store(nil)
}

// RecordFailure notes a failed poll without touching the current snapshot.
func (s *Store) RecordFailure(err error, at time.Time) {
	s.lastErr.Store(&failure{kind: Classify(err), msg: err.Error(), at: at})
}

// Current returns the last good snapshot, ok=false before the first
// successful fetch.
func (s *Store) Current() (Snapshot, bool) {
	p := s.cur.Load()
	if p == nil {
		return Snapshot{}, false
	}
	return *p, true
}

// Status describes the store for the status endpoint: snapshot freshness
// plus the classified last error, if any.
type Status struct {
	HasData       bool      `json:"has_data"`
	FetchedAt     time.Time `json:"fetched_at,omitempty"`
	Count         int       `json:"count"`
	LastError     string    `json:"last_error,omitempty"`
	LastErrorKind ErrorKind `json:"last_error_kind,omitempty"`
	LastErrorAt   time.Time `json:"last_error_at,omitempty"`
}

func (s *Store) Status() Status {
	var st Status
	if snap, ok := s.Current(); ok {
		st.HasData = true
		st.FetchedAt = snap.FetchedAt
		st.Count = len(snap.Transactions)
	}
	if f := s.lastErr.Load(); f != nil {
		st.LastError = f.msg
		st.LastErrorKind = f.kind
		st.LastErrorAt = f.at
	}
	return st
}
