package feedback

import "sync"

// State holds the per-(domain, subdomain) confidence deltas learned from
// feedback. It supports many concurrent readers and occasional writers;
// increments are atomic read-modify-write under the lock, so concurrent
// feedback on the same key never loses an update and readers never observe
// a half-applied delta.
type State struct {
	mu     sync.RWMutex
	deltas map[string]float64
}

// NewState returns an empty adjustment state.
func NewState() *State {
	return &State{deltas: make(map[string]float64)}
}

// Key builds the map key for a domain/subdomain pair.
func Key(domainLabel, subdomain string) string {
	return domainLabel + "/" + subdomain
}

// Get returns the cumulative delta for the pair, zero if none.
func (s *State) Get(domainLabel, subdomain string) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.deltas[Key(domainLabel, subdomain)]
}

// Add applies step to the pair's delta and returns the new cumulative value.
func (s *State) Add(domainLabel, subdomain string, step float64) float64 {
	key := Key(domainLabel, subdomain)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deltas[key] += step
	return s.deltas[key]
}

// Snapshot returns a copy of all deltas, keyed by "domain/subdomain".
func (s *State) Snapshot() map[string]float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]float64, len(s.deltas))
	for k, v := range s.deltas {
		out[k] = v
	}
	return out
}

// Restore replaces the state with a previously persisted snapshot.
func (s *State) Restore(deltas map[string]float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deltas = make(map[string]float64, len(deltas))
	for k, v := range deltas {
		s.deltas[k] = v
	}
}

// Len returns the number of tracked keys.
func (s *State) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.deltas)
}
