package tasks

import (
	"context"
	"sync"
	"sync/atomic"
)

// SessionResult is one delivered search outcome.
type SessionResult struct {
	Query string
	Run   *SearchRunResult
	Err   error
}

// Session serializes interactive searches with latest-query-wins ordering.
//
// Each call to [Session.Search] supersedes any still-running one: when an older
// query's downstream content fetch resolves after a newer query was issued, the
// older result is discarded rather than delivered out of order. Typical callers
// issue one Search per debounced keystroke and read from [Session.Results].
type Session struct {
	engine *SearchEngine

	generation atomic.Uint64

	mu      sync.Mutex
	results chan SessionResult
	closed  bool
}

// NewSession creates a Session over the given engine. The results channel is
// buffered; a slow reader drops superseded results, never blocks a search.
func NewSession(engine *SearchEngine) *Session {
	return &Session{
		engine:  engine,
		results: make(chan SessionResult, 1),
	}
}

// Results is the channel delivered search outcomes arrive on.
func (s *Session) Results() <-chan SessionResult {
	return s.results
}

// Search issues a query asynchronously. The result is delivered on [Session.Results]
// only if no newer query has been issued by the time it completes.
func (s *Session) Search(ctx context.Context, query string) {
	generation := s.generation.Add(1)

	go func() {
		run, err := s.engine.Run(ctx, nil, query)

		// A newer query superseded this one while it was in flight.
		if s.generation.Load() != generation {
			return
		}

		s.deliver(SessionResult{Query: query, Run: run, Err: err})
	}()
}

// deliver replaces any undrained result with the newer one.
func (s *Session) deliver(result SessionResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	select {
	case <-s.results:
	default:
	}
	s.results <- result
}

// Close stops delivery. In-flight searches finish but their results are dropped.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed {
		s.closed = true
		close(s.results)
	}
}
