package hook

import (
	"context"
	"strings"
	"sync"
	"time"
)

const DefaultDebounce = 300 * time.Millisecond

// SearchFunc runs one search for a non-blank query.
type SearchFunc[T any] func(ctx context.Context, query string) ([]T, error)

type SearchState[T any] struct {
	Query   string
	Results []T
	Loading bool
	Err     error
}

// Search debounces query changes and keeps the results of the latest query.
type Search[T any] struct {
	parent context.Context
	search SearchFunc[T]
	delay  time.Duration

	mu      sync.Mutex
	state   SearchState[T]
	timer   *time.Timer
	cancel  context.CancelFunc
	gen     uint64
	version uint64
	closed  bool
	calls   int

	wg   sync.WaitGroup
	subs broadcaster[SearchState[T]]
}

// NewSearch returns an idle Search. A delay of zero means DefaultDebounce.
func NewSearch[T any](ctx context.Context, fn SearchFunc[T], delay time.Duration) *Search[T] {
	if delay <= 0 {
		delay = DefaultDebounce
	}
	return &Search[T]{
		parent: ctx,
		search: fn,
		delay:  delay,
		state:  SearchState[T]{Results: []T{}},
	}
}

// SetQuery replaces the live query. A blank query clears the results at
// once without a search call. Anything else is searched after the debounce
// delay unless another SetQuery arrives first.
func (s *Search[T]) SetQuery(query string) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}

	s.gen++
	gen := s.gen
	s.stopLocked()
	s.state.Query = query

	if strings.TrimSpace(query) == "" {
		s.state.Results = []T{}
		s.state.Loading = false
		s.state.Err = nil
		version, state := s.bumpLocked()
		s.mu.Unlock()

		s.subs.publish(version, state)
		return
	}

	s.wg.Add(1)
	s.timer = time.AfterFunc(s.delay, func() {
		defer s.wg.Done()
		s.fire(gen, query)
	})
	s.mu.Unlock()
}

func (s *Search[T]) fire(gen uint64, query string) {
	s.mu.Lock()
	if s.closed || gen != s.gen {
		s.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(s.parent)
	s.cancel = cancel
	s.timer = nil
	s.calls++
	s.mu.Unlock()
	defer cancel()

	RunWithLifecycle(ctx,
		func(ctx context.Context) ([]T, error) { return s.search(ctx, query) },
		func() {
			s.update(gen, func(st *SearchState[T]) {
				st.Loading = true
				st.Err = nil
			})
		},
		func(results []T) {
			s.update(gen, func(st *SearchState[T]) {
				st.Results = results
				st.Loading = false
			})
		},
		func(err error) {
			s.update(gen, func(st *SearchState[T]) {
				st.Results = []T{}
				st.Loading = false
				st.Err = err
			})
		},
	)
}

func (s *Search[T]) update(gen uint64, fn func(*SearchState[T])) {
	s.mu.Lock()
	if s.closed || gen != s.gen {
		s.mu.Unlock()
		return
	}
	fn(&s.state)
	version, state := s.bumpLocked()
	s.mu.Unlock()

	s.subs.publish(version, state)
}

func (s *Search[T]) State() SearchState[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Calls returns how many searches reached the backend.
func (s *Search[T]) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

// Subscribe registers fn for state changes. fn must not call back into the
// Search.
func (s *Search[T]) Subscribe(fn func(SearchState[T])) func() {
	return s.subs.subscribe(fn)
}

// Close drops the pending timer and cancels the in-flight search.
func (s *Search[T]) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.stopLocked()
	s.mu.Unlock()

	s.subs.close()
}

// Wait blocks until no debounce timer or search is outstanding.
func (s *Search[T]) Wait() {
	s.wg.Wait()
}

func (s *Search[T]) stopLocked() {
	if s.timer != nil && s.timer.Stop() {
		s.wg.Done()
	}
	s.timer = nil
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

func (s *Search[T]) bumpLocked() (uint64, SearchState[T]) {
	s.version++
	return s.version, s.state
}
