package hook

import (
	"context"
	"reflect"
	"sync"
)

// Query keeps the result of an Operation up to date with its dependencies.
type Query[T any] struct {
	parent context.Context

	mu      sync.Mutex
	op      Operation[T]
	deps    []any
	state   State[T]
	gen     uint64
	version uint64
	cancel  context.CancelFunc
	closed  bool

	wg    sync.WaitGroup
	subs  broadcaster[State[T]]
	fetch int
}

// NewQuery starts the first fetch of op immediately. The fetch context
// derives from ctx.
func NewQuery[T any](ctx context.Context, op Operation[T], deps ...any) *Query[T] {
	q := &Query[T]{
		parent: ctx,
		op:     op,
		deps:   normalizeDeps(deps),
	}

	q.mu.Lock()
	version, state := q.startLocked()
	q.mu.Unlock()

	q.subs.publish(version, state)
	return q
}

// Update swaps in op and refetches when deps differ from the current ones
// by value. It reports whether a fetch was started.
func (q *Query[T]) Update(op Operation[T], deps ...any) bool {
	deps = normalizeDeps(deps)

	q.mu.Lock()
	if q.closed || reflect.DeepEqual(q.deps, deps) {
		q.mu.Unlock()
		return false
	}
	q.op = op
	q.deps = deps
	version, state := q.startLocked()
	q.mu.Unlock()

	q.subs.publish(version, state)
	return true
}

// Refetch re-runs the current operation.
func (q *Query[T]) Refetch() {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	version, state := q.startLocked()
	q.mu.Unlock()

	q.subs.publish(version, state)
}

func (q *Query[T]) State() State[T] {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.state
}

// Fetches returns how many fetches were started over the query's life.
func (q *Query[T]) Fetches() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.fetch
}

// Subscribe registers fn for state changes and returns its release func.
// fn must not call back into the Query.
func (q *Query[T]) Subscribe(fn func(State[T])) func() {
	return q.subs.subscribe(fn)
}

// Close cancels the in-flight fetch. No state change is committed or
// delivered after Close returns.
func (q *Query[T]) Close() {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	if q.cancel != nil {
		q.cancel()
		q.cancel = nil
	}
	q.mu.Unlock()

	q.subs.close()
}

// Wait blocks until every started fetch has returned.
func (q *Query[T]) Wait() {
	q.wg.Wait()
}

func (q *Query[T]) startLocked() (uint64, State[T]) {
	if q.cancel != nil {
		q.cancel()
	}
	ctx, cancel := context.WithCancel(q.parent)
	q.cancel = cancel
	q.gen++
	q.fetch++

	q.state.Loading = true
	q.state.Err = nil
	q.version++

	gen, op := q.gen, q.op
	q.wg.Add(1)
	go func() {
		defer q.wg.Done()
		RunWithLifecycle(ctx, op, nil,
			func(data T) { q.commit(gen, data, nil) },
			func(err error) {
				var zero T
				q.commit(gen, zero, err)
			},
		)
	}()

	return q.version, q.state
}

func (q *Query[T]) commit(gen uint64, data T, err error) {
	q.mu.Lock()
	if q.closed || gen != q.gen {
		q.mu.Unlock()
		return
	}
	q.cancel()
	q.cancel = nil

	q.state = State[T]{Data: data, Err: err}
	q.version++
	version, state := q.version, q.state
	q.mu.Unlock()

	q.subs.publish(version, state)
}

func normalizeDeps(deps []any) []any {
	if len(deps) == 0 {
		return nil
	}
	out := make([]any, len(deps))
	copy(out, deps)
	return out
}
