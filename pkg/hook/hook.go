// Package hook runs asynchronous fetches behind a uniform
// {Data, Loading, Err} state with refetch, pagination, debounced search and
// optimistic update variants.
//
// Every variant commits only the result of its latest run. Superseded runs
// have their context cancelled and their results dropped.
package hook

import (
	"context"
	"sync"
)

// Operation is a zero-argument fetch bound to its parameters.
type Operation[T any] func(ctx context.Context) (T, error)

// State is the observable state of a Query.
type State[T any] struct {
	Data    T
	Loading bool
	Err     error
}

// Message returns the human readable error, or "" on success.
func (s State[T]) Message() string {
	if s.Err == nil {
		return ""
	}
	return s.Err.Error()
}

// RunWithLifecycle runs op and reports through the callbacks: onStart
// before the call, then exactly one of onSuccess or onError. Nil callbacks
// are skipped.
func RunWithLifecycle[T any](ctx context.Context, op Operation[T], onStart func(), onSuccess func(T), onError func(error)) {
	if onStart != nil {
		onStart()
	}

	data, err := op(ctx)
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		if onError != nil {
			onError(err)
		}
		return
	}
	if onSuccess != nil {
		onSuccess(data)
	}
}

// broadcaster fans state snapshots out to subscribers. Snapshots carry a
// version and older versions than the last delivered one are dropped, so
// subscribers never observe state going backwards. Callbacks run one at a
// time and must not trigger another publish on the same owner.
type broadcaster[S any] struct {
	mu   sync.Mutex
	subs map[int]func(S)
	next int

	deliverMu sync.Mutex
	delivered uint64
	closed    bool
}

func (b *broadcaster[S]) subscribe(fn func(S)) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.subs == nil {
		b.subs = make(map[int]func(S))
	}
	id := b.next
	b.next++
	b.subs[id] = fn

	return func() {
		b.mu.Lock()
		delete(b.subs, id)
		b.mu.Unlock()
	}
}

func (b *broadcaster[S]) publish(version uint64, s S) {
	b.deliverMu.Lock()
	defer b.deliverMu.Unlock()

	if b.closed || version <= b.delivered {
		return
	}
	b.delivered = version

	b.mu.Lock()
	fns := make([]func(S), 0, len(b.subs))
	for _, fn := range b.subs {
		fns = append(fns, fn)
	}
	b.mu.Unlock()

	for _, fn := range fns {
		fn(s)
	}
}

// close waits for an in-progress delivery and drops every later one.
func (b *broadcaster[S]) close() {
	b.deliverMu.Lock()
	b.closed = true
	b.deliverMu.Unlock()
}
