package hook

import (
	"context"
	"errors"
	"sync"
)

var ErrItemNotFound = errors.New("hook: item not found")

// Commit persists a locally patched record and returns the stored version.
type Commit[T any] func(ctx context.Context, patched T) (T, error)

type OptimisticState[T any] struct {
	Items   []T
	Loading bool
	Err     error
}

// Optimistic holds a list whose records can be patched locally ahead of the
// server write.
type Optimistic[T any] struct {
	key func(T) string

	mu      sync.Mutex
	items   []T
	writes  map[string]*pendingWrite[T]
	loading int
	err     error
	version uint64

	subs broadcaster[OptimisticState[T]]
}

// pendingWrite tracks the writes in flight on one record. base is the last
// value the server accepted, or the record before the first write.
type pendingWrite[T any] struct {
	base     T
	seq      uint64
	inFlight int
}

// NewOptimistic copies items. key returns a record's identity.
func NewOptimistic[T any](items []T, key func(T) string) *Optimistic[T] {
	return &Optimistic[T]{
		key:    key,
		items:  append([]T(nil), items...),
		writes: make(map[string]*pendingWrite[T]),
	}
}

// Update applies patch to the record with the given id, shows it at once
// and commits it. On success the record becomes the server version. On
// failure the error is kept and, unless a later write on the same record
// was started, the record goes back to its last accepted value: the
// pre-patch snapshot or what an overlapping write got from the server.
func (o *Optimistic[T]) Update(ctx context.Context, id string, patch func(T) T, commit Commit[T]) error {
	o.mu.Lock()
	idx := o.indexLocked(id)
	if idx < 0 {
		o.mu.Unlock()
		return ErrItemNotFound
	}
	p := o.writes[id]
	if p == nil {
		p = &pendingWrite[T]{base: o.items[idx]}
		o.writes[id] = p
	}
	p.seq++
	p.inFlight++
	seq := p.seq
	patched := patch(o.items[idx])
	o.mu.Unlock()

	var runErr error
	RunWithLifecycle(ctx,
		func(ctx context.Context) (T, error) { return commit(ctx, patched) },
		func() {
			o.apply(id, func(i int) {
				if i >= 0 && p.seq == seq {
					o.items[i] = patched
				}
				o.loading++
				o.err = nil
			})
		},
		func(server T) {
			o.apply(id, func(i int) {
				p.base = server
				if i >= 0 && p.seq == seq {
					o.items[i] = server
				}
				o.settleLocked(id, p)
			})
		},
		func(err error) {
			runErr = err
			o.apply(id, func(i int) {
				if i >= 0 && p.seq == seq {
					o.items[i] = p.base
				}
				o.settleLocked(id, p)
				o.err = err
			})
		},
	)
	return runErr
}

// settleLocked ends one write on id.
func (o *Optimistic[T]) settleLocked(id string, p *pendingWrite[T]) {
	o.loading--
	p.inFlight--
	if p.inFlight == 0 && o.writes[id] == p {
		delete(o.writes, id)
	}
}

// Set replaces the whole list, e.g. after a refetch.
func (o *Optimistic[T]) Set(items []T) {
	o.mu.Lock()
	o.items = append([]T(nil), items...)
	o.version++
	version, state := o.version, o.stateLocked()
	o.mu.Unlock()

	o.subs.publish(version, state)
}

func (o *Optimistic[T]) State() OptimisticState[T] {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.stateLocked()
}

// Subscribe registers fn for state changes. fn must not call back into the
// Optimistic.
func (o *Optimistic[T]) Subscribe(fn func(OptimisticState[T])) func() {
	return o.subs.subscribe(fn)
}

func (o *Optimistic[T]) Close() {
	o.subs.close()
}

// apply runs fn with the record's current index, or -1 when Set dropped it
// in the meantime.
func (o *Optimistic[T]) apply(id string, fn func(i int)) {
	o.mu.Lock()
	fn(o.indexLocked(id))
	o.version++
	version, state := o.version, o.stateLocked()
	o.mu.Unlock()

	o.subs.publish(version, state)
}

func (o *Optimistic[T]) indexLocked(id string) int {
	for i, item := range o.items {
		if o.key(item) == id {
			return i
		}
	}
	return -1
}

func (o *Optimistic[T]) stateLocked() OptimisticState[T] {
	return OptimisticState[T]{
		Items:   append([]T(nil), o.items...),
		Loading: o.loading > 0,
		Err:     o.err,
	}
}
