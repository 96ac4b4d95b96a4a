package hook

import (
	"context"
	"sync"
)

// PageFunc fetches one page. Pages are numbered from 1.
type PageFunc[T any] func(ctx context.Context, page, limit int) ([]T, error)

// PageState is a snapshot of a Paginator.
type PageState[T any] struct {
	Items   []T
	Page    int
	HasMore bool
	Loading bool
	Err     error
}

// Paginator accumulates pages until one comes back short.
type Paginator[T any] struct {
	fetch PageFunc[T]
	limit int

	mu      sync.Mutex
	items   []T
	page    int
	hasMore bool
	loading bool
	err     error
	gen     uint64
}

func NewPaginator[T any](fetch PageFunc[T], limit int) *Paginator[T] {
	if limit <= 0 {
		limit = 20
	}
	return &Paginator[T]{
		fetch:   fetch,
		limit:   limit,
		page:    1,
		hasMore: true,
	}
}

// LoadMore fetches the next page. It is a no-op while a page is loading or
// once the last page was seen. The first page replaces the accumulated
// items, later pages append to them.
func (p *Paginator[T]) LoadMore(ctx context.Context) error {
	p.mu.Lock()
	if p.loading || !p.hasMore {
		p.mu.Unlock()
		return nil
	}
	p.loading = true
	p.err = nil
	page, gen := p.page, p.gen
	p.mu.Unlock()

	var runErr error
	RunWithLifecycle(ctx,
		func(ctx context.Context) ([]T, error) { return p.fetch(ctx, page, p.limit) },
		nil,
		func(rows []T) {
			p.mu.Lock()
			defer p.mu.Unlock()
			if gen != p.gen {
				return
			}
			if page == 1 {
				p.items = append([]T(nil), rows...)
			} else {
				p.items = append(p.items, rows...)
			}
			if len(rows) < p.limit {
				p.hasMore = false
			}
			p.page++
			p.loading = false
		},
		func(err error) {
			runErr = err
			p.mu.Lock()
			defer p.mu.Unlock()
			if gen != p.gen {
				return
			}
			p.err = err
			p.loading = false
		},
	)
	return runErr
}

// Reset restores the initial state. A page still in flight is discarded.
func (p *Paginator[T]) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.gen++
	p.items = nil
	p.page = 1
	p.hasMore = true
	p.loading = false
	p.err = nil
}

func (p *Paginator[T]) State() PageState[T] {
	p.mu.Lock()
	defer p.mu.Unlock()

	return PageState[T]{
		Items:   append([]T(nil), p.items...),
		Page:    p.page,
		HasMore: p.hasMore,
		Loading: p.loading,
		Err:     p.err,
	}
}

// All loads pages until the last one and returns every item.
func (p *Paginator[T]) All(ctx context.Context) ([]T, error) {
	for {
		if err := p.LoadMore(ctx); err != nil {
			return nil, err
		}
		st := p.State()
		if !st.HasMore {
			return st.Items, nil
		}
	}
}
