package hook

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pagesOf(data []int, calls *atomic.Int32) PageFunc[int] {
	return func(ctx context.Context, page, limit int) ([]int, error) {
		calls.Add(1)
		start := (page - 1) * limit
		if start >= len(data) {
			return nil, nil
		}
		end := start + limit
		if end > len(data) {
			end = len(data)
		}
		return append([]int(nil), data[start:end]...), nil
	}
}

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func TestPaginatorConcatenatesAllPages(t *testing.T) {
	for _, n := range []int{0, 5, 40, 45} {
		var calls atomic.Int32
		data := seq(n)
		p := NewPaginator(pagesOf(data, &calls), 20)

		for p.State().HasMore {
			require.NoError(t, p.LoadMore(context.Background()))
		}

		st := p.State()
		if n == 0 {
			assert.Empty(t, st.Items)
		} else {
			assert.Equal(t, data, st.Items, "n=%d", n)
		}

		before := calls.Load()
		require.NoError(t, p.LoadMore(context.Background()))
		assert.Equal(t, before, calls.Load(), "LoadMore after the last page must not fetch")
	}
}

func TestPaginatorAll(t *testing.T) {
	var calls atomic.Int32
	p := NewPaginator(pagesOf(seq(45), &calls), 20)

	items, err := p.All(context.Background())
	require.NoError(t, err)
	assert.Equal(t, seq(45), items)
	assert.Equal(t, int32(3), calls.Load())
}

func TestPaginatorNoOpWhileLoading(t *testing.T) {
	var calls atomic.Int32
	started := make(chan struct{})
	release := make(chan struct{})

	p := NewPaginator(func(ctx context.Context, page, limit int) ([]int, error) {
		calls.Add(1)
		close(started)
		<-release
		return seq(limit), nil
	}, 10)

	done := make(chan error)
	go func() { done <- p.LoadMore(context.Background()) }()

	<-started
	assert.True(t, p.State().Loading)
	assert.NoError(t, p.LoadMore(context.Background()))
	assert.Equal(t, int32(1), calls.Load())

	close(release)
	require.NoError(t, <-done)
	assert.Equal(t, 2, p.State().Page)
}

func TestPaginatorResetDiscardsInFlightPage(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})

	p := NewPaginator(func(ctx context.Context, page, limit int) ([]int, error) {
		close(started)
		<-release
		return seq(limit), nil
	}, 10)

	done := make(chan error)
	go func() { done <- p.LoadMore(context.Background()) }()

	<-started
	p.Reset()
	close(release)
	require.NoError(t, <-done)

	st := p.State()
	assert.Empty(t, st.Items)
	assert.Equal(t, 1, st.Page)
	assert.True(t, st.HasMore)
	assert.False(t, st.Loading)
}

func TestPaginatorErrorKeepsPage(t *testing.T) {
	var calls atomic.Int32
	boom := errors.New("timeout")
	p := NewPaginator(func(ctx context.Context, page, limit int) ([]int, error) {
		if calls.Add(1) == 2 {
			return nil, boom
		}
		return seq(limit), nil
	}, 5)

	require.NoError(t, p.LoadMore(context.Background()))
	assert.ErrorIs(t, p.LoadMore(context.Background()), boom)

	st := p.State()
	assert.ErrorIs(t, st.Err, boom)
	assert.Equal(t, 2, st.Page)
	assert.Len(t, st.Items, 5)

	require.NoError(t, p.LoadMore(context.Background()))
	assert.Len(t, p.State().Items, 10)
	assert.NoError(t, p.State().Err)
}
