package hook

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type callCounter struct {
	mu    sync.Mutex
	calls map[string]int
}

func (c *callCounter) inc(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.calls == nil {
		c.calls = make(map[string]int)
	}
	c.calls[key]++
}

func (c *callCounter) get(key string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls[key]
}

func TestQueryFetchesOnCreate(t *testing.T) {
	q := NewQuery(context.Background(), func(ctx context.Context) (int, error) {
		return 42, nil
	})
	defer q.Close()
	q.Wait()

	st := q.State()
	assert.Equal(t, 42, st.Data)
	assert.False(t, st.Loading)
	assert.NoError(t, st.Err)
	assert.Equal(t, 1, q.Fetches())
}

func TestQueryDepsChangeDiscardsStaleResult(t *testing.T) {
	var counter callCounter
	release := make(chan struct{})

	trends := func(window string, points int) Operation[[]int] {
		return func(ctx context.Context) ([]int, error) {
			counter.inc(window)
			if window == "30d" {
				select {
				case <-release:
				case <-ctx.Done():
					return nil, ctx.Err()
				}
			}
			return make([]int, points), nil
		}
	}

	q := NewQuery(context.Background(), trends("30d", 31), "30d")
	defer q.Close()

	require.True(t, q.Update(trends("7d", 8), "7d"))
	close(release)
	q.Wait()

	st := q.State()
	assert.Len(t, st.Data, 8)
	assert.NoError(t, st.Err)
	assert.False(t, st.Loading)
	assert.Equal(t, 1, counter.get("30d"))
	assert.Equal(t, 1, counter.get("7d"))

	assert.False(t, q.Update(trends("7d", 8), "7d"), "equal deps must not refetch")
	assert.Equal(t, 2, q.Fetches())
}

func TestQueryDepsCompareByValue(t *testing.T) {
	type params struct {
		Sentiment string
		Limit     int
	}
	op := func(ctx context.Context) (int, error) { return 1, nil }

	q := NewQuery(context.Background(), op, params{"positive", 50}, []string{"a"})
	defer q.Close()

	assert.False(t, q.Update(op, params{"positive", 50}, []string{"a"}))
	assert.True(t, q.Update(op, params{"negative", 50}, []string{"a"}))
	q.Wait()
	assert.Equal(t, 2, q.Fetches())
}

func TestQueryErrorClearsData(t *testing.T) {
	fail := false
	var mu sync.Mutex
	op := func(ctx context.Context) (string, error) {
		mu.Lock()
		defer mu.Unlock()
		if fail {
			return "", errors.New("pq: connection refused")
		}
		return "ok", nil
	}

	q := NewQuery(context.Background(), op)
	defer q.Close()
	q.Wait()
	require.Equal(t, "ok", q.State().Data)

	mu.Lock()
	fail = true
	mu.Unlock()
	q.Refetch()
	q.Wait()

	st := q.State()
	assert.Equal(t, "", st.Data)
	assert.False(t, st.Loading)
	assert.Equal(t, "pq: connection refused", st.Message())
}

func TestQuerySubscribeSeesFinalState(t *testing.T) {
	q := NewQuery(context.Background(), func(ctx context.Context) (int, error) { return 5, nil })
	defer q.Close()
	q.Wait()

	var (
		mu     sync.Mutex
		states []State[int]
	)
	unsubscribe := q.Subscribe(func(st State[int]) {
		mu.Lock()
		states = append(states, st)
		mu.Unlock()
	})
	defer unsubscribe()

	q.Refetch()
	q.Wait()

	mu.Lock()
	defer mu.Unlock()
	require.NotEmpty(t, states)
	last := states[len(states)-1]
	assert.False(t, last.Loading)
	assert.Equal(t, 5, last.Data)
}

func TestQueryCloseStopsUpdates(t *testing.T) {
	started := make(chan struct{})
	q := NewQuery(context.Background(), func(ctx context.Context) (int, error) {
		close(started)
		<-ctx.Done()
		return 0, ctx.Err()
	})

	delivered := 0
	q.Subscribe(func(State[int]) { delivered++ })

	<-started
	q.Close()
	q.Wait()

	assert.Equal(t, 0, delivered)
	assert.True(t, q.State().Loading, "a cancelled fetch must not commit")

	q.Refetch()
	assert.False(t, q.Update(func(ctx context.Context) (int, error) { return 1, nil }, "x"))
	assert.Equal(t, 1, q.Fetches())
}
