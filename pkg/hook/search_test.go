package hook

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	mu      sync.Mutex
	queries []string
}

func (r *recorder) search(ctx context.Context, q string) ([]string, error) {
	r.mu.Lock()
	r.queries = append(r.queries, q)
	r.mu.Unlock()
	return []string{strings.ToUpper(q)}, nil
}

func (r *recorder) got() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.queries...)
}

func TestSearchDebouncesToFinalQuery(t *testing.T) {
	var rec recorder
	s := NewSearch(context.Background(), rec.search, 100*time.Millisecond)
	defer s.Close()

	for _, q := range []string{"c", "ch", "chu", "churn"} {
		s.SetQuery(q)
	}
	s.Wait()

	assert.Equal(t, []string{"churn"}, rec.got())
	assert.Equal(t, 1, s.Calls())

	st := s.State()
	assert.Equal(t, "churn", st.Query)
	assert.Equal(t, []string{"CHURN"}, st.Results)
	assert.False(t, st.Loading)
}

func TestSearchBlankQueryShortCircuits(t *testing.T) {
	var rec recorder
	s := NewSearch(context.Background(), rec.search, 20*time.Millisecond)
	defer s.Close()

	s.SetQuery("revenue")
	s.SetQuery("   ")

	st := s.State()
	assert.NotNil(t, st.Results)
	assert.Empty(t, st.Results)

	s.Wait()
	assert.Empty(t, rec.got(), "a blank query must cancel the pending search")
}

func TestSearchError(t *testing.T) {
	s := NewSearch(context.Background(), func(ctx context.Context, q string) ([]int, error) {
		return nil, errors.New("search failed")
	}, time.Millisecond)
	defer s.Close()

	s.SetQuery("x")
	s.Wait()

	st := s.State()
	assert.EqualError(t, st.Err, "search failed")
	assert.Empty(t, st.Results)
	assert.False(t, st.Loading)
}

func TestSearchCloseDropsPendingTimer(t *testing.T) {
	var rec recorder
	s := NewSearch(context.Background(), rec.search, 50*time.Millisecond)

	s.SetQuery("nps")
	s.Close()
	s.Wait()

	assert.Empty(t, rec.got())
	s.SetQuery("ignored")
	assert.Equal(t, "nps", s.State().Query)
}
