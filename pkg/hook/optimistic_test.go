package hook

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type alertRow struct {
	ID      string
	Status  string
	Version int
}

func alertKey(a alertRow) string { return a.ID }

func resolve(a alertRow) alertRow {
	a.Status = "resolved"
	return a
}

func TestOptimisticRollbackRestoresSnapshot(t *testing.T) {
	o := NewOptimistic([]alertRow{{ID: "a1", Status: "active", Version: 3}}, alertKey)
	defer o.Close()

	var seen alertRow
	err := o.Update(context.Background(), "a1", resolve, func(ctx context.Context, patched alertRow) (alertRow, error) {
		seen = o.State().Items[0]
		return alertRow{}, errors.New("permission denied")
	})

	require.Error(t, err)
	assert.Equal(t, "resolved", seen.Status, "the patch must be visible while the write is in flight")

	st := o.State()
	assert.Equal(t, []alertRow{{ID: "a1", Status: "active", Version: 3}}, st.Items)
	assert.EqualError(t, st.Err, "permission denied")
	assert.False(t, st.Loading)
}

func TestOptimisticSuccessTakesServerVersion(t *testing.T) {
	o := NewOptimistic([]alertRow{{ID: "a1", Status: "active"}, {ID: "a2", Status: "active"}}, alertKey)
	defer o.Close()

	err := o.Update(context.Background(), "a2", resolve, func(ctx context.Context, patched alertRow) (alertRow, error) {
		patched.Version = 9
		return patched, nil
	})
	require.NoError(t, err)

	st := o.State()
	assert.Equal(t, alertRow{ID: "a2", Status: "resolved", Version: 9}, st.Items[1])
	assert.Equal(t, "active", st.Items[0].Status)
	assert.NoError(t, st.Err)
}

func TestOptimisticUnknownID(t *testing.T) {
	o := NewOptimistic([]alertRow{{ID: "a1"}}, alertKey)
	defer o.Close()

	called := false
	err := o.Update(context.Background(), "zz", resolve, func(ctx context.Context, a alertRow) (alertRow, error) {
		called = true
		return a, nil
	})

	assert.ErrorIs(t, err, ErrItemNotFound)
	assert.False(t, called)
}

func TestOptimisticNotifiesSubscribers(t *testing.T) {
	o := NewOptimistic([]alertRow{{ID: "a1", Status: "active"}}, alertKey)
	defer o.Close()

	var statuses []string
	o.Subscribe(func(st OptimisticState[alertRow]) {
		statuses = append(statuses, st.Items[0].Status)
	})

	_ = o.Update(context.Background(), "a1", resolve, func(ctx context.Context, a alertRow) (alertRow, error) {
		return alertRow{}, errors.New("conflict")
	})

	assert.Equal(t, []string{"resolved", "active"}, statuses)
}

func setStatus(status string) func(alertRow) alertRow {
	return func(a alertRow) alertRow {
		a.Status = status
		return a
	}
}

// startHeldUpdate runs an update whose commit blocks until release yields a
// result. It returns once the commit has been entered.
func startHeldUpdate(o *Optimistic[alertRow], status string, release <-chan error, done chan<- error) {
	entered := make(chan struct{})
	go func() {
		done <- o.Update(context.Background(), "a1", setStatus(status), func(ctx context.Context, a alertRow) (alertRow, error) {
			close(entered)
			if err := <-release; err != nil {
				return alertRow{}, err
			}
			return a, nil
		})
	}()
	<-entered
}

func TestOptimisticOverlappingUpdates(t *testing.T) {
	tests := []struct {
		name       string
		firstErr   error
		secondErr  error
		settle     []int
		wantStatus string
	}{
		{
			name:       "older write fails after newer succeeded",
			firstErr:   errors.New("first failed"),
			settle:     []int{1, 0},
			wantStatus: "resolved",
		},
		{
			name:       "newer write fails after older succeeded",
			secondErr:  errors.New("second failed"),
			settle:     []int{0, 1},
			wantStatus: "acknowledged",
		},
		{
			name:       "both fail",
			firstErr:   errors.New("first failed"),
			secondErr:  errors.New("second failed"),
			settle:     []int{1, 0},
			wantStatus: "active",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			o := NewOptimistic([]alertRow{{ID: "a1", Status: "active"}}, alertKey)
			defer o.Close()

			releases := []chan error{make(chan error, 1), make(chan error, 1)}
			dones := []chan error{make(chan error, 1), make(chan error, 1)}
			results := []error{tc.firstErr, tc.secondErr}

			startHeldUpdate(o, "acknowledged", releases[0], dones[0])
			startHeldUpdate(o, "resolved", releases[1], dones[1])
			assert.Equal(t, "resolved", o.State().Items[0].Status, "the latest patch is shown")

			for _, i := range tc.settle {
				releases[i] <- results[i]
				err := <-dones[i]
				if results[i] != nil {
					require.ErrorIs(t, err, results[i])
				} else {
					require.NoError(t, err)
				}
			}

			st := o.State()
			assert.Equal(t, tc.wantStatus, st.Items[0].Status)
			assert.False(t, st.Loading)
		})
	}
}
