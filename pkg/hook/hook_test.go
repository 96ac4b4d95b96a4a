package hook

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestRunWithLifecycleOrder(t *testing.T) {
	var calls []string
	RunWithLifecycle(context.Background(),
		func(ctx context.Context) (int, error) {
			calls = append(calls, "op")
			return 7, nil
		},
		func() { calls = append(calls, "start") },
		func(v int) { calls = append(calls, "success") },
		func(err error) { calls = append(calls, "error") },
	)

	want := []string{"start", "op", "success"}
	if len(calls) != len(want) {
		t.Fatalf("calls = %v, want %v", calls, want)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Fatalf("calls = %v, want %v", calls, want)
		}
	}
}

func TestRunWithLifecycleError(t *testing.T) {
	boom := errors.New("boom")
	var got error
	RunWithLifecycle(context.Background(),
		func(ctx context.Context) (int, error) { return 0, boom },
		nil,
		func(int) { t.Fatal("onSuccess must not run on failure") },
		func(err error) { got = err },
	)
	if !errors.Is(got, boom) {
		t.Fatalf("onError got %v, want %v", got, boom)
	}
}

func TestRunWithLifecycleCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var got error
	RunWithLifecycle(ctx,
		func(ctx context.Context) (int, error) { return 1, nil },
		nil,
		func(int) { t.Fatal("a cancelled run must not succeed") },
		func(err error) { got = err },
	)
	if !errors.Is(got, context.Canceled) {
		t.Fatalf("onError got %v, want context.Canceled", got)
	}
}
