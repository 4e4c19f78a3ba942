package retry

import (
	"context"
	"errors"
	"fmt"
	"net"
	"syscall"
	"testing"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestPolicyDo_RetriesNetworkErrorsUpToMax(t *testing.T) {
	p := NewPolicy(3, time.Millisecond)
	calls := 0

	err := p.Do(context.Background(), func(ctx context.Context) error {
		calls++
		return fmt.Errorf("dial: %w", syscall.ECONNRESET)
	})

	if err == nil {
		t.Fatalf("expected error")
	}
	if calls != 3 {
		t.Fatalf("expected 3 attempts, got %d", calls)
	}
}

func TestPolicyDo_DoesNotRetryOtherErrors(t *testing.T) {
	p := NewPolicy(3, time.Millisecond)
	calls := 0
	want := errors.New("safety block")

	err := p.Do(context.Background(), func(ctx context.Context) error {
		calls++
		return want
	})

	if !errors.Is(err, want) {
		t.Fatalf("expected original error, got %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected single attempt, got %d", calls)
	}
}

func TestPolicyDo_SucceedsAfterTransientFailure(t *testing.T) {
	p := NewPolicy(3, time.Millisecond)
	var notified []int
	p.Notify = func(err error, attempt int, wait time.Duration) {
		notified = append(notified, attempt)
	}
	calls := 0

	got, err := DoValue(context.Background(), p, func(ctx context.Context) (string, error) {
		calls++
		if calls < 2 {
			return "", errors.New("read tcp: connection reset by peer")
		}
		return "ok", nil
	})

	if err != nil || got != "ok" {
		t.Fatalf("unexpected result %q %v", got, err)
	}
	if len(notified) != 1 || notified[0] != 1 {
		t.Fatalf("unexpected notifications %v", notified)
	}
}

func TestPolicyDo_ZeroAttemptsRunsOnce(t *testing.T) {
	p := Policy{Retryable: IsNetworkError}
	calls := 0

	_ = p.Do(context.Background(), func(ctx context.Context) error {
		calls++
		return syscall.ECONNREFUSED
	})

	if calls != 1 {
		t.Fatalf("expected single attempt, got %d", calls)
	}
}

func TestIsNetworkError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"plain", errors.New("bad request"), false},
		{"canceled", context.Canceled, false},
		{"deadline", fmt.Errorf("wrap: %w", context.DeadlineExceeded), false},
		{"op error", &net.OpError{Op: "dial", Err: errors.New("refused")}, true},
		{"econnreset", fmt.Errorf("write: %w", syscall.ECONNRESET), true},
		{"grpc unavailable", status.Error(codes.Unavailable, "backend down"), true},
		{"grpc invalid", status.Error(codes.InvalidArgument, "bad prompt"), false},
		{"message", errors.New("fetch failed"), true},
	}

	for _, tc := range cases {
		if got := IsNetworkError(tc.err); got != tc.want {
			t.Errorf("%s: got %v want %v", tc.name, got, tc.want)
		}
	}
}
