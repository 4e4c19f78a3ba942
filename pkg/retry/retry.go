package retry

import (
	"context"
	stdErrors "errors"
	"io"
	"net"
	"strings"
	"syscall"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Policy is a bounded exponential retry around a single operation
type Policy struct {
	MaxAttempts int
	BaseDelay   time.Duration
	// Retryable decides whether an error is worth another attempt. Nil means never.
	Retryable func(error) bool
	// Notify, if set, is called before each wait with the failed attempt number (1-based)
	Notify func(err error, attempt int, wait time.Duration)
}

// NewPolicy returns a policy that retries network errors
func NewPolicy(maxAttempts int, baseDelay time.Duration) Policy {
	return Policy{
		MaxAttempts: maxAttempts,
		BaseDelay:   baseDelay,
		Retryable:   IsNetworkError,
	}
}

// Do runs op until it succeeds, fails with a non-retryable error,
// runs out of attempts, or ctx is done. The last error is returned.
func (p Policy) Do(ctx context.Context, op func(ctx context.Context) error) error {
	attempts := p.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = p.BaseDelay
	bo.Multiplier = 2
	bo.RandomizationFactor = 0
	bo.MaxInterval = 30 * time.Second
	bo.MaxElapsedTime = 0

	b := backoff.WithContext(backoff.WithMaxRetries(bo, uint64(attempts-1)), ctx)

	attempt := 0
	operation := func() error {
		attempt++
		err := op(ctx)
		if err == nil {
			return nil
		}
		if p.Retryable == nil || !p.Retryable(err) {
			return backoff.Permanent(err)
		}
		return err
	}

	var notify backoff.Notify
	if p.Notify != nil {
		notify = func(err error, wait time.Duration) {
			p.Notify(err, attempt, wait)
		}
	}

	return backoff.RetryNotify(operation, b, notify)
}

// DoValue is Do for operations that produce a value
func DoValue[T any](ctx context.Context, p Policy, op func(ctx context.Context) (T, error)) (T, error) {
	var result T
	err := p.Do(ctx, func(ctx context.Context) error {
		v, err := op(ctx)
		if err != nil {
			return err
		}
		result = v
		return nil
	})
	return result, err
}

// IsNetworkError reports whether err looks like a transport failure
// (connection reset or refused, DNS, socket timeout, gRPC unavailable).
// Cancellation of the caller's context is never retryable.
func IsNetworkError(err error) bool {
	if err == nil {
		return false
	}
	if stdErrors.Is(err, context.Canceled) || stdErrors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var netErr net.Error
	if stdErrors.As(err, &netErr) {
		return true
	}
	if stdErrors.Is(err, syscall.ECONNRESET) ||
		stdErrors.Is(err, syscall.ECONNREFUSED) ||
		stdErrors.Is(err, syscall.EPIPE) ||
		stdErrors.Is(err, io.ErrUnexpectedEOF) {
		return true
	}

	if s, ok := status.FromError(err); ok {
		switch s.Code() {
		case codes.Unavailable:
			return true
		}
	}

	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "connection reset") ||
		strings.Contains(errStr, "connection refused") ||
		strings.Contains(errStr, "broken pipe") ||
		strings.Contains(errStr, "no such host") ||
		strings.Contains(errStr, "i/o timeout") ||
		strings.Contains(errStr, "fetch failed")
}
