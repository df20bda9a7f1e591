package workerpool

import (
	"context"

	"github.com/jotoba/jotoba-go/internal/apperr"
)

// RunWithTimeout runs fn on the calling goroutine's behalf inside ctx,
// returning apperr.Timeout if ctx is cancelled before fn finishes. A
// timed-out search returns an error to the caller; partial results are
// never returned -- fn's own result is discarded on timeout.
func RunWithTimeout(ctx context.Context, op string, fn func() error) error {
	done := make(chan error, 1)
	go func() { done <- fn() }()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return apperr.Timeout(op, ctx.Err())
	}
}
