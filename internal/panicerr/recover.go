package panicerr

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Recover runs f to completion, converting a panic or a runtime.Goexit into
// a non-nil error rather than letting it escape to the caller's goroutine.
// It follows the same errgroup.WithContext shape as two cooperating
// goroutines racing against cancellation: one runs f, the other watches
// ctx, and the group's Wait error decides which outcome wins.
func Recover(ctx context.Context, name string, f func() error) error {
	eg, ctx := errgroup.WithContext(ctx)

	done := make(chan struct{})
	errch := make(chan error, 1)

	eg.Go(func() error {
		defer close(done)
		defer recoverExitError(name, errch)
		defer recoverPanicError(name, errch)
		errch <- f()
		return nil
	})

	eg.Go(func() error {
		select {
		case <-done:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	})

	if err := eg.Wait(); err != nil {
		return err
	}
	return <-errch
}
