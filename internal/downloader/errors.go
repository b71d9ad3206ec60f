package downloader

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// ProtocolError is a response with a status code outside [200,300).
type ProtocolError struct {
	StatusCode int
	Reason     string
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Reason)
}

// TimeoutError covers both the connect timeout and the per-URL time budget.
type TimeoutError struct {
	Err error
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("timed out: %v", e.Err)
}

func (e *TimeoutError) Unwrap() error { return e.Err }

// NetworkError is a transport-level failure (DNS, connection refused, reset).
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// IOError is a local disk failure. It is terminal for its URL and never
// retried.
type IOError struct {
	Err error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("io error: %v", e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// ErrInterrupted marks a download aborted by batch cancellation.
var ErrInterrupted = errors.New("download interrupted")

// SetupError aborts the whole batch before any network activity.
type SetupError struct {
	Dir string
	Err error
}

func (e *SetupError) Error() string {
	return fmt.Sprintf("failed to create output directory %s: %v", e.Dir, e.Err)
}

func (e *SetupError) Unwrap() error { return e.Err }

// retryable reports whether another attempt could change the outcome.
func retryable(err error) bool {
	var ioErr *IOError
	if errors.As(err, &ioErr) {
		return false
	}
	if errors.Is(err, ErrInterrupted) {
		return false
	}
	return true
}

// classifyTransportError sorts a request or body-read failure into the
// taxonomy. Parent context cancellation wins over everything else so that a
// canceled batch never reads as a timeout.
func classifyTransportError(ctx context.Context, err error) error {
	if ctx.Err() == context.Canceled {
		return ErrInterrupted
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return &TimeoutError{Err: err}
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &TimeoutError{Err: err}
	}
	return &NetworkError{Err: err}
}
