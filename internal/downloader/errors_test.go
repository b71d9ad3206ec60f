package downloader

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRetryablePolicy(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		retryable bool
	}{
		{"protocol failure", &ProtocolError{StatusCode: 404, Reason: "Not Found"}, true},
		{"timeout", &TimeoutError{Err: context.DeadlineExceeded}, true},
		{"network failure", &NetworkError{Err: errors.New("connection refused")}, true},
		{"disk write failure", &IOError{Err: errors.New("no space left on device")}, false},
		{"interruption", ErrInterrupted, false},
		{"wrapped disk failure", fmt.Errorf("attempt: %w", &IOError{Err: errors.New("denied")}), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.retryable, retryable(tt.err))
		})
	}
}

func TestClassifyTransportError(t *testing.T) {
	background := context.Background()

	canceled, cancel := context.WithCancel(background)
	cancel()
	assert.ErrorIs(t, classifyTransportError(canceled, errors.New("read aborted")), ErrInterrupted)

	var timeoutErr *TimeoutError
	assert.ErrorAs(t, classifyTransportError(background, context.DeadlineExceeded), &timeoutErr)

	var netErr *NetworkError
	assert.ErrorAs(t, classifyTransportError(background, errors.New("dns failure")), &netErr)
}

func TestProtocolErrorMessage(t *testing.T) {
	err := &ProtocolError{StatusCode: 404, Reason: "Not Found"}
	assert.Equal(t, "HTTP 404: Not Found", err.Error())
}
