package downloader

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestReporterLineFormats(t *testing.T) {
	start := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)

	var out bytes.Buffer
	rep := newReporter(&out)
	ch := make(chan Result, 2)
	ch <- successResult("https://example.com/a.txt", "1700000000000000000_a.txt", start, start.Add(1500*time.Millisecond), 2048)
	ch <- failureResult("https://example.com/b.txt", "HTTP 404: Not Found", start, start.Add(250*time.Millisecond))
	close(ch)
	go rep.run(ch)
	rep.wait()

	lines := []string{
		"✓ Downloaded https://example.com/a.txt to 1700000000000000000_a.txt (2048 bytes) in 1500ms\n",
		"✗ Failed to download https://example.com/b.txt: HTTP 404: Not Found (took 250ms)\n",
	}
	assert.Equal(t, lines[0]+lines[1], out.String())
	assert.Equal(t, 1, rep.succeeded)
	assert.Equal(t, 1, rep.failed)
}
