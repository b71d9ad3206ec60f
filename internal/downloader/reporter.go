package downloader

import (
	"fmt"
	"io"
)

// reporter is the single consumer of the completion channel. It prints one
// progress line per result in the order results actually complete and owns
// the success/failure tallies, so workers never share counters.
type reporter struct {
	w         io.Writer
	done      chan struct{}
	succeeded int
	failed    int
}

func newReporter(w io.Writer) *reporter {
	return &reporter{w: w, done: make(chan struct{})}
}

// run consumes until the channel is closed, then signals done. The receive
// blocks, so reporting latency is bounded by completion, not by polling.
func (r *reporter) run(completions <-chan Result) {
	defer close(r.done)
	for res := range completions {
		if res.Success {
			fmt.Fprintf(r.w, "✓ Downloaded %s to %s (%d bytes) in %dms\n",
				res.URL, res.Filename, res.FileSize, res.Duration().Milliseconds())
			r.succeeded++
		} else {
			fmt.Fprintf(r.w, "✗ Failed to download %s: %s (took %dms)\n",
				res.URL, res.ErrorMessage, res.Duration().Milliseconds())
			r.failed++
		}
	}
}

// wait blocks until every queued completion has been reported. Tallies are
// safe to read after wait returns.
func (r *reporter) wait() {
	<-r.done
}
