package downloader

import (
	"sync"
	"time"
)

// Result is the terminal outcome for one URL. It is created exactly once,
// when the final attempt settles, and never mutated afterwards.
type Result struct {
	URL          string
	Filename     string
	Success      bool
	StartTime    time.Time
	EndTime      time.Time
	ErrorMessage string
	FileSize     int64
}

func (r Result) Duration() time.Duration {
	return r.EndTime.Sub(r.StartTime)
}

func successResult(url, filename string, start, end time.Time, size int64) Result {
	return Result{
		URL:       url,
		Filename:  filename,
		Success:   true,
		StartTime: start,
		EndTime:   end,
		FileSize:  size,
	}
}

func failureResult(url, errMsg string, start, end time.Time) Result {
	return Result{
		URL:          url,
		Success:      false,
		StartTime:    start,
		EndTime:      end,
		ErrorMessage: errMsg,
	}
}

// resultAggregator collects one result per URL from all workers.
type resultAggregator struct {
	mu      sync.Mutex
	results []Result
}

func newResultAggregator(capacity int) *resultAggregator {
	return &resultAggregator{results: make([]Result, 0, capacity)}
}

func (a *resultAggregator) add(r Result) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.results = append(a.results, r)
}

func (a *resultAggregator) snapshot() []Result {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]Result, len(a.results))
	copy(out, a.results)
	return out
}
