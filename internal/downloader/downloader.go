package downloader

import (
	"context"
	"io"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/igalhaddad/concurrent-url-downloader/internal/config"
	"github.com/igalhaddad/concurrent-url-downloader/internal/utils"
)

const defaultRetryBaseDelay = 1 * time.Second

// Downloader runs one batch of concurrent downloads. It owns the worker
// pool, the pooled HTTP client, and the shared result collection for the
// duration of a single DownloadAll call; nothing survives past that call
// except the returned results.
type Downloader struct {
	cfg            *config.Config
	client         *http.Client
	out            io.Writer
	retryBaseDelay time.Duration
}

// Option customizes a Downloader.
type Option func(*Downloader)

// WithOutput redirects progress lines away from stdout.
func WithOutput(w io.Writer) Option {
	return func(d *Downloader) { d.out = w }
}

// WithRetryBaseDelay overrides the base backoff delay between attempts.
func WithRetryBaseDelay(delay time.Duration) Option {
	return func(d *Downloader) { d.retryBaseDelay = delay }
}

// New builds a Downloader for a validated config. The HTTP connection pool
// is sized to the concurrency limit so workers block on the remote server,
// not on connection acquisition.
func New(cfg *config.Config, opts ...Option) *Downloader {
	d := &Downloader{
		cfg:            cfg,
		client:         utils.CreateHTTPClient(cfg.ConnectTimeoutDuration(), cfg.ReadTimeoutDuration(), cfg.MaxConcurrentDownloads),
		out:            os.Stdout,
		retryBaseDelay: defaultRetryBaseDelay,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DownloadAll downloads every configured URL and returns exactly one Result
// per URL. It blocks until all workers have settled and the reporter has
// drained. Canceling ctx aborts in-flight attempts and settles remaining
// URLs as interrupted failures instead of hanging.
func (d *Downloader) DownloadAll(ctx context.Context) ([]Result, error) {
	log := utils.GetLogger("downloader").With().Str("batchID", uuid.NewString()[:8]).Logger()
	batchStart := time.Now()
	defer d.client.CloseIdleConnections()

	if err := os.MkdirAll(d.cfg.OutputDirectory, 0755); err != nil {
		return nil, &SetupError{Dir: d.cfg.OutputDirectory, Err: err}
	}
	if len(d.cfg.URLs) == 0 {
		log.Info().Msg("No URLs to download")
		return []Result{}, nil
	}

	numWorkers := min(d.cfg.MaxConcurrentDownloads, len(d.cfg.URLs))
	log.Info().Int("totalURLs", len(d.cfg.URLs)).Int("workers", numWorkers).Msg("Initiating download")

	completionCh := make(chan Result, len(d.cfg.URLs))
	rep := newReporter(d.out)
	go rep.run(completionCh)

	urlCh := make(chan string, len(d.cfg.URLs))
	for _, url := range d.cfg.URLs {
		urlCh <- url
	}
	close(urlCh)

	agg := newResultAggregator(len(d.cfg.URLs))
	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			logger := log.With().Int("workerID", workerID).Logger()
			for url := range urlCh {
				var res Result
				if ctx.Err() != nil {
					// Batch canceled before this URL started.
					now := time.Now()
					res = failureResult(url, ErrInterrupted.Error(), now, now)
				} else {
					logger.Debug().Str("url", url).Msg("Worker starting download")
					res = d.fetchWithRetry(ctx, logger, url)
				}
				agg.add(res)
				completionCh <- res
			}
		}(i + 1)
	}

	wg.Wait()
	close(completionCh)
	rep.wait()

	log.Info().
		Int("successful", rep.succeeded).
		Int("failed", rep.failed).
		Dur("elapsed", time.Since(batchStart)).
		Msg("All downloads completed")
	return agg.snapshot(), nil
}
