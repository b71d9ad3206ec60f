package downloader

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/igalhaddad/concurrent-url-downloader/internal/utils"
)

// fetchWithRetry runs the full attempt loop for one URL and settles its
// Result. A retryAttempts of 0 still performs a single attempt; backoff
// between attempts grows linearly with the attempt number. IOError and
// interruption are terminal immediately, everything else is retried.
func (d *Downloader) fetchWithRetry(ctx context.Context, logger zerolog.Logger, rawURL string) Result {
	start := time.Now()
	filename := GenerateFilename(rawURL)
	attempts := d.cfg.RetryAttempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
attemptLoop:
	for attempt := 1; attempt <= attempts; attempt++ {
		size, err := d.fetchOnce(ctx, rawURL, filename)
		if err == nil {
			return successResult(rawURL, filename, start, time.Now(), size)
		}
		lastErr = err
		if !retryable(err) {
			break
		}
		if attempt < attempts {
			logger.Warn().Err(err).Int("attempt", attempt).Str("url", rawURL).Msg("Download attempt failed, retrying")
			select {
			case <-time.After(d.retryBaseDelay * time.Duration(attempt)):
			case <-ctx.Done():
				lastErr = ErrInterrupted
				break attemptLoop
			}
		}
	}
	return failureResult(rawURL, lastErr.Error(), start, time.Now())
}

// fetchOnce performs a single GET attempt bounded by the per-URL time budget.
func (d *Downloader) fetchOnce(ctx context.Context, rawURL, filename string) (int64, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, d.cfg.MaxDownloadTime())
	defer cancel()

	req, err := http.NewRequestWithContext(attemptCtx, http.MethodGet, rawURL, nil)
	if err != nil {
		return 0, &NetworkError{Err: err}
	}
	req.Header.Set("User-Agent", d.cfg.UserAgent)
	resp, err := d.client.Do(req)
	if err != nil {
		return 0, classifyTransportError(ctx, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return 0, &ProtocolError{StatusCode: resp.StatusCode, Reason: reasonPhrase(resp)}
	}
	return d.saveToFile(ctx, resp.Body, filename)
}

// saveToFile streams the body to disk and returns the bytes written. A file
// left behind by a failed attempt is removed so retries start clean.
func (d *Downloader) saveToFile(ctx context.Context, body io.Reader, filename string) (int64, error) {
	path := filepath.Join(d.cfg.OutputDirectory, filename)
	outFile, err := os.Create(path)
	if err != nil {
		return 0, &IOError{Err: err}
	}
	buffer := make([]byte, utils.DefaultBufferSize)
	var total int64
	for {
		bytesRead, readErr := body.Read(buffer)
		if bytesRead > 0 {
			if _, writeErr := outFile.Write(buffer[:bytesRead]); writeErr != nil {
				outFile.Close()
				os.Remove(path)
				return 0, &IOError{Err: writeErr}
			}
			total += int64(bytesRead)
		}
		if readErr != nil {
			if readErr == io.EOF {
				break
			}
			outFile.Close()
			os.Remove(path)
			return 0, classifyTransportError(ctx, readErr)
		}
	}
	if err := outFile.Close(); err != nil {
		os.Remove(path)
		return 0, &IOError{Err: err}
	}
	return total, nil
}

// reasonPhrase extracts the server's reason phrase, falling back to the
// standard text when the server sent a bare status line.
func reasonPhrase(resp *http.Response) string {
	phrase := strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode))
	phrase = strings.TrimSpace(phrase)
	if phrase == "" {
		phrase = http.StatusText(resp.StatusCode)
	}
	return phrase
}
