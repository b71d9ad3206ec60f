package downloader

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"
)

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

// GenerateFilename derives a filesystem-safe local name from a URL: the last
// path segment, sanitized, prefixed with a nanosecond timestamp so that
// concurrently completing downloads of similarly named resources never
// collide.
func GenerateFilename(rawURL string) string {
	base := "download"
	if parsed, err := url.Parse(rawURL); err == nil {
		segment := parsed.Path[strings.LastIndex(parsed.Path, "/")+1:]
		if segment == "" {
			base = "index.html"
		} else {
			base = segment
		}
	}
	base = unsafeFilenameChars.ReplaceAllString(base, "_")
	return fmt.Sprintf("%d_%s", time.Now().UnixNano(), base)
}
