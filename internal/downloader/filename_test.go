package downloader

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

var filenamePattern = regexp.MustCompile(`^\d+_[A-Za-z0-9._-]+$`)

func TestGenerateFilename(t *testing.T) {
	tests := []struct {
		name string
		url  string
		base string
	}{
		{"simple path", "https://example.com/files/report.pdf", "report.pdf"},
		{"no path", "https://example.com", "index.html"},
		{"trailing slash", "https://example.com/docs/", "index.html"},
		{"unsafe characters", "https://example.com/my file (1).txt", "my_file__1_.txt"},
		{"query ignored", "https://example.com/data.json?version=2", "data.json"},
		{"unparseable", "://not-a-url", "download"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GenerateFilename(tt.url)
			assert.Regexp(t, filenamePattern, got)
			assert.True(t, strings.HasSuffix(got, "_"+tt.base), "got %q, want base %q", got, tt.base)
		})
	}
}

func TestGenerateFilenameUniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		name := GenerateFilename("https://example.com/same.txt")
		assert.False(t, seen[name], "collision on %q", name)
		seen[name] = true
	}
}
