package utils

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rs/zerolog"
)

func TestSetLogOutputCapturesComponentLogging(t *testing.T) {
	defer SetLogOutput(os.Stderr)

	var buf bytes.Buffer
	SetLogOutput(&buf)
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	logger := GetLogger("downloader")
	logger.Info().Int("totalURLs", 2).Msg("Initiating download")

	logged := buf.String()
	assert.Contains(t, logged, "Initiating download")
	assert.Contains(t, logged, "component=downloader")
	assert.Contains(t, logged, "totalURLs=2")
}

func TestGetLoggerInheritsGlobalLevel(t *testing.T) {
	defer SetLogOutput(os.Stderr)
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

	var buf bytes.Buffer
	SetLogOutput(&buf)
	zerolog.SetGlobalLevel(zerolog.WarnLevel)

	logger := GetLogger("config")
	logger.Info().Msg("hidden at warn level")
	assert.Empty(t, buf.String())

	logger.Warn().Msg("surfaced at warn level")
	assert.Contains(t, buf.String(), "surfaced at warn level")
}
