package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func TestGetLogger(t *testing.T) {
	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf).Level(zerolog.DebugLevel)

	logger := GetLogger("sync")
	logger.Debug().Msg("resolving patterns")

	output := buf.String()
	assert.Contains(t, output, `"component":"sync"`)
	assert.Contains(t, output, "resolving patterns")
}

func TestLogFilePath(t *testing.T) {
	path := LogFilePath()

	assert.True(t, strings.HasSuffix(path, LogFileName),
		"log file path should end with %s, got %s", LogFileName, path)
	assert.Contains(t, path, "gentlegoose")
}

func TestSetupLogger_VerbosityLevels(t *testing.T) {
	tests := []struct {
		verbosity int
		want      zerolog.Level
	}{
		{0, zerolog.WarnLevel},
		{1, zerolog.InfoLevel},
		{2, zerolog.DebugLevel},
		{3, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		SetupLogger(tt.verbosity)
		assert.Equal(t, tt.want, zerolog.GlobalLevel(),
			"verbosity %d", tt.verbosity)
	}
}
