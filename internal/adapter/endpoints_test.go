package adapter

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artarona/WORK-PAGINAWEB-IA/internal/config"
	"github.com/artarona/WORK-PAGINAWEB-IA/internal/logger"
)

func newCapturedLogger(buf *bytes.Buffer) *logger.Logger {
	return &logger.Logger{Logger: zerolog.New(buf)}
}

func TestNewEndpoints_DerivesExactURLs(t *testing.T) {
	e := NewEndpoints(config.DefaultBaseURL, logger.Nop())

	assert.Equal(t, "https://danterealestate-github-io.onrender.com/api/chat", e.Chat)
	assert.Equal(t, "https://danterealestate-github-io.onrender.com/api/properties/filter-options", e.FilterOptions)
	assert.Equal(t, "https://danterealestate-github-io.onrender.com/api/properties/stats", e.Stats)
}

func TestNewEndpoints_StripsTrailingSlash(t *testing.T) {
	e := NewEndpoints("http://localhost:10000/", logger.Nop())

	assert.Equal(t, "http://localhost:10000/api/chat", e.Chat)
	assert.Equal(t, "http://localhost:10000/api/properties/filter-options", e.FilterOptions)
	assert.Equal(t, "http://localhost:10000/api/properties/stats", e.Stats)
}

func TestNewEndpoints_LogsBaseURLOnce(t *testing.T) {
	var buf bytes.Buffer

	NewEndpoints(config.DefaultBaseURL, newCapturedLogger(&buf))

	output := strings.TrimSpace(buf.String())
	lines := strings.Split(output, "\n")

	require.Len(t, lines, 1, "expected exactly one diagnostic log entry")
	assert.Contains(t, lines[0], config.DefaultBaseURL)
}
