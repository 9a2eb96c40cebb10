package logging_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/dannycabrera/bandwidth-go/internal/logging"
	"github.com/dannycabrera/bandwidth-go/pkg/bandwidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ bandwidth.Logger = (*logging.Logger)(nil)

func TestLogger_WritesJSONLines(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := logging.New(&buf, "debug").With(map[string]interface{}{"component": "http"})
	logger.Debug("HTTP Request", map[string]interface{}{"method": "GET"})

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "HTTP Request", line["message"])
	assert.Equal(t, "debug", line["level"])
	assert.Equal(t, "GET", line["method"])
	assert.Equal(t, "http", line["component"])
	assert.Contains(t, line, "@timestamp")
}

func TestLogger_RespectsLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := logging.New(&buf, "warn")
	logger.Debug("hidden", nil)
	logger.Info("hidden", nil)
	logger.Warn("shown", nil)
	logger.Error("shown too", map[string]interface{}{"status": 500})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 2)
	assert.NotContains(t, buf.String(), "hidden")
}

func TestLogger_UnknownLevelDefaultsToInfo(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := logging.New(&buf, "chatty")
	logger.Debug("hidden", nil)
	logger.Info("shown", nil)

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}
