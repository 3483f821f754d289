package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/parlour-booking/internal/config"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer

	log, err := NewWithWriter(config.LogConfig{Level: "info", Format: "json"}, &buf)
	require.NoError(t, err)

	log.Debug("hidden")
	log.Info("visible", "user_id", 7)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "visible", entry["msg"])
	assert.EqualValues(t, 7, entry["user_id"])
}

func TestNew_Text(t *testing.T) {
	var buf bytes.Buffer

	log, err := NewWithWriter(config.LogConfig{Level: "debug", Format: "text"}, &buf)
	require.NoError(t, err)

	log.Debug("details")
	assert.Contains(t, buf.String(), "msg=details")
}

func TestNew_Invalid(t *testing.T) {
	_, err := NewWithWriter(config.LogConfig{Level: "loud"}, &bytes.Buffer{})
	assert.ErrorContains(t, err, "unknown log level")

	_, err = NewWithWriter(config.LogConfig{Level: "info", Format: "xml"}, &bytes.Buffer{})
	assert.ErrorContains(t, err, "unknown log format")
}
