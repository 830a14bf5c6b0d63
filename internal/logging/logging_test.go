package logging_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jroosing/domaininfo/internal/logging"
)

func TestConfigure_Defaults(t *testing.T) {
	logger := logging.Configure(logging.Config{})
	require.NotNil(t, logger)
}

func TestConfigureWriter_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.ConfigureWriter(logging.Config{Level: "INFO", Format: "json"}, &buf)

	logger.Info("hello", "domain", "example.com")

	out := buf.String()
	assert.Contains(t, out, `"msg":"hello"`)
	assert.Contains(t, out, `"domain":"example.com"`)
}

func TestConfigureWriter_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.ConfigureWriter(logging.Config{Level: "INFO", Format: "text"}, &buf)

	logger.Info("hello")

	assert.Contains(t, buf.String(), "msg=hello")
}

func TestConfigureWriter_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.ConfigureWriter(logging.Config{Level: "WARN"}, &buf)

	logger.Info("dropped")
	logger.Warn("kept")

	out := buf.String()
	assert.NotContains(t, out, "dropped")
	assert.Contains(t, out, "kept")
}

func TestConfigureWriter_CaseInsensitiveLevel(t *testing.T) {
	for _, level := range []string{"debug", "Debug", "DEBUG", "DeBuG"} {
		t.Run(level, func(t *testing.T) {
			var buf bytes.Buffer
			logger := logging.ConfigureWriter(logging.Config{Level: level}, &buf)
			logger.Debug("visible")
			assert.Contains(t, buf.String(), "visible")
		})
	}
}

func TestConfigureWriter_InvalidLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.ConfigureWriter(logging.Config{Level: "LOUD"}, &buf)

	logger.Debug("dropped")
	logger.Info("kept")

	out := buf.String()
	assert.NotContains(t, out, "dropped")
	assert.Contains(t, out, "kept")
}

func TestConfigureWriter_ExtraFieldsAndPID(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.ConfigureWriter(logging.Config{
		Level:       "INFO",
		Format:      "json",
		IncludePID:  true,
		ExtraFields: map[string]string{"app": "domaininfo"},
	}, &buf)

	logger.Info("hello")

	out := buf.String()
	assert.Contains(t, out, `"app":"domaininfo"`)
	assert.Contains(t, out, `"pid":`)
}
