// cmd/factweave/config_test.go
package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("FW_TEST_STRING", "hello")
	t.Setenv("FW_TEST_INT", "7")
	t.Setenv("FW_TEST_BAD_INT", "seven")
	t.Setenv("FW_TEST_BOOL", "true")

	assert.Equal(t, "hello", GetEnvString("FW_TEST_STRING", "fallback"))
	assert.Equal(t, "fallback", GetEnvString("FW_TEST_UNSET", "fallback"))
	assert.Equal(t, 7, GetEnvInt("FW_TEST_INT", 1))
	assert.Equal(t, 1, GetEnvInt("FW_TEST_BAD_INT", 1))
	assert.Equal(t, true, GetEnvBool("FW_TEST_BOOL", false))
	assert.Equal(t, false, GetEnvBool("FW_TEST_UNSET", false))
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, LogDebug, ParseLogLevel("debug"))
	assert.Equal(t, LogWarning, ParseLogLevel("WARN"))
	assert.Equal(t, LogWarning, ParseLogLevel("warning"))
	assert.Equal(t, LogError, ParseLogLevel(" error "))
	assert.Equal(t, LogInfo, ParseLogLevel("info"))
	assert.Equal(t, LogInfo, ParseLogLevel("garbage"))
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig()

	assert.Equal(t, "gpt-3.5-turbo", cfg.OpenAIModel)
	assert.Equal(t, "@every 15m", cfg.MonitorCron)
	assert.Equal(t, 4, cfg.Workers)
	assert.NotEmpty(t, cfg.UserAgent)
}
