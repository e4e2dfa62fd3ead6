// cmd/factweave/config.go
package main

import (
	"os"
	"strconv"
	"strings"
)

// Config holds application configuration. It is loaded once at startup and
// passed explicitly into each agent's constructor.
type Config struct {
	// External collaborators
	OpenAIAPIKey   string
	OpenAIModel    string
	NewsDataAPIKey string

	// Alert delivery (optional)
	DiscordToken   string
	AlertChannelID string

	// Monitor mode
	MonitorCron string

	// Files
	SourcesPath string
	LogPath     string
	LogLevel    LogLevel

	// HTTP client identity
	UserAgent string

	// Pipeline
	Workers int
}

// GetEnvString gets a string from environment variables with a default value
func GetEnvString(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// GetEnvInt gets an integer from environment variables with a default value
func GetEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// GetEnvBool gets a boolean from environment variables with a default value
func GetEnvBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		OpenAIAPIKey:   GetEnvString("OPENAI_API_KEY", ""),
		OpenAIModel:    GetEnvString("OPENAI_MODEL", "gpt-3.5-turbo"),
		NewsDataAPIKey: GetEnvString("NEWSDATA_API_KEY", ""),
		DiscordToken:   GetEnvString("DISCORD_BOT_TOKEN", ""),
		AlertChannelID: GetEnvString("ALERT_CHANNEL_ID", ""),
		MonitorCron:    GetEnvString("MONITOR_CRON", "@every 15m"),
		SourcesPath:    GetEnvString("SOURCES_PATH", "config/sources.yml"),
		LogPath:        GetEnvString("LOG_PATH", ""),
		LogLevel:       ParseLogLevel(GetEnvString("LOG_LEVEL", "info")),
		UserAgent:      GetEnvString("USER_AGENT", "FactWeave/1.0"),
		Workers:        GetEnvInt("PIPELINE_WORKERS", 4),
	}
}

// ParseLogLevel converts a level name into a LogLevel, defaulting to info.
func ParseLogLevel(name string) LogLevel {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return LogDebug
	case "warn", "warning":
		return LogWarning
	case "error":
		return LogError
	default:
		return LogInfo
	}
}
