// cmd/factweave/logger.go
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
)

// LogLevel represents the severity of a log message
type LogLevel int

const (
	LogDebug LogLevel = iota
	LogInfo
	LogWarning
	LogError
)

var logLevelStrings = map[LogLevel]string{
	LogDebug:   "DEBUG",
	LogInfo:    "INFO",
	LogWarning: "WARN",
	LogError:   "ERROR",
}

// Logger handles application logging
type Logger struct {
	logger *log.Logger
	file   *os.File
	level  LogLevel
	mutex  sync.Mutex
}

var (
	instance   *Logger
	instanceMu sync.Mutex
)

// InitLogger initializes the global logger instance. An empty path logs to
// stdout only.
func InitLogger(logPath string, level LogLevel) error {
	l, err := newLogger(logPath, level)
	if err != nil {
		return err
	}
	instanceMu.Lock()
	instance = l
	instanceMu.Unlock()
	return nil
}

// GetLogger returns the global logger instance, creating a stdout logger when
// none was initialized.
func GetLogger() *Logger {
	instanceMu.Lock()
	defer instanceMu.Unlock()
	if instance == nil {
		instance = &Logger{
			logger: log.New(os.Stdout, "", log.LstdFlags),
			level:  LogInfo,
		}
	}
	return instance
}

// newLogger creates a new logger instance
func newLogger(logPath string, level LogLevel) (*Logger, error) {
	var out io.Writer = os.Stdout
	var file *os.File

	if logPath != "" {
		if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %v", err)
		}
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %v", err)
		}
		file = f
		out = io.MultiWriter(f, os.Stdout)
	}

	return &Logger{
		logger: log.New(out, "", log.LstdFlags),
		file:   file,
		level:  level,
	}, nil
}

// log formats and writes a log message
func (l *Logger) log(level LogLevel, format string, args ...interface{}) {
	if level < l.level {
		return
	}
	l.mutex.Lock()
	defer l.mutex.Unlock()
	l.logger.Printf("[%s] %s", logLevelStrings[level], fmt.Sprintf(format, args...))
}

// Debug logs a debug message
func (l *Logger) Debug(format string, args ...interface{}) {
	l.log(LogDebug, format, args...)
}

// Info logs an info message
func (l *Logger) Info(format string, args ...interface{}) {
	l.log(LogInfo, format, args...)
}

// Warning logs a warning message
func (l *Logger) Warning(format string, args ...interface{}) {
	l.log(LogWarning, format, args...)
}

// Error logs an error message
func (l *Logger) Error(format string, args ...interface{}) {
	l.log(LogError, format, args...)
}

// SetLevel changes the logging level
func (l *Logger) SetLevel(level LogLevel) {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	l.level = level
}

// Close closes the underlying log file, if any
func (l *Logger) Close() error {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}
