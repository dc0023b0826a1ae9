package rotlog

import (
	"errors"
	"fmt"
	"os"
	"sync"
)

// Package level default logger used by the severity functions below.
// It writes to stdout with default settings until Setup or SetDefault replaces it.
var (
	defaultLogger *Logger
	mu            sync.RWMutex

	osExit = os.Exit
)

func init() {
	l, err := New(nil)
	if err != nil {
		panic(err)
	}
	defaultLogger = l
}

// Setup configures the default logger with a minimum severity and a
// destination file, creating missing parent directories. An empty path
// writes to stdout. Calling it again replaces the configuration; on error the
// previous default logger stays in place.
func Setup(level Severity, path string) error {
	cfg := DefaultConfig()
	cfg.Level = level
	cfg.File = path

	l, err := New(cfg)
	if err != nil {
		return err
	}
	SetDefault(l)
	return nil
}

// MustSetup is Setup for programs that must not run without a writable log.
// Any failure is printed to stdout and the process exits with status 1.
func MustSetup(level Severity, path string) {
	err := Setup(level, path)
	if err == nil {
		return
	}
	if errors.Is(err, ErrPermission) {
		fmt.Fprintln(os.Stdout, "Invalid permissions to create directory. Halted")
	} else {
		fmt.Fprintf(os.Stdout, "Failed to set up logger: %v\n", err)
	}
	osExit(1)
}

// SetDefault installs l as the logger behind the package level functions.
func SetDefault(l *Logger) {
	if l == nil {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	defaultLogger = l
}

// Default returns the logger behind the package level functions.
func Default() *Logger {
	mu.RLock()
	defer mu.RUnlock()
	return defaultLogger
}

// Log writes msg at the given severity through the default logger.
func Log(level Severity, msg string) error {
	return Default().Log(level, msg)
}

// Emergency logs a message at EMERGENCY severity through the default logger.
func Emergency(msg string) error {
	return Default().Log(LevelEmergency, msg)
}

// Alert logs a message at ALERT severity through the default logger.
func Alert(msg string) error {
	return Default().Log(LevelAlert, msg)
}

// Critical logs a message at CRITICAL severity through the default logger.
func Critical(msg string) error {
	return Default().Log(LevelCritical, msg)
}

// Error logs a message at ERROR severity through the default logger.
func Error(msg string) error {
	return Default().Log(LevelError, msg)
}

// Warning logs a message at WARNING severity through the default logger.
func Warning(msg string) error {
	return Default().Log(LevelWarning, msg)
}

// Notice logs a message at NOTICE severity through the default logger.
func Notice(msg string) error {
	return Default().Log(LevelNotice, msg)
}

// Info logs a message at INFO severity through the default logger.
func Info(msg string) error {
	return Default().Log(LevelInfo, msg)
}

// Debug logs a message at DEBUG severity through the default logger.
func Debug(msg string) error {
	return Default().Log(LevelDebug, msg)
}
