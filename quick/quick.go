// Package quick wraps the rotlog default logger for scripts that want
// space-separated variadic arguments and no error handling at the call site.
package quick

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/LixenWraith/rotlog"
)

// errOutput receives failures that the emitters below do not return.
var errOutput io.Writer = os.Stderr

func log(level rotlog.Severity, args ...any) {
	msg := strings.TrimSuffix(fmt.Sprintln(args...), "\n")
	if err := rotlog.Log(level, msg); err != nil {
		fmt.Fprintf(errOutput, "rotlog: %v\n", err)
	}
}

// Emergency logs an emergency message.
func Emergency(args ...any) {
	log(rotlog.LevelEmergency, args...)
}

// Alert logs an alert message.
func Alert(args ...any) {
	log(rotlog.LevelAlert, args...)
}

// Critical logs a critical message.
func Critical(args ...any) {
	log(rotlog.LevelCritical, args...)
}

// Error logs an error message.
func Error(args ...any) {
	log(rotlog.LevelError, args...)
}

// Warning logs a warning message.
func Warning(args ...any) {
	log(rotlog.LevelWarning, args...)
}

// Notice logs a notice message.
func Notice(args ...any) {
	log(rotlog.LevelNotice, args...)
}

// Info logs an info message.
func Info(args ...any) {
	log(rotlog.LevelInfo, args...)
}

// Debug logs a debug message.
func Debug(args ...any) {
	log(rotlog.LevelDebug, args...)
}

// Config changes the default logger configuration with string statements,
// e.g. quick.Config("level=notice", "file=log/gas.log").
// Keys not mentioned keep their current value, and the clock, stdout writer
// and metrics of the current default logger are carried over.
func Config(args ...string) error {
	if len(args) == 0 {
		return fmt.Errorf("no config provided")
	}

	current := rotlog.Default()
	cfg, err := config(current.Config(), args...)
	if err != nil {
		return err
	}

	l, err := rotlog.New(cfg, current.Options())
	if err != nil {
		return err
	}
	rotlog.SetDefault(l)
	return nil
}
