package rotlog

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// Options carries the collaborators of a Logger that are not part of its configuration.
type Options struct {
	TimeNow func() time.Time // Clock for the timestamp field, time.Now by default
	Stdout  io.Writer        // Destination when Config.File is empty, os.Stdout by default
	Metrics *Metrics         // Optional counters, nil disables them
}

// Logger writes leveled lines to stdout or to a size-rotated file.
// The configuration is fixed at construction.
type Logger struct {
	mu  sync.Mutex
	cfg Config
	opt Options
	pid int
	s   *serializer
}

// New validates cfg, creates the parent directories of cfg.File and returns
// a ready Logger. A nil cfg yields the defaults: INFO threshold, stdout output.
func New(cfg *Config, opts ...Options) (*Logger, error) {
	merged := mergeConfig(cfg)
	if err := merged.validate(); err != nil {
		return nil, err
	}

	var opt Options
	if len(opts) > 0 {
		opt = opts[0]
	}
	if opt.TimeNow == nil {
		opt.TimeNow = time.Now
	}
	if opt.Stdout == nil {
		opt.Stdout = os.Stdout
	}

	if merged.File != "" {
		if err := ensureDir(merged.File); err != nil {
			return nil, err
		}
	}

	s := newSerializer()
	s.color = merged.Color && merged.File == ""

	return &Logger{
		cfg: merged,
		opt: opt,
		pid: os.Getpid(),
		s:   s,
	}, nil
}

// Config returns a copy of the logger's effective configuration.
func (l *Logger) Config() Config {
	return l.cfg
}

// Options returns the collaborators the logger was built with, defaults filled in.
func (l *Logger) Options() Options {
	return l.opt
}

// Archives lists the existing archive generations of the log file, generation 1 first.
// A stdout logger has none.
func (l *Logger) Archives() ([]string, error) {
	if l.cfg.File == "" {
		return nil, nil
	}
	return listArchives(l.cfg.File, l.cfg.ArchiveCount)
}

// enabled applies the threshold when filtering is on. A LevelOff threshold silences everything.
func (l *Logger) enabled(level Severity) bool {
	if !l.cfg.Filter {
		return true
	}
	if l.cfg.Level == LevelOff {
		return false
	}
	return level <= l.cfg.Level
}

// Log writes msg at the given severity. LevelOff is accepted and ignored; values
// outside the enumeration return ErrInvalidSeverity without writing anything.
// An error wrapping ErrRotate means the line was written but the following
// rotation failed.
func (l *Logger) Log(level Severity, msg string) error {
	if !level.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidSeverity, int(level))
	}
	if level == LevelOff || !l.enabled(level) {
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	data := l.s.serialize(l.opt.TimeNow(), l.pid, level, msg)

	if l.cfg.File == "" {
		if _, err := l.opt.Stdout.Write(data); err != nil {
			return fmt.Errorf("failed to write log line: %w", err)
		}
		l.opt.Metrics.observeLine(level, len(data))
		return nil
	}

	if err := appendLine(l.cfg.File, data); err != nil {
		return err
	}
	l.opt.Metrics.observeLine(level, len(data))

	rotated, err := l.rotateCheck()
	if err != nil {
		l.opt.Metrics.observeRotation(err)
		return fmt.Errorf("%w: %w", ErrRotate, err)
	}
	if rotated {
		l.opt.Metrics.observeRotation(nil)
	}
	return nil
}

// Emergency logs a message at EMERGENCY severity.
func (l *Logger) Emergency(msg string) error {
	return l.Log(LevelEmergency, msg)
}

// Alert logs a message at ALERT severity.
func (l *Logger) Alert(msg string) error {
	return l.Log(LevelAlert, msg)
}

// Critical logs a message at CRITICAL severity.
func (l *Logger) Critical(msg string) error {
	return l.Log(LevelCritical, msg)
}

// Error logs a message at ERROR severity.
func (l *Logger) Error(msg string) error {
	return l.Log(LevelError, msg)
}

// Warning logs a message at WARNING severity.
func (l *Logger) Warning(msg string) error {
	return l.Log(LevelWarning, msg)
}

// Notice logs a message at NOTICE severity.
func (l *Logger) Notice(msg string) error {
	return l.Log(LevelNotice, msg)
}

// Info logs a message at INFO severity.
func (l *Logger) Info(msg string) error {
	return l.Log(LevelInfo, msg)
}

// Debug logs a message at DEBUG severity.
func (l *Logger) Debug(msg string) error {
	return l.Log(LevelDebug, msg)
}
