package rotlog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
	"github.com/titanous/json5"
)

const (
	DefaultMaxSize      int64 = 20000
	DefaultArchiveCount       = 5
)

// Config defines the logger configuration parameters.
// All fields can be configured via JSON5 or TOML configuration files, or LOG_* environment variables.
type Config struct {
	Level        Severity `json:"level" toml:"level"`                 // Minimum severity, only enforced when Filter is set
	File         string   `json:"file" toml:"file"`                   // Destination path, empty writes to stdout
	MaxSize      int64    `json:"max_size" toml:"max_size"`           // Size in bytes above which the file is rotated
	ArchiveCount int      `json:"archive_count" toml:"archive_count"` // Number of gzip generations kept
	Filter       bool     `json:"filter" toml:"filter"`               // Drop messages less severe than Level
	Color        bool     `json:"color" toml:"color"`                 // Colorize the level field on stdout
}

// DefaultConfig returns the configuration used when a field is left at its zero value.
func DefaultConfig() *Config {
	return &Config{
		Level:        LevelInfo,
		File:         "",
		MaxSize:      DefaultMaxSize,
		ArchiveCount: DefaultArchiveCount,
	}
}

// mergeConfig fills zero-valued fields of cfg from the defaults.
// Level is taken as-is: LevelEmergency is rank 0 and a valid threshold.
func mergeConfig(cfg *Config) Config {
	def := DefaultConfig()
	if cfg == nil {
		return *def
	}
	return Config{
		Level:        cfg.Level,
		File:         cfg.File, // empty string is valid
		MaxSize:      getConfigValue(def.MaxSize, cfg.MaxSize),
		ArchiveCount: getConfigValue(def.ArchiveCount, cfg.ArchiveCount),
		Filter:       cfg.Filter,
		Color:        cfg.Color,
	}
}

// validate checks ranges that cannot be defaulted away.
func (c *Config) validate() error {
	if !c.Level.Valid() {
		return fmt.Errorf("%w: level %d out of range", ErrInvalidConfig, int(c.Level))
	}
	if c.MaxSize < 0 {
		return fmt.Errorf("%w: max_size must not be negative", ErrInvalidConfig)
	}
	if c.ArchiveCount < 1 {
		return fmt.Errorf("%w: archive_count must be at least 1", ErrInvalidConfig)
	}
	return nil
}

// getConfigValue returns defaultVal if cfgVal equals the zero value for type T,
// otherwise returns cfgVal.
func getConfigValue[T comparable](defaultVal, cfgVal T) T {
	var zero T
	if cfgVal == zero {
		return defaultVal
	}
	return cfgVal
}

// LoadConfig reads a configuration file over the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := cfg.LoadFile(path); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile decodes a configuration file over c. The format is chosen by
// extension: .toml, or .json/.json5. Fields absent from the file are left untouched.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	next := *c
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(data, &next)
	case ".json", ".json5":
		err = json5.Unmarshal(data, &next)
	default:
		return fmt.Errorf("%w: unsupported config format %q", ErrInvalidConfig, ext)
	}
	if err != nil {
		return fmt.Errorf("%w: failed to parse %s: %v", ErrInvalidConfig, path, err)
	}

	if err := next.validate(); err != nil {
		return err
	}
	*c = next
	return nil
}

// ConfigFromEnv builds a configuration from LOG_LEVEL, LOG_FILE, LOG_MAX_SIZE,
// LOG_ARCHIVE_COUNT, LOG_FILTER and LOG_COLOR. Unset variables keep their defaults.
func ConfigFromEnv() (*Config, error) {
	cfg := DefaultConfig()
	if err := cfg.LoadEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadEnv overlays the LOG_* environment variables on c. Only variables that
// are set and non-empty are applied. A malformed value leaves c untouched.
func (c *Config) LoadEnv() error {
	v := viper.New()
	v.SetEnvPrefix("LOG")

	next := *c
	for _, key := range []string{"level", "file", "max_size", "archive_count", "filter", "color"} {
		if err := v.BindEnv(key); err != nil {
			return fmt.Errorf("failed to bind %s: %w", key, err)
		}
		if !v.IsSet(key) {
			continue
		}
		if err := next.setEnv(key, v.Get(key)); err != nil {
			return fmt.Errorf("%w: LOG_%s: %v", ErrInvalidConfig, strings.ToUpper(key), err)
		}
	}

	if err := next.validate(); err != nil {
		return err
	}
	*c = next
	return nil
}

func (c *Config) setEnv(key string, raw any) error {
	var err error
	switch key {
	case "level":
		c.Level, err = ParseSeverity(cast.ToString(raw))
	case "file":
		c.File, err = cast.ToStringE(raw)
	case "max_size":
		c.MaxSize, err = cast.ToInt64E(raw)
	case "archive_count":
		c.ArchiveCount, err = cast.ToIntE(raw)
	case "filter":
		c.Filter, err = cast.ToBoolE(raw)
	case "color":
		c.Color, err = cast.ToBoolE(raw)
	}
	return err
}
