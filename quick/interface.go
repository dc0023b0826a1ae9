package quick

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/LixenWraith/rotlog"
)

// config parses configuration strings into a rotlog.Config starting from the
// current default logger's settings. Each argument is "key=value" where key
// matches a Config toml tag.
func config(base rotlog.Config, args ...string) (*rotlog.Config, error) {
	cfg := base
	for _, arg := range args {
		key, value, err := parseKeyValue(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid config format: %s", arg)
		}

		if err := setValue(&cfg, key, value); err != nil {
			return nil, fmt.Errorf("config error: %w", err)
		}
	}
	return &cfg, nil
}

// parseKeyValue splits "key=value". Only the first '=' separates, so paths
// and values may contain further '=' characters.
func parseKeyValue(arg string) (string, string, error) {
	key, value, ok := strings.Cut(strings.TrimSpace(arg), "=")
	if !ok || strings.TrimSpace(key) == "" {
		return "", "", fmt.Errorf("invalid format")
	}
	return strings.TrimSpace(key), strings.TrimSpace(value), nil
}

// setValue updates a Config field using reflection.
// Field matching is case-insensitive against the toml tag.
// The "level" field accepts severity names, aliases or ranks.
func setValue(cfg *rotlog.Config, key, value string) error {
	key = strings.ToLower(key)

	v := reflect.ValueOf(cfg).Elem()
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if tag := field.Tag.Get("toml"); tag != key {
			continue
		}
		f := v.Field(i)

		if key == "level" {
			level, err := rotlog.ParseSeverity(value)
			if err != nil {
				return err
			}
			f.SetInt(int64(level))
			return nil
		}

		switch f.Kind() {
		case reflect.Int, reflect.Int64:
			val, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid integer value for %s: %s", key, value)
			}
			f.SetInt(val)

		case reflect.String:
			// Keep original case for paths
			f.SetString(value)

		case reflect.Bool:
			val, err := strconv.ParseBool(value)
			if err != nil {
				return fmt.Errorf("invalid bool value for %s: %s", key, value)
			}
			f.SetBool(val)

		default:
			return fmt.Errorf("unsupported config type for %s", key)
		}
		return nil
	}
	return fmt.Errorf("unknown config key: %s", key)
}
