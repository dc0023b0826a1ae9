package rotlog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, LevelInfo, cfg.Level)
	assert.Equal(t, "", cfg.File)
	assert.Equal(t, int64(20000), cfg.MaxSize)
	assert.Equal(t, 5, cfg.ArchiveCount)
}

func TestMergeConfig(t *testing.T) {
	merged := mergeConfig(&Config{Level: LevelEmergency, File: "x.log"})
	assert.Equal(t, LevelEmergency, merged.Level)
	assert.Equal(t, "x.log", merged.File)
	assert.Equal(t, DefaultMaxSize, merged.MaxSize)
	assert.Equal(t, DefaultArchiveCount, merged.ArchiveCount)

	merged = mergeConfig(&Config{MaxSize: 512, ArchiveCount: 2, Filter: true, Color: true})
	assert.Equal(t, int64(512), merged.MaxSize)
	assert.Equal(t, 2, merged.ArchiveCount)
	assert.True(t, merged.Filter)
	assert.True(t, merged.Color)
}

func TestLoadConfigTOML(t *testing.T) {
	path := writeConfig(t, "rotlog.toml", `
level = "notice"
file = "log/gas.log"
max_size = 4096
filter = true
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, LevelNotice, cfg.Level)
	assert.Equal(t, "log/gas.log", cfg.File)
	assert.Equal(t, int64(4096), cfg.MaxSize)
	assert.Equal(t, DefaultArchiveCount, cfg.ArchiveCount)
	assert.True(t, cfg.Filter)
}

func TestLoadConfigJSON5(t *testing.T) {
	path := writeConfig(t, "rotlog.json5", `{
  // numeric ranks are accepted too
  level: 7,
  file: "log/temp.log",
  archive_count: 3,
}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, LevelDebug, cfg.Level)
	assert.Equal(t, "log/temp.log", cfg.File)
	assert.Equal(t, 3, cfg.ArchiveCount)
	assert.Equal(t, DefaultMaxSize, cfg.MaxSize)
}

func TestLoadConfigJSON(t *testing.T) {
	path := writeConfig(t, "rotlog.json", `{"level": "warn", "color": true}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, LevelWarning, cfg.Level)
	assert.True(t, cfg.Color)
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"unknown extension", "rotlog.yaml", "level: info"},
		{"bad level", "rotlog.toml", `level = "loud"`},
		{"bad archive count", "rotlog.toml", `archive_count = -1`},
		{"malformed", "rotlog.json", `{"level": `},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.file, tt.content))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadFileKeepsUnsetFields(t *testing.T) {
	cfg := &Config{Level: LevelAlert, File: "from-env.log", MaxSize: 1000, ArchiveCount: 2}
	require.NoError(t, cfg.LoadFile(writeConfig(t, "over.toml", `max_size = 3000`)))

	assert.Equal(t, LevelAlert, cfg.Level)
	assert.Equal(t, "from-env.log", cfg.File)
	assert.Equal(t, int64(3000), cfg.MaxSize)
	assert.Equal(t, 2, cfg.ArchiveCount)
}

func TestLoadFileInvalidLeavesConfig(t *testing.T) {
	cfg := DefaultConfig()
	err := cfg.LoadFile(writeConfig(t, "bad.toml", "file = \"x.log\"\narchive_count = 0"))
	require.ErrorIs(t, err, ErrInvalidConfig)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestConfigFromEnvDefaults(t *testing.T) {
	for _, key := range []string{"LOG_LEVEL", "LOG_FILE", "LOG_MAX_SIZE", "LOG_ARCHIVE_COUNT", "LOG_FILTER", "LOG_COLOR"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := ConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "5")
	t.Setenv("LOG_FILE", "log/gas.log")
	t.Setenv("LOG_MAX_SIZE", "1024")
	t.Setenv("LOG_ARCHIVE_COUNT", "2")
	t.Setenv("LOG_FILTER", "true")
	t.Setenv("LOG_COLOR", "false")

	cfg, err := ConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, LevelNotice, cfg.Level)
	assert.Equal(t, "log/gas.log", cfg.File)
	assert.Equal(t, int64(1024), cfg.MaxSize)
	assert.Equal(t, 2, cfg.ArchiveCount)
	assert.True(t, cfg.Filter)
	assert.False(t, cfg.Color)
}

func TestConfigFromEnvInvalidLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "chatty")

	_, err := ConfigFromEnv()
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestConfigFromEnvMalformed(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"LOG_MAX_SIZE", "abc"},
		{"LOG_ARCHIVE_COUNT", "many"},
		{"LOG_FILTER", "yes"},
		{"LOG_COLOR", "sometimes"},
		{"LOG_ARCHIVE_COUNT", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := ConfigFromEnv()
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoadEnvOverlay(t *testing.T) {
	for _, key := range []string{"LOG_LEVEL", "LOG_FILE", "LOG_MAX_SIZE", "LOG_ARCHIVE_COUNT", "LOG_FILTER", "LOG_COLOR"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	t.Setenv("LOG_COLOR", "false")
	t.Setenv("LOG_MAX_SIZE", "4096")

	cfg := &Config{Level: LevelAlert, File: "keep.log", MaxSize: 1, ArchiveCount: 3, Color: true}
	require.NoError(t, cfg.LoadEnv())

	assert.Equal(t, LevelAlert, cfg.Level)
	assert.Equal(t, "keep.log", cfg.File)
	assert.Equal(t, int64(4096), cfg.MaxSize)
	assert.Equal(t, 3, cfg.ArchiveCount)
	assert.False(t, cfg.Color, "an explicit false overrides the base")
}

func TestLoadEnvMalformedKeepsConfig(t *testing.T) {
	t.Setenv("LOG_FILE", "changed.log")
	t.Setenv("LOG_FILTER", "yes")

	cfg := DefaultConfig()
	assert.ErrorIs(t, cfg.LoadEnv(), ErrInvalidConfig)
	assert.Equal(t, DefaultConfig(), cfg)
}
