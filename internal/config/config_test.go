package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/orbit-editor/update-server/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := config.Load("")
	require.NoError(t, err)
	require.Equal(t, ":8080", cfg.Listen)
	require.Equal(t, "info", cfg.Log.Level)
	require.Equal(t, "origin", cfg.Provider.Name)
	require.False(t, cfg.ProxyProtocol)
	require.Empty(t, cfg.Probe.Crontab)
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	content := `listen: ":9000"
proxy_protocol: true
log:
  level: debug
provider:
  name: local
  path: /srv/metadata
probe:
  crontab: "*/15 * * * *"
`

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, ":9000", cfg.Listen)
	require.True(t, cfg.ProxyProtocol)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, "local", cfg.Provider.Name)
	require.Equal(t, "/srv/metadata", cfg.Provider.Settings()["path"])
	require.Equal(t, "*/15 * * * *", cfg.Probe.Crontab)
}

func TestLoadInvalid(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		content string
	}{
		{
			name:    "Empty listen address",
			content: `listen: ""`,
		},
		{
			name: "Unknown log level",
			content: `log:
  level: trace`,
		},
		{
			name: "Unknown provider",
			content: `provider:
  name: github`,
		},
		{
			name:    "Malformed YAML",
			content: `listen: [`,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tc.content), 0o644))

			_, err := config.Load(path)
			require.Error(t, err)
		})
	}
}

func TestLogLevel(t *testing.T) {
	t.Parallel()

	levels := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}

	for name, level := range levels {
		cfg := config.Config{Log: config.Log{Level: name}}
		require.Equal(t, level, cfg.LogLevel())
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
