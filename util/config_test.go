package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadServerConfig_Defaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("MS_PORT", "")

	cfg := LoadServerConfig()
	require.Equal(t, "3000", cfg.Port)
	require.Equal(t, 50, cfg.BodyLimitMB)
	require.Equal(t, "*", cfg.AllowOrigins)
}

func TestLoadServerConfig_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.yaml")
	content := "port: \"8080\"\nbody_limit_mb: 100\nallow_origins: \"https://app.example.com\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv("CONFIG_PATH", path)
	t.Setenv("MS_PORT", "")

	cfg := LoadServerConfig()
	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, 100, cfg.BodyLimitMB)
	require.Equal(t, "https://app.example.com", cfg.AllowOrigins)
}

func TestLoadServerConfig_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: \"9090\"\n"), 0o600))

	t.Setenv("CONFIG_PATH", path)
	t.Setenv("MS_PORT", "")

	cfg := LoadServerConfig()
	require.Equal(t, "9090", cfg.Port)
	require.Equal(t, 50, cfg.BodyLimitMB)
	require.Equal(t, "*", cfg.AllowOrigins)
}

func TestLoadServerConfig_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: \"9090\"\n"), 0o600))

	t.Setenv("CONFIG_PATH", path)
	t.Setenv("MS_PORT", "4000")

	cfg := LoadServerConfig()
	require.Equal(t, "4000", cfg.Port)
}

func TestLoadServerConfig_BrokenFileFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{not yaml"), 0o600))

	t.Setenv("CONFIG_PATH", path)
	t.Setenv("MS_PORT", "")

	cfg := LoadServerConfig()
	require.Equal(t, "3000", cfg.Port)
}
