package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	require.Equal(t, "http://127.0.0.1:8080", cfg.ServerEndpointAddr)
	require.Len(t, cfg.AdminFingerprint, 64)
	require.Equal(t, 10*time.Second, cfg.RequestTimeout)
	require.Equal(t, "en", cfg.Language)
}

func TestLoadConfigFlagsOverrideDefaults(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"client", "-a", "https://games.example.com", "-l", "nl"}

	cfg := LoadConfig()
	require.Equal(t, "https://games.example.com", cfg.ServerEndpointAddr)
	require.Equal(t, "nl", cfg.Language)
	require.Equal(t, 10*time.Second, cfg.RequestTimeout)
}

func TestLoadConfigJsonOverlay(t *testing.T) {
	file := filepath.Join(t.TempDir(), "config.json")
	data := `{"server_endpoint_addr":"https://json.example.com","request_timeout":"30s","admin_fingerprint":"abc123"}`
	require.NoError(t, os.WriteFile(file, []byte(data), 0o600))

	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"client", "-c", file}

	cfg := LoadConfig()
	require.Equal(t, "https://json.example.com", cfg.ServerEndpointAddr)
	require.Equal(t, 30*time.Second, cfg.RequestTimeout)
	require.Equal(t, "abc123", cfg.AdminFingerprint)
	require.Equal(t, "en", cfg.Language)
}

func TestFlagsTakePrecedenceOverJson(t *testing.T) {
	file := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(file, []byte(`{"language":"nl"}`), 0o600))

	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"client", "-c", file, "-l", "en"}

	cfg := LoadConfig()
	require.Equal(t, "en", cfg.Language)
}
