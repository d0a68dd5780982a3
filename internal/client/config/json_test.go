package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJSON(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()

	t.Run("loads values from -c flag path", func(t *testing.T) {
		path := writeTempJSON(t, `{
			"server_endpoint_addr": "https://career.example.com",
			"request_timeout": "3s",
			"data_dir": "/var/lib/careermate"
		}`)
		os.Args = []string{"cmd", "-c", path}

		var cfg Config
		cfg.LoadDefaults()
		parseJSON(&cfg)

		assert.Equal(t, "https://career.example.com", cfg.ServerEndpointAddr)
		assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
		assert.Equal(t, "/var/lib/careermate", cfg.DataDir)
	})

	t.Run("partial file keeps remaining defaults", func(t *testing.T) {
		path := writeTempJSON(t, `{"server_endpoint_addr": "http://10.1.1.1:8000"}`)
		os.Args = []string{"cmd", "-config", path}

		var cfg Config
		cfg.LoadDefaults()
		parseJSON(&cfg)

		assert.Equal(t, "http://10.1.1.1:8000", cfg.ServerEndpointAddr)
		assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
		assert.Equal(t, ".", cfg.DataDir)
	})

	t.Run("no flag leaves config unchanged", func(t *testing.T) {
		os.Args = []string{"cmd"}

		var cfg Config
		cfg.LoadDefaults()
		want := cfg
		parseJSON(&cfg)

		assert.Equal(t, want, cfg)
	})

	t.Run("invalid json panics", func(t *testing.T) {
		path := writeTempJSON(t, `{not json`)
		os.Args = []string{"cmd", "-c", path}

		var cfg Config
		cfg.LoadDefaults()
		assert.Panics(t, func() { parseJSON(&cfg) })
	})

	t.Run("missing file panics", func(t *testing.T) {
		os.Args = []string{"cmd", "-c", filepath.Join(t.TempDir(), "absent.json")}

		var cfg Config
		cfg.LoadDefaults()
		assert.Panics(t, func() { parseJSON(&cfg) })
	})
}
