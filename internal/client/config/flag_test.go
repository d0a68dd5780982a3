package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		want        Config
		expectPanic bool
	}{
		{
			name: "no flags keeps defaults",
			args: []string{"cmd"},
			want: Config{
				ServerEndpointAddr: "http://127.0.0.1:8000",
				RequestTimeout:     15 * time.Second,
				DataDir:            ".",
			},
		},
		{
			name: "address flag",
			args: []string{"cmd", "-a", "https://career.example.com"},
			want: Config{
				ServerEndpointAddr: "https://career.example.com",
				RequestTimeout:     15 * time.Second,
				DataDir:            ".",
			},
		},
		{
			name: "timeout flag in seconds",
			args: []string{"cmd", "-t", "30"},
			want: Config{
				ServerEndpointAddr: "http://127.0.0.1:8000",
				RequestTimeout:     30 * time.Second,
				DataDir:            ".",
			},
		},
		{
			name: "all flags together",
			args: []string{"cmd", "-a", "http://10.0.0.5:9000", "-t", "5", "-d", "/tmp/careermate"},
			want: Config{
				ServerEndpointAddr: "http://10.0.0.5:9000",
				RequestTimeout:     5 * time.Second,
				DataDir:            "/tmp/careermate",
			},
		},
		{
			name: "unknown flags are ignored",
			args: []string{"cmd", "-x", "1", "-a", "http://localhost:8080"},
			want: Config{
				ServerEndpointAddr: "http://localhost:8080",
				RequestTimeout:     15 * time.Second,
				DataDir:            ".",
			},
		},
		{
			name:        "malformed timeout panics",
			args:        []string{"cmd", "-t", "soon"},
			expectPanic: true,
		},
	}

	origArgs := os.Args
	defer func() { os.Args = origArgs }()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args

			var cfg Config
			cfg.LoadDefaults()

			if tt.expectPanic {
				assert.Panics(t, func() { parseFlags(&cfg) })
				return
			}

			parseFlags(&cfg)
			assert.Equal(t, tt.want, cfg)
		})
	}
}
