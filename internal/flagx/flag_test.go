package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		allowedFlags []string
		want         []string
	}{
		{
			name:         "separate value kept",
			args:         []string{"-a", "example.com:8000", "-x", "junk"},
			allowedFlags: []string{"-a"},
			want:         []string{"-a", "example.com:8000"},
		},
		{
			name:         "equals form kept",
			args:         []string{"--config=conf.json", "-v"},
			allowedFlags: []string{"--config"},
			want:         []string{"--config=conf.json"},
		},
		{
			name:         "flag followed by another flag has no value",
			args:         []string{"-a", "-b", "value"},
			allowedFlags: []string{"-a"},
			want:         []string{"-a"},
		},
		{
			name:         "nothing allowed",
			args:         []string{"-a", "x", "-b", "y"},
			allowedFlags: nil,
			want:         []string{},
		},
		{
			name:         "empty args",
			args:         nil,
			allowedFlags: []string{"-a"},
			want:         []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowedFlags))
		})
	}
}

func TestJSONConfigFlags(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd", "-c", "conf.json", "-a", "ignored"}
	assert.Equal(t, "conf.json", JSONConfigFlags())

	os.Args = []string{"cmd", "-config=other.json"}
	assert.Equal(t, "other.json", JSONConfigFlags())

	os.Args = []string{"cmd", "-a", "addr"}
	assert.Equal(t, "", JSONConfigFlags())
}
