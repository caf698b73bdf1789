package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTestConfig drops a minimal configs/config.yaml into a temp working
// directory; defaults fill in the rest.
func writeTestConfig(t *testing.T, content string) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "configs"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "configs", "config.yaml"), []byte(content), 0o644))
	t.Chdir(dir)
}

func TestLoad_MapsEnvironmentToServerMode(t *testing.T) {
	writeTestConfig(t, "server:\n  host: 127.0.0.1\n")

	tests := []struct {
		env      string
		wantMode string
	}{
		{"development", "debug"},
		{"production", "release"},
		{"test", "test"},
		{"staging", "debug"},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			viper.Reset()
			cfg, err := Load(tt.env)
			require.NoError(t, err)
			assert.Equal(t, tt.wantMode, cfg.Server.Mode)
		})
	}
}

func TestLoad_AppliesDefaults(t *testing.T) {
	writeTestConfig(t, "server:\n  host: 127.0.0.1\n")
	viper.Reset()

	cfg, err := Load("development")
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 10000, cfg.Ticket.MaxTextLength)
	assert.Equal(t, "UTC", cfg.Ticket.Timezone)
}

func TestLoad_RejectsInvalidConfig(t *testing.T) {
	writeTestConfig(t, "server:\n  host: 127.0.0.1\n  port: 99999\n")
	viper.Reset()

	_, err := Load("development")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}
