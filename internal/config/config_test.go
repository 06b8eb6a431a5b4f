package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("DATABASE_DRIVER", "sqlite")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.ServerAddr)
	assert.Equal(t, "file:gamereviews.db", cfg.DatabaseURL)
	assert.Equal(t, 1.0, cfg.ReviewMinPlayHours)
	assert.Equal(t, 3, cfg.ReviewMaxAttempts)
	assert.Equal(t, 7*24*time.Hour, cfg.SessionTTL())
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins())
	assert.Same(t, cfg, AppConfig)
}

func TestLoadConfigFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	env := "DATABASE_DRIVER=postgres\nDATABASE_URL=postgres://file@localhost/games\nLOG_LEVEL=debug\nREVIEW_MIN_PLAY_HOURS=0\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(env), 0o600))
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000, https://games.example.com")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "postgres", cfg.DatabaseDriver)
	assert.Equal(t, "postgres://file@localhost/games", cfg.DatabaseURL)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 0.0, cfg.ReviewMinPlayHours)
	assert.Equal(t, []string{"http://localhost:3000", "https://games.example.com"}, cfg.AllowedOrigins())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{
			name:    "postgres without url",
			cfg:     Config{DatabaseDriver: "postgres", ReviewMaxAttempts: 1},
			wantErr: "DATABASE_URL is required",
		},
		{
			name:    "unknown driver",
			cfg:     Config{DatabaseDriver: "mongo", ReviewMaxAttempts: 1},
			wantErr: "unsupported DATABASE_DRIVER",
		},
		{
			name:    "zero attempts",
			cfg:     Config{DatabaseDriver: "sqlite"},
			wantErr: "REVIEW_MAX_ATTEMPTS",
		},
		{
			name:    "negative play hours",
			cfg:     Config{DatabaseDriver: "sqlite", ReviewMaxAttempts: 1, ReviewMinPlayHours: -1},
			wantErr: "REVIEW_MIN_PLAY_HOURS",
		},
		{
			name: "sqlite ok",
			cfg:  Config{DatabaseDriver: "sqlite", ReviewMaxAttempts: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
