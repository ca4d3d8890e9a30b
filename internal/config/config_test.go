package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeTempConfig(t, `{
		"resume": "profile.json",
		"database_url": "postgres://localhost/fit",
		"concurrency": 8,
		"rate_limit": 2.5,
		"verbose": true
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "profile.json", cfg.Resume)
	assert.Equal(t, "postgres://localhost/fit", cfg.DatabaseURL)
	assert.Equal(t, 8, cfg.Concurrency)
	assert.Equal(t, 2.5, cfg.RateLimit)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadConfig_BadJSON(t *testing.T) {
	path := writeTempConfig(t, `{"resume": `)
	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	existing := writeTempConfig(t, `{}`)

	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "empty config is valid", cfg: Config{}},
		{name: "existing file paths", cfg: Config{Resume: existing, Job: existing}},
		{name: "negative concurrency", cfg: Config{Concurrency: -1}, wantErr: true},
		{name: "negative rate limit", cfg: Config{RateLimit: -0.5}, wantErr: true},
		{name: "missing resume file", cfg: Config{Resume: "/nonexistent/profile.json"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "env-key")
	t.Setenv("DATABASE_URL", "postgres://env/db")

	cfg := Config{APIKey: "flag-key"}
	cfg.FromEnv()

	assert.Equal(t, "flag-key", cfg.APIKey, "explicit values win over env")
	assert.Equal(t, "postgres://env/db", cfg.DatabaseURL)
}

func TestMergeWithDefaults(t *testing.T) {
	base := Config{Resume: "mine.json", Concurrency: 2}
	defaults := Config{
		Resume:      "default.json",
		Job:         "job.json",
		Concurrency: 4,
		RateLimit:   5,
		Verbose:     true,
	}

	merged := base.MergeWithDefaults(defaults)

	assert.Equal(t, "mine.json", merged.Resume, "set fields are kept")
	assert.Equal(t, "job.json", merged.Job, "empty fields take defaults")
	assert.Equal(t, 2, merged.Concurrency)
	assert.Equal(t, 5.0, merged.RateLimit)
	assert.False(t, merged.Verbose, "bools never merge from defaults")
}
