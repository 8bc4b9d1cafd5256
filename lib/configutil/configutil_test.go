package configutil

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	UserAgent      string `json:"user_agent"`
	TimeoutSeconds int    `json:"timeout_seconds"`
}

func writeFile(t testing.TB, path, contents string) {
	err := os.WriteFile(path, []byte(contents), 0600)
	if err != nil {
		t.Fatal(err)
	}
}

func TestReadConfigLocalOverride(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "scraper.json5"), `{
		// comments are allowed
		user_agent: "base",
		timeout_seconds: 10,
	}`)
	writeFile(t, filepath.Join(dir, "scraper.local.json5"), `{ timeout_seconds: 3 }`)

	cfg, err := ReadConfig[testConfig](filepath.Join(dir, "scraper.json5"))
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, "base", cfg.UserAgent)
	require.Equal(t, 3, cfg.TimeoutSeconds)
}

func TestReadConfigMissing(t *testing.T) {
	_, err := ReadConfig[testConfig](filepath.Join(t.TempDir(), "scraper.json5"))
	require.True(t, errors.Is(err, os.ErrNotExist))
}

func TestReadWithDefaults(t *testing.T) {
	defaults := testConfig{UserAgent: "default", TimeoutSeconds: 10}

	dir := t.TempDir()
	cfg, err := ReadWithDefaults(filepath.Join(dir, "scraper.json5"), defaults)
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, defaults, cfg)

	writeFile(t, filepath.Join(dir, "scraper.json5"), `{ user_agent: "custom" }`)
	cfg, err = ReadWithDefaults(filepath.Join(dir, "scraper.json5"), defaults)
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, "custom", cfg.UserAgent)
	require.Equal(t, 10, cfg.TimeoutSeconds)
}
