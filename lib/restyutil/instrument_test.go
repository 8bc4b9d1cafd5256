package restyutil

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/require"
)

func TestInstrumentClient(t *testing.T) {
	previous := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer slog.SetDefault(previous)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte("<p>hello</p>"))
	}))
	defer server.Close()

	dir := filepath.Join(t.TempDir(), "dump")
	output, err := NewFilesystemOutput(dir)
	if err != nil {
		t.Fatal(err)
	}

	client := resty.New()
	client.SetHeader("User-Agent", "test-agent")
	InstrumentClient(client, output)

	_, err = client.R().Get(server.URL)
	if err != nil {
		t.Fatal(err)
	}

	contents, err := os.ReadFile(filepath.Join(output.Dir(), "1"))
	if err != nil {
		t.Fatal(err)
	}
	require.Contains(t, string(contents), "---- REQUEST ----")
	require.Contains(t, string(contents), "GET "+server.URL)
	require.Contains(t, string(contents), "User-Agent: test-agent")
	require.Contains(t, string(contents), "200 ")
	require.Contains(t, string(contents), "<p>hello</p>")
}

func TestFilesystemOutputKeepsExistingFiles(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "notes.txt")
	err := os.WriteFile(existing, []byte("keep me"), 0600)
	if err != nil {
		t.Fatal(err)
	}

	first, err := NewFilesystemOutput(dir)
	if err != nil {
		t.Fatal(err)
	}
	second, err := NewFilesystemOutput(dir)
	if err != nil {
		t.Fatal(err)
	}
	first.Write("1", "first run")

	contents, err := os.ReadFile(existing)
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, "keep me", string(contents))

	require.NotEqual(t, first.Dir(), second.Dir())
	require.Equal(t, dir, filepath.Dir(first.Dir()))

	written, err := os.ReadFile(filepath.Join(first.Dir(), "1"))
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, "first run", string(written))
}

func TestInstrumentClientNilOutput(t *testing.T) {
	client := resty.New()
	InstrumentClient(client, nil)
}
