package restyutil

import (
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// FilesystemOutput writes each captured HTTP exchange to its own file
// inside a fresh per-run directory. Nothing that already exists is
// touched.
type FilesystemOutput struct {
	directory string
}

// NewFilesystemOutput creates `parent` if needed and a new timestamped
// directory inside it to hold this run's exchanges.
func NewFilesystemOutput(parent string) (FilesystemOutput, error) {
	err := os.MkdirAll(parent, 0777)
	if err != nil {
		return FilesystemOutput{}, err
	}
	dir, err := os.MkdirTemp(parent, time.Now().Format("20060102-150405-"))
	if err != nil {
		return FilesystemOutput{}, err
	}
	return FilesystemOutput{directory: dir}, nil
}

func (o FilesystemOutput) Dir() string {
	return o.directory
}

func (o FilesystemOutput) Write(id string, contents string) {
	err := os.WriteFile(filepath.Join(o.directory, id), []byte(contents), 0600)
	if err != nil {
		slog.Warn("failed to write message info file", "id", id, "err", err)
	}
}
