package telemetry

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
)

func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	}))
}

// InitSlog installs a tint handler on stderr as the default logger.
func InitSlog(verbose bool) {
	slog.SetDefault(NewLogger(os.Stderr, verbose))
}
