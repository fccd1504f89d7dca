package logger

import (
	"log/slog"
	"os"
)

// New returns the structured logger the services log through.
func New() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}
