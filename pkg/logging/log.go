package logging

import (
	"io"
	"log/slog"
	"os"
)

var Logger = slog.New(slog.NewTextHandler(os.Stdout, nil))

func Init(env string) {
	Logger = New(env, os.Stdout)
}

// New builds a JSON logger for prod and a text logger for everything else.
func New(env string, w io.Writer) *slog.Logger {
	if env == "prod" {
		return slog.New(slog.NewJSONHandler(w, nil))
	}
	return slog.New(slog.NewTextHandler(w, nil))
}
