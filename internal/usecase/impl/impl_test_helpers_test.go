package impl

import (
	"io"
	"log/slog"
)

// testLogger returns a logger that discards everything, keeping test output
// free of service log lines.
func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
