/*
PURPOSE:
  Provides the package-level structured logger for w2v-bench.
  Every trainer command is announced here before it runs.

REQUIREMENTS:
  User-specified:
  - Print each trainer command (full argv) on the diagnostic stream before it runs.

  Implementation-discovered:
  - Trainers inherit the harness's stdout, so logs go to stderr only.
  - Tests swap the sink with SetLogger(NewTextLogger(buf)) to assert on progress lines.

ARCHITECTURE INTEGRATION:
  - Used by: internal/engine (progress, summary), internal/cli (plot progress).

ERROR HANDLING:
  - N/A

IMPLEMENTATION RULES:
  - Use `log/slog` text handler; values with spaces (commands) come out quoted.

USAGE:
  output.Logger.Info("Running trainer", "cmd", strings.Join(argv, " "))

SELF-HEALING INSTRUCTIONS:
  - Ensure Go 1.21+ is used.

RELATED FILES:
  - internal/engine/sweep.go

MAINTENANCE:
  - Keep the "Running trainer" message and cmd key stable; operators grep for them.
*/

package output

import (
	"io"
	"log/slog"
	"os"
)

var Logger = NewTextLogger(os.Stderr)

// NewTextLogger returns a slog text logger writing to w.
func NewTextLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, nil))
}

// SetLogger replaces the package logger.
func SetLogger(l *slog.Logger) {
	Logger = l
}
