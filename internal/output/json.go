/*
PURPOSE:
  Writes per-trial records to a JSON Lines file (NDJSON).
  Keeps the full command and timestamp that the table format drops.

REQUIREMENTS:
  User-specified:
  - JSON output for easier parsing.

  Implementation-discovered:
  - JSON Lines is better for streaming/logging than a single large array (append-friendly).
  - Each line is a single unbuffered write, so a crash loses at most the trial in flight.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine
  - Consumes: internal/model.Trial

ERROR HANDLING:
  - Returns error on file creation, encoding or write failure.

IMPLEMENTATION RULES:
  - Encode with github.com/bytedance/sonic.
  - Thread-safe.

USAGE:
  w, err := output.NewJSONWriter("trials.jsonl")
  w.Write(trial)
  w.Close()

SELF-HEALING INSTRUCTIONS:
  - None specific.

RELATED FILES:
  - internal/model/types.go

MAINTENANCE:
  - Update if we switch to plain JSON array (not recommended for streaming).
*/

package output

import (
	"os"
	"sync"

	"github.com/bytedance/sonic"

	"github.com/daryltucker/w2v-bench/internal/model"
)

// JSONWriter handles writing trials to a JSON Lines file.
type JSONWriter struct {
	file *os.File
	mu   sync.Mutex
}

// NewJSONWriter creates a new JSONWriter.
func NewJSONWriter(path string) (*JSONWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	return &JSONWriter{
		file: f,
	}, nil
}

// Write writes a single trial as a JSON line.
func (jw *JSONWriter) Write(t model.Trial) error {
	jw.mu.Lock()
	defer jw.mu.Unlock()

	t.Seconds = t.Elapsed.Seconds()
	line, err := sonic.Marshal(t)
	if err != nil {
		return err
	}
	line = append(line, '\n')
	_, err = jw.file.Write(line)
	return err
}

// Close closes the underlying file.
func (jw *JSONWriter) Close() error {
	return jw.file.Close()
}
