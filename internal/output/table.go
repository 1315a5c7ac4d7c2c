/*
PURPOSE:
  Writes sweep results to a tab-delimited table.
  Ensures data integrity by flushing writes immediately.

REQUIREMENTS:
  User-specified:
  - One row per thread count: "<threads>\t<t1>\t<t2>...".
  - Keep file handle open and flush after every trial (crash resilience).

  Implementation-discovered:
  - The label is written together with the row's first trial, so a trainer
    failing on its first run leaves no half-started row behind.
  - Rows are separated by a newline written before each new row; Close
    terminates the last one.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine
  - Read back by: internal/table

ERROR HANDLING:
  - Returns error on file creation, write, flush or sync failure.

IMPLEMENTATION RULES:
  - Flush() and Sync() after every Append.
  - Mutex-guarded; Close is idempotent.

USAGE:
  w, err := output.NewTableWriter("times.tsv")
  w.Append(4, 12.5)
  w.Close()

SELF-HEALING INSTRUCTIONS:
  - If the row format changes, update internal/table/loader.go in lockstep.

RELATED FILES:
  - internal/table/loader.go

MAINTENANCE:
  - The format is the contract with the plot command. Do not add headers.
*/

package output

import (
	"bufio"
	"errors"
	"os"
	"strconv"
	"sync"

	"github.com/daryltucker/w2v-bench/internal/model"
)

// TableWriter handles writing trial times to a result table.
type TableWriter struct {
	file   *os.File
	writer *bufio.Writer
	mu     sync.Mutex

	rows    int
	current int
	trials  int
	closed  bool
}

// NewTableWriter creates a new TableWriter.
// It overwrites the file if it exists.
func NewTableWriter(path string) (*TableWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	return &TableWriter{
		file:   f,
		writer: bufio.NewWriter(f),
	}, nil
}

// Append records one trial for the given thread count and flushes it to disk.
// Calls for the same thread count must be consecutive.
func (tw *TableWriter) Append(threads int, seconds float64) error {
	tw.mu.Lock()
	defer tw.mu.Unlock()

	if tw.closed {
		return errors.New("table writer is closed")
	}

	if tw.rows == 0 || threads != tw.current {
		if tw.rows > 0 {
			tw.writer.WriteByte('\n')
		}
		tw.writer.WriteString(strconv.Itoa(threads))
		tw.current = threads
		tw.rows++
	}
	tw.writer.WriteByte('\t')
	tw.writer.WriteString(FormatSeconds(seconds))
	tw.trials++

	if err := tw.writer.Flush(); err != nil {
		return err
	}
	return tw.file.Sync()
}

// Write records a finished trial.
func (tw *TableWriter) Write(t model.Trial) error {
	return tw.Append(t.Threads, t.Elapsed.Seconds())
}

// Trials returns the number of trials written so far.
func (tw *TableWriter) Trials() int {
	tw.mu.Lock()
	defer tw.mu.Unlock()
	return tw.trials
}

// Close terminates the last row and closes the underlying file.
func (tw *TableWriter) Close() error {
	tw.mu.Lock()
	defer tw.mu.Unlock()

	if tw.closed {
		return nil
	}
	tw.closed = true

	if tw.rows > 0 {
		tw.writer.WriteByte('\n')
	}
	flushErr := tw.writer.Flush()
	closeErr := tw.file.Close()
	if flushErr != nil {
		return flushErr
	}
	return closeErr
}

// FormatSeconds renders a duration in seconds as the shortest exact decimal.
func FormatSeconds(seconds float64) string {
	return strconv.FormatFloat(seconds, 'f', -1, 64)
}
