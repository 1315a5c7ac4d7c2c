// Package table reads result tables written by the sweep command.
//
// Each line is "<threads>\t<seconds>[\t<seconds>...]". Loading reduces every
// row to the minimum of its trials.
package table

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/daryltucker/w2v-bench/internal/model"
)

// Load reads the result table at path.
func Load(path string) (model.Series, error) {
	f, err := os.Open(path)
	if err != nil {
		return model.Series{}, err
	}
	defer f.Close()

	s, err := Parse(f)
	if err != nil {
		return model.Series{}, fmt.Errorf("failed to load table %s: %w", path, err)
	}
	return s, nil
}

// Parse reads a result table from r. Any malformed line fails the whole parse.
func Parse(r io.Reader) (model.Series, error) {
	var s model.Series

	scanner := bufio.NewScanner(r)
	// A row grows by one field per trial, so there is no upper bound on line length.
	scanner.Buffer(make([]byte, 0, 64*1024), math.MaxInt)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		threads, best, err := parseRow(strings.TrimSuffix(scanner.Text(), "\r"))
		if err != nil {
			return model.Series{}, fmt.Errorf("line %d: %w", lineNo, err)
		}
		s.Threads = append(s.Threads, threads)
		s.Times = append(s.Times, best)
	}
	if err := scanner.Err(); err != nil {
		return model.Series{}, err
	}
	return s, nil
}

func parseRow(line string) (int, float64, error) {
	cols := strings.Split(line, "\t")

	threads, err := strconv.Atoi(cols[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid thread count %q: %w", cols[0], err)
	}
	if len(cols) < 2 {
		return 0, 0, fmt.Errorf("no trial times for thread count %d", threads)
	}

	var best float64
	for i, col := range cols[1:] {
		v, err := strconv.ParseFloat(col, 64)
		if err != nil {
			return 0, 0, fmt.Errorf("invalid trial time %q: %w", col, err)
		}
		if i == 0 || v < best {
			best = v
		}
	}
	return threads, best, nil
}
