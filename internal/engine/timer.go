package engine

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"
)

// Runner executes trainer commands and measures their wall-clock duration.
// Stdout and Stderr receive the child's streams; nil means the harness's own.
type Runner struct {
	Stdout io.Writer
	Stderr io.Writer
}

// Time runs argv to completion and returns the elapsed time from just
// before start until exit. A non-zero exit status is returned as an error
// wrapping *exec.ExitError.
func (r Runner) Time(argv []string) (time.Duration, error) {
	if len(argv) == 0 {
		return 0, errors.New("empty command")
	}

	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = r.Stdout
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	cmd.Stderr = r.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	start := time.Now()
	if err := cmd.Start(); err != nil {
		return 0, fmt.Errorf("failed to start %s: %w", argv[0], err)
	}
	err := cmd.Wait()
	elapsed := time.Since(start)
	if err != nil {
		return elapsed, fmt.Errorf("command failed [%s]: %w", strings.Join(argv, " "), err)
	}
	return elapsed, nil
}
