package engine

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/tebeka/atexit"

	"github.com/daryltucker/w2v-bench/internal/config"
	"github.com/daryltucker/w2v-bench/internal/model"
	"github.com/daryltucker/w2v-bench/internal/output"
)

// The test binary doubles as a fake trainer: when stubEnv is set it exits
// immediately instead of running tests. When harnessEnv is set it runs a whole
// sweep against itself and leaves through atexit, like cmd/w2v-bench does.
const (
	stubEnv          = "W2V_BENCH_STUB"
	stubCounterEnv   = "W2V_BENCH_STUB_COUNTER"
	stubFailAfterEnv = "W2V_BENCH_STUB_FAIL_AFTER"
	stubEchoEnv      = "W2V_BENCH_STUB_ECHO"

	harnessEnv     = "W2V_BENCH_HARNESS_TABLE"
	harnessGopsEnv = "W2V_BENCH_HARNESS_GOPS"
)

func TestMain(m *testing.M) {
	if table := os.Getenv(harnessEnv); table != "" {
		runHarness(table)
	}
	if os.Getenv(stubEnv) != "" {
		os.Exit(runStub())
	}
	output.SetLogger(output.NewTextLogger(io.Discard))
	os.Exit(m.Run())
}

// runStub succeeds until it has been invoked W2V_BENCH_STUB_FAIL_AFTER times,
// then exits 1. Invocations are counted by appending a byte to the counter file.
func runStub() int {
	if os.Getenv(stubEchoEnv) != "" {
		fmt.Fprintf(os.Stdout, "trainer args: %s\n", strings.Join(os.Args[1:], " "))
		fmt.Fprintln(os.Stderr, "trainer done")
	}

	failAfter := -1
	if s := os.Getenv(stubFailAfterEnv); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return 2
		}
		failAfter = n
	}

	calls := 0
	if path := os.Getenv(stubCounterEnv); path != "" {
		data, _ := os.ReadFile(path)
		calls = len(data)
		if err := os.WriteFile(path, append(data, 'x'), 0644); err != nil {
			return 2
		}
	}

	if failAfter >= 0 && calls >= failAfter {
		return 1
	}
	return 0
}

// runHarness sweeps threads 1..2 once each with this binary as the trainer.
// It never returns.
func runHarness(table string) {
	os.Unsetenv(harnessEnv)
	os.Setenv(stubEnv, "1")

	exe, err := os.Executable()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		atexit.Exit(2)
	}

	cfg := config.DefaultConfig()
	cfg.Params.Train = "text8"
	cfg.Sweep.BinaryPath = exe
	cfg.Sweep.Type = string(model.YzW2V)
	cfg.Sweep.MinThreads = 1
	cfg.Sweep.MaxThreads = 2
	cfg.Sweep.Repeat = 1
	cfg.Sweep.Table = table
	cfg.Sweep.Gops = os.Getenv(harnessGopsEnv) != ""

	if err := Sweep(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		atexit.Exit(1)
	}
	atexit.Exit(0)
}

// stubTrainer configures the current test so that the returned binary acts as
// a trainer failing after failAfter calls (-1 never fails).
func stubTrainer(t *testing.T, failAfter int) (binary, counter string) {
	t.Helper()

	exe, err := os.Executable()
	if err != nil {
		t.Fatalf("os.Executable: %v", err)
	}
	counter = t.TempDir() + "/calls"

	t.Setenv(stubEnv, "1")
	t.Setenv(stubCounterEnv, counter)
	if failAfter >= 0 {
		t.Setenv(stubFailAfterEnv, strconv.Itoa(failAfter))
	}
	return exe, counter
}
