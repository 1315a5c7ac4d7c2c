/*
PURPOSE:
  High-level runner that orchestrates the thread-count sweep.
  Loops through thread counts -> repeats and times each trainer run.

REQUIREMENTS:
  User-specified:
  - Sweep an inclusive [min, max] thread range, repeating each count.
  - Log every command before it runs.
  - Flush every measurement to the table immediately.

  Implementation-discovered:
  - Strictly sequential: concurrent trials would compete for the CPUs being measured.
  - Any failed trainer run aborts the sweep. Flushed rows are kept.

ARCHITECTURE INTEGRATION:
  - Called by: internal/cli
  - Uses: internal/config, internal/output

ERROR HANDLING:
  - Fails fast. No retries; the operator re-runs the sweep.

IMPLEMENTATION RULES:
  - Build the command once per thread count.
  - Write each trial before starting the next one.

USAGE:
  engine.Sweep(cfg)

SELF-HEALING INSTRUCTIONS:
  - If runs hang, start with --gops and inspect with `gops stack <pid>`.

RELATED FILES:
  - internal/engine/command.go
  - internal/engine/timer.go

MAINTENANCE:
  - Keep iteration sequential.
*/

package engine

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/gops/agent"
	"github.com/tebeka/atexit"

	"github.com/daryltucker/w2v-bench/internal/config"
	"github.com/daryltucker/w2v-bench/internal/model"
	"github.com/daryltucker/w2v-bench/internal/output"
)

// Timer runs a command and reports how long it took.
type Timer interface {
	Time(argv []string) (time.Duration, error)
}

// TrialWriter persists a finished trial.
type TrialWriter interface {
	Write(t model.Trial) error
}

// Plan is a validated sweep.
type Plan struct {
	Variant    model.Variant
	BinaryPath string
	Params     model.Params
	MinThreads int
	MaxThreads int
	Repeat     int
}

// NewPlan derives a sweep plan from a validated configuration.
func NewPlan(cfg *config.Config) (Plan, error) {
	if err := cfg.Validate(); err != nil {
		return Plan{}, err
	}
	v, err := model.ParseVariant(cfg.Sweep.Type)
	if err != nil {
		return Plan{}, err
	}
	return Plan{
		Variant:    v,
		BinaryPath: cfg.Sweep.BinaryPath,
		Params:     cfg.Params,
		MinThreads: cfg.Sweep.MinThreads,
		MaxThreads: cfg.Sweep.MaxThreads,
		Repeat:     cfg.Sweep.Repeat,
	}, nil
}

// Sweep executes the full benchmark sweep described by cfg.
func Sweep(cfg *config.Config) error {
	plan, err := NewPlan(cfg)
	if err != nil {
		return err
	}

	if cfg.Sweep.Gops {
		if err := agent.Listen(agent.Options{}); err != nil {
			return fmt.Errorf("failed to start gops agent: %w", err)
		}
		defer agent.Close()
	}

	tableWriter, err := output.NewTableWriter(cfg.Sweep.Table)
	if err != nil {
		return fmt.Errorf("failed to init table writer at %s: %w", cfg.Sweep.Table, err)
	}
	defer tableWriter.Close()

	atexit.Register(func() {
		output.Logger.Info("Sweep summary", "table", cfg.Sweep.Table, "trials_written", tableWriter.Trials())
	})

	writers := []TrialWriter{tableWriter}
	if cfg.Sweep.JSONLog != "" {
		jsonWriter, err := output.NewJSONWriter(cfg.Sweep.JSONLog)
		if err != nil {
			return fmt.Errorf("failed to init JSON writer at %s: %w", cfg.Sweep.JSONLog, err)
		}
		defer jsonWriter.Close()
		writers = append(writers, jsonWriter)
	}

	if err := Run(plan, Runner{}, writers...); err != nil {
		return err
	}
	return tableWriter.Close()
}

// Run executes plan with t, handing every finished trial to each writer in order.
func Run(plan Plan, t Timer, writers ...TrialWriter) error {
	for threads := plan.MinThreads; threads <= plan.MaxThreads; threads++ {
		argv := BuildCommand(plan.Variant, plan.BinaryPath, plan.Params, threads)

		for i := 0; i < plan.Repeat; i++ {
			output.Logger.Info("Running trainer",
				"threads", threads,
				"trial", fmt.Sprintf("%d/%d", i+1, plan.Repeat),
				"cmd", strings.Join(argv, " "),
			)

			startedAt := time.Now()
			elapsed, err := t.Time(argv)
			if err != nil {
				return fmt.Errorf("trial %d at %d threads: %w", i+1, threads, err)
			}

			trial := model.Trial{
				Threads:   threads,
				Index:     i,
				Argv:      argv,
				Timestamp: startedAt,
				Elapsed:   elapsed,
			}
			for _, w := range writers {
				if err := w.Write(trial); err != nil {
					return fmt.Errorf("failed to record trial %d at %d threads: %w", i+1, threads, err)
				}
			}

			output.Logger.Info("Trial finished", "threads", threads, "elapsed_s", output.FormatSeconds(elapsed.Seconds()))
		}
	}
	return nil
}
