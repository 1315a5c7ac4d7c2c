/*
PURPOSE:
  Defines the 'sweep' subcommand.
  Times one trainer across a range of thread counts and writes the result table.

REQUIREMENTS:
  User-specified:
  - Trainer flags mirror the trainers' own options.
  - --min-thread-count/--max-thread-count, --binary-path, --type, --repeat, --table.

  Implementation-discovered:
  - Need to load config first.
  - Only flags the user actually set override the config file.

ARCHITECTURE INTEGRATION:
  - Calls: internal/engine.Sweep()
  - Uses: internal/config

ERROR HANDLING:
  - Returns error if config load, validation or any trainer run fails.

IMPLEMENTATION RULES:
  - Setup flags in newSweepCmd().
  - Logic: Load Config -> Override -> Engine.Sweep.

USAGE:
  w2v-bench sweep --train text8 --type yzw2v --binary-path ./yzw2v ...

SELF-HEALING INSTRUCTIONS:
  - Check flag names match the trainer option names.

RELATED FILES:
  - internal/cli/root.go

MAINTENANCE:
  - Update when adding new CLI overrides.
*/

package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/daryltucker/w2v-bench/internal/config"
	"github.com/daryltucker/w2v-bench/internal/engine"
)

type sweepFlags struct {
	// trainer options
	size, train, saveVocab, readVocab string
	binary, alpha, output, window     string
	sample, hs, negative, iter        string
	minCount                          string

	minThreads, maxThreads, repeat int
	binaryPath, binaryType, table  string
	jsonLog                        string
	gops                           bool
}

func newSweepCmd() *cobra.Command {
	f := &sweepFlags{}

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Time a trainer across a range of thread counts",
		Long: `Runs the trainer once per trial for every thread count in
[--min-thread-count, --max-thread-count], --repeat times each, strictly one
after another. Each elapsed time is appended to the --table file and flushed
immediately, so a failed or interrupted sweep keeps every completed trial.

Any trainer exiting non-zero aborts the sweep.`,
		Example: `  # Time yzw2v on 1..8 threads, best of 3
  w2v-bench sweep --type yzw2v --binary-path ./yzw2v --train text8 \
    --output vectors.bin --min-thread-count 1 --max-thread-count 8 \
    --repeat 3 --table yzw2v.tsv

  # Same sweep for the reference word2vec, with a per-trial JSON log
  w2v-bench sweep --type word2vec --binary-path ./word2vec --train text8 \
    --min-thread-count 1 --max-thread-count 8 --repeat 3 \
    --table word2vec.tsv --json word2vec.jsonl`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Flag("config").Value.String())
			if err != nil {
				return err
			}

			f.apply(cmd.Flags(), cfg)

			return engine.Sweep(cfg)
		},
	}

	fs := cmd.Flags()

	fs.StringVar(&f.size, "size", "", "word vector size (default 100)")
	fs.StringVar(&f.train, "train", "", "training corpus file")
	fs.StringVar(&f.saveVocab, "save-vocab", "", "save vocabulary to FILE")
	fs.StringVar(&f.readVocab, "read-vocab", "", "read vocabulary from FILE")
	fs.StringVar(&f.binary, "binary", "", "save vectors in binary mode (default 1)")
	fs.StringVar(&f.alpha, "alpha", "", "starting learning rate (default 0.05)")
	fs.StringVar(&f.output, "output", "", "trainer output FILE for word vectors")
	fs.StringVar(&f.window, "window", "", "max skip length between words (default 5)")
	fs.StringVar(&f.sample, "sample", "", "word subsampling threshold (default 0.005)")
	fs.StringVar(&f.hs, "hs", "", "use hierarchical softmax (default 0)")
	fs.StringVar(&f.negative, "negative", "", "number of negative examples (default 5)")
	fs.StringVar(&f.iter, "iter", "", "training iterations (default 5)")
	fs.StringVar(&f.minCount, "min-count", "", "discard words appearing fewer times (default 5)")

	fs.IntVar(&f.minThreads, "min-thread-count", 0, "first thread count of the sweep (inclusive)")
	fs.IntVar(&f.maxThreads, "max-thread-count", 0, "last thread count of the sweep (inclusive)")
	fs.StringVar(&f.binaryPath, "binary-path", "", "trainer executable")
	fs.StringVar(&f.binaryType, "type", "", "trainer type: word2vec or yzw2v")
	fs.IntVar(&f.repeat, "repeat", 1, "trials per thread count")
	fs.StringVar(&f.table, "table", "", "result table to write")
	fs.StringVar(&f.jsonLog, "json", "", "optional NDJSON file with one record per trial")
	fs.BoolVar(&f.gops, "gops", false, "start a gops agent for live diagnostics")

	return cmd
}

// apply copies every flag the user set onto cfg.
func (f *sweepFlags) apply(fs *pflag.FlagSet, cfg *config.Config) {
	str := func(name string, dst *string, v string) {
		if fs.Changed(name) {
			*dst = v
		}
	}
	num := func(name string, dst *int, v int) {
		if fs.Changed(name) {
			*dst = v
		}
	}

	p := &cfg.Params
	str("size", &p.Size, f.size)
	str("train", &p.Train, f.train)
	str("save-vocab", &p.SaveVocab, f.saveVocab)
	str("read-vocab", &p.ReadVocab, f.readVocab)
	str("binary", &p.Binary, f.binary)
	str("alpha", &p.Alpha, f.alpha)
	str("output", &p.Output, f.output)
	str("window", &p.Window, f.window)
	str("sample", &p.Sample, f.sample)
	str("hs", &p.HS, f.hs)
	str("negative", &p.Negative, f.negative)
	str("iter", &p.Iter, f.iter)
	str("min-count", &p.MinCount, f.minCount)

	s := &cfg.Sweep
	num("min-thread-count", &s.MinThreads, f.minThreads)
	num("max-thread-count", &s.MaxThreads, f.maxThreads)
	num("repeat", &s.Repeat, f.repeat)
	str("binary-path", &s.BinaryPath, f.binaryPath)
	str("type", &s.Type, f.binaryType)
	str("table", &s.Table, f.table)
	str("json", &s.JSONLog, f.jsonLog)
	if fs.Changed("gops") {
		s.Gops = f.gops
	}
}
