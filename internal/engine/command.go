/*
PURPOSE:
  Builds trainer command lines from one logical parameter set.

REQUIREMENTS:
  User-specified:
  - Support both word2vec (single-dash flags) and yzw2v (double-dash flags).
  - Thread count flag comes first, then options in a fixed order.

  Implementation-discovered:
  - The trainers disagree on the hierarchical-softmax flag:
    yzw2v takes a bare --hs and only when hs is not the default "0",
    word2vec takes -hs <value> whenever a value is set.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine/sweep.go
  - Uses: internal/model

ERROR HANDLING:
  - Unknown variant panics. Variants are validated by config.Validate first.

IMPLEMENTATION RULES:
  - Keep one function per trainer so each flag policy stays readable.
  - Empty values never produce a flag.

USAGE:
  argv := engine.BuildCommand(model.YzW2V, "/usr/local/bin/yzw2v", params, 4)

SELF-HEALING INSTRUCTIONS:
  - If a trainer rejects a flag, compare against its --help output.

RELATED FILES:
  - internal/model/types.go

MAINTENANCE:
  - Update both builders together when adding options.
*/

package engine

import (
	"fmt"
	"strconv"

	"github.com/daryltucker/w2v-bench/internal/model"
)

// yzw2vDefaultHS is the value for which yzw2v's --hs switch is left out.
const yzw2vDefaultHS = "0"

// BuildCommand returns the argv for one trainer run at the given thread count.
func BuildCommand(v model.Variant, binaryPath string, p model.Params, threads int) []string {
	switch v {
	case model.YzW2V:
		return yzw2vCommand(binaryPath, p, threads)
	case model.Word2Vec:
		return word2vecCommand(binaryPath, p, threads)
	default:
		panic(fmt.Sprintf("engine: unsupported trainer variant %q", v))
	}
}

func yzw2vCommand(binaryPath string, p model.Params, threads int) []string {
	cmd := []string{binaryPath, "--threads", strconv.Itoa(threads)}
	cmd = withValue(cmd, "--size", p.Size)
	cmd = withValue(cmd, "--train", p.Train)
	cmd = withValue(cmd, "--save-vocab", p.SaveVocab)
	cmd = withValue(cmd, "--read-vocab", p.ReadVocab)
	cmd = withValue(cmd, "--binary", p.Binary)
	cmd = withValue(cmd, "--alpha", p.Alpha)
	cmd = withValue(cmd, "--output", p.Output)
	cmd = withValue(cmd, "--window", p.Window)
	cmd = withValue(cmd, "--sample", p.Sample)
	if p.HS != "" && p.HS != yzw2vDefaultHS {
		cmd = append(cmd, "--hs")
	}
	cmd = withValue(cmd, "--negative", p.Negative)
	cmd = withValue(cmd, "--iter", p.Iter)
	cmd = withValue(cmd, "--min-count", p.MinCount)
	return cmd
}

func word2vecCommand(binaryPath string, p model.Params, threads int) []string {
	cmd := []string{binaryPath, "-threads", strconv.Itoa(threads)}
	cmd = withValue(cmd, "-size", p.Size)
	cmd = withValue(cmd, "-train", p.Train)
	cmd = withValue(cmd, "-save-vocab", p.SaveVocab)
	cmd = withValue(cmd, "-read-vocab", p.ReadVocab)
	cmd = withValue(cmd, "-binary", p.Binary)
	cmd = withValue(cmd, "-alpha", p.Alpha)
	cmd = withValue(cmd, "-output", p.Output)
	cmd = withValue(cmd, "-window", p.Window)
	cmd = withValue(cmd, "-sample", p.Sample)
	cmd = withValue(cmd, "-hs", p.HS)
	cmd = withValue(cmd, "-negative", p.Negative)
	cmd = withValue(cmd, "-iter", p.Iter)
	cmd = withValue(cmd, "-min-count", p.MinCount)
	return cmd
}

// withValue appends "flag value" unless value is empty.
func withValue(cmd []string, flag, value string) []string {
	if value == "" {
		return cmd
	}
	return append(cmd, flag, value)
}
