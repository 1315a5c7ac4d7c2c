/*
PURPOSE:
  Defines the core data structures used throughout w2v-bench.
  These models represent trainer parameters, trial measurements and loaded series.

REQUIREMENTS:
  User-specified:
  - One logical parameter set drives both trainers.
  - Record elapsed time per trial, per thread count.

  Implementation-discovered:
  - Trainers take every option as a string; keep them as strings.
  - Empty string means "not configured".

ARCHITECTURE INTEGRATION:
  - Used by: internal/config, internal/engine, internal/output, internal/table, internal/plot
  - Shared across boundaries.

ERROR HANDLING:
  - ParseVariant returns an error for unknown trainer names.

IMPLEMENTATION RULES:
  - Keep structs simple and public.
  - Use time.Time and time.Duration for high precision.

USAGE:
  v, err := model.ParseVariant("yzw2v")

SELF-HEALING INSTRUCTIONS:
  - If a new trainer option is needed, add a Params field and update both builders in internal/engine/command.go.

RELATED FILES:
  - internal/engine/command.go
  - internal/output/table.go

MAINTENANCE:
  - Update when the trainers grow new options.
*/

package model

import (
	"fmt"
	"time"
)

// Variant selects one of the two supported trainer binaries.
type Variant string

const (
	Word2Vec Variant = "word2vec"
	YzW2V    Variant = "yzw2v"
)

// Variants lists every supported trainer in a stable order.
var Variants = []Variant{Word2Vec, YzW2V}

// ParseVariant maps a trainer name to a Variant.
func ParseVariant(s string) (Variant, error) {
	for _, v := range Variants {
		if string(v) == s {
			return v, nil
		}
	}
	return "", fmt.Errorf("unsupported trainer type %q (want one of %v)", s, Variants)
}

// Params is the logical training configuration shared by both trainers.
type Params struct {
	Size      string `yaml:"size" json:"size,omitempty"`
	Train     string `yaml:"train" json:"train,omitempty"`
	SaveVocab string `yaml:"save_vocab" json:"save_vocab,omitempty"`
	ReadVocab string `yaml:"read_vocab" json:"read_vocab,omitempty"`
	Binary    string `yaml:"binary" json:"binary,omitempty"`
	Alpha     string `yaml:"alpha" json:"alpha,omitempty"`
	Output    string `yaml:"output" json:"output,omitempty"`
	Window    string `yaml:"window" json:"window,omitempty"`
	Sample    string `yaml:"sample" json:"sample,omitempty"`
	HS        string `yaml:"hs" json:"hs,omitempty"`
	Negative  string `yaml:"negative" json:"negative,omitempty"`
	Iter      string `yaml:"iter" json:"iter,omitempty"`
	MinCount  string `yaml:"min_count" json:"min_count,omitempty"`
}

// Trial is the outcome of a single timed trainer invocation.
type Trial struct {
	Threads   int           `json:"threads"`
	Index     int           `json:"trial"` // 0-based within its thread count
	Argv      []string      `json:"argv"`
	Timestamp time.Time     `json:"timestamp"`
	Elapsed   time.Duration `json:"-"`
	Seconds   float64       `json:"elapsed_s"`
}

// Series is a loaded result table: one reduced time per thread count, in file order.
type Series struct {
	Threads []int
	Times   []float64
}

// Len returns the number of rows in the series.
func (s Series) Len() int {
	return len(s.Threads)
}
