// Package decode orchestrates the preprocessing/decoding fallback
// cascade that recovers a GS1 payload from a degraded photograph.
package decode

import (
	"fmt"

	"github.com/rxscan/rxscan/internal/barcode"
	"github.com/rxscan/rxscan/internal/preprocess"
)

// Strategy is one (recipe, rotation, decode options) attempt in the
// cascade. A nil Recipe means the source image is handed to the
// backend untouched.
type Strategy struct {
	Name     string
	Recipe   *preprocess.Recipe
	Rotation int // clockwise degrees: 0, 90, 180 or 270
	Opts     barcode.Options
}

// Config carries the decode knobs exposed through configuration.
type Config struct {
	TryHarder  bool
	MaxSymbols int
}

// DefaultConfig returns the default decode configuration.
func DefaultConfig() Config {
	return Config{TryHarder: true, MaxSymbols: 4}
}

// DefaultStrategies returns the fixed cascade, cheapest first. The
// order is a correctness contract, not a tuning detail: only the first
// valid decode is ever reported, so reordering changes which text wins
// when a symbol is ambiguous.
//
//  1. standard recipe at rotation 0
//  2. enhanced recipe at rotation 0
//  3. standard recipe at rotations 90, 180, 270 (in that order)
//  4. the unprocessed original as a last resort
func DefaultStrategies(cfg Config) []Strategy {
	standard := preprocess.Standard()
	enhanced := preprocess.Enhanced()

	strategies := []Strategy{
		{Name: "standard", Recipe: &standard, Opts: barcode.Options{MaxSymbols: 1}},
		{Name: "enhanced", Recipe: &enhanced, Opts: barcode.Options{TryHarder: cfg.TryHarder, MaxSymbols: 1}},
	}
	for _, angle := range []int{90, 180, 270} {
		rotated := preprocess.Standard()
		strategies = append(strategies, Strategy{
			Name:     fmt.Sprintf("standard-rot%d", angle),
			Recipe:   &rotated,
			Rotation: angle,
			Opts:     barcode.Options{MaxSymbols: cfg.MaxSymbols},
		})
	}
	strategies = append(strategies, Strategy{
		Name: "raw",
		Opts: barcode.Options{TryHarder: cfg.TryHarder, MaxSymbols: cfg.MaxSymbols},
	})
	return strategies
}

// State tracks pipeline progress through the cascade.
type State int

const (
	// StatePending means no strategy has been accepted yet.
	StatePending State = iota
	// StateSucceeded means a strategy produced a valid decode.
	StateSucceeded
	// StateExhausted means every strategy ran without a valid decode.
	StateExhausted
)

func (s State) String() string {
	switch s {
	case StateSucceeded:
		return "succeeded"
	case StateExhausted:
		return "exhausted"
	default:
		return "pending"
	}
}

// Outcome is the tagged result of running the cascade.
type Outcome struct {
	State    State
	Payload  string // set when State == StateSucceeded
	Strategy string // name of the accepted strategy
	Attempts int    // strategies evaluated, including the accepted one
}
