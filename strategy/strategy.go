// Package strategy implements the move-selection algorithms that drive
// the engine: expectimax to a fixed depth or a probability cutoff,
// monte-carlo and bounded random rollouts, and a uniform random
// baseline. All variants satisfy one contract: pick a direction for a
// board. Strategy instances are not safe for concurrent use.
package strategy

import (
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/twenty48-ai/solver/board"
	"github.com/twenty48-ai/solver/engine"
	"github.com/twenty48-ai/solver/heuristics"
)

// Strategy picks a direction in [0,3] for a board. When at least one
// direction is valid the returned direction should be one of them, but
// callers are expected to validate the result before applying it.
type Strategy interface {
	PickMove(b board.Board) int
}

// Defaults applied when a configuration field is nonpositive, matching
// the documented boundary behavior.
const (
	DefaultDepth       = 4
	DefaultCutoff      = 0.001
	DefaultProbability = 0.0025
	DefaultTrials      = 256
	DefaultBranchDepth = 3
	DefaultGamesPer    = 32
)

// Config is an immutable description of a strategy. Changing any field
// means building a new strategy instance from the updated value; there
// is no partial update.
type Config struct {
	Type        string
	Heuristic   string
	Depth       int
	Probability float64
	Trials      int
}

// New builds a strategy from a configuration. Type names are matched
// case-insensitively; unrecognized names fall back to fixed-depth
// expectimax, and unrecognized heuristic names resolve to corner bias.
func New(cfg Config) Strategy {
	eval := heuristics.Resolve(cfg.Heuristic)
	switch strings.ToLower(cfg.Type) {
	case "expectimax-depth", "expectimax":
		return NewExpectimaxDepth(effectiveDepth(cfg.Depth), eval)
	case "expectimax-probability":
		cutoff := cfg.Probability
		if !(cutoff > 0) {
			cutoff = DefaultCutoff
		}
		return NewExpectimaxProbability(cutoff, eval)
	case "monte-carlo":
		iterations := cfg.Trials
		if iterations <= 0 {
			iterations = 128
			if cfg.Depth*128 > iterations {
				iterations = cfg.Depth * 128
			}
		}
		return NewMonteCarlo(iterations)
	case "random-trials":
		branchDepth := cfg.Depth
		if branchDepth <= 0 {
			branchDepth = DefaultBranchDepth
		}
		gamesPerMove := cfg.Trials
		if gamesPerMove <= 0 {
			gamesPerMove = DefaultGamesPer
		}
		return NewRandomTrials(gamesPerMove, branchDepth)
	case "random":
		return NewRandom()
	}
	log.Debug().Str("type", cfg.Type).Msg("unknown strategy type, using expectimax-depth")
	return NewExpectimaxDepth(effectiveDepth(cfg.Depth), eval)
}

func effectiveDepth(depth int) int {
	if depth <= 0 {
		return DefaultDepth
	}
	return depth
}

// TypeNames lists every accepted strategy type, canonical form first.
func TypeNames() []string {
	return []string{
		"expectimax-depth", "expectimax-probability", "monte-carlo",
		"random-trials", "random",
	}
}

// Wrapper owns a configuration and the strategy built from it. Every
// reconfiguration discards the previous strategy instance and builds a
// fresh one; nothing is applied partially. Not safe for concurrent use.
type Wrapper struct {
	cfg      Config
	eval     heuristics.Heuristic
	strategy Strategy
}

// NewWrapper builds a wrapper around the named strategy and heuristic,
// with the default trial count.
func NewWrapper(typ, heuristic string, depth int, probability float64) *Wrapper {
	w := &Wrapper{cfg: Config{Trials: DefaultTrials}}
	w.Configure(typ, heuristic, depth, probability)
	return w
}

// Configure replaces the strategy type, heuristic, depth, and
// probability cutoff, then rebuilds the strategy. The trial count is
// preserved.
func (w *Wrapper) Configure(typ, heuristic string, depth int, probability float64) {
	w.cfg.Type = strings.ToLower(typ)
	w.cfg.Heuristic = strings.ToLower(heuristic)
	w.cfg.Depth = depth
	w.cfg.Probability = probability
	w.rebuild()
}

// SetTrials rebuilds the strategy with a new trial count, preserving
// the rest of the configuration.
func (w *Wrapper) SetTrials(trials int) {
	w.cfg.Trials = trials
	w.rebuild()
}

func (w *Wrapper) rebuild() {
	w.eval = heuristics.Resolve(w.cfg.Heuristic)
	w.strategy = New(w.cfg)
	log.Debug().
		Str("type", w.cfg.Type).
		Str("heuristic", w.cfg.Heuristic).
		Int("depth", w.cfg.Depth).
		Float64("probability", w.cfg.Probability).
		Int("trials", w.cfg.Trials).
		Msg("strategy rebuilt")
}

// PickMove delegates to the current strategy instance.
func (w *Wrapper) PickMove(b board.Board) int {
	return w.strategy.PickMove(b)
}

// EvaluateBoard applies the configured heuristic directly, independent
// of any search.
func (w *Wrapper) EvaluateBoard(b board.Board) float64 {
	return w.eval(b)
}

// Config returns the current configuration.
func (w *Wrapper) Config() Config {
	return w.cfg
}

// validMoves writes the valid directions for b into dst and returns the
// count. Shared by the rollout strategies.
func validMoves(e *engine.Engine, b board.Board, dst *[engine.NumDirections]int) int {
	n := 0
	for dir := 0; dir < engine.NumDirections; dir++ {
		if e.MakeMove(b, dir) != b {
			dst[n] = dir
			n++
		}
	}
	return n
}
