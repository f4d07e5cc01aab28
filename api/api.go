// Package api is the total-function boundary of the solver. Nothing in
// this package returns an error or panics on bad input: out-of-range
// tile values are clamped, out-of-range directions report no effect,
// and unrecognized configuration names resolve to documented defaults.
// Hosts that cannot propagate errors across the boundary call these
// operations directly.
package api

import (
	"github.com/twenty48-ai/solver/board"
	"github.com/twenty48-ai/solver/engine"
	"github.com/twenty48-ai/solver/heuristics"
	"github.com/twenty48-ai/solver/strategy"
)

var eng = engine.New()

// BoardFromArray packs up to 16 tile exponents into a board, clamping
// each into [0,15] and zero-filling missing cells.
func BoardFromArray(cells []int) board.Board {
	return board.FromCells(cells)
}

// ArrayFromBoard unpacks a board into exactly 16 exponents in fixed
// row-major order.
func ArrayFromBoard(b board.Board) []int {
	return b.Cells()
}

// GetScore returns the score-heuristic value of the board as an
// integer.
func GetScore(b board.Board) int {
	return eng.Score(b)
}

// GetMaxTile returns the tile value (a power of two) of the largest
// exponent present, or 0 for an empty board.
func GetMaxTile(b board.Board) int {
	e := b.MaxExponent()
	if e <= 0 {
		return 0
	}
	return 1 << e
}

// IsGameOver reports whether no direction changes the board.
func IsGameOver(b board.Board) bool {
	return eng.IsGameOver(b)
}

// IsValidMove reports whether the direction is in [0,3] and would
// change the board.
func IsValidMove(b board.Board, dir int) bool {
	return eng.IsValidMove(b, dir)
}

// MakeMove applies a move, returning the board unchanged for an
// invalid direction.
func MakeMove(b board.Board, dir int) board.Board {
	return eng.MakeMove(b, dir)
}

// EvaluateHeuristic applies the named heuristic (corner bias for
// unrecognized names) to a board.
func EvaluateHeuristic(name string, b board.Board) float64 {
	return heuristics.Resolve(name)(b)
}

// Solver binds a configured strategy to the boundary. It mirrors the
// strategy wrapper one-to-one and is not safe for concurrent use.
type Solver struct {
	w *strategy.Wrapper
}

// NewSolver builds a solver from strategy and heuristic names.
// Unrecognized names fall back to fixed-depth expectimax and the corner
// heuristic.
func NewSolver(typ, heuristic string, depth int, probability float64) *Solver {
	return &Solver{w: strategy.NewWrapper(typ, heuristic, depth, probability)}
}

// NewDefaultSolver builds a solver with the documented defaults:
// fixed-depth expectimax over the corner heuristic.
func NewDefaultSolver() *Solver {
	return NewSolver("expectimax-depth", "corner", strategy.DefaultDepth, strategy.DefaultProbability)
}

// Configure rebuilds the underlying strategy from the new settings.
func (s *Solver) Configure(typ, heuristic string, depth int, probability float64) {
	s.w.Configure(typ, heuristic, depth, probability)
}

// SetTrials rebuilds the strategy using the new trial count, preserving
// the rest of the configuration.
func (s *Solver) SetTrials(trials int) {
	s.w.SetTrials(trials)
}

// PickMove returns a direction in [0,3] chosen by the configured
// strategy. Callers should validate it before applying.
func (s *Solver) PickMove(b board.Board) int {
	return s.w.PickMove(b)
}

// EvaluateBoard returns the raw configured heuristic value for the
// board, independent of any search.
func (s *Solver) EvaluateBoard(b board.Board) float64 {
	return s.w.EvaluateBoard(b)
}

// Config returns the solver's current strategy configuration.
func (s *Solver) Config() strategy.Config {
	return s.w.Config()
}
