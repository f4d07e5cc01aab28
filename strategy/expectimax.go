package strategy

import (
	"math"

	"github.com/twenty48-ai/solver/board"
	"github.com/twenty48-ai/solver/engine"
	"github.com/twenty48-ai/solver/heuristics"
)

// ExpectimaxDepth searches an alternating max/chance tree to a fixed
// number of player plies. A max node takes the best direction by
// expected value; a chance node averages over every empty cell and both
// spawn outcomes, each weighted by its probability divided by the
// number of empty cells. At depth 0 the heuristic evaluates the board
// directly.
type ExpectimaxDepth struct {
	eng   *engine.Engine
	depth int
	eval  heuristics.Heuristic
}

// NewExpectimaxDepth returns a fixed-depth expectimax strategy.
func NewExpectimaxDepth(depth int, eval heuristics.Heuristic) *ExpectimaxDepth {
	return &ExpectimaxDepth{eng: engine.New(), depth: depth, eval: eval}
}

func (s *ExpectimaxDepth) PickMove(b board.Board) int {
	best := 0
	bestValue := math.Inf(-1)
	for dir := 0; dir < engine.NumDirections; dir++ {
		nb := s.eng.MakeMove(b, dir)
		if nb == b {
			continue
		}
		if v := s.chanceValue(nb, s.depth-1); v > bestValue {
			bestValue = v
			best = dir
		}
	}
	return best
}

func (s *ExpectimaxDepth) chanceValue(b board.Board, depth int) float64 {
	if depth <= 0 {
		return s.eval(b)
	}
	empties := s.eng.EmptyCells(b)
	if len(empties) == 0 {
		return s.eval(b)
	}
	total := 0.0
	for _, pos := range empties {
		total += (1 - engine.FourTileProb) * s.maxValue(b.PlaceTile(int(pos), 1), depth)
		total += engine.FourTileProb * s.maxValue(b.PlaceTile(int(pos), 2), depth)
	}
	return total / float64(len(empties))
}

func (s *ExpectimaxDepth) maxValue(b board.Board, depth int) float64 {
	best := math.Inf(-1)
	moved := false
	for dir := 0; dir < engine.NumDirections; dir++ {
		nb := s.eng.MakeMove(b, dir)
		if nb == b {
			continue
		}
		moved = true
		if v := s.chanceValue(nb, depth-1); v > best {
			best = v
		}
	}
	if !moved {
		// Dead position: no move to maximize over.
		return s.eval(b)
	}
	return best
}

// ExpectimaxProbability searches the same tree shape as ExpectimaxDepth
// but expands a path only while the cumulative product of spawn
// probabilities along it stays above the cutoff, so likely lines are
// searched deeper than unlikely ones.
type ExpectimaxProbability struct {
	eng    *engine.Engine
	cutoff float64
	eval   heuristics.Heuristic
}

// NewExpectimaxProbability returns a probability-cutoff expectimax
// strategy.
func NewExpectimaxProbability(cutoff float64, eval heuristics.Heuristic) *ExpectimaxProbability {
	return &ExpectimaxProbability{eng: engine.New(), cutoff: cutoff, eval: eval}
}

func (s *ExpectimaxProbability) PickMove(b board.Board) int {
	best := 0
	bestValue := math.Inf(-1)
	for dir := 0; dir < engine.NumDirections; dir++ {
		nb := s.eng.MakeMove(b, dir)
		if nb == b {
			continue
		}
		if v := s.chanceValue(nb, 1.0); v > bestValue {
			bestValue = v
			best = dir
		}
	}
	return best
}

func (s *ExpectimaxProbability) chanceValue(b board.Board, cumProb float64) float64 {
	empties := s.eng.EmptyCells(b)
	if len(empties) == 0 {
		return s.eval(b)
	}
	fraction := 1 / float64(len(empties))
	twoProb := cumProb * (1 - engine.FourTileProb) * fraction
	fourProb := cumProb * engine.FourTileProb * fraction
	total := 0.0
	for _, pos := range empties {
		total += (1 - engine.FourTileProb) * s.maxValue(b.PlaceTile(int(pos), 1), twoProb)
		total += engine.FourTileProb * s.maxValue(b.PlaceTile(int(pos), 2), fourProb)
	}
	return total / float64(len(empties))
}

func (s *ExpectimaxProbability) maxValue(b board.Board, cumProb float64) float64 {
	if cumProb <= s.cutoff {
		return s.eval(b)
	}
	best := math.Inf(-1)
	moved := false
	for dir := 0; dir < engine.NumDirections; dir++ {
		nb := s.eng.MakeMove(b, dir)
		if nb == b {
			continue
		}
		moved = true
		if v := s.chanceValue(nb, cumProb); v > best {
			best = v
		}
	}
	if !moved {
		return s.eval(b)
	}
	return best
}
