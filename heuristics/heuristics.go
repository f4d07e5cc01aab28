// Package heuristics provides the board evaluators used by the search
// strategies. Every heuristic is a pure, deterministic, total function
// of the board; larger values are better. Scores from different
// heuristics are not comparable with each other.
package heuristics

import (
	"math"
	"strings"

	"github.com/twenty48-ai/solver/board"
	"github.com/twenty48-ai/solver/engine"
)

// Heuristic scores a board; higher is better.
type Heuristic func(b board.Board) float64

var eng = engine.New()

// Resolve maps a case-insensitive heuristic name to its evaluator.
// Unrecognized names fall back to the corner heuristic.
func Resolve(name string) Heuristic {
	switch strings.ToLower(name) {
	case "score":
		return Score
	case "merge":
		return Merge
	case "corner", "corner_bias":
		return Corner
	case "wall", "strict_wall":
		return StrictWall
	case "wall_gap":
		return WallGap
	case "full_wall":
		return FullWall
	case "skewed_corner":
		return SkewedCorner
	case "monotonicity":
		return Monotonicity
	}
	return Corner
}

// Names lists every accepted heuristic name, canonical form first.
func Names() []string {
	return []string{
		"score", "merge", "corner", "wall", "wall_gap", "full_wall",
		"skewed_corner", "monotonicity",
	}
}

// Score reconstructs the game score directly from the board.
func Score(b board.Board) float64 {
	return float64(eng.Score(b))
}

const (
	mergeWeight = 512
	emptyWeight = 270
	monoWeight  = 47
	monoPower   = 4
)

// Merge rewards boards with many adjacent equal pairs on top of the raw
// score, so positions that keep merges available rank higher.
func Merge(b board.Board) float64 {
	return Score(b) + mergeWeight*float64(adjacentEqualPairs(b))
}

// Positional weight matrices, cell order matching the board packing.
// Corner decays exponentially away from the top-left corner in both
// axes; SkewedCorner decays twice as fast by row, keeping the big tiles
// pinned to the top edge first.
var (
	cornerWeights = [board.CellCount]float64{
		64, 32, 16, 8,
		32, 16, 8, 4,
		16, 8, 4, 2,
		8, 4, 2, 1,
	}
	skewedCornerWeights = [board.CellCount]float64{
		512, 256, 128, 64,
		128, 64, 32, 16,
		32, 16, 8, 4,
		8, 4, 2, 1,
	}
	// Snake ordering along the top wall: big tiles belong in the top
	// row, the next rank backwards along the second row, and so on.
	strictWallWeights = [board.CellCount]float64{
		32768, 16384, 8192, 4096,
		256, 512, 1024, 2048,
		128, 64, 32, 16,
		1, 2, 4, 8,
	}
	// Same snake, but the last cell of the top row carries no weight:
	// it is the slot where an incoming tile waits to merge into the
	// wall, so occupying it is not rewarded.
	wallGapWeights = [board.CellCount]float64{
		32768, 16384, 8192, 0,
		256, 512, 1024, 2048,
		128, 64, 32, 16,
		1, 2, 4, 8,
	}
	// Steeper snake covering the full board, for endgames where every
	// row has to stay ordered.
	fullWallWeights = [board.CellCount]float64{
		1 << 30, 1 << 28, 1 << 26, 1 << 24,
		1 << 18, 1 << 20, 1 << 22, 1 << 23,
		1 << 16, 1 << 14, 1 << 12, 1 << 10,
		1 << 2, 1 << 4, 1 << 6, 1 << 8,
	}
)

// Corner biases play toward keeping large tiles in the top-left corner.
func Corner(b board.Board) float64 {
	return weighted(b, &cornerWeights)
}

// SkewedCorner is a corner bias that weighs row placement more heavily
// than column placement.
func SkewedCorner(b board.Board) float64 {
	return weighted(b, &skewedCornerWeights)
}

// StrictWall scores a snake arrangement along the top wall.
func StrictWall(b board.Board) float64 {
	return weighted(b, &strictWallWeights)
}

// WallGap is the wall heuristic with the merge slot left unweighted and
// a bonus for open cells.
func WallGap(b board.Board) float64 {
	return weighted(b, &wallGapWeights) + emptyWeight*float64(b.CountEmpty())
}

// FullWall extends the wall snake across the entire board.
func FullWall(b board.Board) float64 {
	return weighted(b, &fullWallWeights)
}

// Monotonicity penalizes lines whose exponents are not monotone,
// rewarding boards that stay ordered toward one edge, with bonuses for
// open cells on top of the raw score.
func Monotonicity(b board.Board) float64 {
	t := b.Transpose()
	penalty := 0.0
	for r := 0; r < 4; r++ {
		penalty += rowMonotonicityPenalty(b.Row(r))
		penalty += rowMonotonicityPenalty(t.Row(r))
	}
	return Score(b) + emptyWeight*float64(b.CountEmpty()) - monoWeight*penalty
}

// weighted is the common positional evaluator: the sum of tile values
// multiplied by their cell weight.
func weighted(b board.Board, w *[board.CellCount]float64) float64 {
	total := 0.0
	for i := 0; i < board.CellCount; i++ {
		if e := b.Cell(i); e > 0 {
			total += w[i] * float64(uint64(1)<<e)
		}
	}
	return total
}

// adjacentEqualPairs counts horizontally and vertically adjacent cells
// holding equal nonzero exponents.
func adjacentEqualPairs(b board.Board) int {
	pairs := 0
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			e := b.Cell(r*4 + c)
			if e == 0 {
				continue
			}
			if c < 3 && b.Cell(r*4+c+1) == e {
				pairs++
			}
			if r < 3 && b.Cell((r+1)*4+c) == e {
				pairs++
			}
		}
	}
	return pairs
}

// rowMonotonicityPenalty measures how far one row is from being
// monotone, taking the cheaper of the two orientations.
func rowMonotonicityPenalty(row board.Row) float64 {
	var line [4]float64
	for i := range line {
		line[i] = float64(int(row>>(i*4)) & 0xF)
	}
	left, right := 0.0, 0.0
	for i := 1; i < 4; i++ {
		if line[i-1] > line[i] {
			left += math.Pow(line[i-1], monoPower) - math.Pow(line[i], monoPower)
		} else {
			right += math.Pow(line[i], monoPower) - math.Pow(line[i-1], monoPower)
		}
	}
	return math.Min(left, right)
}
