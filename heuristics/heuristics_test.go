package heuristics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"lukechampine.com/frand"

	"github.com/twenty48-ai/solver/board"
)

var sampleBoards = []board.Board{
	0,
	board.FromCells([]int{1, 1}),
	board.FromCells([]int{10, 9, 8, 7, 6, 5, 4, 3, 2, 1}),
	board.FromCells([]int{
		1, 2, 1, 2,
		2, 1, 2, 1,
		1, 2, 1, 2,
		2, 1, 2, 1,
	}),
	board.FromCells([]int{
		15, 15, 15, 15,
		15, 15, 15, 15,
		15, 15, 15, 15,
		15, 15, 15, 15,
	}),
}

func TestResolveNames(t *testing.T) {
	named := map[string]Heuristic{
		"score":         Score,
		"merge":         Merge,
		"corner":        Corner,
		"corner_bias":   Corner,
		"wall":          StrictWall,
		"strict_wall":   StrictWall,
		"wall_gap":      WallGap,
		"full_wall":     FullWall,
		"skewed_corner": SkewedCorner,
		"monotonicity":  Monotonicity,
		"MONOTONICITY":  Monotonicity,
		"Corner":        Corner,
		"":              Corner,
		"bogus":         Corner,
	}
	for name, want := range named {
		got := Resolve(name)
		for _, b := range sampleBoards {
			require.Equal(t, want(b), got(b), "heuristic %q board %016x", name, uint64(b))
		}
	}
}

func TestDeterminismAndTotality(t *testing.T) {
	rng := frand.NewCustom(make([]byte, 32), 1024, 12)
	boards := append([]board.Board{}, sampleBoards...)
	for i := 0; i < 50; i++ {
		boards = append(boards, board.Board(rng.Uint64n(math.MaxUint64)))
	}
	for _, name := range Names() {
		h := Resolve(name)
		for _, b := range boards {
			v := h(b)
			require.False(t, math.IsNaN(v), "heuristic %q board %016x", name, uint64(b))
			require.Equal(t, v, h(b), "heuristic %q not deterministic", name)
		}
	}
}

func TestScoreHeuristic(t *testing.T) {
	assert.Equal(t, 0.0, Score(0))
	assert.Equal(t, 4.0, Score(board.FromCells([]int{2})))
	// more merges mean a higher reconstructed score
	assert.Greater(t,
		Score(board.FromCells([]int{5})),
		Score(board.FromCells([]int{4})))
}

func TestMergeHeuristicPrefersPairs(t *testing.T) {
	paired := board.FromCells([]int{3, 3})
	split := board.FromCells([]int{3, 0, 0, 3})
	assert.Greater(t, Merge(paired), Merge(split))
}

func TestCornerHeuristicPrefersCornerPlacement(t *testing.T) {
	inCorner := board.FromCells([]int{10})
	center := board.FromCells([]int{0, 0, 0, 0, 0, 10})
	assert.Greater(t, Corner(inCorner), Corner(center))
}

func TestWallHeuristicPrefersSnake(t *testing.T) {
	snake := board.FromCells([]int{
		8, 7, 6, 5,
		1, 2, 3, 4,
	})
	scattered := board.FromCells([]int{
		1, 7, 2, 5,
		8, 3, 6, 4,
	})
	assert.Greater(t, StrictWall(snake), StrictWall(scattered))
	assert.Greater(t, FullWall(snake), FullWall(scattered))
}

func TestMonotonicityPrefersOrderedRows(t *testing.T) {
	ordered := board.FromCells([]int{4, 3, 2, 1})
	jumbled := board.FromCells([]int{2, 4, 1, 3})
	assert.Greater(t, Monotonicity(ordered), Monotonicity(jumbled))
}
