package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"lukechampine.com/frand"

	"github.com/twenty48-ai/solver/board"
)

func testRNG() *frand.RNG {
	seed := make([]byte, 32)
	seed[0] = 42
	return frand.NewCustom(seed, 1024, 12)
}

func randomBoard(rng *frand.RNG) board.Board {
	return board.Board(rng.Uint64n(math.MaxUint64))
}

func TestMakeMoveExamples(t *testing.T) {
	e := New()
	b := board.FromCells([]int{
		1, 0, 0, 1,
		0, 2, 0, 0,
		0, 0, 0, 0,
		3, 0, 0, 3,
	})
	assert.Equal(t, board.FromCells([]int{
		2, 0, 0, 0,
		2, 0, 0, 0,
		0, 0, 0, 0,
		4, 0, 0, 0,
	}), e.MakeMove(b, Left))
	assert.Equal(t, board.FromCells([]int{
		0, 0, 0, 2,
		0, 0, 0, 2,
		0, 0, 0, 0,
		0, 0, 0, 4,
	}), e.MakeMove(b, Right))
	assert.Equal(t, board.FromCells([]int{
		1, 2, 0, 1,
		3, 0, 0, 3,
		0, 0, 0, 0,
		0, 0, 0, 0,
	}), e.MakeMove(b, Up))
	assert.Equal(t, board.FromCells([]int{
		0, 0, 0, 0,
		0, 0, 0, 0,
		1, 0, 0, 1,
		3, 2, 0, 3,
	}), e.MakeMove(b, Down))
}

func TestMakeMoveInvalidDirection(t *testing.T) {
	e := New()
	b := board.FromCells([]int{1, 2, 3})
	assert.Equal(t, b, e.MakeMove(b, -1))
	assert.Equal(t, b, e.MakeMove(b, 4))
	assert.False(t, e.IsValidMove(b, -1))
	assert.False(t, e.IsValidMove(b, 17))
}

func TestMoveScore(t *testing.T) {
	e := New()
	// two vertical merge pairs: 1+1 -> 4 pts, 3+3 -> 16 pts
	b := board.FromCells([]int{
		1, 3, 0, 0,
		1, 3, 0, 0,
		0, 0, 0, 0,
		0, 0, 0, 0,
	})
	nb, score := e.MoveScore(b, Up)
	assert.Equal(t, e.MakeMove(b, Up), nb)
	assert.Equal(t, 20, score)

	same, zero := e.MoveScore(b, 9)
	assert.Equal(t, b, same)
	assert.Equal(t, 0, zero)
}

func TestValidityConsistency(t *testing.T) {
	e := New()
	rng := testRNG()
	for i := 0; i < 1000; i++ {
		b := randomBoard(rng)
		for dir := 0; dir < NumDirections; dir++ {
			require.Equal(t, e.MakeMove(b, dir) != b, e.IsValidMove(b, dir),
				"board %016x dir %d", uint64(b), dir)
		}
	}
}

func TestTerminalConsistency(t *testing.T) {
	e := New()
	rng := testRNG()
	for i := 0; i < 1000; i++ {
		b := randomBoard(rng)
		stuck := true
		for dir := 0; dir < NumDirections; dir++ {
			if e.MakeMove(b, dir) != b {
				stuck = false
			}
		}
		require.Equal(t, stuck, e.IsGameOver(b), "board %016x", uint64(b))
	}
}

func TestGameOverScenario(t *testing.T) {
	e := New()
	// Full board, no two adjacent tiles equal.
	terminal := board.FromCells([]int{
		1, 2, 1, 2,
		2, 1, 2, 1,
		1, 2, 1, 2,
		2, 1, 2, 1,
	})
	assert.True(t, e.IsGameOver(terminal))

	// One adjacent pair makes it playable again.
	almost := board.FromCells([]int{
		1, 2, 1, 2,
		2, 1, 2, 1,
		1, 2, 1, 2,
		2, 1, 2, 2,
	})
	assert.False(t, e.IsGameOver(almost))

	assert.False(t, e.IsGameOver(0), "empty board is not terminal")
}

func TestEmptyCells(t *testing.T) {
	e := New()
	var b board.Board
	assert.Len(t, e.EmptyCells(b), 16)

	b = b.PlaceTile(3, 1).PlaceTile(10, 2)
	empties := e.EmptyCells(b)
	assert.Len(t, empties, 14)
	for _, pos := range empties {
		assert.NotEqual(t, uint8(3), pos)
		assert.NotEqual(t, uint8(10), pos)
	}

	var full board.Board
	for i := 0; i < board.CellCount; i++ {
		full = full.PlaceTile(i, 1)
	}
	assert.Empty(t, e.EmptyCells(full))
}

func TestScore(t *testing.T) {
	e := New()
	assert.Equal(t, 0, e.Score(0))
	// a single 8 came from merging 4+4, which came from 2s: 8+4+4 = 16
	assert.Equal(t, 16, e.Score(board.FromCells([]int{3})))
	assert.Equal(t, 4, e.Score(board.FromCells([]int{0, 0, 0, 0, 2})))
}

func TestSpawnRandom(t *testing.T) {
	e := New()
	rng := testRNG()

	var b board.Board
	fours := 0
	const trials = 2000
	for i := 0; i < trials; i++ {
		nb := e.SpawnRandom(b, rng)
		assert.Equal(t, 15, nb.CountEmpty())
		exp := nb.MaxExponent()
		require.True(t, exp == 1 || exp == 2)
		if exp == 2 {
			fours++
		}
	}
	frac := float64(fours) / trials
	assert.InDelta(t, 0.1, frac, 0.04, "4-tile fraction %v", frac)

	var full board.Board
	for i := 0; i < board.CellCount; i++ {
		full = full.PlaceTile(i, 1)
	}
	assert.Equal(t, full, e.SpawnRandom(full, rng))
}

func TestNewGame(t *testing.T) {
	e := New()
	b := e.NewGame(testRNG())
	assert.Equal(t, 14, b.CountEmpty())
}
