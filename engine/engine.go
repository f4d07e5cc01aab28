// Package engine applies 2048 moves to packed boards using precomputed
// row transition tables, detects terminal states, and enumerates empty
// cells for tile spawning.
package engine

import (
	"lukechampine.com/frand"

	"github.com/twenty48-ai/solver/board"
)

// Direction codes. Vertical moves transpose the board around the
// canonical slide-left table; moves toward the trailing edge reverse
// each row around it.
const (
	Up = iota
	Down
	Left
	Right
)

// NumDirections is the number of legal direction codes.
const NumDirections = 4

// FourTileProb is the probability that a spawned tile is a 4 (exponent
// 2) rather than a 2 (exponent 1).
const FourTileProb = 0.1

// Engine executes moves against the shared immutable tables. The zero
// value is not usable; construct with New.
type Engine struct {
	t *Tables
}

// New returns an engine backed by the process-wide tables.
func New() *Engine {
	return &Engine{t: SharedTables()}
}

// MakeMove applies a directional slide-and-merge to the whole board and
// returns the result. If the move changes nothing, or the direction is
// out of range, the input board is returned bit-identical; that is the
// single definition of move validity.
func (e *Engine) MakeMove(b board.Board, dir int) board.Board {
	switch dir {
	case Up:
		return e.slideLeft(b.Transpose()).Transpose()
	case Down:
		return e.slideRight(b.Transpose()).Transpose()
	case Left:
		return e.slideLeft(b)
	case Right:
		return e.slideRight(b)
	}
	return b
}

// MoveScore returns the board after a move together with the score
// gained from merges during that move.
func (e *Engine) MoveScore(b board.Board, dir int) (board.Board, int) {
	switch dir {
	case Up:
		nb, score := e.slideLeftScore(b.Transpose())
		return nb.Transpose(), score
	case Down:
		nb, score := e.slideRightScore(b.Transpose())
		return nb.Transpose(), score
	case Left:
		return e.slideLeftScore(b)
	case Right:
		return e.slideRightScore(b)
	}
	return b, 0
}

func (e *Engine) slideLeft(b board.Board) board.Board {
	var out board.Board
	for r := 0; r < 4; r++ {
		out = out.WithRow(r, e.t.left[b.Row(r)])
	}
	return out
}

func (e *Engine) slideRight(b board.Board) board.Board {
	var out board.Board
	for r := 0; r < 4; r++ {
		out = out.WithRow(r, e.t.left[b.Row(r).Reverse()].Reverse())
	}
	return out
}

func (e *Engine) slideLeftScore(b board.Board) (board.Board, int) {
	var out board.Board
	score := 0
	for r := 0; r < 4; r++ {
		row := b.Row(r)
		out = out.WithRow(r, e.t.left[row])
		score += int(e.t.mergeScore[row])
	}
	return out, score
}

func (e *Engine) slideRightScore(b board.Board) (board.Board, int) {
	var out board.Board
	score := 0
	for r := 0; r < 4; r++ {
		rev := b.Row(r).Reverse()
		out = out.WithRow(r, e.t.left[rev].Reverse())
		score += int(e.t.mergeScore[rev])
	}
	return out, score
}

// IsValidMove reports whether the move would change the board. Any
// direction outside [0,3] is invalid.
func (e *Engine) IsValidMove(b board.Board, dir int) bool {
	if dir < 0 || dir >= NumDirections {
		return false
	}
	return e.MakeMove(b, dir) != b
}

// IsGameOver reports whether no direction changes the board.
func (e *Engine) IsGameOver(b board.Board) bool {
	if b.CountEmpty() > 0 {
		return false
	}
	for dir := 0; dir < NumDirections; dir++ {
		if e.MakeMove(b, dir) != b {
			return false
		}
	}
	return true
}

// EmptyCells returns the ordered positions of all empty cells, using
// the precomputed empty-cell index. The slice aliases immutable table
// storage and must not be modified.
func (e *Engine) EmptyCells(b board.Board) []uint8 {
	return e.t.EmptyPositions(b.EmptyMask())
}

// Score reconstructs the game score from the board alone.
func (e *Engine) Score(b board.Board) int {
	var score uint32
	for r := 0; r < 4; r++ {
		score += e.t.rowScore[b.Row(r)]
	}
	return int(score)
}

// SpawnRandom places a new tile on a uniformly chosen empty cell:
// exponent 1 with probability 0.9, exponent 2 with probability 0.1. A
// full board is returned unchanged.
func (e *Engine) SpawnRandom(b board.Board, rng *frand.RNG) board.Board {
	empties := e.EmptyCells(b)
	if len(empties) == 0 {
		return b
	}
	pos := int(empties[rng.Intn(len(empties))])
	exp := 1
	if rng.Float64() < FourTileProb {
		exp = 2
	}
	return b.PlaceTile(pos, exp)
}

// NewGame returns a starting position with two spawned tiles.
func (e *Engine) NewGame(rng *frand.RNG) board.Board {
	var b board.Board
	b = e.SpawnRandom(b, rng)
	b = e.SpawnRandom(b, rng)
	return b
}
