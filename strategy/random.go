package strategy

import (
	"lukechampine.com/frand"

	"github.com/twenty48-ai/solver/board"
	"github.com/twenty48-ai/solver/engine"
)

// Random picks a uniformly random direction without regard to validity.
type Random struct {
	rng *frand.RNG
}

// NewRandom returns the uniform random baseline strategy.
func NewRandom() *Random {
	return &Random{rng: frand.New()}
}

func (s *Random) PickMove(board.Board) int {
	return s.rng.Intn(engine.NumDirections)
}
