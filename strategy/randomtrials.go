package strategy

import (
	"math"

	"github.com/twenty48-ai/solver/board"
	"github.com/twenty48-ai/solver/engine"
)

// RandomTrials is the cheap bounded cousin of MonteCarlo: each trial
// stops after branchDepth random moves instead of running to game over,
// repeated gamesPerMove times per candidate direction.
type RandomTrials struct {
	eng          *engine.Engine
	gamesPerMove int
	branchDepth  int
	seed         [32]byte
}

// NewRandomTrials returns a bounded random-trial rollout strategy with
// a fresh random base seed.
func NewRandomTrials(gamesPerMove, branchDepth int) *RandomTrials {
	return NewRandomTrialsSeeded(gamesPerMove, branchDepth, newSeed())
}

// NewRandomTrialsSeeded returns a bounded random-trial rollout strategy
// with a fixed base seed for reproducible trials.
func NewRandomTrialsSeeded(gamesPerMove, branchDepth int, seed [32]byte) *RandomTrials {
	return &RandomTrials{
		eng:          engine.New(),
		gamesPerMove: gamesPerMove,
		branchDepth:  branchDepth,
		seed:         seed,
	}
}

func (s *RandomTrials) PickMove(b board.Board) int {
	best := 0
	bestAvg := math.Inf(-1)
	for dir := 0; dir < engine.NumDirections; dir++ {
		nb := s.eng.MakeMove(b, dir)
		if nb == b {
			continue
		}
		var total int64
		for game := 0; game < s.gamesPerMove; game++ {
			total += int64(s.trial(nb, dir, game))
		}
		if avg := float64(total) / float64(s.gamesPerMove); avg > bestAvg {
			bestAvg = avg
			best = dir
		}
	}
	return best
}

// trial plays branchDepth random moves from b (after the candidate
// move) and scores the resulting board.
func (s *RandomTrials) trial(b board.Board, dir, game int) int {
	rng := playoutRNG(s.seed, dir, game)
	b = s.eng.SpawnRandom(b, rng)
	for i := 0; i < s.branchDepth; i++ {
		nb, ok := randomStep(s.eng, b, rng)
		if !ok {
			break
		}
		b = nb
	}
	return s.eng.Score(b)
}
