package strategy

import (
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/twenty48-ai/solver/board"
	"github.com/twenty48-ai/solver/engine"
)

// MonteCarlo estimates each candidate direction by running independent
// random playouts to game over (or the playout bound) and averaging the
// reconstructed game score of the final positions. Playouts run in
// parallel; each one uses its own deterministically derived random
// stream, so the per-direction average does not depend on scheduling.
type MonteCarlo struct {
	eng        *engine.Engine
	iterations int
	seed       [32]byte
	workers    int
}

// NewMonteCarlo returns a monte-carlo rollout strategy with a fresh
// random base seed.
func NewMonteCarlo(iterations int) *MonteCarlo {
	return NewMonteCarloSeeded(iterations, newSeed())
}

// NewMonteCarloSeeded returns a monte-carlo rollout strategy whose
// playout streams all derive from the given base seed, so repeated
// calls on the same board reproduce the same choice.
func NewMonteCarloSeeded(iterations int, seed [32]byte) *MonteCarlo {
	return &MonteCarlo{
		eng:        engine.New(),
		iterations: iterations,
		seed:       seed,
		workers:    runtime.NumCPU(),
	}
}

func (s *MonteCarlo) PickMove(b board.Board) int {
	best := 0
	bestAvg := math.Inf(-1)
	scores := make([]int64, s.iterations)
	for dir := 0; dir < engine.NumDirections; dir++ {
		nb := s.eng.MakeMove(b, dir)
		if nb == b {
			continue
		}
		var g errgroup.Group
		g.SetLimit(s.workers)
		for it := 0; it < s.iterations; it++ {
			g.Go(func() error {
				scores[it] = int64(s.playout(nb, dir, it))
				return nil
			})
		}
		// Playouts cannot fail; the group only fans them out.
		_ = g.Wait()

		var total int64
		for _, sc := range scores {
			total += sc
		}
		if avg := float64(total) / float64(s.iterations); avg > bestAvg {
			bestAvg = avg
			best = dir
		}
	}
	return best
}

// playout runs one random game from b (after the candidate move) until
// no move remains or the move bound is hit, and scores the final board.
func (s *MonteCarlo) playout(b board.Board, dir, iteration int) int {
	rng := playoutRNG(s.seed, dir, iteration)
	b = s.eng.SpawnRandom(b, rng)
	for i := 0; i < maxPlayoutMoves; i++ {
		nb, ok := randomStep(s.eng, b, rng)
		if !ok {
			break
		}
		b = nb
	}
	return s.eng.Score(b)
}
