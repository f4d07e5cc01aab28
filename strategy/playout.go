package strategy

import (
	"encoding/binary"

	"lukechampine.com/frand"

	"github.com/twenty48-ai/solver/board"
	"github.com/twenty48-ai/solver/engine"
)

// maxPlayoutMoves bounds a single playout so a pathological run cannot
// loop forever.
const maxPlayoutMoves = 4096

// newSeed draws a fresh 32-byte base seed.
func newSeed() (seed [32]byte) {
	frand.Read(seed[:])
	return seed
}

// playoutRNG derives a deterministic random stream for one playout from
// a base seed, the candidate direction, and the playout index. Fixed
// assignment per playout keeps results independent of execution order
// when playouts run in parallel.
func playoutRNG(seed [32]byte, dir, iteration int) *frand.RNG {
	binary.LittleEndian.PutUint64(seed[0:8],
		binary.LittleEndian.Uint64(seed[0:8])^uint64(dir+1)*0x9E3779B97F4A7C15)
	binary.LittleEndian.PutUint64(seed[8:16],
		binary.LittleEndian.Uint64(seed[8:16])^uint64(iteration+1)*0xBF58476D1CE4E5B9)
	return frand.NewCustom(seed[:], 1024, 12)
}

// randomStep applies one uniformly random valid move followed by a
// spawn. Returns the input board unchanged when no move is valid.
func randomStep(e *engine.Engine, b board.Board, rng *frand.RNG) (board.Board, bool) {
	var dirs [engine.NumDirections]int
	n := validMoves(e, b, &dirs)
	if n == 0 {
		return b, false
	}
	nb := e.MakeMove(b, dirs[rng.Intn(n)])
	return e.SpawnRandom(nb, rng), true
}
