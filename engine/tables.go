package engine

import (
	"math/bits"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/twenty48-ai/solver/board"
)

const rowCount = 1 << 16

// Tables holds every precomputed structure the engine needs: the
// canonical slide-left transform for all 65536 row values, the merge
// score delta and reconstructed game score per row, and the empty-cell
// index mapping an empty-nibble mask to its ordered cell positions.
// Built exactly once per process and read-only afterwards; the other
// three directions reuse the slide-left table through row reversal and
// board transposition.
type Tables struct {
	left       [rowCount]board.Row
	mergeScore [rowCount]uint32
	rowScore   [rowCount]uint32

	emptyOffset [rowCount]int32
	emptyCells  []uint8
}

var (
	tablesOnce sync.Once
	shared     *Tables
)

// SharedTables returns the process-wide table set, building it on first
// use. Safe to call from multiple goroutines.
func SharedTables() *Tables {
	tablesOnce.Do(func() {
		start := time.Now()
		shared = buildTables()
		log.Debug().Msgf("move tables built in %v", time.Since(start))
	})
	return shared
}

func buildTables() *Tables {
	t := &Tables{}
	for row := 0; row < rowCount; row++ {
		out, score := slideRowLeft(board.Row(row))
		t.left[row] = out
		t.mergeScore[row] = score
		t.rowScore[row] = reconstructRowScore(board.Row(row))
	}
	t.emptyCells = make([]uint8, 0, 16<<15)
	for mask := 0; mask < rowCount; mask++ {
		t.emptyOffset[mask] = int32(len(t.emptyCells))
		for i := 0; i < board.CellCount; i++ {
			if mask>>i&1 == 1 {
				t.emptyCells = append(t.emptyCells, uint8(i))
			}
		}
	}
	return t
}

// slideRowLeft slides all nonzero cells of a row toward the low nibble
// and merges adjacent equal exponents pairwise. A merged cell cannot
// merge again within the same move, and a cell already at the maximum
// exponent never merges. Returns the resulting row and the score gained
// from merges (2^(e+1) per merge of two e tiles).
func slideRowLeft(row board.Row) (board.Row, uint32) {
	var line [4]int
	for i := range line {
		line[i] = int(row>>(i*4)) & 0xF
	}

	var out [4]int
	var score uint32
	w := 0
	justMerged := false
	for _, v := range line {
		if v == 0 {
			continue
		}
		if w > 0 && out[w-1] == v && v < board.MaxExponent && !justMerged {
			out[w-1]++
			score += 1 << out[w-1]
			justMerged = true
		} else {
			out[w] = v
			w++
			justMerged = false
		}
	}

	var result board.Row
	for i, v := range out {
		result |= board.Row(v) << (i * 4)
	}
	return result, score
}

// reconstructRowScore computes the game score contributed by one row,
// under the usual assumption that every tile was produced by merging
// 2s: a tile of exponent e contributed (e-1)*2^e points.
func reconstructRowScore(row board.Row) uint32 {
	var score uint32
	for i := 0; i < 4; i++ {
		rank := uint32(row>>(i*4)) & 0xF
		if rank >= 2 {
			score += (rank - 1) * (1 << rank)
		}
	}
	return score
}

// EmptyPositions returns the ordered cell positions for an empty-cell
// mask. The returned slice aliases the immutable index; callers must
// not modify it.
func (t *Tables) EmptyPositions(mask uint16) []uint8 {
	off := t.emptyOffset[mask]
	n := int32(bits.OnesCount16(mask))
	return t.emptyCells[off : off+n]
}
