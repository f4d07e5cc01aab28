package engine

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/twenty48-ai/solver/board"
)

// naiveSlideLeft is a straightforward reference implementation of the
// slide-and-merge rule, used to exercise the table builder exhaustively.
func naiveSlideLeft(row board.Row) (board.Row, uint32) {
	var tiles []int
	for i := 0; i < 4; i++ {
		if v := int(row>>(i*4)) & 0xF; v != 0 {
			tiles = append(tiles, v)
		}
	}
	var out []int
	var score uint32
	for i := 0; i < len(tiles); i++ {
		if i+1 < len(tiles) && tiles[i] == tiles[i+1] && tiles[i] < board.MaxExponent {
			out = append(out, tiles[i]+1)
			score += 1 << (tiles[i] + 1)
			i++ // the pair is consumed; the merged cell cannot merge again
		} else {
			out = append(out, tiles[i])
		}
	}
	var result board.Row
	for i, v := range out {
		result |= board.Row(v) << (i * 4)
	}
	return result, score
}

func TestSlideTableExhaustive(t *testing.T) {
	tables := SharedTables()
	for row := 0; row < rowCount; row++ {
		wantRow, wantScore := naiveSlideLeft(board.Row(row))
		require.Equal(t, wantRow, tables.left[row], "row %04x", row)
		require.Equal(t, wantScore, tables.mergeScore[row], "row %04x", row)
	}
}

func TestSlideRowExamples(t *testing.T) {
	cases := []struct {
		in, out board.Row
		score   uint32
	}{
		{0x0000, 0x0000, 0},
		{0x0011, 0x0002, 4},             // [1,1,0,0] -> [2]
		{0x1111, 0x0022, 8},             // [1,1,1,1] -> [2,2]
		{0x3211, 0x0232, 4},             // [1,1,2,3] -> [2,2,3]
		{0x2112, 0x0222, 4},             // [2,1,1,2] -> [2,2,2]
		{0x1010, 0x0002, 4},             // gaps close before merging
		{0x4321, 0x4321, 0},             // nothing moves
		{0x0FF0, 0x000F, 0},             // max exponent never merges
		{0x00FF, 0x00FF, 0},             // not even when adjacent at the edge
		{0x00EE, 0x000F, uint32(1) << 15}, // but 14+14 -> 15
	}
	for _, c := range cases {
		got, score := slideRowLeft(c.in)
		assert.Equal(t, c.out, got, "row %04x", c.in)
		assert.Equal(t, c.score, score, "row %04x", c.in)
	}
}

func TestReconstructRowScore(t *testing.T) {
	// exponent e contributes (e-1)*2^e
	assert.Equal(t, uint32(0), reconstructRowScore(0x0000))
	assert.Equal(t, uint32(0), reconstructRowScore(0x0011)) // 2s scored nothing yet
	assert.Equal(t, uint32(4), reconstructRowScore(0x0002))
	assert.Equal(t, uint32(20), reconstructRowScore(0x0032)) // 1*4 + 2*8
	assert.Equal(t, uint32(14*32768), reconstructRowScore(0x000F))
}

func TestEmptyPositionsExhaustive(t *testing.T) {
	tables := SharedTables()
	for mask := 0; mask < rowCount; mask++ {
		positions := tables.EmptyPositions(uint16(mask))
		require.Equal(t, bits.OnesCount16(uint16(mask)), len(positions))
		for j, pos := range positions {
			require.NotZero(t, mask>>pos&1, "mask %04x pos %d", mask, pos)
			if j > 0 {
				require.Less(t, positions[j-1], pos)
			}
		}
	}
}
