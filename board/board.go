// Package board implements the packed 64-bit representation of a 4x4
// 2048 grid. Each cell occupies 4 bits and holds an exponent: 0 for an
// empty cell, or e in [1,15] for a tile of value 2^e. Cell i of the
// grid (row-major, top-left first) lives in bits [4i, 4i+4).
package board

import (
	"fmt"
	"strings"
)

// Board is an immutable packed 4x4 grid. All transforms return a new value.
type Board uint64

// Row is one 16-bit line of a board: four cells, low nibble first.
type Row uint16

const (
	// CellCount is the number of cells in a board.
	CellCount = 16
	// MaxExponent is the largest representable tile exponent (tile 32768).
	MaxExponent = 15

	cellBits = 4
	rowBits  = 16
	cellMask = 0xF
)

// FromCells packs up to 16 tile exponents into a board. Values are
// clamped into [0,15]; missing cells are left empty; extra cells are
// ignored.
func FromCells(cells []int) Board {
	var b Board
	n := len(cells)
	if n > CellCount {
		n = CellCount
	}
	for i := 0; i < n; i++ {
		b |= Board(clampExponent(cells[i])) << (i * cellBits)
	}
	return b
}

// Cells unpacks a board into exactly 16 exponents in cell order.
func (b Board) Cells() []int {
	cells := make([]int, CellCount)
	for i := range cells {
		cells[i] = b.Cell(i)
	}
	return cells
}

// Cell returns the exponent at cell position i.
func (b Board) Cell(i int) int {
	return int(b>>(i*cellBits)) & cellMask
}

// PlaceTile returns a copy of b with exponent exp written into the empty
// cell at position pos. The cell must be empty.
func (b Board) PlaceTile(pos, exp int) Board {
	return b | Board(exp&cellMask)<<(pos*cellBits)
}

// Row extracts line r (0..3) as a 16-bit row value.
func (b Board) Row(r int) Row {
	return Row(b >> (r * rowBits))
}

// WithRow returns a copy of b with line r replaced by row.
func (b Board) WithRow(r int, row Row) Board {
	shift := r * rowBits
	return b&^(Board(0xFFFF)<<shift) | Board(row)<<shift
}

// Reverse mirrors a row so that the first cell becomes the last.
func (r Row) Reverse() Row {
	return r>>12 | r>>4&0x00F0 | r<<4&0x0F00 | r<<12
}

// Transpose mirrors the board across its main diagonal, exchanging rows
// and columns. Applying it twice yields the original board.
func (b Board) Transpose() Board {
	x := uint64(b)
	a1 := x & 0xF0F00F0FF0F00F0F
	a2 := x & 0x0000F0F00000F0F0
	a3 := x & 0x0F0F00000F0F0000
	a := a1 | a2<<12 | a3>>12
	b1 := a & 0xFF00FF0000FF00FF
	b2 := a & 0x00FF00FF00000000
	b3 := a & 0x00000000FF00FF00
	return Board(b1 | b2>>24 | b3<<24)
}

// EmptyMask returns a 16-bit mask with bit i set iff cell i is empty.
func (b Board) EmptyMask() uint16 {
	x := uint64(b)
	x |= x >> 2 & 0x3333333333333333
	x |= x >> 1
	x = ^x & 0x1111111111111111
	var m uint16
	for i := 0; i < CellCount; i++ {
		m |= uint16(x>>(i*cellBits)&1) << i
	}
	return m
}

// CountEmpty returns the number of empty cells.
func (b Board) CountEmpty() int {
	if b == 0 {
		// The nibble sum below cannot represent 16.
		return CellCount
	}
	x := uint64(b)
	x |= x >> 2 & 0x3333333333333333
	x |= x >> 1
	x = ^x & 0x1111111111111111
	x += x >> 32
	x += x >> 16
	x += x >> 8
	x += x >> 4
	return int(x & cellMask)
}

// MaxExponent returns the largest exponent on the board; 0 if empty.
func (b Board) MaxExponent() int {
	max := 0
	for x := uint64(b); x != 0; x >>= cellBits {
		if e := int(x & cellMask); e > max {
			max = e
		}
	}
	return max
}

// String renders the board as a 4x4 grid of tile values.
func (b Board) String() string {
	var sb strings.Builder
	sb.WriteString("+------+------+------+------+\n")
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			e := b.Cell(r*4 + c)
			if e == 0 {
				sb.WriteString("|      ")
			} else {
				fmt.Fprintf(&sb, "|%6d", 1<<e)
			}
		}
		sb.WriteString("|\n+------+------+------+------+\n")
	}
	return sb.String()
}

func clampExponent(v int) int {
	if v < 0 {
		return 0
	}
	if v > MaxExponent {
		return MaxExponent
	}
	return v
}
