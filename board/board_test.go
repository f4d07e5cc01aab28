package board

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"lukechampine.com/frand"
)

func TestRoundTrip(t *testing.T) {
	cells := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}
	b := FromCells(cells)
	assert.Equal(t, cells, b.Cells())

	rng := frand.NewCustom(make([]byte, 32), 1024, 12)
	for i := 0; i < 100; i++ {
		random := make([]int, CellCount)
		for j := range random {
			random[j] = rng.Intn(16)
		}
		assert.Equal(t, random, FromCells(random).Cells())
	}
}

func TestFromCellsClamping(t *testing.T) {
	b := FromCells([]int{-1, 20, 5, -100, 16})
	assert.Equal(t, []int{0, 15, 5, 0, 15, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, b.Cells())
}

func TestFromCellsPartialAndExtra(t *testing.T) {
	short := FromCells([]int{3, 1})
	assert.Equal(t, 3, short.Cell(0))
	assert.Equal(t, 1, short.Cell(1))
	for i := 2; i < CellCount; i++ {
		assert.Equal(t, 0, short.Cell(i))
	}

	long := make([]int, 20)
	for i := range long {
		long[i] = 1
	}
	b := FromCells(long)
	assert.Equal(t, 0, b.CountEmpty())
	for i := 0; i < CellCount; i++ {
		assert.Equal(t, 1, b.Cell(i))
	}
}

func TestPlaceTile(t *testing.T) {
	var b Board
	b = b.PlaceTile(5, 3)
	assert.Equal(t, 3, b.Cell(5))
	assert.Equal(t, 15, b.CountEmpty())
}

func TestReverseRow(t *testing.T) {
	// cells [1,2,3,4] reversed -> [4,3,2,1]
	row := Row(0x4321)
	assert.Equal(t, Row(0x1234), row.Reverse())
	assert.Equal(t, row, row.Reverse().Reverse())
}

func TestTranspose(t *testing.T) {
	b := FromCells([]int{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 0,
	})
	want := FromCells([]int{
		1, 5, 9, 13,
		2, 6, 10, 14,
		3, 7, 11, 15,
		4, 8, 12, 0,
	})
	assert.Equal(t, want, b.Transpose())
	assert.Equal(t, b, b.Transpose().Transpose())
}

func TestRowAccess(t *testing.T) {
	b := FromCells([]int{1, 2, 3, 4, 5, 6, 7, 8})
	assert.Equal(t, Row(0x4321), b.Row(0))
	assert.Equal(t, Row(0x8765), b.Row(1))
	assert.Equal(t, Row(0), b.Row(3))

	b2 := b.WithRow(3, 0x4321)
	assert.Equal(t, Row(0x4321), b2.Row(3))
	assert.Equal(t, b.Row(0), b2.Row(0))
}

func TestEmptyMask(t *testing.T) {
	var b Board
	assert.Equal(t, uint16(0xFFFF), b.EmptyMask())
	assert.Equal(t, 16, b.CountEmpty())

	b = b.PlaceTile(0, 1).PlaceTile(7, 15)
	mask := b.EmptyMask()
	assert.Equal(t, uint16(0xFFFF&^(1|1<<7)), mask)
	assert.Equal(t, 14, b.CountEmpty())
}

func TestMaxExponent(t *testing.T) {
	var b Board
	assert.Equal(t, 0, b.MaxExponent())
	assert.Equal(t, 15, b.PlaceTile(9, 15).MaxExponent())
	assert.Equal(t, 3, FromCells([]int{1, 3, 2}).MaxExponent())
}

func TestString(t *testing.T) {
	s := FromCells([]int{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 10}).String()
	assert.True(t, strings.Contains(s, "2"))
	assert.True(t, strings.Contains(s, "1024"))
}
