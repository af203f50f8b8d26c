// pkg/grid/grid_test.go
package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"merge-defense/internal/types"
)

func TestGridBounds(t *testing.T) {
	g := NewGrid(6, 3, 64, 0, 0)

	tests := []struct {
		name string
		cell Cell
		want bool
	}{
		{"origin", Cell{0, 0}, true},
		{"last", Cell{5, 2}, true},
		{"negative x", Cell{-1, 0}, false},
		{"negative y", Cell{0, -1}, false},
		{"col overflow", Cell{6, 0}, false},
		{"row overflow", Cell{0, 3}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, g.InBounds(tt.cell))
		})
	}
}

func TestGridOccupancy(t *testing.T) {
	g := NewGrid(4, 2, 64, 0, 0)
	c := Cell{1, 1}

	require.True(t, g.IsFree(c))
	require.True(t, g.Place(c, types.EntityID(7)))
	assert.False(t, g.IsFree(c))
	assert.Equal(t, types.EntityID(7), g.At(c))

	// вторая сущность на ту же клетку не встаёт
	assert.False(t, g.Place(c, types.EntityID(8)))
	assert.Equal(t, types.EntityID(7), g.At(c))

	g.Remove(c)
	assert.True(t, g.IsFree(c))
	assert.Equal(t, types.EntityID(0), g.At(c))
}

func TestGridPlaceRejectsZeroID(t *testing.T) {
	g := NewGrid(2, 2, 64, 0, 0)
	assert.False(t, g.Place(Cell{0, 0}, 0))
	assert.True(t, g.IsFree(Cell{0, 0}))
}

func TestGridFreeCellsOrderAndCount(t *testing.T) {
	g := NewGrid(3, 2, 64, 0, 0)
	require.Len(t, g.FreeCells(), 6)

	g.Place(Cell{1, 0}, 1)
	g.Place(Cell{2, 1}, 2)

	free := g.FreeCells()
	require.Len(t, free, 4)
	// построчный порядок стабилен
	assert.Equal(t, []Cell{{0, 0}, {2, 0}, {0, 1}, {1, 1}}, free)
}

func TestGridCellCenterRoundTrip(t *testing.T) {
	g := NewGrid(6, 3, 64, 100, 200)

	for _, c := range []Cell{{0, 0}, {5, 2}, {3, 1}} {
		x, y := g.CellCenter(c)
		got, ok := g.CellAt(x, y)
		require.True(t, ok)
		assert.Equal(t, c, got)
	}

	_, ok := g.CellAt(50, 50) // левее поля
	assert.False(t, ok)
	_, ok = g.CellAt(100+6*64+1, 200)
	assert.False(t, ok)
}

func TestGridClear(t *testing.T) {
	g := NewGrid(2, 2, 64, 0, 0)
	g.Place(Cell{0, 0}, 1)
	g.Place(Cell{1, 1}, 2)
	g.Clear()
	assert.Len(t, g.FreeCells(), 4)
}
