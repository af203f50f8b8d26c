// pkg/grid/grid.go
package grid

import (
	"merge-defense/internal/types"
)

// Cell — клетка прямоугольного поля защитников.
type Cell struct {
	X, Y int
}

// Grid хранит размеры поля и занятость клеток.
// Нулевой EntityID означает свободную клетку.
type Grid struct {
	Cols, Rows int
	CellSize   float64
	OffsetX    float64
	OffsetY    float64
	occupancy  map[Cell]types.EntityID
}

// NewGrid создаёт пустое поле указанного размера.
func NewGrid(cols, rows int, cellSize, offsetX, offsetY float64) *Grid {
	return &Grid{
		Cols:      cols,
		Rows:      rows,
		CellSize:  cellSize,
		OffsetX:   offsetX,
		OffsetY:   offsetY,
		occupancy: make(map[Cell]types.EntityID),
	}
}

// InBounds проверяет, лежит ли клетка внутри поля.
func (g *Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.Cols && c.Y >= 0 && c.Y < g.Rows
}

// IsFree возвращает true, если клетка в границах поля и не занята.
func (g *Grid) IsFree(c Cell) bool {
	if !g.InBounds(c) {
		return false
	}
	return g.occupancy[c] == 0
}

// At возвращает сущность, занимающую клетку (0 — пусто).
func (g *Grid) At(c Cell) types.EntityID {
	return g.occupancy[c]
}

// Place занимает клетку сущностью. Возвращает false, если клетка
// вне поля или уже занята.
func (g *Grid) Place(c Cell, id types.EntityID) bool {
	if !g.IsFree(c) || id == 0 {
		return false
	}
	g.occupancy[c] = id
	return true
}

// Remove освобождает клетку.
func (g *Grid) Remove(c Cell) {
	delete(g.occupancy, c)
}

// Clear освобождает все клетки.
func (g *Grid) Clear() {
	g.occupancy = make(map[Cell]types.EntityID)
}

// FreeCells перечисляет свободные клетки в построчном порядке.
// Порядок стабильный, чтобы выбор случайной клетки был детерминирован
// при фиксированном сиде.
func (g *Grid) FreeCells() []Cell {
	cells := make([]Cell, 0, g.Cols*g.Rows)
	for y := 0; y < g.Rows; y++ {
		for x := 0; x < g.Cols; x++ {
			c := Cell{X: x, Y: y}
			if g.occupancy[c] == 0 {
				cells = append(cells, c)
			}
		}
	}
	return cells
}

// OccupiedCells перечисляет занятые клетки с их сущностями.
func (g *Grid) OccupiedCells() map[Cell]types.EntityID {
	out := make(map[Cell]types.EntityID, len(g.occupancy))
	for c, id := range g.occupancy {
		if id != 0 {
			out[c] = id
		}
	}
	return out
}

// CellCenter возвращает мировые координаты центра клетки.
func (g *Grid) CellCenter(c Cell) (float64, float64) {
	x := g.OffsetX + (float64(c.X)+0.5)*g.CellSize
	y := g.OffsetY + (float64(c.Y)+0.5)*g.CellSize
	return x, y
}

// CellAt возвращает клетку по мировым координатам и признак попадания в поле.
func (g *Grid) CellAt(x, y float64) (Cell, bool) {
	if x < g.OffsetX || y < g.OffsetY {
		return Cell{}, false
	}
	c := Cell{
		X: int((x - g.OffsetX) / g.CellSize),
		Y: int((y - g.OffsetY) / g.CellSize),
	}
	if !g.InBounds(c) {
		return Cell{}, false
	}
	return c, true
}
