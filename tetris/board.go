package tetris

import (
	"fmt"

	"github.com/kamstrup/intmap"
)

const (
	Width  = 12
	Height = 20

	// DangerRow is the lowest row that ends the game once a block locks on it.
	DangerRow = Height - 2
)

// Board holds the locked cells of the stack.
// Columns are 0 > 11 left to right and rows 0 > 19 bottom to top.
type Board struct {
	// cells maps a packed cell coordinate to the shape it was locked from.
	cells *intmap.Map[int, Shape]
	rows  [Height]int
}

func NewBoard() *Board {
	return &Board{cells: intmap.New[int, Shape](Width * Height)}
}

func key(c Cell) int { return c.Row*Width + c.Col }

func inBounds(c Cell) bool {
	return c.Col >= 0 && c.Col < Width && c.Row >= 0 && c.Row < Height
}

// IsOccupied reports whether c holds a locked block. Cells outside the
// board are never occupied.
func (b *Board) IsOccupied(c Cell) bool {
	if !inBounds(c) {
		return false
	}
	_, ok := b.cells.Get(key(c))
	return ok
}

// At returns the shape locked at c or an empty Shape.
func (b *Board) At(c Cell) Shape {
	if !inBounds(c) {
		return ""
	}
	s, _ := b.cells.Get(key(c))
	return s
}

// Lock adds the cells to the stack. Locking outside the board or on top
// of an occupied cell breaks the stack invariant and panics.
func (b *Board) Lock(cells [4]Cell, s Shape) {
	for i, c := range cells {
		if !inBounds(c) {
			panic(fmt.Sprintf("tetris: lock out of bounds at %+v", c))
		}
		if b.IsOccupied(c) {
			panic(fmt.Sprintf("tetris: lock on occupied cell %+v", c))
		}
		for _, d := range cells[:i] {
			if c == d {
				panic(fmt.Sprintf("tetris: lock repeats cell %+v", c))
			}
		}
	}
	for _, c := range cells {
		b.cells.Put(key(c), s)
		b.rows[c.Row]++
	}
}

// RowCount returns the number of locked cells in row.
func (b *Board) RowCount(row int) int {
	if row < 0 || row >= Height {
		return 0
	}
	return b.rows[row]
}

// RemoveRow deletes every cell in row. Rows above it fall by one and rows
// below it stay where they are.
func (b *Board) RemoveRow(row int) {
	if row < 0 || row >= Height {
		return
	}
	for r := row; r < Height; r++ {
		for col := range Width {
			b.cells.Del(key(Cell{Col: col, Row: r}))
			if r+1 == Height {
				continue
			}
			if s, ok := b.cells.Get(key(Cell{Col: col, Row: r + 1})); ok {
				b.cells.Put(key(Cell{Col: col, Row: r}), s)
			}
		}
		if r+1 < Height {
			b.rows[r] = b.rows[r+1]
		} else {
			b.rows[r] = 0
		}
	}
}

// Clear empties the board.
func (b *Board) Clear() {
	b.cells.Clear()
	b.rows = [Height]int{}
}

// Len returns the number of locked cells.
func (b *Board) Len() int {
	return b.cells.Len()
}

// OccupiedCells lists the locked cells from the bottom row up.
func (b *Board) OccupiedCells() []Cell {
	cells := make([]Cell, 0, b.Len())
	for row := range Height {
		if b.rows[row] == 0 {
			continue
		}
		for col := range Width {
			c := Cell{Col: col, Row: row}
			if b.IsOccupied(c) {
				cells = append(cells, c)
			}
		}
	}
	return cells
}

// Grid returns the stack as rows of shapes, row 0 first.
// An empty string is an empty cell.
func (b *Board) Grid() [Height][Width]Shape {
	var g [Height][Width]Shape
	for _, c := range b.OccupiedCells() {
		g[c.Row][c.Col] = b.At(c)
	}
	return g
}

// fits reports whether every cell of t lies between the walls, above the
// floor, below the ceiling and clear of the stack.
func (b *Board) fits(t *Tetromino) bool {
	for _, c := range t.Cells() {
		if !inBounds(c) || b.IsOccupied(c) {
			return false
		}
	}
	return true
}

// topRow returns the highest row holding a locked cell, or -1.
func (b *Board) topRow() int {
	for row := Height - 1; row >= 0; row-- {
		if b.rows[row] > 0 {
			return row
		}
	}
	return -1
}

func (b *Board) copy() *Board {
	c := NewBoard()
	for _, cell := range b.OccupiedCells() {
		c.cells.Put(key(cell), b.At(cell))
	}
	c.rows = b.rows
	return c
}
