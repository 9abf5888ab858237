// Package maze runs the first-person maze "catch" game: it builds wall volumes from a binary grid, answers collision
// raycasts against them, moves the player and the pursuers each tick and decides when the player has escaped or been caught.
package maze

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyGrid is returned when a Grid is built from no rows, or from rows with no cells.
	ErrEmptyGrid = errors.New("maze: grid is empty")
	// ErrRaggedGrid is returned when the rows of a Grid are not all the same length.
	ErrRaggedGrid = errors.New("maze: grid rows differ in length")
)

// Cell is a single square of a Grid.
type Cell uint8

const (
	Empty Cell = iota
	Wall
)

// Grid is an immutable rectangular map of walls and empty space, indexed by row and column.
type Grid struct {
	cells   []Cell
	rows    int
	columns int
}

// NewGrid creates a Grid from rows of 0s and 1s; any non-zero value is a wall. The rows are copied.
func NewGrid(rows [][]int) (*Grid, error) {

	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}

	grid := &Grid{
		rows:    len(rows),
		columns: len(rows[0]),
		cells:   make([]Cell, 0, len(rows)*len(rows[0])),
	}

	for i, row := range rows {
		if len(row) != grid.columns {
			return nil, fmt.Errorf("%w: row %d has %d cells, row 0 has %d", ErrRaggedGrid, i, len(row), grid.columns)
		}
		for _, v := range row {
			if v != 0 {
				grid.cells = append(grid.cells, Wall)
			} else {
				grid.cells = append(grid.cells, Empty)
			}
		}
	}

	return grid, nil

}

// MustGrid is like NewGrid, but panics if the rows are invalid.
func MustGrid(rows [][]int) *Grid {
	grid, err := NewGrid(rows)
	if err != nil {
		panic(err)
	}
	return grid
}

// DefaultGrid returns the 20 × 20 maze the game ships with. The player starts in the middle and the exit is in the
// +X, +Z corner.
func DefaultGrid() *Grid {
	return MustGrid([][]int{
		{0, 0, 0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0},
		{0, 1, 1, 1, 0, 1, 0, 1, 1, 0, 0, 1, 1, 1, 0, 1, 0, 1, 1, 0},
		{0, 1, 0, 1, 0, 0, 0, 0, 1, 0, 1, 1, 1, 1, 1, 0, 0, 0, 0, 0},
		{0, 0, 0, 1, 1, 1, 1, 1, 1, 0, 1, 0, 0, 0, 1, 0, 1, 1, 1, 0},
		{1, 1, 0, 1, 0, 1, 0, 0, 0, 0, 1, 0, 1, 0, 1, 0, 0, 0, 1, 0},
		{0, 0, 0, 0, 0, 1, 0, 1, 1, 0, 0, 0, 1, 0, 0, 0, 1, 0, 1, 0},
		{0, 1, 1, 1, 0, 1, 0, 1, 0, 1, 1, 1, 1, 0, 1, 1, 1, 0, 1, 0},
		{0, 0, 1, 0, 0, 1, 0, 1, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 1, 1},
		{1, 1, 1, 0, 1, 0, 0, 0, 1, 1, 0, 1, 1, 1, 1, 0, 1, 0, 1, 0},
		{1, 0, 0, 0, 1, 0, 1, 0, 1, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0},
		{1, 0, 1, 0, 1, 0, 1, 0, 0, 0, 0, 1, 0, 1, 1, 0, 1, 1, 1, 0},
		{1, 0, 1, 0, 1, 0, 1, 0, 1, 1, 1, 1, 1, 0, 0, 0, 1, 0, 1, 0},
		{0, 0, 1, 0, 0, 0, 0, 0, 0, 1, 0, 1, 1, 1, 1, 1, 1, 0, 1, 0},
		{0, 1, 1, 0, 1, 1, 1, 1, 0, 1, 0, 1, 1, 0, 0, 0, 0, 0, 0, 0},
		{0, 1, 1, 0, 0, 0, 0, 1, 0, 1, 0, 1, 1, 0, 1, 0, 1, 1, 1, 1},
		{1, 1, 1, 1, 1, 1, 0, 1, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 1, 0, 1, 1, 0, 1, 1, 1, 1, 1, 0, 1, 0},
		{0, 1, 1, 1, 0, 1, 0, 1, 0, 1, 1, 0, 0, 0, 0, 1, 1, 0, 1, 0},
		{0, 1, 0, 0, 0, 1, 1, 1, 0, 0, 0, 1, 1, 1, 0, 1, 0, 0, 1, 0},
		{0, 0, 0, 1, 1, 0, 0, 0, 0, 1, 0, 0, 1, 0, 0, 1, 1, 1, 1, 0},
	})
}

// Rows returns the number of rows in the Grid.
func (grid *Grid) Rows() int {
	return grid.rows
}

// Columns returns the number of columns in the Grid.
func (grid *Grid) Columns() int {
	return grid.columns
}

// At returns the Cell at the given row and column. It panics if either is out of range.
func (grid *Grid) At(row, column int) Cell {
	if row < 0 || row >= grid.rows || column < 0 || column >= grid.columns {
		panic(fmt.Sprintf("maze: cell (%d, %d) is outside of a %d × %d grid", row, column, grid.rows, grid.columns))
	}
	return grid.cells[row*grid.columns+column]
}

// IsWall returns true if the cell at the given row and column is a wall. Cells outside the Grid are not walls.
func (grid *Grid) IsWall(row, column int) bool {
	if row < 0 || row >= grid.rows || column < 0 || column >= grid.columns {
		return false
	}
	return grid.cells[row*grid.columns+column] == Wall
}

// WallCount returns the number of wall cells in the Grid.
func (grid *Grid) WallCount() int {
	count := 0
	for _, c := range grid.cells {
		if c == Wall {
			count++
		}
	}
	return count
}

// String draws the Grid with '#' for walls and '.' for empty cells, one row per line.
func (grid *Grid) String() string {
	var b strings.Builder
	for r := 0; r < grid.rows; r++ {
		for c := 0; c < grid.columns; c++ {
			if grid.At(r, c) == Wall {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		if r < grid.rows-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
