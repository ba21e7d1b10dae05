/*
Package maze provides the data model for rectangular perfect mazes.

It defines the `Grid` structure, a row-major collection of `Cell` values with
per-side wall state, and `Coords`, the value type used to address cells and to
compute their neighbours.

A grid starts with every side closed. Generation opens walls between pairs of
neighbouring cells, always on both cells at once, and marks cells revealed as
they join the spanning tree. Grids render to a text form with three lines of
three characters per cell.
*/
package maze

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidDimensions = errors.New("invalid maze dimensions")
	ErrInvalidDirection  = errors.New("not a wall direction")
	ErrOutOfBounds       = errors.New("coordinates out of bounds")
	ErrNoNeighbor        = errors.New("no neighbour across wall")
	ErrNotAdjacent       = errors.New("coordinates are not adjacent")
)

// Grid is a rectangular maze of Width x Height cells.
type Grid struct {
	cells  []Cell // cells in row-major order, addressed by y*width + x
	width  int
	height int
}

// New allocates a grid of the given dimensions with every cell closed and unrevealed.
func New(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}

	return &Grid{
		cells:  make([]Cell, width*height),
		width:  width,
		height: height,
	}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// Len returns the number of cells.
func (g *Grid) Len() int {
	return len(g.cells)
}

// InBounds reports whether c addresses a cell of this grid.
func (g *Grid) InBounds(c Coords) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// index returns the flat offset of c, or false when it falls outside the backing slice.
func (g *Grid) index(c Coords) (int, bool) {
	idx := c.ToIndex(g.width)
	if idx < 0 || idx >= len(g.cells) {
		return 0, false
	}
	return idx, true
}

// At returns a copy of the cell at c.
func (g *Grid) At(c Coords) (Cell, bool) {
	idx, ok := g.index(c)
	if !ok {
		return Cell{}, false
	}
	return g.cells[idx], true
}

// CellAt returns the cell at c for in-place mutation.
func (g *Grid) CellAt(c Coords) (*Cell, bool) {
	idx, ok := g.index(c)
	if !ok {
		return nil, false
	}
	return &g.cells[idx], true
}

// mustCellAt is CellAt for mutating callers. Unlike CellAt it rejects any
// coordinate outside the grid, not only those past the backing slice.
func (g *Grid) mustCellAt(c Coords) *Cell {
	if !g.InBounds(c) {
		panic(fmt.Errorf("%w: %s in %dx%d grid", ErrOutOfBounds, c, g.width, g.height))
	}
	return &g.cells[c.ToIndex(g.width)]
}

// RevealAt marks the cell at c as part of the maze. It panics when c is outside the grid.
func (g *Grid) RevealAt(c Coords) {
	g.mustCellAt(c).Reveal()
}

// UnvisitedNeighborsAt returns the neighbours of c that have not been revealed yet,
// or nil when there are none.
func (g *Grid) UnvisitedNeighborsAt(c Coords) []Coords {
	var unvisited []Coords
	for _, n := range c.AllNeighbors(g) {
		if cell, ok := g.CellAt(n); ok && !cell.Revealed() {
			unvisited = append(unvisited, n)
		}
	}
	return unvisited
}

// OpenWallAt removes wall d of the cell at c together with the matching wall
// of the neighbour on that side, and reveals both cells.
// Opening a wall on the edge of the grid panics.
func (g *Grid) OpenWallAt(c Coords, d Direction) {
	if !d.Valid() {
		panic(fmt.Errorf("%w: %d", ErrInvalidDirection, d))
	}
	cell := g.mustCellAt(c)

	n, ok := c.WallNeighbor(d, g)
	if !ok {
		panic(fmt.Errorf("%w: %s side of %s", ErrNoNeighbor, d, c))
	}
	nbor := g.mustCellAt(n)

	cell.Reveal()
	nbor.Reveal()
	cell.Open(d)
	nbor.Open(d.Opposite())
}

// Render draws the grid with three text lines per row of cells, using open for
// passages and revealed cell centres.
func (g *Grid) Render(open rune) string {
	var sb strings.Builder
	sb.Grow(g.height * 3 * (g.width*3 + 1))

	for row := 0; row < g.height; row++ {
		cells := g.cells[row*g.width : (row+1)*g.width]
		for line := 0; line < 3; line++ {
			for i := range cells {
				cells[i].writeLine(&sb, line, open)
			}
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}

// String provides a textual representation of the maze.
func (g *Grid) String() string {
	return g.Render(DefaultOpenChar)
}
