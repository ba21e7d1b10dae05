package maze

import (
	"errors"
	"fmt"
)

var ErrNotPerfect = errors.New("maze is not perfect")

// RevealedCount returns the number of revealed cells.
func (g *Grid) RevealedCount() int {
	count := 0
	for i := range g.cells {
		if g.cells[i].revealed {
			count++
		}
	}
	return count
}

// OpenPassages returns the number of open walls between pairs of cells. Each
// passage is counted once.
func (g *Grid) OpenPassages() int {
	count := 0
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			cell := &g.cells[From(x, y).ToIndex(g.width)]
			if x < g.width-1 && cell.IsOpen(Right) {
				count++
			}
			if y < g.height-1 && cell.IsOpen(Bottom) {
				count++
			}
		}
	}
	return count
}

// Validate checks that the grid is a perfect maze reachable from start: every
// cell revealed, both sides of every passage open, exactly Len()-1 passages and
// every cell connected to start.
func (g *Grid) Validate(start Coords) error {
	if !g.InBounds(start) {
		return fmt.Errorf("%w: start %s outside grid", ErrNotPerfect, start)
	}

	if revealed := g.RevealedCount(); revealed != g.Len() {
		return fmt.Errorf("%w: %d of %d cells revealed", ErrNotPerfect, revealed, g.Len())
	}

	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			c := From(x, y)
			cell := g.mustCellAt(c)
			for _, d := range Directions {
				if !cell.IsOpen(d) {
					continue
				}
				n, ok := c.WallNeighbor(d, g)
				if !ok {
					return fmt.Errorf("%w: %s open on the %s edge", ErrNotPerfect, c, d)
				}
				if !g.mustCellAt(n).IsOpen(d.Opposite()) {
					return fmt.Errorf("%w: passage %s->%s open on one side only", ErrNotPerfect, c, n)
				}
			}
		}
	}

	if edges := g.OpenPassages(); edges != g.Len()-1 {
		return fmt.Errorf("%w: %d passages for %d cells", ErrNotPerfect, edges, g.Len())
	}

	// With Len()-1 passages, reaching every cell means the passages form a tree.
	if reached := g.reachableFrom(start); reached != g.Len() {
		return fmt.Errorf("%w: %d of %d cells reachable from %s", ErrNotPerfect, reached, g.Len(), start)
	}

	return nil
}

// reachableFrom counts the cells connected to start through open walls.
func (g *Grid) reachableFrom(start Coords) int {
	seen := make([]bool, len(g.cells))
	seen[start.ToIndex(g.width)] = true
	stack := []Coords{start}
	reached := 1

	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		cell := g.mustCellAt(c)

		for _, d := range Directions {
			if !cell.IsOpen(d) {
				continue
			}
			n, ok := c.WallNeighbor(d, g)
			if !ok {
				continue
			}
			idx := n.ToIndex(g.width)
			if seen[idx] {
				continue
			}
			seen[idx] = true
			reached++
			stack = append(stack, n)
		}
	}

	return reached
}
