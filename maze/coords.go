package maze

import "fmt"

// Bounds is anything with rectangular dimensions that coordinates can be
// checked against.
type Bounds interface {
	Width() int
	Height() int
}

// Coords is a position in a grid's index space. It carries no bounds of its
// own; validity depends on the grid it is used with.
type Coords struct {
	X int // Column index
	Y int // Row index
}

// From constructs a Coords without validation.
func From(x, y int) Coords {
	return Coords{X: x, Y: y}
}

// ToIndex maps the coordinate to its row-major offset for a grid of the given width.
// The caller guarantees the coordinate lies inside the grid.
func (c Coords) ToIndex(width int) int {
	return c.Y*width + c.X
}

// String returns the coordinate as "(x,y)".
func (c Coords) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// XNeighbors returns the horizontally adjacent coordinates inside [0, width),
// left first.
func (c Coords) XNeighbors(width int) []Coords {
	nbors := make([]Coords, 0, 2)
	if c.X%width > 0 {
		nbors = append(nbors, From(c.X-1, c.Y))
	}
	if c.X%width < width-1 {
		nbors = append(nbors, From(c.X+1, c.Y))
	}
	return nbors
}

// YNeighbors returns the vertically adjacent coordinates inside [0, height),
// upper first.
func (c Coords) YNeighbors(height int) []Coords {
	nbors := make([]Coords, 0, 2)
	if c.Y%height > 0 {
		nbors = append(nbors, From(c.X, c.Y-1))
	}
	if c.Y%height < height-1 {
		nbors = append(nbors, From(c.X, c.Y+1))
	}
	return nbors
}

// AllNeighbors returns the x-neighbors followed by the y-neighbors.
// The order is not geometric.
func (c Coords) AllNeighbors(b Bounds) []Coords {
	return append(c.XNeighbors(b.Width()), c.YNeighbors(b.Height())...)
}

// WallNeighbor returns the coordinate on the other side of wall d.
// It reports false when that side faces the outside of the grid and
// panics when d is not one of the four directions.
func (c Coords) WallNeighbor(d Direction, b Bounds) (Coords, bool) {
	switch d {
	case Top:
		if c.Y == 0 {
			return Coords{}, false
		}
		return From(c.X, c.Y-1), true
	case Right:
		if c.X == b.Width()-1 {
			return Coords{}, false
		}
		return From(c.X+1, c.Y), true
	case Bottom:
		if c.Y == b.Height()-1 {
			return Coords{}, false
		}
		return From(c.X, c.Y+1), true
	case Left:
		if c.X == 0 {
			return Coords{}, false
		}
		return From(c.X-1, c.Y), true
	default:
		panic(fmt.Errorf("%w: %d", ErrInvalidDirection, d))
	}
}

// WallTo returns the direction from c toward other. The two coordinates must be
// exactly one step apart along a single axis; anything else panics.
func (c Coords) WallTo(other Coords) Direction {
	dx := c.X - other.X
	dy := c.Y - other.Y

	switch {
	case dx == 1 && dy == 0:
		return Left
	case dx == -1 && dy == 0:
		return Right
	case dy == 1 && dx == 0:
		return Top
	case dy == -1 && dx == 0:
		return Bottom
	}

	panic(fmt.Errorf("%w: %s and %s", ErrNotAdjacent, c, other))
}
