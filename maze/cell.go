package maze

import (
	"fmt"
	"strings"
)

const (
	// WallChar is drawn for closed sides and cell corners.
	WallChar = '#'
	// DefaultOpenChar is drawn for open sides and revealed cell centres.
	DefaultOpenChar = '.'
)

// Direction names a side of a cell. The numbering is cyclic, so the opposite
// side is always two steps away.
type Direction int

const (
	Top Direction = iota
	Right
	Bottom
	Left
)

// Directions lists every side in numeric order.
var Directions = [4]Direction{Top, Right, Bottom, Left}

// Opposite returns the side facing d on the neighbouring cell.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// Valid reports whether d is one of the four sides.
func (d Direction) Valid() bool {
	return d >= Top && d <= Left
}

func (d Direction) String() string {
	switch d {
	case Top:
		return "top"
	case Right:
		return "right"
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	}
	return fmt.Sprintf("direction(%d)", int(d))
}

// Wall is the state of one side of a cell.
type Wall uint8

const (
	Filled Wall = iota // Filled blocks movement. It is the default state.
	Empty              // Empty is a passage.
	Void               // Void is reserved for absent sides and is drawn like Filled.
)

func (w Wall) String() string {
	switch w {
	case Filled:
		return "filled"
	case Empty:
		return "empty"
	case Void:
		return "void"
	}
	return fmt.Sprintf("wall(%d)", uint8(w))
}

// Cell represents a single position in a maze grid.
// It holds the state of its four sides and whether generation has reached it.
type Cell struct {
	walls    [4]Wall // walls is indexed by Direction.
	revealed bool    // revealed is set once the cell joins the spanning tree.
}

// Wall returns the state of side d.
func (c *Cell) Wall(d Direction) Wall {
	return c.walls[d]
}

// IsOpen returns true if side d is a passage.
func (c *Cell) IsOpen(d Direction) bool {
	return c.walls[d] == Empty
}

// Revealed returns true once the cell has been incorporated into the maze.
func (c *Cell) Revealed() bool {
	return c.revealed
}

// Open turns side d into a passage. It only touches this cell; Grid.OpenWallAt
// keeps the neighbour in sync.
func (c *Cell) Open(d Direction) {
	c.walls[d] = Empty
}

// Reveal marks the cell as part of the maze.
func (c *Cell) Reveal() {
	c.revealed = true
}

func (c *Cell) sideChar(d Direction, open rune) rune {
	if c.walls[d] == Empty {
		return open
	}
	return WallChar
}

func (c *Cell) centreChar(open rune) rune {
	if c.revealed {
		return open
	}
	return WallChar
}

// writeLine writes one of the cell's three text lines: 0 is the top wall,
// 1 the centre, 2 the bottom wall.
func (c *Cell) writeLine(sb *strings.Builder, line int, open rune) {
	switch line {
	case 0, 2:
		side := Top
		if line == 2 {
			side = Bottom
		}
		sb.WriteRune(WallChar)
		sb.WriteRune(c.sideChar(side, open))
		sb.WriteRune(WallChar) // corner
	case 1:
		sb.WriteRune(c.sideChar(Left, open))
		sb.WriteRune(c.centreChar(open))
		sb.WriteRune(c.sideChar(Right, open))
	default:
		panic(fmt.Sprintf("maze: cell line %d out of range", line))
	}
}

// Render draws the cell as a 3x3 block using open for passages.
func (c *Cell) Render(open rune) string {
	var sb strings.Builder
	for line := 0; line < 3; line++ {
		c.writeLine(&sb, line, open)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// String draws the cell with DefaultOpenChar.
func (c *Cell) String() string {
	return c.Render(DefaultOpenChar)
}
