package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoordsNeighbors(t *testing.T) {
	t.Run("x neighbours away from border", func(t *testing.T) {
		assert.Equal(t, []Coords{From(0, 0), From(2, 0)}, From(1, 0).XNeighbors(10))
	})

	t.Run("x neighbours on border", func(t *testing.T) {
		assert.Equal(t, []Coords{From(1, 0)}, From(0, 0).XNeighbors(10))
		assert.Equal(t, []Coords{From(8, 3)}, From(9, 3).XNeighbors(10))
	})

	t.Run("y neighbours away from border", func(t *testing.T) {
		assert.Equal(t, []Coords{From(0, 0), From(0, 2)}, From(0, 1).YNeighbors(10))
	})

	t.Run("y neighbours on border", func(t *testing.T) {
		assert.Equal(t, []Coords{From(0, 1)}, From(0, 0).YNeighbors(10))
		assert.Equal(t, []Coords{From(4, 8)}, From(4, 9).YNeighbors(10))
	})

	t.Run("single column and row have no neighbours", func(t *testing.T) {
		assert.Empty(t, From(0, 0).XNeighbors(1))
		assert.Empty(t, From(0, 0).YNeighbors(1))
	})

	t.Run("all neighbours list x before y", func(t *testing.T) {
		g, err := New(3, 3)
		assert.NoError(t, err)

		assert.Equal(t, []Coords{From(0, 1), From(2, 1), From(1, 0), From(1, 2)}, From(1, 1).AllNeighbors(g))
		assert.Equal(t, []Coords{From(1, 0), From(0, 1)}, From(0, 0).AllNeighbors(g))
	})

	t.Run("neighbours stay inside the grid", func(t *testing.T) {
		const w, h = 4, 3
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				for _, n := range append(From(x, y).XNeighbors(w), From(x, y).YNeighbors(h)...) {
					assert.True(t, n.X >= 0 && n.X < w && n.Y >= 0 && n.Y < h, "neighbour %s of (%d,%d)", n, x, y)
				}
			}
		}
	})
}

func TestCoordsToIndex(t *testing.T) {
	assert.Equal(t, 0, From(0, 0).ToIndex(2))
	assert.Equal(t, 1, From(1, 0).ToIndex(2))
	assert.Equal(t, 2, From(0, 1).ToIndex(2))
	assert.Equal(t, 3, From(1, 1).ToIndex(2))
	assert.Equal(t, 23, From(3, 2).ToIndex(10))
}

func TestCoordsWallNeighbor(t *testing.T) {
	g, err := New(3, 2)
	assert.NoError(t, err)

	t.Run("interior sides", func(t *testing.T) {
		n, ok := From(1, 1).WallNeighbor(Top, g)
		assert.True(t, ok)
		assert.Equal(t, From(1, 0), n)

		n, ok = From(1, 0).WallNeighbor(Right, g)
		assert.True(t, ok)
		assert.Equal(t, From(2, 0), n)

		n, ok = From(1, 0).WallNeighbor(Bottom, g)
		assert.True(t, ok)
		assert.Equal(t, From(1, 1), n)

		n, ok = From(1, 0).WallNeighbor(Left, g)
		assert.True(t, ok)
		assert.Equal(t, From(0, 0), n)
	})

	t.Run("edges have no neighbour", func(t *testing.T) {
		_, ok := From(1, 0).WallNeighbor(Top, g)
		assert.False(t, ok)
		_, ok = From(2, 1).WallNeighbor(Right, g)
		assert.False(t, ok)
		_, ok = From(0, 1).WallNeighbor(Bottom, g)
		assert.False(t, ok)
		_, ok = From(0, 0).WallNeighbor(Left, g)
		assert.False(t, ok)
	})

	t.Run("invalid direction panics", func(t *testing.T) {
		assert.PanicsWithError(t, "not a wall direction: 4", func() {
			From(0, 0).WallNeighbor(Direction(4), g)
		})
		assert.Panics(t, func() {
			From(0, 0).WallNeighbor(Direction(-1), g)
		})
	})
}

func TestCoordsWallTo(t *testing.T) {
	c := From(5, 5)

	t.Run("each axis neighbour", func(t *testing.T) {
		assert.Equal(t, Top, c.WallTo(From(5, 4)))
		assert.Equal(t, Right, c.WallTo(From(6, 5)))
		assert.Equal(t, Bottom, c.WallTo(From(5, 6)))
		assert.Equal(t, Left, c.WallTo(From(4, 5)))
	})

	t.Run("reverse lookup gives the opposite side", func(t *testing.T) {
		for _, n := range []Coords{From(5, 4), From(6, 5), From(5, 6), From(4, 5)} {
			d := c.WallTo(n)
			assert.Equal(t, (d+2)%4, n.WallTo(c))
			assert.Equal(t, d.Opposite(), n.WallTo(c))
		}
	})

	t.Run("agrees with wall neighbour", func(t *testing.T) {
		g, err := New(10, 10)
		assert.NoError(t, err)
		for _, d := range Directions {
			n, ok := c.WallNeighbor(d, g)
			assert.True(t, ok)
			assert.Equal(t, d, c.WallTo(n))
		}
	})

	t.Run("non adjacent panics", func(t *testing.T) {
		assert.Panics(t, func() { c.WallTo(c) })
		assert.Panics(t, func() { c.WallTo(From(6, 6)) })
		assert.Panics(t, func() { c.WallTo(From(7, 5)) })
	})
}
