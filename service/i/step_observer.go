package i

import "github.com/beka-birhanu/vinom-maze/maze"

// StepObserver is notified after every wall the generator opens.
type StepObserver interface {
	// OnStep receives the grid and the cell generation just advanced to.
	// The grid must not be mutated.
	OnStep(g *maze.Grid, current maze.Coords) error
}

// StepObserverFunc adapts a function to StepObserver.
type StepObserverFunc func(g *maze.Grid, current maze.Coords) error

// OnStep calls f(g, current).
func (f StepObserverFunc) OnStep(g *maze.Grid, current maze.Coords) error {
	return f(g, current)
}
