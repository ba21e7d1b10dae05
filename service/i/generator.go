package i

import (
	"context"
	"time"

	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/google/uuid"
)

// Result describes one finished generation run.
type Result struct {
	ID         uuid.UUID     // Run identifier, also used in log lines
	Grid       *maze.Grid    // The generated maze
	Start      maze.Coords   // Cell generation started from
	Seed       int64         // Seed of the chooser, 0 when it does not report one
	Steps      int           // Number of walls opened
	Backtracks int           // Number of times the walk resumed from an earlier cell
	Duration   time.Duration // Wall-clock generation time
}

// Generator builds perfect mazes.
type Generator interface {
	// Generate builds a width x height maze rooted at start.
	Generate(ctx context.Context, width, height int, start maze.Coords) (*Result, error)
}
