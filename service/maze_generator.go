package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/beka-birhanu/vinom-maze/infrastruture/random"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/google/uuid"
)

var (
	ErrStartOutOfBounds = errors.New("start coordinates outside maze")
	ErrMissingChooser   = errors.New("maze generator requires a chooser")
	ErrMissingLogger    = errors.New("maze generator requires a logger")
)

// Options tunes a MazeGenerator. A nil Options is valid.
type Options struct {
	Observer i.StepObserver // Observer, if set, is called after every opened wall.
}

// Result describes one finished generation run.
type Result = i.Result

var _ i.Generator = (*MazeGenerator)(nil)

// MazeGenerator carves perfect mazes with a randomized iterative depth-first search.
type MazeGenerator struct {
	chooser i.Chooser
	logger  i.Logger
	opts    *Options
}

// NewMazeGenerator creates a generator that draws its random choices from chooser.
func NewMazeGenerator(chooser i.Chooser, logger i.Logger, opts *Options) (*MazeGenerator, error) {
	if chooser == nil {
		return nil, ErrMissingChooser
	}
	if logger == nil {
		return nil, ErrMissingLogger
	}
	if opts == nil {
		opts = &Options{}
	}

	return &MazeGenerator{
		chooser: chooser,
		logger:  logger,
		opts:    opts,
	}, nil
}

// Generate builds a width x height perfect maze rooted at start.
//
// The walk keeps an explicit stack of the cells it came through. From the
// current cell it opens a wall to a random unrevealed neighbour and moves
// there; when the current cell has none left it pops the stack until it finds
// a cell that does. Generation ends when the stack is exhausted.
//
// ctx is only checked between steps.
func (mg *MazeGenerator) Generate(ctx context.Context, width, height int, start maze.Coords) (*Result, error) {
	grid, err := maze.New(width, height)
	if err != nil {
		mg.logger.Error(fmt.Sprintf("Creating grid: %s", err))
		return nil, err
	}
	if !grid.InBounds(start) {
		mg.logger.Error(fmt.Sprintf("Start %s outside %dx%d maze", start, width, height))
		return nil, fmt.Errorf("%w: %s in %dx%d", ErrStartOutOfBounds, start, width, height)
	}

	res := &Result{
		ID:    uuid.New(),
		Grid:  grid,
		Start: start,
	}
	if seeded, ok := mg.chooser.(i.SeededChooser); ok {
		res.Seed = seeded.Seed()
	}
	mg.logger.Info(fmt.Sprintf("Generating maze: ID=%s Size=%dx%d Start=%s Seed=%d", res.ID, width, height, start, res.Seed))
	began := time.Now()

	var stack []maze.Coords
	current := start
	grid.RevealAt(current)

	for {
		if err := ctx.Err(); err != nil {
			mg.logger.Warning(fmt.Sprintf("Generation interrupted: ID=%s Steps=%d", res.ID, res.Steps))
			return nil, err
		}

		nbors := grid.UnvisitedNeighborsAt(current)
		if nbors == nil {
			resumed, ok := mg.backtrack(grid, &stack)
			if !ok {
				break
			}
			res.Backtracks++
			mg.logger.Debug(fmt.Sprintf("Backtracked: ID=%s From=%s To=%s", res.ID, current, resumed))
			current = resumed
			continue
		}

		next := random.Choose(mg.chooser, nbors)
		grid.OpenWallAt(current, current.WallTo(next))
		grid.RevealAt(next)

		stack = append(stack, current)
		current = next
		res.Steps++

		if mg.opts.Observer != nil {
			if err := mg.opts.Observer.OnStep(grid, current); err != nil {
				mg.logger.Warning(fmt.Sprintf("Step observer stopped generation: ID=%s Err=%s", res.ID, err))
				return nil, err
			}
		}
	}

	res.Duration = time.Since(began)
	if err := grid.Validate(start); err != nil {
		mg.logger.Error(fmt.Sprintf("Generated maze failed validation: ID=%s Err=%s", res.ID, err))
		return nil, err
	}

	mg.logger.Info(fmt.Sprintf("Maze generated: ID=%s Steps=%d Backtracks=%d Duration=%s", res.ID, res.Steps, res.Backtracks, res.Duration))
	return res, nil
}

// backtrack pops the stack until it reaches a cell that still has an unrevealed
// neighbour. It returns false when the stack runs out.
func (mg *MazeGenerator) backtrack(grid *maze.Grid, stack *[]maze.Coords) (maze.Coords, bool) {
	for len(*stack) > 0 {
		last := len(*stack) - 1
		c := (*stack)[last]
		*stack = (*stack)[:last]

		if grid.UnvisitedNeighborsAt(c) != nil {
			return c, true
		}
	}
	return maze.Coords{}, false
}
