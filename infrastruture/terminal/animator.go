// Package terminal draws maze generation live in a tcell screen.
package terminal

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/gdamore/tcell/v2"
)

// CurrentChar marks the cell generation is standing on.
const CurrentChar = '@'

var ErrNilScreen = errors.New("animator requires a screen")

var (
	wallStyle    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	openStyle    = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	currentStyle = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
)

// Animator redraws the grid after every generation step.
type Animator struct {
	screen tcell.Screen
	delay  time.Duration
	open   rune
	frames int
}

// NewAnimator initialises screen and returns an animator drawing passages with open.
// delay is slept after each frame.
func NewAnimator(screen tcell.Screen, delay time.Duration, open rune) (*Animator, error) {
	if screen == nil {
		return nil, ErrNilScreen
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.HideCursor()

	return &Animator{
		screen: screen,
		delay:  delay,
		open:   open,
	}, nil
}

// OnStep draws one frame and waits for the frame delay.
func (a *Animator) OnStep(g *maze.Grid, current maze.Coords) error {
	a.Draw(g, current)
	if a.delay > 0 {
		time.Sleep(a.delay)
	}
	return nil
}

// Frames returns the number of frames drawn so far.
func (a *Animator) Frames() int {
	return a.frames
}

// Draw renders g into the screen, clipped to its size, and marks current.
func (a *Animator) Draw(g *maze.Grid, current maze.Coords) {
	a.screen.Clear()
	width, height := a.screen.Size()

	lines := strings.Split(strings.TrimSuffix(g.Render(a.open), "\n"), "\n")
	for y, line := range lines {
		if y >= height {
			break
		}
		for x, r := range []rune(line) {
			if x >= width {
				break
			}
			style := openStyle
			if r == maze.WallChar {
				style = wallStyle
			}
			a.screen.SetContent(x, y, r, nil, style)
		}
	}

	// Centre of the current cell in the 3x3 block layout.
	cx, cy := current.X*3+1, current.Y*3+1
	if cx < width && cy < height {
		a.screen.SetContent(cx, cy, CurrentChar, nil, currentStyle)
	}

	a.screen.Show()
	a.frames++
}

// Watch cancels generation when the user presses Escape, Ctrl-C or q.
// It returns once the screen is closed or a quit key is seen.
func (a *Animator) Watch(cancel context.CancelFunc) {
	for {
		ev := a.screen.PollEvent()
		if ev == nil {
			return
		}

		switch ev := ev.(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
				(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
				cancel()
				return
			}
		case *tcell.EventResize:
			a.screen.Sync()
		}
	}
}

// Close restores the terminal.
func (a *Animator) Close() {
	a.screen.Fini()
}
