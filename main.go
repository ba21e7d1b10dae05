package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/beka-birhanu/vinom-maze/config"
	"github.com/beka-birhanu/vinom-maze/infrastruture/logger"
	"github.com/beka-birhanu/vinom-maze/infrastruture/random"
	"github.com/beka-birhanu/vinom-maze/infrastruture/terminal"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/service"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/gdamore/tcell/v2"
	"github.com/gookit/color"
)

// Global variables for dependencies
var (
	appLogger     *logger.Logger
	genLogger     *logger.Logger
	heldLogs      bytes.Buffer
	chooser       *random.Source
	animator      *terminal.Animator
	mazeGenerator i.Generator
)

func newLogger(name string, c color.Color, w io.Writer) *logger.Logger {
	l, err := logger.New(name, c, w)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Creating %s logger: %v\n", name, err)
		os.Exit(1)
	}
	l.SetDebug(config.Envs.LogLevel == "debug")
	return l
}

// logWriter picks where log lines go. A live animation owns the terminal, so
// logs are held in held until the screen is released.
func logWriter(animate bool, held *bytes.Buffer) io.Writer {
	if animate {
		return held
	}
	return os.Stderr
}

func initLoggers() {
	out := logWriter(config.Envs.Animate, &heldLogs)
	appLogger = newLogger("APP", config.ColorGreen, out)
	genLogger = newLogger("GENERATOR", config.ColorCyan, out)
}

func initChooser() {
	chooser = random.NewSource(config.Envs.Seed)
	appLogger.Info(fmt.Sprintf("Random source initialized: Seed=%d", chooser.Seed()))
}

func initAnimator() {
	if !config.Envs.Animate {
		return
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fatal(fmt.Sprintf("Creating terminal screen: %v", err))
	}

	delay := time.Duration(config.Envs.FrameDelayMs) * time.Millisecond
	animator, err = terminal.NewAnimator(screen, delay, config.Envs.OpenChar)
	if err != nil {
		fatal(fmt.Sprintf("Initializing terminal screen: %v", err))
	}
	appLogger.Info("Terminal animator initialized")
}

func initMazeGenerator() {
	opts := &service.Options{}
	if animator != nil {
		opts.Observer = animator
	}

	generator, err := service.NewMazeGenerator(chooser, genLogger, opts)
	if err != nil {
		fatal(fmt.Sprintf("Creating maze generator: %v", err))
	}
	mazeGenerator = generator
	appLogger.Info("Maze generator initialized")
}

// closeAnimator releases the terminal and replays the held-back logs.
func closeAnimator() {
	if animator != nil {
		animator.Close()
		animator = nil
	}
	_, _ = heldLogs.WriteTo(os.Stderr)
}

// fatal logs msg, restores the terminal and exits.
func fatal(msg string) {
	appLogger.Error(msg)
	closeAnimator()
	os.Exit(1)
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	initLoggers()
	initChooser()
	initAnimator()
	initMazeGenerator()
	defer closeAnimator()

	if animator != nil {
		go animator.Watch(cancel)
	}

	start := maze.From(config.Envs.StartX, config.Envs.StartY)
	res, err := mazeGenerator.Generate(ctx, config.Envs.MazeWidth, config.Envs.MazeHeight, start)
	closeAnimator()
	if err != nil {
		fatal(fmt.Sprintf("Generating maze: %v", err))
	}

	fmt.Print(res.Grid.Render(config.Envs.OpenChar))
}
