// Package logger provides named, coloured, levelled loggers.
package logger

import (
	"errors"
	"io"
	"log"

	"github.com/beka-birhanu/vinom-maze/config"
	"github.com/gookit/color"
)

var (
	ErrEmptyName = errors.New("logger name is empty")
	ErrNilWriter = errors.New("logger writer is nil")
)

// Logger writes lines of the form "[NAME] [LEVEL] message".
type Logger struct {
	out   *log.Logger
	debug bool
}

// New creates a logger whose name is printed in c.
func New(name string, c color.Color, w io.Writer) (*Logger, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if w == nil {
		return nil, ErrNilWriter
	}

	prefix := c.Sprint("[" + name + "]") + " "
	return &Logger{
		out: log.New(w, prefix, log.LstdFlags|log.Lmsgprefix),
	}, nil
}

// SetDebug turns Debug output on or off.
func (l *Logger) SetDebug(enabled bool) {
	l.debug = enabled
}

// Info logs routine progress.
func (l *Logger) Info(msg string) {
	l.write(config.LogInfoColor, "INFO", msg)
}

// Warning logs a recoverable problem.
func (l *Logger) Warning(msg string) {
	l.write(config.LogWarningColor, "WARNING", msg)
}

// Error logs a failure.
func (l *Logger) Error(msg string) {
	l.write(config.LogErrorColor, "ERROR", msg)
}

// Debug logs only when debug output is enabled.
func (l *Logger) Debug(msg string) {
	if !l.debug {
		return
	}
	l.write(config.LogDebugColor, "DEBUG", msg)
}

func (l *Logger) write(c color.Color, level, msg string) {
	l.out.Print(c.Sprint("["+level+"]") + " " + msg)
}
