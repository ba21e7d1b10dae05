package main

import (
	"bytes"
	"os"
	"testing"

	"github.com/beka-birhanu/vinom-maze/config"
	"github.com/beka-birhanu/vinom-maze/infrastruture/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogWriter(t *testing.T) {
	t.Run("animation holds log lines", func(t *testing.T) {
		var held bytes.Buffer
		w := logWriter(true, &held)
		require.Same(t, &held, w)

		l, err := logger.New("APP", config.ColorGreen, w)
		require.NoError(t, err)
		l.Info("Maze generator initialized")

		assert.Contains(t, held.String(), "Maze generator initialized")
	})

	t.Run("no animation writes to stderr", func(t *testing.T) {
		var held bytes.Buffer
		w := logWriter(false, &held)
		assert.Equal(t, os.Stderr, w)
		assert.Zero(t, held.Len())
	})
}
