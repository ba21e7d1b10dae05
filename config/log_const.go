package config

import "github.com/gookit/color"

// Level colours for log lines
const (
	LogErrorColor   = color.FgRed
	LogWarningColor = color.FgYellow
	LogInfoColor    = color.FgGreen
	LogDebugColor   = color.FgGray
)

// Color constants for logger names
const (
	ColorBlue    = color.FgBlue
	ColorGreen   = color.FgGreen
	ColorMagenta = color.FgMagenta
	ColorCyan    = color.FgCyan
)
