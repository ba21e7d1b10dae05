package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the application's configuration values.
type Config struct {
	MazeWidth    int    // Number of cell columns
	MazeHeight   int    // Number of cell rows
	StartX       int    // Column generation starts from
	StartY       int    // Row generation starts from
	Seed         int64  // Random seed; 0 picks one from the clock
	OpenChar     rune   // Character drawn for passages and revealed cells
	Animate      bool   // Draw every generation step in the terminal
	FrameDelayMs int    // Pause between animation frames in milliseconds
	LogLevel     string // "debug" enables debug log lines
}

// Envs holds the application's configuration loaded from environment variables.
var Envs = initConfig()

// initConfig initializes and returns the application configuration.
// It loads environment variables from a .env file.
func initConfig() Config {
	// Load .env file if available
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	return Load()
}

// Load reads the configuration from the current environment, falling back to
// defaults for unset variables.
func Load() Config {
	return Config{
		MazeWidth:    getEnvAsIntWithDefault("MAZE_WIDTH", 15),
		MazeHeight:   getEnvAsIntWithDefault("MAZE_HEIGHT", 10),
		StartX:       getEnvAsIntWithDefault("MAZE_START_X", 0),
		StartY:       getEnvAsIntWithDefault("MAZE_START_Y", 0),
		Seed:         int64(getEnvAsIntWithDefault("MAZE_SEED", 0)),
		OpenChar:     getEnvAsOpenChar("MAZE_OPEN_CHAR", '.'),
		Animate:      getEnvAsBoolWithDefault("MAZE_ANIMATE", false),
		FrameDelayMs: getEnvAsIntWithDefault("MAZE_FRAME_DELAY_MS", 30),
		LogLevel:     strings.ToLower(getEnvWithDefault("MAZE_LOG_LEVEL", "info")),
	}
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if unset or empty.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntWithDefault retrieves an integer environment variable or logs a fatal error if it cannot be parsed.
func getEnvAsIntWithDefault(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists || valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be an integer: %v", key, err)
	}
	return value
}

// getEnvAsBoolWithDefault retrieves a boolean environment variable or logs a fatal error if it cannot be parsed.
func getEnvAsBoolWithDefault(key string, defaultValue bool) bool {
	valueStr, exists := os.LookupEnv(key)
	if !exists || valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be a boolean: %v", key, err)
	}
	return value
}

// getEnvAsOpenChar retrieves the open character or logs a fatal error if it is not one parseOpenChar accepts.
func getEnvAsOpenChar(key string, defaultValue rune) rune {
	valueStr, exists := os.LookupEnv(key)
	if !exists || valueStr == "" {
		return defaultValue
	}
	value, ok := parseOpenChar(valueStr)
	if !ok {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be \".\", \" \" or \"space\", got %q", key, valueStr)
	}
	return value
}

// parseOpenChar accepts ".", a single space or "space" in any case.
func parseOpenChar(value string) (rune, bool) {
	switch strings.ToLower(value) {
	case ".":
		return '.', true
	case " ", "space":
		return ' ', true
	}
	return 0, false
}
