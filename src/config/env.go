package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// Env holds settings read from the environment, optionally seeded from a .env file.
type Env struct {
	Scenario     string
	LogLevel     string
	LogFile      string
	TickInterval time.Duration
}

// LoadEnv loads path into the process environment if it exists and reads the LIFTSIM_* variables.
// Variables already set in the environment win over the file.
func LoadEnv(path string) (Env, error) {
	if _, err := os.Stat(path); err == nil {
		if err := godotenv.Load(path); err != nil {
			return Env{}, errors.Wrapf(err, "load %s", path)
		}
	}
	env := Env{
		Scenario: os.Getenv("LIFTSIM_SCENARIO"),
		LogLevel: os.Getenv("LIFTSIM_LOG_LEVEL"),
		LogFile:  os.Getenv("LIFTSIM_LOG_FILE"),
	}
	if env.LogLevel == "" {
		env.LogLevel = DefaultLogLevel
	}
	if env.LogFile == "" {
		env.LogFile = DefaultLogFile
	}
	env.TickInterval = DefaultTickInterval
	if tick := os.Getenv("LIFTSIM_TICK"); tick != "" {
		interval, err := time.ParseDuration(tick)
		if err != nil {
			return Env{}, errors.Wrap(err, "LIFTSIM_TICK")
		}
		env.TickInterval = interval
	}
	return env, nil
}
