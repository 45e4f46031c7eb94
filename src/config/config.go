package config

import "time"

const (
	DefaultNumFloors    = 10
	DefaultStartFloor   = 1
	DefaultTickInterval = 0 * time.Millisecond
	DefaultLogLevel     = "info"
	DefaultLogFile      = ""
	DefaultEnvFile      = ".env"
)
