package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

var (
	mu          sync.Mutex
	initialized bool
	log         zerolog.Logger
	logFile     *os.File
)

// Init sets up the global logger with compact time format and file:line callers.
// If path is not empty, output is also written to that file until Close.
func Init(level zerolog.Level, path string) error {
	var out io.Writer = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"}
	var file *os.File
	if path != "" {
		var err error
		file, err = os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
		if err != nil {
			return errors.Wrapf(err, "open log file %s", path)
		}
		out = io.MultiWriter(out, file)
	}

	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return fmt.Sprintf("%s:%d", filepath.Base(file), line)
	}
	zerolog.TimeFieldFormat = time.TimeOnly
	zerolog.SetGlobalLevel(level)

	mu.Lock()
	defer mu.Unlock()
	closeFile()
	logFile = file
	log = zerolog.New(out).With().Timestamp().Caller().Logger()
	initialized = true
	return nil
}

// Get returns the global logger. Without Init, logging goes to stdout at the global level.
func Get() *zerolog.Logger {
	mu.Lock()
	defer mu.Unlock()
	if !initialized {
		log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"}).With().Timestamp().Logger()
		initialized = true
	}
	return &log
}

// Close closes the log file opened by Init. Later log lines only go to stdout.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if logFile == nil {
		return nil
	}
	log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"}).With().Timestamp().Caller().Logger()
	return closeFile()
}

func closeFile() error {
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return errors.Wrap(err, "close log file")
}

// ParseLevel parses names like "debug" or "info"; an empty name means info.
func ParseLevel(name string) (zerolog.Level, error) {
	if name == "" {
		return zerolog.InfoLevel, nil
	}
	level, err := zerolog.ParseLevel(name)
	if err != nil {
		return zerolog.NoLevel, errors.Wrapf(err, "log level %q", name)
	}
	return level, nil
}
