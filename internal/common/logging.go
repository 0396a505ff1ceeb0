package common

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	logger = log.New(os.Stderr, "[navtext] ", log.LstdFlags|log.Lmicroseconds)
)

func Logf(format string, args ...interface{}) {
	logger.Printf(format, args...)
}

func Fatalf(format string, args ...interface{}) {
	logger.Fatalf(format, args...)
}

// SetLogOutput redirects the package logger.
func SetLogOutput(w io.Writer) {
	logger.SetOutput(w)
}

type LogConfig struct {
	Directory  string `yaml:"directory"`
	MaxSizeMB  int    `yaml:"maxSizeMB"`
	MaxAgeDays int    `yaml:"maxAgeDays"`
	MaxBackups int    `yaml:"maxBackups"`
	Compress   bool   `yaml:"compress"`
	Quiet      bool   `yaml:"quiet"`
}

// SetupLogging sends log output to a rotating file in cfg.Directory in
// addition to stderr. Quiet drops the stderr copy. It returns a function
// closing the log file.
func SetupLogging(cfg LogConfig) (func() error, error) {
	if cfg.Directory == "" {
		if cfg.Quiet {
			logger.SetOutput(io.Discard)
		}
		return func() error { return nil }, nil
	}
	if err := os.MkdirAll(cfg.Directory, 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	rotator := &lumberjack.Logger{
		Filename:   filepath.Join(cfg.Directory, "navtext.log"),
		MaxSize:    cfg.MaxSizeMB,
		MaxAge:     cfg.MaxAgeDays,
		MaxBackups: cfg.MaxBackups,
		Compress:   cfg.Compress,
	}
	if cfg.Quiet {
		logger.SetOutput(rotator)
	} else {
		logger.SetOutput(io.MultiWriter(os.Stderr, rotator))
	}
	return rotator.Close, nil
}
