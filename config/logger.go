package config

import (
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// NewLogger builds the service logger: JSON-formatted logrus writing to
// stdout and to a size-rotated log file (10 MB per file, 5 backups kept).
func NewLogger(cfg *Config) *logrus.Logger {
	log := logrus.New()

	// Set formatter to JSON
	log.SetFormatter(&logrus.JSONFormatter{})

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	if cfg.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755); err == nil {
			rotator := &lumberjack.Logger{
				Filename:   cfg.LogFile,
				MaxSize:    10, // megabytes
				MaxBackups: 5,
			}
			log.SetOutput(io.MultiWriter(os.Stdout, rotator))
			return log
		}
		// Losing file logs should not stop the service; fall back to
		// stdout only.
	}

	log.SetOutput(os.Stdout)
	return log
}
