package config

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

type Logging struct {
	Level      logrus.Level
	File       string
	MaxSize    int // megabytes
	MaxBackups int
	MaxAge     int // days
}

func NewLogging() (*Logging, error) {
	level := logrus.InfoLevel
	if Development() {
		level = logrus.DebugLevel
	}
	if levelStr, ok := os.LookupEnv("LOG_LEVEL"); ok && levelStr != "" {
		var err error
		if level, err = logrus.ParseLevel(levelStr); err != nil {
			return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
		}
	}

	maxSize, err := lookupInt("LOG_FILE_MAX_SIZE", 10)
	if err != nil {
		return nil, err
	}
	maxBackups, err := lookupInt("LOG_FILE_MAX_BACKUPS", 3)
	if err != nil {
		return nil, err
	}
	maxAge, err := lookupInt("LOG_FILE_MAX_AGE", 7)
	if err != nil {
		return nil, err
	}

	logging := &Logging{
		Level:      level,
		File:       os.Getenv("LOG_FILE"),
		MaxSize:    maxSize,
		MaxBackups: maxBackups,
		MaxAge:     maxAge,
	}

	return logging, nil
}

func (l Logging) Fields() logrus.Fields {
	return map[string]any{
		"level":            l.Level.String(),
		"file":             l.File,
		"file_max_size":    l.MaxSize,
		"file_max_backups": l.MaxBackups,
		"file_max_age":     l.MaxAge,
	}
}
