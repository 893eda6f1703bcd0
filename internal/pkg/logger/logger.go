package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/adityarama/fleetops/internal/pkg/models"
)

var (
	globalLogger *logrus.Logger
	once         sync.Once
	mu           sync.RWMutex
)

// Init configures the global logger from application config. It should be
// called once during startup; before that, a default stderr logger is used.
func Init(config models.LoggerConfig) error {
	l := logrus.New()

	level, err := logrus.ParseLevel(config.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)

	l.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime:  "timestamp",
			logrus.FieldKeyLevel: "level",
			logrus.FieldKeyMsg:   "message",
		},
	})

	if config.FilePath != "" {
		dir := filepath.Dir(config.FilePath)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
		file, err := os.OpenFile(config.FilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		l.SetOutput(io.MultiWriter(os.Stdout, file))
	}

	mu.Lock()
	globalLogger = l
	mu.Unlock()
	return nil
}

func std() *logrus.Logger {
	mu.RLock()
	defer mu.RUnlock()

	if globalLogger == nil {
		once.Do(func() {
			globalLogger = logrus.New()
		})
	}
	return globalLogger
}

// Debug logs a debug message using the global logger
func Debug(msg string, fields ...Field) {
	std().WithFields(toLogrusFields(fields)).Debug(msg)
}

// Info logs an info message using the global logger
func Info(msg string, fields ...Field) {
	std().WithFields(toLogrusFields(fields)).Info(msg)
}

// Warn logs a warning message using the global logger
func Warn(msg string, fields ...Field) {
	std().WithFields(toLogrusFields(fields)).Warn(msg)
}

// Error logs an error message using the global logger
func Error(msg string, fields ...Field) {
	std().WithFields(toLogrusFields(fields)).Error(msg)
}

// Fatal logs a fatal message and exits using the global logger
func Fatal(msg string, fields ...Field) {
	std().WithFields(toLogrusFields(fields)).Fatal(msg)
}
