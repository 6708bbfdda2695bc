// ABOUTME: Logrus-based logger implementation with optional rotating file output
// ABOUTME: Implements the core Logger interface used across the pipeline

package logrus

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger implements the interfaces.Logger contract on top of logrus.
type Logger struct {
	log *logrus.Logger
}

// Options configures the logger.
type Options struct {
	// Level is the minimum level logged (debug/info/warn/error)
	Level string

	// File, when set, sends output to a size-rotated log file in
	// addition to stdout.
	File string
}

// New creates a configured logrus logger.
func New(opts Options) *Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	level, err := logrus.ParseLevel(opts.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	if opts.File != "" {
		rotated := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    100, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		}
		log.SetOutput(io.MultiWriter(os.Stdout, rotated))
	}

	return &Logger{log: log}
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Debug(msg)
}

// Info logs an info message
func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Info(msg)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Warn(msg)
}

// Error logs an error message
func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Error(msg)
}
