package utils

import (
	"fmt"
	"io"
	"log"
	"os"
)

// Logger is a custom logger type
type Logger struct {
	logger *log.Logger
}

// NewLogger creates a new logger instance writing to w
func NewLogger(w io.Writer) *Logger {
	return &Logger{
		logger: log.New(w, "", log.LstdFlags),
	}
}

// NewFileLogger creates a logger appending to the file at filePath
func NewFileLogger(filePath string) (*Logger, error) {
	file, err := os.OpenFile(filePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return NewLogger(file), nil
}

// Info logs an info message
func (l *Logger) Info(format string, args ...interface{}) {
	l.logger.Printf("INFO: "+format, args...)
}

// Warn logs a warning message
func (l *Logger) Warn(format string, args ...interface{}) {
	l.logger.Printf("WARN: "+format, args...)
}

// Error logs an error message
func (l *Logger) Error(format string, args ...interface{}) {
	l.logger.Printf("ERROR: "+format, args...)
}
