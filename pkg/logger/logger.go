package logger

import (
	"io"
	"log"
	"os"
	"strings"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// ParseLevel maps "debug", "info", "warn" and "error" to a Level. Anything
// else is info.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

type Logger struct {
	out   *log.Logger
	level Level
}

func New() *Logger { return NewWithOutput(os.Stderr, LevelInfo) }

func NewWithOutput(w io.Writer, level Level) *Logger {
	return &Logger{out: log.New(w, "", log.LstdFlags), level: level}
}

func (l *Logger) SetLevel(level Level) { l.level = level }

func (l *Logger) Debugf(format string, args ...any) {
	l.printf(LevelDebug, "[DEBUG] ", format, args...)
}
func (l *Logger) Infof(format string, args ...any) {
	l.printf(LevelInfo, "[INFO] ", format, args...)
}
func (l *Logger) Warnf(format string, args ...any) {
	l.printf(LevelWarn, "[WARN] ", format, args...)
}
func (l *Logger) Errorf(format string, args ...any) {
	l.printf(LevelError, "[ERROR] ", format, args...)
}

// Writer returns the destination of log lines, for libraries that want an io.Writer.
func (l *Logger) Writer() io.Writer { return l.out.Writer() }

func (l *Logger) printf(level Level, prefix, format string, args ...any) {
	if level < l.level {
		return
	}
	l.out.Printf(prefix+format, args...)
}
