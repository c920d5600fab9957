// Package zhlog is a small leveled logger shared by the CLI and the built-in converter
// registry. It never sits on the hot conversion path: Converter.Convert is a pure function
// with no I/O.
package zhlog

import (
	"fmt"
	"os"
	"strings"
)

type Level int

const (
	LevelError Level = iota
	LevelWarn
	LevelInfo
	LevelDebug
)

var currentLevel = LevelError

// InitFromEnv sets the level from ZHCONV_LOG_LEVEL (error|warn|info|debug), if set.
func InitFromEnv() {
	if v := os.Getenv("ZHCONV_LOG_LEVEL"); v != "" {
		SetLevel(v)
	}
}

// SetLevel sets the current logging level from a string.
func SetLevel(level string) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "error", "err":
		currentLevel = LevelError
	case "warn", "warning":
		currentLevel = LevelWarn
	case "info":
		currentLevel = LevelInfo
	case "debug":
		currentLevel = LevelDebug
	default:
		currentLevel = LevelError
	}
}

func shouldLog(level Level) bool { return level <= currentLevel }

func Errorf(format string, a ...interface{}) {
	if shouldLog(LevelError) {
		fmt.Fprintf(os.Stderr, format, a...)
	}
}

func Warnf(format string, a ...interface{}) {
	if shouldLog(LevelWarn) {
		fmt.Fprintf(os.Stderr, format, a...)
	}
}

func Infof(format string, a ...interface{}) {
	if shouldLog(LevelInfo) {
		fmt.Fprintf(os.Stderr, format, a...)
	}
}

func Debugf(format string, a ...interface{}) {
	if shouldLog(LevelDebug) {
		fmt.Fprintf(os.Stderr, format, a...)
	}
}
