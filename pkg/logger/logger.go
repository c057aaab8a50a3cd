// Package logger provides the SDK's internal leveled logger. It is silent
// unless enabled, so library consumers never see output they did not ask
// for. Enable via SetLevel or the GAMMA_SDK_LOG_LEVEL environment variable
// (error, warn, info, debug).
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
	"sync/atomic"
)

// Level controls logger verbosity. Higher levels include all lower ones.
type Level int32

const (
	LevelSilent Level = iota
	LevelError
	LevelWarn
	LevelInfo
	LevelDebug
)

var (
	level atomic.Int32

	mu  sync.Mutex
	out = log.New(os.Stderr, "gamma-sdk ", log.LstdFlags)
)

func init() {
	level.Store(int32(levelFromEnv()))
}

func levelFromEnv() Level {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("GAMMA_SDK_LOG_LEVEL"))) {
	case "error":
		return LevelError
	case "warn", "warning":
		return LevelWarn
	case "info":
		return LevelInfo
	case "debug":
		return LevelDebug
	default:
		return LevelSilent
	}
}

// SetLevel overrides the current verbosity.
func SetLevel(l Level) { level.Store(int32(l)) }

// GetLevel returns the current verbosity.
func GetLevel() Level { return Level(level.Load()) }

// SetOutput redirects logger output, defaulting to stderr.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	out.SetOutput(w)
}

func logf(l Level, tag, format string, args ...any) {
	if Level(level.Load()) < l {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	out.Printf("%s %s", tag, fmt.Sprintf(format, args...))
}

// Error logs at error level.
func Error(format string, args ...any) { logf(LevelError, "ERROR", format, args...) }

// Warn logs at warn level.
func Warn(format string, args ...any) { logf(LevelWarn, "WARN", format, args...) }

// Info logs at info level.
func Info(format string, args ...any) { logf(LevelInfo, "INFO", format, args...) }

// Debug logs at debug level.
func Debug(format string, args ...any) { logf(LevelDebug, "DEBUG", format, args...) }
