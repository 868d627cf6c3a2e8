// Package chartlog is the repository's leveled logger: a thin gate on top
// of the standard library logger, cheap enough to leave debug calls in the
// layout and cursor paths.
package chartlog

import (
	"fmt"
	"log"
	"os"
	"strings"
	"sync/atomic"
	"time"
)

// Level represents severity.
type Level int32

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String returns the log line prefix for the level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

func parseLevel(s string) (Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, true
	case "info":
		return LevelInfo, true
	case "warn", "warning":
		return LevelWarn, true
	case "error":
		return LevelError, true
	}
	return LevelInfo, false
}

var currentLevel atomic.Int32

var baseLogger = log.New(os.Stderr, "", log.Ldate|log.Ltime|log.Lmicroseconds)

func init() {
	currentLevel.Store(int32(LevelInfo))
	if v := os.Getenv("CHART_LOG"); v != "" {
		SetLevel(v)
	}
}

// SetLevel parses and sets the global log level. Unknown names are ignored.
func SetLevel(s string) {
	if l, ok := parseLevel(s); ok {
		currentLevel.Store(int32(l))
	}
}

// GetLevel returns the current global log level.
func GetLevel() Level { return Level(currentLevel.Load()) }

func logf(l Level, format string, args ...interface{}) {
	if l < GetLevel() {
		return
	}
	// messages without args pass through unformatted so literal %
	// characters survive
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	baseLogger.Printf("[%s] %s", l, msg)
}

func Debugf(format string, a ...interface{}) { logf(LevelDebug, format, a...) }
func Infof(format string, a ...interface{})  { logf(LevelInfo, format, a...) }
func Warnf(format string, a ...interface{})  { logf(LevelWarn, format, a...) }
func Errorf(format string, a ...interface{}) { logf(LevelError, format, a...) }

// TimeTrack logs the elapsed time since start at debug level.
func TimeTrack(start time.Time, label string) {
	Debugf("%s took %s", label, time.Since(start))
}
