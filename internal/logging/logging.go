// Package logging is a small leveled wrapper around the standard logger.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync/atomic"
)

// Level is a log severity.
type Level int32

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = map[string]Level{
	"debug":   LevelDebug,
	"info":    LevelInfo,
	"warn":    LevelWarn,
	"warning": LevelWarn,
	"error":   LevelError,
}

var currentLevel = int32(LevelInfo)

var baseLogger = log.New(os.Stderr, "", log.Ldate|log.Ltime)

// ParseLevel maps a level name to a Level.
func ParseLevel(s string) (Level, bool) {
	l, ok := levelNames[strings.ToLower(strings.TrimSpace(s))]
	return l, ok
}

// SetLevel sets the global level from its name. Unknown names are ignored.
func SetLevel(s string) {
	l, ok := ParseLevel(s)
	if !ok {
		return
	}
	atomic.StoreInt32(&currentLevel, int32(l))
}

// GetLevel returns the current global level.
func GetLevel() Level { return Level(atomic.LoadInt32(&currentLevel)) }

// SetOutput redirects log output, e.g. away from the terminal while the
// viewer owns the screen.
func SetOutput(w io.Writer) { baseLogger.SetOutput(w) }

func logf(l Level, format string, args ...any) {
	if GetLevel() > l {
		return
	}
	prefix := "INFO"
	switch l {
	case LevelDebug:
		prefix = "DEBUG"
	case LevelWarn:
		prefix = "WARN"
	case LevelError:
		prefix = "ERROR"
	}
	if len(args) == 0 {
		baseLogger.Printf("[%s] %s", prefix, format)
		return
	}
	baseLogger.Printf("[%s] %s", prefix, fmt.Sprintf(format, args...))
}

func Debugf(format string, a ...any) { logf(LevelDebug, format, a...) }
func Infof(format string, a ...any)  { logf(LevelInfo, format, a...) }
func Warnf(format string, a ...any)  { logf(LevelWarn, format, a...) }
func Errorf(format string, a ...any) { logf(LevelError, format, a...) }
