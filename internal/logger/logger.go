// Package logger provides leveled diagnostics on standard error.
//
// Standard output is reserved for the version string and help text, so
// every progress and error message cryptkeep emits goes through here.
package logger

import (
	"fmt"
	stdlog "log"
	"os"
	"strings"
	"time"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var (
	currentLevel = LevelInfo
	logger       = stdlog.New(os.Stderr, "", 0)
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// SetLevel adjusts the minimum emitted level. Unknown names are ignored.
func SetLevel(level string) {
	switch strings.ToUpper(level) {
	case "DEBUG":
		currentLevel = LevelDebug
	case "INFO":
		currentLevel = LevelInfo
	case "WARN":
		currentLevel = LevelWarn
	case "ERROR":
		currentLevel = LevelError
	}
}

func log(level Level, format string, v ...any) {
	if level < currentLevel {
		return
	}

	timestamp := time.Now().Format("15:04:05")
	logger.Println(fmt.Sprintf("[%s] [%s] ", timestamp, level) + fmt.Sprintf(format, v...))
}

func Debug(format string, v ...any) { log(LevelDebug, format, v...) }

func Info(format string, v ...any) { log(LevelInfo, format, v...) }

func Warn(format string, v ...any) { log(LevelWarn, format, v...) }

func Error(format string, v ...any) { log(LevelError, format, v...) }
