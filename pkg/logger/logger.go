// Package logger is the process-wide structured logger.
//
// Call sites pass a message followed by loose arguments:
//
//	logger.Info("Server starting", "address", addr)
//	logger.Error("Failed to bind request", err)
//
// Errors become the "error" field, string keys pair with the value after them.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	log zerolog.Logger
	mu  sync.RWMutex
)

func init() {
	log = newLogger("production", os.Stderr)
}

// Init configures the global logger for the given environment.
// development uses a console writer at debug level, anything else writes JSON at info.
func Init(environment string) {
	InitWithWriter(environment, os.Stderr)
}

// InitWithWriter is Init with an explicit output, used by tests.
func InitWithWriter(environment string, w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	log = newLogger(environment, w)
}

func newLogger(environment string, w io.Writer) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.MessageFieldName = "message"

	level := zerolog.InfoLevel
	out := w
	if isDevelopment(environment) {
		level = zerolog.DebugLevel
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

func isDevelopment(environment string) bool {
	switch strings.ToLower(environment) {
	case "development", "dev", "local":
		return true
	}
	return false
}

func current() *zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	l := log
	return &l
}

func Debug(msg string, args ...any) {
	withArgs(current().Debug(), args).Msg(msg)
}

func Info(msg string, args ...any) {
	withArgs(current().Info(), args).Msg(msg)
}

func Warn(msg string, args ...any) {
	withArgs(current().Warn(), args).Msg(msg)
}

func Error(msg string, args ...any) {
	withArgs(current().Error(), args).Msg(msg)
}

// Fatal logs and exits the process with status 1.
func Fatal(msg string, args ...any) {
	withArgs(current().Fatal(), args).Msg(msg)
}

func withArgs(e *zerolog.Event, args []any) *zerolog.Event {
	for i := 0; i < len(args); i++ {
		switch v := args[i].(type) {
		case error:
			e = e.Err(v)
		case string:
			if i+1 >= len(args) {
				e = e.Str("detail", v)
				continue
			}
			val := args[i+1]
			i++
			if err, ok := val.(error); ok {
				e = e.AnErr(v, err)
				continue
			}
			e = e.Interface(v, val)
		default:
			e = e.Interface(fmt.Sprintf("arg%d", i), v)
		}
	}
	return e
}
