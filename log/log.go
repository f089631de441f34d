package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Levels accepted by LogMessage.
const (
	DEBUG = "DEBUG"
	INFO  = "INFO"
	WARN  = "WARN"
	ERROR = "ERROR"
)

// Stdlog carries regular traffic, Errlog failures. Both go to the console and,
// once EnableFileLog was called, to the rotating files as well.
var Stdlog, Errlog zerolog.Logger

var (
	mu  sync.Mutex
	now = time.Now
)

func init() {
	Stdlog = newLogger(os.Stdout)
	Errlog = newLogger(os.Stderr)
}

func newLogger(w io.Writer) zerolog.Logger {
	console := zerolog.ConsoleWriter{Out: w, TimeFormat: time.DateTime}
	return zerolog.New(console).With().Timestamp().Logger()
}

// SetLevel sets the global level ("debug", "info", "warn", "error", ...).
func SetLevel(level string) error {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return fmt.Errorf("log level %q: %w", level, err)
	}
	zerolog.SetGlobalLevel(lvl)
	return nil
}

// EnableFileLog tees Stdlog into <dir>/stdlog-N.log and Errlog into
// <dir>/errors-N.log, N being the third of the month (0, 1 or 2).
//
// It replaces the package loggers, which are read without locking: call it
// during startup, before other goroutines log.
func EnableFileLog(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create log dir %s: %w", dir, err)
	}

	mu.Lock()
	defer mu.Unlock()
	Stdlog = zerolog.New(zerolog.MultiLevelWriter(
		zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.DateTime},
		&rotatingWriter{dir: dir, kind: "stdlog"},
	)).With().Timestamp().Logger()
	Errlog = zerolog.New(zerolog.MultiLevelWriter(
		zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.DateTime},
		&rotatingWriter{dir: dir, kind: "errors"},
	)).With().Timestamp().Logger()
	return nil
}

// DisableFileLog goes back to console-only logging. Like EnableFileLog it
// must not race with logging goroutines.
func DisableFileLog() {
	mu.Lock()
	defer mu.Unlock()
	Stdlog = newLogger(os.Stdout)
	Errlog = newLogger(os.Stderr)
}

// LogMessage logs message at one of the DEBUG/INFO/WARN/ERROR levels.
func LogMessage(level, message string) {
	switch level {
	case DEBUG:
		Stdlog.Debug().Msg(message)
	case WARN:
		Stdlog.Warn().Msg(message)
	case ERROR:
		Errlog.Error().Msg(message)
	default:
		Stdlog.Info().Msg(message)
	}
}

// PrintIfErr logs *err with msg when it is set.
func PrintIfErr(msg string, err *error) {
	if err == nil || *err == nil {
		return
	}
	Errlog.Error().Err(*err).Msg(msg)
}

type rotatingWriter struct {
	dir, kind string
	mu        sync.Mutex
}

func (w *rotatingWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	path, suffix := getLogFilePath(w.dir, w.kind, now())
	rotateLogs(w.dir, w.kind, suffix)

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o666)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	return f.Write(p)
}

// getLogFilePath picks the file for t: days 1-9 use slot 0, 10-19 slot 1,
// the rest slot 2.
func getLogFilePath(dir, kind string, t time.Time) (string, int) {
	var suffix int
	switch day := t.Day(); {
	case day <= 9:
		suffix = 0
	case day <= 19:
		suffix = 1
	default:
		suffix = 2
	}
	return filepath.Join(dir, fmt.Sprintf("%s-%d.log", kind, suffix)), suffix
}

// rotateLogs removes the slot that comes after the current one, so the
// next third of the month starts from an empty file.
func rotateLogs(dir, kind string, currentSuffix int) {
	if currentSuffix < 0 || currentSuffix > 2 {
		return
	}
	next := filepath.Join(dir, fmt.Sprintf("%s-%d.log", kind, (currentSuffix+1)%3))
	if _, err := os.Stat(next); err == nil {
		_ = os.Remove(next)
	}
}
