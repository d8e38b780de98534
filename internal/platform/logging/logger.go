package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
)

var (
	// Logger is the process-wide logger. It discards output until Init or
	// SetOutput is called, so packages can log unconditionally.
	Logger = log.NewWithOptions(io.Discard, log.Options{})

	logFile *os.File
)

// Init opens a dated log file under dir. The TUI owns the terminal, so
// logs never go to stdout or stderr.
func Init(dir, level string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create log dir: %w", err)
	}
	name := fmt.Sprintf("nextround-%s.log", time.Now().Format("2006-01-02"))
	f, err := os.OpenFile(filepath.Join(dir, name), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	logFile = f
	return SetOutput(f, level)
}

// SetOutput points the logger at w. The CLI uses it to log to stderr.
func SetOutput(w io.Writer, level string) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("parse log level: %w", err)
	}
	Logger = log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Level:           lvl,
	})
	return nil
}

func Close() {
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
}

func Info(msg string, keyvals ...any)  { Logger.Info(msg, keyvals...) }
func Debug(msg string, keyvals ...any) { Logger.Debug(msg, keyvals...) }
func Warn(msg string, keyvals ...any)  { Logger.Warn(msg, keyvals...) }
func Error(msg string, keyvals ...any) { Logger.Error(msg, keyvals...) }

// Prefixed tags every line with a module name. It resolves Logger on each
// call, so it keeps working after Init or SetOutput swap the output.
type Prefixed string

// WithPrefix returns a logger tagged with a module name.
func WithPrefix(prefix string) Prefixed { return Prefixed(prefix) }

func (p Prefixed) logger() *log.Logger { return Logger.WithPrefix(string(p)) }

func (p Prefixed) Info(msg string, keyvals ...any)  { p.logger().Info(msg, keyvals...) }
func (p Prefixed) Debug(msg string, keyvals ...any) { p.logger().Debug(msg, keyvals...) }
func (p Prefixed) Warn(msg string, keyvals ...any)  { p.logger().Warn(msg, keyvals...) }
func (p Prefixed) Error(msg string, keyvals ...any) { p.logger().Error(msg, keyvals...) }
