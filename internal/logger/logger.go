// Package logger configures the diagnostics log. The terminal belongs to the
// UI, so diagnostics always go to a file rather than stdout.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

// Options selects level, format and destination. Empty fields fall back to
// defaults; LOG_LEVEL and LOG_FORMAT override whatever is set here.
type Options struct {
	Level  string
	Format string
	Path   string
}

// New builds a logger writing to opts.Path (or DefaultPath). The returned
// closer releases the log file.
func New(opts Options) (*logrus.Logger, io.Closer, error) {
	path := opts.Path
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, nil, fmt.Errorf("resolve log path: %w", err)
		}
		path = p
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return configure(f, opts), f, nil
}

func configure(out io.Writer, opts Options) *logrus.Logger {
	log := logrus.New()

	level := opts.Level
	if env, ok := os.LookupEnv("LOG_LEVEL"); ok {
		level = env
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)

	format := opts.Format
	if env := os.Getenv("LOG_FORMAT"); env != "" {
		format = env
	}
	if strings.ToLower(format) == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			DisableColors: true,
		})
	}

	log.SetOutput(out)
	return log
}

// Discard returns a logger that drops everything. Used by tests.
func Discard() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// DefaultPath returns $XDG_STATE_HOME/belsin/belsin.log, defaulting the state
// home to ~/.local/state.
func DefaultPath() (string, error) {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		stateHome = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateHome, "belsin", "belsin.log"), nil
}
