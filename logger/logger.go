package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/road-fighter/config"
)

// Log is the process-wide logger; discards output until Init is called
var Log = newDiscard()

// Session is Log bound to the current session id
var Session = logrus.NewEntry(Log)

func newDiscard() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// New builds a logger writing to w with the configured level and format
// An unparsable level falls back to info
func New(cfg config.LogConfig, w io.Writer) *logrus.Logger {
	l := logrus.New()

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)

	// The screen is owned by the game, so no colors even when the file is a tty
	if strings.ToLower(cfg.Format) == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			DisableColors: true,
		})
	}

	l.SetOutput(w)
	return l
}

// Init opens the log file, installs the global logger and starts a new session id
// The returned closer flushes and closes the file
func Init(cfg config.LogConfig) (io.Closer, error) {
	if cfg.File == "" {
		Log = newDiscard()
		Session = logrus.NewEntry(Log).WithField("session", uuid.New().String())
		return io.NopCloser(nil), nil
	}

	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file %s: %w", cfg.File, err)
	}

	Log = New(cfg, f)
	Session = Log.WithField("session", uuid.New().String())
	return f, nil
}
