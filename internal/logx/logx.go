// Package logx holds the shared logrus logger used across cmcutils.
//
// Library packages log through For(component) and only at debug or trace
// level; binaries call Setup once at start-up to pick level and format.
package logx

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

var (
	mu     sync.RWMutex
	logger = newLogger()
)

func newLogger() *log.Logger {
	l := log.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(log.InfoLevel)
	return l
}

// For returns an entry tagged with the given component name.
func For(component string) *log.Entry {
	mu.RLock()
	defer mu.RUnlock()
	return logger.WithField("component", component)
}

// Logger returns the underlying logger.
func Logger() *log.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// SetLogger replaces the shared logger. A nil logger restores the default.
func SetLogger(l *log.Logger) {
	mu.Lock()
	defer mu.Unlock()
	if l == nil {
		l = newLogger()
	}
	logger = l
}

// Setup configures level, format ("text" or "json") and output.
// A nil writer keeps the current output.
func Setup(level, format string, w io.Writer) error {
	lvl, err := log.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return fmt.Errorf("logx: %w", err)
	}

	mu.Lock()
	defer mu.Unlock()
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "text":
		logger.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	case "json":
		logger.SetFormatter(&log.JSONFormatter{TimestampFormat: time.RFC3339Nano})
	default:
		return fmt.Errorf("logx: unknown format %q", format)
	}
	logger.SetLevel(lvl)
	if w != nil {
		logger.SetOutput(w)
	}
	return nil
}
