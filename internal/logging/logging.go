// Package logging builds the leveled loggers used across kwx.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	glog "github.com/goliatone/go-logger/glog"
)

// Logger is the logging surface kwx components depend on.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// Config selects the level, output format and destination.
type Config struct {
	Level  string    // trace, debug, info, warn, error
	Format string    // console (default), pretty or json
	Output io.Writer // defaults to os.Stderr; stdout carries command results
}

// Provider hands out named child loggers sharing one handler.
type Provider struct {
	handler slog.Handler
}

// New builds a Provider on go-logger's handlers and levels.
func New(cfg Config) (*Provider, error) {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	opts := &slog.HandlerOptions{
		Level:       normalizeLevel(cfg.Level),
		ReplaceAttr: replaceAttr,
	}

	var handler slog.Handler
	switch strings.ToLower(strings.TrimSpace(cfg.Format)) {
	case "", glog.LoggerTypeConsole:
		handler = slog.NewTextHandler(out, opts)
	case glog.LoggerTypePretty:
		handler = glog.NewColorConsoleHandler(out, opts)
	case glog.LoggerTypeJSON:
		handler = slog.NewJSONHandler(out, opts)
	default:
		return nil, fmt.Errorf("logging: unsupported format %q", cfg.Format)
	}

	return &Provider{handler: handler}, nil
}

// Get returns the logger for a component. A nil Provider yields Nop.
func (p *Provider) Get(name string) Logger {
	if p == nil {
		return Nop()
	}
	if name = strings.TrimSpace(name); name == "" {
		return slog.New(p.handler)
	}
	return slog.New(p.handler.WithAttrs([]slog.Attr{slog.String("logger", name)}))
}

// replaceAttr renders records the way go-logger's own loggers do: "ts" for
// the time key and lower-case level labels, including trace and fatal.
func replaceAttr(_ []string, a slog.Attr) slog.Attr {
	switch a.Key {
	case slog.TimeKey:
		a.Key = "ts"
	case slog.LevelKey:
		level, ok := a.Value.Any().(slog.Level)
		if !ok {
			return a
		}
		label, exists := glog.CustomLevels[level]
		if !exists {
			label = level.String()
		}
		a.Value = slog.StringValue(strings.ToLower(label))
	}
	return a
}

// normalizeLevel maps a config level name to a slog level. Unknown names
// fall back to warn.
func normalizeLevel(level string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case glog.Trace:
		return glog.LevelTrace
	case glog.Debug:
		return slog.LevelDebug
	case glog.Info:
		return slog.LevelInfo
	case glog.Error:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

type nop struct{}

func (nop) Debug(string, ...any) {}
func (nop) Info(string, ...any)  {}
func (nop) Warn(string, ...any)  {}
func (nop) Error(string, ...any) {}

// Nop returns a logger that discards everything.
func Nop() Logger { return nop{} }
