package logging

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"
)

// Logger is the global logger instance
var Logger *zap.Logger

// Options controls how Setup builds the logger.
type Options struct {
	Debug       bool     // development config: debug level, caller, stack traces on warn
	Level       string   // overrides the config's level when set ("debug", "info", ...)
	Console     bool     // human-readable console encoding instead of JSON
	AppName     string
	AppVersion  string
	OutputPaths []string // defaults to stderr
}

// Setup builds a logger from opts, installs it as Logger and as zap's global.
// On failure Logger falls back to zap.NewExample and the error is returned.
func Setup(opts Options) (*zap.Logger, error) {
	var cfg zap.Config

	if opts.Debug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}

	if opts.Level != "" {
		level, err := zap.ParseAtomicLevel(opts.Level)
		if err != nil {
			Logger = zap.NewExample()
			return Logger, fmt.Errorf("invalid log level %q: %w", opts.Level, err)
		}
		cfg.Level = level
	}

	if opts.Console {
		cfg.Encoding = "console"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		cfg.Encoding = "json"
	}

	if len(opts.OutputPaths) > 0 {
		cfg.OutputPaths = opts.OutputPaths
		cfg.ErrorOutputPaths = opts.OutputPaths
	}

	// Add default fields
	cfg.InitialFields = map[string]interface{}{
		"appName":    opts.AppName,
		"appVersion": opts.AppVersion,
	}

	logger, err := cfg.Build()
	if err != nil {
		Logger = zap.NewExample()
		return Logger, err
	}

	Logger = logger
	zap.ReplaceGlobals(Logger)
	return Logger, nil
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
