package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestSetupWritesJSONWithInitialFields(t *testing.T) {
	out := filepath.Join(t.TempDir(), "log.json")
	logger, err := Setup(Options{
		AppName:     "consolidator",
		AppVersion:  "1.2.3",
		OutputPaths: []string{out},
	})
	if err != nil {
		t.Fatalf("Setup() error = %v", err)
	}
	if Logger != logger || zap.L() != logger {
		t.Fatalf("Setup should install the logger globally")
	}

	logger.Info("hello", zap.String("key", "value"))
	logger.Debug("dropped at info level")
	_ = logger.Sync()

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected one log line, got %d: %q", len(lines), data)
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if entry["msg"] != "hello" || entry["key"] != "value" {
		t.Fatalf("unexpected entry: %v", entry)
	}
	if entry["appName"] != "consolidator" || entry["appVersion"] != "1.2.3" {
		t.Fatalf("missing initial fields: %v", entry)
	}
}

func TestSetupLevels(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want zapcore.Level
	}{
		{name: "production", opts: Options{}, want: zapcore.InfoLevel},
		{name: "debug", opts: Options{Debug: true}, want: zapcore.DebugLevel},
		{name: "override", opts: Options{Level: "error"}, want: zapcore.ErrorLevel},
		{name: "override debug mode", opts: Options{Debug: true, Level: "warn"}, want: zapcore.WarnLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.opts.OutputPaths = []string{filepath.Join(t.TempDir(), "log")}
			logger, err := Setup(tt.opts)
			if err != nil {
				t.Fatalf("Setup() error = %v", err)
			}
			if !logger.Core().Enabled(tt.want) {
				t.Fatalf("level %v should be enabled", tt.want)
			}
			if tt.want > zapcore.DebugLevel && logger.Core().Enabled(tt.want-1) {
				t.Fatalf("level %v should be disabled", tt.want-1)
			}
		})
	}
}

func TestSetupConsoleEncoding(t *testing.T) {
	out := filepath.Join(t.TempDir(), "log.txt")
	logger, err := Setup(Options{Console: true, OutputPaths: []string{out}})
	if err != nil {
		t.Fatalf("Setup() error = %v", err)
	}
	logger.Warn("careful")
	_ = logger.Sync()

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	line := string(data)
	if strings.HasPrefix(line, "{") || !strings.Contains(line, "careful") {
		t.Fatalf("expected console encoded line, got %q", line)
	}
}

func TestSetupInvalidLevel(t *testing.T) {
	logger, err := Setup(Options{Level: "loud"})
	if err == nil {
		t.Fatal("expected an error for an unknown level")
	}
	if logger == nil || Logger != logger {
		t.Fatalf("fallback logger should be installed")
	}
}
