package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"consolidator/pkg/consolidate"
)

func writeConfig(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Options != consolidate.DefaultOptions() {
		t.Fatalf("unexpected default options: %+v", cfg.Options)
	}
	if cfg.Log.Debug || cfg.Log.Level != "" {
		t.Fatalf("unexpected default log config: %+v", cfg.Log)
	}
}

func TestLoadOverrides(t *testing.T) {
	tests := []struct {
		name string
		file string
		body string
	}{
		{
			name: "toml",
			file: "consolidator.toml",
			body: `src = " lib "
output = "out/all.txt"

[log]
debug = true
level = "WARN"
`,
		},
		{
			name: "yaml",
			file: "consolidator.yaml",
			body: `src: " lib "
output: out/all.txt
log:
  debug: true
  level: WARN
`,
		},
		{
			name: "yml",
			file: "consolidator.yml",
			body: "src: lib\noutput: out/all.txt\nlog: {debug: true, level: warn}\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeConfig(t, tt.file, tt.body))
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if cfg.Options.SourceDir != "lib" {
				t.Fatalf("unexpected src: %q", cfg.Options.SourceDir)
			}
			if cfg.Options.OutputFile != "out/all.txt" {
				t.Fatalf("unexpected output: %q", cfg.Options.OutputFile)
			}
			if !cfg.Log.Debug {
				t.Fatalf("expected debug enabled")
			}
			if cfg.Log.Level != "warn" {
				t.Fatalf("unexpected level: %q", cfg.Log.Level)
			}
		})
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "partial.toml", "output = \"flat.txt\"\nsrc = \"   \"\n"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Options.SourceDir != consolidate.DefaultSourceDir {
		t.Fatalf("blank src should keep default, got %q", cfg.Options.SourceDir)
	}
	if cfg.Options.OutputFile != "flat.txt" {
		t.Fatalf("unexpected output: %q", cfg.Options.OutputFile)
	}
	if cfg.Log.Debug {
		t.Fatalf("absent log.debug should stay false")
	}
}

func TestLoadErrors(t *testing.T) {
	t.Run("unsupported extension", func(t *testing.T) {
		_, err := Load(writeConfig(t, "settings.json", "{}"))
		if !errors.Is(err, ErrUnsupportedFormat) {
			t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		if !errors.Is(err, os.ErrNotExist) {
			t.Fatalf("expected not-exist error, got %v", err)
		}
	})

	t.Run("invalid toml", func(t *testing.T) {
		if _, err := Load(writeConfig(t, "bad.toml", "src = [unterminated")); err == nil {
			t.Fatal("expected a parse error")
		}
	})

	t.Run("invalid yaml", func(t *testing.T) {
		if _, err := Load(writeConfig(t, "bad.yaml", "src: [unterminated")); err == nil {
			t.Fatal("expected a parse error")
		}
	})
}
