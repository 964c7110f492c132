package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default() does not validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	valid := Default()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "default", mutate: func(*Config) {}, wantErr: false},
		{name: "msaa off", mutate: func(c *Config) { c.MSAASampleCount = 1 }, wantErr: false},
		{name: "empty name", mutate: func(c *Config) { c.Name = "" }, wantErr: true},
		{name: "version without v prefix", mutate: func(c *Config) { c.Version = "1.0.0" }, wantErr: true},
		{name: "garbage version", mutate: func(c *Config) { c.Version = "latest" }, wantErr: true},
		{name: "zero width", mutate: func(c *Config) { c.WindowWidth = 0 }, wantErr: true},
		{name: "negative height", mutate: func(c *Config) { c.WindowHeight = -1 }, wantErr: true},
		{name: "negative tick rate", mutate: func(c *Config) { c.TickRate = -60 }, wantErr: true},
		{name: "negative frame limit", mutate: func(c *Config) { c.RenderFrameLimit = -1 }, wantErr: true},
		{name: "unsupported msaa", mutate: func(c *Config) { c.MSAASampleCount = 2 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidConfig) {
					t.Fatalf("got %v, want ErrInvalidConfig", err)
				}
			} else if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	write := func(t *testing.T, name, content string) string {
		t.Helper()
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
		return path
	}

	t.Run("full file", func(t *testing.T) {
		path := write(t, "full.yml", `
name: Demo
version: v2.3.4
window_width: 1280
window_height: 720
tick_rate: 120
msaa_sample_count: 1
vsync: false
profiling: true
`)
		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load() error: %v", err)
		}
		if cfg.Name != "Demo" || cfg.Version != "v2.3.4" {
			t.Errorf("identity = %q %q, want Demo v2.3.4", cfg.Name, cfg.Version)
		}
		if cfg.WindowWidth != 1280 || cfg.WindowHeight != 720 {
			t.Errorf("window = %dx%d, want 1280x720", cfg.WindowWidth, cfg.WindowHeight)
		}
		if cfg.TickRate != 120 || cfg.MSAASampleCount != 1 || cfg.VSync || !cfg.Profiling {
			t.Errorf("options not applied: %+v", cfg)
		}
	})

	t.Run("partial file keeps defaults", func(t *testing.T) {
		path := write(t, "partial.yml", "name: Partial\n")
		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load() error: %v", err)
		}
		def := Default()
		if cfg.Name != "Partial" {
			t.Errorf("Name = %q, want Partial", cfg.Name)
		}
		if cfg.Version != def.Version || cfg.WindowWidth != def.WindowWidth {
			t.Errorf("defaults not preserved: %+v", cfg)
		}
	})

	t.Run("invalid values rejected", func(t *testing.T) {
		path := write(t, "invalid.yml", "version: not-semver\n")
		if _, err := Load(path); !errors.Is(err, ErrInvalidConfig) {
			t.Fatalf("got %v, want ErrInvalidConfig", err)
		}
	})

	t.Run("malformed yaml rejected", func(t *testing.T) {
		path := write(t, "broken.yml", "name: [unclosed\n")
		if _, err := Load(path); err == nil {
			t.Fatal("expected a parse error")
		}
	})

	t.Run("missing file rejected", func(t *testing.T) {
		if _, err := Load(filepath.Join(dir, "absent.yml")); err == nil {
			t.Fatal("expected an error for a missing file")
		}
	})
}

func TestTitle(t *testing.T) {
	cfg := Config{Name: "Demo", Version: "v1.0.0"}
	if got := cfg.Title(); got != "Demo v1.0.0" {
		t.Fatalf("Title() = %q, want %q", got, "Demo v1.0.0")
	}
}
