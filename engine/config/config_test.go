package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.VertexLimit != DefaultVertexLimit {
		t.Errorf("VertexLimit = %d, want %d", cfg.VertexLimit, DefaultVertexLimit)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config does not validate: %v", err)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "combiner.toml")
	content := `
vertex_limit = 30000
workers = 2
log_level = "debug"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.VertexLimit != 30000 {
		t.Errorf("VertexLimit = %d, want 30000", cfg.VertexLimit)
	}
	if cfg.Workers != 2 {
		t.Errorf("Workers = %d, want 2", cfg.Workers)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	// unset keys keep their defaults
	if cfg.QueueSize != Default().QueueSize {
		t.Errorf("QueueSize = %d, want default %d", cfg.QueueSize, Default().QueueSize)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("Load of a missing file succeeded, want error")
	}

	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("vertex_limit = ["), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load of invalid TOML succeeded, want error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"vertex limit too small", func(c *Config) { c.VertexLimit = 3 }, true},
		{"smallest usable limit", func(c *Config) { c.VertexLimit = 4 }, false},
		{"zero workers", func(c *Config) { c.Workers = 0 }, true},
		{"negative queue", func(c *Config) { c.QueueSize = -1 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestWatcherReloads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "combiner.toml")
	if err := os.WriteFile(path, []byte("workers = 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	reloaded := make(chan *Config, 4)
	w, err := NewWatcher(path, func(cfg *Config) { reloaded <- cfg })
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	// give the watcher a moment to register before writing
	time.Sleep(50 * time.Millisecond)
	if err := os.WriteFile(path, []byte("workers = 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case cfg := <-reloaded:
		if cfg.Workers != 3 {
			t.Errorf("reloaded Workers = %d, want 3", cfg.Workers)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for the watcher to reload")
	}
}
