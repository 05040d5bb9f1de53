package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Mnwa/css-minify/config"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()
	if cfg.Level != 1 {
		t.Errorf("Level = %d, want 1", cfg.Level)
	}
	if cfg.Logging.Console.Level != "normal" {
		t.Errorf("Console.Level = %q, want normal", cfg.Logging.Console.Level)
	}
	if cfg.Logging.File.Level != "none" {
		t.Errorf("File.Level = %q, want none", cfg.Logging.File.Level)
	}
}

func TestLoadEmptyPathReturnsDefault(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error: %v", err)
	}
	if *cfg != *config.Default() {
		t.Errorf("Load(\"\") = %+v, want default", cfg)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cssminify.yaml")
	body := "level: 3\nlogging:\n  console:\n    level: debug\n  file:\n    level: none\n"
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Level != 3 {
		t.Errorf("Level = %d, want 3", cfg.Level)
	}
	if cfg.Logging.Console.Level != "debug" {
		t.Errorf("Console.Level = %q, want debug", cfg.Logging.Console.Level)
	}
}

func TestLoadRejectsInvalidLevel(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cssminify.yaml")
	body := "level: 9\nlogging:\n  console:\n    level: normal\n  file:\n    level: none\n"
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := config.Load(path); err == nil {
		t.Fatal("expected validation error for out-of-range level")
	}
}

func TestLoadRejectsUnknownField(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cssminify.yaml")
	body := "levl: 1\n"
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := config.Load(path); err == nil {
		t.Fatal("expected decode error for unknown field")
	}
}

func TestDumpRoundTrips(t *testing.T) {
	data, err := config.Dump(config.Default())
	if err != nil {
		t.Fatalf("Dump error: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("expected non-empty YAML output")
	}
	path := filepath.Join(t.TempDir(), "cssminify.yaml")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load of dumped config error: %v", err)
	}
	if *cfg != *config.Default() {
		t.Errorf("round-tripped config = %+v, want default", cfg)
	}
}
