package config

import (
	"path/filepath"
	"runtime"
	"testing"
)

func TestGetConfigDir(t *testing.T) {
	dir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error: %v", err)
	}
	if dir == "" {
		t.Fatal("GetConfigDir() returned empty string")
	}
	// Should end with "graf"
	if filepath.Base(dir) != "graf" {
		t.Errorf("expected dir to end with 'graf', got %q", filepath.Base(dir))
	}
}

func TestGetConfigDirXDG(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("XDG test not applicable on Windows")
	}
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)
	dir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error: %v", err)
	}
	expected := filepath.Join(tmp, "graf")
	if dir != expected {
		t.Errorf("expected %q, got %q", expected, dir)
	}
}

func TestGetDataDir(t *testing.T) {
	dir, err := GetDataDir()
	if err != nil {
		t.Fatalf("GetDataDir() error: %v", err)
	}
	if dir == "" {
		t.Fatal("GetDataDir() returned empty string")
	}
	if filepath.Base(dir) != "graf" {
		t.Errorf("expected dir to end with 'graf', got %q", filepath.Base(dir))
	}
}

func TestSeriesDir(t *testing.T) {
	dir, err := GetSeriesDir()
	if err != nil {
		t.Fatalf("GetSeriesDir() error: %v", err)
	}
	if filepath.Base(dir) != "series" {
		t.Errorf("expected dir to end with 'series', got %q", filepath.Base(dir))
	}
}

func TestConfigPath(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("XDG test not applicable on Windows")
	}
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)
	path, err := GetConfigPath()
	if err != nil {
		t.Fatalf("GetConfigPath() error: %v", err)
	}
	if path != filepath.Join(tmp, "graf", "config.toml") {
		t.Errorf("unexpected config path %q", path)
	}
}

func TestEnsureDirs(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("XDG test not applicable on Windows")
	}
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmp, "cfg"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(tmp, "data"))
	if err := EnsureDirs(); err != nil {
		t.Fatalf("EnsureDirs() error: %v", err)
	}
	dir, _ := GetSeriesDir()
	if dir != filepath.Join(tmp, "data", "graf", "series") {
		t.Errorf("unexpected series dir %q", dir)
	}
}
