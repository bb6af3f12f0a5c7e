package config

import (
	"path/filepath"
	"testing"
)

func TestNewWithDir(t *testing.T) {
	dir := t.TempDir()
	cfg := NewWithDir(dir)

	if cfg.ConfigDir != dir {
		t.Errorf("Expected config dir %s, got %s", dir, cfg.ConfigDir)
	}
	if cfg.CacheDir != dir {
		t.Errorf("Expected cache dir %s, got %s", dir, cfg.CacheDir)
	}

	expectedTool := filepath.Join(dir, ToolFileName)
	if cfg.ToolPath != expectedTool {
		t.Errorf("Expected tool path %s, got %s", expectedTool, cfg.ToolPath)
	}

	if cfg.APIBaseURL != DefaultAPIBaseURL {
		t.Errorf("Expected default API base URL, got %s", cfg.APIBaseURL)
	}
	if cfg.ToolURL != DefaultToolURL {
		t.Errorf("Expected default tool URL, got %s", cfg.ToolURL)
	}
}

func TestNewCreatesDirectory(t *testing.T) {
	cfg, err := New()
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if cfg.ConfigDir == "" {
		t.Fatal("Config dir is empty")
	}
	if filepath.Base(cfg.ConfigDir) != AppDirName {
		t.Errorf("Expected config dir to end with %s, got %s", AppDirName, cfg.ConfigDir)
	}
}
