package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// AppDirName is the per-user directory holding the tool binary and icon cache
const AppDirName = "BoardDownloaderMPN"

// Remote endpoints
const (
	// DefaultAPIBaseURL is the PartyPlanner catalog service
	DefaultAPIBaseURL = "https://partyplannerapi.naylahanegan.com"

	// DefaultToolURL is the fixed release asset for the patcher CLI
	DefaultToolURL = "https://github.com/PartyPlanner64/PartyPlanner64/releases/download/v0.8.2/partyplanner64-cli-win.exe"

	// ToolFileName is the patcher binary's name inside the config dir
	ToolFileName = "partyplanner-cli.exe"
)

// Config holds the paths and endpoints the services need. It is built
// once at startup and passed explicitly so tests can point everything
// at a temp directory.
type Config struct {
	ConfigDir  string // per-user app directory
	CacheDir   string // icon cache, same directory as the original app
	ToolPath   string // where the patcher binary lives
	APIBaseURL string
	ToolURL    string
}

// New computes the per-OS config layout and ensures the directory exists
func New() (*Config, error) {
	dir, err := appConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve config directory: %w", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}
	return NewWithDir(dir), nil
}

// NewWithDir builds a Config rooted at an explicit directory.
// Tests use this with t.TempDir().
func NewWithDir(dir string) *Config {
	return &Config{
		ConfigDir:  dir,
		CacheDir:   dir,
		ToolPath:   filepath.Join(dir, ToolFileName),
		APIBaseURL: DefaultAPIBaseURL,
		ToolURL:    DefaultToolURL,
	}
}

// appConfigDir returns the platform-standard location for the app directory:
// %LOCALAPPDATA% on Windows, ~/Library/Application Support on macOS,
// ~/.config elsewhere.
func appConfigDir() (string, error) {
	switch runtime.GOOS {
	case "windows":
		base := os.Getenv("LOCALAPPDATA")
		if base == "" {
			return "", fmt.Errorf("LOCALAPPDATA is not set")
		}
		return filepath.Join(base, AppDirName), nil
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, "Library", "Application Support", AppDirName), nil
	default:
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", AppDirName), nil
	}
}
