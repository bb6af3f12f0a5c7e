package tool

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/RainbowTabitha/BoardDownloaderMPN/internal/config"
)

// fakeDownloader writes fixed content, or fails, and counts calls
type fakeDownloader struct {
	content []byte
	err     error
	calls   int
}

func (f *fakeDownloader) Download(fileURL string, w io.Writer) error {
	f.calls++
	if f.err != nil {
		// Simulate a partial write before the transport failure
		w.Write([]byte("partial"))
		return f.err
	}
	_, err := w.Write(f.content)
	return err
}

func TestEnsureToolDownloadsOnce(t *testing.T) {
	cfg := config.NewWithDir(t.TempDir())
	dl := &fakeDownloader{content: []byte("tool binary")}
	provisioner := NewProvisioner(cfg, dl)

	path, err := provisioner.EnsureTool()
	if err != nil {
		t.Fatalf("EnsureTool failed: %v", err)
	}
	if path != cfg.ToolPath {
		t.Errorf("Expected tool path %s, got %s", cfg.ToolPath, path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read installed tool: %v", err)
	}
	if string(content) != "tool binary" {
		t.Errorf("Unexpected tool content: %q", content)
	}

	// Second call must be a stat-only no-op
	path2, err := provisioner.EnsureTool()
	if err != nil {
		t.Fatalf("Second EnsureTool failed: %v", err)
	}
	if path2 != path {
		t.Errorf("Expected same path, got %s then %s", path, path2)
	}
	if dl.calls != 1 {
		t.Errorf("Expected exactly 1 download, got %d", dl.calls)
	}
}

func TestEnsureToolExistingBinary(t *testing.T) {
	cfg := config.NewWithDir(t.TempDir())
	if err := os.WriteFile(cfg.ToolPath, []byte("already installed"), 0o755); err != nil {
		t.Fatalf("Failed to pre-install tool: %v", err)
	}

	dl := &fakeDownloader{content: []byte("new binary")}
	provisioner := NewProvisioner(cfg, dl)

	path, err := provisioner.EnsureTool()
	if err != nil {
		t.Fatalf("EnsureTool failed: %v", err)
	}
	if path != cfg.ToolPath {
		t.Errorf("Expected tool path %s, got %s", cfg.ToolPath, path)
	}
	if dl.calls != 0 {
		t.Errorf("Expected no download for installed tool, got %d", dl.calls)
	}

	// No version check: the existing binary stays untouched
	content, _ := os.ReadFile(path)
	if string(content) != "already installed" {
		t.Errorf("Installed binary was replaced: %q", content)
	}
}

func TestEnsureToolDownloadFailure(t *testing.T) {
	cfg := config.NewWithDir(t.TempDir())
	dl := &fakeDownloader{err: errors.New("connection reset")}
	provisioner := NewProvisioner(cfg, dl)

	_, err := provisioner.EnsureTool()
	if err == nil {
		t.Fatal("Expected error for failed download, got nil")
	}
	if !errors.Is(err, ErrToolProvision) {
		t.Errorf("Expected ErrToolProvision, got %v", err)
	}

	// The failed download must not leave anything the existence check
	// would treat as installed
	if _, statErr := os.Stat(cfg.ToolPath); !os.IsNotExist(statErr) {
		t.Error("Partial download left a file at the tool path")
	}

	// No stray temp files either
	entries, readErr := os.ReadDir(cfg.ConfigDir)
	if readErr != nil {
		t.Fatalf("Failed to read config dir: %v", readErr)
	}
	for _, e := range entries {
		t.Errorf("Unexpected leftover file: %s", e.Name())
	}
}

func TestEnsureToolCreatesMissingDir(t *testing.T) {
	base := t.TempDir()
	cfg := config.NewWithDir(filepath.Join(base, "nested", "config"))
	dl := &fakeDownloader{content: []byte("tool")}
	provisioner := NewProvisioner(cfg, dl)

	if _, err := provisioner.EnsureTool(); err != nil {
		t.Fatalf("EnsureTool failed: %v", err)
	}
	if _, err := os.Stat(cfg.ToolPath); err != nil {
		t.Errorf("Tool not installed: %v", err)
	}
}
