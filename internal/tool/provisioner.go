package tool

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/RainbowTabitha/BoardDownloaderMPN/internal/config"
	"github.com/RainbowTabitha/BoardDownloaderMPN/internal/platform"
)

// ErrToolProvision reports a failed patcher-tool install. There is no
// substitute tool path, so this aborts the whole patch pipeline.
var ErrToolProvision = errors.New("failed to provision patcher tool")

// Downloader streams a remote file into a writer
type Downloader interface {
	Download(fileURL string, w io.Writer) error
}

// Provisioner installs the external patcher binary at its fixed config
// location on first use. Presence is idempotent: once installed the
// binary is reused forever, with no version check.
type Provisioner struct {
	toolPath string
	toolURL  string
	dl       Downloader
}

// NewProvisioner creates a provisioner for the configured tool location
func NewProvisioner(cfg *config.Config, dl Downloader) *Provisioner {
	return &Provisioner{
		toolPath: cfg.ToolPath,
		toolURL:  cfg.ToolURL,
		dl:       dl,
	}
}

// EnsureTool returns the local tool path, downloading the binary first
// if it is not installed yet. The download goes to a temp file that is
// renamed into place, so a partial download never looks installed.
func (p *Provisioner) EnsureTool() (string, error) {
	if _, err := os.Stat(p.toolPath); err == nil {
		return p.toolPath, nil
	}

	log.Printf("Patcher tool not found, downloading from %s", p.toolURL)

	dir := filepath.Dir(p.toolPath)
	if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
		return "", fmt.Errorf("%w: %v", ErrToolProvision, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(p.toolPath)+".download-*")
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrToolProvision, err)
	}

	if err := p.dl.Download(p.toolURL, tmp); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("%w: %v", ErrToolProvision, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("%w: %v", ErrToolProvision, err)
	}

	if err := os.Chmod(tmp.Name(), 0o755); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("%w: %v", ErrToolProvision, err)
	}
	if err := os.Rename(tmp.Name(), p.toolPath); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("%w: %v", ErrToolProvision, err)
	}

	log.Printf("Patcher tool installed at %s", p.toolPath)
	return p.toolPath, nil
}
