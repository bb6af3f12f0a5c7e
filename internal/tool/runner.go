package tool

import (
	"context"
	"errors"
	"os/exec"
	"runtime"
)

// WineCommand wraps the Windows-only patcher binary on other platforms
const WineCommand = "wine"

// Runner runs the provisioned patcher executable and reports its exit
// status. The pipeline stays platform-agnostic; any compatibility
// wrapping lives behind this interface.
type Runner interface {
	Run(ctx context.Context, exePath string, args []string) (int, error)
}

// ExecRunner runs the tool as a subprocess, wrapping it with wine on
// platforms that cannot execute the binary natively.
type ExecRunner struct{}

// Run executes the tool and returns its exit code. A non-zero exit is
// not an error here; err is reserved for failures to run at all.
func (ExecRunner) Run(ctx context.Context, exePath string, args []string) (int, error) {
	name, argv := buildCommand(runtime.GOOS, exePath, args)

	cmd := exec.CommandContext(ctx, name, argv...)
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return -1, err
	}
	return 0, nil
}

// buildCommand resolves the actual command line for the current platform
func buildCommand(goos, exePath string, args []string) (string, []string) {
	if goos == "windows" {
		return exePath, args
	}
	return WineCommand, append([]string{exePath}, args...)
}
