package patch

import (
	"errors"
	"fmt"
)

// ErrNoVersions reports a project with no released files. The pipeline
// fails on it before any download or tool provisioning happens.
var ErrNoVersions = errors.New("no versions available for this project")

// ErrUserCancelled is the terminal outcome of a declined file dialog.
// It is a normal way for a job to end, not a failure.
var ErrUserCancelled = errors.New("cancelled by user")

// ErrBoardDownload reports a failed board-file download
var ErrBoardDownload = errors.New("failed to download board file")

// ToolExitError reports a non-zero exit status from the patcher tool
type ToolExitError struct {
	ExitCode int
}

func (e *ToolExitError) Error() string {
	return fmt.Sprintf("patcher tool exited with status %d", e.ExitCode)
}
