package model

// JobStatus represents the status of a patch or board-download job
type JobStatus string

const (
	// JobStatusPending means the job is created but not started
	JobStatusPending JobStatus = "Pending"

	// JobStatusResolvingVersion means the job is listing file versions
	JobStatusResolvingVersion JobStatus = "Resolving version"

	// JobStatusProvisioningTool means the patcher tool is being installed
	JobStatusProvisioningTool JobStatus = "Provisioning tool"

	// JobStatusDownloadingBoard means the board file is downloading
	JobStatusDownloadingBoard JobStatus = "Downloading board"

	// JobStatusAwaitingRom means the job is waiting for a ROM choice
	JobStatusAwaitingRom JobStatus = "Waiting for ROM"

	// JobStatusPatching means the external patcher is running
	JobStatusPatching JobStatus = "Patching"

	// JobStatusAwaitingOutput means the job is waiting for a save location
	JobStatusAwaitingOutput JobStatus = "Waiting for output location"

	// JobStatusWritingOutput means the patched ROM is being written out
	JobStatusWritingOutput JobStatus = "Writing output"

	// JobStatusCompleted means the job finished successfully
	JobStatusCompleted JobStatus = "Completed"

	// JobStatusCancelled means the user declined a file dialog
	JobStatusCancelled JobStatus = "Cancelled"

	// JobStatusFailed means the job failed with an error
	JobStatusFailed JobStatus = "Failed"
)

// String returns the string representation of JobStatus
func (js JobStatus) String() string {
	return string(js)
}

// IsActive returns true if the job is in a running state
func (js JobStatus) IsActive() bool {
	switch js {
	case JobStatusResolvingVersion, JobStatusProvisioningTool,
		JobStatusDownloadingBoard, JobStatusAwaitingRom, JobStatusPatching,
		JobStatusAwaitingOutput, JobStatusWritingOutput:
		return true
	}
	return false
}

// IsFinished returns true if the job reached a terminal state
// (completed, cancelled, or failed)
func (js JobStatus) IsFinished() bool {
	return js == JobStatusCompleted || js == JobStatusCancelled || js == JobStatusFailed
}
