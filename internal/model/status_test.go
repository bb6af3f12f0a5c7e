package model

import "testing"

func TestJobStatusIsActive(t *testing.T) {
	activeStatuses := []JobStatus{
		JobStatusResolvingVersion,
		JobStatusProvisioningTool,
		JobStatusDownloadingBoard,
		JobStatusAwaitingRom,
		JobStatusPatching,
		JobStatusAwaitingOutput,
		JobStatusWritingOutput,
	}
	for _, status := range activeStatuses {
		if !status.IsActive() {
			t.Errorf("Status %s should be active", status)
		}
	}

	inactiveStatuses := []JobStatus{
		JobStatusPending,
		JobStatusCompleted,
		JobStatusCancelled,
		JobStatusFailed,
	}
	for _, status := range inactiveStatuses {
		if status.IsActive() {
			t.Errorf("Status %s should not be active", status)
		}
	}
}

func TestJobStatusIsFinished(t *testing.T) {
	finishedStatuses := []JobStatus{
		JobStatusCompleted,
		JobStatusCancelled,
		JobStatusFailed,
	}
	for _, status := range finishedStatuses {
		if !status.IsFinished() {
			t.Errorf("Status %s should be finished", status)
		}
	}

	unfinishedStatuses := []JobStatus{
		JobStatusPending,
		JobStatusResolvingVersion,
		JobStatusPatching,
	}
	for _, status := range unfinishedStatuses {
		if status.IsFinished() {
			t.Errorf("Status %s should not be finished", status)
		}
	}
}

func TestJobStatusString(t *testing.T) {
	if JobStatusCompleted.String() != "Completed" {
		t.Errorf("Unexpected string: %s", JobStatusCompleted.String())
	}
}
