package model

import "time"

// PatchJob tracks one run of the patch pipeline. It exists only for the
// duration of the run and is never persisted.
type PatchJob struct {
	ID            string
	ProjectID     string
	ProjectName   string
	BoardFilePath string // temp board file, removed on any terminal state
	RomInputPath  string // user-chosen ROM image
	OutputPath    string // user-chosen destination for the patched ROM
	Status        JobStatus
	LastError     string // last error message if any
	StartedAt     time.Time
	FinishedAt    time.Time
}
