package patch

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/RainbowTabitha/BoardDownloaderMPN/internal/catalog"
	"github.com/RainbowTabitha/BoardDownloaderMPN/internal/model"
	"github.com/RainbowTabitha/BoardDownloaderMPN/internal/tool"
)

// Service owns patch and board-download jobs. Jobs run on background
// goroutines; the UI observes them through the update callback, which
// is invoked from the job goroutine and must hand off to the render
// thread itself.
type Service struct {
	api     catalog.API
	tools   ToolProvider
	runner  tool.Runner
	picker  FilePicker
	workDir string

	jobs      map[string]*model.PatchJob
	jobsMutex sync.RWMutex
	onUpdate  func(*model.PatchJob) // callback for UI updates
}

// NewService creates a patch service. Intermediate patcher output is
// written under workDir.
func NewService(api catalog.API, tools ToolProvider, runner tool.Runner, picker FilePicker, workDir string) *Service {
	return &Service{
		api:     api,
		tools:   tools,
		runner:  runner,
		picker:  picker,
		workDir: workDir,
		jobs:    make(map[string]*model.PatchJob),
	}
}

// SetUpdateCallback sets the callback function for job updates
func (s *Service) SetUpdateCallback(callback func(*model.PatchJob)) {
	s.onUpdate = callback
}

// StartPatch launches the patch pipeline for a project on a background
// goroutine and returns the job immediately
func (s *Service) StartPatch(projectID, projectName string) *model.PatchJob {
	job := s.newJob(projectID, projectName)
	go func() {
		if err := s.runPatch(context.Background(), job); err != nil {
			log.Printf("Patch job %s ended: %v", job.ID, err)
		}
	}()
	return job
}

// RunPatch runs the patch pipeline synchronously. ErrUserCancelled is
// returned for a declined dialog; any other non-nil error is a failure.
func (s *Service) RunPatch(ctx context.Context, projectID, projectName string) (*model.PatchJob, error) {
	job := s.newJob(projectID, projectName)
	err := s.runPatch(ctx, job)
	return job, err
}

// StartBoardDownload launches the board-file download flow on a
// background goroutine and returns the job immediately
func (s *Service) StartBoardDownload(projectID, projectName string) *model.PatchJob {
	job := s.newJob(projectID, projectName)
	go func() {
		if err := s.runBoardDownload(job); err != nil {
			log.Printf("Board download job %s ended: %v", job.ID, err)
		}
	}()
	return job
}

// RunBoardDownload downloads the latest board file to a user-chosen
// path, synchronously
func (s *Service) RunBoardDownload(projectID, projectName string) (*model.PatchJob, error) {
	job := s.newJob(projectID, projectName)
	err := s.runBoardDownload(job)
	return job, err
}

// GetJob returns a job by ID
func (s *Service) GetJob(id string) (*model.PatchJob, bool) {
	s.jobsMutex.RLock()
	defer s.jobsMutex.RUnlock()
	job, exists := s.jobs[id]
	return job, exists
}

// GetAllJobs returns all jobs
func (s *Service) GetAllJobs() []*model.PatchJob {
	s.jobsMutex.RLock()
	defer s.jobsMutex.RUnlock()

	jobs := make([]*model.PatchJob, 0, len(s.jobs))
	for _, job := range s.jobs {
		jobs = append(jobs, job)
	}
	return jobs
}

// newJob registers a fresh pending job
func (s *Service) newJob(projectID, projectName string) *model.PatchJob {
	job := &model.PatchJob{
		ID:          generateJobID(),
		ProjectID:   projectID,
		ProjectName: projectName,
		Status:      model.JobStatusPending,
		StartedAt:   time.Now(),
	}

	s.jobsMutex.Lock()
	s.jobs[job.ID] = job
	s.jobsMutex.Unlock()

	s.notifyUpdate(job)
	return job
}

// setStatus transitions a job and notifies the observer
func (s *Service) setStatus(job *model.PatchJob, status model.JobStatus) {
	s.jobsMutex.Lock()
	job.Status = status
	if status.IsFinished() {
		job.FinishedAt = time.Now()
	}
	s.jobsMutex.Unlock()

	s.notifyUpdate(job)
}

// fail marks the job failed and returns err for the caller to propagate
func (s *Service) fail(job *model.PatchJob, err error) error {
	s.jobsMutex.Lock()
	job.LastError = err.Error()
	s.jobsMutex.Unlock()

	s.setStatus(job, model.JobStatusFailed)
	return err
}

// cancel marks the job cancelled; not a failure
func (s *Service) cancel(job *model.PatchJob) error {
	s.setStatus(job, model.JobStatusCancelled)
	return ErrUserCancelled
}

// notifyUpdate calls the update callback if set
func (s *Service) notifyUpdate(job *model.PatchJob) {
	if s.onUpdate != nil {
		s.onUpdate(job)
	}
}

// generateJobID generates a unique job ID using UUID v7 so IDs sort
// chronologically
func generateJobID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf("job-%d", time.Now().UnixNano())
	}
	return "job-" + id.String()
}
