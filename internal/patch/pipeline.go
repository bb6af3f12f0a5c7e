package patch

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/RainbowTabitha/BoardDownloaderMPN/internal/model"
	"github.com/RainbowTabitha/BoardDownloaderMPN/internal/platform"
)

// Patcher argument contract
const (
	PatcherCommand        = "overwrite"
	RomFileFlag           = "--rom-file"
	TargetBoardIndexFlag  = "--target-board-index"
	BoardFileFlag         = "--board-file"
	OutputFileFlag        = "--output-file"
	DefaultBoardIndex     = "0"
	PatchedOutputPrefix   = "patched-"
	PatchedOutputExt      = ".z64"
	BoardTempPrefix       = "board-"
	DefaultBoardExt       = ".json"
	DefaultOutputFileName = "patched.z64"
)

// Dialog titles
const (
	RomDialogTitle    = "Select the ROM file for the Patch"
	OutputDialogTitle = "Select the Output ROM Location"
	BoardDialogTitle  = "Save Board File As"
)

// runPatch drives the patch pipeline for one job. Stages run strictly
// in order and the first failure is terminal; temp files created along
// the way are removed on every terminal outcome, success, cancel, or
// failure.
func (s *Service) runPatch(ctx context.Context, job *model.PatchJob) error {
	var intermediatePath string
	defer func() {
		s.cleanupTempFiles(job, intermediatePath)
	}()

	// Resolve latest version first: it is the cheapest stage to fail
	s.setStatus(job, model.JobStatusResolvingVersion)
	versions, err := s.api.ListFileVersions(job.ProjectID)
	if err != nil {
		return s.fail(job, err)
	}
	latest, ok := model.LatestVersion(versions)
	if !ok {
		return s.fail(job, ErrNoVersions)
	}

	s.setStatus(job, model.JobStatusProvisioningTool)
	toolPath, err := s.tools.EnsureTool()
	if err != nil {
		return s.fail(job, err)
	}

	s.setStatus(job, model.JobStatusDownloadingBoard)
	fileURL, err := s.api.GetFileDownloadURL(job.ProjectID, latest.FileID)
	if err != nil {
		return s.fail(job, err)
	}

	boardPath, err := s.downloadBoardToTemp(fileURL, latest.FileName)
	if err != nil {
		return s.fail(job, err)
	}
	s.jobsMutex.Lock()
	job.BoardFilePath = boardPath
	s.jobsMutex.Unlock()

	s.setStatus(job, model.JobStatusAwaitingRom)
	romPath, err := s.picker.ChooseOpenPath(RomDialogTitle, []string{PatchedOutputExt})
	if err != nil {
		return s.fail(job, err)
	}
	if romPath == "" {
		return s.cancel(job)
	}
	s.jobsMutex.Lock()
	job.RomInputPath = romPath
	s.jobsMutex.Unlock()

	s.setStatus(job, model.JobStatusPatching)
	intermediatePath = filepath.Join(s.workDir, PatchedOutputPrefix+uuid.NewString()+PatchedOutputExt)
	exitCode, err := s.runner.Run(ctx, toolPath, []string{
		PatcherCommand,
		RomFileFlag, romPath,
		TargetBoardIndexFlag, DefaultBoardIndex,
		BoardFileFlag, boardPath,
		OutputFileFlag, intermediatePath,
	})
	if err != nil {
		return s.fail(job, fmt.Errorf("failed to run patcher tool: %w", err))
	}
	if exitCode != 0 {
		return s.fail(job, &ToolExitError{ExitCode: exitCode})
	}

	s.setStatus(job, model.JobStatusAwaitingOutput)
	outputPath, err := s.picker.ChooseSavePath(OutputDialogTitle, DefaultOutputFileName, []string{PatchedOutputExt})
	if err != nil {
		return s.fail(job, err)
	}
	if outputPath == "" {
		return s.cancel(job)
	}

	// Copy, not move: a crash between copy and cleanup leaves the
	// intermediate file intact
	s.setStatus(job, model.JobStatusWritingOutput)
	if err := platform.CopyFile(intermediatePath, outputPath); err != nil {
		return s.fail(job, err)
	}
	s.jobsMutex.Lock()
	job.OutputPath = outputPath
	s.jobsMutex.Unlock()

	s.setStatus(job, model.JobStatusCompleted)
	return nil
}

// runBoardDownload saves the latest board file to a user-chosen path
func (s *Service) runBoardDownload(job *model.PatchJob) error {
	s.setStatus(job, model.JobStatusResolvingVersion)
	versions, err := s.api.ListFileVersions(job.ProjectID)
	if err != nil {
		return s.fail(job, err)
	}
	latest, ok := model.LatestVersion(versions)
	if !ok {
		return s.fail(job, ErrNoVersions)
	}

	fileURL, err := s.api.GetFileDownloadURL(job.ProjectID, latest.FileID)
	if err != nil {
		return s.fail(job, err)
	}

	s.setStatus(job, model.JobStatusAwaitingOutput)
	suggested := latest.FileName
	if suggested == "" {
		suggested = "board" + DefaultBoardExt
	}
	savePath, err := s.picker.ChooseSavePath(BoardDialogTitle, suggested, []string{DefaultBoardExt})
	if err != nil {
		return s.fail(job, err)
	}
	if savePath == "" {
		return s.cancel(job)
	}

	s.setStatus(job, model.JobStatusDownloadingBoard)
	if err := s.downloadToFile(fileURL, savePath); err != nil {
		return s.fail(job, fmt.Errorf("%w: %v", ErrBoardDownload, err))
	}
	s.jobsMutex.Lock()
	job.OutputPath = savePath
	s.jobsMutex.Unlock()

	s.setStatus(job, model.JobStatusCompleted)
	return nil
}

// downloadBoardToTemp streams the board file into a uniquely named temp
// file. A failed download leaves no partial file behind.
func (s *Service) downloadBoardToTemp(fileURL, fileName string) (string, error) {
	ext := filepath.Ext(fileName)
	if ext == "" {
		ext = DefaultBoardExt
	}
	tempPath := filepath.Join(os.TempDir(), BoardTempPrefix+uuid.NewString()+ext)

	if err := s.downloadToFile(fileURL, tempPath); err != nil {
		return "", fmt.Errorf("%w: %v", ErrBoardDownload, err)
	}
	return tempPath, nil
}

// downloadToFile streams fileURL into path, deleting the partial file
// on failure
func (s *Service) downloadToFile(fileURL, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := s.api.Download(fileURL, f); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return err
	}
	return nil
}

// cleanupTempFiles removes the temp board file and the intermediate
// patcher output once the job reaches a terminal state
func (s *Service) cleanupTempFiles(job *model.PatchJob, intermediatePath string) {
	s.jobsMutex.RLock()
	boardPath := job.BoardFilePath
	s.jobsMutex.RUnlock()

	if boardPath != "" {
		if err := platform.RemoveIfExists(boardPath); err != nil {
			log.Printf("Failed to remove temp board file %s: %v", boardPath, err)
		}
	}
	if intermediatePath != "" {
		if err := platform.RemoveIfExists(intermediatePath); err != nil {
			log.Printf("Failed to remove intermediate output %s: %v", intermediatePath, err)
		}
	}
}
