package catalog

import (
	"io"

	"github.com/RainbowTabitha/BoardDownloaderMPN/internal/model"
)

// API defines the catalog operations consumed by the enricher, the
// search controller, and the patch pipeline.
type API interface {
	Search(term string) ([]model.ProjectSummary, error)
	GetProjectDetail(projectID string) (*ProjectDetailPayload, error)
	ListFileVersions(projectID string) ([]model.ProjectVersion, error)
	GetFileDownloadURL(projectID, fileID string) (string, error)
	Download(fileURL string, w io.Writer) error
}

// IconFetcher caches a project's icon locally, returning the cached path
// or "" when the icon is unavailable.
type IconFetcher interface {
	FetchIcon(iconURL, projectID string) string
}

// EntrySink receives catalog mutations from the controller and the
// enrichers. Implementations must be safe to call from any goroutine;
// the Fyne sink funnels every call through the UI thread. A sink is free
// to drop updates for entries that no longer exist.
type EntrySink interface {
	// ResetEntries clears all catalog entries
	ResetEntries()

	// AddPlaceholder shows a pending entry at position index
	AddPlaceholder(index int, summary model.ProjectSummary)

	// UpdateEntry replaces a placeholder with its enriched detail
	UpdateEntry(detail *model.ProjectDetail)

	// EntryFailed marks one entry's enrichment as failed
	EntryFailed(projectID string, err error)

	// ReportSearchError surfaces a failed search to the user
	ReportSearchError(err error)
}
