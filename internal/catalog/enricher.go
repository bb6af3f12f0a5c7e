package catalog

import (
	"log"

	"github.com/RainbowTabitha/BoardDownloaderMPN/internal/model"
)

// DetailEnricher fetches the full detail and icon for a single catalog
// entry and delivers the assembled record to the sink. One Enrich call
// runs per entry, each on its own goroutine; the sink hand-off is the
// only shared-state touch point.
type DetailEnricher struct {
	api   API
	icons IconFetcher
	sink  EntrySink
}

// NewDetailEnricher creates an enricher delivering to the given sink
func NewDetailEnricher(api API, icons IconFetcher, sink EntrySink) *DetailEnricher {
	return &DetailEnricher{
		api:   api,
		icons: icons,
		sink:  sink,
	}
}

// Enrich assembles the ProjectDetail for one search result. Failures are
// local to this entry: they surface through the sink and never abort the
// search or other entries.
func (e *DetailEnricher) Enrich(summary model.ProjectSummary) {
	payload, err := e.api.GetProjectDetail(summary.ID)
	if err != nil {
		log.Printf("Detail fetch failed for project %s: %v", summary.ID, err)
		e.sink.EntryFailed(summary.ID, err)
		return
	}

	// Icon failures degrade to no icon, not a failed entry
	iconPath := ""
	if payload.Icon != "" {
		iconPath = e.icons.FetchIcon(payload.Icon, summary.ID)
	}

	creationDate, err := model.FormatCreationDate(payload.CreationDate)
	if err != nil {
		log.Printf("Bad creation date for project %s: %v", summary.ID, err)
		e.sink.EntryFailed(summary.ID, err)
		return
	}

	name := payload.Name
	if name == "" {
		name = summary.Name
	}

	e.sink.UpdateEntry(&model.ProjectDetail{
		ID:               summary.ID,
		Name:             name,
		Author:           payload.Author,
		CreationDate:     creationDate,
		Difficulty:       payload.Difficulty,
		RecommendedTurns: payload.RecommendedTurns,
		HasCustomEvents:  payload.CustomEvents,
		HasCustomMusic:   payload.CustomMusic,
		Description:      payload.Description,
		IconPath:         iconPath,
	})
}
