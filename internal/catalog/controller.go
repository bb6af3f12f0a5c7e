package catalog

import (
	"log"
	"strings"
)

// SearchController executes catalog searches and fans out one enricher
// goroutine per result. Fan-out is unbounded: result sets are expected
// to stay in the tens, so there is no worker pool in front of it.
type SearchController struct {
	api      API
	sink     EntrySink
	enricher *DetailEnricher
}

// NewSearchController creates a controller delivering to the given sink
func NewSearchController(api API, icons IconFetcher, sink EntrySink) *SearchController {
	return &SearchController{
		api:      api,
		sink:     sink,
		enricher: NewDetailEnricher(api, icons, sink),
	}
}

// Search runs one catalog search. A blank or whitespace-only term is a
// no-op: no network call, sink untouched. Each result gets a placeholder
// entry in response order and an enrichment goroutine.
func (sc *SearchController) Search(term string) {
	term = strings.TrimSpace(term)
	if term == "" {
		return
	}

	sc.sink.ResetEntries()

	results, err := sc.api.Search(term)
	if err != nil {
		log.Printf("Search for %q failed: %v", term, err)
		sc.sink.ReportSearchError(err)
		return
	}

	for i, summary := range results {
		sc.sink.AddPlaceholder(i, summary)
		go sc.enricher.Enrich(summary)
	}
}
