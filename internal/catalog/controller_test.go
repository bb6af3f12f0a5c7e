package catalog

import (
	"io"
	"sync"
	"testing"
	"time"

	"github.com/RainbowTabitha/BoardDownloaderMPN/internal/model"
)

// fakeAPI implements API with canned responses and call counting
type fakeAPI struct {
	mu            sync.Mutex
	searchResults []model.ProjectSummary
	searchErr     error
	searchCalls   int
	details       map[string]*ProjectDetailPayload
	detailErr     error
}

func (f *fakeAPI) Search(term string) ([]model.ProjectSummary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.searchCalls++
	return f.searchResults, f.searchErr
}

func (f *fakeAPI) GetProjectDetail(projectID string) (*ProjectDetailPayload, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.detailErr != nil {
		return nil, f.detailErr
	}
	return f.details[projectID], nil
}

func (f *fakeAPI) ListFileVersions(projectID string) ([]model.ProjectVersion, error) {
	return []model.ProjectVersion{}, nil
}

func (f *fakeAPI) GetFileDownloadURL(projectID, fileID string) (string, error) {
	return "", nil
}

func (f *fakeAPI) Download(fileURL string, w io.Writer) error {
	return nil
}

func (f *fakeAPI) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.searchCalls
}

// fakeIcons returns a fixed path for every icon
type fakeIcons struct {
	path string
}

func (f *fakeIcons) FetchIcon(iconURL, projectID string) string {
	return f.path
}

// recordingSink records all sink calls and signals entry completion
type recordingSink struct {
	mu           sync.Mutex
	resets       int
	placeholders []model.ProjectSummary
	updates      []*model.ProjectDetail
	failures     []string
	searchErrs   []error
	entryDone    chan struct{}
}

func newRecordingSink() *recordingSink {
	return &recordingSink{entryDone: make(chan struct{}, 64)}
}

func (s *recordingSink) ResetEntries() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resets++
	s.placeholders = nil
	s.updates = nil
}

func (s *recordingSink) AddPlaceholder(index int, summary model.ProjectSummary) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.placeholders = append(s.placeholders, summary)
}

func (s *recordingSink) UpdateEntry(detail *model.ProjectDetail) {
	s.mu.Lock()
	s.updates = append(s.updates, detail)
	s.mu.Unlock()
	s.entryDone <- struct{}{}
}

func (s *recordingSink) EntryFailed(projectID string, err error) {
	s.mu.Lock()
	s.failures = append(s.failures, projectID)
	s.mu.Unlock()
	s.entryDone <- struct{}{}
}

func (s *recordingSink) ReportSearchError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searchErrs = append(s.searchErrs, err)
}

func (s *recordingSink) waitForEntries(t *testing.T, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		select {
		case <-s.entryDone:
		case <-time.After(5 * time.Second):
			t.Fatalf("Timed out waiting for entry %d of %d", i+1, n)
		}
	}
}

func TestSearchBlankTermIsNoOp(t *testing.T) {
	api := &fakeAPI{}
	sink := newRecordingSink()
	controller := NewSearchController(api, &fakeIcons{}, sink)

	for _, term := range []string{"", "   ", "\t\n"} {
		controller.Search(term)
	}

	if got := api.callCount(); got != 0 {
		t.Errorf("Expected no search calls for blank terms, got %d", got)
	}
	if sink.resets != 0 {
		t.Errorf("Expected sink untouched, got %d resets", sink.resets)
	}
}

func TestSearchFansOutEnrichment(t *testing.T) {
	api := &fakeAPI{
		searchResults: []model.ProjectSummary{
			{ID: "42", Name: "Mario Party X"},
			{ID: "7", Name: "Luigi Land"},
		},
		details: map[string]*ProjectDetailPayload{
			"42": {Name: "Mario Party X", Author: "tabitha", CreationDate: "2025-03-11", Description: "A board", Icon: "https://example.com/icon.png"},
			"7":  {Name: "Luigi Land", Author: "luigi", CreationDate: "2024-06-01"},
		},
	}
	sink := newRecordingSink()
	controller := NewSearchController(api, &fakeIcons{path: "/cache/icon.png"}, sink)

	controller.Search("Mario")
	sink.waitForEntries(t, 2)

	sink.mu.Lock()
	defer sink.mu.Unlock()

	if sink.resets != 1 {
		t.Errorf("Expected 1 reset, got %d", sink.resets)
	}
	if len(sink.placeholders) != 2 {
		t.Fatalf("Expected 2 placeholders, got %d", len(sink.placeholders))
	}
	// Placeholders arrive in response order
	if sink.placeholders[0].ID != "42" || sink.placeholders[1].ID != "7" {
		t.Errorf("Placeholders out of order: %+v", sink.placeholders)
	}

	if len(sink.updates) != 2 {
		t.Fatalf("Expected 2 enriched entries, got %d", len(sink.updates))
	}
	for _, detail := range sink.updates {
		if detail.ID == "42" {
			if detail.Author != "tabitha" || detail.CreationDate != "March 11, 2025" {
				t.Errorf("Unexpected enriched detail: %+v", detail)
			}
			if detail.IconPath != "/cache/icon.png" {
				t.Errorf("Expected cached icon path, got %q", detail.IconPath)
			}
		}
	}
}

func TestSearchErrorLeavesCatalogEmpty(t *testing.T) {
	api := &fakeAPI{searchErr: &RequestError{URL: "http://x", StatusCode: 500}}
	sink := newRecordingSink()
	controller := NewSearchController(api, &fakeIcons{}, sink)

	controller.Search("Mario")

	if sink.resets != 1 {
		t.Errorf("Expected catalog cleared, got %d resets", sink.resets)
	}
	if len(sink.placeholders) != 0 {
		t.Errorf("Expected no placeholders, got %d", len(sink.placeholders))
	}
	if len(sink.searchErrs) != 1 {
		t.Errorf("Expected search error reported once, got %d", len(sink.searchErrs))
	}
}

func TestEnrichmentFailureLeavesPlaceholder(t *testing.T) {
	api := &fakeAPI{
		searchResults: []model.ProjectSummary{{ID: "42", Name: "Mario Party X"}},
		detailErr:     &RequestError{URL: "http://x", StatusCode: 503},
	}
	sink := newRecordingSink()
	controller := NewSearchController(api, &fakeIcons{}, sink)

	controller.Search("Mario")
	sink.waitForEntries(t, 1)

	sink.mu.Lock()
	defer sink.mu.Unlock()

	if len(sink.placeholders) != 1 {
		t.Fatalf("Expected placeholder to remain, got %d", len(sink.placeholders))
	}
	if len(sink.updates) != 0 {
		t.Errorf("Expected no enriched entries, got %d", len(sink.updates))
	}
	if len(sink.failures) != 1 || sink.failures[0] != "42" {
		t.Errorf("Expected failure for project 42, got %v", sink.failures)
	}
}

func TestEnrichMalformedDateFailsEntry(t *testing.T) {
	api := &fakeAPI{
		details: map[string]*ProjectDetailPayload{
			"42": {Name: "Mario Party X", CreationDate: "Unknown"},
		},
	}
	sink := newRecordingSink()
	enricher := NewDetailEnricher(api, &fakeIcons{}, sink)

	enricher.Enrich(model.ProjectSummary{ID: "42", Name: "Mario Party X"})
	sink.waitForEntries(t, 1)

	sink.mu.Lock()
	defer sink.mu.Unlock()

	if len(sink.failures) != 1 {
		t.Fatalf("Expected entry failure for malformed date, got %v", sink.failures)
	}
	if len(sink.updates) != 0 {
		t.Errorf("Expected no delivery, got %d updates", len(sink.updates))
	}
}

func TestEnrichIconFailureDegrades(t *testing.T) {
	api := &fakeAPI{
		details: map[string]*ProjectDetailPayload{
			"42": {Name: "Mario Party X", CreationDate: "2025-03-11", Icon: "https://example.com/icon.png"},
		},
	}
	sink := newRecordingSink()
	// Icon fetcher that always fails, i.e. returns ""
	enricher := NewDetailEnricher(api, &fakeIcons{path: ""}, sink)

	enricher.Enrich(model.ProjectSummary{ID: "42", Name: "Mario Party X"})
	sink.waitForEntries(t, 1)

	sink.mu.Lock()
	defer sink.mu.Unlock()

	if len(sink.updates) != 1 {
		t.Fatalf("Expected delivery despite icon failure, got %d updates", len(sink.updates))
	}
	if sink.updates[0].IconPath != "" {
		t.Errorf("Expected empty icon path, got %q", sink.updates[0].IconPath)
	}
}

func TestEnrichNameFallsBackToSummary(t *testing.T) {
	api := &fakeAPI{
		details: map[string]*ProjectDetailPayload{
			"42": {CreationDate: "2025-03-11"},
		},
	}
	sink := newRecordingSink()
	enricher := NewDetailEnricher(api, &fakeIcons{}, sink)

	enricher.Enrich(model.ProjectSummary{ID: "42", Name: "Mario Party X"})
	sink.waitForEntries(t, 1)

	sink.mu.Lock()
	defer sink.mu.Unlock()

	if len(sink.updates) != 1 || sink.updates[0].Name != "Mario Party X" {
		t.Errorf("Expected name fallback to summary, got %+v", sink.updates)
	}
}
