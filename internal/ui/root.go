package ui

import (
	"errors"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/RainbowTabitha/BoardDownloaderMPN/internal/catalog"
	"github.com/RainbowTabitha/BoardDownloaderMPN/internal/model"
	"github.com/RainbowTabitha/BoardDownloaderMPN/internal/patch"
)

// Layout constants
const (
	// CardsPerRow places catalog cards two per row in arrival order
	CardsPerRow = 2

	SearchPlaceholder = "Search for a project..."
)

// RootUI is the main rendering surface. It implements catalog.EntrySink;
// every sink call funnels through fyne.Do, so the entry collection is
// only ever mutated on the coordination thread.
type RootUI struct {
	window      fyne.Window
	searchEntry *widget.Entry
	searchBtn   *widget.Button
	grid        *fyne.Container
	statusLabel *widget.Label
	controller  *catalog.SearchController
	patchSvc    *patch.Service

	// entries is touched exclusively from the fyne.Do callbacks
	entries map[string]*projectCard
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, api catalog.API, icons catalog.IconFetcher, patchSvc *patch.Service) *RootUI {
	ui := &RootUI{
		window:   window,
		patchSvc: patchSvc,
		entries:  make(map[string]*projectCard),
	}

	ui.controller = catalog.NewSearchController(api, icons, ui)

	// Patch jobs report progress from their own goroutines
	ui.patchSvc.SetUpdateCallback(ui.onJobUpdate)

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.searchEntry = widget.NewEntry()
	ui.searchEntry.SetPlaceHolder(SearchPlaceholder)
	// Trigger search when user presses Enter in the search field
	ui.searchEntry.OnSubmitted = func(string) {
		ui.onSearchClick()
	}

	ui.searchBtn = widget.NewButton("Search", ui.onSearchClick)

	topPanel := container.NewBorder(nil, nil, nil, ui.searchBtn, ui.searchEntry)

	ui.grid = container.NewGridWithColumns(CardsPerRow)
	scroll := container.NewVScroll(ui.grid)

	ui.statusLabel = widget.NewLabel("")

	content := container.NewBorder(topPanel, ui.statusLabel, nil, nil, scroll)
	ui.window.SetContent(content)
}

// onSearchClick runs the search off the UI thread so the window stays
// responsive while the catalog responds
func (ui *RootUI) onSearchClick() {
	term := ui.searchEntry.Text
	go ui.controller.Search(term)
}

// ResetEntries clears all catalog entries
func (ui *RootUI) ResetEntries() {
	fyne.Do(func() {
		ui.grid.RemoveAll()
		ui.entries = make(map[string]*projectCard)
		ui.grid.Refresh()
	})
}

// AddPlaceholder shows a pending card for one search result
func (ui *RootUI) AddPlaceholder(index int, summary model.ProjectSummary) {
	fyne.Do(func() {
		card := newProjectCard(ui, summary)
		ui.entries[summary.ID] = card
		ui.grid.Add(card.object())
	})
}

// UpdateEntry replaces a placeholder with its enriched detail. Updates
// for entries that no longer exist are dropped silently: the enrichment
// may outlive the result set it belongs to.
func (ui *RootUI) UpdateEntry(detail *model.ProjectDetail) {
	fyne.Do(func() {
		card, ok := ui.entries[detail.ID]
		if !ok {
			return
		}
		card.showDetail(detail)
	})
}

// EntryFailed marks one entry's enrichment as failed
func (ui *RootUI) EntryFailed(projectID string, err error) {
	fyne.Do(func() {
		card, ok := ui.entries[projectID]
		if !ok {
			return
		}
		card.showError()
	})
}

// ReportSearchError surfaces a failed search to the user
func (ui *RootUI) ReportSearchError(err error) {
	fyne.Do(func() {
		dialog.ShowError(err, ui.window)
	})
}

// onJobUpdate reflects patch and download job progress in the status
// bar and announces terminal outcomes
func (ui *RootUI) onJobUpdate(job *model.PatchJob) {
	// Snapshot before crossing to the UI thread
	status := job.Status
	name := job.ProjectName
	lastError := job.LastError
	outputPath := job.OutputPath
	isPatch := job.RomInputPath != ""

	fyne.Do(func() {
		ui.statusLabel.SetText(name + ": " + status.String())

		switch status {
		case model.JobStatusCompleted:
			if isPatch {
				dialog.ShowInformation("Patching completed", "Patched ROM saved to "+outputPath, ui.window)
			} else {
				dialog.ShowInformation("Download completed", "Board file saved to "+outputPath, ui.window)
			}
		case model.JobStatusFailed:
			dialog.ShowError(errors.New(lastError), ui.window)
		}
	})
}
