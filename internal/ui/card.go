package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"github.com/RainbowTabitha/BoardDownloaderMPN/internal/model"
)

// Card display constants
const (
	CardIconWidth  = 125
	CardIconHeight = 125

	PlaceholderText = "Fetching details..."
	ErrorText       = "Details unavailable"
)

// projectCard is one catalog entry: a placeholder at first, replaced by
// the enriched detail when its enrichment completes. All methods run on
// the UI thread.
type projectCard struct {
	ui      *RootUI
	card    *widget.Card
	infoBtn *widget.Button
	detail  *model.ProjectDetail
}

// newProjectCard creates a placeholder card for a search result
func newProjectCard(ui *RootUI, summary model.ProjectSummary) *projectCard {
	pc := &projectCard{ui: ui}

	pc.infoBtn = widget.NewButton("Loading...", pc.onMoreInfo)
	pc.infoBtn.Disable()

	pc.card = widget.NewCard(summary.Name, PlaceholderText, pc.infoBtn)
	return pc
}

// object returns the renderable for grid placement
func (pc *projectCard) object() fyne.CanvasObject {
	return pc.card
}

// showDetail swaps the placeholder content for the enriched record
func (pc *projectCard) showDetail(detail *model.ProjectDetail) {
	pc.detail = detail

	pc.card.Title = detail.GetDisplayTitle()
	pc.card.Subtitle = detail.GetShortDescription()

	// A missing icon is a valid state; the card renders without one
	if detail.IconPath != "" {
		img := canvas.NewImageFromFile(detail.IconPath)
		img.FillMode = canvas.ImageFillContain
		img.SetMinSize(fyne.NewSize(CardIconWidth, CardIconHeight))
		pc.card.SetImage(img)
	}

	pc.infoBtn.SetText("More Info")
	pc.infoBtn.Enable()
	pc.card.Refresh()
}

// showError leaves the card as a degraded entry
func (pc *projectCard) showError() {
	pc.card.Subtitle = ErrorText
	pc.infoBtn.SetText("Unavailable")
	pc.card.Refresh()
}

// onMoreInfo opens the detail view for an enriched entry
func (pc *projectCard) onMoreInfo() {
	if pc.detail == nil {
		return
	}
	showProjectDialog(pc.ui, pc.detail)
}
