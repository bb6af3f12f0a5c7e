package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/RainbowTabitha/BoardDownloaderMPN/internal/model"
)

// Detail view constants
const (
	DetailIconWidth   = 250
	DetailIconHeight  = 250
	DetailViewWidth   = 640
	DetailViewHeight  = 480
	DescriptionHeight = 200
)

// showProjectDialog displays the full project record with the Patch ROM
// and Download actions
func showProjectDialog(ui *RootUI, detail *model.ProjectDetail) {
	left := container.NewVBox()

	if detail.IconPath != "" {
		img := canvas.NewImageFromFile(detail.IconPath)
		img.FillMode = canvas.ImageFillContain
		img.SetMinSize(fyne.NewSize(DetailIconWidth, DetailIconHeight))
		left.Add(img)
	}

	description := detail.Description
	if description == "" {
		description = "No description available"
	}
	descLabel := widget.NewLabel(description)
	descLabel.Wrapping = fyne.TextWrapWord
	descScroll := container.NewVScroll(descLabel)
	descScroll.SetMinSize(fyne.NewSize(0, DescriptionHeight))

	left.Add(widget.NewLabelWithStyle("Description", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}))
	left.Add(descScroll)

	right := container.NewVBox(
		widget.NewLabel("Created on: "+detail.CreationDate),
		widget.NewLabel("Difficulty: "+detail.GetDifficultyStars()),
		widget.NewLabel("Recommended Turns: "+detail.GetRecommendedTurnsLabel()),
		widget.NewLabel("Custom Events: "+yesNo(detail.HasCustomEvents)),
		widget.NewLabel("Custom Music: "+yesNo(detail.HasCustomMusic)),
	)

	patchBtn := widget.NewButton("Patch ROM", func() {
		ui.patchSvc.StartPatch(detail.ID, detail.Name)
	})
	downloadBtn := widget.NewButton("Download", func() {
		ui.patchSvc.StartBoardDownload(detail.ID, detail.Name)
	})
	right.Add(container.NewHBox(patchBtn, downloadBtn))

	content := container.NewHBox(left, right)

	d := dialog.NewCustom(detail.Name, "Close", content, ui.window)
	d.Resize(fyne.NewSize(DetailViewWidth, DetailViewHeight))
	d.Show()
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
