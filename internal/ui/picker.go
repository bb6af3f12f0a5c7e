package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
)

// pickResult carries a dialog outcome back to the waiting goroutine
type pickResult struct {
	path string
	err  error
}

// DialogFilePicker implements patch.FilePicker with native Fyne file
// dialogs. Calls block until the user answers, so they must come from a
// worker goroutine, never from the UI thread.
type DialogFilePicker struct {
	window fyne.Window
}

// NewDialogFilePicker creates a picker showing dialogs on the given window
func NewDialogFilePicker(window fyne.Window) *DialogFilePicker {
	return &DialogFilePicker{window: window}
}

// ChooseOpenPath asks the user for an existing file; "" means cancelled
func (p *DialogFilePicker) ChooseOpenPath(title string, extensions []string) (string, error) {
	result := make(chan pickResult, 1)

	fyne.Do(func() {
		fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
			if err != nil {
				result <- pickResult{err: err}
				return
			}
			if reader == nil {
				result <- pickResult{}
				return
			}
			path := reader.URI().Path()
			reader.Close()
			result <- pickResult{path: path}
		}, p.window)
		if len(extensions) > 0 {
			fd.SetFilter(storage.NewExtensionFileFilter(extensions))
		}
		fd.Show()
	})

	res := <-result
	return res.path, res.err
}

// ChooseSavePath asks the user for a destination; "" means cancelled
func (p *DialogFilePicker) ChooseSavePath(title, suggestedName string, extensions []string) (string, error) {
	result := make(chan pickResult, 1)

	fyne.Do(func() {
		fd := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
			if err != nil {
				result <- pickResult{err: err}
				return
			}
			if writer == nil {
				result <- pickResult{}
				return
			}
			path := writer.URI().Path()
			writer.Close()
			result <- pickResult{path: path}
		}, p.window)
		fd.SetFileName(suggestedName)
		if len(extensions) > 0 {
			fd.SetFilter(storage.NewExtensionFileFilter(extensions))
		}
		fd.Show()
	})

	res := <-result
	return res.path, res.err
}
