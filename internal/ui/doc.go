package ui

// Package ui is the Fyne rendering surface: the search bar, the
// two-per-row catalog card grid, the project detail view, and the
// native file dialogs behind the patch pipeline's FilePicker. It is the
// single writer of all visible state; workers reach it only through
// fyne.Do hand-offs.
