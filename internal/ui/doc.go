package ui

// Package ui provides the Fyne window: the playlist URL form, listing, download
// settings and progress indicators. RootUI renders the session controller.
