package ui

import (
	"fyne.io/fyne/v2"
)

const (
	AppIcon = "yt-playlist-downloader.png"
)

// LoadAppIcon loads the window icon from file path
func LoadAppIcon() (fyne.Resource, error) {
	return fyne.LoadResourceFromPath(AppIcon)
}
