package session

import (
	"errors"

	"github.com/ytget/yt-playlist-downloader/internal/model"
)

var (
	// ErrEmptyURL indicates the URL field is empty.
	ErrEmptyURL = errors.New("empty URL")
	// ErrInvalidURL indicates the URL is not a YouTube playlist page.
	ErrInvalidURL = errors.New("invalid playlist URL")
	// ErrBusy indicates an operation of the same kind is still running.
	ErrBusy = errors.New("operation in progress")
	// ErrNotFetched indicates no playlist was fetched in this session.
	ErrNotFetched = errors.New("playlist not fetched")
	// ErrNoFolder indicates no download folder was chosen.
	ErrNoFolder = errors.New("download folder not chosen")
	// ErrFolderMissing indicates the chosen folder no longer exists.
	ErrFolderMissing = errors.New("download folder does not exist")
	// ErrInvalidRange is re-exported from model for callers of Download.
	ErrInvalidRange = model.ErrInvalidRange
)

// Message returns the user-facing English text for a controller error
func Message(err error) string {
	switch {
	case errors.Is(err, ErrEmptyURL):
		return "Please enter a URL."
	case errors.Is(err, ErrInvalidURL):
		return "Invalid YouTube Playlist URL."
	case errors.Is(err, ErrBusy):
		return "Please wait for the current operation to finish."
	case errors.Is(err, ErrNotFetched):
		return "Please fetch the playlist data first."
	case errors.Is(err, ErrNoFolder):
		return "Please choose a download folder first."
	case errors.Is(err, ErrFolderMissing):
		return "The selected download folder does not exist."
	case errors.Is(err, ErrInvalidRange):
		return "Please select a valid range."
	case err == nil:
		return ""
	default:
		return err.Error()
	}
}
