package model

import "fmt"

// Event is a message streamed from a background operation to the UI loop.
// Implementations are plain values and are never shared after sending.
type Event interface {
	isEvent()
}

// FetchProgress reports fetch progress in percent (0..100)
type FetchProgress struct {
	Percent int
}

// FetchFinished is the last event of a fetch.
//
// An empty Entries slice means "fetch failed or playlist empty"; the two
// cases are deliberately not distinguished. Err is set when the listing
// failed and is meant for logging only.
type FetchFinished struct {
	Entries []PlaylistEntry
	Count   int
	Err     error
}

// DownloadProgress reports byte progress of the current item
type DownloadProgress struct {
	Percent         int
	DownloadedBytes int64
	Filename        string
}

// DownloadStatus is a human-readable status line
type DownloadStatus struct {
	Message string
	Kind    StatusKind
}

func (FetchProgress) isEvent()    {}
func (FetchFinished) isEvent()    {}
func (DownloadProgress) isEvent() {}
func (DownloadStatus) isEvent()   {}

// Status message texts
const (
	MsgDownloadStarted  = "Download started..."
	MsgDownloadComplete = "Download Complete!"
)

// BytesPerMB is used for the "x.xx MB" status rendering
const BytesPerMB = 1024 * 1024

// DownloadingStatus builds the "Downloading: <file> (<x.xx> MB)" line
func DownloadingStatus(filename string, downloadedBytes int64) DownloadStatus {
	return DownloadStatus{
		Message: fmt.Sprintf("Downloading: %s (%.2f MB)", filename, float64(downloadedBytes)/BytesPerMB),
		Kind:    StatusInfo,
	}
}

// SkipStatus builds the per-item failure line
func SkipStatus(filename string) DownloadStatus {
	return DownloadStatus{
		Message: fmt.Sprintf("Error downloading: %s (Skipping this video...)", filename),
		Kind:    StatusSkip,
	}
}

// FailedStatus builds the batch abort line
func FailedStatus(err error) DownloadStatus {
	return DownloadStatus{
		Message: fmt.Sprintf("Error: %v", err),
		Kind:    StatusFailed,
	}
}
