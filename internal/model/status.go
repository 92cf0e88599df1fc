package model

// SessionState represents the state of the control surface
type SessionState string

const (
	// StateIdle means no playlist is loaded
	StateIdle SessionState = "Idle"
	// StateFetching means a metadata fetch is in flight
	StateFetching SessionState = "Fetching"
	// StateFetched means a playlist is loaded and ready for download
	StateFetched SessionState = "Fetched"
	// StateDownloading means a download batch is in flight
	StateDownloading SessionState = "Downloading"
)

// String returns the string representation of SessionState
func (s SessionState) String() string {
	return string(s)
}

// IsBusy returns true while a background operation owns the session
func (s SessionState) IsBusy() bool {
	return s == StateFetching || s == StateDownloading
}

// HasPlaylist returns true if a fetched playlist is available
func (s SessionState) HasPlaylist() bool {
	return s == StateFetched || s == StateDownloading
}

// StatusKind classifies a status line emitted by the downloader
type StatusKind string

const (
	// StatusInfo is an informational line ("Download started...", "Downloading: ...")
	StatusInfo StatusKind = "info"
	// StatusSkip reports a failed item that the batch skips over
	StatusSkip StatusKind = "skip"
	// StatusComplete is the terminal line of a finished batch
	StatusComplete StatusKind = "complete"
	// StatusFailed is the terminal line of an aborted batch
	StatusFailed StatusKind = "failed"
)

// IsTerminal returns true if no more events follow a status of this kind
func (k StatusKind) IsTerminal() bool {
	return k == StatusComplete || k == StatusFailed
}
