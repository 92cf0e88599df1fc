package download

import (
	"context"

	"github.com/ytget/yt-playlist-downloader/internal/model"
)

// ProgressStatus is the state reported by an engine progress tick
type ProgressStatus string

const (
	StatusDownloading ProgressStatus = "downloading"
	StatusError       ProgressStatus = "error"
	StatusFinished    ProgressStatus = "finished"
)

// ProgressUpdate is one engine progress tick
type ProgressUpdate struct {
	Status          ProgressStatus
	DownloadedBytes int64
	TotalBytes      int64
	Filename        string
}

// ProgressHook receives engine progress ticks
type ProgressHook func(ProgressUpdate)

// Options is the resolved option set handed to the engine
type Options struct {
	Format            string // format selector
	OutputTemplate    string // output path template
	ItemRange         string // "start-end"
	RestrictFilenames bool
	IgnoreErrors      bool // skip failed items instead of aborting
}

// Lister performs a flat extraction of a playlist
type Lister interface {
	ListFlat(ctx context.Context, url string) ([]model.PlaylistEntry, error)
}

// ListerFunc adapts a function to Lister
type ListerFunc func(ctx context.Context, url string) ([]model.PlaylistEntry, error)

// ListFlat calls f
func (f ListerFunc) ListFlat(ctx context.Context, url string) ([]model.PlaylistEntry, error) {
	return f(ctx, url)
}

// Engine is the external extraction/download engine.
// Download must not call hook after it returns.
type Engine interface {
	Lister
	Download(ctx context.Context, url string, opts Options, hook ProgressHook) error
}
