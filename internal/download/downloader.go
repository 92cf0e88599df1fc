package download

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/ytget/yt-playlist-downloader/internal/model"
)

// DefaultStatusInterval throttles "Downloading: ..." lines sent to the UI
const DefaultStatusInterval = 250 * time.Millisecond

// Downloader runs ranged playlist downloads off the UI loop
type Downloader struct {
	engine         Engine
	statusInterval time.Duration
}

// NewDownloader creates a new media downloader
func NewDownloader(engine Engine) *Downloader {
	return &Downloader{
		engine:         engine,
		statusInterval: DefaultStatusInterval,
	}
}

// SetStatusInterval sets the minimum gap between progress lines of the same
// file. Zero disables throttling.
func (d *Downloader) SetStatusInterval(interval time.Duration) {
	d.statusInterval = interval
}

// Download starts downloading the items of url selected by opts. The returned
// channel yields status and progress events and ends with a terminal
// DownloadStatus (complete or failed), then closes.
func (d *Downloader) Download(ctx context.Context, url string, opts Options) <-chan model.Event {
	events := make(chan model.Event, eventBuffer)
	opID := newOperationID("download")

	go func() {
		defer close(events)
		log.Printf("[%s] download started: %s items=%s format=%s", opID, url, opts.ItemRange, opts.Format)
		events <- model.DownloadStatus{Message: model.MsgDownloadStarted, Kind: model.StatusInfo}

		relay := newProgressRelay(events, d.statusInterval)
		err := d.engine.Download(ctx, url, opts, relay.handle)
		relay.stop()

		if err != nil {
			log.Printf("[%s] download failed: %v", opID, err)
			events <- model.FailedStatus(err)
			return
		}

		if skipped := relay.skippedItems(); len(skipped) > 0 {
			log.Printf("[%s] download complete, %d item(s) skipped: %s", opID, len(skipped), strings.Join(skipped, ", "))
		} else {
			log.Printf("[%s] download complete", opID)
		}
		events <- model.DownloadStatus{Message: model.MsgDownloadComplete, Kind: model.StatusComplete}
	}()

	return events
}

// progressRelay turns engine ticks into UI events
type progressRelay struct {
	mu       sync.Mutex
	events   chan<- model.Event
	limiter  *rate.Limiter
	lastFile string
	skipped  []string
	stopped  bool
}

func newProgressRelay(events chan<- model.Event, interval time.Duration) *progressRelay {
	return &progressRelay{
		events:  events,
		limiter: rate.NewLimiter(rate.Every(interval), 1),
	}
}

// handle is the engine progress hook
func (r *progressRelay) handle(update ProgressUpdate) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.stopped {
		return
	}

	switch update.Status {
	case StatusDownloading:
		if update.TotalBytes <= 0 {
			return
		}
		percent := int(update.DownloadedBytes * 100 / update.TotalBytes)
		if percent > 100 {
			percent = 100
		}

		// A new file or a finished one always passes, but still takes a token
		allowed := r.limiter.Allow()
		fileChanged := update.Filename != r.lastFile
		if !fileChanged && percent < 100 && !allowed {
			return
		}
		r.lastFile = update.Filename

		r.events <- model.DownloadProgress{
			Percent:         percent,
			DownloadedBytes: update.DownloadedBytes,
			Filename:        update.Filename,
		}
		r.events <- model.DownloadingStatus(update.Filename, update.DownloadedBytes)

	case StatusError:
		r.skipped = append(r.skipped, update.Filename)
		log.Printf("skipping failed item: %s", update.Filename)
		r.events <- model.SkipStatus(update.Filename)
	}
}

// skippedItems returns the items reported as failed so far
func (r *progressRelay) skippedItems() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.skipped...)
}

// stop drops ticks that arrive after the engine returned
func (r *progressRelay) stop() {
	r.mu.Lock()
	r.stopped = true
	r.mu.Unlock()
}
