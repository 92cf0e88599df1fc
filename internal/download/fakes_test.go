package download

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/ytget/yt-playlist-downloader/internal/model"
)

// fakeEngine is a scripted Engine for tests
type fakeEngine struct {
	mu sync.Mutex

	entries   []model.PlaylistEntry
	listErr   error
	listDelay time.Duration

	ticks       []ProgressUpdate
	downloadErr error

	listCalls     int
	downloadCalls int
	lastURL       string
	lastOptions   Options
}

func (f *fakeEngine) ListFlat(ctx context.Context, url string) ([]model.PlaylistEntry, error) {
	f.mu.Lock()
	f.listCalls++
	f.lastURL = url
	delay := f.listDelay
	f.mu.Unlock()

	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.entries, nil
}

func (f *fakeEngine) Download(ctx context.Context, url string, opts Options, hook ProgressHook) error {
	f.mu.Lock()
	f.downloadCalls++
	f.lastURL = url
	f.lastOptions = opts
	f.mu.Unlock()

	for _, tick := range f.ticks {
		hook(tick)
	}
	return f.downloadErr
}

var errEngine = errors.New("engine exploded")

// collect drains an event channel with a deadline
func collect(ch <-chan model.Event, timeout time.Duration) ([]model.Event, bool) {
	var events []model.Event
	deadline := time.After(timeout)
	for {
		select {
		case ev, ok := <-ch:
			if !ok {
				return events, true
			}
			events = append(events, ev)
		case <-deadline:
			return events, false
		}
	}
}

// statuses returns the status lines in order
func statuses(events []model.Event) []model.DownloadStatus {
	var out []model.DownloadStatus
	for _, ev := range events {
		if s, ok := ev.(model.DownloadStatus); ok {
			out = append(out, s)
		}
	}
	return out
}
