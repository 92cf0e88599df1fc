package download

import (
	"context"
	"log"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ytget/yt-playlist-downloader/internal/model"
)

// Fetch progress estimation
const (
	DefaultProgressTick     = 50 * time.Millisecond
	DefaultExpectedDuration = 10 * time.Second
	MaxEstimatedPercent     = 95
)

const eventBuffer = 16

// Fetcher lists playlist metadata off the UI loop
type Fetcher struct {
	lister   Lister
	tick     time.Duration
	expected time.Duration
}

// NewFetcher creates a new metadata fetcher
func NewFetcher(lister Lister) *Fetcher {
	return &Fetcher{
		lister:   lister,
		tick:     DefaultProgressTick,
		expected: DefaultExpectedDuration,
	}
}

// SetProgressTiming sets how often progress is estimated and the listing
// duration the estimate is scaled against
func (f *Fetcher) SetProgressTiming(tick, expected time.Duration) {
	if tick > 0 {
		f.tick = tick
	}
	if expected > 0 {
		f.expected = expected
	}
}

// Fetch starts a flat extraction of url. The returned channel yields
// FetchProgress events followed by exactly one FetchFinished, then closes.
func (f *Fetcher) Fetch(ctx context.Context, url string) <-chan model.Event {
	events := make(chan model.Event, eventBuffer)
	opID := newOperationID("fetch")

	go func() {
		defer close(events)
		log.Printf("[%s] fetching playlist details: %s", opID, url)

		var entries []model.PlaylistEntry
		listed := make(chan struct{})

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			defer close(listed)
			var err error
			entries, err = f.lister.ListFlat(gctx, url)
			return err
		})
		g.Go(func() error {
			f.estimateProgress(gctx, listed, events)
			return nil
		})

		if err := g.Wait(); err != nil {
			log.Printf("[%s] fetch failed: %v", opID, err)
			events <- model.FetchFinished{Err: err}
			return
		}

		log.Printf("[%s] fetched %d entries", opID, len(entries))
		// An empty listing renders as a failed fetch, so it never reaches 100
		if len(entries) > 0 {
			events <- model.FetchProgress{Percent: 100}
		}
		events <- model.FetchFinished{Entries: entries, Count: len(entries)}
	}()

	return events
}

// estimateProgress emits an elapsed-time estimate until listing is done.
// The estimate never exceeds MaxEstimatedPercent and never decreases.
func (f *Fetcher) estimateProgress(ctx context.Context, listed <-chan struct{}, events chan<- model.Event) {
	ticker := time.NewTicker(f.tick)
	defer ticker.Stop()

	started := time.Now()
	last := 0
	for {
		select {
		case <-listed:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			percent := 1 + int(float64(MaxEstimatedPercent-1)*float64(time.Since(started))/float64(f.expected))
			if percent > MaxEstimatedPercent {
				percent = MaxEstimatedPercent
			}
			if percent <= last {
				continue
			}
			last = percent
			select {
			case events <- model.FetchProgress{Percent: percent}:
			case <-listed:
				return
			case <-ctx.Done():
				return
			}
		}
	}
}
