package session

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/ytget/yt-playlist-downloader/internal/config"
	"github.com/ytget/yt-playlist-downloader/internal/download"
	"github.com/ytget/yt-playlist-downloader/internal/model"
	"github.com/ytget/yt-playlist-downloader/internal/platform"
)

// Status texts set by the controller
const (
	StatusFetching    = "Fetching playlist details..."
	StatusFetchFailed = "Error fetching playlist details."
	StatusFetchedFmt  = "Playlist fetched! Total videos: %d"
)

// FetchRunner starts a metadata fetch
type FetchRunner interface {
	Fetch(ctx context.Context, url string) <-chan model.Event
}

// DownloadRunner starts a playlist download
type DownloadRunner interface {
	Download(ctx context.Context, url string, opts download.Options) <-chan model.Event
}

// View renders controller output. Implementations must be safe to call from
// any goroutine and must not call back into the Controller synchronously.
type View interface {
	ShowError(err error)
	SetStatus(message string)
	SetFetchEnabled(enabled bool)
	SetFetchProgress(percent int)
	SetPlaylist(listing string, count int)
	SetRange(start, end, max int)
	SetDownloadEnabled(enabled bool)
	SetDownloadProgress(percent int)
	SetFolder(dir string)
}

// Controller is the control surface state machine
type Controller struct {
	ctx        context.Context
	store      config.Store
	fetcher    FetchRunner
	downloader DownloadRunner
	view       View

	mu          sync.Mutex
	state       model.SessionState
	playlist    *model.Playlist
	fetchingURL string
	folder      string

	relays sync.WaitGroup
}

// NewController creates a controller. ctx bounds the background operations
// and is expected to live as long as the window.
func NewController(ctx context.Context, store config.Store, fetcher FetchRunner, downloader DownloadRunner, view View) *Controller {
	return &Controller{
		ctx:        ctx,
		store:      store,
		fetcher:    fetcher,
		downloader: downloader,
		view:       view,
		state:      model.StateIdle,
	}
}

// Init restores the persisted download folder and renders the idle state
func (c *Controller) Init() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.folder = config.LoadDownloadFolder(c.store)
	c.view.SetFolder(c.folder)
	c.view.SetFetchEnabled(true)
	c.view.SetDownloadEnabled(true)
}

// State returns the current session state
func (c *Controller) State() model.SessionState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Playlist returns the fetched playlist, or nil
func (c *Controller) Playlist() *model.Playlist {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.playlist
}

// Folder returns the chosen download folder
func (c *Controller) Folder() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.folder
}

// SelectFolder sets and persists the download folder
func (c *Controller) SelectFolder(dir string) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.folder = dir
	config.SaveDownloadFolder(c.store, dir)
	c.view.SetFolder(dir)
	log.Printf("Download folder selected: %s", dir)
}

// Fetch validates rawURL and starts a metadata fetch
func (c *Controller) Fetch(rawURL string) error {
	url := platform.CleanURL(rawURL)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.validateFetch(url); err != nil {
		c.view.ShowError(err)
		return err
	}

	c.state = model.StateFetching
	c.fetchingURL = url
	c.view.SetFetchEnabled(false)
	c.view.SetStatus(StatusFetching)
	c.view.SetFetchProgress(1)

	log.Printf("Processing playlist URL: %s", url)
	c.relay(c.fetcher.Fetch(c.ctx, url), c.fetchRelayClosed)
	return nil
}

func (c *Controller) validateFetch(url string) error {
	if url == "" {
		return ErrEmptyURL
	}
	if !platform.IsValidPlaylistURL(url) {
		return fmt.Errorf("%w: %s", ErrInvalidURL, url)
	}
	if c.state.IsBusy() {
		return fmt.Errorf("%w: %s", ErrBusy, c.state)
	}
	return nil
}

// Download validates the request and starts downloading the fetched playlist
func (c *Controller) Download(quality model.Quality, start, end int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	req := model.DownloadRequest{
		Quality: quality,
		Start:   start,
		End:     end,
		Folder:  c.folder,
	}
	if c.playlist != nil {
		req.URL = c.playlist.URL
	}

	if err := c.validateDownload(req); err != nil {
		c.view.ShowError(err)
		return err
	}

	opts := download.OptionsFor(req)

	c.state = model.StateDownloading
	c.view.SetDownloadEnabled(false)
	c.view.SetDownloadProgress(0)

	log.Printf("Starting download: %d item(s) %s quality=%s folder=%s", req.Size(), req.ItemRange(), req.Quality, req.Folder)
	c.relay(c.downloader.Download(c.ctx, req.URL, opts), c.downloadRelayClosed)
	return nil
}

func (c *Controller) validateDownload(req model.DownloadRequest) error {
	if c.state == model.StateDownloading {
		return ErrBusy
	}
	if !c.state.HasPlaylist() || c.playlist.IsEmpty() {
		return ErrNotFetched
	}
	if req.Folder == "" {
		return ErrNoFolder
	}
	if !platform.DirExists(req.Folder) {
		return fmt.Errorf("%w: %s", ErrFolderMissing, req.Folder)
	}
	if err := req.Validate(); err != nil {
		return err
	}
	if req.End > c.playlist.Count() {
		return fmt.Errorf("%w: end %d exceeds %d entries", ErrInvalidRange, req.End, c.playlist.Count())
	}
	return nil
}

// Wait blocks until every started operation delivered its last event
func (c *Controller) Wait() {
	c.relays.Wait()
}

// relay drains events into handle, then calls closed
func (c *Controller) relay(events <-chan model.Event, closed func()) {
	c.relays.Add(1)
	go func() {
		defer c.relays.Done()
		for ev := range events {
			c.handle(ev)
		}
		closed()
	}()
}

// handle applies one background event
func (c *Controller) handle(ev model.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch e := ev.(type) {
	case model.FetchProgress:
		c.view.SetFetchProgress(e.Percent)
	case model.FetchFinished:
		c.applyFetchFinished(e)
	case model.DownloadProgress:
		c.view.SetDownloadProgress(e.Percent)
	case model.DownloadStatus:
		c.view.SetStatus(e.Message)
		if e.Kind.IsTerminal() {
			c.finishDownload()
		}
	}
}

// applyFetchFinished treats an empty listing as a failed fetch, whatever
// the cause
func (c *Controller) applyFetchFinished(e model.FetchFinished) {
	defer c.view.SetFetchEnabled(true)

	if len(e.Entries) == 0 {
		if e.Err != nil {
			log.Printf("Fetch returned no entries: %v", e.Err)
		}
		c.state = model.StateIdle
		c.playlist = nil
		c.view.SetPlaylist("", 0)
		c.view.SetStatus(StatusFetchFailed)
		return
	}

	playlist := model.NewPlaylist(c.fetchingURL, e.Entries)
	playlist.ID = platform.ExtractPlaylistID(c.fetchingURL)
	count := playlist.Count()

	c.playlist = playlist
	c.state = model.StateFetched
	c.view.SetPlaylist(playlist.Listing(), count)
	c.view.SetStatus(fmt.Sprintf(StatusFetchedFmt, count))
	c.view.SetRange(1, count, count)
}

func (c *Controller) finishDownload() {
	if c.state != model.StateDownloading {
		return
	}
	if c.playlist.IsEmpty() {
		c.state = model.StateIdle
	} else {
		c.state = model.StateFetched
	}
	c.view.SetDownloadEnabled(true)
}

// fetchRelayClosed recovers if a fetch ended without FetchFinished
func (c *Controller) fetchRelayClosed() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == model.StateFetching {
		c.state = model.StateIdle
		c.view.SetFetchEnabled(true)
	}
}

// downloadRelayClosed recovers if a download ended without a terminal status
func (c *Controller) downloadRelayClosed() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.finishDownload()
}
