package download

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	"github.com/lrstanley/go-ytdlp"

	"github.com/ytget/yt-playlist-downloader/internal/model"
)

// DefaultProgressInterval is how often yt-dlp reports progress
const DefaultProgressInterval = 500 * time.Millisecond

// exitCodePartialFailure is what yt-dlp returns under --ignore-errors when
// some items failed
const exitCodePartialFailure = 1

// itemErrorPattern matches "ERROR: [youtube] <id>: <reason>" stderr lines
var itemErrorPattern = regexp.MustCompile(`^ERROR: \[[^\]]+\] ([^:]+):`)

// YTDLPEngine drives the yt-dlp binary
type YTDLPEngine struct {
	progressInterval time.Duration
}

// NewYTDLPEngine creates a new yt-dlp engine
func NewYTDLPEngine() *YTDLPEngine {
	return &YTDLPEngine{
		progressInterval: DefaultProgressInterval,
	}
}

// EnsureEngine makes sure a yt-dlp binary is available, downloading it into
// the user cache when it is not on PATH
func EnsureEngine(ctx context.Context) error {
	resolved, err := ytdlp.Install(ctx, nil)
	if err != nil {
		return fmt.Errorf("yt-dlp install failed: %w", err)
	}
	log.Printf("Using yt-dlp %s at %s", resolved.Version, resolved.Executable)
	return nil
}

// ListFlat runs a flat, non-downloading extraction of the playlist
func (e *YTDLPEngine) ListFlat(ctx context.Context, url string) ([]model.PlaylistEntry, error) {
	result, err := ytdlp.New().
		FlatPlaylist().
		DumpSingleJSON().
		Run(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("flat extraction failed: %w", err)
	}
	return decodeFlatPlaylist([]byte(result.Stdout))
}

// Download runs yt-dlp over the selected items and relays its progress
func (e *YTDLPEngine) Download(ctx context.Context, url string, opts Options, hook ProgressHook) error {
	dl := ytdlp.New().
		Format(opts.Format).
		Output(opts.OutputTemplate)
	if opts.ItemRange != "" {
		dl.PlaylistItems(opts.ItemRange)
	}
	if opts.RestrictFilenames {
		dl.RestrictFilenames()
	}
	if opts.IgnoreErrors {
		dl.IgnoreErrors()
	}

	dl.ProgressFunc(e.progressInterval, func(update ytdlp.ProgressUpdate) {
		hook(ProgressUpdate{
			Status:          ProgressStatus(update.Status),
			DownloadedBytes: int64(update.DownloadedBytes),
			TotalBytes:      int64(update.TotalBytes),
			Filename:        update.Filename,
		})
	})

	result, err := dl.Run(ctx, url)
	return interpretResult(ctx, opts, result, err, hook)
}

// interpretResult replays items yt-dlp skipped as error ticks and decides
// whether the run counts as a completed batch
func interpretResult(ctx context.Context, opts Options, result *ytdlp.Result, err error, hook ProgressHook) error {
	// Items yt-dlp skipped only show up on stderr
	if result != nil {
		for _, item := range failedItems(result.Stderr) {
			hook(ProgressUpdate{Status: StatusError, Filename: item})
		}
	}

	if err != nil {
		if opts.IgnoreErrors && ctx.Err() == nil && result != nil && result.ExitCode == exitCodePartialFailure {
			log.Printf("yt-dlp finished with skipped items: %v", err)
			return nil
		}
		return err
	}
	return nil
}

// failedItems extracts the IDs of items reported as ERROR on stderr
func failedItems(stderr string) []string {
	var items []string
	for _, line := range strings.Split(stderr, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "ERROR:") {
			continue
		}
		if m := itemErrorPattern.FindStringSubmatch(line); len(m) == 2 {
			items = append(items, strings.TrimSpace(m[1]))
			continue
		}
		items = append(items, strings.TrimSpace(strings.TrimPrefix(line, "ERROR:")))
	}
	return items
}

// flatPlaylist is the subset of yt-dlp's --dump-single-json document we read
type flatPlaylist struct {
	ID      string      `json:"id"`
	Title   string      `json:"title"`
	Type    string      `json:"_type"`
	Entries []flatEntry `json:"entries"`
}

type flatEntry struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	URL           string `json:"url"`
	PlaylistIndex int    `json:"playlist_index"`
}

// decodeFlatPlaylist parses yt-dlp's single JSON document into entries.
// Non-playlist documents yield no entries.
func decodeFlatPlaylist(data []byte) ([]model.PlaylistEntry, error) {
	var doc flatPlaylist
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode yt-dlp output: %w", err)
	}

	entries := make([]model.PlaylistEntry, 0, len(doc.Entries))
	for i, e := range doc.Entries {
		index := e.PlaylistIndex
		if index <= 0 {
			index = i + 1
		}
		entries = append(entries, model.PlaylistEntry{
			Index: index,
			Title: e.Title,
			ID:    e.ID,
			URL:   e.URL,
		})
	}
	return entries, nil
}
