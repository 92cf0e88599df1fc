package platform

import (
	"context"
	"fmt"
	"time"

	ytv2 "github.com/ytget/ytdlp/v2"

	"github.com/ytget/yt-playlist-downloader/internal/model"
)

// Timeout constants
const (
	DefaultListTimeout = 60 * time.Second
)

// NativeLister lists playlist entries with the pure-Go ytdlp client,
// without the yt-dlp binary.
type NativeLister struct {
	timeout time.Duration
}

// NewNativeLister creates a new native lister
func NewNativeLister() *NativeLister {
	return &NativeLister{
		timeout: DefaultListTimeout,
	}
}

// SetTimeout sets the timeout for listing operations
func (n *NativeLister) SetTimeout(timeout time.Duration) {
	n.timeout = timeout
}

// ListFlat returns the ordered playlist entries without resolving media
func (n *NativeLister) ListFlat(ctx context.Context, url string) ([]model.PlaylistEntry, error) {
	playlistID := ExtractPlaylistID(url)
	if playlistID == "" {
		return nil, fmt.Errorf("could not extract playlist ID from URL: %s", url)
	}

	if n.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, n.timeout)
		defer cancel()
	}

	items, err := ytv2.New().GetPlaylistItemsAll(ctx, playlistID, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to get playlist items: %w", err)
	}

	entries := make([]model.PlaylistEntry, 0, len(items))
	for i, it := range items {
		entries = append(entries, model.PlaylistEntry{
			Index: i + 1,
			Title: it.Title,
			ID:    it.VideoID,
			URL:   fmt.Sprintf(YouTubeVideoURLTemplate, it.VideoID),
		})
	}
	return entries, nil
}
