package model

import (
	"fmt"
	"strings"
)

// PlaylistEntry represents a single video in a playlist listing
type PlaylistEntry struct {
	Index int    `json:"index"` // 1-based position in the playlist
	Title string `json:"title"`
	ID    string `json:"id,omitempty"`
	URL   string `json:"url,omitempty"`
}

// Playlist represents a fetched YouTube playlist
type Playlist struct {
	ID      string          `json:"id"`
	URL     string          `json:"url"`
	Entries []PlaylistEntry `json:"entries"`
}

// NewPlaylist creates a playlist from an ordered entry list.
// Entries without a position get their 1-based slice index.
func NewPlaylist(url string, entries []PlaylistEntry) *Playlist {
	copied := make([]PlaylistEntry, len(entries))
	copy(copied, entries)
	for i := range copied {
		if copied[i].Index <= 0 {
			copied[i].Index = i + 1
		}
	}
	return &Playlist{
		URL:     url,
		Entries: copied,
	}
}

// Count returns the number of entries
func (p *Playlist) Count() int {
	if p == nil {
		return 0
	}
	return len(p.Entries)
}

// IsEmpty reports whether the playlist has no entries
func (p *Playlist) IsEmpty() bool {
	return p.Count() == 0
}

// Listing renders the entries as "N. title" lines for the read-only view
func (p *Playlist) Listing() string {
	if p.IsEmpty() {
		return ""
	}
	var b strings.Builder
	for i, e := range p.Entries {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%d. %s", i+1, e.Title)
	}
	return b.String()
}

