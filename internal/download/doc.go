package download

// Package download implements the two background operations built on top of
// yt-dlp (via github.com/lrstanley/go-ytdlp): the flat metadata fetch and the
// ranged playlist download. Both stream typed model events over a channel and
// close it when done.
