package download

import (
	"path/filepath"

	"github.com/ytget/yt-playlist-downloader/internal/model"
)

// Format selectors per quality tier
const (
	FormatBest     = "bestvideo+bestaudio/best"
	FormatMedium   = "bestvideo[height<=480]+bestaudio/best[height<=480]"
	FormatWorst    = "worstvideo+worstaudio/worst"
	FormatFallback = "bestvideo+bestaudio"
)

// OutputFilenameTemplate names files by playlist position and title
const OutputFilenameTemplate = "%(playlist_index)s-%(title)s.%(ext)s"

// FormatSelector maps a quality tier to its format selector.
// Unknown tiers get FormatFallback.
func FormatSelector(q model.Quality) string {
	switch model.ParseQuality(string(q)) {
	case model.QualityBest:
		return FormatBest
	case model.QualityMedium:
		return FormatMedium
	case model.QualityWorst:
		return FormatWorst
	default:
		return FormatFallback
	}
}

// OptionsFor resolves a download request into engine options
func OptionsFor(req model.DownloadRequest) Options {
	return Options{
		Format:            FormatSelector(req.Quality),
		OutputTemplate:    filepath.Join(req.Folder, OutputFilenameTemplate),
		ItemRange:         req.ItemRange(),
		RestrictFilenames: true,
		IgnoreErrors:      true,
	}
}
