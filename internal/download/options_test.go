package download

import (
	"path/filepath"
	"testing"

	"github.com/ytget/yt-playlist-downloader/internal/model"
)

func TestFormatSelector(t *testing.T) {
	tests := []struct {
		quality  model.Quality
		expected string
	}{
		{model.QualityBest, "bestvideo+bestaudio/best"},
		{model.QualityMedium, "bestvideo[height<=480]+bestaudio/best[height<=480]"},
		{model.QualityWorst, "worstvideo+worstaudio/worst"},
		{model.Quality("Best"), "bestvideo+bestaudio/best"},
		{model.Quality("ultra"), FormatFallback},
		{model.Quality(""), FormatFallback},
	}

	for _, tt := range tests {
		t.Run(string(tt.quality), func(t *testing.T) {
			got := FormatSelector(tt.quality)
			if got != tt.expected {
				t.Errorf("FormatSelector(%q) = %q, want %q", tt.quality, got, tt.expected)
			}
			// Deterministic
			if again := FormatSelector(tt.quality); again != got {
				t.Errorf("FormatSelector(%q) not deterministic: %q then %q", tt.quality, got, again)
			}
		})
	}
}

func TestOptionsFor(t *testing.T) {
	folder := t.TempDir()
	req := model.DownloadRequest{
		URL:     "https://www.youtube.com/playlist?list=PLxyz",
		Quality: model.QualityMedium,
		Start:   2,
		End:     4,
		Folder:  folder,
	}

	opts := OptionsFor(req)

	if opts.Format != FormatMedium {
		t.Errorf("Expected format %q, got %q", FormatMedium, opts.Format)
	}
	if opts.ItemRange != "2-4" {
		t.Errorf("Expected item range '2-4', got %q", opts.ItemRange)
	}
	expectedTemplate := filepath.Join(folder, "%(playlist_index)s-%(title)s.%(ext)s")
	if opts.OutputTemplate != expectedTemplate {
		t.Errorf("Expected template %q, got %q", expectedTemplate, opts.OutputTemplate)
	}
	if !opts.RestrictFilenames || !opts.IgnoreErrors {
		t.Error("Expected restricted filenames and ignored errors")
	}
}
