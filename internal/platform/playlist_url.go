package platform

import (
	"regexp"
	"strings"
)

// URL parameters and separators
const (
	PlaylistParam  = "list="
	ParamSeparator = "&"
)

// YouTubeVideoURLTemplate builds a watch URL from a video ID
const YouTubeVideoURLTemplate = "https://www.youtube.com/watch?v=%s"

// playlistURLPattern matches playlist pages on YouTube domains. The scheme and
// "www." are optional; only the prefix is anchored.
var playlistURLPattern = regexp.MustCompile(`^(https?://)?(www\.)?(youtube|youtu|youtube-nocookie)\.(com|be)/playlist\?list=[\w-]+`)

// IsValidPlaylistURL checks if the URL is a YouTube playlist page URL
func IsValidPlaylistURL(url string) bool {
	return playlistURLPattern.MatchString(url)
}

// CleanURL strips line breaks and surrounding whitespace pasted with a URL
func CleanURL(url string) string {
	cleaned := strings.ReplaceAll(url, "\n", "")
	cleaned = strings.ReplaceAll(cleaned, "\r", "")
	cleaned = strings.ReplaceAll(cleaned, "\t", " ")
	return strings.TrimSpace(cleaned)
}

// ExtractPlaylistID extracts the playlist ID from the list= parameter
func ExtractPlaylistID(url string) string {
	parts := strings.SplitN(url, PlaylistParam, 2)
	if len(parts) < 2 {
		return ""
	}
	id := parts[1]
	if idx := strings.Index(id, ParamSeparator); idx >= 0 {
		id = id[:idx]
	}
	return id
}
