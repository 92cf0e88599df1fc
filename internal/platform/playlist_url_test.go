package platform

import "testing"

func TestIsValidPlaylistURL(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		expected bool
	}{
		{
			name:     "canonical playlist URL",
			url:      "https://www.youtube.com/playlist?list=PLxyz",
			expected: true,
		},
		{
			name:     "without scheme",
			url:      "youtube.com/playlist?list=PL_a-b1",
			expected: true,
		},
		{
			name:     "http without www",
			url:      "http://youtube.com/playlist?list=PLxyz&si=abc",
			expected: true,
		},
		{
			name:     "nocookie domain",
			url:      "https://www.youtube-nocookie.com/playlist?list=PLxyz",
			expected: true,
		},
		{
			name:     "short domain",
			url:      "https://youtu.be/playlist?list=PLxyz",
			expected: true,
		},
		{
			name:     "watch URL",
			url:      "https://youtube.com/watch?v=abc",
			expected: false,
		},
		{
			name:     "watch URL with list parameter",
			url:      "https://www.youtube.com/watch?v=abc&list=PLxyz",
			expected: false,
		},
		{
			name:     "other domain",
			url:      "https://example.com/playlist?list=PLxyz",
			expected: false,
		},
		{
			name:     "empty list id",
			url:      "https://www.youtube.com/playlist?list=",
			expected: false,
		},
		{
			name:     "mobile subdomain",
			url:      "https://m.youtube.com/playlist?list=PLxyz",
			expected: false,
		},
		{
			name:     "empty URL",
			url:      "",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidPlaylistURL(tt.url); got != tt.expected {
				t.Errorf("expected %v, got %v for URL: %s", tt.expected, got, tt.url)
			}
		})
	}
}

func TestCleanURL(t *testing.T) {
	got := CleanURL("  https://www.youtube.com/playlist?list=PLxyz\r\n")
	if got != "https://www.youtube.com/playlist?list=PLxyz" {
		t.Errorf("unexpected cleaned URL %q", got)
	}
}

func TestExtractPlaylistID(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		expected string
	}{
		{
			name:     "playlist URL",
			url:      "https://www.youtube.com/playlist?list=PLAYLIST_ID",
			expected: "PLAYLIST_ID",
		},
		{
			name:     "additional parameters",
			url:      "https://www.youtube.com/playlist?list=PLAYLIST_ID&index=1&t=30",
			expected: "PLAYLIST_ID",
		},
		{
			name:     "multiple list parameters",
			url:      "https://www.youtube.com/watch?v=VIDEO_ID&list=PLAYLIST_ID&list=OTHER_ID",
			expected: "PLAYLIST_ID",
		},
		{
			name:     "no playlist parameter",
			url:      "https://www.youtube.com/watch?v=VIDEO_ID",
			expected: "",
		},
		{
			name:     "empty playlist parameter",
			url:      "https://www.youtube.com/watch?v=VIDEO_ID&list=",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractPlaylistID(tt.url); got != tt.expected {
				t.Errorf("expected %q, got %q for URL: %s", tt.expected, got, tt.url)
			}
		})
	}
}
