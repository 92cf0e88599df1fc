package config

import (
	"os"

	"github.com/ytget/yt-playlist-downloader/internal/model"
)

// Store is the key-value abstraction settings are persisted in.
// fyne.Preferences satisfies it.
type Store interface {
	String(key string) string
	SetString(key string, value string)
}

// Listing backends for playlist metadata
const (
	BackendYTDLP  = "yt-dlp"
	BackendNative = "native"
)

// Settings keys for Fyne preferences
const (
	KeyDownloadFolder = "download_folder"
	KeyQualityPreset  = "quality_preset"
	KeyListingBackend = "listing_backend"
	KeyLanguage       = "app_language"
)

// Default values
const (
	DefaultQualityPreset  = model.QualityBest
	DefaultListingBackend = BackendYTDLP
	DefaultLanguage       = "system"
)

// LoadDownloadFolder returns the last chosen download folder, or "" when none
// was saved or the saved folder no longer exists.
func LoadDownloadFolder(store Store) string {
	dir := store.String(KeyDownloadFolder)
	if dir == "" {
		return ""
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return ""
	}
	return dir
}

// SaveDownloadFolder persists the chosen download folder
func SaveDownloadFolder(store Store, dir string) {
	store.SetString(KeyDownloadFolder, dir)
}

// Settings manages application configuration
type Settings struct {
	store Store
}

// NewSettings creates a new settings manager
func NewSettings(store Store) *Settings {
	return &Settings{store: store}
}

// Store returns the backing key-value store
func (s *Settings) Store() Store {
	return s.store
}

// GetQualityPreset returns the last used quality tier
func (s *Settings) GetQualityPreset() model.Quality {
	preset := model.ParseQuality(s.store.String(KeyQualityPreset))
	for _, q := range model.Qualities {
		if q == preset {
			return q
		}
	}
	return DefaultQualityPreset
}

// SetQualityPreset sets the quality tier
func (s *Settings) SetQualityPreset(preset model.Quality) {
	s.store.SetString(KeyQualityPreset, string(preset))
}

// GetListingBackend returns the backend used for playlist metadata
func (s *Settings) GetListingBackend() string {
	switch backend := s.store.String(KeyListingBackend); backend {
	case BackendYTDLP, BackendNative:
		return backend
	default:
		return DefaultListingBackend
	}
}

// SetListingBackend sets the metadata backend
func (s *Settings) SetListingBackend(backend string) {
	s.store.SetString(KeyListingBackend, backend)
}

// GetListingBackendOptions returns available metadata backends
func (s *Settings) GetListingBackendOptions() []string {
	return []string{BackendYTDLP, BackendNative}
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.store.String(KeyLanguage)
	if lang == "" {
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.store.SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
	}
}
