package config

import (
	"os"
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/yt-playlist-downloader/internal/model"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	prefs := app.Preferences()
	settings := NewSettings(prefs)

	if settings.store != prefs {
		t.Error("Settings store reference should match provided preferences")
	}
}

func TestDownloadFolderPersistsAcrossRestart(t *testing.T) {
	app := test.NewApp()
	dir := t.TempDir()

	// First session selects a folder
	SaveDownloadFolder(app.Preferences(), dir)

	// Second session reads the same preferences
	if got := LoadDownloadFolder(app.Preferences()); got != dir {
		t.Errorf("Expected download folder %s, got %s", dir, got)
	}
}

func TestDownloadFolderRemovedBeforeRestart(t *testing.T) {
	app := test.NewApp()
	dir := filepath.Join(t.TempDir(), "videos")
	if err := os.Mkdir(dir, 0o755); err != nil {
		t.Fatalf("Failed to create folder: %v", err)
	}

	SaveDownloadFolder(app.Preferences(), dir)
	if err := os.Remove(dir); err != nil {
		t.Fatalf("Failed to remove folder: %v", err)
	}

	if got := LoadDownloadFolder(app.Preferences()); got != "" {
		t.Errorf("Expected no folder after removal, got %s", got)
	}
}

func TestLoadDownloadFolderRejectsFile(t *testing.T) {
	app := test.NewApp()
	file := filepath.Join(t.TempDir(), "not-a-dir.txt")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}

	SaveDownloadFolder(app.Preferences(), file)

	if got := LoadDownloadFolder(app.Preferences()); got != "" {
		t.Errorf("Expected a plain file to be ignored, got %s", got)
	}
}

func TestLoadDownloadFolderUnset(t *testing.T) {
	app := test.NewApp()

	if got := LoadDownloadFolder(app.Preferences()); got != "" {
		t.Errorf("Expected empty folder, got %s", got)
	}
}

func TestQualityPreset(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app.Preferences())

	// Test default value
	if preset := settings.GetQualityPreset(); preset != DefaultQualityPreset {
		t.Errorf("Expected default quality preset %s, got %s", DefaultQualityPreset, preset)
	}

	settings.SetQualityPreset(model.QualityWorst)
	if preset := settings.GetQualityPreset(); preset != model.QualityWorst {
		t.Errorf("Expected quality preset %s, got %s", model.QualityWorst, preset)
	}

	// Unknown values fall back to default
	settings.SetQualityPreset("ultra")
	if preset := settings.GetQualityPreset(); preset != DefaultQualityPreset {
		t.Errorf("Expected fallback to %s, got %s", DefaultQualityPreset, preset)
	}
}

func TestListingBackend(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app.Preferences())

	if backend := settings.GetListingBackend(); backend != DefaultListingBackend {
		t.Errorf("Expected default backend %s, got %s", DefaultListingBackend, backend)
	}

	settings.SetListingBackend(BackendNative)
	if backend := settings.GetListingBackend(); backend != BackendNative {
		t.Errorf("Expected backend %s, got %s", BackendNative, backend)
	}

	settings.SetListingBackend("curl")
	if backend := settings.GetListingBackend(); backend != DefaultListingBackend {
		t.Errorf("Expected unknown backend to fall back, got %s", backend)
	}

	if len(settings.GetListingBackendOptions()) != 2 {
		t.Error("Expected two listing backends")
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app.Preferences())

	if lang := settings.GetLanguage(); lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	settings.SetLanguage("ru")
	if lang := settings.GetLanguage(); lang != "ru" {
		t.Errorf("Expected language 'ru', got %s", lang)
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app.Preferences())

	options := settings.GetLanguageOptions()
	for _, lang := range []string{"system", "en", "ru"} {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}
}
