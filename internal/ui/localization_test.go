package ui

import "testing"

func TestLocalizationFallbacks(t *testing.T) {
	l := NewLocalization()

	if l.GetCurrentLanguage() != "en" {
		t.Errorf("Expected default language 'en', got %s", l.GetCurrentLanguage())
	}

	l.SetLanguage("ru")
	if l.GetText(KeyFetch) != "Получить данные плейлиста" {
		t.Errorf("Unexpected ru text %q", l.GetText(KeyFetch))
	}

	// Missing ru key falls back to English
	if l.GetText(KeyEnterURL) != "https://www.youtube.com/playlist?list=..." {
		t.Errorf("Expected English fallback, got %q", l.GetText(KeyEnterURL))
	}

	// Unknown key returns itself
	if l.GetText("nope") != "nope" {
		t.Errorf("Expected key fallback, got %q", l.GetText("nope"))
	}

	// Unknown language is ignored
	l.SetLanguage("xx")
	if l.GetCurrentLanguage() != "ru" {
		t.Errorf("Expected language to stay 'ru', got %s", l.GetCurrentLanguage())
	}

	l.SetLanguage("system")
	if l.GetCurrentLanguage() != "en" {
		t.Errorf("Expected system to map to 'en', got %s", l.GetCurrentLanguage())
	}
}

func TestLocalizationLanguagesComplete(t *testing.T) {
	l := NewLocalization()
	for lang := range l.GetAvailableLanguages() {
		if _, ok := l.texts[lang]; !ok {
			t.Errorf("Language %s has no texts", lang)
		}
	}
}
