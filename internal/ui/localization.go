package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle         = "app_title"
	KeyPlaylistURL      = "playlist_url"
	KeyEnterURL         = "enter_url"
	KeyFetch            = "fetch"
	KeyPlaylistDetails  = "playlist_details"
	KeyDownloadSettings = "download_settings"
	KeySelectQuality    = "select_quality"
	KeySelectRange      = "select_range"
	KeyStart            = "start"
	KeyEnd              = "end"
	KeyCurrentFolder    = "current_folder"
	KeyNotSelected      = "not_selected"
	KeyChooseFolder     = "choose_folder"
	KeyOpenFolder       = "open_folder"
	KeyDownload         = "download"
	KeySettings         = "settings"
	KeyFile             = "file"
	KeyLanguage         = "language"
	KeyListingBackend   = "listing_backend"
	KeySave             = "save"
	KeyCancel           = "cancel"
	KeySettingsSaved    = "settings_saved"

	KeyErrEmptyURL      = "err_empty_url"
	KeyErrInvalidURL    = "err_invalid_url"
	KeyErrBusy          = "err_busy"
	KeyErrNotFetched    = "err_not_fetched"
	KeyErrNoFolder      = "err_no_folder"
	KeyErrFolderMissing = "err_folder_missing"
	KeyErrInvalidRange  = "err_invalid_range"
	KeyErrOpenFolder    = "err_open_folder"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if text, found := l.texts[l.currentLanguage][key]; found {
		return text
	}
	if text, found := l.texts["en"][key]; found {
		return text
	}
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:         "YouTube Playlist Downloader",
		KeyPlaylistURL:      "Enter Playlist URL:",
		KeyEnterURL:         "https://www.youtube.com/playlist?list=...",
		KeyFetch:            "Fetch Playlist Details",
		KeyPlaylistDetails:  "Playlist Details:",
		KeyDownloadSettings: "Download Settings:",
		KeySelectQuality:    "Select Video Quality:",
		KeySelectRange:      "Select Range:",
		KeyStart:            "Start:",
		KeyEnd:              "End:",
		KeyCurrentFolder:    "Current Download Folder: %s",
		KeyNotSelected:      "Not Selected",
		KeyChooseFolder:     "Choose Download Folder",
		KeyOpenFolder:       "Open Folder",
		KeyDownload:         "Download Selected Videos",
		KeySettings:         "Settings",
		KeyFile:             "File",
		KeyLanguage:         "Language",
		KeyListingBackend:   "Playlist Listing Backend",
		KeySave:             "Save",
		KeyCancel:           "Cancel",
		KeySettingsSaved:    "Settings saved successfully!",

		KeyErrEmptyURL:      "Please enter a URL.",
		KeyErrInvalidURL:    "Invalid YouTube Playlist URL.",
		KeyErrBusy:          "Please wait for the current operation to finish.",
		KeyErrNotFetched:    "Please fetch the playlist data first.",
		KeyErrNoFolder:      "Please choose a download folder first.",
		KeyErrFolderMissing: "The selected download folder does not exist.",
		KeyErrInvalidRange:  "Please select a valid range.",
		KeyErrOpenFolder:    "Could not open the download folder",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:         "Загрузчик плейлистов YouTube",
		KeyPlaylistURL:      "Введите URL плейлиста:",
		KeyFetch:            "Получить данные плейлиста",
		KeyPlaylistDetails:  "Содержимое плейлиста:",
		KeyDownloadSettings: "Настройки загрузки:",
		KeySelectQuality:    "Качество видео:",
		KeySelectRange:      "Диапазон:",
		KeyStart:            "С:",
		KeyEnd:              "По:",
		KeyCurrentFolder:    "Папка загрузки: %s",
		KeyNotSelected:      "Не выбрана",
		KeyChooseFolder:     "Выбрать папку",
		KeyOpenFolder:       "Открыть папку",
		KeyDownload:         "Скачать выбранные видео",
		KeySettings:         "Настройки",
		KeyFile:             "Файл",
		KeyLanguage:         "Язык",
		KeyListingBackend:   "Источник списка плейлиста",
		KeySave:             "Сохранить",
		KeyCancel:           "Отмена",
		KeySettingsSaved:    "Настройки успешно сохранены!",

		KeyErrEmptyURL:      "Пожалуйста, введите URL.",
		KeyErrInvalidURL:    "Неверный URL плейлиста YouTube.",
		KeyErrBusy:          "Дождитесь завершения текущей операции.",
		KeyErrNotFetched:    "Сначала получите данные плейлиста.",
		KeyErrNoFolder:      "Сначала выберите папку загрузки.",
		KeyErrFolderMissing: "Выбранная папка загрузки не существует.",
		KeyErrInvalidRange:  "Выберите корректный диапазон.",
		KeyErrOpenFolder:    "Не удалось открыть папку загрузки",
	}
}
