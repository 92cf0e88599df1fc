package ui

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/yt-playlist-downloader/internal/config"
	"github.com/ytget/yt-playlist-downloader/internal/model"
	"github.com/ytget/yt-playlist-downloader/internal/platform"
	"github.com/ytget/yt-playlist-downloader/internal/session"
)

// RootUI represents the main window and renders the session controller
type RootUI struct {
	window       fyne.Window
	settings     *config.Settings
	localization *Localization
	controller   *session.Controller

	urlCard      *widget.Card
	urlEntry     *widget.Entry
	fetchBtn     *widget.Button
	detailsCard  *widget.Card
	details      *widget.Label
	fetchBar     *widget.ProgressBar
	settingsCard *widget.Card

	qualityLabel  *widget.Label
	qualitySelect *widget.Select
	rangeLabel    *widget.Label
	startLabel    *widget.Label
	endLabel      *widget.Label
	startEntry    *widget.Entry
	endEntry      *widget.Entry

	folderLabel     *widget.Label
	chooseFolderBtn *widget.Button
	openFolderBtn   *widget.Button
	downloadBtn     *widget.Button
	statusLabel     *widget.Label
	downloadBar     *widget.ProgressBar

	// folder mirrors the controller folder for label refreshes
	folder string
	// rangeMax is the entry count of the fetched playlist, 0 before a fetch
	rangeMax int
}

// NewRootUI creates the window content and wires it to a controller running
// fetcher and downloader
func NewRootUI(ctx context.Context, window fyne.Window, settings *config.Settings, fetcher session.FetchRunner, downloader session.DownloadRunner) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		settings:     settings,
		localization: localization,
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()
	ui.controller = session.NewController(ctx, settings.Store(), fetcher, downloader, ui)
	ui.controller.Init()

	log.Printf("RootUI initialized, download folder: %q", ui.controller.Folder())
	return ui
}

// Controller returns the session controller behind the window
func (ui *RootUI) Controller() *session.Controller {
	return ui.controller
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	// Playlist URL section
	ui.urlEntry = widget.NewEntry()
	ui.urlEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterURL))
	// Pressing Enter in the URL field fetches
	ui.urlEntry.OnSubmitted = func(string) {
		ui.onFetchClick()
	}
	ui.fetchBtn = widget.NewButton(ui.localization.GetText(KeyFetch), ui.onFetchClick)
	ui.urlCard = widget.NewCard(ui.localization.GetText(KeyPlaylistURL), "", container.NewVBox(ui.urlEntry, ui.fetchBtn))

	// Playlist details section
	ui.details = widget.NewLabel("")
	ui.details.Wrapping = fyne.TextWrapWord
	detailsScroll := container.NewVScroll(ui.details)
	detailsScroll.SetMinSize(fyne.NewSize(0, DetailsMinHeight))
	ui.fetchBar = widget.NewProgressBar()
	ui.detailsCard = widget.NewCard(ui.localization.GetText(KeyPlaylistDetails), "", container.NewBorder(nil, ui.fetchBar, nil, nil, detailsScroll))

	// Quality and range section
	ui.qualityLabel = widget.NewLabel(ui.localization.GetText(KeySelectQuality))
	qualityOptions := make([]string, 0, len(model.Qualities))
	for _, q := range model.Qualities {
		qualityOptions = append(qualityOptions, q.Label())
	}
	ui.qualitySelect = widget.NewSelect(qualityOptions, func(selected string) {
		ui.settings.SetQualityPreset(model.ParseQuality(selected))
	})
	ui.qualitySelect.SetSelected(ui.settings.GetQualityPreset().Label())

	ui.rangeLabel = widget.NewLabel(ui.localization.GetText(KeySelectRange))
	ui.startLabel = widget.NewLabel(ui.localization.GetText(KeyStart))
	ui.endLabel = widget.NewLabel(ui.localization.GetText(KeyEnd))
	ui.startEntry = ui.newRangeEntry()
	ui.endEntry = ui.newRangeEntry()
	rangeRow := container.NewHBox(
		ui.rangeLabel,
		ui.startLabel, container.NewGridWrap(fyne.NewSize(RangeEntryWidth, ui.startEntry.MinSize().Height), ui.startEntry),
		ui.endLabel, container.NewGridWrap(fyne.NewSize(RangeEntryWidth, ui.endEntry.MinSize().Height), ui.endEntry),
	)

	ui.folderLabel = widget.NewLabel("")
	ui.folderLabel.Wrapping = fyne.TextWrapBreak
	ui.chooseFolderBtn = widget.NewButton(ui.localization.GetText(KeyChooseFolder), ui.onChooseFolder)
	ui.openFolderBtn = widget.NewButton(IconFolder+" "+ui.localization.GetText(KeyOpenFolder), ui.onOpenFolder)
	ui.renderFolder()

	ui.settingsCard = widget.NewCard(ui.localization.GetText(KeyDownloadSettings), "", container.NewVBox(
		ui.qualityLabel,
		ui.qualitySelect,
		rangeRow,
		ui.folderLabel,
		container.NewGridWithColumns(2, ui.chooseFolderBtn, ui.openFolderBtn),
	))

	// Download button and status section
	ui.downloadBtn = widget.NewButton(ui.localization.GetText(KeyDownload), ui.onDownloadClick)
	ui.downloadBtn.Importance = widget.HighImportance
	ui.statusLabel = widget.NewLabel("")
	ui.statusLabel.Wrapping = fyne.TextWrapWord
	ui.downloadBar = widget.NewProgressBar()

	bottom := container.NewVBox(ui.downloadBtn, ui.statusLabel, ui.downloadBar)

	// Listing takes the space left between the URL form and the settings
	content := container.NewBorder(ui.urlCard, container.NewVBox(ui.settingsCard, bottom), nil, nil, ui.detailsCard)

	ui.window.SetContent(content)
}

// newRangeEntry creates a numeric entry bounded by the fetched entry count
func (ui *RootUI) newRangeEntry() *widget.Entry {
	entry := widget.NewEntry()
	entry.SetText("1")
	entry.Validator = ui.validateRangeValue
	return entry
}

// validateRangeValue accepts item positions in [1, rangeMax]
func (ui *RootUI) validateRangeValue(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return session.ErrInvalidRange
	}
	if ui.rangeMax > 0 && n > ui.rangeMax {
		return fmt.Errorf("%w: %d exceeds %d entries", session.ErrInvalidRange, n, ui.rangeMax)
	}
	return nil
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languages := ui.localization.GetAvailableLanguages()
	codes := make([]string, 0, len(languages))
	for code := range languages {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for _, code := range codes {
		langCode := code
		langItem := fyne.NewMenuItem(languages[code], func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	))
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	l := ui.localization
	ui.window.SetTitle(l.GetText(KeyAppTitle))
	ui.urlCard.SetTitle(l.GetText(KeyPlaylistURL))
	ui.urlEntry.SetPlaceHolder(l.GetText(KeyEnterURL))
	ui.fetchBtn.SetText(l.GetText(KeyFetch))
	ui.detailsCard.SetTitle(l.GetText(KeyPlaylistDetails))
	ui.settingsCard.SetTitle(l.GetText(KeyDownloadSettings))
	ui.qualityLabel.SetText(l.GetText(KeySelectQuality))
	ui.rangeLabel.SetText(l.GetText(KeySelectRange))
	ui.startLabel.SetText(l.GetText(KeyStart))
	ui.endLabel.SetText(l.GetText(KeyEnd))
	ui.chooseFolderBtn.SetText(l.GetText(KeyChooseFolder))
	ui.openFolderBtn.SetText(IconFolder + " " + l.GetText(KeyOpenFolder))
	ui.downloadBtn.SetText(l.GetText(KeyDownload))
	ui.renderFolder()
}

// onShowSettings opens the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window, ui.onSettingsSaved).Show()
}

// onSettingsSaved applies settings written by the dialog
func (ui *RootUI) onSettingsSaved() {
	ui.localization.SetLanguage(ui.settings.GetLanguage())
	ui.qualitySelect.SetSelected(ui.settings.GetQualityPreset().Label())
	ui.refreshUITexts()
	ui.createMenu()
}

// onFetchClick handles the fetch button click
func (ui *RootUI) onFetchClick() {
	if err := ui.controller.Fetch(ui.urlEntry.Text); err != nil {
		log.Printf("Fetch rejected: %v", err)
	}
}

// onDownloadClick handles the download button click
func (ui *RootUI) onDownloadClick() {
	start, errStart := strconv.Atoi(strings.TrimSpace(ui.startEntry.Text))
	end, errEnd := strconv.Atoi(strings.TrimSpace(ui.endEntry.Text))
	if errStart != nil || errEnd != nil {
		ui.ShowError(fmt.Errorf("%w: %q-%q", session.ErrInvalidRange, ui.startEntry.Text, ui.endEntry.Text))
		return
	}

	quality := model.ParseQuality(ui.qualitySelect.Selected)
	if err := ui.controller.Download(quality, start, end); err != nil {
		log.Printf("Download rejected: %v", err)
	}
}

// onChooseFolder opens a folder dialog starting at the current folder
func (ui *RootUI) onChooseFolder() {
	folderDialog := dialog.NewFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil {
			ui.ShowError(err)
			return
		}
		if uri == nil {
			return
		}
		ui.controller.SelectFolder(uri.Path())
	}, ui.window)

	start := ui.controller.Folder()
	if start == "" {
		start, _ = platform.GetHomeDownloadsDir()
	}
	if platform.DirExists(start) {
		if lister, err := storage.ListerForURI(storage.NewFileURI(start)); err == nil {
			folderDialog.SetLocation(lister)
		}
	}
	folderDialog.Show()
}

// onOpenFolder reveals the download folder in the system file manager
func (ui *RootUI) onOpenFolder() {
	folder := ui.controller.Folder()
	if folder == "" {
		ui.ShowError(session.ErrNoFolder)
		return
	}
	if err := platform.OpenFolder(folder); err != nil {
		log.Printf("Failed to open folder %s: %v", folder, err)
		ui.ShowError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyErrOpenFolder), err))
	}
}

// errorText localizes controller errors
func (ui *RootUI) errorText(err error) string {
	keys := []struct {
		target error
		key    string
	}{
		{session.ErrEmptyURL, KeyErrEmptyURL},
		{session.ErrInvalidURL, KeyErrInvalidURL},
		{session.ErrBusy, KeyErrBusy},
		{session.ErrNotFetched, KeyErrNotFetched},
		{session.ErrNoFolder, KeyErrNoFolder},
		{session.ErrFolderMissing, KeyErrFolderMissing},
		{session.ErrInvalidRange, KeyErrInvalidRange},
	}
	for _, k := range keys {
		if errors.Is(err, k.target) {
			return ui.localization.GetText(k.key)
		}
	}
	return session.Message(err)
}

// renderFolder updates the folder label; must run on the UI loop
func (ui *RootUI) renderFolder() {
	folder := ui.folder
	if folder == "" {
		folder = ui.localization.GetText(KeyNotSelected)
		ui.openFolderBtn.Disable()
	} else {
		ui.openFolderBtn.Enable()
	}
	ui.folderLabel.SetText(fmt.Sprintf(ui.localization.GetText(KeyCurrentFolder), folder))
}

// ShowError implements session.View
func (ui *RootUI) ShowError(err error) {
	message := ui.errorText(err)
	fyne.Do(func() {
		dialog.ShowError(errors.New(message), ui.window)
	})
}

// SetStatus implements session.View
func (ui *RootUI) SetStatus(message string) {
	fyne.Do(func() {
		ui.statusLabel.SetText(message)
	})
}

// SetFetchEnabled implements session.View
func (ui *RootUI) SetFetchEnabled(enabled bool) {
	fyne.Do(func() {
		setEnabled(ui.fetchBtn, enabled)
	})
}

// SetFetchProgress implements session.View
func (ui *RootUI) SetFetchProgress(percent int) {
	fyne.Do(func() {
		ui.fetchBar.SetValue(float64(percent) / 100)
	})
}

// SetPlaylist implements session.View
func (ui *RootUI) SetPlaylist(listing string, count int) {
	fyne.Do(func() {
		ui.details.SetText(listing)
	})
}

// SetRange implements session.View
func (ui *RootUI) SetRange(start, end, max int) {
	fyne.Do(func() {
		ui.rangeMax = max
		ui.startEntry.SetText(strconv.Itoa(start))
		ui.endEntry.SetText(strconv.Itoa(end))
		_ = ui.startEntry.Validate()
		_ = ui.endEntry.Validate()
	})
}

// SetDownloadEnabled implements session.View
func (ui *RootUI) SetDownloadEnabled(enabled bool) {
	fyne.Do(func() {
		setEnabled(ui.downloadBtn, enabled)
	})
}

// SetDownloadProgress implements session.View
func (ui *RootUI) SetDownloadProgress(percent int) {
	fyne.Do(func() {
		ui.downloadBar.SetValue(float64(percent) / 100)
	})
}

// SetFolder implements session.View
func (ui *RootUI) SetFolder(dir string) {
	fyne.Do(func() {
		ui.folder = dir
		ui.renderFolder()
	})
}

func setEnabled(w fyne.Disableable, enabled bool) {
	if enabled {
		w.Enable()
	} else {
		w.Disable()
	}
}
