package main

import (
	"context"
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/yt-playlist-downloader/internal/config"
	"github.com/ytget/yt-playlist-downloader/internal/download"
	"github.com/ytget/yt-playlist-downloader/internal/model"
	"github.com/ytget/yt-playlist-downloader/internal/platform"
	"github.com/ytget/yt-playlist-downloader/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.yt-playlist-downloader"
	AppName = "YT Playlist Downloader"
)

func main() {
	log.Printf("%s v%s starting...", AppName, version)

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))
	if icon, err := ui.LoadAppIcon(); err == nil {
		myWindow.SetIcon(icon)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize services
	settings := config.NewSettings(myApp.Preferences())
	engine := download.NewYTDLPEngine()
	native := platform.NewNativeLister()

	// The listing backend is read per fetch so settings apply without restart
	lister := download.ListerFunc(func(ctx context.Context, url string) ([]model.PlaylistEntry, error) {
		if settings.GetListingBackend() == config.BackendNative {
			return native.ListFlat(ctx, url)
		}
		return engine.ListFlat(ctx, url)
	})

	fetcher := download.NewFetcher(lister)
	downloader := download.NewDownloader(engine)

	go func() {
		if err := download.EnsureEngine(ctx); err != nil {
			log.Printf("yt-dlp is not available: %v", err)
		}
	}()

	root := ui.NewRootUI(ctx, myWindow, settings, fetcher, downloader)

	myWindow.SetOnClosed(func() {
		cancel()
		root.Controller().Wait()
	})

	myWindow.ShowAndRun()
}
