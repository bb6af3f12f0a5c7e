package main

import (
	"fmt"
	"log"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/RainbowTabitha/BoardDownloaderMPN/internal/catalog"
	"github.com/RainbowTabitha/BoardDownloaderMPN/internal/config"
	"github.com/RainbowTabitha/BoardDownloaderMPN/internal/imagecache"
	"github.com/RainbowTabitha/BoardDownloaderMPN/internal/patch"
	"github.com/RainbowTabitha/BoardDownloaderMPN/internal/tool"
	"github.com/RainbowTabitha/BoardDownloaderMPN/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.rainbowtabitha.boarddownloadermpn"
	AppName = "Board Browser"

	WindowWidth  = 1290
	WindowHeight = 650
)

func main() {
	fmt.Printf("%s v%s starting...\n", AppName, version)

	myApp := app.NewWithID(AppID)
	myWindow := myApp.NewWindow(AppName)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	cfg, err := config.New()
	if err != nil {
		log.Fatalf("failed to initialize config: %v", err)
	}

	client := catalog.NewClient(cfg.APIBaseURL)
	icons := imagecache.New(cfg.CacheDir)
	provisioner := tool.NewProvisioner(cfg, client)
	picker := ui.NewDialogFilePicker(myWindow)
	patchSvc := patch.NewService(client, provisioner, tool.ExecRunner{}, picker, os.TempDir())

	// Create and setup UI
	ui.NewRootUI(myWindow, client, icons, patchSvc)

	// Show and run
	myWindow.ShowAndRun()
}
