package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/officerfeedback/officer-feedback/config"
	"github.com/officerfeedback/officer-feedback/internal/bootstrap"
	"github.com/officerfeedback/officer-feedback/internal/ui"
	"github.com/officerfeedback/officer-feedback/pkg/logger"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	rt, err := bootstrap.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := rt.Close(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "Shutdown error: %v\n", err)
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	fyneApp := app.NewWithID("org.officerfeedback.directory")
	win := fyneApp.NewWindow("Officer Directory")
	win.Resize(fyne.NewSize(480, 800))

	nav := rt.NewNavigator(ui.NewDialogNotifier(win))
	window := ui.NewWindow(ctx, win, nav, cfg.SearchDebounce())
	window.Start()

	logger.Info("Desktop app started", zap.String("api_base_url", cfg.API.BaseURL))
	win.ShowAndRun()
	window.Stop()
}
