// Package ui is the fyne desktop front end for the officer directory.
package ui

import (
	"context"
	"time"

	"fyne.io/fyne/v2"

	"github.com/officerfeedback/officer-feedback/internal/views"
	"github.com/officerfeedback/officer-feedback/pkg/logger"
	"go.uber.org/zap"
)

// Window hosts the directory and detail screens in one fyne window
type Window struct {
	ctx       context.Context
	win       fyne.Window
	nav       *views.Navigator
	directory *directoryScreen
}

// NewWindow binds nav to win; nav must report to a notifier parented to win
func NewWindow(ctx context.Context, win fyne.Window, nav *views.Navigator, searchDebounce time.Duration) *Window {
	w := &Window{
		ctx:       ctx,
		win:       win,
		nav:       nav,
		directory: newDirectoryScreen(ctx, nav.Directory(), searchDebounce),
	}
	nav.OnChange(func(screen views.Screen) {
		fyne.Do(func() { w.show(screen) })
	})
	return w
}

// Start shows the directory and begins the initial roster fetch
func (w *Window) Start() {
	w.win.SetContent(w.directory.content)
	go func() {
		if err := w.nav.Directory().Load(w.ctx); err != nil {
			logger.Warn("Initial directory load failed", zap.Error(err))
		}
	}()
}

// Stop releases timers held by the screens
func (w *Window) Stop() {
	w.directory.stop()
}

func (w *Window) show(screen views.Screen) {
	if screen == views.ScreenDirectory {
		w.win.SetContent(w.directory.content)
		w.directory.refresh()
		return
	}

	detail := w.nav.Detail()
	if detail == nil {
		return
	}
	w.win.SetContent(newDetailScreen(w.ctx, detail).content)
	go func() {
		if err := detail.Load(w.ctx); err != nil {
			logger.Debug("Feedback load did not complete", zap.Int("officer_id", detail.Officer().ID), zap.Error(err))
		}
	}()
}
