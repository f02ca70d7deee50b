package views

import (
	"context"
	"sync"

	"github.com/officerfeedback/officer-feedback/internal/models"
	"github.com/officerfeedback/officer-feedback/internal/services"
	"github.com/officerfeedback/officer-feedback/pkg/logger"
	"go.uber.org/zap"
)

// Screen is the navigation state of the app
type Screen int

const (
	ScreenDirectory Screen = iota
	ScreenDetail
)

func (s Screen) String() string {
	if s == ScreenDetail {
		return "detail"
	}
	return "directory"
}

// Navigator switches between the directory and one officer's detail screen.
// The directory lives for the whole session; a detail view lives for one visit.
type Navigator struct {
	officers  services.OfficerServiceInterface
	feedback  services.FeedbackServiceInterface
	notifier  Notifier
	directory *DirectoryView

	mu        sync.RWMutex
	screen    Screen
	detail    *DetailView
	listeners []func(Screen)
}

// NewNavigator creates the app navigation starting on the directory screen
func NewNavigator(officers services.OfficerServiceInterface, feedback services.FeedbackServiceInterface, notifier Notifier) *Navigator {
	n := &Navigator{
		officers:  officers,
		feedback:  feedback,
		notifier:  notifier,
		directory: NewDirectoryView(officers, notifier),
		screen:    ScreenDirectory,
	}
	n.directory.setOnSelect(func(officer *models.Officer) {
		n.ShowDetail(officer)
	})
	return n
}

// OnChange registers fn to run after every screen transition
func (n *Navigator) OnChange(fn func(Screen)) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.listeners = append(n.listeners, fn)
}

// Screen returns the active screen
func (n *Navigator) Screen() Screen {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.screen
}

// Directory returns the directory view
func (n *Navigator) Directory() *DirectoryView {
	return n.directory
}

// Detail returns the active detail view, or nil on the directory screen
func (n *Navigator) Detail() *DetailView {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.detail
}

// ShowDetail opens a fresh detail screen for officer.
// The caller is expected to call Load on the returned view.
func (n *Navigator) ShowDetail(officer *models.Officer) *DetailView {
	detail := NewDetailView(officer, n.officers, n.feedback, n.notifier, DetailCallbacks{
		OnSubmitted: n.onSubmitted,
		OnBack:      n.ShowDirectory,
	})

	n.mu.Lock()
	previous := n.detail
	n.detail = detail
	n.screen = ScreenDetail
	n.mu.Unlock()

	if previous != nil {
		previous.close()
	}

	logger.Debug("Navigated to officer", zap.Int("officer_id", officer.ID))
	n.changed(ScreenDetail)
	return detail
}

// ShowDirectory returns to the directory without refreshing it
func (n *Navigator) ShowDirectory() {
	n.mu.Lock()
	if n.screen == ScreenDirectory {
		n.mu.Unlock()
		return
	}
	detail := n.detail
	n.detail = nil
	n.screen = ScreenDirectory
	n.mu.Unlock()

	if detail != nil {
		detail.close()
	}
	n.changed(ScreenDirectory)
}

// onSubmitted navigates back and then re-fetches the roster, in that order
func (n *Navigator) onSubmitted(ctx context.Context) {
	n.ShowDirectory()
	_ = n.directory.Refresh(ctx) //nolint:errcheck // failure is already surfaced by the directory
}

func (n *Navigator) changed(screen Screen) {
	n.mu.RLock()
	listeners := append([]func(Screen){}, n.listeners...)
	n.mu.RUnlock()

	for _, fn := range listeners {
		fn(screen)
	}
}
