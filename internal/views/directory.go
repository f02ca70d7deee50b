package views

import (
	"context"
	"sync"

	"github.com/officerfeedback/officer-feedback/internal/models"
	"github.com/officerfeedback/officer-feedback/internal/services"
	"github.com/officerfeedback/officer-feedback/pkg/logger"
	"github.com/officerfeedback/officer-feedback/pkg/metrics"
	"go.uber.org/zap"
)

// DirectoryView owns the officer roster and the live search filter
type DirectoryView struct {
	service  services.OfficerServiceInterface
	notifier Notifier
	onSelect func(*models.Officer)

	mu        sync.RWMutex
	officers  []*models.Officer
	loaded    bool
	inFlight  int
	refreshes int
	// generation numbers each fetch; applied is the newest one whose roster is held
	generation uint64
	applied    uint64
	search     string
	listeners  []func()
}

// NewDirectoryView creates an empty directory; call Load to populate it
func NewDirectoryView(service services.OfficerServiceInterface, notifier Notifier) *DirectoryView {
	return &DirectoryView{
		service:  service,
		notifier: notifier,
		officers: []*models.Officer{},
	}
}

// OnChange registers fn to run after every state change
func (v *DirectoryView) OnChange(fn func()) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.listeners = append(v.listeners, fn)
}

// Load fetches the roster when the screen is first shown
func (v *DirectoryView) Load(ctx context.Context) error {
	return v.fetch(ctx, "load")
}

// Refresh re-fetches the roster (pull-to-refresh and after a submission)
func (v *DirectoryView) Refresh(ctx context.Context) error {
	v.mu.Lock()
	v.refreshes++
	v.mu.Unlock()

	err := v.fetch(ctx, "refresh")

	v.mu.Lock()
	v.refreshes--
	v.mu.Unlock()
	v.changed()
	return err
}

// fetch drops a result older than the roster already held
func (v *DirectoryView) fetch(ctx context.Context, trigger string) error {
	v.mu.Lock()
	v.inFlight++
	v.generation++
	gen := v.generation
	v.mu.Unlock()
	v.changed()

	metrics.DirectoryRefreshes.WithLabelValues(trigger).Inc()
	officers, err := v.service.ListOfficers(ctx)

	v.mu.Lock()
	v.inFlight--
	stale := gen < v.applied
	if err == nil && !stale {
		v.officers = officers
		v.loaded = true
		v.applied = gen
	}
	v.mu.Unlock()

	if stale {
		logger.Debug("Dropped out-of-date officer list", zap.String("trigger", trigger), zap.Uint64("generation", gen))
	} else if err != nil {
		logger.LogError(err, "Failed to fetch officers", zap.String("trigger", trigger))
		v.notifier.Notify(NoticeError, "Error", "Failed to load officers")
	}
	v.changed()
	return err
}

// Loading reports whether the full-screen spinner should show.
// Once any data is held, later fetches do not show it.
func (v *DirectoryView) Loading() bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.inFlight > 0 && !v.loaded
}

// Refreshing reports whether a pull-to-refresh is in flight
func (v *DirectoryView) Refreshing() bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.refreshes > 0
}

// Officers returns the unfiltered roster
func (v *DirectoryView) Officers() []*models.Officer {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return append([]*models.Officer(nil), v.officers...)
}

// Search returns the current search term
func (v *DirectoryView) Search() string {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.search
}

// SetSearch updates the live filter
func (v *DirectoryView) SetSearch(term string) {
	v.mu.Lock()
	v.search = term
	matches := len(services.FilterOfficers(v.officers, term))
	v.mu.Unlock()

	if term != "" {
		metrics.SearchResults.Observe(float64(matches))
	}
	v.changed()
}

// Filtered returns the officers matching the current search, in roster order
func (v *DirectoryView) Filtered() []*models.Officer {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return append([]*models.Officer(nil), services.FilterOfficers(v.officers, v.search)...)
}

// Header returns the "Showing N of M officers" line
func (v *DirectoryView) Header() string {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return FormatHeader(len(services.FilterOfficers(v.officers, v.search)), len(v.officers))
}

// Select opens the detail screen for officer
func (v *DirectoryView) Select(officer *models.Officer) {
	v.mu.RLock()
	onSelect := v.onSelect
	v.mu.RUnlock()

	if onSelect != nil && officer != nil {
		onSelect(officer)
	}
}

func (v *DirectoryView) setOnSelect(fn func(*models.Officer)) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.onSelect = fn
}

func (v *DirectoryView) changed() {
	v.mu.RLock()
	listeners := append([]func(){}, v.listeners...)
	v.mu.RUnlock()

	for _, fn := range listeners {
		fn()
	}
}
