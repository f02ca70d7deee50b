package ui

import (
	"context"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/officerfeedback/officer-feedback/internal/models"
	"github.com/officerfeedback/officer-feedback/internal/services"
	"github.com/officerfeedback/officer-feedback/internal/views"
)

// directoryScreen renders a DirectoryView as a searchable list
type directoryScreen struct {
	ctx       context.Context
	view      *views.DirectoryView
	debouncer *services.Debouncer

	header   *widget.Label
	search   *widget.Entry
	list     *widget.List
	progress *widget.ProgressBarInfinite
	content  fyne.CanvasObject

	mu    sync.Mutex
	shown []*models.Officer
}

func newDirectoryScreen(ctx context.Context, view *views.DirectoryView, debounce time.Duration) *directoryScreen {
	s := &directoryScreen{ctx: ctx, view: view}
	s.debouncer = services.NewDebouncer(debounce, view.SetSearch)

	s.header = widget.NewLabel(views.FormatHeader(0, 0))
	s.progress = widget.NewProgressBarInfinite()
	s.progress.Hide()

	s.search = widget.NewEntry()
	s.search.SetPlaceHolder("Search officers by name")
	s.search.OnChanged = s.debouncer.Trigger

	s.list = widget.NewList(s.length, newOfficerRow, s.updateRow)
	s.list.OnSelected = func(id widget.ListItemID) {
		s.list.UnselectAll()
		if officer := s.at(id); officer != nil {
			s.view.Select(officer)
		}
	}

	refresh := widget.NewButtonWithIcon("", theme.ViewRefreshIcon(), func() {
		go s.view.Refresh(s.ctx) //nolint:errcheck // failures are shown through the notifier
	})

	top := container.NewVBox(
		container.NewBorder(nil, nil, nil, refresh, s.search),
		s.header,
		s.progress,
	)
	s.content = container.NewBorder(top, nil, nil, nil, s.list)

	view.OnChange(func() { fyne.Do(s.refresh) })
	return s
}

// refresh syncs widgets with the view; runs on the UI goroutine
func (s *directoryScreen) refresh() {
	filtered := s.view.Filtered()
	s.mu.Lock()
	s.shown = filtered
	s.mu.Unlock()

	s.header.SetText(s.view.Header())
	if s.view.Loading() || s.view.Refreshing() {
		s.progress.Show()
	} else {
		s.progress.Hide()
	}
	s.list.Refresh()
}

func (s *directoryScreen) length() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.shown)
}

func (s *directoryScreen) at(id widget.ListItemID) *models.Officer {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id < 0 || id >= len(s.shown) {
		return nil
	}
	return s.shown[id]
}

func newOfficerRow() fyne.CanvasObject {
	initials := widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	name := widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	title := widget.NewLabel("")
	rating := widget.NewLabel("")
	return container.NewHBox(initials, container.NewVBox(name, title), layout.NewSpacer(), rating)
}

func (s *directoryScreen) updateRow(id widget.ListItemID, obj fyne.CanvasObject) {
	officer := s.at(id)
	if officer == nil {
		return
	}
	row := obj.(*fyne.Container)
	row.Objects[0].(*widget.Label).SetText(officer.Initials())
	text := row.Objects[1].(*fyne.Container)
	text.Objects[0].(*widget.Label).SetText(officer.FullName())
	text.Objects[1].(*widget.Label).SetText(officer.JobTitle)
	row.Objects[3].(*widget.Label).SetText(views.StarFilled + " " + officer.DisplayRating())
}

func (s *directoryScreen) stop() {
	s.debouncer.Stop()
}
