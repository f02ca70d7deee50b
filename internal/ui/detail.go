package ui

import (
	"context"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/officerfeedback/officer-feedback/internal/models"
	"github.com/officerfeedback/officer-feedback/internal/views"
)

// detailScreen renders a DetailView: officer header, history and the feedback form
type detailScreen struct {
	ctx  context.Context
	view *views.DetailView

	history   *fyne.Container
	progress  *widget.ProgressBarInfinite
	stars     []*widget.Button
	comment   *widget.Entry
	anonymous *widget.Check
	submit    *widget.Button
	content   fyne.CanvasObject
}

func newDetailScreen(ctx context.Context, view *views.DetailView) *detailScreen {
	s := &detailScreen{ctx: ctx, view: view}
	officer := view.Officer()
	draft := view.Draft()

	back := widget.NewButtonWithIcon("Back", theme.NavigateBackIcon(), view.Back)
	name := widget.NewLabelWithStyle(officer.FullName(), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	summary := widget.NewLabel(officer.JobTitle + "  " + views.StarFilled + " " + officer.DisplayRating())

	s.history = container.NewVBox()
	s.progress = widget.NewProgressBarInfinite()

	starRow := container.NewHBox()
	for i := models.MinRating; i <= models.MaxRating; i++ {
		rating := i
		btn := widget.NewButton(views.StarEmpty, func() {
			_ = view.SetRating(rating) //nolint:errcheck // rating is always in range
		})
		s.stars = append(s.stars, btn)
		starRow.Add(btn)
	}

	s.comment = widget.NewMultiLineEntry()
	s.comment.SetPlaceHolder("Share your experience (optional)")
	s.comment.SetText(draft.Comment)
	s.comment.OnChanged = view.SetComment

	s.anonymous = widget.NewCheck("Submit anonymously", nil)
	s.anonymous.SetChecked(draft.Anonymous)
	s.anonymous.OnChanged = view.SetAnonymous

	s.submit = widget.NewButtonWithIcon("Submit Feedback", theme.ConfirmIcon(), func() {
		go view.Submit(s.ctx) //nolint:errcheck // failures are shown through the notifier
	})
	s.submit.Importance = widget.HighImportance

	form := container.NewVBox(
		widget.NewLabelWithStyle("Leave Feedback", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		starRow,
		s.comment,
		s.anonymous,
		s.submit,
	)

	body := container.NewVBox(
		container.NewHBox(back),
		name,
		summary,
		widget.NewSeparator(),
		widget.NewLabelWithStyle("Feedback", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		s.progress,
		s.history,
		widget.NewSeparator(),
		form,
	)
	s.content = container.NewVScroll(body)

	view.OnChange(func() { fyne.Do(s.refresh) })
	s.refresh()
	return s
}

// refresh syncs widgets with the view; runs on the UI goroutine
func (s *detailScreen) refresh() {
	if s.view.Closed() {
		return
	}

	if s.view.Loading() {
		s.progress.Show()
	} else {
		s.progress.Hide()
	}

	s.history.RemoveAll()
	switch {
	case s.view.Empty():
		s.history.Add(widget.NewLabel("No feedback yet"))
	default:
		now := time.Now()
		for _, e := range s.view.Entries() {
			s.history.Add(entryCard(e, now))
		}
	}

	draft := s.view.Draft()
	for i, btn := range s.stars {
		if i < draft.Rating {
			btn.SetText(views.StarFilled)
			btn.Importance = widget.WarningImportance
		} else {
			btn.SetText(views.StarEmpty)
			btn.Importance = widget.MediumImportance
		}
		btn.Refresh()
	}

	if s.view.Submitting() {
		s.submit.SetText("Submitting...")
		s.submit.Disable()
	} else {
		s.submit.SetText("Submit Feedback")
		s.submit.Enable()
	}
}

func entryCard(e *models.FeedbackEntry, now time.Time) fyne.CanvasObject {
	meta := widget.NewLabel(views.FormatStars(e.Rating) + "  " + views.FormatAuthor(e) + "  " + views.FormatAge(e.CreatedAt, now))
	text := widget.NewLabel(views.FormatComment(e))
	text.Wrapping = fyne.TextWrapWord
	if !e.HasComment() {
		text.TextStyle = fyne.TextStyle{Italic: true}
	}
	return container.NewVBox(meta, text, widget.NewSeparator())
}
