package ui

import (
	"errors"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"

	"github.com/officerfeedback/officer-feedback/internal/views"
)

// DialogNotifier shows notices as modal dialogs on a window
type DialogNotifier struct {
	win fyne.Window
}

var _ views.Notifier = (*DialogNotifier)(nil)

// NewDialogNotifier creates a notifier parented to win
func NewDialogNotifier(win fyne.Window) *DialogNotifier {
	return &DialogNotifier{win: win}
}

// Notify shows a dismissible dialog; callable from any goroutine
func (n *DialogNotifier) Notify(kind views.NoticeKind, title, message string) {
	fyne.Do(func() {
		if kind == views.NoticeError {
			dialog.ShowError(errors.New(message), n.win)
			return
		}
		dialog.ShowInformation(title, message, n.win)
	})
}

// Confirm shows a dialog whose dismissal runs onAck off the UI goroutine
func (n *DialogNotifier) Confirm(title, message string, onAck func()) {
	fyne.Do(func() {
		d := dialog.NewInformation(title, message, n.win)
		d.SetOnClosed(func() {
			if onAck != nil {
				go onAck()
			}
		})
		d.Show()
	})
}
