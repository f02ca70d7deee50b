package views

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/officerfeedback/officer-feedback/internal/models"
	"github.com/officerfeedback/officer-feedback/internal/services"
	"github.com/officerfeedback/officer-feedback/pkg/logger"
	"go.uber.org/zap"
)

var (
	// ErrSubmitInProgress is returned by Submit while a previous submission is in flight
	ErrSubmitInProgress = errors.New("submission already in progress")

	// ErrViewClosed is returned when the detail screen has been left
	ErrViewClosed = errors.New("detail view closed")
)

// SubmitState is the detail screen's submission state
type SubmitState int

const (
	SubmitIdle SubmitState = iota
	SubmitSubmitting
	SubmitConfirming
	SubmitDone
)

func (s SubmitState) String() string {
	switch s {
	case SubmitSubmitting:
		return "submitting"
	case SubmitConfirming:
		return "confirming"
	case SubmitDone:
		return "done"
	default:
		return "idle"
	}
}

// DetailCallbacks connect the detail screen to its parent.
// OnSubmitted runs exactly once, after the success prompt is acknowledged.
type DetailCallbacks struct {
	OnSubmitted func(ctx context.Context)
	OnBack      func()
}

// DetailView shows one officer's feedback history and the feedback form
type DetailView struct {
	officer   *models.Officer
	officers  services.OfficerServiceInterface
	feedback  services.FeedbackServiceInterface
	notifier  Notifier
	callbacks DetailCallbacks

	mu        sync.RWMutex
	entries   []*models.FeedbackEntry
	loaded    bool
	loading   bool
	draft     models.FeedbackDraft
	state     SubmitState
	closed    bool
	listeners []func()
}

// NewDetailView creates the detail screen for officer; call Load to fetch its history
func NewDetailView(
	officer *models.Officer,
	officers services.OfficerServiceInterface,
	feedback services.FeedbackServiceInterface,
	notifier Notifier,
	callbacks DetailCallbacks,
) *DetailView {
	return &DetailView{
		officer:   officer,
		officers:  officers,
		feedback:  feedback,
		notifier:  notifier,
		callbacks: callbacks,
		entries:   []*models.FeedbackEntry{},
		draft:     models.NewFeedbackDraft(),
	}
}

// Officer returns the officer this screen is about
func (v *DetailView) Officer() *models.Officer {
	return v.officer
}

// OnChange registers fn to run after every state change
func (v *DetailView) OnChange(fn func()) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.listeners = append(v.listeners, fn)
}

// Load fetches the officer's feedback history
func (v *DetailView) Load(ctx context.Context) error {
	v.mu.Lock()
	v.loading = true
	v.mu.Unlock()
	v.changed()

	entries, err := v.officers.ListFeedback(ctx, v.officer.ID)

	v.mu.Lock()
	v.loading = false
	closed := v.closed
	if err == nil && !closed {
		v.entries = entries
		v.loaded = true
	}
	v.mu.Unlock()

	if closed {
		return ErrViewClosed
	}
	if err != nil {
		logger.LogError(err, "Failed to fetch feedback", zap.Int("officer_id", v.officer.ID))
		v.notifier.Notify(NoticeError, "Error", "Failed to load feedback")
	}
	v.changed()
	return err
}

// Loading reports whether the feedback section spinner should show
func (v *DetailView) Loading() bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.loading
}

// Entries returns the loaded feedback history
func (v *DetailView) Entries() []*models.FeedbackEntry {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return append([]*models.FeedbackEntry(nil), v.entries...)
}

// Empty reports whether the history loaded and has no entries
func (v *DetailView) Empty() bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.loaded && len(v.entries) == 0
}

// Draft returns a copy of the form state
func (v *DetailView) Draft() models.FeedbackDraft {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.draft
}

// SetRating picks a star rating; 0 clears it
func (v *DetailView) SetRating(rating int) error {
	if rating < 0 || rating > models.MaxRating {
		return fmt.Errorf("rating must be between 0 and %d, got %d", models.MaxRating, rating)
	}
	v.mu.Lock()
	v.draft.Rating = rating
	v.mu.Unlock()
	v.changed()
	return nil
}

// SetComment replaces the free-text comment
func (v *DetailView) SetComment(comment string) {
	v.mu.Lock()
	v.draft.Comment = comment
	v.mu.Unlock()
	v.changed()
}

// SetAnonymous sets the anonymity checkbox
func (v *DetailView) SetAnonymous(anonymous bool) {
	v.mu.Lock()
	v.draft.Anonymous = anonymous
	v.mu.Unlock()
	v.changed()
}

// State returns the submission state
func (v *DetailView) State() SubmitState {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.state
}

// Submitting reports whether the submit control should be disabled and busy
func (v *DetailView) Submitting() bool {
	return v.State() == SubmitSubmitting
}

// Submit validates the draft and posts it.
// With no rating it raises a validation prompt and makes no request.
// On failure the draft is kept and the form returns to idle for a retry.
func (v *DetailView) Submit(ctx context.Context) error {
	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		return ErrViewClosed
	}
	if v.state != SubmitIdle {
		v.mu.Unlock()
		return ErrSubmitInProgress
	}
	draft := v.draft
	if !draft.HasRating() {
		v.mu.Unlock()
		v.notifier.Notify(NoticeValidation, "Rating Required", "Please select a rating before submitting")
		return services.ErrRatingRequired
	}
	v.state = SubmitSubmitting
	v.mu.Unlock()
	v.changed()

	err := v.feedback.Submit(ctx, v.officer.ID, draft)

	v.mu.Lock()
	closed := v.closed
	if err != nil {
		v.state = SubmitIdle
	} else {
		v.state = SubmitConfirming
	}
	v.mu.Unlock()

	if closed {
		return ErrViewClosed
	}

	if err != nil {
		v.notifier.Notify(NoticeError, "Error", "Failed to submit feedback")
		v.changed()
		return err
	}

	v.changed()
	v.notifier.Confirm("Success", "Thank you for your feedback!", func() {
		v.Acknowledge(ctx)
	})
	return nil
}

// Acknowledge dismisses the success prompt, discards the draft and hands control back to the parent.
// Only the first acknowledgment after a successful submission has any effect.
func (v *DetailView) Acknowledge(ctx context.Context) bool {
	v.mu.Lock()
	if v.closed || v.state != SubmitConfirming {
		v.mu.Unlock()
		return false
	}
	v.state = SubmitDone
	v.draft = models.NewFeedbackDraft()
	v.closed = true
	v.mu.Unlock()

	logger.Debug("Feedback acknowledged", zap.Int("officer_id", v.officer.ID))
	if v.callbacks.OnSubmitted != nil {
		v.callbacks.OnSubmitted(ctx)
	}
	return true
}

// Back leaves the screen without refreshing; the draft is discarded.
// Pending results are ignored after this.
func (v *DetailView) Back() {
	if v.close() && v.callbacks.OnBack != nil {
		v.callbacks.OnBack()
	}
}

// close marks the screen as left without notifying the parent.
// It returns false if the screen was already closed.
func (v *DetailView) close() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return false
	}
	v.closed = true
	v.draft = models.NewFeedbackDraft()
	return true
}

// Closed reports whether the screen has been left
func (v *DetailView) Closed() bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.closed
}

func (v *DetailView) changed() {
	v.mu.RLock()
	listeners := append([]func(){}, v.listeners...)
	v.mu.RUnlock()

	for _, fn := range listeners {
		fn()
	}
}
