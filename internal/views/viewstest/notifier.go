// Package viewstest provides an in-memory views.Notifier for driving view models in tests.
package viewstest

import (
	"sync"

	"github.com/officerfeedback/officer-feedback/internal/views"
)

// Notice is one recorded notification
type Notice struct {
	Kind    views.NoticeKind
	Title   string
	Message string
}

// RecordingNotifier is a views.Notifier that keeps notices in memory and holds
// confirmations until Acknowledge.
type RecordingNotifier struct {
	mu      sync.Mutex
	notices []Notice
	pending []func()
}

// NewRecordingNotifier creates an empty recorder
func NewRecordingNotifier() *RecordingNotifier {
	return &RecordingNotifier{}
}

func (r *RecordingNotifier) Notify(kind views.NoticeKind, title, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notices = append(r.notices, Notice{Kind: kind, Title: title, Message: message})
}

func (r *RecordingNotifier) Confirm(title, message string, onAck func()) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notices = append(r.notices, Notice{Kind: views.NoticeInfo, Title: title, Message: message})
	r.pending = append(r.pending, onAck)
}

// Drain returns and clears the recorded notices
func (r *RecordingNotifier) Drain() []Notice {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.notices
	r.notices = nil
	return out
}

// Pending reports how many confirmations await acknowledgment
func (r *RecordingNotifier) Pending() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.pending)
}

// Acknowledge dismisses the oldest confirmation and runs its callback.
// It returns false when nothing is pending.
func (r *RecordingNotifier) Acknowledge() bool {
	r.mu.Lock()
	if len(r.pending) == 0 {
		r.mu.Unlock()
		return false
	}
	onAck := r.pending[0]
	r.pending = r.pending[1:]
	r.mu.Unlock()

	if onAck != nil {
		onAck()
	}
	return true
}

var _ views.Notifier = (*RecordingNotifier)(nil)
