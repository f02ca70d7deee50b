package tui

import (
	"fmt"
	"io"
	"sync"

	"github.com/officerfeedback/officer-feedback/internal/views"
)

// Notifier prints notices to the terminal.
// Confirmations are held until the next input line acknowledges them.
type Notifier struct {
	out io.Writer

	mu      sync.Mutex
	pending []func()
}

var _ views.Notifier = (*Notifier)(nil)

// NewNotifier creates a notifier writing to out
func NewNotifier(out io.Writer) *Notifier {
	return &Notifier{out: out}
}

// Notify prints a non-blocking notice
func (n *Notifier) Notify(kind views.NoticeKind, title, message string) {
	prefix := "!"
	if kind == views.NoticeInfo {
		prefix = "*"
	}
	fmt.Fprintf(n.out, "%s %s: %s\n", prefix, title, message)
}

// Confirm prints a blocking prompt; onAck runs on the next Acknowledge
func (n *Notifier) Confirm(title, message string, onAck func()) {
	fmt.Fprintf(n.out, "* %s: %s [press Enter]\n", title, message)
	n.mu.Lock()
	n.pending = append(n.pending, onAck)
	n.mu.Unlock()
}

// Waiting reports whether a confirmation is outstanding
func (n *Notifier) Waiting() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.pending) > 0
}

// Acknowledge dismisses the oldest confirmation
func (n *Notifier) Acknowledge() bool {
	n.mu.Lock()
	if len(n.pending) == 0 {
		n.mu.Unlock()
		return false
	}
	onAck := n.pending[0]
	n.pending = n.pending[1:]
	n.mu.Unlock()

	if onAck != nil {
		onAck()
	}
	return true
}
