// Package tui renders the officer directory and feedback screens as plain text
// and drives them from line-oriented input.
package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/officerfeedback/officer-feedback/internal/models"
	"github.com/officerfeedback/officer-feedback/internal/views"
)

// Renderer writes screens to out
type Renderer struct {
	out io.Writer
	now func() time.Time
}

// NewRenderer creates a renderer writing to out
func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{out: out, now: time.Now}
}

// Directory writes the header line and the filtered roster
func (r *Renderer) Directory(dir *views.DirectoryView) {
	if dir.Loading() {
		fmt.Fprintln(r.out, "Loading officers...")
		return
	}
	if search := dir.Search(); search != "" {
		fmt.Fprintf(r.out, "Search: %q\n", search)
	}
	r.Officers(dir.Header(), dir.Filtered())
}

// Officers writes header followed by one numbered line per officer
func (r *Renderer) Officers(header string, officers []*models.Officer) {
	fmt.Fprintln(r.out, header)
	for i, o := range officers {
		fmt.Fprintf(r.out, "%3d. [%s] %s, %s  %s %s\n",
			i+1, o.Initials(), o.FullName(), o.JobTitle, views.StarFilled, o.DisplayRating())
	}
}

// Detail writes the officer header, the feedback history and the form state
func (r *Renderer) Detail(detail *views.DetailView) {
	o := detail.Officer()
	fmt.Fprintf(r.out, "%s\n%s  %s %s\n\n", o.FullName(), o.JobTitle, views.StarFilled, o.DisplayRating())

	fmt.Fprintln(r.out, "Feedback")
	switch {
	case detail.Loading():
		fmt.Fprintln(r.out, "  Loading feedback...")
	case detail.Empty():
		fmt.Fprintln(r.out, "  No feedback yet")
	default:
		r.Feedback(detail.Entries())
	}

	draft := detail.Draft()
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, "Leave feedback")
	fmt.Fprintf(r.out, "  Rating:    %s\n", views.FormatStars(draft.Rating))
	fmt.Fprintf(r.out, "  Comment:   %s\n", orNone(draft.Comment))
	fmt.Fprintf(r.out, "  Anonymous: %s\n", yesNo(draft.Anonymous))
	if detail.Submitting() {
		fmt.Fprintln(r.out, "  Submitting...")
	}
}

// Feedback writes one block per entry
func (r *Renderer) Feedback(entries []*models.FeedbackEntry) {
	now := r.now()
	for _, e := range entries {
		fmt.Fprintf(r.out, "  %s  %s  %s\n", views.FormatStars(e.Rating), views.FormatAuthor(e), views.FormatAge(e.CreatedAt, now))
		fmt.Fprintf(r.out, "    %s\n", views.FormatComment(e))
	}
}

func orNone(s string) string {
	if strings.TrimSpace(s) == "" {
		return "(none)"
	}
	return s
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
