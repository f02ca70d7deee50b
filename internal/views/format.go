package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/officerfeedback/officer-feedback/internal/models"
)

const (
	StarFilled = "★"
	StarEmpty  = "☆"
)

// FormatHeader renders the directory count line
func FormatHeader(shown, total int) string {
	return fmt.Sprintf("Showing %d of %d officers", shown, total)
}

// FormatStars renders a rating as filled and empty stars, clamped to 0..5
func FormatStars(rating int) string {
	rating = max(0, min(rating, models.MaxRating))
	return strings.Repeat(StarFilled, rating) + strings.Repeat(StarEmpty, models.MaxRating-rating)
}

// FormatAuthor returns how an entry is attributed
func FormatAuthor(entry *models.FeedbackEntry) string {
	if entry.IsAnonymous {
		return "Anonymous"
	}
	return "Named"
}

// FormatComment returns the entry text or a placeholder when there is none
func FormatComment(entry *models.FeedbackEntry) string {
	if entry.HasComment() {
		return entry.FeedbackText
	}
	return "(no comment)"
}

// FormatAge renders how long before now t was, e.g. "3 days ago"
func FormatAge(t, now time.Time) string {
	if t.IsZero() {
		return "unknown date"
	}
	return humanize.RelTime(t, now, "ago", "from now")
}
