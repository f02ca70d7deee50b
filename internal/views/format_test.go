package views_test

import (
	"testing"
	"time"

	"github.com/officerfeedback/officer-feedback/internal/models"
	"github.com/officerfeedback/officer-feedback/internal/views"
	"github.com/stretchr/testify/assert"
)

func TestFormatStars(t *testing.T) {
	tests := []struct {
		rating int
		want   string
	}{
		{0, "☆☆☆☆☆"},
		{1, "★☆☆☆☆"},
		{4, "★★★★☆"},
		{5, "★★★★★"},
		{9, "★★★★★"},
		{-2, "☆☆☆☆☆"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, views.FormatStars(tt.rating), "rating %d", tt.rating)
	}
}

func TestFormatEntryParts(t *testing.T) {
	anon := &models.FeedbackEntry{Rating: 3, IsAnonymous: true}
	named := &models.FeedbackEntry{Rating: 3, FeedbackText: "Kind"}

	assert.Equal(t, "Anonymous", views.FormatAuthor(anon))
	assert.Equal(t, "Named", views.FormatAuthor(named))
	assert.Equal(t, "(no comment)", views.FormatComment(anon))
	assert.Equal(t, "Kind", views.FormatComment(named))
}

func TestFormatAge(t *testing.T) {
	now := time.Date(2024, 3, 4, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "3 days ago", views.FormatAge(now.Add(-72*time.Hour), now))
	assert.Equal(t, "unknown date", views.FormatAge(time.Time{}, now))
}

func TestFormatHeader(t *testing.T) {
	assert.Equal(t, "Showing 0 of 1 officers", views.FormatHeader(0, 1))
}
