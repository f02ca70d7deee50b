package tui

import (
	"bytes"
	"testing"
	"time"

	"github.com/officerfeedback/officer-feedback/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestRenderer_Officers(t *testing.T) {
	var out bytes.Buffer
	r := NewRenderer(&out)

	r.Officers("Showing 1 of 2 officers", []*models.Officer{
		{ID: 1, FirstName: "Jane", LastName: "Doe", JobTitle: "Sergeant", AverageRating: 4.2},
	})

	assert.Equal(t, "Showing 1 of 2 officers\n  1. [JD] Jane Doe, Sergeant  ★ 4.2\n", out.String())
}

func TestRenderer_Feedback(t *testing.T) {
	var out bytes.Buffer
	now := time.Date(2024, 3, 4, 12, 0, 0, 0, time.UTC)
	r := &Renderer{out: &out, now: func() time.Time { return now }}

	r.Feedback([]*models.FeedbackEntry{
		{Rating: 4, FeedbackText: "Helpful", IsAnonymous: true, CreatedAt: now.Add(-72 * time.Hour)},
		{Rating: 2, FeedbackText: "  ", IsAnonymous: false, CreatedAt: now.Add(-2 * time.Hour)},
	})

	assert.Equal(t,
		"  ★★★★☆  Anonymous  3 days ago\n    Helpful\n"+
			"  ★★☆☆☆  Named  2 hours ago\n    (no comment)\n",
		out.String())
}
