package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Officer represents a department member listed in the directory
type Officer struct {
	ID            int     `json:"id"`
	FirstName     string  `json:"first_name"`
	LastName      string  `json:"last_name"`
	JobTitle      string  `json:"job_title"`
	AverageRating float64 `json:"average_rating"`
}

// FullName returns "first last", the string the directory search matches against
func (o *Officer) FullName() string {
	return o.FirstName + " " + o.LastName
}

// DisplayRating formats the average rating with one decimal
func (o *Officer) DisplayRating() string {
	return fmt.Sprintf("%.1f", o.AverageRating)
}

// Initials returns the avatar letters shown next to an officer
func (o *Officer) Initials() string {
	var b strings.Builder
	for _, part := range []string{o.FirstName, o.LastName} {
		for _, r := range part {
			b.WriteRune(r)
			break
		}
	}
	return strings.ToUpper(b.String())
}

// FeedbackEntry is a persisted community rating for one officer
type FeedbackEntry struct {
	ID           int       `json:"id,omitempty"`
	OfficerID    int       `json:"officer_id,omitempty"`
	Rating       int       `json:"rating"`
	FeedbackText string    `json:"feedback_text"`
	IsAnonymous  bool      `json:"is_anonymous"`
	CreatedAt    time.Time `json:"created_at"`
}

// createdAtLayouts are tried in order when decoding created_at.
// Zone-less values are taken as UTC.
var createdAtLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// UnmarshalJSON decodes an entry, leaving CreatedAt zero when created_at is
// missing or in an unrecognized format
func (f *FeedbackEntry) UnmarshalJSON(data []byte) error {
	type plain FeedbackEntry
	aux := struct {
		*plain
		CreatedAt json.RawMessage `json:"created_at"`
	}{plain: (*plain)(f)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	f.CreatedAt = time.Time{}
	var raw string
	if err := json.Unmarshal(aux.CreatedAt, &raw); err != nil {
		return nil
	}
	f.CreatedAt = parseTimestamp(raw)
	return nil
}

// parseTimestamp parses a server timestamp, returning the zero time when no layout matches
func parseTimestamp(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	for _, layout := range createdAtLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return time.Time{}
}

// HasComment reports whether the entry carries free text
func (f *FeedbackEntry) HasComment() bool {
	return strings.TrimSpace(f.FeedbackText) != ""
}
