package services

import (
	"strings"

	"github.com/officerfeedback/officer-feedback/internal/models"
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// foldKey normalizes s for caseless comparison.
// A Caser is stateful, so one is built per call.
func foldKey(s string) string {
	return cases.Fold().String(norm.NFKC.String(s))
}

// MatchesSearch reports whether the officer's "first last" name contains term, ignoring case
func MatchesSearch(officer *models.Officer, term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(foldKey(officer.FullName()), foldKey(term))
}

// FilterOfficers returns the officers whose full name contains term, in their original order.
// An empty term returns the input slice unchanged.
func FilterOfficers(officers []*models.Officer, term string) []*models.Officer {
	if term == "" {
		return officers
	}

	filtered := make([]*models.Officer, 0, len(officers))
	for _, officer := range officers {
		if MatchesSearch(officer, term) {
			filtered = append(filtered, officer)
		}
	}
	return filtered
}
