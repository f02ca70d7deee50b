package services_test

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/officerfeedback/officer-feedback/internal/models"
	"github.com/officerfeedback/officer-feedback/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func roster() []*models.Officer {
	return []*models.Officer{
		{ID: 1, FirstName: "Jane", LastName: "Doe", JobTitle: "Sergeant", AverageRating: 4.2},
		{ID: 2, FirstName: "John", LastName: "Smith", JobTitle: "Detective", AverageRating: 3.1},
		{ID: 3, FirstName: "Janet", LastName: "Jackson", JobTitle: "Officer", AverageRating: 4.8},
		{ID: 4, FirstName: "Renée", LastName: "Straße", JobTitle: "Lieutenant", AverageRating: 2.0},
	}
}

func ids(officers []*models.Officer) []int {
	out := make([]int, 0, len(officers))
	for _, o := range officers {
		out = append(out, o.ID)
	}
	return out
}

func TestFilterOfficers_EmptyTermReturnsRosterInOrder(t *testing.T) {
	officers := roster()
	filtered := services.FilterOfficers(officers, "")
	assert.Equal(t, officers, filtered)
}

func TestFilterOfficers(t *testing.T) {
	tests := []struct {
		name string
		term string
		want []int
	}{
		{name: "first name prefix", term: "jan", want: []int{1, 3}},
		{name: "last name", term: "smith", want: []int{2}},
		{name: "across the space", term: "ne d", want: []int{1}},
		{name: "upper case term", term: "JANE", want: []int{1, 3}},
		{name: "mixed case", term: "jOhN sMiTh", want: []int{2}},
		{name: "no match", term: "zzz", want: []int{}},
		{name: "job title is not searched", term: "sergeant", want: []int{}},
		{name: "unicode folding", term: "STRASSE", want: []int{4}},
		{name: "accented", term: "renée", want: []int{4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filtered := services.FilterOfficers(roster(), tt.term)
			assert.Equal(t, tt.want, ids(filtered))
		})
	}
}

func TestFilterOfficers_CommutesWithCaseOfTerm(t *testing.T) {
	terms := []string{"ja", "DOE", "n s", "Jackson", "x", "e"}
	for _, term := range terms {
		lower := ids(services.FilterOfficers(roster(), strings.ToLower(term)))
		upper := ids(services.FilterOfficers(roster(), strings.ToUpper(term)))
		assert.Equal(t, lower, upper, "term %q", term)
	}
}

func TestFilterOfficers_SingleOfficer(t *testing.T) {
	officers := []*models.Officer{{ID: 1, FirstName: "Jane", LastName: "Doe", JobTitle: "Sergeant", AverageRating: 4.2}}

	assert.Len(t, services.FilterOfficers(officers, "jane"), 1)
	assert.Empty(t, services.FilterOfficers(officers, "smith"))
}

func TestMatchesSearch(t *testing.T) {
	jane := &models.Officer{FirstName: "Jane", LastName: "Doe"}
	assert.True(t, services.MatchesSearch(jane, ""))
	assert.True(t, services.MatchesSearch(jane, "DOE"))
	assert.False(t, services.MatchesSearch(jane, "Doe Jane"))
}

func TestDebouncer_DeliversOnlyLatestValue(t *testing.T) {
	var mu sync.Mutex
	var got []string
	done := make(chan struct{}, 1)

	d := services.NewDebouncer(20*time.Millisecond, func(v string) {
		mu.Lock()
		got = append(got, v)
		mu.Unlock()
		done <- struct{}{}
	})

	d.Trigger("j")
	d.Trigger("ja")
	d.Trigger("jan")

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("debounced call never fired")
	}
	time.Sleep(50 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"jan"}, got)
}

func TestDebouncer_ZeroWaitIsSynchronous(t *testing.T) {
	var got []string
	d := services.NewDebouncer(0, func(v string) { got = append(got, v) })

	d.Trigger("a")
	d.Trigger("b")

	require.Equal(t, []string{"a", "b"}, got)
}

func TestDebouncer_Stop(t *testing.T) {
	fired := make(chan string, 1)
	d := services.NewDebouncer(20*time.Millisecond, func(v string) { fired <- v })

	d.Trigger("x")
	d.Stop()

	select {
	case v := <-fired:
		t.Fatalf("stopped debouncer fired with %q", v)
	case <-time.After(80 * time.Millisecond):
	}
}
