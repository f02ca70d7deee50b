package views_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/officerfeedback/officer-feedback/internal/apitest"
	"github.com/officerfeedback/officer-feedback/internal/models"
	"github.com/officerfeedback/officer-feedback/internal/repository"
	"github.com/officerfeedback/officer-feedback/internal/services"
	"github.com/officerfeedback/officer-feedback/internal/views"
	"github.com/officerfeedback/officer-feedback/internal/views/viewstest"
	"github.com/officerfeedback/officer-feedback/pkg/httpclient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type navFixture struct {
	srv      *apitest.Server
	notifier *viewstest.RecordingNotifier
	nav      *views.Navigator
	screens  []views.Screen
}

func newNavFixture(t *testing.T) *navFixture {
	t.Helper()

	srv := apitest.NewServer(t)
	srv.SetOfficers(*jane(), *john())
	srv.SetFeedback(1, models.FeedbackEntry{
		ID: 10, OfficerID: 1, Rating: 4, FeedbackText: "Helpful", IsAnonymous: true,
		CreatedAt: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	})

	ds := repository.NewAPIDataSource(srv.URL, httpclient.NewStandardClient(5*time.Second))
	repo := repository.NewOfficerRepository(ds)
	notifier := viewstest.NewRecordingNotifier()

	f := &navFixture{
		srv:      srv,
		notifier: notifier,
		nav:      views.NewNavigator(services.NewOfficerService(repo), services.NewFeedbackService(repo), notifier),
	}
	f.nav.OnChange(func(s views.Screen) { f.screens = append(f.screens, s) })
	return f
}

func (f *navFixture) openJane(t *testing.T) *views.DetailView {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, f.nav.Directory().Load(ctx))
	f.nav.Directory().Select(f.nav.Directory().Officers()[0])
	detail := f.nav.Detail()
	require.NotNil(t, detail)
	require.NoError(t, detail.Load(ctx))
	return detail
}

func TestNavigator_StartsOnDirectory(t *testing.T) {
	nav := views.NewNavigator(new(MockOfficerService), new(MockFeedbackService), viewstest.NewRecordingNotifier())

	assert.Equal(t, views.ScreenDirectory, nav.Screen())
	assert.Nil(t, nav.Detail())
}

func TestNavigator_SelectOpensDetail(t *testing.T) {
	f := newNavFixture(t)

	detail := f.openJane(t)

	assert.Equal(t, views.ScreenDetail, f.nav.Screen())
	assert.Equal(t, 1, detail.Officer().ID)
	require.Len(t, detail.Entries(), 1)
	assert.Equal(t, "Helpful", detail.Entries()[0].FeedbackText)
	assert.Equal(t, []views.Screen{views.ScreenDetail}, f.screens)
}

func TestNavigator_SubmitAcknowledgeRefreshesOnce(t *testing.T) {
	f := newNavFixture(t)
	detail := f.openJane(t)
	require.Equal(t, 1, f.srv.Calls(apitest.RouteListOfficers))

	require.NoError(t, detail.SetRating(5))
	require.NoError(t, detail.Submit(context.Background()))

	require.Len(t, f.srv.Bodies(), 1)
	assert.JSONEq(t, `{"officer_id":1,"rating":5,"feedback_text":"","is_anonymous":true}`, string(f.srv.Bodies()[0]))
	assert.Equal(t, views.ScreenDetail, f.nav.Screen(), "stays on detail until acknowledged")
	assert.Equal(t, 1, f.srv.Calls(apitest.RouteListOfficers))

	require.True(t, f.notifier.Acknowledge())

	assert.Equal(t, views.ScreenDirectory, f.nav.Screen())
	assert.Nil(t, f.nav.Detail())
	assert.Equal(t, 2, f.srv.Calls(apitest.RouteListOfficers), "exactly one refresh")
	assert.Equal(t, []views.Screen{views.ScreenDetail, views.ScreenDirectory}, f.screens)
	assert.InDelta(t, 4.5, f.nav.Directory().Officers()[0].AverageRating, 0.001)

	// Stale acknowledgment after navigation has no effect
	assert.False(t, detail.Acknowledge(context.Background()))
	assert.Equal(t, 2, f.srv.Calls(apitest.RouteListOfficers))
}

func TestNavigator_SubmitWithoutRatingSendsNothing(t *testing.T) {
	f := newNavFixture(t)
	detail := f.openJane(t)

	err := detail.Submit(context.Background())

	assert.ErrorIs(t, err, services.ErrRatingRequired)
	assert.Zero(t, f.srv.Calls(apitest.RouteCreateFeedback))
	assert.Equal(t, views.ScreenDetail, f.nav.Screen())
}

func TestNavigator_SubmitFailureStaysOnDetail(t *testing.T) {
	f := newNavFixture(t)
	detail := f.openJane(t)
	f.srv.FailWith(apitest.RouteCreateFeedback, http.StatusInternalServerError)

	require.NoError(t, detail.SetRating(3))
	detail.SetComment("Polite")
	err := detail.Submit(context.Background())

	require.Error(t, err)
	assert.Equal(t, views.ScreenDetail, f.nav.Screen())
	assert.False(t, detail.Submitting())
	assert.Equal(t, models.FeedbackDraft{Rating: 3, Comment: "Polite", Anonymous: true}, detail.Draft())
	assert.Equal(t, 1, f.srv.Calls(apitest.RouteListOfficers), "no refresh on failure")

	notices := f.notifier.Drain()
	require.Len(t, notices, 1)
	assert.Equal(t, "Failed to submit feedback", notices[0].Message)
}

func TestNavigator_BackDoesNotRefresh(t *testing.T) {
	f := newNavFixture(t)
	detail := f.openJane(t)
	require.NoError(t, detail.SetRating(2))

	detail.Back()

	assert.Equal(t, views.ScreenDirectory, f.nav.Screen())
	assert.Equal(t, 1, f.srv.Calls(apitest.RouteListOfficers))
	assert.Zero(t, f.srv.Calls(apitest.RouteCreateFeedback))

	// Reopening starts from a clean draft
	f.nav.Directory().Select(f.nav.Directory().Officers()[0])
	assert.Equal(t, models.NewFeedbackDraft(), f.nav.Detail().Draft())
}

func TestNavigator_ShowDetailReplacesPrevious(t *testing.T) {
	officers := new(MockOfficerService)
	nav := views.NewNavigator(officers, new(MockFeedbackService), viewstest.NewRecordingNotifier())

	first := nav.ShowDetail(jane())
	second := nav.ShowDetail(john())

	assert.True(t, first.Closed())
	assert.False(t, second.Closed())
	assert.Same(t, second, nav.Detail())
	assert.Equal(t, views.ScreenDetail, nav.Screen())

	officers.AssertNotCalled(t, "ListOfficers", mock.Anything)
}
