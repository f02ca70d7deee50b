// Package apitest provides an in-memory fake of the officer API for tests.
package apitest

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/officerfeedback/officer-feedback/internal/models"
)

// Route names used by Calls and FailWith
const (
	RouteListOfficers   = "GET /api/officers"
	RouteListFeedback   = "GET /api/officers/:id/feedback"
	RouteCreateFeedback = "POST /api/feedback"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// Server is a fake officer API backed by memory
type Server struct {
	*httptest.Server

	mu       sync.Mutex
	officers []models.Officer
	feedback map[int][]models.FeedbackEntry
	bodies   [][]byte
	calls    map[string]int
	failures map[string]int
	nextID   int
	now      func() time.Time
}

// NewServer starts a fake API that is closed when the test ends
func NewServer(t testing.TB) *Server {
	t.Helper()

	s := &Server{
		feedback: make(map[int][]models.FeedbackEntry),
		calls:    make(map[string]int),
		failures: make(map[string]int),
		nextID:   1,
		now:      time.Now,
	}

	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(), bodySizeLimit(maxBodyBytes))
	router.GET("/api/officers", s.track(RouteListOfficers), s.listOfficers)
	router.GET("/api/officers/:id/feedback", s.track(RouteListFeedback), s.listFeedback)
	router.POST("/api/feedback", s.track(RouteCreateFeedback), s.createFeedback)

	s.Server = httptest.NewServer(router)
	t.Cleanup(s.Close)
	return s
}

// SetOfficers replaces the roster
func (s *Server) SetOfficers(officers ...models.Officer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.officers = append([]models.Officer(nil), officers...)
}

// SetFeedback replaces the feedback history of one officer
func (s *Server) SetFeedback(officerID int, entries ...models.FeedbackEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.feedback[officerID] = append([]models.FeedbackEntry(nil), entries...)
}

// FailWith makes every request to route answer with status until cleared with 0
func (s *Server) FailWith(route string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if status == 0 {
		delete(s.failures, route)
		return
	}
	s.failures[route] = status
}

// Calls reports how many requests reached route
func (s *Server) Calls(route string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[route]
}

// Bodies returns the raw bodies of every POST /api/feedback
func (s *Server) Bodies() [][]byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([][]byte(nil), s.bodies...)
}

func (s *Server) track(route string) gin.HandlerFunc {
	return func(c *gin.Context) {
		s.mu.Lock()
		s.calls[route]++
		status := s.failures[route]
		s.mu.Unlock()

		if status != 0 {
			c.AbortWithStatusJSON(status, gin.H{"error": http.StatusText(status)})
			return
		}
		c.Next()
	}
}

// listOfficers handles GET /api/officers
func (s *Server) listOfficers(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	officers := s.officers
	if officers == nil {
		officers = []models.Officer{}
	}
	c.JSON(http.StatusOK, officers)
}

// listFeedback handles GET /api/officers/:id/feedback
func (s *Server) listFeedback(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.hasOfficer(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Officer not found"})
		return
	}
	entries := s.feedback[id]
	if entries == nil {
		entries = []models.FeedbackEntry{}
	}
	c.JSON(http.StatusOK, entries)
}

// createFeedback handles POST /api/feedback
func (s *Server) createFeedback(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unreadable body"})
		return
	}

	s.mu.Lock()
	s.bodies = append(s.bodies, raw)
	s.mu.Unlock()

	var req models.CreateFeedbackRequest
	if err := binding.JSON.BindBody(raw, &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Validation failed",
			"details": ParseValidationErrors(err),
		})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.hasOfficer(req.OfficerID) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Officer not found"})
		return
	}

	entry := models.FeedbackEntry{
		ID:           s.nextID,
		OfficerID:    req.OfficerID,
		Rating:       req.Rating,
		FeedbackText: req.FeedbackText,
		IsAnonymous:  req.IsAnonymous,
		CreatedAt:    s.now().UTC(),
	}
	s.nextID++
	s.feedback[req.OfficerID] = append([]models.FeedbackEntry{entry}, s.feedback[req.OfficerID]...)
	s.recomputeAverage(req.OfficerID)

	c.JSON(http.StatusCreated, entry)
}

func (s *Server) hasOfficer(id int) bool {
	for i := range s.officers {
		if s.officers[i].ID == id {
			return true
		}
	}
	return false
}

func (s *Server) recomputeAverage(officerID int) {
	entries := s.feedback[officerID]
	if len(entries) == 0 {
		return
	}
	sum := 0
	for _, e := range entries {
		sum += e.Rating
	}
	for i := range s.officers {
		if s.officers[i].ID == officerID {
			s.officers[i].AverageRating = float64(sum) / float64(len(entries))
		}
	}
}
