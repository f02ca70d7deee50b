package models

const (
	MinRating = 1
	MaxRating = 5
)

// FeedbackDraft is the unsaved form state of the detail screen.
// Rating 0 means no star has been picked yet.
type FeedbackDraft struct {
	Rating    int
	Comment   string
	Anonymous bool
}

// NewFeedbackDraft returns a draft with the form defaults
func NewFeedbackDraft() FeedbackDraft {
	return FeedbackDraft{Anonymous: true}
}

// HasRating reports whether a valid star rating has been picked
func (d FeedbackDraft) HasRating() bool {
	return d.Rating >= MinRating && d.Rating <= MaxRating
}

// ToRequest converts the draft into the wire body for officerID
func (d FeedbackDraft) ToRequest(officerID int) *CreateFeedbackRequest {
	return &CreateFeedbackRequest{
		OfficerID:    officerID,
		Rating:       d.Rating,
		FeedbackText: d.Comment,
		IsAnonymous:  d.Anonymous,
	}
}

// CreateFeedbackRequest is the body of POST /api/feedback
type CreateFeedbackRequest struct {
	OfficerID    int    `json:"officer_id" binding:"required,gt=0" validate:"required,gt=0"`
	Rating       int    `json:"rating" binding:"required,min=1,max=5" validate:"required,min=1,max=5"`
	FeedbackText string `json:"feedback_text" binding:"max=5000" validate:"max=5000"`
	IsAnonymous  bool   `json:"is_anonymous"`
}
