package feedback

import "time"

type CreateReviewRequest struct {
	Rating  int     `json:"rating"`
	Comment *string `json:"comment,omitempty"`
}

// Candidate is a confirmed booking whose event just ended, joined with the
// recipient and experience details needed to compose the email.
type Candidate struct {
	BookingID       string
	UserID          string
	Email           string
	FirstName       *string
	ExperienceTitle string
	AssociationName *string
	EndDatetime     time.Time
}

// RunResult summarises one feedback-request job run.
type RunResult struct {
	Sent    int `json:"sent"`
	Failed  int `json:"failed"`
	Skipped int `json:"skipped"`
	Total   int `json:"total"`
}
