package models

import (
	"time"
)

// User represents an account on the election backend.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// Session is the authenticated identity held by the running client.
//
// Token and User are always installed and cleared together; the zero value is
// the anonymous session.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Authenticated reports whether the session carries a credential.
func (s Session) Authenticated() bool {
	return s.Token != ""
}

// Registration is the payload for account creation. Role is chosen at signup.
type Registration struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
}

// Candidate represents a candidate profile.
type Candidate struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Name        string    `json:"name"`
	ClassYear   string    `json:"class_year"`
	Description string    `json:"description"`
	Photo       string    `json:"photo,omitempty"` // base64
	CreatedAt   time.Time `json:"created_at,omitempty"`
}

// CampaignStatus enumerates the lifecycle states of a campaign.
type CampaignStatus string

const (
	CampaignDraft     CampaignStatus = "draft"
	CampaignActive    CampaignStatus = "active"
	CampaignCompleted CampaignStatus = "completed"
)

// Valid reports whether s is one of the known campaign states.
func (s CampaignStatus) Valid() bool {
	switch s {
	case CampaignDraft, CampaignActive, CampaignCompleted:
		return true
	}
	return false
}

// Campaign represents an electoral campaign owned by a candidate.
type Campaign struct {
	ID          string           `json:"id"`
	CandidateID string           `json:"candidate_id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Status      CampaignStatus   `json:"status"`
	Events      []map[string]any `json:"events"`
	Materials   []map[string]any `json:"materials"`
	CreatedAt   time.Time        `json:"created_at,omitempty"`
}

// Program represents an electoral program attached to a candidate.
type Program struct {
	ID            string    `json:"id"`
	CandidateID   string    `json:"candidate_id"`
	Title         string    `json:"title"`
	Content       string    `json:"content"`
	GeneratedByAI bool      `json:"generated_by_ai"`
	CreatedAt     time.Time `json:"created_at,omitempty"`
}

// ProgramRequest is the structured-preferences payload for program generation.
type ProgramRequest struct {
	CandidateName  string   `json:"candidate_name"`
	ClassYear      string   `json:"class_year"`
	MainIssues     []string `json:"main_issues"`
	PersonalValues []string `json:"personal_values"`
	SchoolContext  string   `json:"school_context"`
}

// Stats holds the aggregate counters shown on the dashboard overview.
type Stats struct {
	TotalCandidates int `json:"total_candidates"`
	ActiveCampaigns int `json:"active_campaigns"`
	TotalPrograms   int `json:"total_programs"`
	TotalCampaigns  int `json:"total_campaigns"`
}
