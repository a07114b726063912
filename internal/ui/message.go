package ui

import (
	"github.com/desertthunder/elx/internal/models"
)

// statsFetchedMsg carries the overview counters, fetched eagerly at startup.
type statsFetchedMsg struct {
	stats *models.Stats
	err   error
}

// candidatesFetchedMsg carries the public candidate list.
type candidatesFetchedMsg struct {
	candidates []models.Candidate
	err        error
}

// campaignsFetchedMsg carries the acting candidate's campaigns.
type campaignsFetchedMsg struct {
	candidateID string
	campaigns   []models.Campaign
	err         error
}

// programsFetchedMsg carries the acting candidate's programs.
type programsFetchedMsg struct {
	candidateID string
	programs    []models.Program
	err         error
}

// generationDoneMsg carries the outcome of a wizard generation call. The
// wizard transitions are applied in Update when this arrives.
type generationDoneMsg struct {
	content string
	err     error
}

// programSavedMsg reports the outcome of persisting a generated program.
type programSavedMsg struct {
	program *models.Program
	err     error
}
