// package services defines interface Gateway for interacting with the election backend HTTP API
package services

import (
	"context"

	"github.com/desertthunder/elx/internal/models"
)

// Gateway defines the remote operations the client depends on.
//
// Implementations return [shared.ErrConnection] when no response was received
// and [shared.ErrRemoteRejected] when the server answered with success=false.
type Gateway interface {
	// Login exchanges credentials for a (token, user) pair.
	Login(ctx context.Context, email, password string) (*models.Session, error)

	// Register creates an account and returns the installed (token, user) pair.
	Register(ctx context.Context, reg models.Registration) (*models.Session, error)

	// ListCandidates retrieves all candidate profiles in backend order.
	ListCandidates(ctx context.Context) ([]models.Candidate, error)

	// CreateCandidate adds a candidate profile.
	CreateCandidate(ctx context.Context, candidate models.Candidate) (*models.Candidate, error)

	// ListCampaigns retrieves the campaigns owned by a candidate.
	ListCampaigns(ctx context.Context, candidateID string) ([]models.Campaign, error)

	// CreateCampaign adds a campaign for a candidate.
	CreateCampaign(ctx context.Context, campaign models.Campaign) (*models.Campaign, error)

	// ListPrograms retrieves the electoral programs of a candidate.
	ListPrograms(ctx context.Context, candidateID string) ([]models.Program, error)

	// CreateProgram persists an electoral program.
	CreateProgram(ctx context.Context, program models.Program) (*models.Program, error)

	// GenerateProgram asks the backend to draft a program from structured
	// preferences. Returns the generated text; nothing is persisted.
	GenerateProgram(ctx context.Context, req models.ProgramRequest) (string, error)

	// Stats retrieves the aggregate dashboard counters.
	Stats(ctx context.Context) (*models.Stats, error)
}
