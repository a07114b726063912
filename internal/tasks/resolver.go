package tasks

import (
	"context"

	"github.com/desertthunder/elx/internal/models"
	"github.com/desertthunder/elx/internal/services"
	"github.com/desertthunder/elx/internal/shared"
)

// ResolveActingCandidate returns the candidate id the user's campaign and
// program views operate on.
//
// Candidates act for themselves. Admins act for the first candidate in
// backend order; with no candidates registered [shared.ErrNoCandidates] is
// returned. The resolution for an admin can change as candidates come and go,
// so callers resolve per fetch rather than caching the id.
func ResolveActingCandidate(ctx context.Context, gateway services.Gateway, user models.User) (string, error) {
	if user.Role != models.RoleAdmin {
		return user.ID, nil
	}

	candidates, err := gateway.ListCandidates(ctx)
	if err != nil {
		return "", err
	}
	if len(candidates) == 0 {
		return "", shared.ErrNoCandidates
	}

	return candidates[0].ID, nil
}
