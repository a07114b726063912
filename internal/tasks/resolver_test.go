package tasks

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/desertthunder/elx/internal/models"
	"github.com/desertthunder/elx/internal/shared"
	tu "github.com/desertthunder/elx/internal/testing"
)

func TestResolveActingCandidate(t *testing.T) {
	t.Run("Candidate Acts For Themselves", func(t *testing.T) {
		gw := &tu.MockGateway{}
		user := models.User{ID: "u1", Role: models.RoleCandidate}

		id, err := ResolveActingCandidate(context.Background(), gw, user)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if id != "u1" {
			t.Errorf("expected u1, got %s", id)
		}
		if gw.Calls["ListCandidates"] != 0 {
			t.Error("expected no candidate lookup for a non-admin")
		}
	})

	t.Run("Admin Acts For First Candidate", func(t *testing.T) {
		gw := &tu.MockGateway{
			ListCandidatesFn: func(ctx context.Context) ([]models.Candidate, error) {
				return []models.Candidate{{ID: "1"}, {ID: "2"}}, nil
			},
		}
		user := models.User{ID: "admin", Role: models.RoleAdmin}

		id, err := ResolveActingCandidate(context.Background(), gw, user)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if id != "1" {
			t.Errorf("expected first candidate in backend order, got %s", id)
		}
	})

	t.Run("Admin Without Candidates", func(t *testing.T) {
		gw := &tu.MockGateway{}
		user := models.User{ID: "admin", Role: models.RoleAdmin}

		_, err := ResolveActingCandidate(context.Background(), gw, user)
		if !errors.Is(err, shared.ErrNoCandidates) {
			t.Errorf("expected ErrNoCandidates, got %v", err)
		}
	})

	t.Run("Lookup Failure Propagates", func(t *testing.T) {
		gw := &tu.MockGateway{
			ListCandidatesFn: func(ctx context.Context) ([]models.Candidate, error) {
				return nil, fmt.Errorf("%w: connection refused", shared.ErrConnection)
			},
		}
		user := models.User{ID: "admin", Role: models.RoleAdmin}

		_, err := ResolveActingCandidate(context.Background(), gw, user)
		if !errors.Is(err, shared.ErrConnection) {
			t.Errorf("expected ErrConnection, got %v", err)
		}
	})
}
