package main

import (
	"context"

	"github.com/desertthunder/elx/internal/models"
	"github.com/urfave/cli/v3"
)

// CandidatesList prints the public candidate directory in backend order.
func (r *Runner) CandidatesList(ctx context.Context, cmd *cli.Command) error {
	candidates, err := r.gateway.ListCandidates(ctx)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(candidates, cmd.Bool("pretty"))
	}

	r.writePlainHeader("Candidates")
	if len(candidates) == 0 {
		return r.writePlain("No candidates registered yet\n")
	}

	for i, c := range candidates {
		r.writePlain("%d. %s", i+1, c.Name)
		if c.ClassYear != "" {
			r.writePlain(" — %s", c.ClassYear)
		}
		r.writePlain("\n")
		if c.Description != "" {
			r.writePlain("   %s\n", c.Description)
		}
	}
	return nil
}

// CandidatesAdd creates a candidate profile linked to the signed-in user.
func (r *Runner) CandidatesAdd(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireCapability(func(caps models.Capabilities) bool { return caps.ManageCampaigns }); err != nil {
		return err
	}

	candidate := models.Candidate{
		UserID:      r.store.Current().User.ID,
		Name:        cmd.String("name"),
		ClassYear:   cmd.String("class-year"),
		Description: cmd.String("description"),
	}

	created, err := r.gateway.CreateCandidate(ctx, candidate)
	if err != nil {
		return err
	}

	r.logger.Info("candidate created", "id", created.ID)
	return r.writePlain("✓ Candidate '%s' created (ID: %s)\n", created.Name, created.ID)
}
