package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/elx/internal/formatter"
	"github.com/desertthunder/elx/internal/models"
	"github.com/desertthunder/elx/internal/shared"
	"github.com/desertthunder/elx/internal/tasks"
	"github.com/urfave/cli/v3"
)

// CampaignsList prints the acting candidate's campaigns.
func (r *Runner) CampaignsList(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireCapability(func(caps models.Capabilities) bool { return caps.ManageCampaigns }); err != nil {
		return err
	}

	candidateID, err := tasks.ResolveActingCandidate(ctx, r.gateway, r.store.Current().User)
	if err != nil {
		return err
	}

	campaigns, err := r.gateway.ListCampaigns(ctx, candidateID)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(campaigns, cmd.Bool("pretty"))
	}

	r.writePlainHeader("Campaigns")
	if len(campaigns) == 0 {
		return r.writePlain("No campaigns yet\n")
	}

	for i, c := range campaigns {
		r.writePlain("%d. %s [%s]\n", i+1, c.Title, c.Status)
		if c.Description != "" {
			r.writePlain("   %s\n", c.Description)
		}
	}
	return nil
}

// CampaignsAdd creates a draft campaign for the acting candidate.
func (r *Runner) CampaignsAdd(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireCapability(func(caps models.Capabilities) bool { return caps.ManageCampaigns }); err != nil {
		return err
	}

	candidateID, err := tasks.ResolveActingCandidate(ctx, r.gateway, r.store.Current().User)
	if err != nil {
		return err
	}

	campaign := models.Campaign{
		CandidateID: candidateID,
		Title:       cmd.String("title"),
		Description: cmd.String("description"),
		Status:      models.CampaignDraft,
	}

	created, err := r.gateway.CreateCampaign(ctx, campaign)
	if err != nil {
		return err
	}

	r.logger.Info("campaign created", "id", created.ID)
	return r.writePlain("✓ Campaign '%s' created as draft (ID: %s)\n", created.Title, created.ID)
}

// CampaignsActivate marks a campaign as active.
//
// The backend has no status endpoint yet, so this stays a stub until one
// exists.
func (r *Runner) CampaignsActivate(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireCapability(func(caps models.Capabilities) bool { return caps.ManageCampaigns }); err != nil {
		return err
	}

	id := cmd.StringArg("id")
	if id == "" {
		return fmt.Errorf("%w: campaign id", shared.ErrMissingArgument)
	}

	return fmt.Errorf("%w: campaign status changes are not supported by the backend", shared.ErrNotImplemented)
}

// CampaignsExport writes the acting candidate's campaigns to a CSV file.
func (r *Runner) CampaignsExport(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireCapability(func(caps models.Capabilities) bool { return caps.ManageCampaigns }); err != nil {
		return err
	}

	candidateID, err := tasks.ResolveActingCandidate(ctx, r.gateway, r.store.Current().User)
	if err != nil {
		return err
	}

	campaigns, err := r.gateway.ListCampaigns(ctx, candidateID)
	if err != nil {
		return err
	}

	result, err := formatter.WriteCampaignCSVExport(campaigns, candidateID, cmd.String("output"))
	if err != nil {
		return err
	}

	return r.writePlain("✓ Exported %d campaigns to %s\n", len(campaigns), result.CampaignsFile)
}
