package main

import (
	"context"
	"fmt"
	"time"

	"github.com/desertthunder/elx/internal/formatter"
	"github.com/desertthunder/elx/internal/models"
	"github.com/desertthunder/elx/internal/shared"
	"github.com/desertthunder/elx/internal/tasks"
	"github.com/urfave/cli/v3"
)

// ProgramsList prints the acting candidate's electoral programs.
func (r *Runner) ProgramsList(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireCapability(func(caps models.Capabilities) bool { return caps.ManagePrograms }); err != nil {
		return err
	}

	candidateID, err := tasks.ResolveActingCandidate(ctx, r.gateway, r.store.Current().User)
	if err != nil {
		return err
	}

	programs, err := r.gateway.ListPrograms(ctx, candidateID)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(programs, cmd.Bool("pretty"))
	}

	r.writePlainHeader("Electoral Programs")
	if len(programs) == 0 {
		return r.writePlain("No programs yet\n")
	}

	for i, p := range programs {
		origin := "manual"
		if p.GeneratedByAI {
			origin = "AI"
		}
		r.writePlain("%d. %s (%s, ID: %s)\n", i+1, p.Title, origin, p.ID)
	}
	return nil
}

// ProgramsGenerate runs the generation wizard in one shot from flags.
//
// The same guards apply as in the interactive flow: a non-empty class year and
// at least three issues and three values, checked before the backend is
// called. With --save the result is persisted under the given or a dated
// title.
func (r *Runner) ProgramsGenerate(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireCapability(func(caps models.Capabilities) bool { return caps.GenerateProgram }); err != nil {
		return err
	}

	user := r.store.Current().User
	wizard := tasks.NewWizard(r.gateway, user.Name)
	wizard.SetClassYear(cmd.String("class-year"))
	wizard.SetSchoolContext(cmd.String("school-context"))
	for _, issue := range cmd.StringSlice("issue") {
		wizard.ToggleIssue(issue)
	}
	for _, value := range cmd.StringSlice("value") {
		wizard.ToggleValue(value)
	}

	if err := wizard.Next(); err != nil {
		return err
	}

	r.logger.Info("generating program", "candidate", user.Name)
	if err := wizard.Generate(ctx); err != nil {
		return err
	}

	r.writePlainHeader("Generated Program")
	r.writePlain("%s\n", wizard.Generated())

	if !cmd.Bool("save") {
		return nil
	}

	candidateID, err := tasks.ResolveActingCandidate(ctx, r.gateway, user)
	if err != nil {
		return err
	}

	title := cmd.String("title")
	if title == "" {
		title = fmt.Sprintf("Electoral Program %s", time.Now().Format("2006-01-02"))
	}

	saved, err := r.gateway.CreateProgram(ctx, models.Program{
		CandidateID:   candidateID,
		Title:         title,
		Content:       wizard.Generated(),
		GeneratedByAI: true,
	})
	if err != nil {
		return err
	}

	r.logger.Info("program saved", "id", saved.ID)
	return r.writePlain("\n✓ Saved as '%s' (ID: %s)\n", saved.Title, saved.ID)
}

// ProgramsExport writes a program to Markdown or plain text.
func (r *Runner) ProgramsExport(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireCapability(func(caps models.Capabilities) bool { return caps.ManagePrograms }); err != nil {
		return err
	}

	id := cmd.StringArg("id")
	if id == "" {
		return fmt.Errorf("%w: program id", shared.ErrMissingArgument)
	}

	user := r.store.Current().User
	candidateID, err := tasks.ResolveActingCandidate(ctx, r.gateway, user)
	if err != nil {
		return err
	}

	programs, err := r.gateway.ListPrograms(ctx, candidateID)
	if err != nil {
		return err
	}

	var program *models.Program
	for i := range programs {
		if programs[i].ID == id {
			program = &programs[i]
			break
		}
	}
	if program == nil {
		return fmt.Errorf("%w: program %s not found", shared.ErrInvalidArgument, id)
	}

	switch cmd.String("format") {
	case "markdown":
		result, err := formatter.WriteProgramMarkdownExport(program, user.Name, cmd.String("output"))
		if err != nil {
			return err
		}
		return r.writePlain("✓ Exported to %s\n", result.Directory)
	case "text":
		path, err := formatter.WriteProgramTextExport(program, cmd.String("output"))
		if err != nil {
			return err
		}
		return r.writePlain("✓ Exported to %s\n", path)
	default:
		return fmt.Errorf("%w: unknown format %q", shared.ErrInvalidArgument, cmd.String("format"))
	}
}

// Stats prints the aggregate dashboard counters.
func (r *Runner) Stats(ctx context.Context, cmd *cli.Command) error {
	stats, err := r.gateway.Stats(ctx)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(stats, cmd.Bool("pretty"))
	}

	r.writePlainHeader("Election Stats")
	r.writePlain("Candidates: %d\n", stats.TotalCandidates)
	r.writePlain("Active campaigns: %d\n", stats.ActiveCampaigns)
	r.writePlain("Total campaigns: %d\n", stats.TotalCampaigns)
	r.writePlain("Programs: %d\n", stats.TotalPrograms)
	return nil
}
