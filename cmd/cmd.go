// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// setupCommand handles setup operations for the local database.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Setup and configuration commands",
		Commands: []*cli.Command{
			{
				Name:  "database",
				Usage: "Initialize database and run migrations",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path to configuration file",
						Value:   "config.toml",
					},
				},
				Action: r.SetupDatabase,
			},
		},
	}
}

// authCommand handles authentication operations
func authCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "auth",
		Usage: "Manage authentication",
		Commands: []*cli.Command{
			{
				Name:  "login",
				Usage: "Sign in with email and password",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "email",
						Aliases:  []string{"e"},
						Usage:    "Account email",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "password",
						Aliases:  []string{"p"},
						Usage:    "Account password",
						Required: true,
					},
				},
				Action: r.AuthLogin,
			},
			{
				Name:  "register",
				Usage: "Create an account and sign in",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "name",
						Usage:    "Display name",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "email",
						Aliases:  []string{"e"},
						Usage:    "Account email",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "password",
						Aliases:  []string{"p"},
						Usage:    "Account password",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "role",
						Usage: "Account role (visitor, candidate, grafico, admin)",
						Value: "visitor",
					},
				},
				Action: r.AuthRegister,
			},
			{
				Name:   "logout",
				Usage:  "Clear the stored session",
				Action: r.AuthLogout,
			},
			{
				Name:   "status",
				Usage:  "Show the current session",
				Action: r.AuthStatus,
			},
		},
	}
}

// candidatesCommand handles candidate directory operations
func candidatesCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "candidates",
		Aliases: []string{"cand"},
		Usage:   "Candidate directory operations",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List all candidates",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
					},
				},
				Action: r.CandidatesList,
			},
			{
				Name:  "add",
				Usage: "Create a candidate profile",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "name",
						Usage:    "Candidate name",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "class-year",
						Usage:    "Class and year (e.g. '5° Liceo Scientifico')",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "description",
						Usage: "Short candidate bio",
					},
				},
				Action: r.CandidatesAdd,
			},
		},
	}
}

// campaignsCommand handles campaign operations for the acting candidate
func campaignsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "campaigns",
		Aliases: []string{"camp"},
		Usage:   "Campaign operations",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List the acting candidate's campaigns",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
					},
				},
				Action: r.CampaignsList,
			},
			{
				Name:  "add",
				Usage: "Create a draft campaign",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "title",
						Usage:    "Campaign title",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "description",
						Usage: "Campaign description",
					},
				},
				Action: r.CampaignsAdd,
			},
			{
				Name:  "activate",
				Usage: "Mark a campaign as active",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
				},
				Action: r.CampaignsActivate,
			},
			{
				Name:  "export",
				Usage: "Export the acting candidate's campaigns to CSV",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Base output path (default: candidate id)",
					},
				},
				Action: r.CampaignsExport,
			},
		},
	}
}

// programsCommand handles electoral program operations
func programsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "programs",
		Aliases: []string{"prog"},
		Usage:   "Electoral program operations",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List the acting candidate's programs",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
					},
				},
				Action: r.ProgramsList,
			},
			{
				Name:  "generate",
				Usage: "Generate a program from structured preferences",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "class-year",
						Usage:    "Class and year (e.g. '5° Liceo Scientifico')",
						Required: true,
					},
					&cli.StringSliceFlag{
						Name:    "issue",
						Aliases: []string{"i"},
						Usage:   "Main issue (repeat at least 3 times)",
					},
					&cli.StringSliceFlag{
						Name:    "value",
						Aliases: []string{"v"},
						Usage:   "Personal value (repeat at least 3 times)",
					},
					&cli.StringFlag{
						Name:  "school-context",
						Usage: "Short description of the school",
					},
					&cli.BoolFlag{
						Name:  "save",
						Usage: "Persist the generated program",
					},
					&cli.StringFlag{
						Name:  "title",
						Usage: "Title used when saving (default: dated title)",
					},
				},
				Action: r.ProgramsGenerate,
			},
			{
				Name:  "export",
				Usage: "Export a program to Markdown or plain text",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
				},
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "format",
						Usage: "Export format (markdown or text)",
						Value: "markdown",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output path (default derived from program id)",
					},
				},
				Action: r.ProgramsExport,
			},
		},
	}
}

// statsCommand prints the dashboard counters.
func statsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "stats",
		Usage: "Show election statistics",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "Pretty-print output",
			},
		},
		Action: r.Stats,
	}
}

// dashboardCommand returns the top-level TUI command for the interactive dashboard.
func dashboardCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "dashboard",
		Aliases: []string{"tui", "ui"},
		Usage:   "Launch the interactive election dashboard",
		Action:  r.Dashboard,
	}
}
