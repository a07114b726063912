package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/elx/internal/models"
	"github.com/desertthunder/elx/internal/shared"
	"github.com/urfave/cli/v3"
)

// AuthLogin signs in with email and password, installing the session pair.
func (r *Runner) AuthLogin(ctx context.Context, cmd *cli.Command) error {
	email := cmd.String("email")
	password := cmd.String("password")

	if err := r.store.Login(ctx, email, password); err != nil {
		return err
	}

	current := r.store.Current()
	return r.writePlain("✓ Signed in as %s (%s)\n", current.User.Name, current.User.Role)
}

// AuthRegister creates an account with the role chosen at signup and signs in.
func (r *Runner) AuthRegister(ctx context.Context, cmd *cli.Command) error {
	role := models.Role(cmd.String("role"))
	if !role.Valid() {
		return fmt.Errorf("%w: unknown role %q", shared.ErrInvalidArgument, cmd.String("role"))
	}

	reg := models.Registration{
		Name:     cmd.String("name"),
		Email:    cmd.String("email"),
		Password: cmd.String("password"),
		Role:     role,
	}

	if err := r.store.Register(ctx, reg); err != nil {
		return err
	}

	current := r.store.Current()
	return r.writePlain("✓ Registered as %s (%s)\n", current.User.Name, current.User.Role)
}

// AuthLogout clears the session. Running it while signed out is harmless.
func (r *Runner) AuthLogout(ctx context.Context, cmd *cli.Command) error {
	if err := r.store.Logout(); err != nil {
		return err
	}
	return r.writePlain("✓ Signed out\n")
}

// AuthStatus shows the current session.
func (r *Runner) AuthStatus(ctx context.Context, cmd *cli.Command) error {
	if !r.store.Authenticated() {
		return r.writePlain("Not signed in (browsing as visitor)\n")
	}

	current := r.store.Current()
	r.writePlain("✓ Signed in\n")
	r.writePlain("Name: %s\n", current.User.Name)
	r.writePlain("Email: %s\n", current.User.Email)
	r.writePlain("Role: %s\n", current.User.Role)
	return nil
}
