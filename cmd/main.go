package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/desertthunder/elx/internal/repositories"
	"github.com/desertthunder/elx/internal/services"
	"github.com/desertthunder/elx/internal/session"
	"github.com/desertthunder/elx/internal/shared"
	"github.com/urfave/cli/v3"
)

func main() {
	logger := shared.NewLogger(nil)

	config := shared.DefaultConfig()
	if _, err := os.Stat("config.toml"); err == nil {
		if loadedConfig, err := shared.LoadConfig("config.toml"); err == nil {
			config = loadedConfig
		}
	}

	httpClient := &http.Client{
		Timeout: time.Duration(config.API.TimeoutSeconds) * time.Second,
	}
	gateway := services.NewElectionService(config.API.BaseURL, httpClient, config.API.GenerateRateLimit)

	var repo session.Repository
	if db, err := shared.NewDatabase(config.Database.Path); err == nil {
		shared.ConfigureDatabase(db, config.Database.MaxOpenConns, config.Database.MaxIdleConns)
		if err := shared.RunMigrations(db); err == nil {
			repo = repositories.NewSessionRepository(db)
		} else {
			logger.Warn("session persistence disabled", "error", err)
		}
	} else {
		logger.Warn("session persistence disabled", "error", err)
	}

	store := session.NewStore(repo, gateway, logger)
	store.Restore()

	runner := NewRunner(RunnerOpts{
		Config:     config,
		Gateway:    gateway,
		Store:      store,
		HTTPClient: httpClient,
		Logger:     logger,
	})

	app := &cli.Command{
		Name:     "elx",
		Usage:    "Student election campaign dashboard",
		Version:  "0.3.0",
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		err_ := errors.Unwrap(err)
		if errors.Is(err_, shared.ErrNotImplemented) {
			logger.Warn("not implemented")
			os.Exit(0)
		} else {
			logger.Fatalf("application error: %v", err)
		}
	}
}
