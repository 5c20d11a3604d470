package main

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"jokeshare/src/app/server"
	"jokeshare/src/core/domain"
	"jokeshare/src/core/ports"
	"jokeshare/src/infra/config"
	"jokeshare/src/infra/db"
	"jokeshare/src/infra/logger"
	"jokeshare/src/infra/password"
	"jokeshare/src/infra/repo"
	"jokeshare/src/infra/session"
)

// NewServeCmd creates the serve subcommand.
func NewServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Long: `Start the HTTP server. Configuration comes from APP_* environment
variables; SESSION_SECRET is required.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context())
		},
	}
}

func runServe(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.New(cfg.Log)
	log.Info("starting application",
		"port", cfg.Server.Port,
		"log_level", cfg.Log.Level,
		"env", cfg.App.Env,
	)

	pg, err := db.New(ctx, cfg.Database, log)
	if err != nil {
		return err
	}
	defer pg.Close()

	if cfg.Database.AutoMigrate {
		if err := pg.Migrate(); err != nil {
			return fmt.Errorf("auto-migrate: %w", err)
		}
	}

	codec, err := session.NewJWTCodec(cfg.Session.Secret, domain.SessionLifetime)
	if err != nil {
		return err
	}

	dbLog := logger.WithComponent(log, "repo")
	deps := server.Deps{
		Users:      repo.NewUserRepository(pg.Pool, dbLog),
		Jokes:      repo.NewJokeRepository(pg.Pool, dbLog),
		Hasher:     password.NewBcryptHasher(domain.PasswordHashCost),
		Codec:      codec,
		Health:     map[string]ports.Repository{"database": pg},
		Collectors: []prometheus.Collector{pg.Collector()},
	}

	srv, err := server.New(cfg, log, deps)
	if err != nil {
		return err
	}

	return srv.Run(ctx)
}
