package main

import (
	"context"
	"errors"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	_ "github.com/joho/godotenv/autoload"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/jonboyd/site-server/internal/app"
	"github.com/jonboyd/site-server/internal/config"
	"github.com/jonboyd/site-server/internal/model"
	"github.com/jonboyd/site-server/internal/repository"
	"github.com/jonboyd/site-server/internal/util"
)

type seedConfig struct {
	AdminEmail    string `env:"ADMIN_EMAIL" envDefault:"admin@example.com"`
	AdminPassword string `env:"ADMIN_PASSWORD" envDefault:"changeme123"`
}

var defaultContent = model.SiteContent{
	BioText:   "Jon Boyd is a stand-up comedian. Catch a show, watch a set, or join the mailing list.",
	HeroTitle: "Jon Boyd",
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid config")
	}

	var seed seedConfig
	if err := env.Parse(&seed); err != nil {
		log.Fatal().Err(err).Msg("failed to parse seed config")
	}

	cfg.AutoMigrate = true
	store, err := app.OpenStore(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open storage")
	}
	defer store.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := run(ctx, store, seed); err != nil {
		log.Fatal().Err(err).Msg("seed failed")
	}
	log.Info().Msg("seed complete")
}

func run(ctx context.Context, store repository.Store, seed seedConfig) error {
	if err := store.Content().Seed(ctx, defaultContent); err != nil {
		return err
	}
	log.Info().Msg("site content ready")

	email := strings.ToLower(strings.TrimSpace(seed.AdminEmail))
	hash, err := util.HashPassword(seed.AdminPassword)
	if err != nil {
		return err
	}

	_, err = store.Accounts().Create(ctx, model.CreateAdminAccountParams{Email: email, PasswordHash: hash})
	switch {
	case errors.Is(err, repository.ErrUniqueViolation):
		log.Info().Str("email", email).Msg("admin account already exists")
	case err != nil:
		return err
	default:
		log.Info().Str("email", email).Msg("admin account created")
	}
	return nil
}
