package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/jonboyd/site-server/internal/config"
	"github.com/jonboyd/site-server/internal/database"
	"github.com/jonboyd/site-server/internal/repository"
	"github.com/jonboyd/site-server/internal/repository/gormstore"
)

// OpenStore connects the configured storage backend, applies the schema when
// AUTO_MIGRATE is set, and verifies the connection.
func OpenStore(cfg *config.Config) (repository.Store, error) {
	var store repository.Store

	switch cfg.StorageBackend {
	case config.BackendSQLite:
		db, err := gormstore.OpenSQLite(cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		s := gormstore.New(db)
		if cfg.AutoMigrate {
			if err := s.AutoMigrate(); err != nil {
				s.Close()
				return nil, fmt.Errorf("migrate sqlite: %w", err)
			}
		}
		store = s

	default:
		if cfg.AutoMigrate {
			if err := database.Migrate(cfg.DatabaseURL); err != nil {
				return nil, fmt.Errorf("migrate postgres: %w", err)
			}
		}
		db, err := database.Connect(cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		store = repository.NewPostgresStore(db.DB)
	}

	ctx, cancel := context.WithTimeout(context.Background(), config.DBPingTimeout)
	defer cancel()
	if err := store.Ping(ctx); err != nil {
		store.Close()
		return nil, fmt.Errorf("ping %s: %w", cfg.StorageBackend, err)
	}

	log.Info().Str("backend", cfg.StorageBackend).Bool("auto_migrate", cfg.AutoMigrate).Msg("storage ready")
	return store, nil
}
