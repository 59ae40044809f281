package app

import (
	"context"
	"fmt"
	"log"
	"time"

	"career-compass/internal/config"
	"career-compass/internal/database"
	"career-compass/internal/database/migration"
	dbpostgres "career-compass/internal/database/postgres"
	"career-compass/internal/database/seeder"
	"career-compass/internal/infrastructure/cache"
	"career-compass/internal/pkg/token"
	"career-compass/internal/repository"
)

// Container owns every long-lived dependency: the database pool, the
// cache client, the catalog snapshot provider and the token service.
type Container struct {
	Config   config.Config
	DB       database.DB
	Cache    *cache.Redis
	Provider *repository.CatalogProvider
	Tokens   token.Service
	Logger   *log.Logger
}

// NewContainer connects the database, runs pending migrations and seeders,
// and loads the first catalog snapshot. The process does not serve until
// all of that succeeded.
func NewContainer(cfg config.Config, logger *log.Logger) (*Container, error) {
	if logger == nil {
		logger = log.Default()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	mig := migration.Runner{Dir: cfg.App.MigrationsDir}
	if err := mig.Run(ctx, db.SQLDB()); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrations: %w", err)
	}

	if cfg.App.RunSeeders {
		sr := seeder.Runner{Seeders: seeder.Defaults()}
		if err := sr.Run(ctx, db); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("seeders: %w", err)
		}
	}

	provider := repository.NewCatalogProvider(repository.NewCatalogRepository(db))
	if err := provider.Reload(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	return &Container{
		Config:   cfg,
		DB:       db,
		Cache:    cache.NewRedis(logger),
		Provider: provider,
		Tokens:   token.NewHMACService(cfg.Auth.AdminSecret, cfg.Auth.TokenExpiresIn),
		Logger:   logger,
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
