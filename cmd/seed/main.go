package main

import (
	"context"
	"log"
	"time"

	"career-compass/internal/config"
	"career-compass/internal/database/migration"
	dbpostgres "career-compass/internal/database/postgres"
	"career-compass/internal/database/seeder"
)

// Seeds the default career catalog and course data. The server does the
// same when RUN_SEEDERS is set; this exists for one-off provisioning.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	defer func() {
		_ = db.Close()
	}()

	mig := migration.Runner{Dir: cfg.App.MigrationsDir}
	if err := mig.Run(ctx, db.SQLDB()); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	r := seeder.Runner{Seeders: seeder.Defaults()}
	if err := r.Run(ctx, db); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	log.Printf("seeding done")
}
