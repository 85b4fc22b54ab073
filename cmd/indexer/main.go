// Command indexer runs the schema migrations and embeds any catalogued
// roles missing from the vector index, then exits. Useful for seeding a
// fresh database before the server starts.
package main

import (
	"context"
	"log"
	"time"

	"career-compass/internal/app"
	"career-compass/internal/config"
	"career-compass/internal/database/migration"
	"career-compass/migrations"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	c, err := app.NewContainer(cfg)
	if err != nil {
		log.Fatalf("failed to build container: %v", err)
	}
	defer func() {
		if err := c.Close(); err != nil {
			log.Printf("cleanup error: %v", err)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	if err := (migration.Runner{FS: migrations.Files}).Run(ctx, c.DB.SQLDB()); err != nil {
		log.Fatalf("migrations failed: %v", err)
	}

	report, err := c.Indexing.IndexRoles(ctx)
	if err != nil {
		log.Fatalf("indexing failed: %v", err)
	}

	log.Printf("indexing done: embedded=%d skipped=%d failed=%d",
		report.Embedded, report.Skipped, report.Failed)
}
