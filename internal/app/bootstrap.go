package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"career-compass/internal/config"
	"career-compass/internal/database/migration"
	"career-compass/internal/delivery/http/middleware"
	"career-compass/internal/delivery/http/routes"
	v1 "career-compass/internal/delivery/http/routes/v1"
	"career-compass/migrations"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func Bootstrap(cfg config.Config) (*App, func() error, error) {
	c, err := NewContainer(cfg)
	if err != nil {
		return nil, nil, err
	}

	migrateCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := (migration.Runner{FS: migrations.Files}).Run(migrateCtx, c.DB.SQLDB()); err != nil {
		_ = c.Close()
		return nil, nil, err
	}

	f := fiber.New(fiber.Config{AppName: cfg.App.AppName})

	errMw := middleware.NewErrorMiddleware()
	accessMw := middleware.NewAccessLogMiddleware(c.Logger)
	f.Use(errMw.Middleware())
	f.Use(accessMw.Middleware())

	routes.NewRegistry(v1.Deps{
		Matching:       c.Matching,
		Recommendation: c.Recommendation,
		Upskilling:     c.Upskilling,
		Progression:    c.Progression,
		Catalogue:      c.Catalogue,
		Indexing:       c.Indexing,
	}).Register(f)

	// Populate missing role embeddings in the background so a cold start
	// with a fresh database still serves matches once indexing finishes.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()
		if _, err := c.Indexing.IndexRoles(ctx); err != nil {
			c.Logger.Printf("[Indexer] startup indexing failed: %v", err)
		}
	}()

	app := &App{Fiber: f, Container: c}
	return app, c.Close, nil
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
