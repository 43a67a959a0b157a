// This is the main entry point of the Quill blogging backend.
// It's responsible for loading configuration, opening the database pool,
// wiring services and handlers, setting up the HTTP router and middleware,
// and starting the HTTP server with graceful shutdown. The same binary also
// applies schema migrations (`quill migrate up|down`).
//
// @title Quill API
// @version 1.0
// @description Blogging backend: registration, cookie sessions and posts.
// @contact.name API Support
// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type 'Bearer YOUR_SESSION_TOKEN' to authorize. Browsers send the token cookie instead.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	// `godotenv` loads environment variables from a .env file, useful for development.
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	"github.com/user/quill-go/auth"
	"github.com/user/quill-go/config"
	"github.com/user/quill-go/db"
	"github.com/user/quill-go/posts"
	"github.com/user/quill-go/users"
)

const shutdownTimeout = 30 * time.Second

func main() {
	// In production, variables are usually set directly.
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading it: %v", err)
	}

	cliApp := &cli.App{
		Name:           "quill",
		Usage:          "blogging backend API server",
		DefaultCommand: "serve",
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "start the HTTP server",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "migrate",
						Usage: "apply pending migrations before serving",
					},
				},
				Action: serve,
			},
			{
				Name:  "migrate",
				Usage: "apply or roll back schema migrations",
				Subcommands: []*cli.Command{
					{Name: "up", Usage: "apply all pending migrations", Action: migrateAction(db.Up)},
					{Name: "down", Usage: "roll back all migrations", Action: migrateAction(db.Down)},
				},
			},
		},
	}

	if err := cliApp.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func migrateAction(direction db.Direction) cli.ActionFunc {
	return func(c *cli.Context) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := db.RunMigrations(cfg.DB, cfg.MigrationsPath, direction); err != nil {
			return err
		}
		log.Printf("Migrations %s complete", direction)
		return nil
	}
}

func serve(c *cli.Context) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if c.Bool("migrate") {
		if err := db.RunMigrations(cfg.DB, cfg.MigrationsPath, db.Up); err != nil {
			return err
		}
		log.Println("Migrations applied")
	}

	pool, err := db.NewDBPool(cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to create database pool: %w", err)
	}
	defer pool.Close()

	a := newApp(cfg, stores{
		users:    auth.NewPgUserStore(pool),
		posts:    posts.NewPgPostStore(pool),
		profiles: users.NewPgProfileStore(pool),
	})

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      newRouter(cfg.Server, a),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	srv.RegisterOnShutdown(a.feed.Close)

	// SIGINT (Ctrl+C) or SIGTERM cancel ctx; so does a server that fails to start.
	ctx, stop := signal.NotifyContext(c.Context, syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Printf("Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		log.Println("Server shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		log.Println("Server stopped gracefully")
		return nil
	})

	return g.Wait()
}
