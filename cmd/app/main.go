package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fulfillment/cmd"
	httpin "fulfillment/internal/adapters/in/http"
	"fulfillment/internal/adapters/out/postgres"

	"github.com/labstack/gommon/log"
	"github.com/urfave/cli/v2"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const shutdownTimeout = 15 * time.Second

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	app := &cli.App{
		Name:  "fulfillment",
		Usage: "order fulfillment service with change auditing and notifications",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "env-file",
				Value: ".env",
				Usage: "optional dotenv file read before the environment",
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "run the HTTP API, the notification workers and the scheduled jobs",
				Action: func(c *cli.Context) error {
					return serve(c.Context, c.String("env-file"), logger)
				},
			},
			{
				Name:  "migrate",
				Usage: "create or update the database schema",
				Action: func(c *cli.Context) error {
					return migrate(c.Context, c.String("env-file"), logger)
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatalf("fulfillment: %v", err)
	}
}

func openDB(cfg cmd.Config) (*gorm.DB, error) {
	db, err := gorm.Open(pgdriver.Open(cfg.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	return db, nil
}

func migrate(ctx context.Context, envFile string, logger *slog.Logger) error {
	cfg, err := cmd.LoadConfig(envFile)
	if err != nil {
		return err
	}
	db, err := openDB(cfg)
	if err != nil {
		return err
	}

	if err = postgres.Migrate(ctx, db); err != nil {
		return err
	}
	logger.InfoContext(ctx, "Schema migrated", "database", cfg.DBName)
	return nil
}

func serve(ctx context.Context, envFile string, logger *slog.Logger) error {
	cfg, err := cmd.LoadConfig(envFile)
	if err != nil {
		return err
	}
	db, err := openDB(cfg)
	if err != nil {
		return err
	}

	root, err := cmd.NewCompositionRoot(cfg, db, logger)
	if err != nil {
		return err
	}

	doc, err := httpin.LoadOpenAPI(ctx)
	if err != nil {
		return err
	}
	e := httpin.NewEcho(httpin.NewServer(root.HTTPHandlers(), logger), doc, logger)

	jobManager := root.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("HTTP server listening", "port", cfg.HTTPPort)
		serverErr <- e.Start(fmt.Sprintf("0.0.0.0:%s", cfg.HTTPPort))
	}()

	var runErr error
	select {
	case <-ctx.Done():
		logger.Info("Shutting down")
	case runErr = <-serverErr:
		if errors.Is(runErr, http.ErrServerClosed) {
			runErr = nil
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	jobManager.StopAll()
	return errors.Join(
		runErr,
		e.Shutdown(shutdownCtx),
		root.Close(shutdownCtx),
	)
}
