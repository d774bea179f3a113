// Package main is the entry point for the recruit admin API server.
// It initializes all dependencies and starts the HTTP server.
package main

import (
	"context"
	"log"
	"os"

	"recruitadmin/src/app/server"
	"recruitadmin/src/infra/config"
	"recruitadmin/src/infra/db"
	"recruitadmin/src/infra/logger"
	"recruitadmin/src/infra/repo"
)

func main() {
	if err := run(); err != nil {
		log.Printf("fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration from environment variables
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Initialize logger
	log := logger.New(cfg.Log)
	log.Info("starting application",
		"port", cfg.Server.Port,
		"log_level", cfg.Log.Level,
	)

	// Initialize database connection
	pg, err := db.New(context.Background(), cfg.Database, log)
	if err != nil {
		return err
	}
	defer pg.Close()

	// Initialize repositories
	repos := server.Repositories{
		DB:                     pg,
		RecruitYears:           repo.NewPostgresRecruitYearRepository(pg, log),
		Companies:              repo.NewPostgresCompanyRepository(pg, log),
		EventMasters:           repo.NewPostgresEventMasterRepository(pg, log),
		Events:                 repo.NewPostgresEventRepository(pg, log),
		EducationalBackgrounds: repo.NewPostgresEducationalBackgroundRepository(pg, log),
		References:             repo.NewPostgresReferenceReader(pg, log),
	}

	// Create and run HTTP server
	srv := server.New(cfg, log, repos)

	// Run blocks until shutdown signal is received
	return srv.Run()
}
