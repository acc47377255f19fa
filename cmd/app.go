package cmd

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/questionforge/ingestor/internal/classify"
	"github.com/questionforge/ingestor/internal/config"
	"github.com/questionforge/ingestor/internal/database"
	"github.com/questionforge/ingestor/internal/extractor"
	"github.com/questionforge/ingestor/internal/logger"
	"github.com/questionforge/ingestor/internal/pipeline"
	"github.com/questionforge/ingestor/internal/publisher"
)

// app wires the service dependencies for a command invocation.
type app struct {
	cfg      *config.Config
	log      logger.Logger
	db       *sqlx.DB
	staging  *database.StagingRepository
	ingestor *pipeline.Service
	reviewer *publisher.Service
}

func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(logger.Config{
		Level:       cfg.Service.LogLevel,
		Development: cfg.Service.Debug,
	})
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	db, err := database.NewPostgresConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	fetcher := extractor.NewFetcher(cfg.Fetch.Timeout)

	// Order encodes priority: the most specific extractors come first and
	// the universal fallback is last.
	registry := extractor.NewRegistry(
		extractor.NewDatasetExtractor(),
		extractor.NewRepoFileExtractor(fetcher),
		extractor.NewBlogExtractor(fetcher, cfg.Fetch.BlogContentCap),
		extractor.NewGenericExtractor(fetcher, cfg.Fetch.GenericContentCap),
	)

	staging := database.NewStagingRepository(db)
	catalog := database.NewCatalogRepository(db)

	return &app{
		cfg:      cfg,
		log:      log,
		db:       db,
		staging:  staging,
		ingestor: pipeline.NewService(registry, classify.New(log), staging, log),
		reviewer: publisher.NewService(staging, catalog, log),
	}, nil
}

func (a *app) close() {
	if err := a.db.Close(); err != nil {
		a.log.Warn("close database", logger.Err(err))
	}
	_ = a.log.Sync()
}
