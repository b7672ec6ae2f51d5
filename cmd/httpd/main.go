// Command httpd runs the legal query classification HTTP service.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/praj33/Law-Agent-by-Grok-sub003/internal/api"
	"github.com/praj33/Law-Agent-by-Grok-sub003/internal/classifier"
	"github.com/praj33/Law-Agent-by-Grok-sub003/internal/config"
	"github.com/praj33/Law-Agent-by-Grok-sub003/internal/data"
	"github.com/praj33/Law-Agent-by-Grok-sub003/internal/database"
	"github.com/praj33/Law-Agent-by-Grok-sub003/internal/feedback"
	"github.com/praj33/Law-Agent-by-Grok-sub003/internal/logger"
	"github.com/praj33/Law-Agent-by-Grok-sub003/internal/processor"
	"github.com/praj33/Law-Agent-by-Grok-sub003/internal/statutes"
	"github.com/praj33/Law-Agent-by-Grok-sub003/internal/telemetry"
)

const shutdownTimeout = 30 * time.Second

func main() {
	cfg, err := config.Load(config.GetConfigPath("config.yml"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.Must(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		Development: cfg.Service.Debug,
	})
	defer func() {
		_ = log.Sync()
	}()

	log.Info("starting service",
		logger.String("service", cfg.Service.Name),
		logger.String("version", cfg.Service.Version),
		logger.Int("port", cfg.Service.Port))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := database.Connect(ctx, cfg.Database)
	if err != nil {
		log.Fatal("failed to connect to database", logger.Error(err))
	}
	defer func() {
		_ = db.Close()
	}()

	if err := database.Migrate(ctx, db); err != nil {
		log.Fatal("failed to migrate database", logger.Error(err))
	}

	store := database.NewStore(db)
	tp := telemetry.NewProvider()

	// Restore the learned adjustments so confidence survives restarts.
	state := feedback.NewState()
	deltas, err := store.LoadAll(ctx)
	if err != nil {
		log.Fatal("failed to load adjustments", logger.Error(err))
	}
	state.Restore(deltas)
	log.Info("adjustment state restored", logger.Int("entries", state.Len()))

	adjuster := feedback.NewAdjuster(state, store, feedback.Config{
		PositiveStep:       cfg.Feedback.PositiveStep,
		StrongPositiveStep: cfg.Feedback.StrongPositiveStep,
		NegativeStep:       cfg.Feedback.NegativeStep,
		StrongNegativeStep: cfg.Feedback.StrongNegativeStep,
		RatingPositiveMin:  cfg.Feedback.RatingPositiveMin,
		RatingNegativeMax:  cfg.Feedback.RatingNegativeMax,
	}, log, tp)

	clf := classifier.New(
		data.Exemplars(),
		data.KeywordRules(),
		data.SubdomainRules(),
		state,
		classifier.Config{
			Version:       cfg.Service.Version,
			MinConfidence: cfg.Classification.MinConfidenceThreshold,
			ForcedFloor:   cfg.Classification.ForcedScoreFloor,
		},
		log,
		tp,
	)

	idx, err := statutes.NewIndex(data.Sections(), data.Articles())
	if err != nil {
		log.Fatal("failed to build statute index", logger.Error(err))
	}

	batch := processor.NewBatchProcessor(clf, cfg.Service.BatchConcurrency, log, tp)
	handler := api.NewHandler(clf, batch, adjuster, idx, store.FeedbackRepository,
		cfg.Service.BatchMaxSize, log, tp)

	server := api.NewServer(api.ServerConfig{
		ServiceName:    cfg.Service.Name,
		ServiceVersion: cfg.Service.Version,
		Port:           cfg.Service.Port,
		Debug:          cfg.Service.Debug,
		ReadTimeout:    cfg.Service.ReadTimeout,
		WriteTimeout:   cfg.Service.WriteTimeout,
		IdleTimeout:    cfg.Service.IdleTimeout,
	}, log, api.SetupRoutes(handler, tp, api.RouteConfig{
		SubdomainRules: data.SubdomainRules(),
		FeedbackRPS:    cfg.Feedback.RateLimitRPS,
		FeedbackBurst:  cfg.Feedback.RateLimitBurst,
	}))

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- server.Start()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		log.Fatal("server error", logger.Error(err))
	case sig := <-shutdown:
		log.Info("shutdown signal received", logger.String("signal", sig.String()))

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Fatal("graceful shutdown failed", logger.Error(err))
		}
		log.Info("server stopped gracefully")
	}
}
