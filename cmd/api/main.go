// cmd/api/main.go

package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"scrollmark/internal/adapter/inference"
	"scrollmark/internal/config"
	"scrollmark/internal/domain/capability"
	"scrollmark/internal/metrics"
	"scrollmark/internal/random"
	"scrollmark/internal/server"
	"scrollmark/internal/server/handlers"
	"scrollmark/internal/service/analytics"
	"scrollmark/internal/service/assembler"
	"scrollmark/internal/service/ingest"
	intentservice "scrollmark/internal/service/intent"
)

func main() {
	// Load .env if present, then configuration from the environment
	_ = godotenv.Load()

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.Load()
	if err != nil {
		logger.WithError(err).Fatal("Failed to load configuration")
	}
	if cfg.Environment == "development" {
		logger.SetLevel(logrus.DebugLevel)
	}

	// Setup signal handling for graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Inference capabilities are optional. Without an API key the pipeline
	// degrades to neutral sentiment and fallback recommendations.
	classifier := initClassifier(cfg.Sentiment, logger)
	generator := initGenerator(cfg.Generator, logger)

	seed := cfg.Analytics.RandomSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	// Shared across request goroutines; the guarded source keeps draws safe.
	rng := random.New(seed)

	pipeline := analytics.NewPipeline(
		analytics.NewSentimentAnalyzer(classifier, cfg.Sentiment.ConfidenceThreshold),
		analytics.NewRecommender(generator, rng, cfg.Generator.MaxTokens),
		intentservice.NewScorer(rng, time.Now),
		rng,
		cfg.Analytics.TopKeywords,
		logger,
	)

	collector := metrics.NewCollector()
	analyzeHandler := handlers.NewAnalyzeHandler(
		ingest.NewNormalizer(),
		pipeline,
		assembler.New(rng, time.Now),
		collector,
		logger,
	)

	httpServer := server.NewServer(cfg.Server, analyzeHandler, collector.Handler())

	// Start HTTP server
	go func() {
		logger.WithFields(logrus.Fields{
			"host": cfg.Server.Host,
			"port": cfg.Server.Port,
		}).Info("Starting HTTP server")
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.WithError(err).Fatal("HTTP server error")
		}
	}()

	// Wait for shutdown signal
	<-shutdown
	logger.Info("Shutdown signal received")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("HTTP server shutdown error")
	}

	logger.Info("Shutdown complete")
}

// initClassifier builds the sentiment capability when configured.
func initClassifier(cfg config.SentimentConfig, logger *logrus.Logger) capability.SentimentClassifier {
	if cfg.APIKey == "" {
		logger.Warn("Sentiment capability not configured, falling back to neutral sentiment")
		return nil
	}

	return inference.NewSentimentClient(cfg.APIKey,
		inference.WithSentimentBaseURL(cfg.APIURL),
		inference.WithSentimentModel(cfg.Model),
		inference.WithSentimentHTTPClient(&http.Client{Timeout: cfg.Timeout}),
	)
}

// initGenerator builds the text generation capability when configured.
func initGenerator(cfg config.GeneratorConfig, logger *logrus.Logger) capability.TextGenerator {
	if cfg.APIKey == "" {
		logger.Warn("Generator capability not configured, falling back to static recommendations")
		return nil
	}

	return inference.NewGeneratorClient(cfg.APIKey,
		inference.WithGeneratorBaseURL(cfg.APIURL),
		inference.WithGeneratorModel(cfg.Model),
		inference.WithGeneratorHTTPClient(&http.Client{Timeout: cfg.Timeout}),
	)
}
