package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Houeta/price-scout/internal/bot"
	"github.com/Houeta/price-scout/internal/config"
	"github.com/Houeta/price-scout/internal/fetcher"
	"github.com/Houeta/price-scout/internal/models"
	"github.com/Houeta/price-scout/internal/parser"
	"github.com/Houeta/price-scout/internal/repository/sqlite"
	"github.com/Houeta/price-scout/internal/services/scraper"
	_ "github.com/mattn/go-sqlite3"
)

// Constants for different environment types.
const (
	envLocal = "local"
	envDev   = "development"
	envProd  = "production"
)

// main is the entry point of the application.
func main() {
	// Create a context that will be canceled when an interrupt signal is received.
	// This allows for graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.MustLoad()

	// Set up the logger based on the environment.
	logger := setupLogger(cfg.Env)

	repo, err := sqlite.NewRepository(ctx, logger, cfg.StoragePath)
	if err != nil {
		log.Fatalf("Failed to init repository: %v", err)
	}
	defer repo.Close()

	prs := parser.NewParser(logger, scraper.TopAchatSelectors())
	ftch := fetcher.New(logger, cfg.RateLimit, cfg.MaxRetries)
	topachat := scraper.NewTopAchat(logger, ftch, prs, repo)

	if _, err = topachat.SetupWebsiteConfig(ctx); err != nil {
		log.Fatalf("Failed to set up website config: %v", err)
	}

	var priceBot *bot.Bot
	if cfg.Tg.Token != "" {
		priceBot, err = bot.NewBot(logger, repo, cfg.Tg.Token, cfg.Tg.Timeout)
		if err != nil {
			log.Fatalf("Failed to init bot: %v", err)
		}
	}

	run := func() {
		summary, runErr := topachat.ScrapeListings(ctx, cfg.MaxPages)
		if runErr != nil {
			logger.ErrorContext(ctx, "Scrape run failed", "error", runErr)
			return
		}

		displayResults(ctx, logger, summary)

		deleted, pruneErr := repo.PruneOldPrices(ctx, cfg.RetentionDays)
		if pruneErr != nil {
			logger.ErrorContext(ctx, "Failed to prune old prices", "error", pruneErr)
		} else if deleted > 0 {
			logger.InfoContext(ctx, "Pruned old prices", "deleted", deleted, "retention_days", cfg.RetentionDays)
		}

		if priceBot != nil {
			if notifyErr := priceBot.NotifyRunSummary(ctx, summary); notifyErr != nil {
				logger.ErrorContext(ctx, "Failed to notify subscribers", "error", notifyErr)
			}
		}
	}

	// Without a bot the process is a one-shot scraper.
	if priceBot == nil {
		run()
		return
	}

	// Start the bot in a goroutine to allow main to listen for signals.
	go priceBot.Start()

	logger.InfoContext(ctx, "Application started. Press Ctrl+C to stop.")

	run()

	ticker := time.NewTicker(cfg.Interval)
	defer ticker.Stop()

loop:
	for {
		select {
		case <-ctx.Done():
			break loop
		case <-ticker.C:
			run()
		}
	}

	// Log that a shutdown signal has been received.
	logger.InfoContext(ctx, "Shutdown signal received. Stopping application...")

	// Stop the bot gracefully.
	priceBot.Stop()

	// Log graceful shutdown completion.
	logger.InfoContext(ctx, "Application stopped gracefully.")
}

// displayResults logs the aggregated outcome of one scrape run.
func displayResults(ctx context.Context, logger *slog.Logger, summary *models.RunSummary) {
	logger.InfoContext(ctx, "Scraping completed",
		"website", summary.Website,
		"success", summary.Success,
		"pages", summary.PagesAttempted,
		"found", summary.ProductsFound,
		"processed", summary.ProductsProcessed,
		"created", summary.ProductsCreated,
		"updated", summary.ProductsUpdated,
		"duration", summary.Duration.Round(time.Millisecond),
	)

	if len(summary.Errors) > 0 {
		logger.WarnContext(ctx, "Errors encountered", "count", len(summary.Errors))
		for i, msg := range summary.Errors {
			if i == 5 {
				break
			}
			logger.WarnContext(ctx, "Run error", "error", msg)
		}
	}
}

// setupLogger initializes and returns a logger based on the environment provided.
func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
				Level:     slog.LevelDebug,
				AddSource: true,
				ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
					return a
				},
			}),
		)
	case envDev:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level:     slog.LevelInfo,
				AddSource: false,
				ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
					return a
				},
			}),
		)
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level:     slog.LevelWarn,
				AddSource: false,
				ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
					if a.Key == slog.TimeKey {
						return slog.Attr{}
					}
					return a
				},
			}),
		)
	default:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level:     slog.LevelError,
				AddSource: false,
				ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
					if a.Key == slog.TimeKey {
						return slog.Attr{}
					}
					return a
				},
			}),
		)

		log.Error(
			"The env parameter was not specified	 or was invalid. Logging will be minimal, by default.",
			slog.String("available_envs", "local, development, production"))
	}

	return log
}
