package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/Houeta/cruise-flow/internal/bot"
	"github.com/Houeta/cruise-flow/internal/browser"
	"github.com/Houeta/cruise-flow/internal/config"
	"github.com/Houeta/cruise-flow/internal/export"
	"github.com/Houeta/cruise-flow/internal/normalizer"
	"github.com/Houeta/cruise-flow/internal/parser"
	"github.com/Houeta/cruise-flow/internal/repository/sqlite"
	"github.com/Houeta/cruise-flow/internal/scheduler"
	"github.com/Houeta/cruise-flow/internal/scraper"
	"github.com/Houeta/cruise-flow/internal/services/checker"
	"github.com/Houeta/cruise-flow/internal/services/notifier"
	"github.com/Houeta/cruise-flow/internal/store"
)

// Constants for different environment types.
const (
	envLocal = "local"
	envDev   = "development"
	envProd  = "production"

	storageDirPerm = 0o755
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

	if err := os.MkdirAll(filepath.Dir(cfg.StoragePath), storageDirPerm); err != nil {
		log.Fatalf("Failed to create storage directory: %v", err)
	}

	repo, err := sqlite.NewRepository(ctx, logger, cfg.StoragePath)
	if err != nil {
		log.Fatalf("Failed to init repository: %v", err)
	}
	defer repo.Close()

	state, err := store.Load(ctx, logger, repo)
	if err != nil {
		log.Fatalf("Failed to load state: %v", err)
	}

	chrome := browser.NewChrome(logger, browser.Options{
		Headless:      cfg.Browser.Headless,
		LoadTimeout:   cfg.Browser.LoadTimeout,
		NavTimeout:    cfg.Browser.NavTimeout,
		ReadyTimeout:  cfg.Browser.ReadyTimeout,
		SettleDelay:   cfg.Browser.SettleDelay,
		ReadySelector: cfg.Browser.ReadySelector,
		NextSelector:  cfg.Browser.NextSelector,
	})
	defer chrome.Close()

	writer := export.NewWriter(logger, cfg.OutputDir)

	catalogScraper := scraper.NewScraper(
		logger,
		chrome,
		parser.NewParser(logger, parser.DefaultSelectors()),
		normalizer.NewNormalizer(cfg.SiteOrigin, cfg.DefaultCurrency),
		writer,
		cfg.MaxPages,
	)

	cruiseBot, err := bot.NewBot(logger, cfg.Tg.Token, cfg.Tg.Timeout)
	if err != nil {
		log.Fatalf("Failed to init bot: %v", err)
	}

	offerChecker := checker.NewChecker(
		logger,
		catalogScraper,
		writer,
		state,
		notifier.NewNotifier(logger, cruiseBot, cfg.URL),
		cfg.URL,
		cfg.PriceThreshold,
	)

	cruiseBot.Bind(bot.Deps{
		Store:     state,
		Runner:    offerChecker,
		Reports:   writer,
		Threshold: cfg.PriceThreshold,
	})

	sched := scheduler.New(logger, offerChecker, cfg.Schedule)

	// Log that the application has started.
	logger.InfoContext(ctx, "Application started. Press Ctrl+C to stop.")

	// Start the bot in a goroutine to allow main to listen for signals.
	go cruiseBot.Start(ctx)

	if err = sched.Start(ctx); err != nil {
		logger.ErrorContext(ctx, "failed to start scheduler", "error", err)
		stop()
	}

	// Wait for the context to be canceled (e.g., by Ctrl+C).
	<-ctx.Done()

	// Log that a shutdown signal has been received.
	logger.Info("Shutdown signal received. Stopping application...")

	cruiseBot.Stop()
	sched.Stop()

	// Log graceful shutdown completion.
	logger.Info("Application stopped gracefully.")
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
			"The env parameter was not specified or was invalid. Logging will be minimal, by default.",
			slog.String("available_envs", "local, development, production"))
	}

	return log
}
