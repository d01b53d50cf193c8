package checker

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Houeta/cruise-flow/internal/models"
	"golang.org/x/sync/singleflight"
)

// Scraper runs one traversal of the catalog.
type Scraper interface {
	Scrape(ctx context.Context, startURL string) (*models.ScrapeResult, error)
}

// Exporter writes the output files of a run.
type Exporter interface {
	Export(ctx context.Context, result *models.ScrapeResult) error
}

// StateStore holds the notified offers and the subscribers.
type StateStore interface {
	SeenOffers() []models.Offer
	Subscribers() []int64
	ReplaceSeenOffers(ctx context.Context, offers []models.Offer) error
	RecordRun(ctx context.Context, summary models.RunSummary) error
}

// Notifier delivers additions and returns the ones that were committed.
type Notifier interface {
	Notify(ctx context.Context, additions []models.Offer, subscribers []int64) []models.Offer
}

// Interface is what triggers (scheduler and bot) depend on.
type Interface interface {
	// Run performs one scrape, diff and notify cycle.
	Run(ctx context.Context) (*models.Changes, error)
}

// Checker is an orchestrator that performs a full verification cycle.
type Checker struct {
	log       *slog.Logger
	scraper   Scraper
	exporter  Exporter
	store     StateStore
	notifier  Notifier
	url       string
	threshold int

	group singleflight.Group
}

// NewChecker creates a new Checker instance.
func NewChecker(
	log *slog.Logger,
	scraper Scraper,
	exporter Exporter,
	store StateStore,
	notifier Notifier,
	url string,
	threshold int,
) *Checker {
	return &Checker{
		log:       log,
		scraper:   scraper,
		exporter:  exporter,
		store:     store,
		notifier:  notifier,
		url:       url,
		threshold: threshold,
	}
}

// Run performs the cycle. Calls made while a cycle is in flight wait for it
// and share its result instead of starting a second one.
func (c *Checker) Run(ctx context.Context) (*models.Changes, error) {
	res, err, shared := c.group.Do("run", func() (any, error) {
		return c.run(ctx)
	})
	if shared {
		c.log.InfoContext(ctx, "Joined a run already in progress", "op", "checker.Run")
	}
	if err != nil {
		return nil, err //nolint:wrapcheck // already wrapped by run
	}

	changes, _ := res.(*models.Changes)

	return changes, nil
}

func (c *Checker) run(ctx context.Context) (*models.Changes, error) {
	const opn = "checker.Run"
	log := c.log.With("op", opn)

	log.InfoContext(ctx, "Starting run", "url", c.url, "threshold", c.threshold)
	result, err := c.scraper.Scrape(ctx, c.url)
	if err != nil {
		return nil, fmt.Errorf("%s: scrape failed: %w", opn, err)
	}

	if err = c.exporter.Export(ctx, result); err != nil {
		log.ErrorContext(ctx, "failed to export run output", "error", err)
	}

	if err = c.store.RecordRun(ctx, result.Summary()); err != nil {
		log.ErrorContext(ctx, "failed to record run summary", "error", err)
	}

	seen := c.store.SeenOffers()
	changes := Diff(result.Offers, seen, c.threshold)
	log.InfoContext(
		ctx,
		"Change detection complete",
		"added", len(changes.Added),
		"retained", len(changes.Retained),
		"dropped", len(changes.Dropped),
		"partial", result.IsPartial(),
	)

	// Offers missing from a partial run may sit on pages that were never reached.
	kept := changes.Retained
	if result.IsPartial() {
		kept = seen
		changes.Dropped = make([]models.Offer, 0)
	}

	committed := c.notifier.Notify(ctx, changes.Added, c.store.Subscribers())

	if len(committed) == 0 && len(changes.Dropped) == 0 {
		log.InfoContext(ctx, "Seen offers unchanged")
		return &changes, nil
	}

	next := make([]models.Offer, 0, len(kept)+len(committed))
	next = append(next, kept...)
	next = append(next, committed...)

	// The store keeps next in memory even when the flush fails.
	if err = c.store.ReplaceSeenOffers(ctx, next); err != nil {
		log.ErrorContext(ctx, "failed to persist seen offers", "count", len(next), "error", err)
		return &changes, nil
	}
	log.InfoContext(ctx, "Seen offers updated", "count", len(next))

	return &changes, nil
}
