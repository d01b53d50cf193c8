// Package scraper walks the paginated catalog and collects normalized offers.
package scraper

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Houeta/cruise-flow/internal/browser"
	"github.com/Houeta/cruise-flow/internal/models"
	"github.com/Houeta/cruise-flow/internal/parser"
)

// traversal states, used in logs.
const (
	stateLoading    = "loading"
	stateExtracting = "extracting"
	stateNavigating = "navigating"
	stateDone       = "done"
	stateStopped    = "stopped-on-error"
)

// Normalizer turns raw cards into offers.
type Normalizer interface {
	NormalizeAll(raws []models.RawListing) []models.Offer
}

// Diagnostics stores artifacts that help to understand a failed run.
type Diagnostics interface {
	SaveScreenshot(ctx context.Context, png []byte) (string, error)
}

// Scraper owns one traversal of the catalog.
type Scraper struct {
	log        *slog.Logger
	launcher   browser.Launcher
	extractor  parser.Extractor
	normalizer Normalizer
	diag       Diagnostics
	maxPages   int
}

// NewScraper creates a Scraper. maxPages <= 0 means the traversal ends only
// when the next-page control disappears.
func NewScraper(
	log *slog.Logger,
	launcher browser.Launcher,
	extractor parser.Extractor,
	normalizer Normalizer,
	diag Diagnostics,
	maxPages int,
) *Scraper {
	return &Scraper{
		log:        log,
		launcher:   launcher,
		extractor:  extractor,
		normalizer: normalizer,
		diag:       diag,
		maxPages:   maxPages,
	}
}

// Scrape loads startURL in a fresh page and follows the next-page control until
// it is gone. A failure after the first page loaded stops the traversal without
// retry; if any offer was collected the partial result is returned with a nil
// error and ErrorMessage set.
func (s *Scraper) Scrape(ctx context.Context, startURL string) (*models.ScrapeResult, error) {
	const opn = "scraper.Scrape"
	log := s.log.With("op", opn)

	page, err := s.launcher.NewPage(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", opn, ErrLoad, err)
	}
	defer page.Close()

	log.InfoContext(ctx, "Loading catalog", "state", stateLoading, "url", startURL)
	if err = page.Load(ctx, startURL); err != nil {
		s.captureDiagnostics(ctx, page, err)
		return nil, fmt.Errorf("%s: %w: %w", opn, ErrLoad, err)
	}

	run := &traversal{page: page, pageNumber: 1, offers: make([]models.Offer, 0)}
	runErr := s.traverse(ctx, log, run)

	result := &models.ScrapeResult{
		TotalCount:     len(run.offers),
		PagesProcessed: run.processed,
		RunTimestamp:   time.Now().UTC(),
		Offers:         run.offers,
	}

	if runErr == nil {
		log.InfoContext(ctx, "Scraping completed", "state", stateDone, "offers", result.TotalCount, "pages", run.processed)
		return result, nil
	}

	log.WarnContext(
		ctx,
		"Scraping stopped",
		"state", stateStopped,
		"page", run.pageNumber,
		"offers", result.TotalCount,
		"error", runErr,
	)
	s.captureDiagnostics(ctx, page, runErr)

	if result.TotalCount == 0 {
		return nil, fmt.Errorf("%s: %w", opn, runErr)
	}

	result.ErrorMessage = runErr.Error()

	return result, nil
}

// traversal is the accumulator of one Scrape call.
type traversal struct {
	page       browser.Page
	pageNumber int // pageNumber is the page currently shown.
	processed  int // processed is the last page whose cards were collected.
	offers     []models.Offer
}

// traverse runs the Extracting ⇄ Navigating loop. It returns nil when the
// last page was reached.
func (s *Scraper) traverse(ctx context.Context, log *slog.Logger, run *traversal) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		log.InfoContext(ctx, "Processing page", "state", stateExtracting, "page", run.pageNumber)
		if err := run.page.WaitReady(ctx); err != nil {
			log.WarnContext(ctx, "Page content not ready, extracting anyway", "page", run.pageNumber, "error", err)
		}

		raws, err := s.extractor.Extract(ctx, run.page, run.pageNumber)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExtraction, err)
		}
		run.offers = append(run.offers, s.normalizer.NormalizeAll(raws)...)
		run.processed = run.pageNumber
		log.InfoContext(ctx, "Page processed", "page", run.pageNumber, "found", len(raws), "total", len(run.offers))

		if s.maxPages > 0 && run.pageNumber >= s.maxPages {
			log.InfoContext(ctx, "Page limit reached", "limit", s.maxPages)
			return nil
		}

		hasNext, err := run.page.HasNext(ctx)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrNavigation, err)
		}
		if !hasNext {
			log.InfoContext(ctx, "Next-page control is absent or disabled", "page", run.pageNumber)
			return nil
		}

		log.InfoContext(ctx, "Navigating to next page", "state", stateNavigating, "from", run.pageNumber)
		if err = run.page.Next(ctx); err != nil {
			return fmt.Errorf("%w: %w", ErrNavigation, err)
		}
		run.pageNumber++
	}
}

// captureDiagnostics saves a screenshot of the failed page. Failures here are only logged.
func (s *Scraper) captureDiagnostics(ctx context.Context, page browser.Page, cause error) {
	if s.diag == nil {
		return
	}

	png, err := page.Screenshot(ctx)
	if err != nil {
		s.log.WarnContext(ctx, "failed to capture error screenshot", "cause", cause, "error", err)
		return
	}

	path, err := s.diag.SaveScreenshot(ctx, png)
	if err != nil {
		s.log.WarnContext(ctx, "failed to save error screenshot", "cause", cause, "error", err)
		return
	}

	s.log.InfoContext(ctx, "Error screenshot saved", "path", path, "cause", cause)
}
