package scraper

import "errors"

var (
	// ErrLoad means the first catalog page never became ready. Nothing was collected.
	ErrLoad = errors.New("catalog page failed to load")
	// ErrExtraction means the DOM snapshot of a page could not be read.
	ErrExtraction = errors.New("failed to extract listings")
	// ErrNavigation means the next-page control could not be inspected or followed.
	ErrNavigation = errors.New("failed to navigate to next page")
)
