package models

import "time"

// Changes - comparison result of one run against the previously notified offers.
type Changes struct {
	Added    []Offer // Added are eligible offers that were never notified.
	Retained []Offer // Retained are notified offers still present and eligible.
	Dropped  []Offer // Dropped are notified offers that disappeared or became too expensive.
}

// ScrapeResult - the full output of one scrape run.
type ScrapeResult struct {
	TotalCount     int       `json:"total_count"`
	PagesProcessed int       `json:"pages_processed"`
	RunTimestamp   time.Time `json:"run_timestamp"`
	ErrorMessage   string    `json:"error_message,omitempty"`
	Offers         []Offer   `json:"offers"`
}

// IsPartial reports whether the run stopped on an error before reaching the last page.
func (r *ScrapeResult) IsPartial() bool {
	return r.ErrorMessage != ""
}

// RunSummary - the description of the last run stored in the database.
type RunSummary struct {
	RunTimestamp   time.Time
	TotalCount     int
	PagesProcessed int
	ErrorMessage   string
}

// Summary builds the stored description of the run.
func (r *ScrapeResult) Summary() RunSummary {
	return RunSummary{
		RunTimestamp:   r.RunTimestamp,
		TotalCount:     r.TotalCount,
		PagesProcessed: r.PagesProcessed,
		ErrorMessage:   r.ErrorMessage,
	}
}
