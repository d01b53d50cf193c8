// Package browser drives a headless Chrome session for the catalog pages.
package browser

import (
	"context"
	"errors"
)

var (
	// ErrNotIdle is returned when a page does not reach network idle in time.
	ErrNotIdle = errors.New("page did not reach network idle")
	// ErrNotReady is returned when the listing cards do not become visible in time.
	ErrNotReady = errors.New("page content is not ready")
)

// Page is a single browser tab showing the catalog.
type Page interface {
	// Load opens url and waits until the network is idle.
	Load(ctx context.Context, url string) error
	// WaitReady waits until the listing cards are rendered.
	WaitReady(ctx context.Context) error
	// HTML returns a snapshot of the current DOM.
	HTML(ctx context.Context) (string, error)
	// HasNext reports whether the next-page control exists, is enabled and is visible.
	HasNext(ctx context.Context) (bool, error)
	// Next clicks the next-page control and waits for the new page to become idle.
	Next(ctx context.Context) error
	// Screenshot captures the full page as PNG.
	Screenshot(ctx context.Context) ([]byte, error)
	// Close releases the tab.
	Close()
}

// Launcher opens fresh browser pages.
type Launcher interface {
	NewPage(ctx context.Context) (Page, error)
}
