package browser

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

const (
	lifecycleNetworkIdle = "networkIdle"
	screenshotQuality    = 90
	windowWidth          = 1920
	windowHeight         = 1080
	userAgent            = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

// Options configures the Chrome session and the page waits.
type Options struct {
	Headless      bool
	LoadTimeout   time.Duration
	NavTimeout    time.Duration
	ReadyTimeout  time.Duration
	SettleDelay   time.Duration
	ReadySelector string
	NextSelector  string
}

// Chrome launches tabs in a single headless Chrome process.
type Chrome struct {
	log         *slog.Logger
	opts        Options
	allocCtx    context.Context //nolint:containedctx // chromedp allocator lives for the whole process
	allocCancel context.CancelFunc
}

// NewChrome prepares the Chrome allocator. The browser itself starts with the first page.
func NewChrome(log *slog.Logger, opts Options) *Chrome {
	allocCtx, allocCancel := chromedp.NewExecAllocator(context.Background(), allocatorOptions(opts.Headless)...)

	return &Chrome{log: log, opts: opts, allocCtx: allocCtx, allocCancel: allocCancel}
}

// Close shuts the browser down.
func (c *Chrome) Close() {
	c.log.Info("Closing browser...")
	c.allocCancel()
}

// NewPage opens a fresh tab. The tab is closed when ctx is canceled or Close is called.
func (c *Chrome) NewPage(ctx context.Context) (Page, error) {
	const opn = "browser.NewPage"

	tabCtx, tabCancel := chromedp.NewContext(c.allocCtx, chromedp.WithErrorf(func(format string, args ...any) {
		c.log.Debug("chromedp", "op", opn, "message", fmt.Sprintf(format, args...))
	}))

	if err := chromedp.Run(tabCtx, page.SetLifecycleEventsEnabled(true)); err != nil {
		tabCancel()
		return nil, fmt.Errorf("%s: failed to open tab: %w", opn, err)
	}

	stop := context.AfterFunc(ctx, tabCancel)

	return &chromePage{
		log:    c.log,
		opts:   c.opts,
		tabCtx: tabCtx,
		close: func() {
			stop()
			tabCancel()
		},
	}, nil
}

type chromePage struct {
	log    *slog.Logger
	opts   Options
	tabCtx context.Context //nolint:containedctx // chromedp binds actions to the tab context
	close  func()
}

func (p *chromePage) Load(ctx context.Context, url string) error {
	p.log.DebugContext(ctx, "Loading page", "url", url)

	if err := p.runUntilIdle(p.opts.LoadTimeout, chromedp.Navigate(url)); err != nil {
		return fmt.Errorf("failed to load %s: %w", url, err)
	}

	return nil
}

func (p *chromePage) WaitReady(ctx context.Context) error {
	if p.opts.ReadySelector == "" {
		p.log.DebugContext(ctx, "No ready selector, waiting settle delay", "delay", p.opts.SettleDelay)
		return chromedp.Run(p.tabCtx, chromedp.Sleep(p.opts.SettleDelay))
	}

	waitCtx, cancel := context.WithTimeout(p.tabCtx, p.opts.ReadyTimeout)
	defer cancel()

	if err := chromedp.Run(waitCtx, chromedp.WaitVisible(p.opts.ReadySelector, chromedp.ByQuery)); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrNotReady, p.opts.ReadySelector, err)
	}

	return nil
}

func (p *chromePage) HTML(_ context.Context) (string, error) {
	opCtx, cancel := context.WithTimeout(p.tabCtx, p.opts.NavTimeout)
	defer cancel()

	var html string
	if err := chromedp.Run(opCtx, chromedp.OuterHTML("html", &html, chromedp.ByQuery)); err != nil {
		return "", fmt.Errorf("failed to read DOM snapshot: %w", err)
	}

	return html, nil
}

func (p *chromePage) HasNext(_ context.Context) (bool, error) {
	opCtx, cancel := context.WithTimeout(p.tabCtx, p.opts.NavTimeout)
	defer cancel()

	var available bool
	if err := chromedp.Run(opCtx, chromedp.Evaluate(nextScript(p.opts.NextSelector), &available)); err != nil {
		return false, fmt.Errorf("failed to inspect next-page control: %w", err)
	}

	return available, nil
}

func (p *chromePage) Next(ctx context.Context) error {
	p.log.DebugContext(ctx, "Clicking next-page control", "selector", p.opts.NextSelector)

	click := chromedp.Click(p.opts.NextSelector, chromedp.ByQuery, chromedp.NodeVisible)
	if err := p.runUntilIdle(p.opts.NavTimeout, click); err != nil {
		return fmt.Errorf("failed to navigate to next page: %w", err)
	}

	return nil
}

func (p *chromePage) Screenshot(_ context.Context) ([]byte, error) {
	opCtx, cancel := context.WithTimeout(p.tabCtx, p.opts.NavTimeout)
	defer cancel()

	var buf []byte
	if err := chromedp.Run(opCtx, chromedp.FullScreenshot(&buf, screenshotQuality)); err != nil {
		return nil, fmt.Errorf("failed to capture screenshot: %w", err)
	}

	return buf, nil
}

func (p *chromePage) Close() {
	p.close()
}

// runUntilIdle runs action and then blocks until the main frame has navigated
// and the new document reports network idle. The listener is registered
// before the action so an early event is not lost.
func (p *chromePage) runUntilIdle(timeout time.Duration, action chromedp.Action) error {
	ctx, cancel := context.WithTimeout(p.tabCtx, timeout)
	defer cancel()

	var tree *page.FrameTree
	if err := chromedp.Run(ctx, chromedp.ActionFunc(func(ctx context.Context) error {
		var err error
		tree, err = page.GetFrameTree().Do(ctx)
		return err
	})); err != nil {
		return fmt.Errorf("failed to read frame tree: %w", err)
	}

	watcher := newNavWatcher(tree.Frame)
	chromedp.ListenTarget(ctx, watcher.handle)

	if err := chromedp.Run(ctx, action); err != nil {
		return err
	}

	select {
	case <-watcher.done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("%w within %s: %w", ErrNotIdle, timeout, ctx.Err())
	}
}

// allocatorOptions returns the Chrome flags for the session.
func allocatorOptions(headless bool) []chromedp.ExecAllocatorOption {
	opts := append([]chromedp.ExecAllocatorOption{}, chromedp.DefaultExecAllocatorOptions[:]...)
	opts = append(opts,
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.WindowSize(windowWidth, windowHeight),
		chromedp.UserAgent(userAgent),
	)

	if !headless {
		opts = append(opts, chromedp.Flag("headless", false))
	}

	return opts
}

// nextScript evaluates to true when the next-page control can be clicked.
func nextScript(selector string) string {
	return fmt.Sprintf(`(() => {
	const el = document.querySelector(%q);
	if (!el || el.disabled || el.getAttribute('aria-disabled') === 'true') return false;
	const style = window.getComputedStyle(el);
	return style.display !== 'none' && style.visibility !== 'hidden';
})()`, selector)
}
