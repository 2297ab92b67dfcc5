package boataround

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/chromedp/chromedp"

	"boataround-scraper/config"
	"boataround-scraper/utils"
)

// Session owns the single headless-browser instance for the run and exposes
// the few operations the extraction code needs: navigation, bounded waits,
// clicks and a parsed snapshot of the rendered page.
type Session struct {
	ctx    context.Context
	cancel func()
	logger *utils.Logger

	waitTimeout     time.Duration
	optionalTimeout time.Duration
	settleDelay     time.Duration
}

// NewSession launches the browser. The returned Session must be closed.
func NewSession(cfg *config.Config, logger *utils.Logger) (*Session, error) {
	chromeBin := findChromeBinary(cfg.ChromeBin)
	logger.Info("[session] Using browser binary: %s", chromeBin)

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-setuid-sandbox", true),
		chromedp.UserAgent("Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 "+
			"(KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"),
	)
	if chromeBin != "" {
		opts = append(opts, chromedp.ExecPath(chromeBin))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(context.Background(), opts...)

	// Suppress chromedp log noise
	ctx, cancelCtx := chromedp.NewContext(allocCtx, chromedp.WithLogf(func(string, ...interface{}) {}))

	cancel := func() {
		cancelCtx()
		cancelAlloc()
	}

	// Start the browser eagerly so a missing binary fails here, not on the
	// first navigation.
	if err := chromedp.Run(ctx); err != nil {
		cancel()
		return nil, fmt.Errorf("session: start browser: %w", err)
	}

	return &Session{
		ctx:             ctx,
		cancel:          cancel,
		logger:          logger,
		waitTimeout:     time.Duration(cfg.WaitTimeoutSec) * time.Second,
		optionalTimeout: time.Duration(cfg.OptionalWaitSec) * time.Second,
		settleDelay:     time.Duration(cfg.SettleDelayMs) * time.Millisecond,
	}, nil
}

// Close shuts the browser down.
func (s *Session) Close() {
	s.cancel()
}

// Navigate loads the given URL and pauses for the settle delay so
// client-side rendering can finish.
func (s *Session) Navigate(url string) error {
	if err := chromedp.Run(s.ctx, chromedp.Navigate(url)); err != nil {
		return fmt.Errorf("session: navigate %s: %w", url, err)
	}
	time.Sleep(s.settleDelay)
	return nil
}

// WaitVisible blocks until the selector is visible. Expiry of the mandatory
// wait budget is an error the caller must treat as fatal.
func (s *Session) WaitVisible(sel string) error {
	ctx, cancel := context.WithTimeout(s.ctx, s.waitTimeout)
	defer cancel()

	if err := chromedp.Run(ctx, chromedp.WaitVisible(sel, chromedp.ByQuery)); err != nil {
		return fmt.Errorf("session: element %q not visible: %w", sel, err)
	}
	return nil
}

// WaitOptional reports whether the selector became visible within the
// shorter optional wait budget. Absence is a normal outcome.
func (s *Session) WaitOptional(sel string) bool {
	ctx, cancel := context.WithTimeout(s.ctx, s.optionalTimeout)
	defer cancel()

	return chromedp.Run(ctx, chromedp.WaitVisible(sel, chromedp.ByQuery)) == nil
}

// Click clicks the first element matching the selector.
func (s *Session) Click(sel string) error {
	if err := chromedp.Run(s.ctx, chromedp.Click(sel, chromedp.ByQuery)); err != nil {
		return fmt.Errorf("session: click %q: %w", sel, err)
	}
	return nil
}

// Document snapshots the rendered page and returns it parsed for querying.
func (s *Session) Document() (*goquery.Document, error) {
	var html string
	if err := chromedp.Run(s.ctx, chromedp.OuterHTML("html", &html, chromedp.ByQuery)); err != nil {
		return nil, fmt.Errorf("session: capture page: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("session: parse page: %w", err)
	}
	return doc, nil
}

// findChromeBinary locates the Chrome/Chromium binary, preferring an explicit
// override.
func findChromeBinary(override string) string {
	if override != "" {
		return override
	}

	names := []string{"google-chrome-stable", "google-chrome", "chromium", "chromium-browser"}
	for _, name := range names {
		if path, err := exec.LookPath(name); err == nil {
			return path
		}
	}

	paths := []string{
		"/usr/bin/google-chrome-stable",
		"/usr/bin/google-chrome",
		"/usr/bin/chromium-browser",
		"/usr/bin/chromium",
		"/snap/bin/chromium",
		"/opt/google/chrome/google-chrome",
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	return ""
}
