package boataround

import (
	"fmt"
	"net/url"

	"github.com/PuerkitoBio/goquery"

	"boataround-scraper/config"
	"boataround-scraper/models"
	"boataround-scraper/services"
	"boataround-scraper/utils"
)

// pageSession is the browser surface the crawl drives. *Session implements
// it; tests substitute a fake over static documents.
type pageSession interface {
	Navigate(url string) error
	WaitVisible(sel string) error
	WaitOptional(sel string) bool
	Click(sel string) error
	Document() (*goquery.Document, error)
}

// Scraper drives the crawl: it walks the paginated search results, then
// visits every discovered detail page in order, one at a time.
type Scraper struct {
	cfg    *config.Config
	logger *utils.Logger

	features services.Dictionary
	extras   services.Dictionary
}

// New creates a ready-to-use boataround Scraper.
func New(cfg *config.Config, logger *utils.Logger) *Scraper {
	return &Scraper{
		cfg:      cfg,
		logger:   logger,
		features: services.FeatureFields(),
		extras:   services.ExtraFields(),
	}
}

// Scrape runs the whole crawl and returns the raw boats in discovery order.
// Any failure beyond the per-field sentinels aborts the run.
func (s *Scraper) Scrape() ([]*models.RawBoat, error) {
	session, err := NewSession(s.cfg, s.logger)
	if err != nil {
		return nil, err
	}
	defer session.Close()

	query := NewQuery(s.cfg)

	links, err := s.collectLinks(session, query)
	if err != nil {
		return nil, fmt.Errorf("collect listing links: %w", err)
	}
	s.logger.Info("[boataround] Discovered %d listings", len(links))

	boats := make([]*models.RawBoat, 0, len(links))
	for i, link := range links {
		boat, err := s.scrapeDetail(session, link)
		if err != nil {
			return nil, fmt.Errorf("boat %d/%d: %w", i+1, len(links), err)
		}
		s.logger.Info("[boataround] (%d/%d) %s", i+1, len(links), boat.Name)
		boats = append(boats, boat)
	}

	s.logger.Info("[boataround] Scrape complete — %d boats", len(boats))
	return boats, nil
}

// collectLinks walks the paginated search results and gathers every listing
// link, preserving page order and in-page order.
func (s *Scraper) collectLinks(session pageSession, query Query) ([]string, error) {
	base, err := url.Parse(s.cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("base url %q: %w", s.cfg.BaseURL, err)
	}

	if err := session.Navigate(query.SearchURL(s.cfg.BaseURL, 1)); err != nil {
		return nil, err
	}

	// A newsletter overlay covers the first results page until dismissed.
	if err := session.WaitVisible(subscribeCloseSelector); err != nil {
		return nil, err
	}
	if err := session.Click(subscribeCloseSelector); err != nil {
		return nil, err
	}

	doc, err := session.Document()
	if err != nil {
		return nil, err
	}

	pages := PageCount(doc)
	s.logger.Info("[boataround] Declared page count: %d", pages)
	if pages < 1 {
		// No paginator: everything fits on the already-loaded page.
		return ListingLinks(doc, base), nil
	}

	var links []string
	for page := 1; page <= pages; page++ {
		if page > 1 {
			if err := session.Navigate(query.SearchURL(s.cfg.BaseURL, page)); err != nil {
				return nil, err
			}
		}
		if err := session.WaitVisible(resultLinkSelector); err != nil {
			return nil, err
		}
		doc, err := session.Document()
		if err != nil {
			return nil, err
		}

		pageLinks := ListingLinks(doc, base)
		s.logger.Debug("[boataround] Page %d — %d listings", page, len(pageLinks))
		links = append(links, pageLinks...)
	}

	return links, nil
}

// scrapeDetail loads one detail page, waits for its mandatory sections, and
// extracts the raw boat.
func (s *Scraper) scrapeDetail(session pageSession, link string) (*models.RawBoat, error) {
	if err := session.Navigate(link); err != nil {
		return nil, err
	}

	for _, sel := range []string{
		nameSelector,
		marinaSelector,
		charterSelector,
		policyRowSelector,
		infoRowSelector,
		extrasRowSelector,
	} {
		if err := session.WaitVisible(sel); err != nil {
			return nil, err
		}
	}

	// Rating and excluded charges are legitimately absent on some boats.
	if !session.WaitOptional(ratingSelector) {
		s.logger.Debug("[boataround] No rating on %s", link)
	}
	if !session.WaitOptional(excludedRowSelector) {
		s.logger.Debug("[boataround] No excluded charges on %s", link)
	}

	doc, err := session.Document()
	if err != nil {
		return nil, err
	}

	return ExtractBoat(doc, link, s.features, s.extras)
}
