package scraper

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"medharvest/internal/cache"
	"medharvest/internal/config"
	"medharvest/internal/model"
	"medharvest/internal/observability"
	"medharvest/internal/store"
)

// Enricher produces AI annotations for a newly observed medicine. It never
// fails; degraded annotations come back empty.
type Enricher interface {
	Process(model.Medicine) model.EnrichedMedicine
}

// Scraper walks listing page -> generic link -> product link, extracts each
// product, persists it with dedup and enriches whatever is newly observed.
// Strictly sequential: pages ascend, links run in document order.
type Scraper struct {
	baseURL   string
	fetcher   *Fetcher
	limiter   *Limiter
	raw       *store.Collection[model.Medicine]
	processed *store.Collection[model.EnrichedMedicine]
	enricher  Enricher
	visited   *cache.VisitedSet // optional, may be nil
	log       *slog.Logger
}

func New(
	cfg *config.Config,
	raw *store.Collection[model.Medicine],
	processed *store.Collection[model.EnrichedMedicine],
	enricher Enricher,
	visited *cache.VisitedSet,
	log *slog.Logger,
) *Scraper {
	return &Scraper{
		baseURL:   cfg.BaseURL,
		fetcher:   NewFetcher(),
		limiter:   NewLimiter(cfg.PageDelay, cfg.ProductDelay),
		raw:       raw,
		processed: processed,
		enricher:  enricher,
		visited:   visited,
		log:       log,
	}
}

// Scrape walks listing pages start through end inclusive. Failures at any
// scope are logged and skipped; nothing inside the range aborts the batch.
func (s *Scraper) Scrape(start, end int) {
	for page := start; page <= end; page++ {
		if err := s.scrapePage(page); err != nil {
			s.log.Error("listing page failed", "page", page, "error", err)
		}
		s.limiter.Page()
	}
}

func (s *Scraper) scrapePage(page int) error {
	pageURL := fmt.Sprintf("%s%d", s.baseURL, page)
	html, err := s.fetcher.Fetch(pageURL)
	if err != nil {
		observability.FetchFailures.Inc()
		return err
	}
	observability.PagesFetched.Inc()

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return err
	}

	links := extractLinks(doc, "a.hoverable-block.darker")
	s.log.Debug("listing page parsed", "page", page, "generics", len(links))

	for _, link := range links {
		if err := s.scrapeGeneric(link); err != nil {
			s.log.Error("generic page failed", "url", link, "error", err)
		}
	}
	return nil
}

func (s *Scraper) scrapeGeneric(genericURL string) error {
	html, err := s.fetcher.Fetch(genericURL)
	if err != nil {
		observability.FetchFailures.Inc()
		return err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return err
	}

	links := extractLinks(doc, "a.hoverable-block")
	s.log.Debug("generic page parsed", "url", genericURL, "products", len(links))

	for _, link := range links {
		if err := s.scrapeProduct(link); err != nil {
			observability.FetchFailures.Inc()
			s.log.Error("product failed", "url", link, "error", err)
		}
		s.limiter.Product()
	}
	return nil
}

func (s *Scraper) scrapeProduct(productURL string) error {
	ctx := context.Background()
	if s.visited != nil && s.visited.Seen(ctx, productURL) {
		s.log.Debug("product already visited, skipping fetch", "url", productURL)
		return nil
	}

	html, err := s.fetcher.Fetch(productURL)
	if err != nil {
		return err
	}

	med, err := ParseMedicine(html, productURL)
	if err != nil {
		return err
	}

	added, err := s.raw.Save(med)
	if err != nil {
		return err
	}
	if !added {
		observability.DuplicatesSkipped.Inc()
		s.log.Debug("duplicate medicine skipped", "product", med.ProductName)
		return nil
	}
	observability.MedicinesScraped.Inc()
	s.log.Info("medicine scraped", "product", med.ProductName, "generic", med.GenericName)

	enriched := s.enricher.Process(med)
	if _, err := s.processed.Save(enriched); err != nil {
		return err
	}

	if s.visited != nil {
		s.visited.Mark(ctx, productURL)
	}
	return nil
}

func extractLinks(doc *goquery.Document, selector string) []string {
	var links []string
	doc.Find(selector).Each(func(_ int, sel *goquery.Selection) {
		if href, ok := sel.Attr("href"); ok {
			links = append(links, href)
		}
	})
	return links
}
