package main

import (
	"flag"
	"log/slog"
	"os"

	"medharvest/internal/ai"
	"medharvest/internal/cache"
	"medharvest/internal/config"
	"medharvest/internal/model"
	"medharvest/internal/observability"
	"medharvest/internal/scraper"
	"medharvest/internal/store"
)

// go run cmd/scraper/main.go -start=1 -end=3
func main() {
	start := flag.Int("start", 1, "first listing page to harvest")
	end := flag.Int("end", 1, "last listing page to harvest (inclusive)")
	flag.Parse()

	cfg := config.Load()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))

	if cfg.OpenAIKey == "" {
		logger.Error("OPENAI_API_KEY is required")
		os.Exit(1)
	}
	if *start > *end {
		logger.Error("invalid page range", "start", *start, "end", *end)
		os.Exit(1)
	}

	observability.Start(cfg.MetricsPort)

	raw := store.New[model.Medicine](cfg.RawDataFile, logger)
	processed := store.New[model.EnrichedMedicine](cfg.ProcessedDataFile, logger)

	var visited *cache.VisitedSet
	if cfg.RedisURL != "" {
		v, err := cache.NewVisitedSet(cfg.RedisURL, logger)
		if err != nil {
			logger.Warn("visited cache disabled", "error", err)
		} else {
			visited = v
		}
	}

	processor := ai.NewProcessor(cfg, logger)
	s := scraper.New(cfg, raw, processed, processor, visited, logger)

	rawBefore, processedBefore := raw.Count(), processed.Count()
	logger.Info("starting harvest", "start", *start, "end", *end, "raw", rawBefore, "processed", processedBefore)

	s.Scrape(*start, *end)

	rawAfter, processedAfter := raw.Count(), processed.Count()
	logger.Info("harvest finished",
		"raw", rawAfter,
		"processed", processedAfter,
		"new_raw", rawAfter-rawBefore,
		"new_processed", processedAfter-processedBefore,
	)
}
