package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	PagesFetched = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "medharvest_pages_fetched_total",
			Help: "Listing pages fetched",
		},
	)
	FetchFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "medharvest_fetch_failures_total",
			Help: "HTTP fetches that failed at any scope",
		},
	)
	MedicinesScraped = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "medharvest_medicines_scraped_total",
			Help: "Medicines newly added to the raw store",
		},
	)
	DuplicatesSkipped = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "medharvest_duplicates_skipped_total",
			Help: "Medicines skipped because the dedup key already existed",
		},
	)
	EnrichmentCalls = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "medharvest_enrichment_calls_total",
			Help: "AI annotation queries issued",
		},
	)
	EnrichmentFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "medharvest_enrichment_failures_total",
			Help: "AI annotation queries that errored or returned malformed output",
		},
	)
)

func Start(port string) {
	prometheus.MustRegister(
		PagesFetched,
		FetchFailures,
		MedicinesScraped,
		DuplicatesSkipped,
		EnrichmentCalls,
		EnrichmentFailures,
	)
	http.Handle("/metrics", promhttp.Handler())
	go http.ListenAndServe(":"+port, nil)
}
