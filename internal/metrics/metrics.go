package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// CatalogFilters counts catalog filter evaluations by selected category.
	CatalogFilters = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_filter_requests_total",
		Help: "The total number of catalog filter evaluations",
	}, []string{"category"})

	// CatalogEmptyResults counts filter evaluations that matched nothing.
	CatalogEmptyResults = promauto.NewCounter(prometheus.CounterOpts{
		Name: "catalog_filter_empty_results_total",
		Help: "The total number of catalog filter evaluations with no matching products",
	})

	// CatalogCacheHits counts filter results served from the cache.
	CatalogCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "catalog_filter_cache_hits_total",
		Help: "The total number of catalog filter results served from cache",
	})

	// ContactInquiries counts contact form submissions by outcome.
	ContactInquiries = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "contact_inquiries_total",
		Help: "The total number of contact form submissions",
	}, []string{"outcome"})

	// PageViews counts rendered HTML pages.
	PageViews = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "page_views_total",
		Help: "The total number of rendered pages",
	}, []string{"page"})

	// RequestDuration observes HTTP handling latency.
	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency by route and status",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route", "status"})
)
