package usecase

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/tebramedicals/medtech-site/internal/domain"
	"github.com/tebramedicals/medtech-site/internal/metrics"
	"go.uber.org/zap"
)

// maxCachedQueryLen is the longest search text whose result is memoized.
// Longer queries are rare and cheap to recompute over a handful of records.
const maxCachedQueryLen = 64

// CatalogServiceConfig holds configuration for the catalog service
type CatalogServiceConfig struct {
	CacheTTL time.Duration
}

// CatalogService answers product listing and filtering requests.
type CatalogService struct {
	registry domain.ProductRegistry
	cache    domain.CacheRepository
	cacheTTL time.Duration
	logger   *zap.Logger
}

// NewCatalogService creates a catalog service over registry. cache may be nil.
func NewCatalogService(
	registry domain.ProductRegistry,
	cache domain.CacheRepository,
	logger *zap.Logger,
	config CatalogServiceConfig,
) *CatalogService {
	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = 10 * time.Minute
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &CatalogService{
		registry: registry,
		cache:    cache,
		cacheTTL: cacheTTL,
		logger:   logger,
	}
}

// Filter returns the products visible for state.
// Results are memoized; a failing cache only costs a recomputation.
func (s *CatalogService) Filter(ctx context.Context, state domain.FilterState) []domain.ProductRecord {
	metrics.CatalogFilters.WithLabelValues(metricCategory(state.SelectedCategory, s.registry.CategoryLabels())).Inc()

	cacheable := s.cache != nil && len(state.SearchQuery) <= maxCachedQueryLen
	key := filterCacheKey(state)
	if cacheable {
		if cached, ok := s.getFromCache(ctx, key); ok {
			metrics.CatalogCacheHits.Inc()
			return cached
		}
	}

	result := FilterProducts(s.registry.All(), state.SearchQuery, state.SelectedCategory)
	if len(result) == 0 {
		metrics.CatalogEmptyResults.Inc()
		s.logger.Debug("catalog filter matched nothing",
			zap.String("query", state.SearchQuery),
			zap.String("category", state.SelectedCategory),
		)
	}

	if cacheable {
		if err := s.cache.Set(ctx, key, domain.CloneProducts(result), s.cacheTTL); err != nil {
			s.logger.Warn("catalog cache set failed", zap.String("key", key), zap.Error(err))
		}
	}

	return result
}

// Product returns the record with the given id.
func (s *CatalogService) Product(ctx context.Context, id int) (domain.ProductRecord, error) {
	p, ok := s.registry.ByID(id)
	if !ok {
		return domain.ProductRecord{}, fmt.Errorf("%w: id %d", domain.ErrProductNotFound, id)
	}
	return p, nil
}

// Categories compares the selector labels with the categories in the registry.
func (s *CatalogService) Categories() domain.CategoryReport {
	labels := s.registry.CategoryLabels()

	var data []string
	for _, p := range s.registry.All() {
		if !slices.Contains(data, p.Category) {
			data = append(data, p.Category)
		}
	}

	report := domain.CategoryReport{
		Labels:                labels,
		DataCategories:        nonNil(data),
		UnmatchedLabels:       []string{},
		UnreachableCategories: []string{},
	}
	for _, l := range labels {
		if l != domain.AllCategories && !slices.Contains(data, l) {
			report.UnmatchedLabels = append(report.UnmatchedLabels, l)
		}
	}
	for _, c := range data {
		if !slices.Contains(labels, c) {
			report.UnreachableCategories = append(report.UnreachableCategories, c)
		}
	}
	return report
}

// filterCacheKey normalizes the query case, which the filter ignores anyway.
// Both parts are quoted so a ':' in either cannot produce a colliding key.
func filterCacheKey(state domain.FilterState) string {
	return fmt.Sprintf("catalog:%q:%q", state.SelectedCategory, strings.ToLower(state.SearchQuery))
}

func (s *CatalogService) getFromCache(ctx context.Context, key string) ([]domain.ProductRecord, bool) {
	value, err := s.cache.Get(ctx, key)
	if err != nil {
		return nil, false
	}

	products, ok := value.([]domain.ProductRecord)
	if !ok {
		return nil, false
	}
	return domain.CloneProducts(products), true
}

// metricCategory bounds label cardinality: free-form categories share one label.
func metricCategory(category string, labels []string) string {
	if slices.Contains(labels, category) {
		return category
	}
	return "other"
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
