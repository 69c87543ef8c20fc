package service

import (
	"context"
	"sync"
	"time"

	"github.com/artarona/WORK-PAGINAWEB-IA/internal/logger"
	"github.com/artarona/WORK-PAGINAWEB-IA/internal/store"
	"github.com/artarona/WORK-PAGINAWEB-IA/models"
)

// filterOptionsTTL is how long a cached filter-options snapshot stays fresh
// between worker refreshes.
const filterOptionsTTL = 5 * time.Minute

// propertyService is the concrete implementation of [PropertyService]. It
// passes searches and stats through to the catalog and keeps a short-lived
// cache of the filter options, which every page load requests.
type propertyService struct {
	properties store.PropertyRepository
	logger     *logger.Logger

	mu        sync.RWMutex
	cached    models.FilterOptions
	cachedAt  time.Time
	hasCached bool
}

// NewPropertyService constructs a [PropertyService] over the catalog.
func NewPropertyService(properties store.PropertyRepository, logger *logger.Logger) PropertyService {
	return &propertyService{
		properties: properties,
		logger:     logger,
	}
}

// Search implements [PropertyService].
func (s *propertyService) Search(ctx context.Context, filter models.SearchFilter) (models.PropertyList, error) {
	results, err := s.properties.Search(ctx, filter)
	if err != nil {
		return models.PropertyList{}, err
	}

	list := models.PropertyList{
		Total:      len(results),
		Properties: results,
	}
	if !filter.IsEmpty() {
		list.Filters = &filter
	}

	return list, nil
}

// FilterOptions implements [PropertyService]. A fresh cached snapshot is
// served without touching the catalog.
func (s *propertyService) FilterOptions(ctx context.Context) (models.FilterOptions, error) {
	s.mu.RLock()
	if s.hasCached && time.Since(s.cachedAt) < filterOptionsTTL {
		options := s.cached
		s.mu.RUnlock()
		return options, nil
	}
	s.mu.RUnlock()

	if err := s.RefreshFilterOptions(ctx); err != nil {
		return models.FilterOptions{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cached, nil
}

// RefreshFilterOptions implements [PropertyService].
func (s *propertyService) RefreshFilterOptions(ctx context.Context) error {
	log := logger.FromContext(ctx)

	options, err := s.properties.FilterOptions(ctx)
	if err != nil {
		log.Err(err).Str("func", "*propertyService.RefreshFilterOptions").Msg("filter options reload failed")
		return err
	}

	s.mu.Lock()
	s.cached = options
	s.cachedAt = time.Now()
	s.hasCached = true
	s.mu.Unlock()

	log.Debug().Str("func", "*propertyService.RefreshFilterOptions").
		Int("neighborhoods", len(options.Neighborhoods)).
		Int("types", len(options.Types)).
		Int("total", options.Total).
		Msg("filter options refreshed")

	return nil
}

// Stats implements [PropertyService].
func (s *propertyService) Stats(ctx context.Context) (models.CatalogStats, error) {
	return s.properties.Stats(ctx)
}
