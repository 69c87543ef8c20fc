package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artarona/WORK-PAGINAWEB-IA/internal/logger"
	"github.com/artarona/WORK-PAGINAWEB-IA/models"
)

func TestPropertySearch_WrapsResults(t *testing.T) {
	properties := &mockPropertyRepository{
		searchFn: func(ctx context.Context, filter models.SearchFilter) ([]models.Property, error) {
			return []models.Property{
				{ID: "prop_001", Neighborhood: "Palermo"},
				{ID: "prop_002", Neighborhood: "Palermo"},
			}, nil
		},
	}
	svc := NewPropertyService(properties, logger.Nop())

	filter := models.SearchFilter{Neighborhood: "Palermo"}
	list, err := svc.Search(context.Background(), filter)
	require.NoError(t, err)

	assert.Equal(t, 2, list.Total)
	assert.Len(t, list.Properties, 2)
	require.NotNil(t, list.Filters)
	assert.Equal(t, "Palermo", list.Filters.Neighborhood)
}

func TestPropertySearch_EmptyFilterOmitsEcho(t *testing.T) {
	svc := NewPropertyService(&mockPropertyRepository{}, logger.Nop())

	list, err := svc.Search(context.Background(), models.SearchFilter{})
	require.NoError(t, err)

	assert.Equal(t, 0, list.Total)
	assert.Nil(t, list.Filters)
}

func TestPropertySearch_Error(t *testing.T) {
	wantErr := errors.New("catalog gone")
	properties := &mockPropertyRepository{
		searchFn: func(ctx context.Context, filter models.SearchFilter) ([]models.Property, error) {
			return nil, wantErr
		},
	}
	svc := NewPropertyService(properties, logger.Nop())

	_, err := svc.Search(context.Background(), models.SearchFilter{Type: "casa"})
	assert.ErrorIs(t, err, wantErr)
}

func TestFilterOptions_CachesWithinTTL(t *testing.T) {
	properties := &mockPropertyRepository{
		filterOptionsFn: func(ctx context.Context) (models.FilterOptions, error) {
			return models.FilterOptions{Neighborhoods: []string{"Palermo"}, Types: []string{"departamento"}, Total: 12}, nil
		},
	}
	svc := NewPropertyService(properties, logger.Nop())

	first, err := svc.FilterOptions(context.Background())
	require.NoError(t, err)
	second, err := svc.FilterOptions(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, properties.filterOptionsCalls, "second call must come from the cache")
}

func TestFilterOptions_RefreshesExpiredCache(t *testing.T) {
	properties := &mockPropertyRepository{}
	svc := &propertyService{properties: properties, logger: logger.Nop()}

	_, err := svc.FilterOptions(context.Background())
	require.NoError(t, err)

	svc.mu.Lock()
	svc.cachedAt = time.Now().Add(-filterOptionsTTL - time.Second)
	svc.mu.Unlock()

	_, err = svc.FilterOptions(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, properties.filterOptionsCalls)
}

func TestRefreshFilterOptions_UpdatesCache(t *testing.T) {
	options := models.FilterOptions{Neighborhoods: []string{"Belgrano"}, Total: 3}
	properties := &mockPropertyRepository{
		filterOptionsFn: func(ctx context.Context) (models.FilterOptions, error) {
			return options, nil
		},
	}
	svc := &propertyService{properties: properties, logger: logger.Nop()}

	require.NoError(t, svc.RefreshFilterOptions(context.Background()))

	got, err := svc.FilterOptions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, options, got)
	assert.Equal(t, 1, properties.filterOptionsCalls, "a fresh refresh must satisfy the next read")
}

func TestRefreshFilterOptions_Error(t *testing.T) {
	wantErr := errors.New("catalog gone")
	properties := &mockPropertyRepository{
		filterOptionsFn: func(ctx context.Context) (models.FilterOptions, error) {
			return models.FilterOptions{}, wantErr
		},
	}
	svc := NewPropertyService(properties, logger.Nop())

	assert.ErrorIs(t, svc.RefreshFilterOptions(context.Background()), wantErr)

	_, err := svc.FilterOptions(context.Background())
	assert.ErrorIs(t, err, wantErr, "a failed refresh must not leave a cached snapshot behind")
}

func TestCatalogStats_Passthrough(t *testing.T) {
	properties := &mockPropertyRepository{
		statsFn: func(ctx context.Context) (models.CatalogStats, error) {
			return models.CatalogStats{Total: 42}, nil
		},
	}
	svc := NewPropertyService(properties, logger.Nop())

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 42, stats.Total)
}
