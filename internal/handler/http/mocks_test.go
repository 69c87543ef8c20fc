package http

import (
	"context"

	"github.com/artarona/WORK-PAGINAWEB-IA/internal/logger"
	"github.com/artarona/WORK-PAGINAWEB-IA/internal/service"
	"github.com/artarona/WORK-PAGINAWEB-IA/models"
)

// newTestHandler builds a Handler over function-field service mocks. Any
// field left nil uses the mock's zero behaviour.
func newTestHandler(services *service.Services) *Handler {
	if services.Metrics == nil {
		services.Metrics = service.NewMetrics()
	}
	return NewHandler(services, testServerConfig(), logger.Nop())
}

// ─────────────────────────────────────────────
// Mock: service.ChatService
// ─────────────────────────────────────────────

type mockChatService struct {
	chatFn func(ctx context.Context, req models.ChatRequest) (models.ChatResponse, error)
}

func (m *mockChatService) Chat(ctx context.Context, req models.ChatRequest) (models.ChatResponse, error) {
	if m.chatFn != nil {
		return m.chatFn(ctx, req)
	}
	return models.ChatResponse{Response: "ok", Properties: []models.Property{}}, nil
}

// ─────────────────────────────────────────────
// Mock: service.PropertyService
// ─────────────────────────────────────────────

type mockPropertyService struct {
	searchFn        func(ctx context.Context, filter models.SearchFilter) (models.PropertyList, error)
	filterOptionsFn func(ctx context.Context) (models.FilterOptions, error)
	statsFn         func(ctx context.Context) (models.CatalogStats, error)
	refreshFn       func(ctx context.Context) error
}

func (m *mockPropertyService) Search(ctx context.Context, filter models.SearchFilter) (models.PropertyList, error) {
	if m.searchFn != nil {
		return m.searchFn(ctx, filter)
	}
	return models.PropertyList{Properties: []models.Property{}}, nil
}

func (m *mockPropertyService) FilterOptions(ctx context.Context) (models.FilterOptions, error) {
	if m.filterOptionsFn != nil {
		return m.filterOptionsFn(ctx)
	}
	return models.FilterOptions{}, nil
}

func (m *mockPropertyService) Stats(ctx context.Context) (models.CatalogStats, error) {
	if m.statsFn != nil {
		return m.statsFn(ctx)
	}
	return models.CatalogStats{}, nil
}

func (m *mockPropertyService) RefreshFilterOptions(ctx context.Context) error {
	if m.refreshFn != nil {
		return m.refreshFn(ctx)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: service.ContactService
// ─────────────────────────────────────────────

type mockContactService struct {
	saveFn        func(ctx context.Context, contact models.Contact) (models.Contact, error)
	allFn         func(ctx context.Context) ([]models.Contact, error)
	byTimestampFn func(ctx context.Context, timestamp string) (models.Contact, error)
	updateFn      func(ctx context.Context, contact models.Contact) (models.Contact, error)
	deleteFn      func(ctx context.Context, timestamp string) error
	clearFn       func(ctx context.Context) (int, error)
	statsFn       func(ctx context.Context) (models.ContactStats, error)
	exportFn      func(ctx context.Context) ([]byte, error)
}

func (m *mockContactService) Save(ctx context.Context, contact models.Contact) (models.Contact, error) {
	if m.saveFn != nil {
		return m.saveFn(ctx, contact)
	}
	return contact, nil
}

func (m *mockContactService) All(ctx context.Context) ([]models.Contact, error) {
	if m.allFn != nil {
		return m.allFn(ctx)
	}
	return nil, nil
}

func (m *mockContactService) ByTimestamp(ctx context.Context, timestamp string) (models.Contact, error) {
	if m.byTimestampFn != nil {
		return m.byTimestampFn(ctx, timestamp)
	}
	return models.Contact{}, nil
}

func (m *mockContactService) Update(ctx context.Context, contact models.Contact) (models.Contact, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, contact)
	}
	return contact, nil
}

func (m *mockContactService) Delete(ctx context.Context, timestamp string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, timestamp)
	}
	return nil
}

func (m *mockContactService) Clear(ctx context.Context) (int, error) {
	if m.clearFn != nil {
		return m.clearFn(ctx)
	}
	return 0, nil
}

func (m *mockContactService) Stats(ctx context.Context) (models.ContactStats, error) {
	if m.statsFn != nil {
		return m.statsFn(ctx)
	}
	return models.ContactStats{}, nil
}

func (m *mockContactService) ExportXLSX(ctx context.Context) ([]byte, error) {
	if m.exportFn != nil {
		return m.exportFn(ctx)
	}
	return nil, nil
}

// ─────────────────────────────────────────────
// Mock: service.AuthService
// ─────────────────────────────────────────────

type mockAuthService struct {
	enabled      bool
	adminLoginFn func(ctx context.Context, token string) (models.Token, error)
	parseTokenFn func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) Enabled() bool {
	return m.enabled
}

func (m *mockAuthService) AdminLogin(ctx context.Context, token string) (models.Token, error) {
	if m.adminLoginFn != nil {
		return m.adminLoginFn(ctx, token)
	}
	return models.Token{}, nil
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if m.parseTokenFn != nil {
		return m.parseTokenFn(ctx, tokenString)
	}
	return models.Token{}, nil
}

// ─────────────────────────────────────────────
// Mock: service.StatusService
// ─────────────────────────────────────────────

type mockStatusService struct {
	statusFn func(ctx context.Context) models.StatusResponse
	healthFn func(ctx context.Context) (models.HealthResponse, error)
}

func (m *mockStatusService) Status(ctx context.Context) models.StatusResponse {
	if m.statusFn != nil {
		return m.statusFn(ctx)
	}
	return models.StatusResponse{Status: "activo"}
}

func (m *mockStatusService) Health(ctx context.Context) (models.HealthResponse, error) {
	if m.healthFn != nil {
		return m.healthFn(ctx)
	}
	return models.HealthResponse{Status: "healthy"}, nil
}
