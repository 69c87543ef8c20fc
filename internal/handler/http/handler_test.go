package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artarona/WORK-PAGINAWEB-IA/internal/config"
	"github.com/artarona/WORK-PAGINAWEB-IA/internal/logger"
	"github.com/artarona/WORK-PAGINAWEB-IA/internal/service"
)

func testServerConfig() config.Server {
	return config.Server{
		HTTPAddress:    "0.0.0.0:10000",
		RequestTimeout: 5 * time.Second,
		AllowedOrigins: []string{"https://dantepropiedades.com.ar"},
	}
}

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler_ReturnsNonNil(t *testing.T) {
	h := NewHandler(&service.Services{}, testServerConfig(), logger.Nop())

	require.NotNil(t, h)
}

func TestNewHandler_StoresServices(t *testing.T) {
	svc := &service.Services{}
	h := NewHandler(svc, testServerConfig(), logger.Nop())

	assert.Equal(t, svc, h.services)
}

// ─────────────────────────────────────────────
// Init — route registration
// ─────────────────────────────────────────────

func newRoutedTestHandler() *Handler {
	return newTestHandler(&service.Services{
		Chat:       &mockChatService{},
		Properties: &mockPropertyService{},
		Contacts:   &mockContactService{},
		Auth:       &mockAuthService{enabled: true},
		Status:     &mockStatusService{},
	})
}

func TestInit_ReturnsRouter(t *testing.T) {
	router := newRoutedTestHandler().Init()

	require.NotNil(t, router)
}

// routeCase describes a single expected route.
type routeCase struct {
	method string
	path   string
}

// expectedRoutes lists every route that Init() must register.
var expectedRoutes = []routeCase{
	{http.MethodPost, "/api/chat"},
	{http.MethodGet, "/api/properties"},
	{http.MethodGet, "/api/properties/search"},
	{http.MethodGet, "/api/properties/filter-options"},
	{http.MethodGet, "/api/properties/stats"},
	{http.MethodPost, "/api/guardar_contacto"},
	{http.MethodGet, "/api/status"},
	{http.MethodGet, "/health"},
	{http.MethodPost, "/api/admin/login"},
	// admin routes answer 401 without a token, which still proves they exist
	{http.MethodGet, "/api/admin/contacts"},
	{http.MethodPost, "/api/admin/contacts"},
	{http.MethodDelete, "/api/admin/contacts"},
	{http.MethodGet, "/api/admin/contacts/stats"},
	{http.MethodGet, "/api/admin/contacts/export"},
	{http.MethodGet, "/api/admin/contacts/1700000000000"},
	{http.MethodPut, "/api/admin/contacts/1700000000000"},
	{http.MethodDelete, "/api/admin/contacts/1700000000000"},
}

func TestInit_RegistersAllRoutes(t *testing.T) {
	router := newRoutedTestHandler().Init()

	for _, tc := range expectedRoutes {
		tc := tc
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.NotEqual(t, http.StatusNotFound, rec.Code,
				"route not found: %s %s", tc.method, tc.path)
			assert.NotEqual(t, http.StatusMethodNotAllowed, rec.Code,
				"method not allowed: %s %s", tc.method, tc.path)
		})
	}
}

func TestInit_UnknownRouteReturns404(t *testing.T) {
	router := newRoutedTestHandler().Init()

	req := httptest.NewRequest(http.MethodGet, "/api/nonexistent", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInit_WrongMethodHidesRoute(t *testing.T) {
	router := newRoutedTestHandler().Init()

	// only GET is registered for /api/status
	req := httptest.NewRequest(http.MethodDelete, "/api/status", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInit_AdminRoutesRequireToken(t *testing.T) {
	router := newRoutedTestHandler().Init()

	req := httptest.NewRequest(http.MethodGet, "/api/admin/contacts", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
