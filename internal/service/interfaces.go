package service

import (
	"context"

	"github.com/artarona/WORK-PAGINAWEB-IA/models"
)

// ChatService orchestrates one conversational exchange: filter detection,
// catalog search, prompt assembly, assistant call and conversation logging.
type ChatService interface {
	// Chat processes one user message and returns the assistant's reply
	// together with any matched listings. Returns ErrEmptyMessage when the
	// trimmed message is empty.
	Chat(ctx context.Context, req models.ChatRequest) (models.ChatResponse, error)
}

// PropertyService exposes the read side of the listing catalog.
type PropertyService interface {
	// Search returns listings matching the filter, cheapest first.
	Search(ctx context.Context, filter models.SearchFilter) (models.PropertyList, error)

	// FilterOptions returns the distinct filter values of the live catalog.
	// Results are cached; RefreshFilterOptions invalidates the cache.
	FilterOptions(ctx context.Context) (models.FilterOptions, error)

	// Stats aggregates the catalog by operation, type and neighborhood.
	Stats(ctx context.Context) (models.CatalogStats, error)

	// RefreshFilterOptions reloads the cached filter options from the
	// catalog. Called periodically by the background worker.
	RefreshFilterOptions(ctx context.Context) error
}

// ContactService manages captured leads. All methods return
// ErrContactsUnavailable when no contact database is configured.
type ContactService interface {
	Save(ctx context.Context, contact models.Contact) (models.Contact, error)
	All(ctx context.Context) ([]models.Contact, error)
	ByTimestamp(ctx context.Context, timestamp string) (models.Contact, error)
	Update(ctx context.Context, contact models.Contact) (models.Contact, error)
	Delete(ctx context.Context, timestamp string) error
	Clear(ctx context.Context) (int, error)
	Stats(ctx context.Context) (models.ContactStats, error)

	// ExportXLSX renders every stored contact as a spreadsheet and returns
	// the serialized workbook bytes.
	ExportXLSX(ctx context.Context) ([]byte, error)
}

// AuthService issues and validates admin session tokens.
type AuthService interface {
	// Enabled reports whether an admin token is configured; when false the
	// admin surface is switched off entirely.
	Enabled() bool

	// AdminLogin exchanges the shared admin token for a session JWT.
	// Returns ErrWrongAdminToken when the token does not match.
	AdminLogin(ctx context.Context, token string) (models.Token, error)

	// ParseToken validates a session JWT and returns its decoded claims.
	// Any validation failure is normalised to ErrTokenIsExpiredOrInvalid.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// StatusService exposes process metrics and the deployment health probe.
type StatusService interface {
	Status(ctx context.Context) models.StatusResponse
	Health(ctx context.Context) (models.HealthResponse, error)
}
