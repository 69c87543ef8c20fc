package store

import (
	"context"

	"github.com/artarona/WORK-PAGINAWEB-IA/models"
)

// ErrorClassificator decides whether a failed database operation is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// PropertyRepository is the read-mostly catalog of listings backed by the
// embedded SQLite database.
type PropertyRepository interface {
	// Reseed drops and recreates the catalog table, then loads it from
	// the configured listings JSON file. Called once at startup.
	Reseed(ctx context.Context) error

	// Search returns the listings matching the filter, cheapest first.
	// An empty filter returns the whole catalog.
	Search(ctx context.Context, filter models.SearchFilter) ([]models.Property, error)

	// FilterOptions returns the distinct neighborhoods and types present
	// in the catalog together with the total listing count.
	FilterOptions(ctx context.Context) (models.FilterOptions, error)

	// Stats aggregates the catalog by operation, type and neighborhood.
	Stats(ctx context.Context) (models.CatalogStats, error)
}

// ContactRepository persists leads captured by the web contact form in
// PostgreSQL.
type ContactRepository interface {
	// Save upserts a contact keyed by its Timestamp and returns the
	// stored row.
	Save(ctx context.Context, contact models.Contact) (models.Contact, error)

	// All returns every stored contact, newest first.
	All(ctx context.Context) ([]models.Contact, error)

	// ByTimestamp returns one contact or ErrContactNotFound.
	ByTimestamp(ctx context.Context, timestamp string) (models.Contact, error)

	// Update patches the mutable fields of an existing contact.
	Update(ctx context.Context, contact models.Contact) (models.Contact, error)

	// Delete removes one contact or returns ErrContactNotFound.
	Delete(ctx context.Context, timestamp string) error

	// Clear removes every contact and returns how many were deleted.
	Clear(ctx context.Context) (int, error)

	// Count returns the number of stored contacts.
	Count(ctx context.Context) (int, error)

	// Stats aggregates contacts by status and day and lists the most
	// recent ones.
	Stats(ctx context.Context) (models.ContactStats, error)
}

// ConversationRepository keeps the chat exchange log used to give the
// assistant short-term memory per channel.
type ConversationRepository interface {
	// Log appends one exchange to the conversation log.
	Log(ctx context.Context, entry models.ConversationEntry) error

	// History returns the last exchanges for a channel, formatted as
	// alternating "Usuario: ..." / "Bot: ..." lines, oldest pair first.
	History(ctx context.Context, channel string, limit int) ([]string, error)
}
