package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/artarona/WORK-PAGINAWEB-IA/internal/logger"
	"github.com/artarona/WORK-PAGINAWEB-IA/models"
)

// contactRepository is the PostgreSQL-backed implementation of
// [ContactRepository]. It persists leads captured by the web contact form
// against the "contactos" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type contactRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewContactRepository constructs a [ContactRepository] backed by the
// provided database connection and logger.
func NewContactRepository(db *DB, logger *logger.Logger) ContactRepository {
	logger.Debug().Msg("creating contact repository")
	return &contactRepository{
		db:     db,
		logger: logger,
	}
}

// Save upserts a contact keyed by its Timestamp and returns the stored row.
// New contacts default to status "nuevo".
func (r *contactRepository) Save(ctx context.Context, contact models.Contact) (models.Contact, error) {
	log := logger.FromContext(ctx)

	if contact.Status == "" {
		contact.Status = "nuevo"
	}

	row := r.upsert(ctx, contact)
	if err := row.Err(); err != nil {
		// transient failures (connection loss, deadlock) get one more try
		if r.db.errorClassificator != nil && r.db.errorClassificator.Classify(err) == Retryable {
			log.Warn().Str("func", "*contactRepository.Save").Err(err).Msg("transient error upserting contact, retrying once")
			row = r.upsert(ctx, contact)
		}
	}

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*contactRepository.Save").Msg("error: upserting contact")
		return models.Contact{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	saved, err := scanContact(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Contact{}, ErrContactNotSaved
		}
		log.Err(err).Str("func", "*contactRepository.Save").Msg("error: scanning saved contact")
		return models.Contact{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return saved, nil
}

func (r *contactRepository) upsert(ctx context.Context, contact models.Contact) *sql.Row {
	return r.db.QueryRowContext(ctx, saveContact,
		contact.Timestamp, contact.Name, contact.Email, contact.Phone,
		contact.PropertyInterest, contact.Status, contact.Notes,
		contact.IPAddress, contact.UserAgent,
	)
}

// All returns every stored contact, newest first.
func (r *contactRepository) All(ctx context.Context) ([]models.Contact, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, selectAllContacts)
	if err != nil {
		log.Err(err).Str("func", "*contactRepository.All").Msg("error: selecting contacts")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	contacts := make([]models.Contact, 0)
	for rows.Next() {
		contact, err := scanContact(rows)
		if err != nil {
			log.Err(err).Str("func", "*contactRepository.All").Msg("error: scanning contact row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		contacts = append(contacts, contact)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*contactRepository.All").Msg("error: iterating contact rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return contacts, nil
}

// ByTimestamp returns one contact or [ErrContactNotFound].
func (r *contactRepository) ByTimestamp(ctx context.Context, timestamp string) (models.Contact, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, selectContactByTimestamp, timestamp)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*contactRepository.ByTimestamp").Msg("error: selecting contact")
		return models.Contact{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	contact, err := scanContact(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Contact{}, ErrContactNotFound
		}
		log.Err(err).Str("func", "*contactRepository.ByTimestamp").Msg("error: scanning contact")
		return models.Contact{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return contact, nil
}

// Update patches the mutable fields of an existing contact. Returns
// [ErrContactNotFound] when no row carries the given Timestamp.
func (r *contactRepository) Update(ctx context.Context, contact models.Contact) (models.Contact, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, updateContact,
		contact.Timestamp, contact.Name, contact.Email, contact.Phone,
		contact.Status, contact.Notes,
	)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*contactRepository.Update").Msg("error: updating contact")
		return models.Contact{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	updated, err := scanContact(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Contact{}, ErrContactNotFound
		}
		log.Err(err).Str("func", "*contactRepository.Update").Msg("error: scanning updated contact")
		return models.Contact{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return updated, nil
}

// Delete removes one contact or returns [ErrContactNotFound].
func (r *contactRepository) Delete(ctx context.Context, timestamp string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteContact, timestamp)
	if err != nil {
		log.Err(err).Str("func", "*contactRepository.Delete").Msg("error: deleting contact")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*contactRepository.Delete").Msg("error: reading affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrContactNotFound
	}

	return nil
}

// Clear removes every contact and returns how many were deleted.
func (r *contactRepository) Clear(ctx context.Context) (int, error) {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, clearContacts)
	if err != nil {
		log.Err(err).Str("func", "*contactRepository.Clear").Msg("error: clearing contacts")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*contactRepository.Clear").Msg("error: reading affected rows")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return int(affected), nil
}

// Count returns the number of stored contacts.
func (r *contactRepository) Count(ctx context.Context) (int, error) {
	log := logger.FromContext(ctx)

	var count int
	if err := r.db.QueryRowContext(ctx, countContacts).Scan(&count); err != nil {
		log.Err(err).Str("func", "*contactRepository.Count").Msg("error: counting contacts")
		return 0, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return count, nil
}

// Stats aggregates contacts by status and day and lists the ten most recent.
func (r *contactRepository) Stats(ctx context.Context) (models.ContactStats, error) {
	log := logger.FromContext(ctx)

	var stats models.ContactStats

	if err := r.db.QueryRowContext(ctx, countContacts).Scan(&stats.Total); err != nil {
		log.Err(err).Str("func", "*contactRepository.Stats").Msg("error: counting contacts")
		return models.ContactStats{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	byStatus, err := r.selectStatusCounts(ctx)
	if err != nil {
		log.Err(err).Str("func", "*contactRepository.Stats").Msg("error: aggregating by status")
		return models.ContactStats{}, err
	}
	stats.ByStatus = byStatus

	byDay, err := r.selectDayCounts(ctx)
	if err != nil {
		log.Err(err).Str("func", "*contactRepository.Stats").Msg("error: aggregating by day")
		return models.ContactStats{}, err
	}
	stats.ByDay = byDay

	latest, err := r.selectLatest(ctx)
	if err != nil {
		log.Err(err).Str("func", "*contactRepository.Stats").Msg("error: selecting latest contacts")
		return models.ContactStats{}, err
	}
	stats.Latest = latest

	return stats, nil
}

func (r *contactRepository) selectStatusCounts(ctx context.Context) ([]models.StatusCount, error) {
	rows, err := r.db.QueryContext(ctx, selectContactsByStatus)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	counts := make([]models.StatusCount, 0)
	for rows.Next() {
		var c models.StatusCount
		if err := rows.Scan(&c.Status, &c.Count); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		counts = append(counts, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return counts, nil
}

func (r *contactRepository) selectDayCounts(ctx context.Context) ([]models.DayCount, error) {
	rows, err := r.db.QueryContext(ctx, selectContactsByDay)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	counts := make([]models.DayCount, 0)
	for rows.Next() {
		var c models.DayCount
		if err := rows.Scan(&c.Date, &c.Count); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		counts = append(counts, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return counts, nil
}

func (r *contactRepository) selectLatest(ctx context.Context) ([]models.ContactSummary, error) {
	rows, err := r.db.QueryContext(ctx, selectLatestContacts)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	latest := make([]models.ContactSummary, 0)
	for rows.Next() {
		var s models.ContactSummary
		if err := rows.Scan(&s.Name, &s.Email, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		latest = append(latest, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return latest, nil
}

// scanner abstracts *sql.Row and *sql.Rows so scanContact serves both.
type scanner interface {
	Scan(dest ...any) error
}

// scanContact maps one contactos row onto a [models.Contact], converting
// nullable text columns to empty strings.
func scanContact(row scanner) (models.Contact, error) {
	var (
		c models.Contact

		email            sql.NullString
		phone            sql.NullString
		propertyInterest sql.NullString
		notes            sql.NullString
		ipAddress        sql.NullString
		userAgent        sql.NullString
	)

	err := row.Scan(
		&c.ID, &c.Timestamp, &c.Name, &email, &phone, &propertyInterest,
		&c.Status, &notes, &ipAddress, &userAgent, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return models.Contact{}, err
	}

	c.Email = email.String
	c.Phone = phone.String
	c.PropertyInterest = propertyInterest.String
	c.Notes = notes.String
	c.IPAddress = ipAddress.String
	c.UserAgent = userAgent.String

	return c, nil
}
