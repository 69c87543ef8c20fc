package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"

	"github.com/artarona/WORK-PAGINAWEB-IA/internal/config"
	"github.com/artarona/WORK-PAGINAWEB-IA/internal/logger"
	"github.com/artarona/WORK-PAGINAWEB-IA/models"
)

// propertyRepository is the SQLite-backed implementation of
// [PropertyRepository]. The catalog is rebuilt from the listings JSON file
// on every startup, so the table is treated as disposable.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type propertyRepository struct {
	logger *logger.Logger
	db     *DB
	cfg    config.Catalog
}

// NewPropertyRepository constructs a [PropertyRepository] backed by the
// provided SQLite connection and catalog configuration.
func NewPropertyRepository(db *DB, cfg config.Catalog, logger *logger.Logger) PropertyRepository {
	logger.Debug().Msg("creating property repository")
	return &propertyRepository{
		db:     db,
		cfg:    cfg,
		logger: logger,
	}
}

// Reseed drops and recreates the properties table, then loads it from the
// configured listings file. Rows failing [models.Property.Valid] are skipped
// with a warning instead of aborting the whole seed.
//
// Returns [ErrCatalogEmpty] when no valid listing could be inserted.
func (r *propertyRepository) Reseed(ctx context.Context) error {
	log := logger.FromContext(ctx)

	properties, err := r.loadSeedFile()
	if err != nil {
		log.Err(err).Str("func", "*propertyRepository.Reseed").Msg("error: reading listings file")
		return err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*propertyRepository.Reseed").Msg("error: starting transaction")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	defer tx.Rollback()

	for _, stmt := range []string{dropPropertiesTable, createPropertiesTable} {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			log.Err(err).Str("func", "*propertyRepository.Reseed").Msg("error: recreating catalog table")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	inserted := 0
	for idx, property := range properties {
		if !property.Valid() {
			log.Warn().Str("func", "*propertyRepository.Reseed").
				Int("index", idx).Str("titulo", property.Title).
				Msg("skipping listing with missing required fields")
			continue
		}

		if property.ID == "" {
			property.ID = fmt.Sprintf("prop_%03d", idx+1)
		}

		if err := r.insertProperty(ctx, tx, property); err != nil {
			log.Err(err).Str("func", "*propertyRepository.Reseed").
				Str("id_temporal", property.ID).Msg("error: inserting listing")
			return err
		}
		inserted++
	}

	if inserted == 0 {
		return ErrCatalogEmpty
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*propertyRepository.Reseed").Msg("error: committing seed transaction")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	log.Info().Str("func", "*propertyRepository.Reseed").
		Int("listings", inserted).Str("file", r.cfg.SeedFile).
		Msg("property catalog seeded")

	return nil
}

// loadSeedFile reads and decodes the listings JSON file. Three layouts are
// accepted: a bare array, an object with a "propiedades" array, and a single
// listing object.
func (r *propertyRepository) loadSeedFile() ([]models.Property, error) {
	data, err := os.ReadFile(r.cfg.SeedFile)
	if err != nil {
		return nil, fmt.Errorf("read listings file %q: %w", r.cfg.SeedFile, err)
	}

	var properties []models.Property
	if err := json.Unmarshal(data, &properties); err == nil {
		return properties, nil
	}

	var wrapped struct {
		Properties []models.Property `json:"propiedades"`
	}
	if err := json.Unmarshal(data, &wrapped); err == nil && wrapped.Properties != nil {
		return wrapped.Properties, nil
	}

	var single models.Property
	if err := json.Unmarshal(data, &single); err == nil && single.Valid() {
		return []models.Property{single}, nil
	}

	return nil, fmt.Errorf("listings file %q: unrecognised JSON layout", r.cfg.SeedFile)
}

// insertProperty writes one listing inside the seed transaction. Media lists
// are stored as JSON text columns.
func (r *propertyRepository) insertProperty(ctx context.Context, tx *sql.Tx, p models.Property) error {
	photos, err := marshalMedia(p.Photos)
	if err != nil {
		return err
	}
	videos, err := marshalMedia(p.Videos)
	if err != nil {
		return err
	}
	documents, err := marshalMedia(p.Documents)
	if err != nil {
		return err
	}

	priceCurrency := p.PriceCurrency
	if priceCurrency == "" {
		priceCurrency = "USD"
	}
	expensesCurrency := p.ExpensesCurrency
	if expensesCurrency == "" {
		expensesCurrency = "ARS"
	}

	_, err = tx.ExecContext(ctx, insertProperty,
		p.ID, p.Title, p.Neighborhood, p.Price, p.Rooms, p.SquareMeters,
		p.Description, p.Operation, p.Type, p.Address, p.Age, p.Condition,
		p.Orientation, p.Expenses, p.Amenities, p.Garage, p.Balcony, p.Pool,
		p.PetsAllowed, p.AirConditioning, priceCurrency, expensesCurrency,
		photos, videos, documents,
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func marshalMedia(urls []string) (string, error) {
	if urls == nil {
		urls = []string{}
	}

	data, err := json.Marshal(urls)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return string(data), nil
}

// Search returns the listings matching the filter, cheapest first. An empty
// filter returns the whole catalog.
func (r *propertyRepository) Search(ctx context.Context, filter models.SearchFilter) ([]models.Property, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildPropertySearchQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "*propertyRepository.Search").Msg("error: building search query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*propertyRepository.Search").Msg("error: executing search query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	properties := make([]models.Property, 0)
	for rows.Next() {
		property, err := scanProperty(rows)
		if err != nil {
			log.Err(err).Str("func", "*propertyRepository.Search").Msg("error: scanning listing row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		properties = append(properties, property)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*propertyRepository.Search").Msg("error: iterating listing rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return properties, nil
}

// scanProperty maps one catalog row onto a [models.Property], converting
// nullable columns to pointers and media JSON text back to slices.
func scanProperty(rows *sql.Rows) (models.Property, error) {
	var (
		p models.Property

		description     sql.NullString
		address         sql.NullString
		age             sql.NullInt64
		condition       sql.NullString
		orientation     sql.NullString
		expenses        sql.NullFloat64
		amenities       sql.NullString
		garage          sql.NullString
		balcony         sql.NullString
		pool            sql.NullString
		petsAllowed     sql.NullString
		airConditioning sql.NullString

		photos    sql.NullString
		videos    sql.NullString
		documents sql.NullString
	)

	err := rows.Scan(
		&p.ID, &p.Title, &p.Neighborhood, &p.Price, &p.Rooms, &p.SquareMeters,
		&description, &p.Operation, &p.Type, &address, &age, &condition,
		&orientation, &expenses, &amenities, &garage, &balcony, &pool,
		&petsAllowed, &airConditioning, &p.PriceCurrency, &p.ExpensesCurrency,
		&photos, &videos, &documents,
	)
	if err != nil {
		return models.Property{}, err
	}

	p.Description = description.String
	p.Address = nullStringPtr(address)
	p.Condition = nullStringPtr(condition)
	p.Orientation = nullStringPtr(orientation)
	p.Amenities = nullStringPtr(amenities)
	p.Garage = nullStringPtr(garage)
	p.Balcony = nullStringPtr(balcony)
	p.Pool = nullStringPtr(pool)
	p.PetsAllowed = nullStringPtr(petsAllowed)
	p.AirConditioning = nullStringPtr(airConditioning)

	if age.Valid {
		v := int(age.Int64)
		p.Age = &v
	}
	if expenses.Valid {
		v := expenses.Float64
		p.Expenses = &v
	}

	p.Photos = unmarshalMedia(photos)
	p.Videos = unmarshalMedia(videos)
	p.Documents = unmarshalMedia(documents)

	return p, nil
}

func nullStringPtr(v sql.NullString) *string {
	if !v.Valid || v.String == "" {
		return nil
	}
	return &v.String
}

// unmarshalMedia tolerates broken media JSON: a listing with a corrupt photo
// list still comes back, just without the media.
func unmarshalMedia(v sql.NullString) []string {
	urls := []string{}
	if !v.Valid || v.String == "" {
		return urls
	}

	if err := json.Unmarshal([]byte(v.String), &urls); err != nil {
		return []string{}
	}

	return urls
}

// FilterOptions returns the distinct neighborhoods and types present in the
// catalog together with the total listing count.
func (r *propertyRepository) FilterOptions(ctx context.Context) (models.FilterOptions, error) {
	log := logger.FromContext(ctx)

	options := models.FilterOptions{
		Neighborhoods: []string{},
		Types:         []string{},
	}

	neighborhoods, err := r.selectStrings(ctx, selectDistinctNeighborhoods)
	if err != nil {
		log.Err(err).Str("func", "*propertyRepository.FilterOptions").Msg("error: selecting distinct neighborhoods")
		return models.FilterOptions{}, err
	}
	options.Neighborhoods = neighborhoods

	types, err := r.selectStrings(ctx, selectDistinctTypes)
	if err != nil {
		log.Err(err).Str("func", "*propertyRepository.FilterOptions").Msg("error: selecting distinct types")
		return models.FilterOptions{}, err
	}
	options.Types = types

	if err := r.db.QueryRowContext(ctx, countProperties).Scan(&options.Total); err != nil {
		log.Err(err).Str("func", "*propertyRepository.FilterOptions").Msg("error: counting listings")
		return models.FilterOptions{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return options, nil
}

func (r *propertyRepository) selectStrings(ctx context.Context, query string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	values := make([]string, 0)
	for rows.Next() {
		var value string
		if err := rows.Scan(&value); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		values = append(values, value)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return values, nil
}

// Stats aggregates the catalog by operation, type and neighborhood.
func (r *propertyRepository) Stats(ctx context.Context) (models.CatalogStats, error) {
	log := logger.FromContext(ctx)

	var stats models.CatalogStats

	if err := r.db.QueryRowContext(ctx, countProperties).Scan(&stats.Total); err != nil {
		log.Err(err).Str("func", "*propertyRepository.Stats").Msg("error: counting listings")
		return models.CatalogStats{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	byOperation, err := r.selectOperationStats(ctx)
	if err != nil {
		log.Err(err).Str("func", "*propertyRepository.Stats").Msg("error: aggregating by operation")
		return models.CatalogStats{}, err
	}
	stats.ByOperation = byOperation

	stats.ByType, err = r.selectGroupCounts(ctx, selectCountByType)
	if err != nil {
		log.Err(err).Str("func", "*propertyRepository.Stats").Msg("error: aggregating by type")
		return models.CatalogStats{}, err
	}

	stats.ByNeighborhood, err = r.selectGroupCounts(ctx, selectCountByNeighborhood)
	if err != nil {
		log.Err(err).Str("func", "*propertyRepository.Stats").Msg("error: aggregating by neighborhood")
		return models.CatalogStats{}, err
	}

	return stats, nil
}

func (r *propertyRepository) selectOperationStats(ctx context.Context) ([]models.OperationStats, error) {
	rows, err := r.db.QueryContext(ctx, selectStatsByOperation)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	stats := make([]models.OperationStats, 0)
	for rows.Next() {
		var s models.OperationStats
		if err := rows.Scan(&s.Operation, &s.Count, &s.MinPrice, &s.AvgPrice, &s.MaxPrice); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		stats = append(stats, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return stats, nil
}

func (r *propertyRepository) selectGroupCounts(ctx context.Context, query string) ([]models.GroupCount, error) {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	counts := make([]models.GroupCount, 0)
	for rows.Next() {
		var c models.GroupCount
		if err := rows.Scan(&c.Label, &c.Count); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		counts = append(counts, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return counts, nil
}
