package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/artarona/WORK-PAGINAWEB-IA/internal/config"
	"github.com/artarona/WORK-PAGINAWEB-IA/internal/logger"
	"github.com/artarona/WORK-PAGINAWEB-IA/models"
)

func newTestPropertyRepo(t *testing.T, seedFile string) (*propertyRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewLogger("test")
	repo := &propertyRepository{
		db:     &DB{DB: db, logger: l},
		cfg:    config.Catalog{Path: ":memory:", SeedFile: seedFile},
		logger: l,
	}
	return repo, mock, db
}

func writeSeedFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "propiedades.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write seed file: %v", err)
	}
	return path
}

const validListing = `{
	"id_temporal": "prop_001",
	"titulo": "Depto 3 ambientes",
	"barrio": "Palermo",
	"precio": 185000,
	"ambientes": 3,
	"metros_cuadrados": 72,
	"operacion": "venta",
	"tipo": "departamento",
	"fotos": ["https://cdn.example.com/p1.jpg"]
}`

func TestLoadSeedFile_Layouts(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
		wantErr bool
	}{
		{
			name:    "bare array",
			content: "[" + validListing + "]",
			want:    1,
		},
		{
			name:    "wrapped object",
			content: `{"propiedades": [` + validListing + "," + validListing + "]}",
			want:    2,
		},
		{
			name:    "single listing object",
			content: validListing,
			want:    1,
		},
		{
			name:    "unrecognised layout",
			content: `"just a string"`,
			wantErr: true,
		},
		{
			name:    "invalid JSON",
			content: `{"propiedades": [`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, _, db := newTestPropertyRepo(t, writeSeedFile(t, tt.content))
			defer db.Close()

			properties, err := repo.loadSeedFile()

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(properties) != tt.want {
				t.Errorf("expected %d listings, got %d", tt.want, len(properties))
			}
		})
	}
}

func TestLoadSeedFile_MissingFile(t *testing.T) {
	repo, _, db := newTestPropertyRepo(t, filepath.Join(t.TempDir(), "missing.json"))
	defer db.Close()

	if _, err := repo.loadSeedFile(); err == nil {
		t.Fatal("expected error for missing seed file, got nil")
	}
}

func TestReseed_Success(t *testing.T) {
	seed := writeSeedFile(t, "["+validListing+"]")
	repo, mock, db := newTestPropertyRepo(t, seed)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("DROP TABLE IF EXISTS properties").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("CREATE TABLE properties").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO properties").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	if err := repo.Reseed(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestReseed_SkipsInvalidListings(t *testing.T) {
	// Second listing has no price so it must be skipped, not inserted.
	seed := writeSeedFile(t, "["+validListing+`,
		{"titulo": "Sin precio", "barrio": "Boedo", "operacion": "venta", "tipo": "casa"}]`)
	repo, mock, db := newTestPropertyRepo(t, seed)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("DROP TABLE IF EXISTS properties").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("CREATE TABLE properties").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO properties").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	if err := repo.Reseed(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expected exactly one insert: %v", err)
	}
}

func TestReseed_EmptyCatalog(t *testing.T) {
	seed := writeSeedFile(t, `[{"titulo": "Sin precio", "barrio": "Boedo", "operacion": "venta", "tipo": "casa"}]`)
	repo, mock, db := newTestPropertyRepo(t, seed)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("DROP TABLE IF EXISTS properties").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("CREATE TABLE properties").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.Reseed(context.Background())
	if !errors.Is(err, ErrCatalogEmpty) {
		t.Fatalf("expected ErrCatalogEmpty, got %v", err)
	}
}

func propertyRow() []driver.Value {
	return []driver.Value{
		"prop_001", "Depto 3 ambientes", "Palermo", 185000.0, 3, 72.0,
		"Luminoso", "venta", "departamento", "Av. Santa Fe 3200", 10, "bueno",
		nil, 45000.0, nil, "si", "si", nil,
		nil, "si", "USD", "ARS",
		`["https://cdn.example.com/p1.jpg"]`, "[]", "not-json",
	}
}

func TestPropertySearch_Success(t *testing.T) {
	repo, mock, db := newTestPropertyRepo(t, "")
	defer db.Close()

	rows := sqlmock.NewRows(propertyColumns).AddRow(propertyRow()...)

	mock.ExpectQuery("FROM properties").
		WithArgs("%Palermo%").
		WillReturnRows(rows)

	results, err := repo.Search(context.Background(), models.SearchFilter{Neighborhood: "Palermo"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 listing, got %d", len(results))
	}

	p := results[0]
	if p.ID != "prop_001" {
		t.Errorf("expected id prop_001, got %s", p.ID)
	}
	if p.Address == nil || *p.Address != "Av. Santa Fe 3200" {
		t.Errorf("expected address pointer, got %v", p.Address)
	}
	if p.Orientation != nil {
		t.Errorf("expected nil orientation for NULL column, got %v", *p.Orientation)
	}
	if p.Expenses == nil || *p.Expenses != 45000 {
		t.Errorf("expected expenses 45000, got %v", p.Expenses)
	}
	if len(p.Photos) != 1 || p.Photos[0] != "https://cdn.example.com/p1.jpg" {
		t.Errorf("expected one photo, got %v", p.Photos)
	}
	if len(p.Videos) != 0 {
		t.Errorf("expected empty videos, got %v", p.Videos)
	}
	// corrupt media JSON degrades to an empty list instead of failing
	if len(p.Documents) != 0 {
		t.Errorf("expected empty documents for corrupt JSON, got %v", p.Documents)
	}
}

func TestPropertySearch_EmptyResult(t *testing.T) {
	repo, mock, db := newTestPropertyRepo(t, "")
	defer db.Close()

	mock.ExpectQuery("FROM properties").
		WillReturnRows(sqlmock.NewRows(propertyColumns))

	results, err := repo.Search(context.Background(), models.SearchFilter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if results == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(results) != 0 {
		t.Errorf("expected no listings, got %d", len(results))
	}
}

func TestPropertySearch_QueryError(t *testing.T) {
	repo, mock, db := newTestPropertyRepo(t, "")
	defer db.Close()

	mock.ExpectQuery("FROM properties").
		WillReturnError(errors.New("catalog unavailable"))

	_, err := repo.Search(context.Background(), models.SearchFilter{})
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestFilterOptions_Success(t *testing.T) {
	repo, mock, db := newTestPropertyRepo(t, "")
	defer db.Close()

	mock.ExpectQuery("SELECT DISTINCT barrio").
		WillReturnRows(sqlmock.NewRows([]string{"barrio"}).AddRow("Belgrano").AddRow("Palermo"))
	mock.ExpectQuery("SELECT DISTINCT tipo").
		WillReturnRows(sqlmock.NewRows([]string{"tipo"}).AddRow("casa").AddRow("departamento"))
	mock.ExpectQuery("SELECT COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))

	options, err := repo.FilterOptions(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(options.Neighborhoods) != 2 || options.Neighborhoods[0] != "Belgrano" {
		t.Errorf("unexpected neighborhoods: %v", options.Neighborhoods)
	}
	if len(options.Types) != 2 {
		t.Errorf("unexpected types: %v", options.Types)
	}
	if options.Total != 12 {
		t.Errorf("expected total 12, got %d", options.Total)
	}
}

func TestCatalogStats_Success(t *testing.T) {
	repo, mock, db := newTestPropertyRepo(t, "")
	defer db.Close()

	mock.ExpectQuery("SELECT COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(10))
	mock.ExpectQuery("SELECT operacion").
		WillReturnRows(sqlmock.NewRows([]string{"operacion", "count", "min", "avg", "max"}).
			AddRow("alquiler", 4, 500.0, 850.0, 1200.0).
			AddRow("venta", 6, 90000.0, 160000.0, 310000.0))
	mock.ExpectQuery("SELECT tipo").
		WillReturnRows(sqlmock.NewRows([]string{"tipo", "count"}).
			AddRow("departamento", 7).
			AddRow("casa", 3))
	mock.ExpectQuery("SELECT barrio").
		WillReturnRows(sqlmock.NewRows([]string{"barrio", "count"}).
			AddRow("Palermo", 5).
			AddRow("Belgrano", 5))

	stats, err := repo.Stats(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.Total != 10 {
		t.Errorf("expected total 10, got %d", stats.Total)
	}
	if len(stats.ByOperation) != 2 || stats.ByOperation[1].MaxPrice != 310000 {
		t.Errorf("unexpected operation stats: %+v", stats.ByOperation)
	}
	if len(stats.ByType) != 2 || stats.ByType[0].Label != "departamento" {
		t.Errorf("unexpected type breakdown: %+v", stats.ByType)
	}
	if len(stats.ByNeighborhood) != 2 {
		t.Errorf("unexpected neighborhood breakdown: %+v", stats.ByNeighborhood)
	}
}
