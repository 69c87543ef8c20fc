package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/artarona/WORK-PAGINAWEB-IA/internal/logger"
	"github.com/artarona/WORK-PAGINAWEB-IA/models"
)

func newTestContactRepo(t *testing.T) (*contactRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewLogger("test")
	repo := &contactRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func contactColumnNames() []string {
	return []string{
		"id", "timestamp", "nombre", "email", "telefono", "propiedad_interes",
		"estado", "notas", "ip_address", "user_agent", "fecha_creacion", "fecha_actualizacion",
	}
}

func TestContactSave_Success(t *testing.T) {
	repo, mock, db := newTestContactRepo(t)
	defer db.Close()

	ctx := context.Background()
	contact := models.Contact{
		Timestamp: "1724400000000",
		Name:      "Ana Torres",
		Email:     "ana@example.com",
		Phone:     "1122334455",
	}

	now := time.Now()
	rows := sqlmock.NewRows(contactColumnNames()).
		AddRow(1, contact.Timestamp, contact.Name, contact.Email, contact.Phone,
			nil, "nuevo", nil, nil, nil, now, now)

	mock.ExpectQuery("INSERT INTO contactos").
		WithArgs(contact.Timestamp, contact.Name, contact.Email, contact.Phone,
			"", "nuevo", "", "", "").
		WillReturnRows(rows)

	saved, err := repo.Save(ctx, contact)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved.ID != 1 {
		t.Errorf("expected ID=1, got %d", saved.ID)
	}
	if saved.Status != "nuevo" {
		t.Errorf("expected status nuevo, got %s", saved.Status)
	}
}

func TestContactSave_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestContactRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("INSERT INTO contactos").
		WillReturnError(errors.New("db network error"))

	_, err := repo.Save(ctx, models.Contact{Timestamp: "1"})
	if err == nil || !strings.Contains(err.Error(), "db network error") {
		t.Fatalf("expected wrapped DB error, got %v", err)
	}
}

func TestContactAll_Success(t *testing.T) {
	repo, mock, db := newTestContactRepo(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows(contactColumnNames()).
		AddRow(2, "200", "Bruno", "bruno@example.com", nil, nil, "nuevo", nil, nil, nil, now, now).
		AddRow(1, "100", "Ana", nil, "1155", "Depto Palermo", "contactado", "llamar", "1.2.3.4", "curl", now, now)

	mock.ExpectQuery("FROM contactos").
		WillReturnRows(rows)

	contacts, err := repo.All(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(contacts) != 2 {
		t.Fatalf("expected 2 contacts, got %d", len(contacts))
	}
	if contacts[0].Name != "Bruno" {
		t.Errorf("expected newest first, got %s", contacts[0].Name)
	}
	if contacts[1].PropertyInterest != "Depto Palermo" {
		t.Errorf("expected property interest, got %q", contacts[1].PropertyInterest)
	}
}

func TestContactByTimestamp_NotFound(t *testing.T) {
	repo, mock, db := newTestContactRepo(t)
	defer db.Close()

	mock.ExpectQuery("WHERE timestamp").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(contactColumnNames()))

	_, err := repo.ByTimestamp(context.Background(), "missing")
	if !errors.Is(err, ErrContactNotFound) {
		t.Fatalf("expected ErrContactNotFound, got %v", err)
	}
}

func TestContactUpdate_Success(t *testing.T) {
	repo, mock, db := newTestContactRepo(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows(contactColumnNames()).
		AddRow(1, "100", "Ana", "ana@example.com", "1155", nil, "contactado", "notas", nil, nil, now, now)

	mock.ExpectQuery("UPDATE contactos").
		WithArgs("100", "Ana", "ana@example.com", "1155", "contactado", "notas").
		WillReturnRows(rows)

	updated, err := repo.Update(context.Background(), models.Contact{
		Timestamp: "100",
		Name:      "Ana",
		Email:     "ana@example.com",
		Phone:     "1155",
		Status:    "contactado",
		Notes:     "notas",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Status != "contactado" {
		t.Errorf("expected status contactado, got %s", updated.Status)
	}
}

func TestContactUpdate_NotFound(t *testing.T) {
	repo, mock, db := newTestContactRepo(t)
	defer db.Close()

	mock.ExpectQuery("UPDATE contactos").
		WillReturnRows(sqlmock.NewRows(contactColumnNames()))

	_, err := repo.Update(context.Background(), models.Contact{Timestamp: "missing"})
	if !errors.Is(err, ErrContactNotFound) {
		t.Fatalf("expected ErrContactNotFound, got %v", err)
	}
}

func TestContactDelete_Success(t *testing.T) {
	repo, mock, db := newTestContactRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM contactos").
		WithArgs("100").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Delete(context.Background(), "100"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestContactDelete_NotFound(t *testing.T) {
	repo, mock, db := newTestContactRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM contactos").
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), "missing")
	if !errors.Is(err, ErrContactNotFound) {
		t.Fatalf("expected ErrContactNotFound, got %v", err)
	}
}

func TestContactClear_ReturnsDeletedCount(t *testing.T) {
	repo, mock, db := newTestContactRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM contactos").
		WillReturnResult(sqlmock.NewResult(0, 7))

	deleted, err := repo.Clear(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted != 7 {
		t.Errorf("expected 7 deleted, got %d", deleted)
	}
}

func TestContactCount_Success(t *testing.T) {
	repo, mock, db := newTestContactRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	count, err := repo.Count(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 3 {
		t.Errorf("expected 3, got %d", count)
	}
}

func TestContactStats_Success(t *testing.T) {
	repo, mock, db := newTestContactRepo(t)
	defer db.Close()

	now := time.Now()

	mock.ExpectQuery("SELECT COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))
	mock.ExpectQuery("SELECT estado").
		WillReturnRows(sqlmock.NewRows([]string{"estado", "cantidad"}).
			AddRow("nuevo", 3).
			AddRow("contactado", 2))
	// the day breakdown only covers the trailing 30-day window, and the
	// latest listing is capped at five
	mock.ExpectQuery(`(?s)SELECT DATE.*INTERVAL '30 days'`).
		WillReturnRows(sqlmock.NewRows([]string{"fecha", "cantidad"}).
			AddRow("2026-08-23", 4).
			AddRow("2026-08-22", 1))
	mock.ExpectQuery(`(?s)SELECT nombre.*LIMIT 5`).
		WillReturnRows(sqlmock.NewRows([]string{"nombre", "email", "fecha_creacion"}).
			AddRow("Ana", "ana@example.com", now))

	stats, err := repo.Stats(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.Total != 5 {
		t.Errorf("expected total 5, got %d", stats.Total)
	}
	if len(stats.ByStatus) != 2 || stats.ByStatus[0].Status != "nuevo" {
		t.Errorf("unexpected status breakdown: %+v", stats.ByStatus)
	}
	if len(stats.ByDay) != 2 || stats.ByDay[0].Date != "2026-08-23" {
		t.Errorf("unexpected day breakdown: %+v", stats.ByDay)
	}
	if len(stats.Latest) != 1 || stats.Latest[0].Name != "Ana" {
		t.Errorf("unexpected latest contacts: %+v", stats.Latest)
	}
}
