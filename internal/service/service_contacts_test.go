package service

import (
	"bytes"
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/artarona/WORK-PAGINAWEB-IA/internal/logger"
	"github.com/artarona/WORK-PAGINAWEB-IA/models"
)

func TestContacts_UnavailableWithoutDatabase(t *testing.T) {
	svc := NewContactService(nil, logger.Nop())
	ctx := context.Background()

	_, err := svc.Save(ctx, models.Contact{Name: "Ana"})
	assert.ErrorIs(t, err, ErrContactsUnavailable)

	_, err = svc.All(ctx)
	assert.ErrorIs(t, err, ErrContactsUnavailable)

	_, err = svc.ByTimestamp(ctx, "1700000000000")
	assert.ErrorIs(t, err, ErrContactsUnavailable)

	_, err = svc.Update(ctx, models.Contact{Timestamp: "1700000000000"})
	assert.ErrorIs(t, err, ErrContactsUnavailable)

	assert.ErrorIs(t, svc.Delete(ctx, "1700000000000"), ErrContactsUnavailable)

	_, err = svc.Clear(ctx)
	assert.ErrorIs(t, err, ErrContactsUnavailable)

	_, err = svc.Stats(ctx)
	assert.ErrorIs(t, err, ErrContactsUnavailable)

	_, err = svc.ExportXLSX(ctx)
	assert.ErrorIs(t, err, ErrContactsUnavailable)
}

func TestContactSave_RequiresName(t *testing.T) {
	svc := NewContactService(&mockContactRepository{}, logger.Nop())

	_, err := svc.Save(context.Background(), models.Contact{Name: "   "})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestContactSave_AssignsTimestamp(t *testing.T) {
	var saved models.Contact
	contacts := &mockContactRepository{
		saveFn: func(ctx context.Context, contact models.Contact) (models.Contact, error) {
			saved = contact
			return contact, nil
		},
	}
	svc := NewContactService(contacts, logger.Nop())

	before := time.Now().UnixMilli()
	got, err := svc.Save(context.Background(), models.Contact{Name: "Ana García"})
	require.NoError(t, err)

	require.NotEmpty(t, saved.Timestamp)
	millis, err := strconv.ParseInt(saved.Timestamp, 10, 64)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, millis, before)
	assert.Equal(t, saved.Timestamp, got.Timestamp)
}

func TestContactSave_KeepsClientTimestamp(t *testing.T) {
	contacts := &mockContactRepository{}
	svc := NewContactService(contacts, logger.Nop())

	got, err := svc.Save(context.Background(), models.Contact{Name: "Ana", Timestamp: "1700000000000"})
	require.NoError(t, err)
	assert.Equal(t, "1700000000000", got.Timestamp)
}

func TestContactSave_RepositoryError(t *testing.T) {
	wantErr := errors.New("db down")
	contacts := &mockContactRepository{
		saveFn: func(ctx context.Context, contact models.Contact) (models.Contact, error) {
			return models.Contact{}, wantErr
		},
	}
	svc := NewContactService(contacts, logger.Nop())

	_, err := svc.Save(context.Background(), models.Contact{Name: "Ana"})
	assert.ErrorIs(t, err, wantErr)
}

func TestContactUpdate_RequiresTimestamp(t *testing.T) {
	svc := NewContactService(&mockContactRepository{}, logger.Nop())

	_, err := svc.Update(context.Background(), models.Contact{Name: "Ana"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestContactExportXLSX_RoundTrip(t *testing.T) {
	created := time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC)
	contacts := &mockContactRepository{
		allFn: func(ctx context.Context) ([]models.Contact, error) {
			return []models.Contact{
				{
					Timestamp:        "1700000000000",
					Name:             "Ana García",
					Email:            "ana@example.com",
					Phone:            "+54911...",
					PropertyInterest: "prop_001",
					Status:           "nuevo",
					CreatedAt:        created,
					UpdatedAt:        created,
				},
				{Timestamp: "1700000000001", Name: "Bruno", Status: "contactado", CreatedAt: created, UpdatedAt: created},
			}, nil
		},
	}
	svc := NewContactService(contacts, logger.Nop())

	data, err := svc.ExportXLSX(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	require.Contains(t, f.GetSheetList(), "Contactos")

	header, err := f.GetCellValue("Contactos", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Timestamp", header)

	name, err := f.GetCellValue("Contactos", "B2")
	require.NoError(t, err)
	assert.Equal(t, "Ana García", name)

	status, err := f.GetCellValue("Contactos", "F3")
	require.NoError(t, err)
	assert.Equal(t, "contactado", status)

	createdCell, err := f.GetCellValue("Contactos", "J2")
	require.NoError(t, err)
	assert.Equal(t, created.Format(time.RFC3339), createdCell)
}

func TestContactExportXLSX_ListingError(t *testing.T) {
	wantErr := errors.New("db down")
	contacts := &mockContactRepository{
		allFn: func(ctx context.Context) ([]models.Contact, error) {
			return nil, wantErr
		},
	}
	svc := NewContactService(contacts, logger.Nop())

	_, err := svc.ExportXLSX(context.Background())
	assert.ErrorIs(t, err, wantErr)
}
