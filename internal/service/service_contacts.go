package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/artarona/WORK-PAGINAWEB-IA/internal/logger"
	"github.com/artarona/WORK-PAGINAWEB-IA/internal/store"
	"github.com/artarona/WORK-PAGINAWEB-IA/models"
)

// contactService is the concrete implementation of [ContactService]. Every
// method degrades to [ErrContactsUnavailable] when the deployment runs
// without a contact database.
type contactService struct {
	contacts store.ContactRepository
	logger   *logger.Logger
}

// NewContactService constructs a [ContactService]. contacts may be nil.
func NewContactService(contacts store.ContactRepository, logger *logger.Logger) ContactService {
	return &contactService{
		contacts: contacts,
		logger:   logger,
	}
}

// Save implements [ContactService]. A missing Timestamp is assigned
// server-side as epoch milliseconds, matching what the web form sends.
func (s *contactService) Save(ctx context.Context, contact models.Contact) (models.Contact, error) {
	if s.contacts == nil {
		return models.Contact{}, ErrContactsUnavailable
	}

	if strings.TrimSpace(contact.Name) == "" {
		return models.Contact{}, fmt.Errorf("%w: contact name is required", ErrInvalidDataProvided)
	}

	if contact.Timestamp == "" {
		contact.Timestamp = strconv.FormatInt(time.Now().UnixMilli(), 10)
	}

	saved, err := s.contacts.Save(ctx, contact)
	if err != nil {
		return models.Contact{}, fmt.Errorf("contact save failed: %w", err)
	}

	return saved, nil
}

// All implements [ContactService].
func (s *contactService) All(ctx context.Context) ([]models.Contact, error) {
	if s.contacts == nil {
		return nil, ErrContactsUnavailable
	}
	return s.contacts.All(ctx)
}

// ByTimestamp implements [ContactService].
func (s *contactService) ByTimestamp(ctx context.Context, timestamp string) (models.Contact, error) {
	if s.contacts == nil {
		return models.Contact{}, ErrContactsUnavailable
	}
	return s.contacts.ByTimestamp(ctx, timestamp)
}

// Update implements [ContactService].
func (s *contactService) Update(ctx context.Context, contact models.Contact) (models.Contact, error) {
	if s.contacts == nil {
		return models.Contact{}, ErrContactsUnavailable
	}
	if contact.Timestamp == "" {
		return models.Contact{}, fmt.Errorf("%w: contact timestamp is required", ErrInvalidDataProvided)
	}
	return s.contacts.Update(ctx, contact)
}

// Delete implements [ContactService].
func (s *contactService) Delete(ctx context.Context, timestamp string) error {
	if s.contacts == nil {
		return ErrContactsUnavailable
	}
	return s.contacts.Delete(ctx, timestamp)
}

// Clear implements [ContactService].
func (s *contactService) Clear(ctx context.Context) (int, error) {
	if s.contacts == nil {
		return 0, ErrContactsUnavailable
	}
	return s.contacts.Clear(ctx)
}

// Stats implements [ContactService].
func (s *contactService) Stats(ctx context.Context) (models.ContactStats, error) {
	if s.contacts == nil {
		return models.ContactStats{}, ErrContactsUnavailable
	}
	return s.contacts.Stats(ctx)
}

// exportHeaders is the spreadsheet column layout, one column per stored
// contact field.
var exportHeaders = []string{
	"Timestamp", "Nombre", "Email", "Teléfono", "Propiedad de interés",
	"Estado", "Notas", "IP", "User Agent", "Fecha de creación", "Fecha de actualización",
}

// ExportXLSX implements [ContactService]. Contacts come out newest first,
// matching the admin listing order.
func (s *contactService) ExportXLSX(ctx context.Context) ([]byte, error) {
	log := logger.FromContext(ctx)

	contacts, err := s.All(ctx)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Contactos"
	f.SetSheetName(f.GetSheetName(0), sheet)

	for col, header := range exportHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, fmt.Errorf("export header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, fmt.Errorf("export header write: %w", err)
		}
	}

	for row, contact := range contacts {
		values := []any{
			contact.Timestamp, contact.Name, contact.Email, contact.Phone,
			contact.PropertyInterest, contact.Status, contact.Notes,
			contact.IPAddress, contact.UserAgent,
			contact.CreatedAt.Format(time.RFC3339),
			contact.UpdatedAt.Format(time.RFC3339),
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, fmt.Errorf("export cell name: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, fmt.Errorf("export cell write: %w", err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		log.Err(err).Str("func", "*contactService.ExportXLSX").Msg("workbook serialization failed")
		return nil, fmt.Errorf("export serialization failed: %w", err)
	}

	log.Info().Str("func", "*contactService.ExportXLSX").Int("contacts", len(contacts)).Msg("contacts exported")

	return buf.Bytes(), nil
}
