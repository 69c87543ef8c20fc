package service

import (
	"context"

	"github.com/artarona/WORK-PAGINAWEB-IA/models"
)

// ─────────────────────────────────────────────
// Mock: store.PropertyRepository
// ─────────────────────────────────────────────

type mockPropertyRepository struct {
	reseedFn        func(ctx context.Context) error
	searchFn        func(ctx context.Context, filter models.SearchFilter) ([]models.Property, error)
	filterOptionsFn func(ctx context.Context) (models.FilterOptions, error)
	statsFn         func(ctx context.Context) (models.CatalogStats, error)

	filterOptionsCalls int
}

func (m *mockPropertyRepository) Reseed(ctx context.Context) error {
	if m.reseedFn != nil {
		return m.reseedFn(ctx)
	}
	return nil
}

func (m *mockPropertyRepository) Search(ctx context.Context, filter models.SearchFilter) ([]models.Property, error) {
	if m.searchFn != nil {
		return m.searchFn(ctx, filter)
	}
	return nil, nil
}

func (m *mockPropertyRepository) FilterOptions(ctx context.Context) (models.FilterOptions, error) {
	m.filterOptionsCalls++
	if m.filterOptionsFn != nil {
		return m.filterOptionsFn(ctx)
	}
	return models.FilterOptions{}, nil
}

func (m *mockPropertyRepository) Stats(ctx context.Context) (models.CatalogStats, error) {
	if m.statsFn != nil {
		return m.statsFn(ctx)
	}
	return models.CatalogStats{}, nil
}

// ─────────────────────────────────────────────
// Mock: store.ContactRepository
// ─────────────────────────────────────────────

type mockContactRepository struct {
	saveFn        func(ctx context.Context, contact models.Contact) (models.Contact, error)
	allFn         func(ctx context.Context) ([]models.Contact, error)
	byTimestampFn func(ctx context.Context, timestamp string) (models.Contact, error)
	updateFn      func(ctx context.Context, contact models.Contact) (models.Contact, error)
	deleteFn      func(ctx context.Context, timestamp string) error
	clearFn       func(ctx context.Context) (int, error)
	countFn       func(ctx context.Context) (int, error)
	statsFn       func(ctx context.Context) (models.ContactStats, error)
}

func (m *mockContactRepository) Save(ctx context.Context, contact models.Contact) (models.Contact, error) {
	if m.saveFn != nil {
		return m.saveFn(ctx, contact)
	}
	return contact, nil
}

func (m *mockContactRepository) All(ctx context.Context) ([]models.Contact, error) {
	if m.allFn != nil {
		return m.allFn(ctx)
	}
	return nil, nil
}

func (m *mockContactRepository) ByTimestamp(ctx context.Context, timestamp string) (models.Contact, error) {
	if m.byTimestampFn != nil {
		return m.byTimestampFn(ctx, timestamp)
	}
	return models.Contact{}, nil
}

func (m *mockContactRepository) Update(ctx context.Context, contact models.Contact) (models.Contact, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, contact)
	}
	return contact, nil
}

func (m *mockContactRepository) Delete(ctx context.Context, timestamp string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, timestamp)
	}
	return nil
}

func (m *mockContactRepository) Clear(ctx context.Context) (int, error) {
	if m.clearFn != nil {
		return m.clearFn(ctx)
	}
	return 0, nil
}

func (m *mockContactRepository) Count(ctx context.Context) (int, error) {
	if m.countFn != nil {
		return m.countFn(ctx)
	}
	return 0, nil
}

func (m *mockContactRepository) Stats(ctx context.Context) (models.ContactStats, error) {
	if m.statsFn != nil {
		return m.statsFn(ctx)
	}
	return models.ContactStats{}, nil
}

// ─────────────────────────────────────────────
// Mock: store.ConversationRepository
// ─────────────────────────────────────────────

type mockConversationRepository struct {
	logFn     func(ctx context.Context, entry models.ConversationEntry) error
	historyFn func(ctx context.Context, channel string, limit int) ([]string, error)

	logged []models.ConversationEntry
}

func (m *mockConversationRepository) Log(ctx context.Context, entry models.ConversationEntry) error {
	m.logged = append(m.logged, entry)
	if m.logFn != nil {
		return m.logFn(ctx, entry)
	}
	return nil
}

func (m *mockConversationRepository) History(ctx context.Context, channel string, limit int) ([]string, error) {
	if m.historyFn != nil {
		return m.historyFn(ctx, channel, limit)
	}
	return nil, nil
}

// ─────────────────────────────────────────────
// Mock: adapter.AssistantClient
// ─────────────────────────────────────────────

type mockAssistantClient struct {
	generateReplyFn func(ctx context.Context, prompt string) (string, error)

	prompts []string
}

func (m *mockAssistantClient) GenerateReply(ctx context.Context, prompt string) (string, error) {
	m.prompts = append(m.prompts, prompt)
	if m.generateReplyFn != nil {
		return m.generateReplyFn(ctx, prompt)
	}
	return "respuesta generada", nil
}
