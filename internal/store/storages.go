package store

import (
	"github.com/artarona/WORK-PAGINAWEB-IA/internal/config"
	"github.com/artarona/WORK-PAGINAWEB-IA/internal/logger"
)

// Storages bundles every repository the service layer depends on.
//
// Contacts and Conversations are nil when no PostgreSQL DSN is configured;
// the services degrade gracefully in that case.
type Storages struct {
	Properties    PropertyRepository
	Contacts      ContactRepository
	Conversations ConversationRepository
}

// NewStorages wires the repositories over their database connections.
// contactsDB may be nil.
func NewStorages(catalogDB, contactsDB *DB, catalogCfg config.Catalog, log *logger.Logger) *Storages {
	s := &Storages{
		Properties: NewPropertyRepository(catalogDB, catalogCfg, log),
	}

	if contactsDB != nil {
		s.Contacts = NewContactRepository(contactsDB, log)
		s.Conversations = NewConversationRepository(contactsDB, log)
	}

	return s
}
