package service

import (
	"github.com/artarona/WORK-PAGINAWEB-IA/internal/adapter"
	"github.com/artarona/WORK-PAGINAWEB-IA/internal/config"
	"github.com/artarona/WORK-PAGINAWEB-IA/internal/logger"
	"github.com/artarona/WORK-PAGINAWEB-IA/internal/store"
)

// Services bundles every service the HTTP handlers depend on.
type Services struct {
	Chat       ChatService
	Properties PropertyService
	Contacts   ContactService
	Auth       AuthService
	Status     StatusService

	// Metrics is exposed so the request-counting middleware can reach it.
	Metrics *Metrics
}

// NewServices wires the service layer over the repositories and the
// assistant client.
func NewServices(storages *store.Storages, assistant adapter.AssistantClient, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	metrics := NewMetrics()

	return &Services{
		Chat:       NewChatService(storages.Properties, storages.Conversations, assistant, metrics, logger),
		Properties: NewPropertyService(storages.Properties, logger),
		Contacts:   NewContactService(storages.Contacts, logger),
		Auth:       NewAuthService(cfg.App, logger),
		Status:     NewStatusService(metrics, storages.Contacts, logger),
		Metrics:    metrics,
	}
}
