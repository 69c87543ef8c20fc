package service

import (
	"context"
	"fmt"
	"time"

	"github.com/artarona/WORK-PAGINAWEB-IA/internal/logger"
	"github.com/artarona/WORK-PAGINAWEB-IA/internal/store"
	"github.com/artarona/WORK-PAGINAWEB-IA/models"
)

// statusService is the concrete implementation of [StatusService].
type statusService struct {
	metrics  *Metrics
	contacts store.ContactRepository

	logger *logger.Logger
}

// NewStatusService constructs a [StatusService]. contacts may be nil; the
// health probe then reports zero stored contacts instead of failing.
func NewStatusService(metrics *Metrics, contacts store.ContactRepository, logger *logger.Logger) StatusService {
	return &statusService{
		metrics:  metrics,
		contacts: contacts,
		logger:   logger,
	}
}

// Status implements [StatusService].
func (s *statusService) Status(ctx context.Context) models.StatusResponse {
	return models.StatusResponse{
		Status:        "activo",
		UptimeSeconds: s.metrics.Uptime().Seconds(),
		TotalRequests: s.metrics.Requests(),
		GeminiCalls:   s.metrics.AssistantCalls(),
		SearchQueries: s.metrics.Searches(),
	}
}

// Health implements [StatusService]. The probe counts stored contacts so a
// broken contact database surfaces as unhealthy.
func (s *statusService) Health(ctx context.Context) (models.HealthResponse, error) {
	total := 0
	if s.contacts != nil {
		count, err := s.contacts.Count(ctx)
		if err != nil {
			logger.FromContext(ctx).Err(err).
				Str("func", "*statusService.Health").Msg("contact count failed")
			return models.HealthResponse{}, fmt.Errorf("health probe failed: %w", err)
		}
		total = count
	}

	return models.HealthResponse{
		Status:        "healthy",
		Message:       "Servidor funcionando correctamente",
		TotalContacts: total,
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
	}, nil
}
