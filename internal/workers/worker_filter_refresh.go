package workers

import (
	"context"
	"time"

	"github.com/artarona/WORK-PAGINAWEB-IA/internal/config"
	"github.com/artarona/WORK-PAGINAWEB-IA/internal/logger"
	"github.com/artarona/WORK-PAGINAWEB-IA/internal/service"
)

// filterRefreshWorker periodically rebuilds the filter-option cache from the
// catalog so GET /api/properties/filter-options never serves a stale
// snapshot after the catalog changes.
type filterRefreshWorker struct {
	properties service.PropertyService
	interval   time.Duration

	cancel context.CancelFunc
	done   chan struct{}

	logger *logger.Logger
}

// NewFilterRefreshWorker constructs the cache-refresh worker. A non-positive
// interval disables it; Run then does nothing.
func NewFilterRefreshWorker(properties service.PropertyService, cfg config.Workers, logger *logger.Logger) Worker {
	return &filterRefreshWorker{
		properties: properties,
		interval:   cfg.FilterRefreshInterval,
		logger:     logger,
	}
}

func (w *filterRefreshWorker) Run() {
	if w.interval <= 0 {
		w.logger.Info().Msg("filter refresh worker disabled")
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	w.cancel = cancel
	w.done = make(chan struct{})

	w.logger.Info().Dur("interval", w.interval).Msg("filter refresh worker started")

	go w.loop(ctx)
}

func (w *filterRefreshWorker) loop(ctx context.Context) {
	defer close(w.done)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.properties.RefreshFilterOptions(ctx); err != nil {
				w.logger.Err(err).Str("func", "*filterRefreshWorker.loop").Msg("filter refresh failed")
			}
		}
	}
}

func (w *filterRefreshWorker) Shutdown() {
	if w.cancel == nil {
		return
	}

	w.cancel()
	<-w.done

	w.logger.Info().Msg("filter refresh worker stopped")
}
