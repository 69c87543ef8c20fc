package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/artarona/WORK-PAGINAWEB-IA/internal/config"
	"github.com/artarona/WORK-PAGINAWEB-IA/internal/logger"
	"github.com/artarona/WORK-PAGINAWEB-IA/internal/utils"
	"github.com/artarona/WORK-PAGINAWEB-IA/models"
)

type httpServerAdapter struct {
	client    *utils.HTTPClient
	endpoints Endpoints
	channel   string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the configured base URL,
// derives the endpoint set via [NewEndpoints], and configures the underlying
// HTTP client with the request timeout.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a valid URL.
func NewHTTPServerAdapter(cfg *config.ClientConfig, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid api base url: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	return &httpServerAdapter{
		client:    client,
		endpoints: NewEndpoints(baseURL, logger),
		channel:   cfg.Channel,
		logger:    logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Chat implements [ServerAdapter]. It POSTs the chat request to the derived
// chat endpoint. The adapter's channel is filled in when the request carries
// none, so replies keep the terminal conversation history separate from the
// web one.
func (h *httpServerAdapter) Chat(ctx context.Context, req models.ChatRequest) (models.ChatResponse, error) {
	if req.Channel == "" {
		req.Channel = h.channel
	}

	var chatResp models.ChatResponse
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&chatResp).
		Post(h.endpoints.Chat)
	if err != nil {
		return models.ChatResponse{}, fmt.Errorf("chat request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ChatResponse{}, err
	}

	return chatResp, nil
}

// FilterOptions implements [ServerAdapter]. It GETs the filter-options
// endpoint and returns the decoded option set.
func (h *httpServerAdapter) FilterOptions(ctx context.Context) (models.FilterOptions, error) {
	var options models.FilterOptions
	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&options).
		Get(h.endpoints.FilterOptions)
	if err != nil {
		return models.FilterOptions{}, fmt.Errorf("filter options request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.FilterOptions{}, err
	}

	return options, nil
}

// Stats implements [ServerAdapter]. It GETs the stats endpoint and returns
// the decoded catalog aggregates.
func (h *httpServerAdapter) Stats(ctx context.Context) (models.CatalogStats, error) {
	var stats models.CatalogStats
	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&stats).
		Get(h.endpoints.Stats)
	if err != nil {
		return models.CatalogStats{}, fmt.Errorf("stats request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.CatalogStats{}, err
	}

	return stats, nil
}

// Status implements [ServerAdapter]. It GETs /api/status on the configured
// base and returns the process status line the client banner renders.
func (h *httpServerAdapter) Status(ctx context.Context) (models.StatusResponse, error) {
	var status models.StatusResponse
	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&status).
		Get("/api/status")
	if err != nil {
		return models.StatusResponse{}, fmt.Errorf("status request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.StatusResponse{}, err
	}

	return status, nil
}

// Health implements [ServerAdapter]. It GETs /health on the configured base.
func (h *httpServerAdapter) Health(ctx context.Context) (models.HealthResponse, error) {
	var health models.HealthResponse
	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&health).
		Get("/health")
	if err != nil {
		return models.HealthResponse{}, fmt.Errorf("health request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.HealthResponse{}, err
	}

	return health, nil
}
