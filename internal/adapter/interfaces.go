// Package adapter provides transport-layer abstractions for the listing
// assistant: an outbound client for the Gemini generative API and the
// client-side view of the deployed HTTP API.
//
// The [AssistantClient] abstraction decouples the chat service from the
// generative backend; the package ships a REST implementation with API key
// rotation ([NewGeminiClient]). [ServerAdapter] is consumed by the terminal
// client and talks to the endpoints derived by [NewEndpoints].
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401, [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/artarona/WORK-PAGINAWEB-IA/models"
)

// AssistantClient generates assistant reply text from a prepared prompt.
type AssistantClient interface {
	// GenerateReply sends the prompt to the generative backend and returns
	// the reply text. Returns [ErrNoAssistantKeys] when no API key is
	// configured and [ErrAssistantUnavailable] when every configured key
	// failed; callers are expected to fall back to [FallbackResponse].
	GenerateReply(ctx context.Context, prompt string) (string, error)
}

// ServerAdapter is the client-side contract of the deployed listing API.
// Implementations are responsible for serialisation and for mapping
// transport-level errors to the sentinel values defined in this package.
type ServerAdapter interface {
	// Chat posts one user message and returns the assistant's reply along
	// with any matched listings.
	Chat(ctx context.Context, req models.ChatRequest) (models.ChatResponse, error)

	// FilterOptions fetches the distinct neighborhoods and property types
	// the search form can offer.
	FilterOptions(ctx context.Context) (models.FilterOptions, error)

	// Stats fetches the aggregated catalog statistics.
	Stats(ctx context.Context) (models.CatalogStats, error)

	// Status fetches the assistant's process status and counters.
	Status(ctx context.Context) (models.StatusResponse, error)

	// Health probes the deployment health endpoint.
	Health(ctx context.Context) (models.HealthResponse, error)
}
