package adapter

import "errors"

// Sentinel errors mapped from HTTP status codes by mapHTTPError.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")
)

// Assistant backend errors.
var (
	// ErrNoAssistantKeys is returned when no Gemini API key is configured.
	ErrNoAssistantKeys = errors.New("no assistant api keys configured")

	// ErrAssistantUnavailable is returned when every configured API key
	// failed; the caller should serve [FallbackResponse] instead.
	ErrAssistantUnavailable = errors.New("assistant backend unavailable")
)
