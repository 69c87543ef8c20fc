package models

// PropertyList is the envelope for catalog listing/search responses.
type PropertyList struct {
	Total      int           `json:"total"`
	Properties []Property    `json:"properties"`
	Filters    *SearchFilter `json:"filters,omitempty"`
}

// StatusResponse is the body of GET /api/status.
type StatusResponse struct {
	Status        string  `json:"status"`
	UptimeSeconds float64 `json:"uptime_seconds"`
	TotalRequests int64   `json:"total_requests"`
	GeminiCalls   int64   `json:"gemini_calls"`
	SearchQueries int64   `json:"search_queries"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status        string `json:"status"`
	Message       string `json:"message"`
	TotalContacts int    `json:"total_contactos"`
	Timestamp     string `json:"timestamp"`
}

// SavedResponse acknowledges a persisted contact.
type SavedResponse struct {
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// ErrorResponse is the JSON error envelope used by every endpoint.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ContactList is the envelope for the admin contact listing.
type ContactList struct {
	Total    int       `json:"total"`
	Contacts []Contact `json:"contactos"`
}

// ClearedResponse reports how many contacts a bulk delete removed.
type ClearedResponse struct {
	Deleted int `json:"eliminados"`
}

// AdminLoginRequest is the body of POST /api/admin/login.
type AdminLoginRequest struct {
	Token string `json:"token"`
}

// AdminLoginResponse carries the issued admin session JWT.
type AdminLoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
