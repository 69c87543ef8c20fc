package models

import (
	"encoding/json"
	"time"
)

// ChatRequest is the body of POST /api/chat.
type ChatRequest struct {
	// Message is the user's free-form text. Must be non-empty.
	Message string `json:"message"`

	// Channel identifies the conversation source ("web", "whatsapp",
	// "tui", ...). Defaults to "web" when absent. History and reply tone
	// are per-channel.
	Channel string `json:"channel"`

	// Filters are the search criteria currently selected in the UI.
	// Filters detected in Message override these field by field.
	Filters *SearchFilter `json:"filters,omitempty"`

	// PreviousContext is an opaque blob the front end round-trips so the
	// greeting short-circuit only fires on a first contact.
	PreviousContext json.RawMessage `json:"contexto_anterior,omitempty"`

	FollowUp bool `json:"es_seguimiento,omitempty"`
}

// ChatResponse is the body returned by POST /api/chat.
type ChatResponse struct {
	// Response is the assistant's reply text.
	Response string `json:"response"`

	// ResultsCount is the number of matched listings, or null when no
	// search was performed.
	ResultsCount *int `json:"results_count"`

	SearchPerformed bool `json:"search_performed"`

	// Properties carries the matched listings so the UI can render them
	// as cards; the reply text deliberately does not enumerate them.
	Properties []Property `json:"propiedades"`
}

// ConversationEntry is one logged chat exchange.
type ConversationEntry struct {
	ID              int64         `json:"id,omitempty"`
	Timestamp       time.Time     `json:"timestamp"`
	Channel         string        `json:"channel"`
	UserMessage     string        `json:"user_message"`
	BotResponse     string        `json:"bot_response"`
	ResponseTime    time.Duration `json:"response_time"`
	SearchPerformed bool          `json:"search_performed"`
	ResultsCount    int           `json:"results_count"`
}
