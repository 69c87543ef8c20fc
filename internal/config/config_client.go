package config

import (
	"fmt"
	"strings"
	"time"
)

// ClientConfig is the configuration for the terminal chat client. It is
// deliberately small: the client only needs to know where the API lives,
// which conversation channel to report, and how long to wait for replies.
type ClientConfig struct {
	// BaseURL is the root address of the deployed API, without a trailing
	// slash. Endpoint URLs are derived from it by the transport adapter.
	// Env: API_BASE_URL
	BaseURL string `env:"API_BASE_URL"`

	// Channel is the conversation channel reported on every chat call.
	// Env: CLIENT_CHANNEL
	Channel string `env:"CLIENT_CHANNEL"`

	// RequestTimeout is the per-call deadline for outbound requests.
	// Env: CLIENT_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"CLIENT_REQUEST_TIMEOUT"`
}

// GetClientConfig builds and validates the terminal-client configuration.
//
// It reads environment variables, falls back to built-in defaults for any
// unset field (the production base URL, the "tui" channel, a 30s timeout),
// and validates the result.
func GetClientConfig() (*ClientConfig, error) {
	clientCfg := &ClientConfig{}
	if err := parseEnv(clientCfg); err != nil {
		return nil, fmt.Errorf("error get client config: %w", err)
	}

	if clientCfg.BaseURL == "" {
		clientCfg.BaseURL = DefaultBaseURL
	}
	clientCfg.BaseURL = strings.TrimRight(clientCfg.BaseURL, "/")

	if clientCfg.Channel == "" {
		clientCfg.Channel = "tui"
	}

	if clientCfg.RequestTimeout == 0 {
		clientCfg.RequestTimeout = 30 * time.Second
	}

	return clientCfg, clientCfg.validate()
}
