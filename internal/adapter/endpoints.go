package adapter

import (
	"strings"

	"github.com/artarona/WORK-PAGINAWEB-IA/internal/logger"
)

// Endpoint path suffixes appended to the configured base URL.
const (
	chatPath          = "/api/chat"
	filterOptionsPath = "/api/properties/filter-options"
	statsPath         = "/api/properties/stats"
)

// Endpoints holds the absolute API URLs the client consumes. All three are
// derived from a single base URL by plain concatenation.
type Endpoints struct {
	Chat          string
	FilterOptions string
	Stats         string
}

// NewEndpoints derives the endpoint URLs from baseURL. A trailing slash on
// the base is stripped so the suffixes never produce double slashes.
//
// The resolved base is logged exactly once so deployment mixups (pointing a
// client at the wrong environment) show up immediately in the client log.
func NewEndpoints(baseURL string, log *logger.Logger) Endpoints {
	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")

	log.Info().Str("base_url", base).Msg("api endpoints resolved")

	return Endpoints{
		Chat:          base + chatPath,
		FilterOptions: base + filterOptionsPath,
		Stats:         base + statsPath,
	}
}
