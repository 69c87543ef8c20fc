package http

import "net/http"

// countRequests feeds the request counter exposed by GET /api/status.
func (h *Handler) countRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.services.Metrics.CountRequest()
		next.ServeHTTP(w, r)
	})
}
