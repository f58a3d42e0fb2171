package http

import (
	"net/http"

	"github.com/MKhiriev/go-secure-url/internal/utils"
)

// withUserAgent records the User-Agent of every authenticated request.
// It must run after auth or loginRequired.
func (h *Handler) withUserAgent(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if userID, ok := utils.GetUserIDFromContext(r.Context()); ok {
			h.services.UserAgentService.Record(r.Context(), userID, r.UserAgent())
		}

		next.ServeHTTP(w, r)
	})
}
