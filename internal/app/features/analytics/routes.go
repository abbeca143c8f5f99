// internal/app/features/analytics/routes.go
package analytics

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter that serves the analytics endpoints.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeAnalytics) // mounted under /analytics
	r.Post("/refresh", h.ServeRefresh)
	return r
}
