// internal/app/features/auditview/routes.go
package auditview

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter that serves the audit trail viewer.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeList) // mounted under /audit
	return r
}
