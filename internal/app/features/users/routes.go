// internal/app/features/users/routes.go
package users

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter that serves the user directory endpoints.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeList)            // mounted under /users
	r.Get("/export.csv", h.ServeExport)
	r.Get("/{id}", h.ServeDetail)
	return r
}
