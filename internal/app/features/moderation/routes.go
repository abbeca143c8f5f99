// internal/app/features/moderation/routes.go
package moderation

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter that serves the community moderation
// endpoints.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/discussions", h.ServeDiscussions) // mounted under /community
	r.Delete("/discussions/{id}", h.DeleteDiscussion)
	r.Get("/groups", h.ServeGroups)
	r.Delete("/groups/{id}", h.DeleteGroup)
	r.Get("/stats", h.ServeStats)
	return r
}
