// internal/app/features/moderation/handler.go
package moderation

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	uierrors "github.com/serenity-app/serenity-admin/internal/app/features/errors"
	"github.com/serenity-app/serenity-admin/internal/app/store/audit"
	"github.com/serenity-app/serenity-admin/internal/app/system/auditlog"
	"github.com/serenity-app/serenity-admin/internal/app/system/auth"
	"github.com/serenity-app/serenity-admin/internal/app/system/htmlsanitize"
	"github.com/serenity-app/serenity-admin/internal/app/system/stats"
	"github.com/serenity-app/serenity-admin/internal/app/system/timeouts"
	"github.com/serenity-app/serenity-admin/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// DiscussionStore / GroupStore are the store slices moderation needs.
// Delete reports how many documents the database actually removed; the
// handler treats zero as "already gone".
type DiscussionStore interface {
	List(ctx context.Context) ([]models.Discussion, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
}

type GroupStore interface {
	List(ctx context.Context) ([]models.SupportGroup, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
}

type Handler struct {
	Discussions DiscussionStore
	Groups      GroupStore
	AuditLog    *auditlog.Logger
	ErrLog      *uierrors.ErrorLogger
	Log         *zap.Logger
}

func NewHandler(discussions DiscussionStore, groups GroupStore, auditLog *auditlog.Logger, logger *zap.Logger) *Handler {
	return &Handler{
		Discussions: discussions,
		Groups:      groups,
		AuditLog:    auditLog,
		ErrLog:      uierrors.NewErrorLogger(logger),
		Log:         logger,
	}
}

/*─────────────────────────────────────────────────────────────────────────────*
| Listing                                                                      |
*─────────────────────────────────────────────────────────────────────────────*/

// ServeDiscussions handles GET /community/discussions. User-authored text
// is sanitized on the way out; the database keeps whatever users wrote.
func (h *Handler) ServeDiscussions(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium)
	defer cancel()

	discussions, err := h.Discussions.List(ctx)
	if err != nil {
		h.ErrLog.Internal(w, "Could not load discussions.", err)
		return
	}
	for i := range discussions {
		discussions[i].Title = htmlsanitize.Text(discussions[i].Title)
		discussions[i].Description = htmlsanitize.Text(discussions[i].Description)
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string][]models.Discussion{"discussions": discussions})
}

// ServeGroups handles GET /community/groups.
func (h *Handler) ServeGroups(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium)
	defer cancel()

	groups, err := h.Groups.List(ctx)
	if err != nil {
		h.ErrLog.Internal(w, "Could not load support groups.", err)
		return
	}
	for i := range groups {
		groups[i].Name = htmlsanitize.Text(groups[i].Name)
		groups[i].Description = htmlsanitize.Text(groups[i].Description)
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string][]models.SupportGroup{"groups": groups})
}

type communityStats struct {
	TotalDiscussions int `json:"total_discussions"`
	TotalGroups      int `json:"total_groups"`
	TotalMembers     int `json:"total_members"`
}

// ServeStats handles GET /community/stats.
func (h *Handler) ServeStats(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium)
	defer cancel()

	discussions, err := h.Discussions.List(ctx)
	if err != nil {
		h.ErrLog.Internal(w, "Could not load community stats.", err)
		return
	}
	groups, err := h.Groups.List(ctx)
	if err != nil {
		h.ErrLog.Internal(w, "Could not load community stats.", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(communityStats{
		TotalDiscussions: len(discussions),
		TotalGroups:      len(groups),
		TotalMembers:     stats.TotalMembers(groups),
	})
}

/*─────────────────────────────────────────────────────────────────────────────*
| Deletion                                                                     |
*─────────────────────────────────────────────────────────────────────────────*/

// DeleteDiscussion handles DELETE /community/discussions/{id}. The store
// delete runs first; the response only reports the document gone after the
// database confirms it.
func (h *Handler) DeleteDiscussion(w http.ResponseWriter, r *http.Request) {
	h.deleteOne(w, r, "discussion", audit.EventDiscussionDeleted, h.Discussions.Delete)
}

// DeleteGroup handles DELETE /community/groups/{id}.
func (h *Handler) DeleteGroup(w http.ResponseWriter, r *http.Request) {
	h.deleteOne(w, r, "support group", audit.EventSupportGroupDeleted, h.Groups.Delete)
}

func (h *Handler) deleteOne(w http.ResponseWriter, r *http.Request, kind, eventType string, del func(context.Context, primitive.ObjectID) (int64, error)) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium)
	defer cancel()

	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		h.ErrLog.BadRequest(w, "Invalid "+kind+" id.", err)
		return
	}

	deleted, err := del(ctx, id)
	if err != nil {
		h.ErrLog.Internal(w, "Could not delete "+kind+".", err,
			zap.String("id", id.Hex()))
		return
	}
	if deleted == 0 {
		h.ErrLog.NotFound(w, "The "+kind+" no longer exists.")
		return
	}

	actor := ""
	if admin, ok := auth.CurrentAdmin(r); ok {
		actor = admin.Email
	}
	h.AuditLog.Log(ctx, audit.Event{
		Category:   audit.CategoryAdmin,
		EventType:  eventType,
		ActorEmail: actor,
		TargetID:   id.Hex(),
		IP:         auditlog.ClientIP(r),
		Success:    true,
	})
	h.Log.Info("moderation delete",
		zap.String("kind", kind),
		zap.String("id", id.Hex()),
		zap.String("actor", actor))

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "deleted", "id": id.Hex()})
}
