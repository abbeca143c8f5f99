// internal/app/features/users/handler.go
package users

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	uierrors "github.com/serenity-app/serenity-admin/internal/app/features/errors"
	"github.com/serenity-app/serenity-admin/internal/app/system/csvutil"
	"github.com/serenity-app/serenity-admin/internal/app/system/search"
	"github.com/serenity-app/serenity-admin/internal/app/system/stats"
	"github.com/serenity-app/serenity-admin/internal/app/system/timefmt"
	"github.com/serenity-app/serenity-admin/internal/app/system/timeouts"
	"github.com/serenity-app/serenity-admin/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// UserStore is the slice of the users store the handlers need.
type UserStore interface {
	List(ctx context.Context) ([]models.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (models.User, error)
}

type Handler struct {
	Users  UserStore
	ErrLog *uierrors.ErrorLogger
	Log    *zap.Logger
}

func NewHandler(users UserStore, logger *zap.Logger) *Handler {
	return &Handler{
		Users:  users,
		ErrLog: uierrors.NewErrorLogger(logger),
		Log:    logger,
	}
}

// userView decorates a user with the pre-formatted date strings the
// dashboard table shows.
type userView struct {
	models.User
	Joined   string `json:"joined"`
	LastSeen string `json:"last_seen"`
}

func newUserView(u models.User) userView {
	lastSeen := timefmt.Missing
	if u.LastLogin != nil {
		lastSeen = timefmt.FormatDateTime(*u.LastLogin)
	}
	return userView{
		User:     u,
		Joined:   timefmt.FormatDate(u.CreatedAt),
		LastSeen: lastSeen,
	}
}

type listResponse struct {
	Users []userView `json:"users"`
	Stats listStats  `json:"stats"`
}

// listStats summarizes the FULL user set, not the filtered slice; the
// summary cards stay constant while the admin narrows the table.
type listStats struct {
	Total      int `json:"total"`
	Verified   int `json:"verified"`
	Unverified int `json:"unverified"`
	Active     int `json:"active"`
}

// ServeList handles GET /users?q=&status=.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium)
	defer cancel()

	all, err := h.Users.List(ctx)
	if err != nil {
		h.ErrLog.Internal(w, "Could not load users.", err)
		return
	}

	verified, unverified := stats.VerifiedPartition(all)
	filtered := search.FilterUsers(all, r.URL.Query().Get("q"), r.URL.Query().Get("status"))

	views := make([]userView, 0, len(filtered))
	for _, u := range filtered {
		views = append(views, newUserView(u))
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(listResponse{
		Users: views,
		Stats: listStats{
			Total:      len(all),
			Verified:   verified,
			Unverified: unverified,
			Active:     stats.ActiveUsers(all),
		},
	})
}

// ServeDetail handles GET /users/{id}.
func (h *Handler) ServeDetail(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short)
	defer cancel()

	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		h.ErrLog.BadRequest(w, "Invalid user id.", err)
		return
	}

	u, err := h.Users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			h.ErrLog.NotFound(w, "User not found.")
			return
		}
		h.ErrLog.Internal(w, "Could not load user.", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(newUserView(u))
}

// ServeExport handles GET /users/export.csv?q=&status=. The export honors
// the same filters as the list so admins download exactly what they see.
func (h *Handler) ServeExport(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium)
	defer cancel()

	all, err := h.Users.List(ctx)
	if err != nil {
		h.ErrLog.Internal(w, "Could not load users.", err)
		return
	}
	filtered := search.FilterUsers(all, r.URL.Query().Get("q"), r.URL.Query().Get("status"))

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="users.csv"`)
	if err := csvutil.WriteUsersCSV(w, filtered); err != nil {
		// headers are already sent; all we can do is log
		h.Log.Error("csv export failed mid-stream", zap.Error(err))
	}
}
