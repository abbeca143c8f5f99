// internal/app/features/dashboard/handler.go
package dashboard

import (
	"context"
	"encoding/json"
	"net/http"

	uierrors "github.com/serenity-app/serenity-admin/internal/app/features/errors"
	"github.com/serenity-app/serenity-admin/internal/app/system/stats"
	"github.com/serenity-app/serenity-admin/internal/app/system/timefmt"
	"github.com/serenity-app/serenity-admin/internal/app/system/timeouts"
	"github.com/serenity-app/serenity-admin/internal/domain/models"
	"go.uber.org/zap"
)

// recentLimit caps the "newest sign-ups" list on the landing view.
const recentLimit = 5

type UserLister interface {
	ListByNewest(ctx context.Context) ([]models.User, error)
}

type DiscussionLister interface {
	List(ctx context.Context) ([]models.Discussion, error)
}

type GroupLister interface {
	List(ctx context.Context) ([]models.SupportGroup, error)
}

type Handler struct {
	Users       UserLister
	Discussions DiscussionLister
	Groups      GroupLister
	ErrLog      *uierrors.ErrorLogger
	Log         *zap.Logger
}

func NewHandler(users UserLister, discussions DiscussionLister, groups GroupLister, logger *zap.Logger) *Handler {
	return &Handler{
		Users:       users,
		Discussions: discussions,
		Groups:      groups,
		ErrLog:      uierrors.NewErrorLogger(logger),
		Log:         logger,
	}
}

type recentUser struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Joined string `json:"joined"`
}

type overview struct {
	TotalUsers         int          `json:"total_users"`
	ActiveUsers        int          `json:"active_users"`
	TotalDiscussions   int          `json:"total_discussions"`
	TotalSupportGroups int          `json:"total_support_groups"`
	RecentUsers        []recentUser `json:"recent_users"`
}

// ServeOverview handles GET /dashboard.
func (h *Handler) ServeOverview(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium)
	defer cancel()

	users, err := h.Users.ListByNewest(ctx)
	if err != nil {
		h.ErrLog.Internal(w, "Could not load dashboard.", err)
		return
	}
	discussions, err := h.Discussions.List(ctx)
	if err != nil {
		h.ErrLog.Internal(w, "Could not load dashboard.", err)
		return
	}
	groups, err := h.Groups.List(ctx)
	if err != nil {
		h.ErrLog.Internal(w, "Could not load dashboard.", err)
		return
	}

	recent := make([]recentUser, 0, recentLimit)
	for _, u := range users {
		if len(recent) == recentLimit {
			break
		}
		recent = append(recent, recentUser{
			Name:   u.DisplayName(),
			Email:  u.Email,
			Joined: timefmt.FormatDate(u.CreatedAt),
		})
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(overview{
		TotalUsers:         len(users),
		ActiveUsers:        stats.ActiveUsers(users),
		TotalDiscussions:   len(discussions),
		TotalSupportGroups: len(groups),
		RecentUsers:        recent,
	})
}
