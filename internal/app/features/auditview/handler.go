// internal/app/features/auditview/handler.go
//
// Package auditview exposes the recent audit trail so admins can review
// sign-ins and moderation actions without database access.
package auditview

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	uierrors "github.com/serenity-app/serenity-admin/internal/app/features/errors"
	"github.com/serenity-app/serenity-admin/internal/app/store/audit"
	"github.com/serenity-app/serenity-admin/internal/app/system/timeouts"
	"go.uber.org/zap"
)

const (
	defaultLimit = 50
	maxLimit     = 500
)

// EventStore is the read surface the viewer needs.
type EventStore interface {
	Recent(ctx context.Context, limit int64) ([]audit.Event, error)
}

type Handler struct {
	Events EventStore
	ErrLog *uierrors.ErrorLogger
}

func NewHandler(events EventStore, logger *zap.Logger) *Handler {
	return &Handler{
		Events: events,
		ErrLog: uierrors.NewErrorLogger(logger),
	}
}

type eventView struct {
	EventID       string            `json:"event_id"`
	Timestamp     string            `json:"timestamp"`
	Category      string            `json:"category"`
	EventType     string            `json:"event_type"`
	ActorEmail    string            `json:"actor_email,omitempty"`
	TargetID      string            `json:"target_id,omitempty"`
	IP            string            `json:"ip,omitempty"`
	Success       bool              `json:"success"`
	FailureReason string            `json:"failure_reason,omitempty"`
	Details       map[string]string `json:"details,omitempty"`
}

// ServeList handles GET /audit?limit=. Events arrive newest first.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium)
	defer cancel()

	limit := defaultLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			h.ErrLog.BadRequest(w, "Invalid limit.", err)
			return
		}
		if n > maxLimit {
			n = maxLimit
		}
		limit = n
	}

	events, err := h.Events.Recent(ctx, int64(limit))
	if err != nil {
		h.ErrLog.Internal(w, "Could not load the audit trail.", err)
		return
	}

	views := make([]eventView, 0, len(events))
	for _, e := range events {
		views = append(views, eventView{
			EventID:       e.EventID,
			Timestamp:     e.Timestamp.UTC().Format("2006-01-02T15:04:05Z07:00"),
			Category:      e.Category,
			EventType:     e.EventType,
			ActorEmail:    e.ActorEmail,
			TargetID:      e.TargetID,
			IP:            e.IP,
			Success:       e.Success,
			FailureReason: e.FailureReason,
			Details:       e.Details,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string][]eventView{"events": views})
}
