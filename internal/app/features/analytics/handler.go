// internal/app/features/analytics/handler.go
package analytics

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	uierrors "github.com/serenity-app/serenity-admin/internal/app/features/errors"
	"github.com/serenity-app/serenity-admin/internal/app/store/audit"
	"github.com/serenity-app/serenity-admin/internal/app/store/queries/analyticsqueries"
	"github.com/serenity-app/serenity-admin/internal/app/system/auditlog"
	"github.com/serenity-app/serenity-admin/internal/app/system/auth"
	"github.com/serenity-app/serenity-admin/internal/app/system/stats"
	"github.com/serenity-app/serenity-admin/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// DefaultCacheTTL bounds how stale a served snapshot may be. The
// aggregation touches four collections per user, so it is not recomputed
// on every page view; admins who need fresh numbers POST /refresh.
const DefaultCacheTTL = 5 * time.Minute

// SnapshotLoader runs the aggregation; *analyticsqueries.Loader in
// production.
type SnapshotLoader interface {
	Load(ctx context.Context) (*analyticsqueries.Snapshot, error)
}

type Handler struct {
	Loader   SnapshotLoader
	TTL      time.Duration
	AuditLog *auditlog.Logger
	ErrLog   *uierrors.ErrorLogger
	Log      *zap.Logger

	mu     sync.Mutex
	cached *analyticsqueries.Snapshot
}

func NewHandler(loader SnapshotLoader, ttl time.Duration, auditLog *auditlog.Logger, logger *zap.Logger) *Handler {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &Handler{
		Loader:   loader,
		TTL:      ttl,
		AuditLog: auditLog,
		ErrLog:   uierrors.NewErrorLogger(logger),
		Log:      logger,
	}
}

type summary struct {
	TotalUsers       int    `json:"total_users"`
	TotalAssessments int    `json:"total_assessments"`
	AverageScore     string `json:"average_score"`
	TotalChatTurns   int    `json:"total_chat_turns"`
	TotalJournals    int    `json:"total_journals"`
	TotalGoals       int    `json:"total_goals"`
	AverageProgress  string `json:"average_progress"`
}

type response struct {
	Summary summary `json:"summary"`
	*analyticsqueries.Snapshot
	Cached bool `json:"cached"`
}

// ServeAnalytics handles GET /analytics, serving the cached snapshot while
// it is younger than TTL and reloading otherwise.
func (h *Handler) ServeAnalytics(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	snap := h.cached
	h.mu.Unlock()

	if snap != nil && time.Since(snap.LoadedAt) < h.TTL {
		h.render(w, snap, true)
		return
	}
	h.loadAndRender(w, r)
}

// ServeRefresh handles POST /analytics/refresh: an unconditional reload
// that replaces the cache.
func (h *Handler) ServeRefresh(w http.ResponseWriter, r *http.Request) {
	if !h.loadAndRender(w, r) {
		return
	}

	actor := ""
	if admin, ok := auth.CurrentAdmin(r); ok {
		actor = admin.Email
	}
	h.AuditLog.Log(r.Context(), audit.Event{
		Category:   audit.CategoryAdmin,
		EventType:  audit.EventAnalyticsRefreshed,
		ActorEmail: actor,
		IP:         auditlog.ClientIP(r),
		Success:    true,
	})
}

// loadAndRender runs the aggregation and serves the result, reporting
// whether it succeeded. On failure any previously cached snapshot is kept:
// stale numbers beat no numbers, and the next GET retries anyway.
func (h *Handler) loadAndRender(w http.ResponseWriter, r *http.Request) bool {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long)
	defer cancel()

	start := time.Now()
	snap, err := h.Loader.Load(ctx)
	if err != nil {
		h.ErrLog.Internal(w, "Could not load analytics.", err)
		return false
	}
	h.Log.Info("analytics snapshot loaded",
		zap.Int("users", len(snap.Users)),
		zap.Duration("took", time.Since(start)))

	h.mu.Lock()
	h.cached = snap
	h.mu.Unlock()

	h.render(w, snap, false)
	return true
}

func (h *Handler) render(w http.ResponseWriter, snap *analyticsqueries.Snapshot, cached bool) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(response{
		Summary: summary{
			TotalUsers:       len(snap.Users),
			TotalAssessments: len(snap.Assessments),
			AverageScore:     stats.AverageScore(snap.Assessments),
			TotalChatTurns:   len(snap.ChatTurns),
			TotalJournals:    len(snap.Journals),
			TotalGoals:       len(snap.Goals),
			AverageProgress:  stats.AverageProgress(snap.Goals),
		},
		Snapshot: snap,
		Cached:   cached,
	})
}
