// internal/app/bootstrap/routes.go
package bootstrap

import (
	"context"
	"net/http"

	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	analyticsfeature "github.com/serenity-app/serenity-admin/internal/app/features/analytics"
	auditviewfeature "github.com/serenity-app/serenity-admin/internal/app/features/auditview"
	authgooglefeature "github.com/serenity-app/serenity-admin/internal/app/features/authgoogle"
	dashboardfeature "github.com/serenity-app/serenity-admin/internal/app/features/dashboard"
	healthfeature "github.com/serenity-app/serenity-admin/internal/app/features/health"
	loginfeature "github.com/serenity-app/serenity-admin/internal/app/features/login"
	logoutfeature "github.com/serenity-app/serenity-admin/internal/app/features/logout"
	moderationfeature "github.com/serenity-app/serenity-admin/internal/app/features/moderation"
	usersfeature "github.com/serenity-app/serenity-admin/internal/app/features/users"

	adminstore "github.com/serenity-app/serenity-admin/internal/app/store/adminusers"
	"github.com/serenity-app/serenity-admin/internal/app/store/audit"
	discussionstore "github.com/serenity-app/serenity-admin/internal/app/store/discussions"
	"github.com/serenity-app/serenity-admin/internal/app/store/queries/analyticsqueries"
	groupstore "github.com/serenity-app/serenity-admin/internal/app/store/supportgroups"
	userstore "github.com/serenity-app/serenity-admin/internal/app/store/users"

	"github.com/serenity-app/serenity-admin/internal/app/system/adminlist"
	"github.com/serenity-app/serenity-admin/internal/app/system/auditlog"
	"github.com/serenity-app/serenity-admin/internal/app/system/auth"
	"github.com/serenity-app/serenity-admin/internal/app/system/fireauth"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed.
//
// Everything except /health and the sign-in endpoints sits behind
// RequireAdmin; the allow-list was already enforced when the session (or
// bearer token) was established.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	secure := coreCfg.Env == "prod"
	if err := auth.InitSessionStore(appCfg.SessionKey, appCfg.SessionDomain, secure, logger); err != nil {
		logger.Error("session store init failed", zap.Error(err))
		return nil, err
	}

	allowed := adminlist.Parse(appCfg.AdminEmails)
	logger.Info("admin allow-list loaded", zap.Int("emails", allowed.Len()))

	auditStore := audit.New(deps.MongoDatabase)
	auditLog := auditlog.New(auditStore, logger, auditlog.Config{
		Auth:  appCfg.AuditLogAuth,
		Admin: appCfg.AuditLogAdmin,
	})

	// Stores
	users := userstore.New(deps.MongoDatabase)
	discussions := discussionstore.New(deps.MongoDatabase)
	groups := groupstore.New(deps.MongoDatabase)
	admins := adminstore.New(deps.MongoDatabase)

	loader := analyticsqueries.NewLoader(
		analyticsqueries.NewMongoFetcher(deps.MongoDatabase),
		logger,
		appCfg.AnalyticsWorkers,
	)

	r := chi.NewRouter()

	// Global auth middleware: loads the admin into context if signed in.
	r.Use(auth.LoadSessionAdmin)

	// Optional Firebase bearer-token sign-in; nil when not configured.
	verifier, err := fireauth.New(context.Background(), appCfg.FirebaseCredentialsJSON, allowed, logger)
	if err != nil {
		logger.Error("firebase auth init failed", zap.Error(err))
		return nil, err
	}
	if verifier != nil {
		r.Use(verifier.Middleware)
		logger.Info("firebase bearer-token sign-in enabled")
	}

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Authentication
	loginHandler := loginfeature.NewHandler(admins, allowed, auditLog, logger)
	r.Mount("/login", loginfeature.Routes(loginHandler))

	logoutHandler := logoutfeature.NewHandler(auditLog, logger)
	r.Mount("/logout", logoutfeature.Routes(logoutHandler))

	googleHandler := authgooglefeature.NewHandler(allowed, auditLog,
		appCfg.GoogleClientID, appCfg.GoogleClientSecret,
		appCfg.BaseURL, appCfg.FrontendURL, logger)
	r.Mount("/auth/google", authgooglefeature.Routes(googleHandler))

	// Admin-only surface
	r.Group(func(r chi.Router) {
		r.Use(auth.RequireAdmin)

		dashboardHandler := dashboardfeature.NewHandler(users, discussions, groups, logger)
		r.Mount("/dashboard", dashboardfeature.Routes(dashboardHandler))

		usersHandler := usersfeature.NewHandler(users, logger)
		r.Mount("/users", usersfeature.Routes(usersHandler))

		moderationHandler := moderationfeature.NewHandler(discussions, groups, auditLog, logger)
		r.Mount("/community", moderationfeature.Routes(moderationHandler))

		analyticsHandler := analyticsfeature.NewHandler(loader, appCfg.AnalyticsCacheTTL, auditLog, logger)
		r.Mount("/analytics", analyticsfeature.Routes(analyticsHandler))

		auditViewHandler := auditviewfeature.NewHandler(auditStore, logger)
		r.Mount("/audit", auditviewfeature.Routes(auditViewHandler))
	})

	return r, nil
}
