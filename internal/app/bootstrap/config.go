// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"time"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/serenity-app/serenity-admin/internal/app/system/adminlist"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for the admin dashboard.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, admin_emails, etc.
//   - Environment variables: SERENITY_MONGO_URI, SERENITY_ADMIN_EMAILS, etc.
//   - Command-line flags: --mongo_uri, --admin_emails, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "serenity", Desc: "MongoDB database name"},

	{Name: "session_key", Default: "dev-only-change-me-please-0123456789ABCDEF", Desc: "Session signing key (must be strong in production)"},
	{Name: "session_domain", Default: "", Desc: "Session cookie domain (blank means current host)"},

	// Admin access control
	{Name: "admin_emails", Default: "", Desc: "Comma-separated emails allowed to use the dashboard"},

	// Google OAuth configuration
	{Name: "google_client_id", Default: "", Desc: "Google OAuth2 client ID"},
	{Name: "google_client_secret", Default: "", Desc: "Google OAuth2 client secret"},

	// Firebase bearer-token sign-in
	{Name: "firebase_credentials_json", Default: "", Desc: "Firebase service-account JSON (enables bearer-token sign-in)"},

	// URLs
	{Name: "base_url", Default: "http://localhost:8080", Desc: "Base URL of this service, for OAuth callbacks"},
	{Name: "frontend_url", Default: "http://localhost:3000", Desc: "Dashboard frontend URL, for post-OAuth redirects"},

	// Analytics aggregation tuning
	{Name: "analytics_workers", Default: 4, Desc: "Concurrent fetches during the analytics aggregation"},
	{Name: "analytics_cache_ttl", Default: "5m", Desc: "Max staleness of a served analytics snapshot (e.g., 5m, 30s)"},

	// Audit logging settings
	{Name: "audit_log_auth", Default: "all", Desc: "Auth event logging: 'all' (db+log), 'db', 'log', or 'off'"},
	{Name: "audit_log_admin", Default: "all", Desc: "Admin event logging: 'all' (db+log), 'db', 'log', or 'off'"},

	// Bootstrap admin account
	{Name: "bootstrap_admin_email", Default: "", Desc: "Email of the initial admin account (created on startup)"},
	{Name: "bootstrap_admin_password", Default: "", Desc: "Password of the initial admin account"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig handles:
//   - Loading from .env files
//   - Loading from config.yaml/json/toml files
//   - Reading environment variables (WAFFLE_* for core, SERENITY_* for app)
//   - Parsing command-line flags
//   - Merging with precedence: flags > env > files > defaults
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "SERENITY", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:      appValues.String("mongo_uri"),
		MongoDatabase: appValues.String("mongo_database"),

		SessionKey:    appValues.String("session_key"),
		SessionDomain: appValues.String("session_domain"),

		AdminEmails: appValues.String("admin_emails"),

		GoogleClientID:     appValues.String("google_client_id"),
		GoogleClientSecret: appValues.String("google_client_secret"),

		FirebaseCredentialsJSON: appValues.String("firebase_credentials_json"),

		BaseURL:     appValues.String("base_url"),
		FrontendURL: appValues.String("frontend_url"),

		AnalyticsWorkers:  appValues.Int("analytics_workers"),
		AnalyticsCacheTTL: appValues.Duration("analytics_cache_ttl", 5*time.Minute),

		AuditLogAuth:  appValues.String("audit_log_auth"),
		AuditLogAdmin: appValues.String("audit_log_admin"),

		BootstrapAdminEmail:    appValues.String("bootstrap_admin_email"),
		BootstrapAdminPassword: appValues.String("bootstrap_admin_password"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// The MongoDB URI is checked up front so a typo fails startup instead of
// the first request. An empty allow-list would lock every admin out, so it
// is also a startup error.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}

	if adminlist.Parse(appCfg.AdminEmails).Len() == 0 {
		return fmt.Errorf("admin_emails is empty; no one could sign in")
	}

	if appCfg.BootstrapAdminEmail != "" && appCfg.BootstrapAdminPassword == "" {
		return fmt.Errorf("bootstrap_admin_email is set but bootstrap_admin_password is empty")
	}

	return nil
}
