// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// WAFFLE's CoreConfig handles framework-level settings (ports, TLS, log
// level, CORS); AppConfig is everything specific to the admin dashboard.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI      string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase string // Database name within MongoDB

	// Session management configuration
	SessionKey    string // Secret key for signing session cookies (must be strong in production)
	SessionDomain string // Cookie domain (blank means current host)

	// Admin access control. Only these emails may hold a dashboard
	// session, whichever sign-in method they use.
	AdminEmails string // comma-separated allow-list

	// Google OAuth configuration
	GoogleClientID     string
	GoogleClientSecret string

	// Firebase bearer-token sign-in (optional; empty disables it)
	FirebaseCredentialsJSON string

	// Base URL of this service, for OAuth callbacks
	BaseURL string // e.g., "https://admin-api.serenity.app"
	// FrontendURL is where browsers land after the OAuth dance
	FrontendURL string // e.g., "https://admin.serenity.app"

	// Analytics aggregation tuning
	AnalyticsWorkers  int           // concurrent (user, collection) fetches
	AnalyticsCacheTTL time.Duration // max staleness of a served snapshot

	// Audit logging settings: "all", "db", "log", or "off"
	AuditLogAuth  string
	AuditLogAdmin string

	// Bootstrap admin account, created on startup when both are set
	BootstrapAdminEmail    string
	BootstrapAdminPassword string
}
