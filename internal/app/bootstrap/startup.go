// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dalemusser/waffle/config"
	adminstore "github.com/serenity-app/serenity-admin/internal/app/store/adminusers"
	"github.com/serenity-app/serenity-admin/internal/domain/models"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Startup runs one-time application initialization after DB connections and
// schema setup are complete, but before the HTTP handler is built.
//
// The dashboard seeds its initial admin account here so a fresh deployment
// can be signed into without manual database edits. Re-running against an
// existing account is a no-op.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if appCfg.BootstrapAdminEmail == "" {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(appCfg.BootstrapAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash bootstrap admin password: %w", err)
	}

	store := adminstore.New(deps.MongoDatabase)
	email := strings.ToLower(strings.TrimSpace(appCfg.BootstrapAdminEmail))
	_, err = store.Create(ctx, models.AdminUser{
		Name:         "Administrator",
		Email:        email,
		PasswordHash: string(hash),
	})
	switch {
	case err == nil:
		logger.Info("bootstrap admin account created", zap.String("email", email))
	case errors.Is(err, adminstore.ErrDuplicateEmail):
		logger.Debug("bootstrap admin account already exists", zap.String("email", email))
	default:
		return fmt.Errorf("create bootstrap admin: %w", err)
	}
	return nil
}
