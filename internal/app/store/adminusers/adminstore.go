// internal/app/store/adminusers/adminstore.go
package adminstore

import (
	"context"
	"errors"
	"strings"
	"time"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/serenity-app/serenity-admin/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrDuplicateEmail is returned when creating an admin whose email already exists.
var ErrDuplicateEmail = errors.New("an admin with this email already exists")

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("admin_users")}
}

// GetByEmail looks up an admin by case-insensitive email.
// Returns mongo.ErrNoDocuments if not found.
func (s *Store) GetByEmail(ctx context.Context, email string) (models.AdminUser, error) {
	var a models.AdminUser
	err := s.c.FindOne(ctx, bson.M{"email": normalizeEmail(email)}).Decode(&a)
	if err != nil {
		return models.AdminUser{}, err
	}
	return a, nil
}

// Create inserts a new admin account after normalizing its email.
func (s *Store) Create(ctx context.Context, a models.AdminUser) (models.AdminUser, error) {
	now := time.Now().UTC()
	a.ID = primitive.NewObjectID()
	a.Email = normalizeEmail(a.Email)
	a.CreatedAt = now
	a.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, a); err != nil {
		if wafflemongo.IsDup(err) {
			return models.AdminUser{}, ErrDuplicateEmail
		}
		return models.AdminUser{}, err
	}
	return a, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
