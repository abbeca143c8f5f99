package analyticsqueries

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	userstore "github.com/serenity-app/serenity-admin/internal/app/store/users"
	wellnessstore "github.com/serenity-app/serenity-admin/internal/app/store/wellness"
	"github.com/serenity-app/serenity-admin/internal/domain/models"
)

// MongoFetcher satisfies Fetcher by composing the user and wellness stores.
type MongoFetcher struct {
	users *userstore.Store
	*wellnessstore.Store
}

func NewMongoFetcher(db *mongo.Database) *MongoFetcher {
	return &MongoFetcher{
		users: userstore.New(db),
		Store: wellnessstore.New(db),
	}
}

func (f *MongoFetcher) Users(ctx context.Context) ([]models.User, error) {
	return f.users.List(ctx)
}
