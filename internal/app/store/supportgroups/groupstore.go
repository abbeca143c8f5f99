// internal/app/store/supportgroups/groupstore.go
package groupstore

import (
	"context"

	"github.com/serenity-app/serenity-admin/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("support_groups")}
}

// List returns all support groups in the store's native order.
func (s *Store) List(ctx context.Context) ([]models.SupportGroup, error) {
	cur, err := s.c.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var groups []models.SupportGroup
	if err := cur.All(ctx, &groups); err != nil {
		return nil, err
	}
	for i := range groups {
		groups[i].Normalize()
	}
	return groups, nil
}

// Delete removes a support group by ID.
// Returns the number of documents deleted (0 or 1).
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
