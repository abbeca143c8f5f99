// Package wellnessstore reads the per-user wellness record collections
// (assessments, AI chat turns, journal entries, goals), each scoped by the
// owning user's ID.
//
// Journal entries live in "journal_entries"; older app versions wrote to
// "journals". JournalFallback reads the legacy collection so the analytics
// loader can probe it when the primary name yields nothing. This is a
// compatibility shim for an unfinished upstream migration, not a pattern
// to extend to other collections.
package wellnessstore

import (
	"context"

	"github.com/serenity-app/serenity-admin/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type Store struct {
	db *mongo.Database
}

func New(db *mongo.Database) *Store {
	return &Store{db: db}
}

// Assessments returns all assessments owned by userID, in store order.
func (s *Store) Assessments(ctx context.Context, userID primitive.ObjectID) ([]models.Assessment, error) {
	var out []models.Assessment
	if err := s.findByUser(ctx, "assessments", userID, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ChatTurns returns all AI chat turns owned by userID, in store order.
func (s *Store) ChatTurns(ctx context.Context, userID primitive.ObjectID) ([]models.AIChatTurn, error) {
	var out []models.AIChatTurn
	if err := s.findByUser(ctx, "ai_chats", userID, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// JournalEntries returns journal entries from the primary collection.
func (s *Store) JournalEntries(ctx context.Context, userID primitive.ObjectID) ([]models.JournalEntry, error) {
	var out []models.JournalEntry
	if err := s.findByUser(ctx, "journal_entries", userID, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// JournalFallback returns journal entries from the legacy "journals"
// collection.
func (s *Store) JournalFallback(ctx context.Context, userID primitive.ObjectID) ([]models.JournalEntry, error) {
	var out []models.JournalEntry
	if err := s.findByUser(ctx, "journals", userID, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Goals returns all goals owned by userID, in store order.
func (s *Store) Goals(ctx context.Context, userID primitive.ObjectID) ([]models.Goal, error) {
	var out []models.Goal
	if err := s.findByUser(ctx, "goals", userID, &out); err != nil {
		return nil, err
	}
	for i := range out {
		out[i].Normalize()
	}
	return out, nil
}

func (s *Store) findByUser(ctx context.Context, collection string, userID primitive.ObjectID, out interface{}) error {
	cur, err := s.db.Collection(collection).Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return err
	}
	defer cur.Close(ctx)
	return cur.All(ctx, out)
}
