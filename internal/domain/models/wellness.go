// internal/domain/models/wellness.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// The four per-user wellness record types aggregated by analytics.
//
// UserID and UserName are denormalized copies of the owning user's identity,
// attached at load time by the aggregation loader; they are not stored.

// Assessment is a completed wellness assessment (e.g. PHQ-9, GAD-7).
type Assessment struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID   primitive.ObjectID `bson:"user_id,omitempty" json:"user_id"`
	UserName string             `bson:"-" json:"user_name"`

	Type           string     `bson:"type" json:"type"`
	Score          int        `bson:"score" json:"score"`
	Interpretation string     `bson:"interpretation" json:"interpretation"`
	Date           *time.Time `bson:"date,omitempty" json:"date,omitempty"`
	CreatedAt      time.Time  `bson:"created_at" json:"created_at"`
}

// TakenAt returns the assessment date, falling back to the creation
// timestamp when the upstream record carries no explicit date.
func (a Assessment) TakenAt() time.Time {
	if a.Date != nil && !a.Date.IsZero() {
		return *a.Date
	}
	return a.CreatedAt
}

// AIChatTurn is one turn of a user's conversation with the AI companion.
type AIChatTurn struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID   primitive.ObjectID `bson:"user_id,omitempty" json:"user_id"`
	UserName string             `bson:"-" json:"user_name"`

	Content   string     `bson:"content" json:"content"`
	Role      string     `bson:"role" json:"role"` // "user" | "assistant"
	Emotion   string     `bson:"emotion,omitempty" json:"emotion,omitempty"`
	Timestamp *time.Time `bson:"timestamp,omitempty" json:"timestamp,omitempty"`
	CreatedAt time.Time  `bson:"created_at" json:"created_at"`
}

// SentAt returns the turn's timestamp, falling back to created_at.
func (c AIChatTurn) SentAt() time.Time {
	if c.Timestamp != nil && !c.Timestamp.IsZero() {
		return *c.Timestamp
	}
	return c.CreatedAt
}

// JournalEntry is a user's journal entry.
type JournalEntry struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID   primitive.ObjectID `bson:"user_id,omitempty" json:"user_id"`
	UserName string             `bson:"-" json:"user_name"`

	Title     string    `bson:"title" json:"title"`
	Mood      string    `bson:"mood" json:"mood"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// Goal is a user-defined wellness goal with completion progress.
type Goal struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID   primitive.ObjectID `bson:"user_id,omitempty" json:"user_id"`
	UserName string             `bson:"-" json:"user_name"`

	Title     string    `bson:"title" json:"title"`
	Category  string    `bson:"category" json:"category"`
	Progress  int       `bson:"progress" json:"progress"` // 0–100
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// Normalize clamps progress into its documented 0–100 range.
func (g *Goal) Normalize() {
	if g.Progress < 0 {
		g.Progress = 0
	}
	if g.Progress > 100 {
		g.Progress = 100
	}
}
