// internal/app/store/audit/store.go
package audit

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Event categories
const (
	CategoryAuth  = "auth"
	CategoryAdmin = "admin"
)

// Auth event types
const (
	EventLoginSuccess                 = "login_success"
	EventLoginFailedUserNotFound      = "login_failed_user_not_found"
	EventLoginFailedWrongPassword     = "login_failed_wrong_password"
	EventLoginFailedUnauthorizedEmail = "login_failed_unauthorized_email"
	EventLogout                       = "logout"
)

// Admin event types
const (
	EventDiscussionDeleted   = "discussion_deleted"
	EventSupportGroupDeleted = "support_group_deleted"
	EventAnalyticsRefreshed  = "analytics_refreshed"
)

// Event represents an audit event.
type Event struct {
	EventID   string    `bson:"event_id"`
	Timestamp time.Time `bson:"timestamp"`

	// Event classification
	Category  string `bson:"category"`
	EventType string `bson:"event_type"`

	// Who performed the action (admin email; empty on failed sign-ins of
	// unknown principals) and what it touched.
	ActorEmail string `bson:"actor_email,omitempty"`
	TargetID   string `bson:"target_id,omitempty"`

	// Context
	IP string `bson:"ip,omitempty"`

	// Outcome
	Success       bool   `bson:"success"`
	FailureReason string `bson:"failure_reason,omitempty"`

	// Additional details (varies by event type)
	Details map[string]string `bson:"details,omitempty"`
}

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("audit_log")}
}

// Insert records an event. A missing EventID or Timestamp is filled in.
func (s *Store) Insert(ctx context.Context, e Event) error {
	if e.EventID == "" {
		e.EventID = uuid.NewString()
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now().UTC()
	}
	_, err := s.c.InsertOne(ctx, e)
	return err
}

// Recent returns the newest events, most recent first.
func (s *Store) Recent(ctx context.Context, limit int64) ([]Event, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(limit)
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var events []Event
	if err := cur.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}
