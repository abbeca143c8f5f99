// internal/domain/models/community.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Discussion is a community discussion thread.
type Discussion struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Category    string             `bson:"category" json:"category"`

	MessageCount int       `bson:"message_count" json:"message_count"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}

// SupportGroup is a peer support group.
type SupportGroup struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description" json:"description"`
	Category    string             `bson:"category" json:"category"`
	Tags        []string           `bson:"tags" json:"tags"`

	MemberCount int       `bson:"member_count" json:"member_count"`
	IsAnonymous bool      `bson:"is_anonymous" json:"is_anonymous"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}

// Normalize gives Tags its documented "missing" representation (an empty
// slice, never nil) so JSON consumers always see an array.
func (g *SupportGroup) Normalize() {
	if g.Tags == nil {
		g.Tags = []string{}
	}
	if g.MemberCount < 0 {
		g.MemberCount = 0
	}
}
