// internal/domain/models/user.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a registered end user of the wellness app.
//
// Documents come from an external backend that does not enforce a schema,
// so every optional field carries an explicit default applied by Normalize
// at the store boundary rather than at each call site.
type User struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name          string             `bson:"name" json:"name"`
	NameCI        string             `bson:"name_ci,omitempty" json:"-"` // lowercase, diacritics-stripped
	Email         string             `bson:"email" json:"email"`
	EmailVerified bool               `bson:"email_verified" json:"email_verified"`
	WellnessScore int                `bson:"wellness_score" json:"wellness_score"` // 0–100
	Streak        int                `bson:"streak" json:"streak"`                 // consecutive active days, >= 0

	CreatedAt time.Time  `bson:"created_at" json:"created_at"`
	LastLogin *time.Time `bson:"last_login,omitempty" json:"last_login,omitempty"`
}

// Normalize clamps out-of-range values produced by the unenforced upstream
// schema. Missing fields already decode to their zero defaults.
func (u *User) Normalize() {
	if u.WellnessScore < 0 {
		u.WellnessScore = 0
	}
	if u.WellnessScore > 100 {
		u.WellnessScore = 100
	}
	if u.Streak < 0 {
		u.Streak = 0
	}
}

// DisplayName returns the user's name, or "Unknown" when the upstream
// record has none. Aggregated child records are annotated with this value.
func (u *User) DisplayName() string {
	if u.Name == "" {
		return "Unknown"
	}
	return u.Name
}
