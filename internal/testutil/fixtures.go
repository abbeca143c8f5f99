package testutil

import (
	"time"

	"github.com/serenity-app/serenity-admin/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SampleUsers returns a small, varied user set for handler tests: mixed
// verification status, one zero streak, one missing name.
func SampleUsers() []models.User {
	joined := time.Date(2025, 4, 2, 12, 0, 0, 0, time.UTC)
	return []models.User{
		{
			ID:            primitive.NewObjectID(),
			Name:          "Alice Smith",
			Email:         "alice@example.com",
			EmailVerified: true,
			WellnessScore: 82,
			Streak:        5,
			CreatedAt:     joined,
		},
		{
			ID:            primitive.NewObjectID(),
			Name:          "Bob Jones",
			Email:         "bob@example.com",
			EmailVerified: false,
			WellnessScore: 47,
			Streak:        0,
			CreatedAt:     joined.AddDate(0, 0, 3),
		},
		{
			ID:            primitive.NewObjectID(),
			Email:         "noname@example.com",
			EmailVerified: true,
			CreatedAt:     joined.AddDate(0, 0, 7),
		},
	}
}

// SampleDiscussions returns discussion fixtures, one with hostile markup.
func SampleDiscussions() []models.Discussion {
	return []models.Discussion{
		{
			ID:           primitive.NewObjectID(),
			Title:        "Sleep routines that stuck",
			Description:  "Share what actually worked for you.",
			Category:     "sleep",
			MessageCount: 12,
			CreatedAt:    time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC),
		},
		{
			ID:          primitive.NewObjectID(),
			Title:       "<img src=x onerror=alert(1)>Daily check-in",
			Description: "how is everyone doing",
			Category:    "general",
			CreatedAt:   time.Date(2025, 5, 2, 8, 0, 0, 0, time.UTC),
		},
	}
}

// SampleGroups returns support-group fixtures, one with nil Tags as it
// would arrive from a schemaless upstream document.
func SampleGroups() []models.SupportGroup {
	return []models.SupportGroup{
		{
			ID:          primitive.NewObjectID(),
			Name:        "Anxiety circle",
			Description: "Weekly peer support",
			Category:    "anxiety",
			Tags:        []string{"weekly", "peer-led"},
			MemberCount: 14,
			CreatedAt:   time.Date(2025, 5, 3, 8, 0, 0, 0, time.UTC),
		},
		{
			ID:          primitive.NewObjectID(),
			Name:        "Grief support",
			MemberCount: 6,
			IsAnonymous: true,
			CreatedAt:   time.Date(2025, 5, 4, 8, 0, 0, 0, time.UTC),
		},
	}
}
