package stats

import (
	"testing"

	"github.com/serenity-app/serenity-admin/internal/domain/models"
)

func TestAverageScore(t *testing.T) {
	tests := []struct {
		name   string
		scores []int
		want   string
	}{
		{"empty", nil, "0.0"},
		{"single", []int{75}, "75.0"},
		{"whole average", []int{80, 60, 100}, "80.0"},
		{"fractional average", []int{80, 61}, "70.5"},
		{"all zero", []int{0, 0}, "0.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var as []models.Assessment
			for _, s := range tt.scores {
				as = append(as, models.Assessment{Score: s})
			}
			if got := AverageScore(as); got != tt.want {
				t.Errorf("AverageScore(%v) = %q, want %q", tt.scores, got, tt.want)
			}
		})
	}
}

func TestAverageProgress(t *testing.T) {
	tests := []struct {
		name     string
		progress []int
		want     string
	}{
		{"empty", nil, "0.0"},
		{"mixed", []int{25, 50, 100}, "58.3"},
		{"single", []int{40}, "40.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gs []models.Goal
			for _, p := range tt.progress {
				gs = append(gs, models.Goal{Progress: p})
			}
			if got := AverageProgress(gs); got != tt.want {
				t.Errorf("AverageProgress(%v) = %q, want %q", tt.progress, got, tt.want)
			}
		})
	}
}

func TestActiveUsers(t *testing.T) {
	users := []models.User{
		{Streak: 3},
		{Streak: 0},
	}
	if got := ActiveUsers(users); got != 1 {
		t.Errorf("ActiveUsers = %d, want 1", got)
	}
	if got := ActiveUsers(nil); got != 0 {
		t.Errorf("ActiveUsers(nil) = %d, want 0", got)
	}
}

func TestVerifiedPartition(t *testing.T) {
	users := []models.User{
		{EmailVerified: true},
		{EmailVerified: false},
		{EmailVerified: true},
	}
	verified, unverified := VerifiedPartition(users)
	if verified != 2 || unverified != 1 {
		t.Errorf("VerifiedPartition = (%d, %d), want (2, 1)", verified, unverified)
	}
}

func TestTotalMembers(t *testing.T) {
	groups := []models.SupportGroup{
		{MemberCount: 12},
		{MemberCount: 0},
		{MemberCount: 7},
	}
	if got := TotalMembers(groups); got != 19 {
		t.Errorf("TotalMembers = %d, want 19", got)
	}
}
