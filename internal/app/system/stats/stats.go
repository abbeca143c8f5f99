// Package stats holds the pure view-model reducers behind the dashboard
// summary cards. All functions are deterministic over their inputs and are
// recomputed on demand; inputs are small enough that memoization is not
// worth its complexity.
package stats

import (
	"fmt"

	"github.com/serenity-app/serenity-admin/internal/domain/models"
)

// AverageScore returns the arithmetic mean of assessment scores rendered to
// one decimal place. An empty sequence averages to "0.0"; there is no
// division by zero.
func AverageScore(assessments []models.Assessment) string {
	if len(assessments) == 0 {
		return "0.0"
	}
	sum := 0
	for _, a := range assessments {
		sum += a.Score
	}
	return fmt.Sprintf("%.1f", float64(sum)/float64(len(assessments)))
}

// AverageProgress returns the mean goal progress to one decimal place,
// "0.0" when there are no goals.
func AverageProgress(goals []models.Goal) string {
	if len(goals) == 0 {
		return "0.0"
	}
	sum := 0
	for _, g := range goals {
		sum += g.Progress
	}
	return fmt.Sprintf("%.1f", float64(sum)/float64(len(goals)))
}

// ActiveUsers counts users with a running streak (streak > 0).
func ActiveUsers(users []models.User) int {
	n := 0
	for _, u := range users {
		if u.Streak > 0 {
			n++
		}
	}
	return n
}

// VerifiedPartition splits users by email verification status.
func VerifiedPartition(users []models.User) (verified, unverified int) {
	for _, u := range users {
		if u.EmailVerified {
			verified++
		} else {
			unverified++
		}
	}
	return verified, unverified
}

// TotalMembers sums member counts across support groups.
func TotalMembers(groups []models.SupportGroup) int {
	sum := 0
	for _, g := range groups {
		sum += g.MemberCount
	}
	return sum
}
