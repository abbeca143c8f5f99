// internal/app/system/csvutil/users.go
package csvutil

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/serenity-app/serenity-admin/internal/app/system/timefmt"
	"github.com/serenity-app/serenity-admin/internal/domain/models"
)

// userExportHeader is the fixed column order of the users export.
var userExportHeader = []string{"Name", "Email", "Wellness Score", "Streak", "Email Verified", "Joined Date"}

// WriteUsersCSV writes the given users as CSV to w, header first.
// encoding/csv handles quoting, so embedded commas and quotes in names or
// emails round-trip correctly.
func WriteUsersCSV(w io.Writer, users []models.User) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(userExportHeader); err != nil {
		return err
	}

	for _, u := range users {
		name := u.Name
		if name == "" {
			name = timefmt.Missing
		}
		email := u.Email
		if email == "" {
			email = timefmt.Missing
		}
		verified := "No"
		if u.EmailVerified {
			verified = "Yes"
		}

		row := []string{
			name,
			email,
			strconv.Itoa(u.WellnessScore),
			strconv.Itoa(u.Streak),
			verified,
			timefmt.FormatDate(u.CreatedAt),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
