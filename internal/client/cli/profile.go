package cli

import (
	"context"
	"fmt"

	"github.com/Soham964/AGRO/internal/client/models"
)

// Profile prints the logged-in user's account record.
func (a *App) Profile(ctx context.Context) error {
	user := a.session.User()
	if user == nil {
		fmt.Fprintln(a.out, "Log in first.")
		return nil
	}

	verified := "no"
	if user.IsVerified {
		verified = "yes"
	}
	fmt.Fprintf(a.out, "%s (@%s)\n", user.FullName(), user.Username)
	fmt.Fprintf(a.out, "  Email:    %s\n", user.Email)
	fmt.Fprintf(a.out, "  Role:     %s\n", user.Role)
	fmt.Fprintf(a.out, "  Phone:    %s\n", user.Phone)
	fmt.Fprintf(a.out, "  Location: %s\n", user.Location)
	fmt.Fprintf(a.out, "  Verified: %s\n", verified)
	fmt.Fprintf(a.out, "  Joined:   %s\n", user.DateJoined.Format("2006-01-02"))
	return nil
}

// EditProfile prompts for new field values, empty answers keeping the
// current ones, and submits the partial update.
func (a *App) EditProfile(ctx context.Context) error {
	user := a.session.User()
	if user == nil {
		fmt.Fprintln(a.out, "Log in first.")
		return nil
	}

	patch := models.ProfileUpdate{}
	fields := []struct {
		prompt  string
		current string
		dest    **string
	}{
		{"Email", user.Email, &patch.Email},
		{"First name", user.FirstName, &patch.FirstName},
		{"Last name", user.LastName, &patch.LastName},
		{"Phone", user.Phone, &patch.Phone},
		{"Location", user.Location, &patch.Location},
	}

	changed := false
	for _, f := range fields {
		answer, err := getSimpleText(a.reader, fmt.Sprintf("%s [%s] (empty to keep)", f.prompt, f.current), a.out)
		if err != nil {
			return err
		}
		if answer != "" && answer != f.current {
			value := answer
			*f.dest = &value
			changed = true
		}
	}

	if !changed {
		fmt.Fprintln(a.out, "Nothing to change.")
		return nil
	}

	if !a.session.UpdateProfile(ctx, patch) {
		fmt.Fprintln(a.out, "Update failed.")
		return nil
	}
	fmt.Fprintln(a.out, "Profile updated.")
	return nil
}
