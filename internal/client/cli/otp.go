package cli

import (
	"context"
	"fmt"

	"github.com/Soham964/AGRO/internal/client/models"
)

// LoginOTP runs the one-time-code login flow: send a code to the given
// email, then exchange it for a session.
func (a *App) LoginOTP(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	if !a.session.SendOTP(ctx, email, models.OTPPurposeLogin) {
		fmt.Fprintln(a.out, "Could not send the code. Try again later.")
		return nil
	}
	fmt.Fprintf(a.out, "A code was sent to %s.\n", email)

	code, err := getSimpleText(a.reader, "Enter the code", a.out)
	if err != nil {
		return err
	}

	if !a.session.LoginWithOTP(ctx, email, code) {
		fmt.Fprintln(a.out, "Login failed. The code may be wrong or expired.")
		return nil
	}

	fmt.Fprintf(a.out, "Logged in as %s.\n", a.session.User().FullName())
	return nil
}
