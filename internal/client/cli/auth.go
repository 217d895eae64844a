package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Soham964/AGRO/internal/client/models"
)

// getSimpleText, getPassword and readFile are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	readFile      = os.ReadFile
)

// Login prompts for credentials and authenticates. A failed attempt leaves
// any existing session untouched.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	if !a.session.Login(ctx, username, string(password)) {
		fmt.Fprintln(a.out, "Login failed. Check your credentials and try again.")
		return nil
	}

	fmt.Fprintf(a.out, "Logged in as %s.\n", a.session.User().FullName())
	return nil
}

// Register walks through the registration form. The identity document is
// optional; sellers are additionally asked for a trade license number. The
// email can be verified with a one-time code before submitting.
func (a *App) Register(ctx context.Context) error {
	reg := models.Registration{}

	var err error
	if reg.Username, err = getSimpleText(a.reader, "Choose a username", a.out); err != nil {
		return err
	}
	if reg.Email, err = getSimpleText(a.reader, "Email", a.out); err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	reg.Password = string(password)

	confirm, err := getPassword(a.out)
	if err != nil {
		return err
	}
	reg.ConfirmPassword = string(confirm)

	if reg.FirstName, err = getSimpleText(a.reader, "First name", a.out); err != nil {
		return err
	}
	if reg.LastName, err = getSimpleText(a.reader, "Last name", a.out); err != nil {
		return err
	}

	role, err := getSimpleText(a.reader, "Role (buyer/seller)", a.out)
	if err != nil {
		return err
	}
	reg.Role = models.Role(role)

	if reg.Phone, err = getSimpleText(a.reader, "Phone", a.out); err != nil {
		return err
	}
	if reg.Location, err = getSimpleText(a.reader, "Location", a.out); err != nil {
		return err
	}
	if reg.Address, err = getSimpleText(a.reader, "Address (optional)", a.out); err != nil {
		return err
	}
	if reg.AadharNumber, err = getSimpleText(a.reader, "Aadhar number (optional)", a.out); err != nil {
		return err
	}

	docPath, err := getSimpleText(a.reader, "Path to Aadhar card image (optional)", a.out)
	if err != nil {
		return err
	}
	if docPath != "" {
		content, err := readFile(docPath)
		if err != nil {
			fmt.Fprintf(a.out, "Cannot read %s: %v\n", docPath, err)
			return err
		}
		reg.AadharCardImage = &models.Attachment{Filename: filepath.Base(docPath), Content: content}
	}

	if reg.Role == models.RoleSeller {
		if reg.TradeLicenseNumber, err = getSimpleText(a.reader, "Trade license number", a.out); err != nil {
			return err
		}
	}

	verify, err := Confirm(a.reader, "Verify your email with a one-time code first?", a.out)
	if err != nil {
		return err
	}
	if verify {
		if !a.session.SendOTP(ctx, reg.Email, models.OTPPurposeRegistration) {
			fmt.Fprintln(a.out, "Could not send the code. Continuing without verification.")
		} else {
			code, err := getSimpleText(a.reader, "Enter the code from your email", a.out)
			if err != nil {
				return err
			}
			if !a.session.VerifyOTP(ctx, reg.Email, code, models.OTPPurposeRegistration) {
				fmt.Fprintln(a.out, "Verification failed. Continuing without verification.")
			}
		}
	}

	if !a.session.Register(ctx, reg) {
		fmt.Fprintln(a.out, "Registration failed.")
		return nil
	}

	fmt.Fprintf(a.out, "Welcome, %s! You are now logged in.\n", a.session.User().FullName())
	return nil
}

// Logout drops the session. Always succeeds.
func (a *App) Logout(ctx context.Context) error {
	a.session.Logout(ctx)
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}
