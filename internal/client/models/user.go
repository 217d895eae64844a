// Package models contains the wire-level data model of the AGRO marketplace
// backend as seen by the client. All structs mirror the backend's JSON
// serializers field for field; the client never mutates them directly.
package models

import "time"

// Role is the account kind of a marketplace user.
type Role string

const (
	RoleBuyer  Role = "buyer"
	RoleSeller Role = "seller"
	RoleAdmin  Role = "admin"
)

// User is the account record returned by the backend.
type User struct {
	ID         int64     `json:"id"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Role       Role      `json:"role"`
	Phone      string    `json:"phone"`
	Location   string    `json:"location"`
	IsVerified bool      `json:"is_verified"`
	DateJoined time.Time `json:"date_joined"`
}

// FullName joins the first and last name, falling back to the username
// when neither is set.
func (u *User) FullName() string {
	switch {
	case u.FirstName == "" && u.LastName == "":
		return u.Username
	case u.LastName == "":
		return u.FirstName
	case u.FirstName == "":
		return u.LastName
	default:
		return u.FirstName + " " + u.LastName
	}
}

// AuthResponse is the payload of every endpoint that establishes a session:
// password login, registration and OTP login.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Attachment is a file sent with a multipart request, e.g. the identity
// document attached to a registration.
type Attachment struct {
	Filename string
	Content  []byte
}

// Registration carries the fields of the registration form. The identity
// document is optional; when present the whole request goes out as
// multipart form data.
type Registration struct {
	Username           string
	Email              string
	Password           string
	ConfirmPassword    string
	FirstName          string
	LastName           string
	Role               Role
	Phone              string
	Location           string
	Address            string
	AadharNumber       string
	TradeLicenseNumber string
	AadharCardImage    *Attachment
}

// Fields returns the registration's text fields keyed by their wire names,
// in the order the backend's serializer declares them. Empty optional
// fields are omitted.
func (r *Registration) Fields() [][2]string {
	fields := [][2]string{
		{"username", r.Username},
		{"email", r.Email},
		{"password", r.Password},
		{"confirm_password", r.ConfirmPassword},
		{"first_name", r.FirstName},
		{"last_name", r.LastName},
		{"role", string(r.Role)},
		{"phone", r.Phone},
		{"location", r.Location},
	}
	optional := [][2]string{
		{"address", r.Address},
		{"aadhar_number", r.AadharNumber},
		{"trade_license_number", r.TradeLicenseNumber},
	}
	for _, f := range optional {
		if f[1] != "" {
			fields = append(fields, f)
		}
	}
	return fields
}

// ProfileUpdate is a partial update of the current user's profile.
// Nil fields are left untouched by the backend.
type ProfileUpdate struct {
	Email     *string `json:"email,omitempty"`
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Location  *string `json:"location,omitempty"`
}

// OTPPurpose tags an OTP request with the flow it belongs to. The backend
// enforces purpose-specific validity; the client only labels.
type OTPPurpose string

const (
	OTPPurposeLogin        OTPPurpose = "login"
	OTPPurposeRegistration OTPPurpose = "registration"
)
