// Package entity defines the domain entities for the phoneauth feature.
package entity

// AuthSession represents an authenticated identity established by the
// identity provider after a successful OTP confirmation.
// It is owned by the client session and carries no credentials of its own.
type AuthSession struct {
	// UID is the opaque subject identifier issued by the provider.
	UID string

	// PhoneNumber is the verified phone number in E.164 format.
	PhoneNumber string

	// Name is the display name, if the provider knows one.
	Name string

	// Email is the contact email, if the provider knows one.
	Email string
}
