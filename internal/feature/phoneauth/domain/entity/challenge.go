package entity

// PendingChallenge represents an in-flight OTP verification attempt.
// The handle is provider-issued and opaque to this system; it is consumed
// exactly once by a confirmation and discarded on modal close or reset.
type PendingChallenge struct {
	// Handle is the provider's opaque challenge reference.
	Handle string

	// PhoneNumber is the normalized number the challenge was issued for.
	PhoneNumber string
}
