package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"parksarthi_backend/internal/feature/phoneauth/domain/entity"
)

const (
	// CountryCode is the fixed dialing prefix applied to local numbers.
	CountryCode = "+91"

	// LocalNumberLength is the required digit count of a local phone number.
	LocalNumberLength = 10

	// OTPLength is the required digit count of a one-time password.
	OTPLength = 6
)

// Step identifies the active step of the phone-auth modal.
type Step int

const (
	// StepPhoneEntry is the initial step collecting the phone number.
	StepPhoneEntry Step = iota
	// StepOtpEntry collects the one-time password for a pending challenge.
	StepOtpEntry
)

// ChallengeIssuer abstracts the identity provider's OTP operations.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type ChallengeIssuer interface {
	// RequestChallenge asks the provider to send an OTP to the given E.164
	// number, bound to a bot-verification token. It returns the provider's
	// opaque challenge handle.
	RequestChallenge(ctx context.Context, phoneNumber, botToken string) (string, error)

	// ConfirmChallenge submits a code against a previously issued handle.
	// On success it returns the established session.
	ConfirmChallenge(ctx context.Context, handle, code string) (*entity.AuthSession, error)
}

// BotVerifier produces proof-of-humanness tokens required before a challenge
// can be issued.
type BotVerifier interface {
	// Token returns a fresh bot-verification token.
	Token(ctx context.Context) (string, error)
}

// StaticBotVerifier is a BotVerifier returning a fixed token, for environments
// where the bot check is performed out of band (e.g. a token captured by the
// web client) or disabled entirely.
type StaticBotVerifier string

// Token returns the fixed token.
func (s StaticBotVerifier) Token(ctx context.Context) (string, error) {
	return string(s), nil
}

// Notifier surfaces transient user-visible notifications.
type Notifier interface {
	Notify(title, message string)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(title, message string)

// Notify calls the underlying function.
func (f NotifierFunc) Notify(title, message string) { f(title, message) }

// SessionSink receives the session established by a successful confirmation.
type SessionSink func(*entity.AuthSession)

// Flow is the phone-auth modal state machine.
//
// A Flow is owned by a single modal lifecycle. Operations are serialized on an
// internal mutex; provider calls run outside the lock so that Reset and Back
// stay responsive, and a generation counter discards the resolution of any
// provider call abandoned by a reset.
type Flow struct {
	issuer   ChallengeIssuer
	verifier BotVerifier
	notifier Notifier
	sink     SessionSink

	mu        sync.Mutex
	step      Step
	phone     string
	otp       string
	challenge *entity.PendingChallenge
	gen       uint64
}

// NewFlow creates a Flow in the phone-entry step.
func NewFlow(issuer ChallengeIssuer, verifier BotVerifier, notifier Notifier, sink SessionSink) *Flow {
	return &Flow{
		issuer:   issuer,
		verifier: verifier,
		notifier: notifier,
		sink:     sink,
		step:     StepPhoneEntry,
	}
}

// NormalizePhone strips a leading country code from raw input and, when the
// remainder is a valid local number, returns it in canonical international
// format. ok is false when the digit count is wrong or a non-digit is present.
func NormalizePhone(raw string) (normalized string, ok bool) {
	local := strings.TrimPrefix(strings.TrimSpace(raw), CountryCode)
	if len(local) != LocalNumberLength {
		return "", false
	}
	for _, r := range local {
		if r < '0' || r > '9' {
			return "", false
		}
	}
	return CountryCode + local, true
}

// SubmitPhone validates and normalizes the raw phone input, then requests an
// OTP challenge from the identity provider.
//
// Invalid input is a no-op: ErrInvalidInput is returned without contacting the
// provider or raising a notification. Provider rejections are logged, surfaced
// as a notification, and leave the flow in the phone-entry step.
func (f *Flow) SubmitPhone(ctx context.Context, raw string) error {
	f.mu.Lock()
	if f.step != StepPhoneEntry {
		f.mu.Unlock()
		return ErrInvalidInput
	}
	phone, ok := NormalizePhone(raw)
	if !ok {
		f.mu.Unlock()
		return ErrInvalidInput
	}
	f.phone = raw
	gen := f.gen
	f.mu.Unlock()

	token, err := f.verifier.Token(ctx)
	if err != nil {
		slog.Error("bot verification failed", "error", err)
		f.notifier.Notify("Error", "Failed to send OTP")
		return fmt.Errorf("bot verification: %w", err)
	}

	handle, err := f.issuer.RequestChallenge(ctx, phone, token)

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.gen != gen {
		// The modal was closed or reset while the request was in flight.
		return nil
	}
	if err != nil {
		slog.Error("phone challenge request failed", "phone", phone, "error", err)
		f.notifier.Notify("Error", "Failed to send OTP")
		return fmt.Errorf("request challenge: %w", err)
	}

	f.challenge = &entity.PendingChallenge{Handle: handle, PhoneNumber: phone}
	f.step = StepOtpEntry
	f.notifier.Notify("OTP Sent", "Verification code sent to "+phone)
	return nil
}

// SubmitOTP confirms the code against the pending challenge.
//
// A code of the wrong length, or the absence of a pending challenge, is a
// no-op. On success the session is published to the sink and the flow resets
// to its initial state. On provider rejection the challenge is retained so the
// user may retry without a re-issued challenge.
func (f *Flow) SubmitOTP(ctx context.Context, code string) error {
	f.mu.Lock()
	if len(code) != OTPLength {
		f.mu.Unlock()
		return ErrInvalidInput
	}
	if f.step != StepOtpEntry || f.challenge == nil {
		f.mu.Unlock()
		return ErrNoPendingChallenge
	}
	f.otp = code
	handle := f.challenge.Handle
	gen := f.gen
	f.mu.Unlock()

	session, err := f.issuer.ConfirmChallenge(ctx, handle, code)

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.gen != gen {
		return nil
	}
	if err != nil {
		slog.Error("otp confirmation failed", "error", err)
		f.notifier.Notify("Error", "Invalid OTP. Please try again.")
		return fmt.Errorf("confirm challenge: %w", err)
	}

	f.resetLocked()
	f.notifier.Notify("Success", "Login successful! Welcome to Park Sarthi!")
	if f.sink != nil {
		f.sink(session)
	}
	return nil
}

// Back returns from the OTP step to the phone step, discarding the pending
// challenge. It is a no-op in any other step.
func (f *Flow) Back() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.step != StepOtpEntry {
		return
	}
	f.step = StepPhoneEntry
	f.otp = ""
	f.challenge = nil
	f.gen++
}

// Reset unconditionally clears the step, phone input, OTP input, and pending
// challenge. It is invoked on modal close, both user-initiated and post-success.
func (f *Flow) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.resetLocked()
}

func (f *Flow) resetLocked() {
	f.step = StepPhoneEntry
	f.phone = ""
	f.otp = ""
	f.challenge = nil
	f.gen++
}

// Step reports the active step.
func (f *Flow) Step() Step {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.step
}

// Challenge returns a copy of the pending challenge, or nil if none exists.
func (f *Flow) Challenge() *entity.PendingChallenge {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.challenge == nil {
		return nil
	}
	c := *f.challenge
	return &c
}

// PhoneInput reports the raw phone input retained by the flow.
func (f *Flow) PhoneInput() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.phone
}

// OTPInput reports the raw OTP input retained by the flow.
func (f *Flow) OTPInput() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.otp
}
