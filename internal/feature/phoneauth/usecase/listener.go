package usecase

import (
	"context"
	"log/slog"
	"sync"

	"parksarthi_backend/internal/feature/phoneauth/domain/entity"
)

// Provisioner lazily creates the durable profile record for a newly observed
// authenticated identity.
type Provisioner interface {
	// EnsureUser checks that a user record exists for the session's subject
	// and creates one with the session's phone/name/email if it does not.
	EnsureUser(ctx context.Context, session *entity.AuthSession) error
}

// ProvisionerFunc adapts a function to the Provisioner interface.
type ProvisionerFunc func(ctx context.Context, session *entity.AuthSession) error

// EnsureUser calls the underlying function.
func (f ProvisionerFunc) EnsureUser(ctx context.Context, session *entity.AuthSession) error {
	return f(ctx, session)
}

// AuthStateSink receives every session-change event. A nil session means the
// user signed out or the session expired.
type AuthStateSink func(*entity.AuthSession)

// Listener subscribes to the identity provider's session-change stream for the
// lifetime of the application.
//
// Each event is published to the sink immediately; store provisioning runs as
// a detached task whose failure is observable only via logs, so the
// authenticated UI state never blocks on store latency. A failed provisioning
// attempt is retried naturally by the next session event.
type Listener struct {
	provisioner Provisioner
	sink        AuthStateSink

	wg sync.WaitGroup
}

// NewListener creates a Listener publishing to sink and provisioning through p.
func NewListener(p Provisioner, sink AuthStateSink) *Listener {
	return &Listener{provisioner: p, sink: sink}
}

// Run consumes session-change events until the stream closes or the context is
// cancelled. It is intended to run as a single goroutine for the process
// lifetime.
func (l *Listener) Run(ctx context.Context, events <-chan *entity.AuthSession) {
	defer l.wg.Wait()
	for {
		select {
		case <-ctx.Done():
			return
		case session, ok := <-events:
			if !ok {
				return
			}
			l.sink(session)
			if session == nil {
				continue
			}
			l.wg.Add(1)
			go func(s *entity.AuthSession) {
				defer l.wg.Done()
				if err := l.provisioner.EnsureUser(ctx, s); err != nil {
					// Non-fatal: the user is logged in from the provider's
					// perspective; the next app load retries via this listener.
					slog.Error("user provisioning failed", "uid", s.UID, "error", err)
				}
			}(session)
		}
	}
}

// Wait blocks until all in-flight provisioning tasks have finished.
func (l *Listener) Wait() {
	l.wg.Wait()
}
