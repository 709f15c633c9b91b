// Package session owns the current authentication token and user identity:
// it persists them across restarts, exposes login/logout, and wires the
// resource client's 401 teardown. It is the single source of truth for
// "who is logged in".
package session

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/me/clinidash/internal/api"
	"github.com/me/clinidash/pkg/model"
)

// Routes the store navigates to after session transitions.
const (
	RouteLogin     = "/login"
	RouteDashboard = "/dashboard"
)

// Session pairs a bearer token with the identity derived from it at login
// time. It is either fully present or fully absent, never partial.
type Session struct {
	Token    string
	Identity model.Identity
}

// Store owns the active session. It is passed by reference to whatever
// consumes it (route guard, CLI commands); the resource client borrows the
// token read-only per request.
type Store struct {
	client   *api.Client
	storage  Storage
	navigate func(route string)
	logger   *slog.Logger

	mu   sync.Mutex
	sess *Session
}

// New creates a Store bound to the given client and storage. navigate is
// invoked after login (landing route) and after logout or forced expiry
// (login route); pass nil when the host has no navigation, e.g. the CLI.
//
// The store installs itself as the client's OnUnauthorized observer: any
// 401 tears the session down before the failing call returns.
func New(client *api.Client, storage Storage, navigate func(route string), logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	s := &Store{
		client:   client,
		storage:  storage,
		navigate: navigate,
		logger:   logger.With("component", "session"),
	}
	client.OnUnauthorized = s.expire
	return s
}

// Restore installs the persisted session, if any. Malformed or partial
// persisted state is treated as absent: the store fails open to the
// logged-out state and never returns an error.
func (s *Store) Restore() {
	token, identity, ok := s.storage.Load()
	if !ok {
		// Drop any partial leftovers so later reads stay all-or-nothing.
		if err := s.storage.Clear(); err != nil {
			s.logger.Warn("clear partial session state", "error", err)
		}
		return
	}

	s.mu.Lock()
	s.sess = &Session{Token: token, Identity: identity}
	s.mu.Unlock()
	s.client.SetToken(token)
	s.logger.Debug("session restored", "email", identity.Email, "role", identity.Role)
}

// Login authenticates against the remote service and, on success, persists
// and installs the new session, then navigates to the dashboard. On failure
// the existing state — logged in or out — is left untouched.
func (s *Store) Login(ctx context.Context, email, password string) error {
	tok, err := s.client.Login(ctx, email, password)
	if err != nil {
		return err
	}

	identity, err := api.IdentityFromToken(tok.AccessToken)
	if err != nil {
		return &api.Error{Op: "auth.login", Kind: api.KindTransport, Message: "server returned an unreadable token", Err: err}
	}

	// Persist before navigation: a reload immediately after login must
	// observe the new session.
	if err := s.storage.Save(tok.AccessToken, identity); err != nil {
		return err
	}

	s.mu.Lock()
	s.sess = &Session{Token: tok.AccessToken, Identity: identity}
	s.mu.Unlock()
	s.client.SetToken(tok.AccessToken)

	s.logger.Info("logged in", "email", identity.Email, "role", identity.Role)
	s.redirect(RouteDashboard)
	return nil
}

// Logout clears the persisted and active session and navigates to the
// login route. Calling it when already logged out is a no-op.
func (s *Store) Logout() {
	s.mu.Lock()
	wasActive := s.sess != nil
	s.sess = nil
	s.mu.Unlock()

	s.client.ClearToken()
	if err := s.storage.Clear(); err != nil {
		s.logger.Warn("clear persisted session", "error", err)
	}
	if !wasActive {
		return
	}
	s.logger.Info("logged out")
	s.redirect(RouteLogin)
}

// expire is the forced teardown run on any 401. It must be safe to run
// even when a concurrent logout already cleared the session.
func (s *Store) expire() {
	s.mu.Lock()
	wasActive := s.sess != nil
	s.sess = nil
	s.mu.Unlock()

	s.client.ClearToken()
	if err := s.storage.Clear(); err != nil {
		s.logger.Warn("clear persisted session", "error", err)
	}
	if wasActive {
		s.logger.Warn("session expired by server")
	}
	s.redirect(RouteLogin)
}

// Current returns a copy of the active session, or nil when logged out.
func (s *Store) Current() *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sess == nil {
		return nil
	}
	cp := *s.sess
	return &cp
}

// Authenticated reports whether a session is active.
func (s *Store) Authenticated() bool {
	return s.Current() != nil
}

// Role returns the active identity's role, or practitioner when logged out
// (role gating is meaningless without a session; guards check
// Authenticated first).
func (s *Store) Role() model.Role {
	if sess := s.Current(); sess != nil {
		return sess.Identity.Role
	}
	return model.RolePractitioner
}

func (s *Store) redirect(route string) {
	if s.navigate != nil {
		s.navigate(route)
	}
}
