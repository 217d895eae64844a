package services

import (
	"context"
	"sync"

	"github.com/Soham964/AGRO/internal/client/api"
	"github.com/Soham964/AGRO/internal/client/models"
	"github.com/Soham964/AGRO/internal/logging"
)

// State is the session lifecycle state.
type State string

const (
	// StateUnauthenticated: no session, nothing in flight.
	StateUnauthenticated State = "unauthenticated"
	// StateRestoring: the startup token probe is in flight.
	StateRestoring State = "restoring"
	// StateTransitioning: a login, registration or OTP call is in flight.
	StateTransitioning State = "transitioning"
	// StateAuthenticated: a user is logged in.
	StateAuthenticated State = "authenticated"
)

// SessionStore owns the authenticated identity.
//
// Contract:
//   - Restore: probe a stored token at startup; failures are silent and
//     leave the client logged out with the token cleared.
//   - Login / Register / LoginWithOTP: establish a session; on success the
//     token is persisted and the server's user record becomes current.
//   - SendOTP / VerifyOTP: isolated calls of the OTP flow; the backend
//     enforces purpose validity, the client only forwards it.
//   - Logout: unconditionally drops token and session; never fails; issues
//     no network call.
//   - Subscribe: register an observer of the authentication flag, fired on
//     every flip.
//
// All operations except Restore and Logout report success as a boolean;
// failures are logged, never propagated, and leave the prior session
// untouched.
type SessionStore interface {
	Restore(ctx context.Context)
	Login(ctx context.Context, username, password string) bool
	Register(ctx context.Context, reg models.Registration) bool
	SendOTP(ctx context.Context, email string, purpose models.OTPPurpose) bool
	VerifyOTP(ctx context.Context, email, code string, purpose models.OTPPurpose) bool
	LoginWithOTP(ctx context.Context, email, code string) bool
	UpdateProfile(ctx context.Context, patch models.ProfileUpdate) bool
	Logout(ctx context.Context)

	Subscribe(fn func(ctx context.Context, authenticated bool))
	IsAuthenticated() bool
	User() *models.User
	State() State
}

type sessionStore struct {
	gateway api.Gateway
	logger  logging.Logger

	mu    sync.Mutex
	state State
	user  *models.User
	subs  []func(context.Context, bool)
}

// NewSessionStore constructs a SessionStore bound to the given gateway.
func NewSessionStore(gateway api.Gateway, logger logging.Logger) SessionStore {
	return &sessionStore{
		gateway: gateway,
		logger:  logger,
		state:   StateUnauthenticated,
	}
}

func (s *sessionStore) Subscribe(fn func(ctx context.Context, authenticated bool)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

func (s *sessionStore) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user != nil
}

func (s *sessionStore) User() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

func (s *sessionStore) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *sessionStore) snapshot() (State, *models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state, s.user
}

// transition moves the session to state/user and notifies subscribers when
// the authentication flag flipped. Callbacks run outside the lock.
func (s *sessionStore) transition(ctx context.Context, state State, user *models.User) {
	s.mu.Lock()
	was := s.user != nil
	s.state = state
	s.user = user
	now := user != nil
	subs := append([]func(context.Context, bool){}, s.subs...)
	s.mu.Unlock()

	if was == now {
		return
	}
	for _, fn := range subs {
		fn(ctx, now)
	}
}

// Restore probes a previously stored token at process start. A missing
// token means starting logged out; a rejected one is cleared so the next
// start skips the probe.
func (s *sessionStore) Restore(ctx context.Context) {
	if s.gateway.Token(ctx) == "" {
		s.transition(ctx, StateUnauthenticated, nil)
		return
	}

	s.transition(ctx, StateRestoring, nil)

	user, err := s.gateway.CurrentUser(ctx)
	if err != nil {
		if clearErr := s.gateway.ClearToken(ctx); clearErr != nil {
			s.logger.Warn(ctx, "failed to clear rejected token", "error", clearErr)
		}
		s.logger.Debug(ctx, "session restore failed", "error", err)
		s.transition(ctx, StateUnauthenticated, nil)
		return
	}

	s.transition(ctx, StateAuthenticated, user)
}

// authenticate runs one session-establishing call. On success the returned
// token is persisted and the server's user record becomes the session; on
// failure the prior session is restored untouched.
func (s *sessionStore) authenticate(ctx context.Context, op string, call func() (*models.AuthResponse, error)) bool {
	prevState, prevUser := s.snapshot()
	s.transition(ctx, StateTransitioning, prevUser)

	resp, err := call()
	if err != nil {
		s.logger.Error(ctx, op+" failed", "error", err)
		s.transition(ctx, prevState, prevUser)
		return false
	}

	if err := s.gateway.SetToken(ctx, resp.Token); err != nil {
		// the in-memory session still works; only restore-on-restart is lost
		s.logger.Warn(ctx, "failed to persist token", "error", err)
	}

	user := resp.User
	s.transition(ctx, StateAuthenticated, &user)
	return true
}

func (s *sessionStore) Login(ctx context.Context, username, password string) bool {
	return s.authenticate(ctx, "login", func() (*models.AuthResponse, error) {
		return s.gateway.Login(ctx, username, password)
	})
}

func (s *sessionStore) Register(ctx context.Context, reg models.Registration) bool {
	return s.authenticate(ctx, "registration", func() (*models.AuthResponse, error) {
		return s.gateway.Register(ctx, reg)
	})
}

// LoginWithOTP authenticates with a verified one-time code. The server's
// response is trusted exactly like a password login.
func (s *sessionStore) LoginWithOTP(ctx context.Context, email, code string) bool {
	return s.authenticate(ctx, "otp login", func() (*models.AuthResponse, error) {
		return s.gateway.LoginWithOTP(ctx, email, code)
	})
}

func (s *sessionStore) SendOTP(ctx context.Context, email string, purpose models.OTPPurpose) bool {
	prevState, prevUser := s.snapshot()
	s.transition(ctx, StateTransitioning, prevUser)
	err := s.gateway.SendOTP(ctx, email, purpose)
	s.transition(ctx, prevState, prevUser)
	if err != nil {
		s.logger.Error(ctx, "sending OTP failed", "email", email, "purpose", purpose, "error", err)
		return false
	}
	return true
}

func (s *sessionStore) VerifyOTP(ctx context.Context, email, code string, purpose models.OTPPurpose) bool {
	prevState, prevUser := s.snapshot()
	s.transition(ctx, StateTransitioning, prevUser)
	err := s.gateway.VerifyOTP(ctx, email, code, purpose)
	s.transition(ctx, prevState, prevUser)
	if err != nil {
		s.logger.Error(ctx, "OTP verification failed", "email", email, "purpose", purpose, "error", err)
		return false
	}
	return true
}

func (s *sessionStore) UpdateProfile(ctx context.Context, patch models.ProfileUpdate) bool {
	if !s.IsAuthenticated() {
		return false
	}

	user, err := s.gateway.UpdateProfile(ctx, patch)
	if err != nil {
		s.logger.Error(ctx, "profile update failed", "error", err)
		return false
	}

	// the authentication flag does not change, so no notification
	s.mu.Lock()
	s.user = user
	s.mu.Unlock()
	return true
}

// Logout drops the token and the session. It is idempotent and issues no
// network call; the server-side token stays valid until it expires there.
func (s *sessionStore) Logout(ctx context.Context) {
	if err := s.gateway.ClearToken(ctx); err != nil {
		s.logger.Warn(ctx, "failed to clear token", "error", err)
	}
	s.transition(ctx, StateUnauthenticated, nil)
}
