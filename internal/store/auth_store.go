package store

import (
	"context"
	"time"

	"github.com/muhammedyasars/VoltMate-sub000/internal/api"
	"github.com/muhammedyasars/VoltMate-sub000/internal/apiclient"
	"github.com/muhammedyasars/VoltMate-sub000/internal/domain"
)

// AuthStore holds the authenticated user and owns the login/logout side of
// the persisted token pair. The API client's refresh path writes the same
// store; both go through TokenStore so there is a single arbiter.
type AuthStore struct {
	state
	api    api.Auth
	users  api.Users
	tokens apiclient.TokenStore

	user *domain.User
}

func (s *AuthStore) User() *domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

func (s *AuthStore) LoggedIn() bool {
	return s.User() != nil
}

// SessionExpiresAt reads the persisted access token's expiry. Zero time when
// no session is held.
func (s *AuthStore) SessionExpiresAt() time.Time {
	pair, err := s.tokens.Load()
	if err != nil || pair.Token == "" {
		return time.Time{}
	}
	exp, err := apiclient.TokenExpiry(pair.Token)
	if err != nil {
		return time.Time{}
	}
	return exp
}

func (s *AuthStore) Login(ctx context.Context, in api.Credentials) error {
	return s.authenticate(func() (api.AuthResult, error) { return s.api.Login(ctx, in) }, "login failed")
}

func (s *AuthStore) Register(ctx context.Context, in api.RegisterInput) error {
	return s.authenticate(func() (api.AuthResult, error) { return s.api.Register(ctx, in) }, "registration failed")
}

func (s *AuthStore) ManagerLogin(ctx context.Context, in api.Credentials) error {
	return s.authenticate(func() (api.AuthResult, error) { return s.api.ManagerLogin(ctx, in) }, "login failed")
}

func (s *AuthStore) ManagerRegister(ctx context.Context, in api.RegisterInput) error {
	return s.authenticate(func() (api.AuthResult, error) { return s.api.ManagerRegister(ctx, in) }, "registration failed")
}

func (s *AuthStore) AdminLogin(ctx context.Context, in api.Credentials) error {
	return s.authenticate(func() (api.AuthResult, error) { return s.api.AdminLogin(ctx, in) }, "login failed")
}

func (s *AuthStore) authenticate(call func() (api.AuthResult, error), msg string) error {
	gen := s.begin()
	res, err := call()
	if err != nil {
		return s.complete(gen, actionErr(msg, err), nil)
	}
	if err := s.tokens.Save(apiclient.TokenPair{Token: res.Token, RefreshToken: res.RefreshToken}); err != nil {
		return s.complete(gen, actionErr(msg, err), nil)
	}
	return s.complete(gen, nil, func() {
		u := res.User
		s.user = &u
	})
}

// Logout tells the server, then clears local session state. The local side
// happens even when the server call fails; a dead session on the server is
// not worth keeping the user stuck for.
func (s *AuthStore) Logout(ctx context.Context) error {
	gen := s.begin()
	err := s.api.Logout(ctx)
	if clearErr := s.tokens.Clear(); clearErr != nil && err == nil {
		err = clearErr
	}
	if err != nil {
		return s.complete(gen, actionErr("logout failed", err), nil)
	}
	return s.complete(gen, nil, func() { s.user = nil })
}

// LoadProfile fetches the authenticated user, restoring the session after a
// restart when a persisted token pair is still valid.
func (s *AuthStore) LoadProfile(ctx context.Context) error {
	gen := s.begin()
	u, err := s.users.Me(ctx)
	if err != nil {
		return s.complete(gen, actionErr("failed to load profile", err), nil)
	}
	return s.complete(gen, nil, func() { s.user = &u })
}

func (s *AuthStore) UpdateProfile(ctx context.Context, in api.ProfileInput) error {
	gen := s.begin()
	u, err := s.users.UpdateProfile(ctx, in)
	if err != nil {
		return s.complete(gen, actionErr("failed to update profile", err), nil)
	}
	return s.complete(gen, nil, func() { s.user = &u })
}

func (s *AuthStore) VerifyEmail(ctx context.Context, code string) error {
	gen := s.begin()
	if err := s.api.VerifyEmail(ctx, code); err != nil {
		return s.complete(gen, actionErr("email verification failed", err), nil)
	}
	return s.complete(gen, nil, nil)
}

func (s *AuthStore) ForgotPassword(ctx context.Context, email string) error {
	gen := s.begin()
	if err := s.api.ForgotPassword(ctx, email); err != nil {
		return s.complete(gen, actionErr("failed to request password reset", err), nil)
	}
	return s.complete(gen, nil, nil)
}

func (s *AuthStore) ResetPassword(ctx context.Context, token, newPassword string) error {
	gen := s.begin()
	if err := s.api.ResetPassword(ctx, token, newPassword); err != nil {
		return s.complete(gen, actionErr("failed to reset password", err), nil)
	}
	return s.complete(gen, nil, nil)
}
