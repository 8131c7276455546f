package api

import (
	"context"
	"net/http"

	"github.com/muhammedyasars/VoltMate-sub000/internal/apiclient"
	"github.com/muhammedyasars/VoltMate-sub000/internal/domain"
)

type Auth struct {
	Client *apiclient.Client
}

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// AuthResult is the login/register response: the token pair plus the
// authenticated user.
type AuthResult struct {
	Token        string      `json:"token"`
	RefreshToken string      `json:"refreshToken"`
	User         domain.User `json:"user"`
}

func (a Auth) Login(ctx context.Context, in Credentials) (AuthResult, error) {
	return decode[AuthResult](a.Client.Do(ctx, http.MethodPost, "/Auth/login", nil, in))
}

func (a Auth) Register(ctx context.Context, in RegisterInput) (AuthResult, error) {
	return decode[AuthResult](a.Client.Do(ctx, http.MethodPost, "/Auth/register", nil, in))
}

func (a Auth) ManagerLogin(ctx context.Context, in Credentials) (AuthResult, error) {
	return decode[AuthResult](a.Client.Do(ctx, http.MethodPost, "/Auth/manager/login", nil, in))
}

func (a Auth) ManagerRegister(ctx context.Context, in RegisterInput) (AuthResult, error) {
	return decode[AuthResult](a.Client.Do(ctx, http.MethodPost, "/Auth/manager/register", nil, in))
}

func (a Auth) AdminLogin(ctx context.Context, in Credentials) (AuthResult, error) {
	return decode[AuthResult](a.Client.Do(ctx, http.MethodPost, "/Auth/admin/login", nil, in))
}

func (a Auth) Logout(ctx context.Context) error {
	_, err := a.Client.Do(ctx, http.MethodPost, "/Auth/logout", nil, nil)
	return err
}

func (a Auth) VerifyEmail(ctx context.Context, code string) error {
	_, err := a.Client.Do(ctx, http.MethodPost, "/Auth/verify-email", nil, map[string]string{"code": code})
	return err
}

func (a Auth) ForgotPassword(ctx context.Context, email string) error {
	_, err := a.Client.Do(ctx, http.MethodPost, "/Auth/forgot-password", nil, map[string]string{"email": email})
	return err
}

func (a Auth) ResetPassword(ctx context.Context, token, newPassword string) error {
	_, err := a.Client.Do(ctx, http.MethodPost, "/Auth/reset-password", nil, map[string]string{
		"token":    token,
		"password": newPassword,
	})
	return err
}
