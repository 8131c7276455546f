package api

import (
	"context"
	"net/http"

	"github.com/muhammedyasars/VoltMate-sub000/internal/apiclient"
	"github.com/muhammedyasars/VoltMate-sub000/internal/domain"
)

type Users struct {
	Client *apiclient.Client
}

type ProfileInput struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

func (a Users) Me(ctx context.Context) (domain.User, error) {
	return decode[domain.User](a.Client.Do(ctx, http.MethodGet, "/Users/me", nil, nil))
}

func (a Users) UpdateProfile(ctx context.Context, in ProfileInput) (domain.User, error) {
	return decode[domain.User](a.Client.Do(ctx, http.MethodPut, "/Users/me", nil, in))
}
