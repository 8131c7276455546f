package api

import (
	"context"
	"net/http"

	"github.com/muhammedyasars/VoltMate-sub000/internal/apiclient"
	"github.com/muhammedyasars/VoltMate-sub000/internal/domain"
)

type Dashboard struct {
	Client *apiclient.Client
}

func (a Dashboard) User(ctx context.Context) (domain.DashboardStats, error) {
	return decode[domain.DashboardStats](a.Client.Do(ctx, http.MethodGet, "/Dashboard/user", nil, nil))
}

func (a Dashboard) Manager(ctx context.Context) (domain.DashboardStats, error) {
	return decode[domain.DashboardStats](a.Client.Do(ctx, http.MethodGet, "/Dashboard/manager", nil, nil))
}

func (a Dashboard) Admin(ctx context.Context) (domain.DashboardStats, error) {
	return decode[domain.DashboardStats](a.Client.Do(ctx, http.MethodGet, "/Dashboard/admin", nil, nil))
}
