package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/muhammedyasars/VoltMate-sub000/internal/apiclient"
	"github.com/muhammedyasars/VoltMate-sub000/internal/domain"
)

type Admin struct {
	Client *apiclient.Client
}

type AdminUserUpdate struct {
	Name   string            `json:"name,omitempty"`
	Phone  string            `json:"phone,omitempty"`
	Role   domain.UserRole   `json:"role,omitempty"`
	Status domain.UserStatus `json:"status,omitempty"`
}

type AdminStationUpdate struct {
	Name        string               `json:"name,omitempty"`
	Address     string               `json:"address,omitempty"`
	Status      domain.StationStatus `json:"status,omitempty"`
	Chargers    int                  `json:"chargers,omitempty"`
	PricePerKWh float64              `json:"pricePerKwh,omitempty"`
}

func (a Admin) Users(ctx context.Context) ([]domain.User, error) {
	return decode[[]domain.User](a.Client.Do(ctx, http.MethodGet, "/Admin/users", nil, nil))
}

func (a Admin) User(ctx context.Context, id string) (domain.User, error) {
	return decode[domain.User](a.Client.Do(ctx, http.MethodGet, "/Admin/users/"+id, nil, nil))
}

func (a Admin) UpdateUser(ctx context.Context, id string, in AdminUserUpdate) (domain.User, error) {
	return decode[domain.User](a.Client.Do(ctx, http.MethodPut, "/Admin/users/"+id, nil, in))
}

func (a Admin) DeleteUser(ctx context.Context, id string) error {
	_, err := a.Client.Do(ctx, http.MethodDelete, "/Admin/users/"+id, nil, nil)
	return err
}

func (a Admin) SuspendUser(ctx context.Context, id string) (domain.User, error) {
	return decode[domain.User](a.Client.Do(ctx, http.MethodPost, "/Admin/users/"+id+"/suspend", nil, nil))
}

func (a Admin) Managers(ctx context.Context) ([]domain.User, error) {
	return decode[[]domain.User](a.Client.Do(ctx, http.MethodGet, "/Admin/managers", nil, nil))
}

func (a Admin) UpdateManager(ctx context.Context, id string, in AdminUserUpdate) (domain.User, error) {
	return decode[domain.User](a.Client.Do(ctx, http.MethodPut, "/Admin/managers/"+id, nil, in))
}

func (a Admin) DeleteManager(ctx context.Context, id string) error {
	_, err := a.Client.Do(ctx, http.MethodDelete, "/Admin/managers/"+id, nil, nil)
	return err
}

func (a Admin) Stations(ctx context.Context) ([]domain.Station, error) {
	return decode[[]domain.Station](a.Client.Do(ctx, http.MethodGet, "/Admin/stations", nil, nil))
}

func (a Admin) UpdateStation(ctx context.Context, id string, in AdminStationUpdate) (domain.Station, error) {
	return decode[domain.Station](a.Client.Do(ctx, http.MethodPut, "/Admin/stations/"+id, nil, in))
}

func (a Admin) DeleteStation(ctx context.Context, id string) error {
	_, err := a.Client.Do(ctx, http.MethodDelete, "/Admin/stations/"+id, nil, nil)
	return err
}

// RevenueReport returns the revenue series between two yyyy-mm-dd dates.
func (a Admin) RevenueReport(ctx context.Context, startDate, endDate string) ([]domain.RevenuePoint, error) {
	q := url.Values{}
	if startDate != "" {
		q.Set("startDate", startDate)
	}
	if endDate != "" {
		q.Set("endDate", endDate)
	}
	return decode[[]domain.RevenuePoint](a.Client.Do(ctx, http.MethodGet, "/Admin/reports/revenue", q, nil))
}

func (a Admin) UsageReport(ctx context.Context, startDate, endDate string) ([]domain.RevenuePoint, error) {
	q := url.Values{}
	if startDate != "" {
		q.Set("startDate", startDate)
	}
	if endDate != "" {
		q.Set("endDate", endDate)
	}
	return decode[[]domain.RevenuePoint](a.Client.Do(ctx, http.MethodGet, "/Admin/reports/usage", q, nil))
}
