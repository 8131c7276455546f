package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/muhammedyasars/VoltMate-sub000/internal/apiclient"
	"github.com/muhammedyasars/VoltMate-sub000/internal/domain"
)

type Bookings struct {
	Client *apiclient.Client
}

type BookingListParams struct {
	Status domain.BookingStatus
}

func (p BookingListParams) query() url.Values {
	q := url.Values{}
	if p.Status != "" {
		q.Set("status", string(p.Status))
	}
	return q
}

type BookingInput struct {
	StationID    string `json:"stationId"`
	Date         string `json:"date"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
	DurationMins int    `json:"durationMins"`
}

func (a Bookings) List(ctx context.Context, p BookingListParams) ([]domain.Booking, error) {
	return decode[[]domain.Booking](a.Client.Do(ctx, http.MethodGet, "/Bookings", p.query(), nil))
}

func (a Bookings) Get(ctx context.Context, id string) (domain.Booking, error) {
	return decode[domain.Booking](a.Client.Do(ctx, http.MethodGet, "/Bookings/"+id, nil, nil))
}

func (a Bookings) Create(ctx context.Context, in BookingInput) (domain.Booking, error) {
	return decode[domain.Booking](a.Client.Do(ctx, http.MethodPost, "/Bookings", nil, in))
}

func (a Bookings) Update(ctx context.Context, id string, in BookingInput) (domain.Booking, error) {
	return decode[domain.Booking](a.Client.Do(ctx, http.MethodPut, "/Bookings/"+id, nil, in))
}

func (a Bookings) Cancel(ctx context.Context, id string) (domain.Booking, error) {
	return decode[domain.Booking](a.Client.Do(ctx, http.MethodPost, "/Bookings/"+id+"/cancel", nil, nil))
}

func (a Bookings) StartCharging(ctx context.Context, id string) (domain.Booking, error) {
	return decode[domain.Booking](a.Client.Do(ctx, http.MethodPost, "/Bookings/"+id+"/start-charging", nil, nil))
}

func (a Bookings) StopCharging(ctx context.Context, id string) (domain.Booking, error) {
	return decode[domain.Booking](a.Client.Do(ctx, http.MethodPost, "/Bookings/"+id+"/stop-charging", nil, nil))
}

func (a Bookings) CheckAvailability(ctx context.Context, in BookingInput) (domain.SlotAvailability, error) {
	return decode[domain.SlotAvailability](a.Client.Do(ctx, http.MethodPost, "/Bookings/check-availability", nil, in))
}
