package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/muhammedyasars/VoltMate-sub000/internal/apiclient"
	"github.com/muhammedyasars/VoltMate-sub000/internal/domain"
)

type Stations struct {
	Client *apiclient.Client
}

type StationListParams struct {
	Status domain.StationStatus
	Search string
}

func (p StationListParams) query() url.Values {
	q := url.Values{}
	if p.Status != "" {
		q.Set("status", string(p.Status))
	}
	if p.Search != "" {
		q.Set("search", p.Search)
	}
	return q
}

func (a Stations) List(ctx context.Context, p StationListParams) ([]domain.Station, error) {
	return decode[[]domain.Station](a.Client.Do(ctx, http.MethodGet, "/Stations", p.query(), nil))
}

func (a Stations) Search(ctx context.Context, term string) ([]domain.Station, error) {
	q := url.Values{"q": {term}}
	return decode[[]domain.Station](a.Client.Do(ctx, http.MethodGet, "/Stations/search", q, nil))
}

func (a Stations) Get(ctx context.Context, id string) (domain.Station, error) {
	return decode[domain.Station](a.Client.Do(ctx, http.MethodGet, "/Stations/"+id, nil, nil))
}

func (a Stations) Availability(ctx context.Context, id, date string) ([]domain.SlotAvailability, error) {
	q := url.Values{"date": {date}}
	return decode[[]domain.SlotAvailability](a.Client.Do(ctx, http.MethodGet, "/Stations/"+id+"/availability", q, nil))
}

func (a Stations) Nearby(ctx context.Context, lat, lng float64, radiusKm int) ([]domain.Station, error) {
	q := url.Values{
		"lat":    {strconv.FormatFloat(lat, 'f', -1, 64)},
		"lng":    {strconv.FormatFloat(lng, 'f', -1, 64)},
		"radius": {strconv.Itoa(radiusKm)},
	}
	return decode[[]domain.Station](a.Client.Do(ctx, http.MethodGet, "/Stations/nearby", q, nil))
}

func (a Stations) Reviews(ctx context.Context, id string) ([]domain.Review, error) {
	return decode[[]domain.Review](a.Client.Do(ctx, http.MethodGet, "/Stations/"+id+"/reviews", nil, nil))
}

type ReviewInput struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

func (a Stations) AddReview(ctx context.Context, id string, in ReviewInput) (domain.Review, error) {
	return decode[domain.Review](a.Client.Do(ctx, http.MethodPost, "/Stations/"+id+"/reviews", nil, in))
}
