package api

import (
	"context"
	"net/http"

	"github.com/muhammedyasars/VoltMate-sub000/internal/apiclient"
	"github.com/muhammedyasars/VoltMate-sub000/internal/domain"
)

type Manager struct {
	Client *apiclient.Client
}

type StationInput struct {
	Name           string                 `json:"name"`
	Address        string                 `json:"address"`
	City           string                 `json:"city"`
	Latitude       float64                `json:"latitude"`
	Longitude      float64                `json:"longitude"`
	Chargers       int                    `json:"chargers"`
	ConnectorTypes []domain.ConnectorType `json:"connectorTypes"`
	PricePerKWh    float64                `json:"pricePerKwh"`
}

type PricingInput struct {
	PricePerKWh float64 `json:"pricePerKwh"`
}

type AvailabilityInput struct {
	Status            domain.StationStatus `json:"status"`
	AvailableChargers int                  `json:"availableChargers"`
}

func (a Manager) Stations(ctx context.Context) ([]domain.Station, error) {
	return decode[[]domain.Station](a.Client.Do(ctx, http.MethodGet, "/Manager/stations", nil, nil))
}

func (a Manager) CreateStation(ctx context.Context, in StationInput) (domain.Station, error) {
	return decode[domain.Station](a.Client.Do(ctx, http.MethodPost, "/Manager/stations", nil, in))
}

func (a Manager) UpdateStation(ctx context.Context, id string, in StationInput) (domain.Station, error) {
	return decode[domain.Station](a.Client.Do(ctx, http.MethodPut, "/Manager/stations/"+id, nil, in))
}

func (a Manager) UpdatePricing(ctx context.Context, id string, in PricingInput) (domain.Station, error) {
	return decode[domain.Station](a.Client.Do(ctx, http.MethodPut, "/Manager/stations/"+id+"/pricing", nil, in))
}

func (a Manager) UpdateAvailability(ctx context.Context, id string, in AvailabilityInput) (domain.Station, error) {
	return decode[domain.Station](a.Client.Do(ctx, http.MethodPut, "/Manager/stations/"+id+"/availability", nil, in))
}
