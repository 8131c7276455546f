package store

import (
	"context"
	"slices"

	"github.com/muhammedyasars/VoltMate-sub000/internal/api"
	"github.com/muhammedyasars/VoltMate-sub000/internal/domain"
)

// ManagerStore holds the stations owned by the logged-in manager.
type ManagerStore struct {
	state
	api api.Manager

	stations []domain.Station
}

func (s *ManagerStore) Stations() []domain.Station {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.stations)
}

func (s *ManagerStore) FetchStations(ctx context.Context) error {
	gen := s.begin()
	items, err := s.api.Stations(ctx)
	if err != nil {
		return s.complete(gen, actionErr("failed to fetch stations", err), nil)
	}
	return s.complete(gen, nil, func() { s.stations = items })
}

func (s *ManagerStore) CreateStation(ctx context.Context, in api.StationInput) error {
	gen := s.begin()
	st, err := s.api.CreateStation(ctx, in)
	if err != nil {
		return s.complete(gen, actionErr("failed to create station", err), nil)
	}
	return s.complete(gen, nil, func() { s.stations = append(s.stations, st) })
}

func (s *ManagerStore) UpdateStation(ctx context.Context, id string, in api.StationInput) error {
	gen := s.begin()
	st, err := s.api.UpdateStation(ctx, id, in)
	if err != nil {
		return s.complete(gen, actionErr("failed to update station", err), nil)
	}
	return s.complete(gen, nil, func() { s.replace(st) })
}

func (s *ManagerStore) UpdatePricing(ctx context.Context, id string, in api.PricingInput) error {
	gen := s.begin()
	st, err := s.api.UpdatePricing(ctx, id, in)
	if err != nil {
		return s.complete(gen, actionErr("failed to update pricing", err), nil)
	}
	return s.complete(gen, nil, func() { s.replace(st) })
}

func (s *ManagerStore) UpdateAvailability(ctx context.Context, id string, in api.AvailabilityInput) error {
	gen := s.begin()
	st, err := s.api.UpdateAvailability(ctx, id, in)
	if err != nil {
		return s.complete(gen, actionErr("failed to update availability", err), nil)
	}
	return s.complete(gen, nil, func() { s.replace(st) })
}

func (s *ManagerStore) replace(st domain.Station) {
	for i := range s.stations {
		if s.stations[i].ID == st.ID {
			s.stations[i] = st
			break
		}
	}
}
