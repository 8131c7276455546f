package store

import (
	"context"
	"slices"

	"github.com/muhammedyasars/VoltMate-sub000/internal/api"
	"github.com/muhammedyasars/VoltMate-sub000/internal/domain"
)

// StationStore holds the station list, the selected station detail and its
// reviews.
type StationStore struct {
	state
	api api.Stations

	stations []domain.Station
	selected *domain.Station
	reviews  []domain.Review
}

func (s *StationStore) Stations() []domain.Station {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.stations)
}

func (s *StationStore) Selected() *domain.Station {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selected == nil {
		return nil
	}
	st := *s.selected
	return &st
}

func (s *StationStore) Reviews() []domain.Review {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.reviews)
}

// Filtered applies status/search filtering to the held list, preserving
// order. Derived reads never touch the network.
func (s *StationStore) Filtered(status domain.StationStatus, term string) []domain.Station {
	return domain.FilterStations(s.Stations(), status, term)
}

// Page returns one page of the held list.
func (s *StationStore) Page(page, perPage int) []domain.Station {
	return domain.Paginate(s.Stations(), page, perPage)
}

func (s *StationStore) FetchStations(ctx context.Context, p api.StationListParams) error {
	gen := s.begin()
	items, err := s.api.List(ctx, p)
	if err != nil {
		return s.complete(gen, actionErr("failed to fetch stations", err), nil)
	}
	return s.complete(gen, nil, func() { s.stations = items })
}

func (s *StationStore) SearchStations(ctx context.Context, term string) error {
	gen := s.begin()
	items, err := s.api.Search(ctx, term)
	if err != nil {
		return s.complete(gen, actionErr("station search failed", err), nil)
	}
	return s.complete(gen, nil, func() { s.stations = items })
}

func (s *StationStore) FetchNearby(ctx context.Context, lat, lng float64, radiusKm int) error {
	gen := s.begin()
	items, err := s.api.Nearby(ctx, lat, lng, radiusKm)
	if err != nil {
		return s.complete(gen, actionErr("failed to fetch nearby stations", err), nil)
	}
	return s.complete(gen, nil, func() { s.stations = items })
}

// FetchStation loads the detail view. A 404 clears the selection without
// recording an error; the UI renders its own not-found placeholder.
func (s *StationStore) FetchStation(ctx context.Context, id string) error {
	gen := s.begin()
	st, err := s.api.Get(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return s.complete(gen, nil, func() { s.selected = nil })
		}
		return s.complete(gen, actionErr("failed to fetch station", err), nil)
	}
	return s.complete(gen, nil, func() { s.selected = &st })
}

func (s *StationStore) FetchReviews(ctx context.Context, stationID string) error {
	gen := s.begin()
	items, err := s.api.Reviews(ctx, stationID)
	if err != nil {
		return s.complete(gen, actionErr("failed to fetch reviews", err), nil)
	}
	return s.complete(gen, nil, func() { s.reviews = items })
}

func (s *StationStore) AddReview(ctx context.Context, stationID string, in api.ReviewInput) error {
	gen := s.begin()
	rv, err := s.api.AddReview(ctx, stationID, in)
	if err != nil {
		return s.complete(gen, actionErr("failed to add review", err), nil)
	}
	return s.complete(gen, nil, func() { s.reviews = append(s.reviews, rv) })
}
