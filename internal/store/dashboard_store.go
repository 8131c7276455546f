package store

import (
	"context"

	"github.com/muhammedyasars/VoltMate-sub000/internal/api"
	"github.com/muhammedyasars/VoltMate-sub000/internal/domain"
)

// DashboardStore holds the last fetched dashboard snapshot. Stats are wholly
// server-derived; the client never updates them incrementally.
type DashboardStore struct {
	state
	api api.Dashboard

	stats *domain.DashboardStats
}

func (s *DashboardStore) Stats() *domain.DashboardStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stats == nil {
		return nil
	}
	st := *s.stats
	return &st
}

func (s *DashboardStore) FetchUser(ctx context.Context) error {
	return s.fetch(ctx, s.api.User)
}

func (s *DashboardStore) FetchManager(ctx context.Context) error {
	return s.fetch(ctx, s.api.Manager)
}

func (s *DashboardStore) FetchAdmin(ctx context.Context) error {
	return s.fetch(ctx, s.api.Admin)
}

func (s *DashboardStore) fetch(ctx context.Context, call func(context.Context) (domain.DashboardStats, error)) error {
	gen := s.begin()
	stats, err := call(ctx)
	if err != nil {
		return s.complete(gen, actionErr("failed to fetch dashboard", err), nil)
	}
	return s.complete(gen, nil, func() { s.stats = &stats })
}
