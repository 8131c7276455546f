package store

import (
	"context"
	"slices"

	"github.com/muhammedyasars/VoltMate-sub000/internal/api"
	"github.com/muhammedyasars/VoltMate-sub000/internal/domain"
	"github.com/muhammedyasars/VoltMate-sub000/internal/reports"
)

// AdminStore holds the admin console's user, manager and station lists plus
// the last fetched report series.
type AdminStore struct {
	state
	api api.Admin

	users    []domain.User
	managers []domain.User
	stations []domain.Station
	report   []domain.RevenuePoint
}

func (s *AdminStore) Users() []domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.users)
}

func (s *AdminStore) Managers() []domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.managers)
}

func (s *AdminStore) Stations() []domain.Station {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.stations)
}

func (s *AdminStore) Report() []domain.RevenuePoint {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.report)
}

func (s *AdminStore) FetchUsers(ctx context.Context) error {
	gen := s.begin()
	items, err := s.api.Users(ctx)
	if err != nil {
		return s.complete(gen, actionErr("failed to fetch users", err), nil)
	}
	return s.complete(gen, nil, func() { s.users = items })
}

func (s *AdminStore) FetchManagers(ctx context.Context) error {
	gen := s.begin()
	items, err := s.api.Managers(ctx)
	if err != nil {
		return s.complete(gen, actionErr("failed to fetch managers", err), nil)
	}
	return s.complete(gen, nil, func() { s.managers = items })
}

func (s *AdminStore) FetchStations(ctx context.Context) error {
	gen := s.begin()
	items, err := s.api.Stations(ctx)
	if err != nil {
		return s.complete(gen, actionErr("failed to fetch stations", err), nil)
	}
	return s.complete(gen, nil, func() { s.stations = items })
}

func (s *AdminStore) UpdateUser(ctx context.Context, id string, in api.AdminUserUpdate) error {
	gen := s.begin()
	u, err := s.api.UpdateUser(ctx, id, in)
	if err != nil {
		return s.complete(gen, actionErr("failed to update user", err), nil)
	}
	return s.complete(gen, nil, func() { s.users = replaceUser(s.users, u) })
}

func (s *AdminStore) SuspendUser(ctx context.Context, id string) error {
	gen := s.begin()
	u, err := s.api.SuspendUser(ctx, id)
	if err != nil {
		return s.complete(gen, actionErr("failed to suspend user", err), nil)
	}
	return s.complete(gen, nil, func() { s.users = replaceUser(s.users, u) })
}

// DeleteUser removes the user remotely first, then drops it from the held
// list. Deleting an id that is already absent leaves the list untouched.
func (s *AdminStore) DeleteUser(ctx context.Context, id string) error {
	gen := s.begin()
	if err := s.api.DeleteUser(ctx, id); err != nil {
		return s.complete(gen, actionErr("failed to delete user", err), nil)
	}
	return s.complete(gen, nil, func() { s.users = dropUser(s.users, id) })
}

func (s *AdminStore) UpdateManager(ctx context.Context, id string, in api.AdminUserUpdate) error {
	gen := s.begin()
	u, err := s.api.UpdateManager(ctx, id, in)
	if err != nil {
		return s.complete(gen, actionErr("failed to update manager", err), nil)
	}
	return s.complete(gen, nil, func() { s.managers = replaceUser(s.managers, u) })
}

func (s *AdminStore) DeleteManager(ctx context.Context, id string) error {
	gen := s.begin()
	if err := s.api.DeleteManager(ctx, id); err != nil {
		return s.complete(gen, actionErr("failed to delete manager", err), nil)
	}
	return s.complete(gen, nil, func() { s.managers = dropUser(s.managers, id) })
}

func (s *AdminStore) UpdateStation(ctx context.Context, id string, in api.AdminStationUpdate) error {
	gen := s.begin()
	st, err := s.api.UpdateStation(ctx, id, in)
	if err != nil {
		return s.complete(gen, actionErr("failed to update station", err), nil)
	}
	return s.complete(gen, nil, func() {
		for i := range s.stations {
			if s.stations[i].ID == st.ID {
				s.stations[i] = st
				break
			}
		}
	})
}

func (s *AdminStore) DeleteStation(ctx context.Context, id string) error {
	gen := s.begin()
	if err := s.api.DeleteStation(ctx, id); err != nil {
		return s.complete(gen, actionErr("failed to delete station", err), nil)
	}
	return s.complete(gen, nil, func() {
		s.stations = slices.DeleteFunc(slices.Clone(s.stations), func(st domain.Station) bool {
			return st.ID == id
		})
	})
}

func (s *AdminStore) FetchRevenueReport(ctx context.Context, startDate, endDate string) error {
	gen := s.begin()
	points, err := s.api.RevenueReport(ctx, startDate, endDate)
	if err != nil {
		return s.complete(gen, actionErr("failed to fetch revenue report", err), nil)
	}
	return s.complete(gen, nil, func() { s.report = points })
}

func (s *AdminStore) FetchUsageReport(ctx context.Context, startDate, endDate string) error {
	gen := s.begin()
	points, err := s.api.UsageReport(ctx, startDate, endDate)
	if err != nil {
		return s.complete(gen, actionErr("failed to fetch usage report", err), nil)
	}
	return s.complete(gen, nil, func() { s.report = points })
}

// ExportRevenueReport fetches the revenue series and writes it as an xlsx
// workbook at path.
func (s *AdminStore) ExportRevenueReport(ctx context.Context, startDate, endDate, path string) error {
	gen := s.begin()
	points, err := s.api.RevenueReport(ctx, startDate, endDate)
	if err != nil {
		return s.complete(gen, actionErr("failed to fetch revenue report", err), nil)
	}
	if err := reports.WriteRevenue(path, points); err != nil {
		return s.complete(gen, actionErr("failed to export revenue report", err), nil)
	}
	return s.complete(gen, nil, func() { s.report = points })
}

func replaceUser(items []domain.User, u domain.User) []domain.User {
	out := slices.Clone(items)
	for i := range out {
		if out[i].ID == u.ID {
			out[i] = u
			break
		}
	}
	return out
}

func dropUser(items []domain.User, id string) []domain.User {
	return slices.DeleteFunc(slices.Clone(items), func(u domain.User) bool {
		return u.ID == id
	})
}
