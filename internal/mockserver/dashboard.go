package mockserver

import (
	"net/http"

	"github.com/muhammedyasars/VoltMate-sub000/internal/domain"
)

func (s *Server) userDashboard(w http.ResponseWriter, r *http.Request) {
	u := currentUser(r.Context())
	writeJSON(w, http.StatusOK, s.fixtures.userStats(u.ID))
}

func (s *Server) managerDashboard(w http.ResponseWriter, r *http.Request) {
	u := currentUser(r.Context())
	writeJSON(w, http.StatusOK, s.fixtures.managerStats(u.ID))
}

func (s *Server) adminDashboard(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.fixtures.adminStats())
}

func (f *Fixtures) userStats(userID string) domain.DashboardStats {
	f.mu.Lock()
	defer f.mu.Unlock()
	stats := domain.DashboardStats{}
	for _, b := range f.bookings {
		if b.UserID != userID {
			continue
		}
		stats.TotalBookings++
		switch b.Status {
		case domain.BookingActive:
			stats.ActiveSessions++
		case domain.BookingCompleted:
			stats.TotalRevenue += b.Amount
			stats.EnergyDelivered += b.EnergyKWh
		}
	}
	stats.RevenueSeries = f.revenueSeriesLocked(func(b domain.Booking) bool { return b.UserID == userID })
	return stats
}

func (f *Fixtures) managerStats(managerID string) domain.DashboardStats {
	f.mu.Lock()
	defer f.mu.Unlock()
	owned := map[string]bool{}
	stats := domain.DashboardStats{}
	for _, st := range f.stations {
		if st.ManagerID == managerID {
			owned[st.ID] = true
			stats.TotalStations++
			stats.TotalRevenue += st.Revenue
		}
	}
	for _, b := range f.bookings {
		if !owned[b.StationID] {
			continue
		}
		stats.TotalBookings++
		if b.Status == domain.BookingActive {
			stats.ActiveSessions++
		}
		if b.Status == domain.BookingCompleted {
			stats.EnergyDelivered += b.EnergyKWh
		}
	}
	stats.RevenueSeries = f.revenueSeriesLocked(func(b domain.Booking) bool { return owned[b.StationID] })
	return stats
}

func (f *Fixtures) adminStats() domain.DashboardStats {
	f.mu.Lock()
	defer f.mu.Unlock()
	stats := domain.DashboardStats{
		TotalUsers:    len(f.users),
		TotalStations: len(f.stations),
		TotalBookings: len(f.bookings),
	}
	for _, st := range f.stations {
		stats.TotalRevenue += st.Revenue
	}
	for _, b := range f.bookings {
		if b.Status == domain.BookingActive {
			stats.ActiveSessions++
		}
		if b.Status == domain.BookingCompleted {
			stats.EnergyDelivered += b.EnergyKWh
		}
	}
	stats.RevenueSeries = f.revenueSeriesLocked(func(domain.Booking) bool { return true })
	return stats
}

// revenueSeriesLocked buckets completed-booking revenue by date. Call with
// the fixtures lock held.
func (f *Fixtures) revenueSeriesLocked(include func(domain.Booking) bool) []domain.RevenuePoint {
	byDate := map[string]float64{}
	order := []string{}
	for _, b := range f.bookings {
		if b.Status != domain.BookingCompleted || !include(b) {
			continue
		}
		if _, seen := byDate[b.Date]; !seen {
			order = append(order, b.Date)
		}
		byDate[b.Date] += b.Amount
	}
	out := make([]domain.RevenuePoint, 0, len(order))
	for _, d := range order {
		out = append(out, domain.RevenuePoint{Label: d, Amount: byDate[d]})
	}
	return out
}
