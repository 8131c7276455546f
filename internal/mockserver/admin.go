package mockserver

import (
	"encoding/json"
	"net/http"
	"sort"

	"github.com/go-chi/chi/v5"

	"github.com/muhammedyasars/VoltMate-sub000/internal/domain"
)

func (s *Server) adminUsers(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.fixtures.Users(domain.RoleUser))
}

func (s *Server) adminUser(w http.ResponseWriter, r *http.Request) {
	u := s.fixtures.UserByID(chi.URLParam(r, "id"))
	if u == nil {
		writeError(w, http.StatusNotFound, "user not found")
		return
	}
	writeJSON(w, http.StatusOK, u)
}

type adminUserUpdate struct {
	Name   string            `json:"name"`
	Phone  string            `json:"phone"`
	Role   domain.UserRole   `json:"role"`
	Status domain.UserStatus `json:"status"`
}

func (s *Server) adminUpdateUser(w http.ResponseWriter, r *http.Request) {
	s.applyUserUpdate(w, r, chi.URLParam(r, "id"))
}

func (s *Server) adminUpdateManager(w http.ResponseWriter, r *http.Request) {
	s.applyUserUpdate(w, r, chi.URLParam(r, "id"))
}

func (s *Server) applyUserUpdate(w http.ResponseWriter, r *http.Request, id string) {
	var req adminUserUpdate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	updated := s.fixtures.MutateUser(id, func(u *domain.User) {
		if req.Name != "" {
			u.Name = req.Name
		}
		if req.Phone != "" {
			u.Phone = req.Phone
		}
		if req.Role != "" {
			u.Role = req.Role
		}
		if req.Status != "" {
			u.Status = req.Status
		}
	})
	if updated == nil {
		writeError(w, http.StatusNotFound, "user not found")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) adminDeleteUser(w http.ResponseWriter, r *http.Request) {
	if !s.fixtures.DeleteUser(chi.URLParam(r, "id")) {
		writeError(w, http.StatusNotFound, "user not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (s *Server) adminSuspendUser(w http.ResponseWriter, r *http.Request) {
	updated := s.fixtures.MutateUser(chi.URLParam(r, "id"), func(u *domain.User) {
		u.Status = domain.UserSuspended
	})
	if updated == nil {
		writeError(w, http.StatusNotFound, "user not found")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) adminManagers(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.fixtures.Users(domain.RoleManager))
}

func (s *Server) adminDeleteManager(w http.ResponseWriter, r *http.Request) {
	s.adminDeleteUser(w, r)
}

func (s *Server) adminStations(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.fixtures.Stations("", ""))
}

func (s *Server) adminUpdateStation(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        string               `json:"name"`
		Address     string               `json:"address"`
		Status      domain.StationStatus `json:"status"`
		Chargers    int                  `json:"chargers"`
		PricePerKWh float64              `json:"pricePerKwh"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	updated := s.fixtures.MutateStation(chi.URLParam(r, "id"), func(st *domain.Station) {
		if req.Name != "" {
			st.Name = req.Name
		}
		if req.Address != "" {
			st.Address = req.Address
		}
		if req.Status != "" {
			st.Status = req.Status
		}
		if req.Chargers > 0 {
			st.Chargers = req.Chargers
		}
		if req.PricePerKWh > 0 {
			st.PricePerKWh = req.PricePerKWh
		}
	})
	if updated == nil {
		writeError(w, http.StatusNotFound, "station not found")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) adminDeleteStation(w http.ResponseWriter, r *http.Request) {
	if !s.fixtures.DeleteStation(chi.URLParam(r, "id")) {
		writeError(w, http.StatusNotFound, "station not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (s *Server) revenueReport(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.reportSeries(r, func(b domain.Booking) float64 { return b.Amount }))
}

func (s *Server) usageReport(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.reportSeries(r, func(b domain.Booking) float64 { return b.EnergyKWh }))
}

func (s *Server) reportSeries(r *http.Request, value func(domain.Booking) float64) []domain.RevenuePoint {
	start := r.URL.Query().Get("startDate")
	end := r.URL.Query().Get("endDate")

	s.fixtures.mu.Lock()
	defer s.fixtures.mu.Unlock()
	byDate := map[string]float64{}
	for _, b := range s.fixtures.bookings {
		if b.Status != domain.BookingCompleted {
			continue
		}
		if start != "" && b.Date < start {
			continue
		}
		if end != "" && b.Date > end {
			continue
		}
		byDate[b.Date] += value(b)
	}
	dates := make([]string, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	out := make([]domain.RevenuePoint, 0, len(dates))
	for _, d := range dates {
		out = append(out, domain.RevenuePoint{Label: d, Amount: byDate[d]})
	}
	return out
}
