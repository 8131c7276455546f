package mockserver

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/muhammedyasars/VoltMate-sub000/internal/domain"
)

func (s *Server) managerStations(w http.ResponseWriter, r *http.Request) {
	u := currentUser(r.Context())
	writeJSON(w, http.StatusOK, s.fixtures.StationsByManager(u.ID))
}

type stationRequest struct {
	Name           string                 `json:"name"`
	Address        string                 `json:"address"`
	City           string                 `json:"city"`
	Latitude       float64                `json:"latitude"`
	Longitude      float64                `json:"longitude"`
	Chargers       int                    `json:"chargers"`
	ConnectorTypes []domain.ConnectorType `json:"connectorTypes"`
	PricePerKWh    float64                `json:"pricePerKwh"`
}

func (s *Server) managerCreateStation(w http.ResponseWriter, r *http.Request) {
	u := currentUser(r.Context())
	var req stationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if req.Name == "" || req.Address == "" || req.Chargers <= 0 {
		writeError(w, http.StatusBadRequest, "name, address and chargers are required")
		return
	}
	st := s.fixtures.AddStation(domain.Station{
		Name:              req.Name,
		Address:           req.Address,
		City:              req.City,
		Latitude:          req.Latitude,
		Longitude:         req.Longitude,
		Status:            domain.StationOffline,
		Chargers:          req.Chargers,
		ConnectorTypes:    req.ConnectorTypes,
		PricePerKWh:       req.PricePerKWh,
		ManagerID:         u.ID,
		ManagerName:       u.Name,
	})
	writeJSON(w, http.StatusCreated, st)
}

func (s *Server) managerUpdateStation(w http.ResponseWriter, r *http.Request) {
	u := currentUser(r.Context())
	var req stationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	st, ok := s.mutateOwnedStation(u, chi.URLParam(r, "id"), func(st *domain.Station) {
		if req.Name != "" {
			st.Name = req.Name
		}
		if req.Address != "" {
			st.Address = req.Address
		}
		if req.City != "" {
			st.City = req.City
		}
		if req.Chargers > 0 {
			st.Chargers = req.Chargers
		}
		if len(req.ConnectorTypes) > 0 {
			st.ConnectorTypes = req.ConnectorTypes
		}
		if req.PricePerKWh > 0 {
			st.PricePerKWh = req.PricePerKWh
		}
	})
	if !ok {
		writeError(w, http.StatusNotFound, "station not found")
		return
	}
	writeJSON(w, http.StatusOK, st)
}

func (s *Server) managerUpdatePricing(w http.ResponseWriter, r *http.Request) {
	u := currentUser(r.Context())
	var req struct {
		PricePerKWh float64 `json:"pricePerKwh"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.PricePerKWh <= 0 {
		writeError(w, http.StatusBadRequest, "pricePerKwh must be positive")
		return
	}
	st, ok := s.mutateOwnedStation(u, chi.URLParam(r, "id"), func(st *domain.Station) {
		st.PricePerKWh = req.PricePerKWh
	})
	if !ok {
		writeError(w, http.StatusNotFound, "station not found")
		return
	}
	writeJSON(w, http.StatusOK, st)
}

func (s *Server) managerUpdateAvailability(w http.ResponseWriter, r *http.Request) {
	u := currentUser(r.Context())
	var req struct {
		Status            domain.StationStatus `json:"status"`
		AvailableChargers int                  `json:"availableChargers"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	st, ok := s.mutateOwnedStation(u, chi.URLParam(r, "id"), func(st *domain.Station) {
		if req.Status != "" {
			st.Status = req.Status
		}
		if req.AvailableChargers >= 0 && req.AvailableChargers <= st.Chargers {
			st.AvailableChargers = req.AvailableChargers
		}
	})
	if !ok {
		writeError(w, http.StatusNotFound, "station not found")
		return
	}
	writeJSON(w, http.StatusOK, st)
}

// mutateOwnedStation applies fn only when the station belongs to the caller;
// admins may edit any station.
func (s *Server) mutateOwnedStation(u *domain.User, id string, fn func(*domain.Station)) (*domain.Station, bool) {
	st := s.fixtures.StationByID(id)
	if st == nil {
		return nil, false
	}
	if u.Role != domain.RoleAdmin && st.ManagerID != u.ID {
		return nil, false
	}
	return s.fixtures.MutateStation(id, fn), true
}
