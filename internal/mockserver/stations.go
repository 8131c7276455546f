package mockserver

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/muhammedyasars/VoltMate-sub000/internal/domain"
)

func (s *Server) listStations(w http.ResponseWriter, r *http.Request) {
	status := domain.StationStatus(r.URL.Query().Get("status"))
	search := r.URL.Query().Get("search")
	writeJSON(w, http.StatusOK, s.fixtures.Stations(status, search))
}

func (s *Server) searchStations(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.fixtures.Stations("", r.URL.Query().Get("q")))
}

func (s *Server) getStation(w http.ResponseWriter, r *http.Request) {
	st := s.fixtures.StationByID(chi.URLParam(r, "id"))
	if st == nil {
		writeError(w, http.StatusNotFound, "station not found")
		return
	}
	writeJSON(w, http.StatusOK, st)
}

func (s *Server) nearbyStations(w http.ResponseWriter, r *http.Request) {
	lat, err1 := strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
	lng, err2 := strconv.ParseFloat(r.URL.Query().Get("lng"), 64)
	if err1 != nil || err2 != nil {
		writeError(w, http.StatusBadRequest, "lat and lng are required")
		return
	}
	radiusKm := 10.0
	if v := r.URL.Query().Get("radius"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			radiusKm = float64(n)
		}
	}
	out := make([]domain.Station, 0)
	for _, st := range s.fixtures.Stations("", "") {
		if distanceKm(lat, lng, st.Latitude, st.Longitude) <= radiusKm {
			out = append(out, st)
		}
	}
	writeJSON(w, http.StatusOK, out)
}

// distanceKm is the haversine great-circle distance.
func distanceKm(lat1, lng1, lat2, lng2 float64) float64 {
	const earthRadiusKm = 6371
	toRad := func(deg float64) float64 { return deg * math.Pi / 180 }
	dLat := toRad(lat2 - lat1)
	dLng := toRad(lng2 - lng1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusKm * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

func (s *Server) stationAvailability(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	st := s.fixtures.StationByID(id)
	if st == nil {
		writeError(w, http.StatusNotFound, "station not found")
		return
	}
	date := r.URL.Query().Get("date")
	slots := make([]domain.SlotAvailability, 0, 12)
	for hour := 8; hour < 20; hour++ {
		start := fmt.Sprintf("%02d:00", hour)
		end := fmt.Sprintf("%02d:00", hour+1)
		free := s.fixtures.FreeChargers(id, date, start, end)
		slots = append(slots, domain.SlotAvailability{
			StationID: id,
			Date:      date,
			StartTime: start,
			EndTime:   end,
			Available: free > 0,
			FreeCount: free,
		})
	}
	writeJSON(w, http.StatusOK, slots)
}

func (s *Server) listReviews(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if s.fixtures.StationByID(id) == nil {
		writeError(w, http.StatusNotFound, "station not found")
		return
	}
	writeJSON(w, http.StatusOK, s.fixtures.Reviews(id))
}

func (s *Server) addReview(w http.ResponseWriter, r *http.Request) {
	u := currentUser(r.Context())
	id := chi.URLParam(r, "id")
	if s.fixtures.StationByID(id) == nil {
		writeError(w, http.StatusNotFound, "station not found")
		return
	}
	var req struct {
		Rating  int    `json:"rating"`
		Comment string `json:"comment"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if req.Rating < 1 || req.Rating > 5 {
		writeError(w, http.StatusBadRequest, "rating must be between 1 and 5")
		return
	}
	rv := s.fixtures.AddReview(domain.Review{
		StationID: id,
		UserID:    u.ID,
		UserName:  u.Name,
		Rating:    req.Rating,
		Comment:   req.Comment,
	})
	writeJSON(w, http.StatusCreated, rv)
}
