package mockserver

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/muhammedyasars/VoltMate-sub000/internal/domain"
)

type bookingRequest struct {
	StationID    string `json:"stationId"`
	Date         string `json:"date"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
	DurationMins int    `json:"durationMins"`
}

func (s *Server) listBookings(w http.ResponseWriter, r *http.Request) {
	u := currentUser(r.Context())
	status := domain.BookingStatus(r.URL.Query().Get("status"))
	userID := u.ID
	if u.Role == domain.RoleAdmin {
		// Admins see every booking.
		userID = ""
	}
	writeJSON(w, http.StatusOK, s.fixtures.Bookings(userID, status))
}

func (s *Server) getBooking(w http.ResponseWriter, r *http.Request) {
	u := currentUser(r.Context())
	b := s.fixtures.BookingByID(chi.URLParam(r, "id"))
	if b == nil || (u.Role != domain.RoleAdmin && b.UserID != u.ID) {
		writeError(w, http.StatusNotFound, "booking not found")
		return
	}
	writeJSON(w, http.StatusOK, b)
}

func (s *Server) checkAvailability(w http.ResponseWriter, r *http.Request) {
	var req bookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if req.StationID == "" || req.Date == "" || req.StartTime == "" || req.EndTime == "" {
		writeError(w, http.StatusBadRequest, "stationId, date, startTime and endTime are required")
		return
	}
	free := s.fixtures.FreeChargers(req.StationID, req.Date, req.StartTime, req.EndTime)
	writeJSON(w, http.StatusOK, domain.SlotAvailability{
		StationID: req.StationID,
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Available: free > 0,
		FreeCount: free,
	})
}

func (s *Server) createBooking(w http.ResponseWriter, r *http.Request) {
	u := currentUser(r.Context())
	var req bookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	st := s.fixtures.StationByID(req.StationID)
	if st == nil {
		writeError(w, http.StatusNotFound, "station not found")
		return
	}
	if req.Date == "" || req.StartTime == "" || req.EndTime == "" || req.StartTime >= req.EndTime {
		writeError(w, http.StatusBadRequest, "invalid time window")
		return
	}
	if s.fixtures.FreeChargers(req.StationID, req.Date, req.StartTime, req.EndTime) == 0 {
		writeError(w, http.StatusConflict, "no charger available for that slot")
		return
	}
	duration := req.DurationMins
	if duration == 0 {
		duration = 60
	}
	b := s.fixtures.AddBooking(domain.Booking{
		UserID:        u.ID,
		UserName:      u.Name,
		StationID:     st.ID,
		StationName:   st.Name,
		Date:          req.Date,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		DurationMins:  duration,
		Status:        domain.BookingConfirmed,
		PaymentStatus: domain.PaymentPending,
		Amount:        st.PricePerKWh * float64(duration) / 60 * 20,
	})
	writeJSON(w, http.StatusCreated, b)
}

func (s *Server) updateBooking(w http.ResponseWriter, r *http.Request) {
	u := currentUser(r.Context())
	var req bookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	b := s.fixtures.BookingByID(chi.URLParam(r, "id"))
	if b == nil || b.UserID != u.ID {
		writeError(w, http.StatusNotFound, "booking not found")
		return
	}
	if b.Status != domain.BookingConfirmed && b.Status != domain.BookingPending {
		writeError(w, http.StatusConflict, "booking can no longer be changed")
		return
	}
	updated := s.fixtures.MutateBooking(b.ID, func(bk *domain.Booking) {
		if req.Date != "" {
			bk.Date = req.Date
		}
		if req.StartTime != "" {
			bk.StartTime = req.StartTime
		}
		if req.EndTime != "" {
			bk.EndTime = req.EndTime
		}
		if req.DurationMins > 0 {
			bk.DurationMins = req.DurationMins
		}
	})
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) cancelBooking(w http.ResponseWriter, r *http.Request) {
	s.transitionBooking(w, r, map[domain.BookingStatus]bool{
		domain.BookingPending:   true,
		domain.BookingConfirmed: true,
		domain.BookingActive:    true,
	}, func(b *domain.Booking) {
		b.Status = domain.BookingCancelled
		if b.PaymentStatus == domain.PaymentPaid {
			b.PaymentStatus = domain.PaymentRefunded
		}
	})
}

func (s *Server) startCharging(w http.ResponseWriter, r *http.Request) {
	s.transitionBooking(w, r, map[domain.BookingStatus]bool{
		domain.BookingConfirmed: true,
	}, func(b *domain.Booking) {
		b.Status = domain.BookingActive
	})
}

func (s *Server) stopCharging(w http.ResponseWriter, r *http.Request) {
	s.transitionBooking(w, r, map[domain.BookingStatus]bool{
		domain.BookingActive: true,
	}, func(b *domain.Booking) {
		b.Status = domain.BookingCompleted
		b.PaymentStatus = domain.PaymentPaid
	})
}

// transitionBooking applies a status change when the booking belongs to the
// caller and its current status allows the move. Completed and cancelled
// bookings are immutable.
func (s *Server) transitionBooking(w http.ResponseWriter, r *http.Request, allowed map[domain.BookingStatus]bool, apply func(*domain.Booking)) {
	u := currentUser(r.Context())
	b := s.fixtures.BookingByID(chi.URLParam(r, "id"))
	if b == nil || (u.Role != domain.RoleAdmin && b.UserID != u.ID) {
		writeError(w, http.StatusNotFound, "booking not found")
		return
	}
	if !allowed[b.Status] {
		writeError(w, http.StatusConflict, "invalid status transition")
		return
	}
	updated := s.fixtures.MutateBooking(b.ID, apply)
	writeJSON(w, http.StatusOK, updated)
}
