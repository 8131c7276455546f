package mockserver

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/muhammedyasars/VoltMate-sub000/internal/domain"
)

func (s *Server) listPaymentMethods(w http.ResponseWriter, r *http.Request) {
	u := currentUser(r.Context())
	writeJSON(w, http.StatusOK, s.fixtures.PaymentMethods(u.ID))
}

func (s *Server) addPaymentMethod(w http.ResponseWriter, r *http.Request) {
	u := currentUser(r.Context())
	var req struct {
		Brand    string `json:"brand"`
		Number   string `json:"number"`
		ExpMonth int    `json:"expMonth"`
		ExpYear  int    `json:"expYear"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if len(req.Number) < 4 || req.ExpMonth < 1 || req.ExpMonth > 12 {
		writeError(w, http.StatusBadRequest, "invalid card details")
		return
	}
	m := s.fixtures.AddPaymentMethod(u.ID, domain.PaymentMethod{
		Brand:    req.Brand,
		Last4:    req.Number[len(req.Number)-4:],
		ExpMonth: req.ExpMonth,
		ExpYear:  req.ExpYear,
	})
	writeJSON(w, http.StatusCreated, m)
}

func (s *Server) removePaymentMethod(w http.ResponseWriter, r *http.Request) {
	u := currentUser(r.Context())
	if !s.fixtures.RemovePaymentMethod(u.ID, chi.URLParam(r, "id")) {
		writeError(w, http.StatusNotFound, "payment method not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (s *Server) paymentHistory(w http.ResponseWriter, r *http.Request) {
	u := currentUser(r.Context())
	writeJSON(w, http.StatusOK, s.fixtures.PaymentHistory(u.ID))
}
