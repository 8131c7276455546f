package mockserver

import (
	"encoding/json"
	"net/http"

	"github.com/muhammedyasars/VoltMate-sub000/internal/domain"
)

type authResponse struct {
	Token        string      `json:"token"`
	RefreshToken string      `json:"refreshToken"`
	User         domain.User `json:"user"`
}

func (s *Server) login(role domain.UserRole) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid payload")
			return
		}
		roles := []domain.UserRole{role}
		if role == domain.RoleManager {
			// Admins may use the manager console.
			roles = append(roles, domain.RoleAdmin)
		}
		user := s.fixtures.Authenticate(req.Email, req.Password, roles...)
		if user == nil {
			writeError(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		s.writeAuthResponse(w, *user)
	}
}

func (s *Server) register(role domain.UserRole) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Name     string `json:"name"`
			Email    string `json:"email"`
			Phone    string `json:"phone"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid payload")
			return
		}
		if req.Name == "" || req.Email == "" || req.Password == "" {
			writeError(w, http.StatusBadRequest, "name, email and password are required")
			return
		}
		user, err := s.fixtures.CreateUser(req.Name, req.Email, req.Phone, req.Password, role)
		if err != nil {
			writeError(w, http.StatusConflict, err.Error())
			return
		}
		s.writeAuthResponse(w, *user)
	}
}

func (s *Server) refreshToken(w http.ResponseWriter, r *http.Request) {
	var req struct {
		RefreshToken string `json:"refreshToken"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.RefreshToken == "" {
		writeError(w, http.StatusBadRequest, "refreshToken is required")
		return
	}
	sub, err := s.parseToken(req.RefreshToken, "refresh")
	if err != nil {
		writeError(w, http.StatusUnauthorized, "invalid token")
		return
	}
	user := s.fixtures.UserByID(sub)
	if user == nil || user.Status == domain.UserSuspended {
		writeError(w, http.StatusUnauthorized, "invalid token")
		return
	}
	s.writeAuthResponse(w, *user)
}

func (s *Server) writeAuthResponse(w http.ResponseWriter, user domain.User) {
	pair, err := s.issueTokens(user)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to issue tokens")
		return
	}
	writeJSON(w, http.StatusOK, authResponse{
		Token:        pair.Access,
		RefreshToken: pair.Refresh,
		User:         user,
	})
}

func (s *Server) logout(w http.ResponseWriter, _ *http.Request) {
	// Tokens are stateless; logout is client-side.
	writeJSON(w, http.StatusOK, map[string]string{"status": "logged out"})
}

func (s *Server) verifyEmail(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Code string `json:"code"`
	}
	_ = json.NewDecoder(r.Body).Decode(&req)
	if req.Code == "" {
		writeError(w, http.StatusBadRequest, "code is required")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"verified": true})
}

func (s *Server) forgotPassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
	}
	_ = json.NewDecoder(r.Body).Decode(&req)
	if req.Email == "" {
		writeError(w, http.StatusBadRequest, "email is required")
		return
	}
	// Always succeed so the endpoint does not leak which emails exist.
	writeJSON(w, http.StatusOK, map[string]string{"status": "reset email sent"})
}

func (s *Server) resetPassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Token    string `json:"token"`
		Password string `json:"password"`
	}
	_ = json.NewDecoder(r.Body).Decode(&req)
	if req.Token == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "token and password are required")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "password updated"})
}

func (s *Server) me(w http.ResponseWriter, r *http.Request) {
	u := currentUser(r.Context())
	if u == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func (s *Server) updateProfile(w http.ResponseWriter, r *http.Request) {
	u := currentUser(r.Context())
	if u == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	var req struct {
		Name  string `json:"name"`
		Phone string `json:"phone"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	updated := s.fixtures.MutateUser(u.ID, func(user *domain.User) {
		if req.Name != "" {
			user.Name = req.Name
		}
		if req.Phone != "" {
			user.Phone = req.Phone
		}
	})
	writeJSON(w, http.StatusOK, updated)
}
