package mockserver

import (
	"context"
	"net/http"
	"strings"

	"github.com/muhammedyasars/VoltMate-sub000/internal/domain"
)

type contextKey string

const userContextKey contextKey = "currentUser"

func withCurrentUser(ctx context.Context, user domain.User) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

func currentUser(ctx context.Context) *domain.User {
	val, ok := ctx.Value(userContextKey).(domain.User)
	if !ok {
		return nil
	}
	return &val
}

// authMiddleware validates the bearer token and sets the current user in the
// request context.
func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth := r.Header.Get("Authorization")
		if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
			writeError(w, http.StatusUnauthorized, "missing bearer token")
			return
		}
		sub, err := s.parseToken(strings.TrimPrefix(auth, "Bearer "), "access")
		if err != nil {
			writeError(w, http.StatusUnauthorized, "invalid token")
			return
		}
		user := s.fixtures.UserByID(sub)
		if user == nil || user.Status == domain.UserSuspended {
			writeError(w, http.StatusUnauthorized, "invalid token")
			return
		}
		next.ServeHTTP(w, r.WithContext(withCurrentUser(r.Context(), *user)))
	})
}

// requireRole ensures the current user has one of the allowed roles.
func requireRole(roles ...domain.UserRole) func(http.Handler) http.Handler {
	allowed := make(map[domain.UserRole]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			u := currentUser(r.Context())
			if u == nil {
				writeError(w, http.StatusForbidden, "forbidden")
				return
			}
			if _, ok := allowed[u.Role]; !ok {
				writeError(w, http.StatusForbidden, "forbidden")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
