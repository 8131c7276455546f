// Package mockserver is the fixture backend for local development and
// tests: every endpoint the SDK calls, served from seeded in-memory data.
package mockserver

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/muhammedyasars/VoltMate-sub000/internal/config"
	"github.com/muhammedyasars/VoltMate-sub000/internal/domain"
)

type Server struct {
	cfg      config.Config
	logger   *slog.Logger
	fixtures *Fixtures
}

func New(cfg config.Config, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		cfg:      cfg,
		logger:   logger,
		fixtures: SeedFixtures(cfg.FixtureSeed),
	}
}

// Fixtures exposes the dataset for test assertions.
func (s *Server) Fixtures() *Fixtures { return s.fixtures }

// Routes wires HTTP routes and middleware.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(httprate.LimitByIP(600, 1*time.Minute))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Post("/Auth/login", s.login(domain.RoleUser))
		r.Post("/Auth/register", s.register(domain.RoleUser))
		r.Post("/Auth/manager/login", s.login(domain.RoleManager))
		r.Post("/Auth/manager/register", s.register(domain.RoleManager))
		r.Post("/Auth/admin/login", s.login(domain.RoleAdmin))
		r.Post("/Auth/refresh-token", s.refreshToken)
		r.Post("/Auth/verify-email", s.verifyEmail)
		r.Post("/Auth/forgot-password", s.forgotPassword)
		r.Post("/Auth/reset-password", s.resetPassword)

		// Station browsing works without a session.
		r.Get("/Stations", s.listStations)
		r.Get("/Stations/search", s.searchStations)
		r.Get("/Stations/nearby", s.nearbyStations)
		r.Get("/Stations/{id}", s.getStation)
		r.Get("/Stations/{id}/availability", s.stationAvailability)
		r.Get("/Stations/{id}/reviews", s.listReviews)

		r.Group(func(pr chi.Router) {
			pr.Use(s.authMiddleware)

			pr.Post("/Auth/logout", s.logout)
			pr.Get("/Users/me", s.me)
			pr.Put("/Users/me", s.updateProfile)
			pr.Post("/Stations/{id}/reviews", s.addReview)

			pr.Get("/Bookings", s.listBookings)
			pr.Post("/Bookings", s.createBooking)
			pr.Post("/Bookings/check-availability", s.checkAvailability)
			pr.Get("/Bookings/{id}", s.getBooking)
			pr.Put("/Bookings/{id}", s.updateBooking)
			pr.Post("/Bookings/{id}/cancel", s.cancelBooking)
			pr.Post("/Bookings/{id}/start-charging", s.startCharging)
			pr.Post("/Bookings/{id}/stop-charging", s.stopCharging)

			pr.Get("/Chat/rooms", s.listRooms)
			pr.Post("/Chat/rooms", s.createRoom)
			pr.Get("/Chat/rooms/{id}/messages", s.listMessages)
			pr.Post("/Chat/rooms/{id}/messages", s.sendMessage)
			pr.Post("/Chat/rooms/{id}/messages/mark-read", s.markRead)

			pr.Get("/Payments/methods", s.listPaymentMethods)
			pr.Post("/Payments/methods", s.addPaymentMethod)
			pr.Delete("/Payments/methods/{id}", s.removePaymentMethod)
			pr.Get("/Payments/history", s.paymentHistory)

			pr.Get("/Dashboard/user", s.userDashboard)

			pr.Group(func(mr chi.Router) {
				mr.Use(requireRole(domain.RoleManager, domain.RoleAdmin))
				mr.Get("/Dashboard/manager", s.managerDashboard)
				mr.Get("/Manager/stations", s.managerStations)
				mr.Post("/Manager/stations", s.managerCreateStation)
				mr.Put("/Manager/stations/{id}", s.managerUpdateStation)
				mr.Put("/Manager/stations/{id}/pricing", s.managerUpdatePricing)
				mr.Put("/Manager/stations/{id}/availability", s.managerUpdateAvailability)
			})

			pr.Group(func(ar chi.Router) {
				ar.Use(requireRole(domain.RoleAdmin))
				ar.Get("/Dashboard/admin", s.adminDashboard)
				ar.Get("/Admin/users", s.adminUsers)
				ar.Get("/Admin/users/{id}", s.adminUser)
				ar.Put("/Admin/users/{id}", s.adminUpdateUser)
				ar.Delete("/Admin/users/{id}", s.adminDeleteUser)
				ar.Post("/Admin/users/{id}/suspend", s.adminSuspendUser)
				ar.Get("/Admin/managers", s.adminManagers)
				ar.Put("/Admin/managers/{id}", s.adminUpdateManager)
				ar.Delete("/Admin/managers/{id}", s.adminDeleteManager)
				ar.Get("/Admin/stations", s.adminStations)
				ar.Put("/Admin/stations/{id}", s.adminUpdateStation)
				ar.Delete("/Admin/stations/{id}", s.adminDeleteStation)
				ar.Get("/Admin/reports/revenue", s.revenueReport)
				ar.Get("/Admin/reports/usage", s.usageReport)
			})
		})
	})

	return r
}
