package store

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/muhammedyasars/VoltMate-sub000/internal/api"
	"github.com/muhammedyasars/VoltMate-sub000/internal/apiclient"
	"github.com/muhammedyasars/VoltMate-sub000/internal/config"
	"github.com/muhammedyasars/VoltMate-sub000/internal/domain"
	"github.com/muhammedyasars/VoltMate-sub000/internal/mockserver"
)

func newTestStores(t *testing.T) *Stores {
	t.Helper()
	cfg := config.Config{
		JWTSecret:       "test-secret",
		FixtureSeed:     1,
		AccessTokenTTL:  30 * time.Minute,
		RefreshTokenTTL: time.Hour,
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv := mockserver.New(cfg, logger)
	ts := httptest.NewServer(srv.Routes())
	t.Cleanup(ts.Close)

	client := apiclient.New(ts.URL+"/api", 5*time.Second, apiclient.NewMemoryTokenStore(), logger)
	return New(client)
}

func loginAs(t *testing.T, s *Stores, role domain.UserRole) {
	t.Helper()
	creds := api.Credentials{Password: mockserver.SeedPassword}
	var err error
	switch role {
	case domain.RoleManager:
		creds.Email = "manager@voltmate.dev"
		err = s.Auth.ManagerLogin(context.Background(), creds)
	case domain.RoleAdmin:
		creds.Email = "admin@voltmate.dev"
		err = s.Auth.AdminLogin(context.Background(), creds)
	default:
		creds.Email = "user@voltmate.dev"
		err = s.Auth.Login(context.Background(), creds)
	}
	if err != nil {
		t.Fatalf("login as %s failed: %v", role, err)
	}
}

func TestLoginLifecycle(t *testing.T) {
	s := newTestStores(t)
	ctx := context.Background()

	loginAs(t, s, domain.RoleUser)
	u := s.Auth.User()
	if u == nil {
		t.Fatal("User() = nil after login")
	}
	if u.Name != "Arjun Nair" || u.Role != domain.RoleUser {
		t.Errorf("logged in as %s (%s), want Arjun Nair (user)", u.Name, u.Role)
	}
	if s.Auth.Loading() {
		t.Error("Loading() = true after login settled")
	}
	if err := s.Auth.Err(); err != nil {
		t.Errorf("Err() = %v after successful login", err)
	}
	if exp := s.Auth.SessionExpiresAt(); !exp.After(time.Now()) {
		t.Errorf("SessionExpiresAt() = %v, want in the future", exp)
	}

	if err := s.Auth.Logout(ctx); err != nil {
		t.Fatalf("Logout() error = %v", err)
	}
	if s.Auth.LoggedIn() {
		t.Error("LoggedIn() = true after logout")
	}
	if !s.Auth.SessionExpiresAt().IsZero() {
		t.Error("SessionExpiresAt() not zero after logout")
	}
}

func TestLoginFailureSetsError(t *testing.T) {
	s := newTestStores(t)

	err := s.Auth.Login(context.Background(), api.Credentials{
		Email:    "user@voltmate.dev",
		Password: "wrong",
	})
	if err == nil {
		t.Fatal("Login() with bad password succeeded")
	}
	// A rejected login is a credential problem, not an expired session.
	if errors.Is(err, apiclient.ErrSessionExpired) {
		t.Errorf("Login() error = %v, want a plain API error", err)
	}
	if !errors.Is(s.Auth.Err(), err) {
		t.Errorf("Err() = %v, want the returned error recorded", s.Auth.Err())
	}
	if s.Auth.LoggedIn() {
		t.Error("LoggedIn() = true after failed login")
	}
	if s.Auth.Loading() {
		t.Error("Loading() = true after failed login settled")
	}
}

func TestStationBrowsing(t *testing.T) {
	s := newTestStores(t)
	ctx := context.Background()

	if err := s.Stations.FetchStations(ctx, api.StationListParams{}); err != nil {
		t.Fatalf("FetchStations() error = %v", err)
	}
	all := s.Stations.Stations()
	if len(all) != 48 {
		t.Fatalf("got %d stations, want 48", len(all))
	}
	if got := len(s.Stations.Filtered(domain.StationOnline, "")); got != 32 {
		t.Errorf("online stations = %d, want 32", got)
	}
	if got := len(s.Stations.Page(3, 20)); got != 8 {
		t.Errorf("page 3 of 20 = %d stations, want 8", got)
	}

	if err := s.Stations.FetchStation(ctx, "st-7"); err != nil {
		t.Fatalf("FetchStation() error = %v", err)
	}
	if sel := s.Stations.Selected(); sel == nil || sel.ID != "st-7" {
		t.Errorf("Selected() = %+v, want st-7", sel)
	}

	// A missing station clears the selection without recording an error.
	if err := s.Stations.FetchStation(ctx, "st-999"); err != nil {
		t.Fatalf("FetchStation() on missing id error = %v", err)
	}
	if s.Stations.Selected() != nil {
		t.Error("Selected() != nil after 404")
	}
	if s.Stations.Err() != nil {
		t.Errorf("Err() = %v after 404", s.Stations.Err())
	}
}

func TestReviews(t *testing.T) {
	s := newTestStores(t)
	ctx := context.Background()
	loginAs(t, s, domain.RoleUser)

	if err := s.Stations.FetchReviews(ctx, "st-1"); err != nil {
		t.Fatalf("FetchReviews() error = %v", err)
	}
	before := len(s.Stations.Reviews())

	err := s.Stations.AddReview(ctx, "st-1", api.ReviewInput{Rating: 5, Comment: "Fast chargers"})
	if err != nil {
		t.Fatalf("AddReview() error = %v", err)
	}
	got := s.Stations.Reviews()
	if len(got) != before+1 {
		t.Fatalf("reviews = %d, want %d", len(got), before+1)
	}
	last := got[len(got)-1]
	if last.Rating != 5 || last.Comment != "Fast chargers" {
		t.Errorf("appended review = %+v", last)
	}

	if err := s.Stations.AddReview(ctx, "st-1", api.ReviewInput{Rating: 9}); err == nil {
		t.Error("AddReview() with rating 9 succeeded")
	}
	if len(s.Stations.Reviews()) != before+1 {
		t.Error("failed review mutated the held list")
	}
}

func TestBookingTransitions(t *testing.T) {
	s := newTestStores(t)
	ctx := context.Background()
	loginAs(t, s, domain.RoleUser)

	if err := s.Bookings.FetchBookings(ctx, api.BookingListParams{}); err != nil {
		t.Fatalf("FetchBookings() error = %v", err)
	}
	if got := len(s.Bookings.Bookings()); got != 100 {
		t.Fatalf("got %d bookings, want 100", got)
	}

	// Booking 2 is seeded confirmed: start then stop charging.
	if err := s.Bookings.StartCharging(ctx, "2"); err != nil {
		t.Fatalf("StartCharging() error = %v", err)
	}
	if b := bookingByID(t, s, "2"); b.Status != domain.BookingActive {
		t.Errorf("booking 2 status = %s, want active", b.Status)
	}
	if err := s.Bookings.StopCharging(ctx, "2"); err != nil {
		t.Fatalf("StopCharging() error = %v", err)
	}
	b := bookingByID(t, s, "2")
	if b.Status != domain.BookingCompleted {
		t.Errorf("booking 2 status = %s, want completed", b.Status)
	}
	if b.PaymentStatus != domain.PaymentPaid {
		t.Errorf("booking 2 payment = %s, want paid", b.PaymentStatus)
	}

	// Booking 5 is seeded confirmed: cancel it and confirm a refetch agrees.
	if err := s.Bookings.CancelBooking(ctx, "5"); err != nil {
		t.Fatalf("CancelBooking() error = %v", err)
	}
	if b := bookingByID(t, s, "5"); b.Status != domain.BookingCancelled {
		t.Errorf("booking 5 status = %s, want cancelled", b.Status)
	}
	if err := s.Bookings.FetchBooking(ctx, "5"); err != nil {
		t.Fatalf("FetchBooking() error = %v", err)
	}
	if cur := s.Bookings.Current(); cur == nil || cur.Status != domain.BookingCancelled {
		t.Errorf("Current() = %+v, want cancelled booking 5", cur)
	}

	// Cancelling a cancelled booking is rejected and changes nothing.
	err := s.Bookings.CancelBooking(ctx, "5")
	if !apiclient.IsStatus(err, http.StatusConflict) {
		t.Fatalf("second cancel error = %v, want 409", err)
	}
	if !errors.Is(s.Bookings.Err(), err) {
		t.Errorf("Err() = %v, want the returned error recorded", s.Bookings.Err())
	}
	if b := bookingByID(t, s, "5"); b.Status != domain.BookingCancelled {
		t.Errorf("booking 5 status = %s after rejected transition", b.Status)
	}
	if s.Bookings.Loading() {
		t.Error("Loading() = true after rejected transition settled")
	}
}

func TestCreateBooking(t *testing.T) {
	s := newTestStores(t)
	ctx := context.Background()
	loginAs(t, s, domain.RoleUser)

	if err := s.Bookings.FetchBookings(ctx, api.BookingListParams{}); err != nil {
		t.Fatalf("FetchBookings() error = %v", err)
	}
	before := len(s.Bookings.Bookings())

	in := api.BookingInput{
		StationID:    "st-1",
		Date:         "2026-09-15",
		StartTime:    "10:00",
		EndTime:      "11:00",
		DurationMins: 60,
	}
	if err := s.Bookings.CheckAvailability(ctx, in); err != nil {
		t.Fatalf("CheckAvailability() error = %v", err)
	}
	av := s.Bookings.Availability()
	if av == nil || !av.Available {
		t.Fatalf("Availability() = %+v, want an open slot", av)
	}

	if err := s.Bookings.CreateBooking(ctx, in); err != nil {
		t.Fatalf("CreateBooking() error = %v", err)
	}
	if got := len(s.Bookings.Bookings()); got != before+1 {
		t.Errorf("bookings = %d, want %d", got, before+1)
	}
	cur := s.Bookings.Current()
	if cur == nil || cur.StationID != "st-1" || cur.Status != domain.BookingConfirmed {
		t.Errorf("Current() = %+v, want a confirmed booking at st-1", cur)
	}

	// An inverted time window is rejected; the held list stays untouched.
	bad := in
	bad.StartTime, bad.EndTime = "11:00", "10:00"
	err := s.Bookings.CreateBooking(ctx, bad)
	if !apiclient.IsStatus(err, http.StatusBadRequest) {
		t.Fatalf("CreateBooking() with inverted window error = %v, want 400", err)
	}
	if got := len(s.Bookings.Bookings()); got != before+1 {
		t.Errorf("failed create mutated the list: %d bookings", got)
	}
	if s.Bookings.Err() == nil {
		t.Error("Err() = nil after failed create")
	}
}

func TestSessionExpiryPreservesData(t *testing.T) {
	s := newTestStores(t)
	ctx := context.Background()
	loginAs(t, s, domain.RoleUser)

	if err := s.Bookings.FetchBookings(ctx, api.BookingListParams{}); err != nil {
		t.Fatalf("FetchBookings() error = %v", err)
	}
	if err := s.Auth.Logout(ctx); err != nil {
		t.Fatalf("Logout() error = %v", err)
	}

	err := s.Bookings.FetchBookings(ctx, api.BookingListParams{})
	if !errors.Is(err, apiclient.ErrSessionExpired) {
		t.Fatalf("FetchBookings() without session error = %v, want ErrSessionExpired", err)
	}
	// The last good data survives the failure; the UI decides what to drop.
	if got := len(s.Bookings.Bookings()); got != 100 {
		t.Errorf("bookings = %d after failed refetch, want 100 preserved", got)
	}
	if s.Bookings.Err() == nil {
		t.Error("Err() = nil after failed refetch")
	}
	if s.Bookings.Loading() {
		t.Error("Loading() = true after failed refetch settled")
	}
}

func TestChatFlow(t *testing.T) {
	s := newTestStores(t)
	ctx := context.Background()
	loginAs(t, s, domain.RoleUser)

	if err := s.Chat.FetchRooms(ctx); err != nil {
		t.Fatalf("FetchRooms() error = %v", err)
	}
	if got := len(s.Chat.Rooms()); got != 2 {
		t.Fatalf("rooms = %d, want 2", got)
	}
	if roomByID(t, s, "room-1").UnreadCount != 1 {
		t.Error("room-1 seeded unread count != 1")
	}

	if err := s.Chat.FetchMessages(ctx, "room-1"); err != nil {
		t.Fatalf("FetchMessages() error = %v", err)
	}
	if got := len(s.Chat.Messages("room-1")); got != 1 {
		t.Fatalf("messages = %d, want 1", got)
	}

	if err := s.Chat.SendMessage(ctx, "room-1", "My charger is stuck"); err != nil {
		t.Fatalf("SendMessage() error = %v", err)
	}
	msgs := s.Chat.Messages("room-1")
	if len(msgs) != 2 || msgs[1].Text != "My charger is stuck" {
		t.Errorf("messages after send = %+v", msgs)
	}
	if roomByID(t, s, "room-1").LastMessage != "My charger is stuck" {
		t.Error("room preview not updated after send")
	}

	if err := s.Chat.MarkRead(ctx, "room-1"); err != nil {
		t.Fatalf("MarkRead() error = %v", err)
	}
	if roomByID(t, s, "room-1").UnreadCount != 0 {
		t.Error("unread count not cleared")
	}
	for _, m := range s.Chat.Messages("room-1") {
		if !m.Read {
			t.Errorf("message %s still unread", m.ID)
		}
	}
}

func TestAdminUserManagement(t *testing.T) {
	s := newTestStores(t)
	ctx := context.Background()
	loginAs(t, s, domain.RoleAdmin)

	if err := s.Admin.FetchUsers(ctx); err != nil {
		t.Fatalf("FetchUsers() error = %v", err)
	}
	before := len(s.Admin.Users())
	if before != 18 {
		t.Fatalf("users = %d, want 18", before)
	}

	if err := s.Admin.SuspendUser(ctx, "u-4"); err != nil {
		t.Fatalf("SuspendUser() error = %v", err)
	}
	if userByID(t, s, "u-4").Status != domain.UserSuspended {
		t.Error("u-4 not suspended in held list")
	}

	if err := s.Admin.UpdateUser(ctx, "u-6", api.AdminUserUpdate{Name: "Renamed Driver"}); err != nil {
		t.Fatalf("UpdateUser() error = %v", err)
	}
	if userByID(t, s, "u-6").Name != "Renamed Driver" {
		t.Error("u-6 rename not reflected in held list")
	}

	if err := s.Admin.DeleteUser(ctx, "u-5"); err != nil {
		t.Fatalf("DeleteUser() error = %v", err)
	}
	if got := len(s.Admin.Users()); got != before-1 {
		t.Errorf("users = %d after delete, want %d", got, before-1)
	}
	for _, u := range s.Admin.Users() {
		if u.ID == "u-5" {
			t.Error("u-5 still present after delete")
		}
	}

	// Deleting again reports not-found and leaves the list untouched.
	if err := s.Admin.DeleteUser(ctx, "u-5"); !apiclient.IsNotFound(err) {
		t.Errorf("second delete error = %v, want 404", err)
	}
	if got := len(s.Admin.Users()); got != before-1 {
		t.Errorf("users = %d after failed delete, want %d", got, before-1)
	}

	if err := s.Admin.FetchManagers(ctx); err != nil {
		t.Fatalf("FetchManagers() error = %v", err)
	}
	if got := len(s.Admin.Managers()); got != 1 {
		t.Errorf("managers = %d, want 1", got)
	}
}

func TestAdminReportExport(t *testing.T) {
	s := newTestStores(t)
	ctx := context.Background()
	loginAs(t, s, domain.RoleAdmin)

	if err := s.Admin.FetchRevenueReport(ctx, "", ""); err != nil {
		t.Fatalf("FetchRevenueReport() error = %v", err)
	}
	points := s.Admin.Report()
	if len(points) == 0 {
		t.Fatal("revenue report is empty")
	}
	for i := 1; i < len(points); i++ {
		if points[i].Label < points[i-1].Label {
			t.Fatalf("report not sorted: %s before %s", points[i-1].Label, points[i].Label)
		}
	}

	path := filepath.Join(t.TempDir(), "revenue.xlsx")
	if err := s.Admin.ExportRevenueReport(ctx, "", "", path); err != nil {
		t.Fatalf("ExportRevenueReport() error = %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("exported workbook missing: %v", err)
	}
	if info.Size() == 0 {
		t.Error("exported workbook is empty")
	}
}

func TestManagerStationOps(t *testing.T) {
	s := newTestStores(t)
	ctx := context.Background()
	loginAs(t, s, domain.RoleManager)

	if err := s.Manager.FetchStations(ctx); err != nil {
		t.Fatalf("FetchStations() error = %v", err)
	}
	before := len(s.Manager.Stations())
	if before != 48 {
		t.Fatalf("managed stations = %d, want 48", before)
	}

	if err := s.Manager.UpdatePricing(ctx, "st-3", api.PricingInput{PricePerKWh: 18.5}); err != nil {
		t.Fatalf("UpdatePricing() error = %v", err)
	}
	if got := managedStation(t, s, "st-3").PricePerKWh; got != 18.5 {
		t.Errorf("st-3 price = %v, want 18.5", got)
	}

	if err := s.Manager.UpdateAvailability(ctx, "st-3", api.AvailabilityInput{
		Status:            domain.StationMaintenance,
		AvailableChargers: 0,
	}); err != nil {
		t.Fatalf("UpdateAvailability() error = %v", err)
	}
	if got := managedStation(t, s, "st-3").Status; got != domain.StationMaintenance {
		t.Errorf("st-3 status = %s, want maintenance", got)
	}

	err := s.Manager.CreateStation(ctx, api.StationInput{
		Name:           "VoltMate Hub Fort",
		Address:        "1 Fort Road",
		City:           "Kochi",
		Chargers:       4,
		ConnectorTypes: []domain.ConnectorType{domain.ConnectorCCS},
		PricePerKWh:    14,
	})
	if err != nil {
		t.Fatalf("CreateStation() error = %v", err)
	}
	stations := s.Manager.Stations()
	if len(stations) != before+1 {
		t.Fatalf("stations = %d after create, want %d", len(stations), before+1)
	}
	// New stations come up offline until the manager flips them on.
	if created := stations[len(stations)-1]; created.Status != domain.StationOffline {
		t.Errorf("created station status = %s, want offline", created.Status)
	}
}

func TestPaymentsFlow(t *testing.T) {
	s := newTestStores(t)
	ctx := context.Background()
	loginAs(t, s, domain.RoleUser)

	if err := s.Payments.FetchMethods(ctx); err != nil {
		t.Fatalf("FetchMethods() error = %v", err)
	}
	if got := len(s.Payments.Methods()); got != 1 {
		t.Fatalf("methods = %d, want 1", got)
	}

	err := s.Payments.AddMethod(ctx, api.PaymentMethodInput{
		Brand:    "mastercard",
		Number:   "5555444433331881",
		ExpMonth: 6,
		ExpYear:  2029,
	})
	if err != nil {
		t.Fatalf("AddMethod() error = %v", err)
	}
	methods := s.Payments.Methods()
	if len(methods) != 2 {
		t.Fatalf("methods = %d after add, want 2", len(methods))
	}
	if added := methods[1]; added.Last4 != "1881" {
		t.Errorf("added method last4 = %s, want 1881", added.Last4)
	}

	if err := s.Payments.RemoveMethod(ctx, "pm-1"); err != nil {
		t.Fatalf("RemoveMethod() error = %v", err)
	}
	methods = s.Payments.Methods()
	if len(methods) != 1 || methods[0].ID == "pm-1" {
		t.Errorf("methods after remove = %+v", methods)
	}

	if err := s.Payments.FetchHistory(ctx); err != nil {
		t.Fatalf("FetchHistory() error = %v", err)
	}
	if got := len(s.Payments.History()); got != 1 {
		t.Errorf("history = %d, want 1", got)
	}
}

func TestDashboards(t *testing.T) {
	tests := []struct {
		name  string
		role  domain.UserRole
		fetch func(*Stores, context.Context) error
	}{
		{name: "user", role: domain.RoleUser, fetch: func(s *Stores, ctx context.Context) error { return s.Dashboard.FetchUser(ctx) }},
		{name: "manager", role: domain.RoleManager, fetch: func(s *Stores, ctx context.Context) error { return s.Dashboard.FetchManager(ctx) }},
		{name: "admin", role: domain.RoleAdmin, fetch: func(s *Stores, ctx context.Context) error { return s.Dashboard.FetchAdmin(ctx) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestStores(t)
			loginAs(t, s, tt.role)
			if err := tt.fetch(s, context.Background()); err != nil {
				t.Fatalf("fetch dashboard error = %v", err)
			}
			if s.Dashboard.Stats() == nil {
				t.Error("Stats() = nil after fetch")
			}
		})
	}
}

func TestRoleGuard(t *testing.T) {
	s := newTestStores(t)
	ctx := context.Background()
	loginAs(t, s, domain.RoleUser)

	err := s.Admin.FetchUsers(ctx)
	if !apiclient.IsStatus(err, http.StatusForbidden) {
		t.Errorf("FetchUsers() as user error = %v, want 403", err)
	}
	err = s.Manager.FetchStations(ctx)
	if !apiclient.IsStatus(err, http.StatusForbidden) {
		t.Errorf("FetchStations() as user error = %v, want 403", err)
	}
}

func bookingByID(t *testing.T, s *Stores, id string) domain.Booking {
	t.Helper()
	for _, b := range s.Bookings.Bookings() {
		if b.ID == id {
			return b
		}
	}
	t.Fatalf("booking %s not in store", id)
	return domain.Booking{}
}

func roomByID(t *testing.T, s *Stores, id string) domain.ChatRoom {
	t.Helper()
	for _, r := range s.Chat.Rooms() {
		if r.ID == id {
			return r
		}
	}
	t.Fatalf("room %s not in store", id)
	return domain.ChatRoom{}
}

func userByID(t *testing.T, s *Stores, id string) domain.User {
	t.Helper()
	for _, u := range s.Admin.Users() {
		if u.ID == id {
			return u
		}
	}
	t.Fatalf("user %s not in store", id)
	return domain.User{}
}

func managedStation(t *testing.T, s *Stores, id string) domain.Station {
	t.Helper()
	for _, st := range s.Manager.Stations() {
		if st.ID == id {
			return st
		}
	}
	t.Fatalf("station %s not in store", id)
	return domain.Station{}
}
