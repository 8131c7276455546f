package mockserver

import (
	"fmt"
	"math/rand"
	"strconv"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/muhammedyasars/VoltMate-sub000/internal/domain"
)

// SeedPassword is the password of every seeded account.
const SeedPassword = "password123"

// Fixtures is the in-memory dataset the mock API serves. Seeding is
// deterministic for a given seed so tests can assert against exact shapes.
type Fixtures struct {
	mu        sync.Mutex
	users     []domain.User
	passwords map[string]string // email -> bcrypt hash
	stations  []domain.Station
	bookings  []domain.Booking
	reviews   map[string][]domain.Review
	rooms     []domain.ChatRoom
	messages  map[string][]domain.ChatMessage
	methods   map[string][]domain.PaymentMethod // userID -> methods
	history   map[string][]domain.PaymentRecord
	nextID    int
}

var stationCities = []string{"Kochi", "Chennai", "Bengaluru", "Hyderabad", "Mumbai", "Pune"}

// SeedFixtures builds the dataset: 48 stations across the three statuses,
// 100 bookings for the seed user, one account per role, chat rooms and
// payment data.
func SeedFixtures(seed int64) *Fixtures {
	rng := rand.New(rand.NewSource(seed))
	hash, _ := bcrypt.GenerateFromPassword([]byte(SeedPassword), bcrypt.MinCost)

	f := &Fixtures{
		passwords: map[string]string{},
		reviews:   map[string][]domain.Review{},
		messages:  map[string][]domain.ChatMessage{},
		methods:   map[string][]domain.PaymentMethod{},
		history:   map[string][]domain.PaymentRecord{},
		nextID:    1000,
	}

	joined := time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC)
	accounts := []struct {
		id, name, email string
		role            domain.UserRole
	}{
		{"u-1", "Arjun Nair", "user@voltmate.dev", domain.RoleUser},
		{"u-2", "Meera Pillai", "manager@voltmate.dev", domain.RoleManager},
		{"u-3", "Rahul Menon", "admin@voltmate.dev", domain.RoleAdmin},
	}
	for _, a := range accounts {
		f.users = append(f.users, domain.User{
			ID:       a.id,
			Name:     a.name,
			Email:    a.email,
			Phone:    fmt.Sprintf("+91 98%08d", rng.Intn(100000000)),
			Role:     a.role,
			Status:   domain.UserActive,
			JoinedAt: joined,
		})
		f.passwords[a.email] = string(hash)
	}
	for i := 4; i <= 20; i++ {
		status := domain.UserActive
		if i%7 == 0 {
			status = domain.UserInactive
		}
		email := fmt.Sprintf("driver%d@example.com", i)
		f.users = append(f.users, domain.User{
			ID:            "u-" + strconv.Itoa(i),
			Name:          fmt.Sprintf("Driver %d", i),
			Email:         email,
			Phone:         fmt.Sprintf("+91 97%08d", rng.Intn(100000000)),
			Role:          domain.RoleUser,
			Status:        status,
			TotalBookings: rng.Intn(40),
			TotalSpent:    float64(rng.Intn(20000)) / 10,
			JoinedAt:      joined.AddDate(0, 0, i),
		})
		f.passwords[email] = string(hash)
	}

	statuses := []domain.StationStatus{
		domain.StationOnline, domain.StationOnline, domain.StationOnline,
		domain.StationOffline, domain.StationMaintenance, domain.StationOnline,
	}
	for i := 1; i <= 48; i++ {
		chargers := 2 + rng.Intn(8)
		status := statuses[(i-1)%len(statuses)]
		available := 0
		if status == domain.StationOnline {
			available = rng.Intn(chargers + 1)
		}
		f.stations = append(f.stations, domain.Station{
			ID:                "st-" + strconv.Itoa(i),
			Name:              fmt.Sprintf("VoltMate Hub %d", i),
			Address:           fmt.Sprintf("%d MG Road", 10+i),
			City:              stationCities[(i-1)%len(stationCities)],
			Latitude:          9.9 + rng.Float64(),
			Longitude:         76.2 + rng.Float64(),
			Status:            status,
			Chargers:          chargers,
			AvailableChargers: available,
			ConnectorTypes:    []domain.ConnectorType{domain.ConnectorType2, domain.ConnectorCCS},
			PricePerKWh:       12 + float64(rng.Intn(80))/10,
			ManagerID:         "u-2",
			ManagerName:       "Meera Pillai",
			Revenue:           float64(rng.Intn(500000)) / 100,
			Utilization:       float64(rng.Intn(101)),
			Rating:            3 + float64(rng.Intn(21))/10,
			ReviewCount:       rng.Intn(120),
		})
	}

	bookingStatuses := []domain.BookingStatus{
		domain.BookingCompleted, domain.BookingConfirmed, domain.BookingCancelled,
	}
	for i := 1; i <= 100; i++ {
		st := f.stations[(i-1)%len(f.stations)]
		status := bookingStatuses[(i-1)%len(bookingStatuses)]
		pay := domain.PaymentPaid
		if status == domain.BookingConfirmed {
			pay = domain.PaymentPending
		}
		if status == domain.BookingCancelled {
			pay = domain.PaymentRefunded
		}
		day := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, i%30)
		f.bookings = append(f.bookings, domain.Booking{
			ID:            strconv.Itoa(i),
			UserID:        "u-1",
			UserName:      "Arjun Nair",
			StationID:     st.ID,
			StationName:   st.Name,
			Date:          day.Format("2006-01-02"),
			StartTime:     fmt.Sprintf("%02d:00", 8+i%10),
			EndTime:       fmt.Sprintf("%02d:00", 9+i%10),
			DurationMins:  60,
			Status:        status,
			PaymentStatus: pay,
			Amount:        float64(150+rng.Intn(450)) / 10 * 10,
			EnergyKWh:     float64(10 + rng.Intn(40)),
			CreatedAt:     day.Add(-48 * time.Hour),
		})
	}

	f.rooms = []domain.ChatRoom{
		{ID: "room-1", Name: "Support", Participants: []string{"u-1", "u-3"}, LastMessage: "How can we help?", UnreadCount: 1, UpdatedAt: joined},
		{ID: "room-2", Name: "VoltMate Hub 1", Participants: []string{"u-1", "u-2"}, LastMessage: "Charger 2 is free now", UnreadCount: 0, UpdatedAt: joined},
	}
	f.messages["room-1"] = []domain.ChatMessage{
		{ID: "msg-1", RoomID: "room-1", SenderID: "u-3", Text: "How can we help?", CreatedAt: joined},
	}
	f.messages["room-2"] = []domain.ChatMessage{
		{ID: "msg-2", RoomID: "room-2", SenderID: "u-2", Text: "Charger 2 is free now", Read: true, CreatedAt: joined},
	}

	f.methods["u-1"] = []domain.PaymentMethod{
		{ID: "pm-1", Brand: "visa", Last4: "4242", ExpMonth: 12, ExpYear: 2028, Default: true},
	}
	f.history["u-1"] = []domain.PaymentRecord{
		{ID: "pay-1", BookingID: "1", Amount: 240, Status: domain.PaymentPaid, CreatedAt: joined},
	}

	return f
}

// newID hands out ids for entities created at runtime.
func (f *Fixtures) newID(prefix string) string {
	f.nextID++
	return prefix + "-" + strconv.Itoa(f.nextID)
}

func (f *Fixtures) UserByID(id string) *domain.User {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.users {
		if f.users[i].ID == id {
			u := f.users[i]
			return &u
		}
	}
	return nil
}

func (f *Fixtures) userByEmailLocked(email string) *domain.User {
	for i := range f.users {
		if f.users[i].Email == email {
			return &f.users[i]
		}
	}
	return nil
}

// Authenticate checks the password for an account with one of the given
// roles.
func (f *Fixtures) Authenticate(email, password string, roles ...domain.UserRole) *domain.User {
	f.mu.Lock()
	defer f.mu.Unlock()
	u := f.userByEmailLocked(email)
	if u == nil || u.Status == domain.UserSuspended {
		return nil
	}
	ok := false
	for _, r := range roles {
		if u.Role == r {
			ok = true
			break
		}
	}
	if !ok {
		return nil
	}
	hash := f.passwords[email]
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		return nil
	}
	out := *u
	return &out
}

// CreateUser registers a new account; fails when the email is taken.
func (f *Fixtures) CreateUser(name, email, phone, password string, role domain.UserRole) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.userByEmailLocked(email) != nil {
		return nil, fmt.Errorf("email already used")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		return nil, err
	}
	u := domain.User{
		ID:       f.newID("u"),
		Name:     name,
		Email:    email,
		Phone:    phone,
		Role:     role,
		Status:   domain.UserActive,
		JoinedAt: time.Now().UTC(),
	}
	f.users = append(f.users, u)
	f.passwords[email] = string(hash)
	return &u, nil
}
