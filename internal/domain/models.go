package domain

import "time"

// Enumerations
const (
	RoleUser    UserRole = "user"
	RoleManager UserRole = "manager"
	RoleAdmin   UserRole = "admin"

	UserActive    UserStatus = "active"
	UserInactive  UserStatus = "inactive"
	UserSuspended UserStatus = "suspended"

	StationOnline      StationStatus = "online"
	StationOffline     StationStatus = "offline"
	StationMaintenance StationStatus = "maintenance"

	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingActive    BookingStatus = "active"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"

	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"

	ConnectorType2   ConnectorType = "Type2"
	ConnectorCCS     ConnectorType = "CCS"
	ConnectorCHAdeMO ConnectorType = "CHAdeMO"
)

type UserRole string
type UserStatus string
type StationStatus string
type BookingStatus string
type PaymentStatus string
type ConnectorType string

type User struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Email         string     `json:"email"`
	Phone         string     `json:"phone"`
	Role          UserRole   `json:"role"`
	Status        UserStatus `json:"status"`
	TotalBookings int        `json:"totalBookings"`
	TotalSpent    float64    `json:"totalSpent"`
	JoinedAt      time.Time  `json:"joinedAt"`
}

type Station struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	Address           string          `json:"address"`
	City              string          `json:"city"`
	Latitude          float64         `json:"latitude"`
	Longitude         float64         `json:"longitude"`
	Status            StationStatus   `json:"status"`
	Chargers          int             `json:"chargers"`
	AvailableChargers int             `json:"availableChargers"`
	ConnectorTypes    []ConnectorType `json:"connectorTypes"`
	PricePerKWh       float64         `json:"pricePerKwh"`
	ManagerID         string          `json:"managerId"`
	ManagerName       string          `json:"managerName"`
	Revenue           float64         `json:"revenue"`
	Utilization       float64         `json:"utilization"`
	Rating            float64         `json:"rating"`
	ReviewCount       int             `json:"reviewCount"`
}

type Review struct {
	ID        string    `json:"id"`
	StationID string    `json:"stationId"`
	UserID    string    `json:"userId"`
	UserName  string    `json:"userName"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}

type Booking struct {
	ID            string        `json:"id"`
	UserID        string        `json:"userId"`
	UserName      string        `json:"userName"`
	StationID     string        `json:"stationId"`
	StationName   string        `json:"stationName"`
	Date          string        `json:"date"`
	StartTime     string        `json:"startTime"`
	EndTime       string        `json:"endTime"`
	DurationMins  int           `json:"durationMins"`
	Status        BookingStatus `json:"status"`
	PaymentStatus PaymentStatus `json:"paymentStatus"`
	Amount        float64       `json:"amount"`
	EnergyKWh     float64       `json:"energyKwh"`
	CreatedAt     time.Time     `json:"createdAt"`
}

type ChatRoom struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Participants []string  `json:"participants"`
	LastMessage  string    `json:"lastMessage"`
	UnreadCount  int       `json:"unreadCount"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type ChatMessage struct {
	ID        string    `json:"id"`
	RoomID    string    `json:"roomId"`
	SenderID  string    `json:"senderId"`
	Text      string    `json:"text"`
	Mine      bool      `json:"mine"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}

type PaymentMethod struct {
	ID       string `json:"id"`
	Brand    string `json:"brand"`
	Last4    string `json:"last4"`
	ExpMonth int    `json:"expMonth"`
	ExpYear  int    `json:"expYear"`
	Default  bool   `json:"default"`
}

type PaymentRecord struct {
	ID        string        `json:"id"`
	BookingID string        `json:"bookingId"`
	Amount    float64       `json:"amount"`
	Status    PaymentStatus `json:"status"`
	CreatedAt time.Time     `json:"createdAt"`
}

// RevenuePoint is one bucket of a revenue/usage time series.
type RevenuePoint struct {
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

type DashboardStats struct {
	TotalUsers      int            `json:"totalUsers"`
	TotalStations   int            `json:"totalStations"`
	TotalBookings   int            `json:"totalBookings"`
	ActiveSessions  int            `json:"activeSessions"`
	TotalRevenue    float64        `json:"totalRevenue"`
	TodayRevenue    float64        `json:"todayRevenue"`
	EnergyDelivered float64        `json:"energyDelivered"`
	RevenueSeries   []RevenuePoint `json:"revenueSeries"`
}

// SlotAvailability reports free chargers for one time window at a station.
type SlotAvailability struct {
	StationID string `json:"stationId"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Available bool   `json:"available"`
	FreeCount int    `json:"freeCount"`
}
