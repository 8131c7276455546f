package mockserver

import (
	"slices"
	"time"

	"github.com/muhammedyasars/VoltMate-sub000/internal/domain"
)

func (f *Fixtures) Stations(status domain.StationStatus, search string) []domain.Station {
	f.mu.Lock()
	defer f.mu.Unlock()
	return domain.FilterStations(f.stations, status, search)
}

func (f *Fixtures) StationByID(id string) *domain.Station {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.stationByIDLocked(id)
}

func (f *Fixtures) stationByIDLocked(id string) *domain.Station {
	for i := range f.stations {
		if f.stations[i].ID == id {
			st := f.stations[i]
			return &st
		}
	}
	return nil
}

func (f *Fixtures) StationsByManager(managerID string) []domain.Station {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.Station, 0)
	for _, st := range f.stations {
		if st.ManagerID == managerID {
			out = append(out, st)
		}
	}
	return out
}

func (f *Fixtures) AddStation(st domain.Station) domain.Station {
	f.mu.Lock()
	defer f.mu.Unlock()
	st.ID = f.newID("st")
	f.stations = append(f.stations, st)
	return st
}

// MutateStation applies fn to the matching station and returns the result.
func (f *Fixtures) MutateStation(id string, fn func(*domain.Station)) *domain.Station {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.stations {
		if f.stations[i].ID == id {
			fn(&f.stations[i])
			st := f.stations[i]
			return &st
		}
	}
	return nil
}

func (f *Fixtures) DeleteStation(id string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := len(f.stations)
	f.stations = slices.DeleteFunc(f.stations, func(st domain.Station) bool { return st.ID == id })
	return len(f.stations) < n
}

func (f *Fixtures) Bookings(userID string, status domain.BookingStatus) []domain.Booking {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.Booking, 0)
	for _, b := range f.bookings {
		if userID != "" && b.UserID != userID {
			continue
		}
		if status != "" && b.Status != status {
			continue
		}
		out = append(out, b)
	}
	return out
}

func (f *Fixtures) BookingByID(id string) *domain.Booking {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.bookings {
		if f.bookings[i].ID == id {
			b := f.bookings[i]
			return &b
		}
	}
	return nil
}

func (f *Fixtures) AddBooking(b domain.Booking) domain.Booking {
	f.mu.Lock()
	defer f.mu.Unlock()
	b.ID = f.newID("bk")
	b.CreatedAt = time.Now().UTC()
	f.bookings = append(f.bookings, b)
	return b
}

func (f *Fixtures) MutateBooking(id string, fn func(*domain.Booking)) *domain.Booking {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.bookings {
		if f.bookings[i].ID == id {
			fn(&f.bookings[i])
			b := f.bookings[i]
			return &b
		}
	}
	return nil
}

func (f *Fixtures) Users(role domain.UserRole) []domain.User {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.User, 0)
	for _, u := range f.users {
		if role == "" || u.Role == role {
			out = append(out, u)
		}
	}
	return out
}

func (f *Fixtures) MutateUser(id string, fn func(*domain.User)) *domain.User {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.users {
		if f.users[i].ID == id {
			fn(&f.users[i])
			u := f.users[i]
			return &u
		}
	}
	return nil
}

func (f *Fixtures) DeleteUser(id string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := len(f.users)
	f.users = slices.DeleteFunc(f.users, func(u domain.User) bool { return u.ID == id })
	return len(f.users) < n
}

func (f *Fixtures) Reviews(stationID string) []domain.Review {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.reviews[stationID])
}

func (f *Fixtures) AddReview(rv domain.Review) domain.Review {
	f.mu.Lock()
	defer f.mu.Unlock()
	rv.ID = f.newID("rv")
	rv.CreatedAt = time.Now().UTC()
	f.reviews[rv.StationID] = append(f.reviews[rv.StationID], rv)
	return rv
}

func (f *Fixtures) Rooms(userID string) []domain.ChatRoom {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.ChatRoom, 0)
	for _, r := range f.rooms {
		if slices.Contains(r.Participants, userID) {
			out = append(out, r)
		}
	}
	return out
}

func (f *Fixtures) AddRoom(room domain.ChatRoom) domain.ChatRoom {
	f.mu.Lock()
	defer f.mu.Unlock()
	room.ID = f.newID("room")
	room.UpdatedAt = time.Now().UTC()
	f.rooms = append(f.rooms, room)
	return room
}

func (f *Fixtures) RoomMessages(roomID, viewerID string) ([]domain.ChatMessage, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	room := f.roomLocked(roomID)
	if room == nil || !slices.Contains(room.Participants, viewerID) {
		return nil, false
	}
	msgs := slices.Clone(f.messages[roomID])
	for i := range msgs {
		msgs[i].Mine = msgs[i].SenderID == viewerID
	}
	return msgs, true
}

func (f *Fixtures) AddMessage(msg domain.ChatMessage) (domain.ChatMessage, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	room := f.roomLocked(msg.RoomID)
	if room == nil || !slices.Contains(room.Participants, msg.SenderID) {
		return domain.ChatMessage{}, false
	}
	msg.ID = f.newID("msg")
	msg.CreatedAt = time.Now().UTC()
	msg.Mine = true
	f.messages[msg.RoomID] = append(f.messages[msg.RoomID], msg)
	room.LastMessage = msg.Text
	room.UpdatedAt = msg.CreatedAt
	for i := range f.rooms {
		if f.rooms[i].ID == msg.RoomID {
			f.rooms[i] = *room
		}
	}
	return msg, true
}

func (f *Fixtures) MarkRoomRead(roomID, viewerID string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	room := f.roomLocked(roomID)
	if room == nil || !slices.Contains(room.Participants, viewerID) {
		return false
	}
	for i := range f.rooms {
		if f.rooms[i].ID == roomID {
			f.rooms[i].UnreadCount = 0
		}
	}
	for i := range f.messages[roomID] {
		f.messages[roomID][i].Read = true
	}
	return true
}

func (f *Fixtures) roomLocked(roomID string) *domain.ChatRoom {
	for i := range f.rooms {
		if f.rooms[i].ID == roomID {
			r := f.rooms[i]
			return &r
		}
	}
	return nil
}

func (f *Fixtures) PaymentMethods(userID string) []domain.PaymentMethod {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.methods[userID])
}

func (f *Fixtures) AddPaymentMethod(userID string, m domain.PaymentMethod) domain.PaymentMethod {
	f.mu.Lock()
	defer f.mu.Unlock()
	m.ID = f.newID("pm")
	f.methods[userID] = append(f.methods[userID], m)
	return m
}

func (f *Fixtures) RemovePaymentMethod(userID, id string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := len(f.methods[userID])
	f.methods[userID] = slices.DeleteFunc(f.methods[userID], func(m domain.PaymentMethod) bool { return m.ID == id })
	return len(f.methods[userID]) < n
}

func (f *Fixtures) PaymentHistory(userID string) []domain.PaymentRecord {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.history[userID])
}

func (f *Fixtures) AddPaymentRecord(userID string, rec domain.PaymentRecord) domain.PaymentRecord {
	f.mu.Lock()
	defer f.mu.Unlock()
	rec.ID = f.newID("pay")
	rec.CreatedAt = time.Now().UTC()
	f.history[userID] = append(f.history[userID], rec)
	return rec
}

// FreeChargers counts chargers not taken by an overlapping confirmed or
// active booking for the given window.
func (f *Fixtures) FreeChargers(stationID, date, startTime, endTime string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	st := f.stationByIDLocked(stationID)
	if st == nil || st.Status != domain.StationOnline {
		return 0
	}
	taken := 0
	for _, b := range f.bookings {
		if b.StationID != stationID || b.Date != date {
			continue
		}
		if b.Status != domain.BookingConfirmed && b.Status != domain.BookingActive {
			continue
		}
		if b.StartTime < endTime && startTime < b.EndTime {
			taken++
		}
	}
	free := st.Chargers - taken
	if free < 0 {
		free = 0
	}
	return free
}
