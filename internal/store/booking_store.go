package store

import (
	"context"
	"slices"

	"github.com/muhammedyasars/VoltMate-sub000/internal/api"
	"github.com/muhammedyasars/VoltMate-sub000/internal/domain"
)

// BookingStore holds the user's bookings and the booking currently being
// viewed or acted on.
type BookingStore struct {
	state
	api api.Bookings

	bookings     []domain.Booking
	current      *domain.Booking
	availability *domain.SlotAvailability
}

func (s *BookingStore) Bookings() []domain.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.bookings)
}

func (s *BookingStore) Current() *domain.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	b := *s.current
	return &b
}

func (s *BookingStore) Availability() *domain.SlotAvailability {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.availability == nil {
		return nil
	}
	av := *s.availability
	return &av
}

// Page returns one page of bookings filtered by status.
func (s *BookingStore) Page(status domain.BookingStatus, page, perPage int) []domain.Booking {
	return domain.Paginate(domain.FilterBookings(s.Bookings(), status), page, perPage)
}

func (s *BookingStore) FetchBookings(ctx context.Context, p api.BookingListParams) error {
	gen := s.begin()
	items, err := s.api.List(ctx, p)
	if err != nil {
		return s.complete(gen, actionErr("failed to fetch bookings", err), nil)
	}
	return s.complete(gen, nil, func() { s.bookings = items })
}

func (s *BookingStore) FetchBooking(ctx context.Context, id string) error {
	gen := s.begin()
	b, err := s.api.Get(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return s.complete(gen, nil, func() { s.current = nil })
		}
		return s.complete(gen, actionErr("failed to fetch booking", err), nil)
	}
	return s.complete(gen, nil, func() { s.current = &b })
}

func (s *BookingStore) CheckAvailability(ctx context.Context, in api.BookingInput) error {
	gen := s.begin()
	av, err := s.api.CheckAvailability(ctx, in)
	if err != nil {
		return s.complete(gen, actionErr("availability check failed", err), nil)
	}
	return s.complete(gen, nil, func() { s.availability = &av })
}

// CreateBooking performs the remote call first and appends to the local list
// only on success; there is no optimistic write to roll back.
func (s *BookingStore) CreateBooking(ctx context.Context, in api.BookingInput) error {
	gen := s.begin()
	b, err := s.api.Create(ctx, in)
	if err != nil {
		return s.complete(gen, actionErr("failed to create booking", err), nil)
	}
	return s.complete(gen, nil, func() {
		s.bookings = append(s.bookings, b)
		s.current = &b
	})
}

func (s *BookingStore) UpdateBooking(ctx context.Context, id string, in api.BookingInput) error {
	gen := s.begin()
	b, err := s.api.Update(ctx, id, in)
	if err != nil {
		return s.complete(gen, actionErr("failed to update booking", err), nil)
	}
	return s.complete(gen, nil, func() { s.replace(b) })
}

func (s *BookingStore) CancelBooking(ctx context.Context, id string) error {
	return s.transition(ctx, id, s.api.Cancel, "failed to cancel booking")
}

func (s *BookingStore) StartCharging(ctx context.Context, id string) error {
	return s.transition(ctx, id, s.api.StartCharging, "failed to start charging")
}

func (s *BookingStore) StopCharging(ctx context.Context, id string) error {
	return s.transition(ctx, id, s.api.StopCharging, "failed to stop charging")
}

func (s *BookingStore) transition(ctx context.Context, id string, call func(context.Context, string) (domain.Booking, error), msg string) error {
	gen := s.begin()
	b, err := call(ctx, id)
	if err != nil {
		return s.complete(gen, actionErr(msg, err), nil)
	}
	return s.complete(gen, nil, func() { s.replace(b) })
}

// replace swaps the matching booking in the held list; called under lock.
func (s *BookingStore) replace(b domain.Booking) {
	for i := range s.bookings {
		if s.bookings[i].ID == b.ID {
			s.bookings[i] = b
			break
		}
	}
	if s.current != nil && s.current.ID == b.ID {
		s.current = &b
	}
}
