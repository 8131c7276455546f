package store

import (
	"context"
	"slices"

	"github.com/muhammedyasars/VoltMate-sub000/internal/api"
	"github.com/muhammedyasars/VoltMate-sub000/internal/domain"
)

// PaymentStore holds the saved payment methods and payment history.
type PaymentStore struct {
	state
	api api.Payments

	methods []domain.PaymentMethod
	history []domain.PaymentRecord
}

func (s *PaymentStore) Methods() []domain.PaymentMethod {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.methods)
}

func (s *PaymentStore) History() []domain.PaymentRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.history)
}

func (s *PaymentStore) FetchMethods(ctx context.Context) error {
	gen := s.begin()
	items, err := s.api.Methods(ctx)
	if err != nil {
		return s.complete(gen, actionErr("failed to fetch payment methods", err), nil)
	}
	return s.complete(gen, nil, func() { s.methods = items })
}

func (s *PaymentStore) AddMethod(ctx context.Context, in api.PaymentMethodInput) error {
	gen := s.begin()
	m, err := s.api.AddMethod(ctx, in)
	if err != nil {
		return s.complete(gen, actionErr("failed to add payment method", err), nil)
	}
	return s.complete(gen, nil, func() { s.methods = append(s.methods, m) })
}

func (s *PaymentStore) RemoveMethod(ctx context.Context, id string) error {
	gen := s.begin()
	if err := s.api.RemoveMethod(ctx, id); err != nil {
		return s.complete(gen, actionErr("failed to remove payment method", err), nil)
	}
	return s.complete(gen, nil, func() {
		s.methods = slices.DeleteFunc(slices.Clone(s.methods), func(m domain.PaymentMethod) bool {
			return m.ID == id
		})
	})
}

func (s *PaymentStore) FetchHistory(ctx context.Context) error {
	gen := s.begin()
	items, err := s.api.History(ctx)
	if err != nil {
		return s.complete(gen, actionErr("failed to fetch payment history", err), nil)
	}
	return s.complete(gen, nil, func() { s.history = items })
}
