// Package store holds the client-side state containers, one per domain.
// Stores are plain injected objects constructed at startup; they hold the
// last known authoritative copy of their domain's entities plus loading and
// error state, and expose action methods that orchestrate API calls.
//
// Every action follows the same contract: loading turns on and the error
// clears when the action starts; on success the relevant slice of state is
// replaced under the store lock; on failure the error is recorded and also
// returned to the caller. Each action invocation gets a generation number,
// and a response whose generation has been superseded is discarded instead
// of overwriting newer data. Loading stays true while any invocation is
// still in flight.
package store

import (
	"fmt"
	"sync"

	"github.com/muhammedyasars/VoltMate-sub000/internal/api"
	"github.com/muhammedyasars/VoltMate-sub000/internal/apiclient"
)

// state is the shared loading/error/generation bookkeeping embedded by every
// store. The mutex also guards the embedding store's data fields.
type state struct {
	mu       sync.Mutex
	inflight int
	latest   uint64
	err      error
}

// begin marks a new action: bumps the generation, raises loading and clears
// the previous error.
func (s *state) begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inflight++
	s.latest++
	s.err = nil
	return s.latest
}

// complete settles the action started at gen. apply runs under the store
// lock only while gen is still the newest invocation, so a slow response
// never overwrites the state a later call already wrote. The error, if any,
// is recorded on the store and returned so the caller can react without
// re-deriving the message.
func (s *state) complete(gen uint64, err error, apply func()) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inflight--
	current := gen == s.latest
	if err != nil {
		if current {
			s.err = err
		}
		return err
	}
	if current && apply != nil {
		apply()
	}
	return nil
}

// Loading reports whether any action on this store is still in flight.
func (s *state) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inflight > 0
}

// Err returns the error recorded by the most recent settled action, or nil.
func (s *state) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func actionErr(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}

// isNotFound: detail fetches treat a 404 as "render the placeholder", not as
// a store error.
func isNotFound(err error) bool {
	return apiclient.IsNotFound(err)
}

// Stores bundles one store per domain, wired over a shared API client.
type Stores struct {
	Auth      *AuthStore
	Stations  *StationStore
	Bookings  *BookingStore
	Chat      *ChatStore
	Dashboard *DashboardStore
	Admin     *AdminStore
	Manager   *ManagerStore
	Payments  *PaymentStore
}

func New(client *apiclient.Client) *Stores {
	return &Stores{
		Auth:      &AuthStore{api: api.Auth{Client: client}, users: api.Users{Client: client}, tokens: client.Tokens},
		Stations:  &StationStore{api: api.Stations{Client: client}},
		Bookings:  &BookingStore{api: api.Bookings{Client: client}},
		Chat:      &ChatStore{api: api.Chat{Client: client}},
		Dashboard: &DashboardStore{api: api.Dashboard{Client: client}},
		Admin:     &AdminStore{api: api.Admin{Client: client}},
		Manager:   &ManagerStore{api: api.Manager{Client: client}},
		Payments:  &PaymentStore{api: api.Payments{Client: client}},
	}
}
