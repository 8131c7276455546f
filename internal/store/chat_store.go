package store

import (
	"context"
	"slices"

	"github.com/muhammedyasars/VoltMate-sub000/internal/api"
	"github.com/muhammedyasars/VoltMate-sub000/internal/domain"
)

// ChatStore holds chat rooms and the messages of rooms that have been
// opened. Messages are kept per room so switching rooms does not refetch
// what was already loaded.
type ChatStore struct {
	state
	api api.Chat

	rooms    []domain.ChatRoom
	messages map[string][]domain.ChatMessage
}

func (s *ChatStore) Rooms() []domain.ChatRoom {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.rooms)
}

func (s *ChatStore) Messages(roomID string) []domain.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.messages[roomID])
}

func (s *ChatStore) FetchRooms(ctx context.Context) error {
	gen := s.begin()
	rooms, err := s.api.Rooms(ctx)
	if err != nil {
		return s.complete(gen, actionErr("failed to fetch chat rooms", err), nil)
	}
	return s.complete(gen, nil, func() { s.rooms = rooms })
}

func (s *ChatStore) CreateRoom(ctx context.Context, name string, participants []string) error {
	gen := s.begin()
	room, err := s.api.CreateRoom(ctx, name, participants)
	if err != nil {
		return s.complete(gen, actionErr("failed to create chat room", err), nil)
	}
	return s.complete(gen, nil, func() { s.rooms = append(s.rooms, room) })
}

func (s *ChatStore) FetchMessages(ctx context.Context, roomID string) error {
	gen := s.begin()
	msgs, err := s.api.Messages(ctx, roomID)
	if err != nil {
		return s.complete(gen, actionErr("failed to fetch messages", err), nil)
	}
	return s.complete(gen, nil, func() {
		if s.messages == nil {
			s.messages = map[string][]domain.ChatMessage{}
		}
		s.messages[roomID] = msgs
	})
}

// SendMessage appends the sent message and bumps the room's last-message
// preview.
func (s *ChatStore) SendMessage(ctx context.Context, roomID, text string) error {
	gen := s.begin()
	msg, err := s.api.SendMessage(ctx, roomID, text)
	if err != nil {
		return s.complete(gen, actionErr("failed to send message", err), nil)
	}
	return s.complete(gen, nil, func() {
		if s.messages == nil {
			s.messages = map[string][]domain.ChatMessage{}
		}
		s.messages[roomID] = append(s.messages[roomID], msg)
		for i := range s.rooms {
			if s.rooms[i].ID == roomID {
				s.rooms[i].LastMessage = msg.Text
				s.rooms[i].UpdatedAt = msg.CreatedAt
				break
			}
		}
	})
}

func (s *ChatStore) MarkRead(ctx context.Context, roomID string) error {
	gen := s.begin()
	if err := s.api.MarkRead(ctx, roomID); err != nil {
		return s.complete(gen, actionErr("failed to mark messages read", err), nil)
	}
	return s.complete(gen, nil, func() {
		for i := range s.rooms {
			if s.rooms[i].ID == roomID {
				s.rooms[i].UnreadCount = 0
				break
			}
		}
		for i := range s.messages[roomID] {
			s.messages[roomID][i].Read = true
		}
	})
}
