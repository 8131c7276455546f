package api

import (
	"context"
	"net/http"

	"github.com/muhammedyasars/VoltMate-sub000/internal/apiclient"
	"github.com/muhammedyasars/VoltMate-sub000/internal/domain"
)

// Chat responses arrive double-wrapped (an extra data object inside the
// envelope), hence decodeNested throughout this module only.
type Chat struct {
	Client *apiclient.Client
}

func (a Chat) Rooms(ctx context.Context) ([]domain.ChatRoom, error) {
	return decodeNested[[]domain.ChatRoom](a.Client.Do(ctx, http.MethodGet, "/Chat/rooms", nil, nil))
}

func (a Chat) CreateRoom(ctx context.Context, name string, participants []string) (domain.ChatRoom, error) {
	return decodeNested[domain.ChatRoom](a.Client.Do(ctx, http.MethodPost, "/Chat/rooms", nil, map[string]any{
		"name":         name,
		"participants": participants,
	}))
}

func (a Chat) Messages(ctx context.Context, roomID string) ([]domain.ChatMessage, error) {
	return decodeNested[[]domain.ChatMessage](a.Client.Do(ctx, http.MethodGet, "/Chat/rooms/"+roomID+"/messages", nil, nil))
}

func (a Chat) SendMessage(ctx context.Context, roomID, text string) (domain.ChatMessage, error) {
	return decodeNested[domain.ChatMessage](a.Client.Do(ctx, http.MethodPost, "/Chat/rooms/"+roomID+"/messages", nil, map[string]string{
		"text": text,
	}))
}

func (a Chat) MarkRead(ctx context.Context, roomID string) error {
	_, err := a.Client.Do(ctx, http.MethodPost, "/Chat/rooms/"+roomID+"/messages/mark-read", nil, nil)
	return err
}
