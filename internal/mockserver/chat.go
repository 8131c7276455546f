package mockserver

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/muhammedyasars/VoltMate-sub000/internal/domain"
)

func (s *Server) listRooms(w http.ResponseWriter, r *http.Request) {
	u := currentUser(r.Context())
	writeNestedJSON(w, http.StatusOK, s.fixtures.Rooms(u.ID))
}

func (s *Server) createRoom(w http.ResponseWriter, r *http.Request) {
	u := currentUser(r.Context())
	var req struct {
		Name         string   `json:"name"`
		Participants []string `json:"participants"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}
	participants := req.Participants
	found := false
	for _, p := range participants {
		if p == u.ID {
			found = true
			break
		}
	}
	if !found {
		participants = append(participants, u.ID)
	}
	room := s.fixtures.AddRoom(domain.ChatRoom{Name: req.Name, Participants: participants})
	writeNestedJSON(w, http.StatusCreated, room)
}

func (s *Server) listMessages(w http.ResponseWriter, r *http.Request) {
	u := currentUser(r.Context())
	msgs, ok := s.fixtures.RoomMessages(chi.URLParam(r, "id"), u.ID)
	if !ok {
		writeError(w, http.StatusNotFound, "room not found")
		return
	}
	writeNestedJSON(w, http.StatusOK, msgs)
}

func (s *Server) sendMessage(w http.ResponseWriter, r *http.Request) {
	u := currentUser(r.Context())
	var req struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Text == "" {
		writeError(w, http.StatusBadRequest, "text is required")
		return
	}
	msg, ok := s.fixtures.AddMessage(domain.ChatMessage{
		RoomID:   chi.URLParam(r, "id"),
		SenderID: u.ID,
		Text:     req.Text,
	})
	if !ok {
		writeError(w, http.StatusNotFound, "room not found")
		return
	}
	writeNestedJSON(w, http.StatusCreated, msg)
}

func (s *Server) markRead(w http.ResponseWriter, r *http.Request) {
	u := currentUser(r.Context())
	if !s.fixtures.MarkRoomRead(chi.URLParam(r, "id"), u.ID) {
		writeError(w, http.StatusNotFound, "room not found")
		return
	}
	writeNestedJSON(w, http.StatusOK, map[string]bool{"read": true})
}
