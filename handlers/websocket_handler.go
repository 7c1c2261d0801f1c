package handlers

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/Dosada05/arbitro/brackets"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Origins are enforced by the CORS middleware in front of the router.
	CheckOrigin: func(r *http.Request) bool { return true },
}

type WebSocketHandler struct {
	hub *brackets.Hub
}

func NewWebSocketHandler(hub *brackets.Hub) *WebSocketHandler {
	return &WebSocketHandler{hub: hub}
}

// ServeWs subscribes a client to one tournament or league.
// Clients connect to /ws/tournaments/{name} or /ws/leagues/{name}.
func (h *WebSocketHandler) ServeWs(w http.ResponseWriter, r *http.Request) {
	name, err := getNameFromURL(r, "name")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var roomID string
	switch chi.URLParam(r, "kind") {
	case "tournaments":
		roomID = brackets.TournamentRoom(name)
	case "leagues":
		roomID = brackets.LeagueRoom(name)
	default:
		notFoundResponse(w, r, "")
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written the HTTP error.
		log.Printf("Failed to upgrade connection for room %s: %v", roomID, err)
		return
	}

	client := &brackets.Client{
		Hub:  h.hub,
		Conn: conn,
		Send: make(chan []byte, 256),
		Room: roomID,
	}
	if !h.hub.Join(client) {
		log.Printf("Hub stopped, rejecting client for room %s", roomID)
		conn.Close()
		return
	}

	go client.WritePump()
	go client.ReadPump()

	log.Printf("Client registered for room %s", roomID)
}
