package matching

import (
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/emberdate/ember-backend/internal/auth"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Configure origin checking in production
		return true
	},
}

type Hub struct {
	clients    map[uuid.UUID]*Client
	broadcast  chan Event
	register   chan *Client
	unregister chan *Client
}

type Client struct {
	hub    *Hub
	conn   *websocket.Conn
	send   chan Event
	userID uuid.UUID
}

type Event struct {
	Type   string      `json:"type"`
	UserID uuid.UUID   `json:"user_id"`
	Data   interface{} `json:"data"`
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[uuid.UUID]*Client),
		broadcast:  make(chan Event),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client.userID] = client
			log.Printf("User %s connected", client.userID)

		case client := <-h.unregister:
			if _, ok := h.clients[client.userID]; ok {
				delete(h.clients, client.userID)
				close(client.send)
				log.Printf("User %s disconnected", client.userID)
			}

		case event := <-h.broadcast:
			if client, ok := h.clients[event.UserID]; ok {
				select {
				case client.send <- event:
				default:
					close(client.send)
					delete(h.clients, client.userID)
				}
			}
		}
	}
}

// NotifyMatch tells both sides of a new match.
func (h *Hub) NotifyMatch(match *Match) {
	event := Event{
		Type: "new_match",
		Data: match,
	}

	event.UserID = match.User1ID
	h.broadcast <- event

	event.UserID = match.User2ID
	h.broadcast <- event
}

// NotifyMatchRemoved tells both sides that a match was undone.
func (h *Hub) NotifyMatchRemoved(user1, user2 uuid.UUID) {
	event := Event{
		Type: "match_removed",
		Data: map[string]uuid.UUID{"user1_id": user1, "user2_id": user2},
	}

	event.UserID = user1
	h.broadcast <- event

	event.UserID = user2
	h.broadcast <- event
}

func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserID(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println(err)
		return
	}

	client := &Client{
		hub:    h,
		conn:   conn,
		send:   make(chan Event, 256),
		userID: userID,
	}

	client.hub.register <- client

	go client.writePump()
	go client.readPump()
}

func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			break
		}
	}
}

func (c *Client) writePump() {
	defer c.conn.Close()

	for event := range c.send {
		c.conn.WriteJSON(event)
	}
	c.conn.WriteMessage(websocket.CloseMessage, []byte{})
}
