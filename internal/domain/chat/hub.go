package chat

import (
	"encoding/json"
	"log"
)

// Hub fans chat messages out to websocket subscribers, grouped by role
// group. Polling the REST endpoint remains the fallback for clients that
// never open a socket.
type Hub struct {
	groups     map[string]map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan outbound
}

type outbound struct {
	group   string
	payload []byte
}

func NewHub() *Hub {
	return &Hub{
		groups:     make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan outbound, 64),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			if h.groups[client.group] == nil {
				h.groups[client.group] = make(map[*Client]bool)
			}
			h.groups[client.group][client] = true

		case client := <-h.unregister:
			if clients, ok := h.groups[client.group]; ok {
				if clients[client] {
					delete(clients, client)
					close(client.send)
					if len(clients) == 0 {
						delete(h.groups, client.group)
					}
				}
			}

		case msg := <-h.broadcast:
			for client := range h.groups[msg.group] {
				select {
				case client.send <- msg.payload:
				default:
					// Slow consumer, drop it.
					delete(h.groups[msg.group], client)
					close(client.send)
				}
			}
		}
	}
}

// Publish pushes a stored message to every subscriber of its role group.
func (h *Hub) Publish(m *Message) {
	payload, err := json.Marshal(m)
	if err != nil {
		log.Printf("marshal chat message %d: %v", m.ID, err)
		return
	}
	h.broadcast <- outbound{group: string(m.AuthorRole), payload: payload}
}
