package ws

import "log"

// Hub fans messages out to every connection bound to a session. Delivery is
// best effort: a write failure closes that connection and is logged, but never
// aborts delivery to the rest of the session.
type Hub struct {
	registry *Registry
}

func NewHub(registry *Registry) *Hub {
	return &Hub{registry: registry}
}

func (h *Hub) Registry() *Registry {
	return h.registry
}

// Broadcast sends msg to every connection in the session except exclude
// (pass nil to reach everyone).
func (h *Hub) Broadcast(sessionID string, msg Message, exclude *Client) {
	for _, entry := range h.registry.EntriesForSession(sessionID) {
		if entry.Client == exclude {
			continue
		}
		if err := entry.Client.Send(msg); err != nil {
			log.Printf("ws: write error for session %s: %v", sessionID, err)
			entry.Client.Close()
		}
	}
}
