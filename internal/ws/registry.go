package ws

import "sync"

// Entry binds a live connection to its participant and session once the client
// has joined. An unbound entry has SessionID == "" and ParticipantID == 0.
type Entry struct {
	Client        *Client
	ParticipantID uint
	SessionID     string
}

// Registry is the runtime index of who is connected to what. It is owned by
// the composition root and injected wherever it is needed; there is no
// package-level instance.
type Registry struct {
	mu      sync.RWMutex
	entries map[*Client]*Entry
}

func NewRegistry() *Registry {
	return &Registry{entries: make(map[*Client]*Entry)}
}

// Register creates an unbound entry for a freshly accepted connection.
func (r *Registry) Register(client *Client) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[client] = &Entry{Client: client}
}

// Bind attaches a participant and session to an existing entry.
func (r *Registry) Bind(client *Client, participantID uint, sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if entry, ok := r.entries[client]; ok {
		entry.ParticipantID = participantID
		entry.SessionID = sessionID
	}
}

// Unbind clears the identity of an entry without destroying it, so the
// connection can join another session.
func (r *Registry) Unbind(client *Client) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if entry, ok := r.entries[client]; ok {
		entry.ParticipantID = 0
		entry.SessionID = ""
	}
}

// Remove destroys the entry for a closed connection.
func (r *Registry) Remove(client *Client) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, client)
}

// Entry returns a copy of the client's binding.
func (r *Registry) Entry(client *Client) (Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.entries[client]
	if !ok {
		return Entry{}, false
	}
	return *entry, true
}

// EntriesForSession snapshots the entries currently bound to a session, so
// callers can mutate the registry while iterating the result.
func (r *Registry) EntriesForSession(sessionID string) []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var entries []Entry
	for _, entry := range r.entries {
		if entry.SessionID == sessionID {
			entries = append(entries, *entry)
		}
	}
	return entries
}
