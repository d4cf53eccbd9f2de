package protocol

import (
	"bytes"
	"encoding/json"
	"log"

	"github.com/verstuyftj/ScrumPointPlanner/internal/models"
	"github.com/verstuyftj/ScrumPointPlanner/internal/services"
	"github.com/verstuyftj/ScrumPointPlanner/internal/ws"
)

var (
	pingFrame = []byte("ping")
	pongFrame = []byte("pong")
)

// Handler is the event state machine driving every session. It validates each
// inbound event against the registry and the store, mutates store state, and
// only then replies and broadcasts.
type Handler struct {
	registry *ws.Registry
	hub      *ws.Hub
	sessions *services.SessionService
	stories  *services.StoryService
	votes    *services.VoteService
}

func NewHandler(registry *ws.Registry, hub *ws.Hub, sessions *services.SessionService, stories *services.StoryService, votes *services.VoteService) *Handler {
	return &Handler{
		registry: registry,
		hub:      hub,
		sessions: sessions,
		stories:  stories,
		votes:    votes,
	}
}

// HandleConnect creates the unbound registry entry for a new connection.
func (h *Handler) HandleConnect(client *ws.Client) {
	h.registry.Register(client)
}

// HandleMessage processes one inbound frame. The ping/pong keep-alive is
// answered before envelope decoding.
func (h *Handler) HandleMessage(client *ws.Client, data []byte) {
	if bytes.Equal(bytes.TrimSpace(data), pingFrame) {
		if err := client.SendRaw(pongFrame); err != nil {
			log.Printf("protocol: pong write error: %v", err)
		}
		return
	}

	var envelope Envelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		h.sendError(client, "invalid message format")
		return
	}

	switch envelope.Type {
	case EventCreateSession:
		h.handleCreateSession(client, envelope.Payload)
	case EventJoinSession:
		h.handleJoinSession(client, envelope.Payload)
	case EventLeaveSession:
		h.handleLeaveSession(client)
	case EventCastVote:
		h.handleCastVote(client, envelope.Payload)
	case EventRevealVotes:
		h.handleRevealVotes(client)
	case EventResetVoting:
		h.handleResetVoting(client)
	case EventAddStory:
		h.handleAddStory(client, envelope.Payload)
	case EventUpdateStory:
		h.handleUpdateStory(client, envelope.Payload)
	case EventGetStories:
		h.handleGetStories(client)
	case EventSetCurrentStory:
		h.handleSetCurrentStory(client, envelope.Payload)
	case EventSetStory:
		h.handleSetStory(client, envelope.Payload)
	default:
		h.sendError(client, "unknown event type")
	}
}

// HandleDisconnect marks a bound participant as disconnected, notifies the
// session and destroys the registry entry. Best effort on a closing socket.
func (h *Handler) HandleDisconnect(client *ws.Client) {
	entry, ok := h.registry.Entry(client)
	h.registry.Remove(client)
	if !ok || entry.SessionID == "" {
		return
	}

	participant, err := h.sessions.Disconnect(entry.ParticipantID)
	if err != nil {
		log.Printf("protocol: disconnect cleanup failed: %v", err)
		return
	}

	participants, _ := h.sessions.ListParticipants(entry.SessionID)
	h.hub.Broadcast(entry.SessionID, ws.Message{
		Type: EventParticipantLeft,
		Payload: ParticipantPayload{
			SessionID:    entry.SessionID,
			Participant:  participant,
			Participants: participants,
		},
	}, nil)
}

func (h *Handler) handleCreateSession(client *ws.Client, raw json.RawMessage) {
	var payload CreateSessionPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		h.sendError(client, "invalid payload")
		return
	}

	session, participant, err := h.sessions.CreateSession(payload.SessionID, payload.SessionName, payload.Name, payload.VotingSystem)
	if err != nil {
		h.sendError(client, err.Error())
		return
	}

	h.registry.Bind(client, participant.ID, session.ID)

	h.send(client, ws.Message{
		Type: EventSessionUpdate,
		Payload: SessionUpdatePayload{
			SessionID:    session.ID,
			Participant:  participant,
			Session:      session,
			Participants: []models.Participant{*participant},
			Votes:        []models.Vote{},
		},
	})
}

func (h *Handler) handleJoinSession(client *ws.Client, raw json.RawMessage) {
	var payload JoinSessionPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		h.sendError(client, "invalid payload")
		return
	}

	participant, _, err := h.sessions.JoinSession(payload.SessionID, payload.Name)
	if err != nil {
		h.sendError(client, err.Error())
		return
	}

	h.registry.Bind(client, participant.ID, participant.SessionID)

	session, err := h.sessions.GetSession(participant.SessionID)
	if err != nil {
		h.sendError(client, err.Error())
		return
	}
	participants, _ := h.sessions.ListParticipants(session.ID)
	votes, _ := h.votes.ListVotes(session.ID)
	stories, _ := h.stories.ListStories(session.ID)

	h.send(client, ws.Message{
		Type: EventSessionUpdate,
		Payload: SessionUpdatePayload{
			SessionID:    session.ID,
			Participant:  participant,
			Session:      session,
			Participants: participants,
			Votes:        votes,
			Stories:      stories,
		},
	})

	h.hub.Broadcast(session.ID, ws.Message{
		Type: EventParticipantJoined,
		Payload: ParticipantPayload{
			SessionID:    session.ID,
			Participant:  participant,
			Participants: participants,
		},
	}, client)

	h.hub.Broadcast(session.ID, ws.Message{
		Type: EventSessionUpdate,
		Payload: SessionUpdatePayload{
			SessionID:    session.ID,
			Session:      session,
			Participants: participants,
			Votes:        votes,
		},
	}, client)
}

func (h *Handler) handleLeaveSession(client *ws.Client) {
	entry, ok := h.bound(client)
	if !ok {
		return
	}

	participant, err := h.sessions.Disconnect(entry.ParticipantID)
	if err != nil {
		h.sendError(client, err.Error())
		return
	}
	h.registry.Unbind(client)

	participants, _ := h.sessions.ListParticipants(entry.SessionID)
	h.hub.Broadcast(entry.SessionID, ws.Message{
		Type: EventParticipantLeft,
		Payload: ParticipantPayload{
			SessionID:    entry.SessionID,
			Participant:  participant,
			Participants: participants,
		},
	}, nil)
}

func (h *Handler) handleCastVote(client *ws.Client, raw json.RawMessage) {
	entry, ok := h.bound(client)
	if !ok {
		return
	}

	var payload CastVotePayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		h.sendError(client, "invalid payload")
		return
	}

	vote, allIn, err := h.votes.CastVote(entry.SessionID, entry.ParticipantID, payload.Vote)
	if err != nil {
		h.sendError(client, err.Error())
		return
	}

	votes, _ := h.votes.ListVotes(entry.SessionID)
	h.hub.Broadcast(entry.SessionID, ws.Message{
		Type: EventVoteUpdated,
		Payload: VoteUpdatedPayload{
			SessionID:  entry.SessionID,
			Vote:       vote,
			VoteCount:  len(votes),
			AllVotesIn: allIn,
		},
	}, nil)

	if allIn {
		session, err := h.sessions.GetSession(entry.SessionID)
		if err != nil {
			return
		}
		participants, _ := h.sessions.ListParticipants(entry.SessionID)
		h.hub.Broadcast(entry.SessionID, ws.Message{
			Type: EventSessionUpdate,
			Payload: SessionUpdatePayload{
				SessionID:    entry.SessionID,
				Session:      session,
				Participants: participants,
				Votes:        votes,
				AllVotesIn:   true,
			},
		}, nil)
	}
}

func (h *Handler) handleRevealVotes(client *ws.Client) {
	entry, ok := h.bound(client)
	if !ok {
		return
	}

	session, votes, err := h.sessions.Reveal(entry.SessionID)
	if err != nil {
		h.sendError(client, err.Error())
		return
	}

	h.hub.Broadcast(entry.SessionID, ws.Message{
		Type: EventVotesRevealed,
		Payload: VotesRevealedPayload{
			SessionID: entry.SessionID,
			Session:   session,
			Votes:     votes,
		},
	}, nil)
}

func (h *Handler) handleResetVoting(client *ws.Client) {
	entry, ok := h.bound(client)
	if !ok {
		return
	}

	session, stories, err := h.sessions.ResetVoting(entry.SessionID)
	if err != nil {
		h.sendError(client, err.Error())
		return
	}

	h.hub.Broadcast(entry.SessionID, ws.Message{
		Type: EventVotingReset,
		Payload: VotingResetPayload{
			SessionID: entry.SessionID,
			Session:   session,
			Stories:   stories,
		},
	}, nil)
}

func (h *Handler) handleAddStory(client *ws.Client, raw json.RawMessage) {
	entry, ok := h.boundAdmin(client)
	if !ok {
		return
	}

	var payload AddStoryPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		h.sendError(client, "invalid payload")
		return
	}

	story, err := h.stories.AddStory(entry.SessionID, payload.Title, payload.Link)
	if err != nil {
		h.sendError(client, err.Error())
		return
	}

	h.hub.Broadcast(entry.SessionID, ws.Message{
		Type: EventStoryAdded,
		Payload: StoryPayload{
			SessionID: entry.SessionID,
			Story:     story,
		},
	}, nil)
}

func (h *Handler) handleUpdateStory(client *ws.Client, raw json.RawMessage) {
	entry, ok := h.boundAdmin(client)
	if !ok {
		return
	}

	var payload UpdateStoryPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		h.sendError(client, "invalid payload")
		return
	}

	story, session, err := h.stories.UpdateStory(entry.SessionID, payload.StoryID, payload.Title, payload.Link)
	if err != nil {
		h.sendError(client, err.Error())
		return
	}

	stories, _ := h.stories.ListStories(entry.SessionID)
	h.hub.Broadcast(entry.SessionID, ws.Message{
		Type: EventStoryUpdated,
		Payload: StoryPayload{
			SessionID: entry.SessionID,
			Story:     story,
			Stories:   stories,
			Session:   session,
		},
	}, nil)
}

func (h *Handler) handleGetStories(client *ws.Client) {
	entry, ok := h.bound(client)
	if !ok {
		return
	}

	stories, err := h.stories.ListStories(entry.SessionID)
	if err != nil {
		h.sendError(client, err.Error())
		return
	}

	h.send(client, ws.Message{
		Type: EventStoriesUpdated,
		Payload: StoriesPayload{
			SessionID: entry.SessionID,
			Stories:   stories,
		},
	})
}

func (h *Handler) handleSetCurrentStory(client *ws.Client, raw json.RawMessage) {
	entry, ok := h.boundAdmin(client)
	if !ok {
		return
	}

	var payload SetCurrentStoryPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		h.sendError(client, "invalid payload")
		return
	}

	session, story, err := h.sessions.SetCurrentStory(entry.SessionID, payload.StoryID)
	if err != nil {
		h.sendError(client, err.Error())
		return
	}

	participants, _ := h.sessions.ListParticipants(entry.SessionID)
	h.hub.Broadcast(entry.SessionID, ws.Message{
		Type: EventSessionUpdate,
		Payload: SessionUpdatePayload{
			SessionID:    entry.SessionID,
			Session:      session,
			Participants: participants,
			Votes:        []models.Vote{},
		},
	}, nil)

	h.hub.Broadcast(entry.SessionID, ws.Message{
		Type: EventStoryUpdated,
		Payload: StoryPayload{
			SessionID: entry.SessionID,
			Story:     story,
			Session:   session,
		},
	}, nil)
}

func (h *Handler) handleSetStory(client *ws.Client, raw json.RawMessage) {
	entry, ok := h.boundAdmin(client)
	if !ok {
		return
	}

	var payload SetStoryPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		h.sendError(client, "invalid payload")
		return
	}

	session, err := h.sessions.SetStoryText(entry.SessionID, payload.Story)
	if err != nil {
		h.sendError(client, err.Error())
		return
	}

	participants, _ := h.sessions.ListParticipants(entry.SessionID)
	h.hub.Broadcast(entry.SessionID, ws.Message{
		Type: EventSessionUpdate,
		Payload: SessionUpdatePayload{
			SessionID:    entry.SessionID,
			Session:      session,
			Participants: participants,
			Votes:        []models.Vote{},
		},
	}, nil)
}

// bound resolves the client's registry entry, reporting an error to the client
// when it is not in a session.
func (h *Handler) bound(client *ws.Client) (ws.Entry, bool) {
	entry, ok := h.registry.Entry(client)
	if !ok || entry.SessionID == "" {
		h.sendError(client, "not in a session")
		return ws.Entry{}, false
	}
	return entry, true
}

func (h *Handler) boundAdmin(client *ws.Client) (ws.Entry, bool) {
	entry, ok := h.bound(client)
	if !ok {
		return ws.Entry{}, false
	}
	participant, err := h.sessions.GetParticipant(entry.ParticipantID)
	if err != nil {
		h.sendError(client, err.Error())
		return ws.Entry{}, false
	}
	if !participant.IsAdmin {
		h.sendError(client, "admin required")
		return ws.Entry{}, false
	}
	return entry, true
}

func (h *Handler) send(client *ws.Client, msg ws.Message) {
	if err := client.Send(msg); err != nil {
		log.Printf("protocol: write error: %v", err)
	}
}

func (h *Handler) sendError(client *ws.Client, message string) {
	h.send(client, ws.Message{Type: EventError, Payload: ErrorPayload{Message: message}})
}
