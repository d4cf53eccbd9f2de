package protocol

import (
	"encoding/json"

	"github.com/verstuyftj/ScrumPointPlanner/internal/models"
)

// Envelope is the outer wire shape of every typed event. The payload stays raw
// until the type is known.
type Envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Client → server event names.
const (
	EventCreateSession   = "create-session"
	EventJoinSession     = "join-session"
	EventLeaveSession    = "leave-session"
	EventCastVote        = "cast-vote"
	EventRevealVotes     = "reveal-votes"
	EventResetVoting     = "reset-voting"
	EventAddStory        = "add-story"
	EventUpdateStory     = "update-story"
	EventGetStories      = "get-stories"
	EventSetCurrentStory = "set-current-story"
	EventSetStory        = "set-story"
)

// Server → client event names.
const (
	EventSessionUpdate     = "session-update"
	EventParticipantJoined = "participant-joined"
	EventParticipantLeft   = "participant-left"
	EventVoteUpdated       = "vote-updated"
	EventVotesRevealed     = "votes-revealed"
	EventVotingReset       = "voting-reset"
	EventStoryAdded        = "story-added"
	EventStoryUpdated      = "story-updated"
	EventStoriesUpdated    = "stories-updated"
	EventError             = "error"
)

type CreateSessionPayload struct {
	SessionID    string `json:"sessionId"`
	SessionName  string `json:"sessionName"`
	Name         string `json:"name"`
	VotingSystem string `json:"votingSystem"`
}

type JoinSessionPayload struct {
	SessionID string `json:"sessionId"`
	Name      string `json:"name"`
}

type CastVotePayload struct {
	Vote string `json:"vote"`
}

type AddStoryPayload struct {
	Title string `json:"title"`
	Link  string `json:"link"`
}

type UpdateStoryPayload struct {
	StoryID uint   `json:"storyId"`
	Title   string `json:"title"`
	Link    string `json:"link"`
}

type SetCurrentStoryPayload struct {
	StoryID uint `json:"storyId"`
}

type SetStoryPayload struct {
	Story string `json:"story"`
}

type SessionUpdatePayload struct {
	SessionID    string               `json:"sessionId"`
	Participant  *models.Participant  `json:"participant,omitempty"`
	Session      *models.Session      `json:"session"`
	Participants []models.Participant `json:"participants"`
	Votes        []models.Vote        `json:"votes"`
	Stories      []models.Story       `json:"stories,omitempty"`
	AllVotesIn   bool                 `json:"allVotesIn,omitempty"`
}

type ParticipantPayload struct {
	SessionID    string               `json:"sessionId"`
	Participant  *models.Participant  `json:"participant"`
	Participants []models.Participant `json:"participants"`
}

type VoteUpdatedPayload struct {
	SessionID  string       `json:"sessionId"`
	Vote       *models.Vote `json:"vote"`
	VoteCount  int          `json:"voteCount"`
	AllVotesIn bool         `json:"allVotesIn,omitempty"`
}

type VotesRevealedPayload struct {
	SessionID string          `json:"sessionId"`
	Session   *models.Session `json:"session"`
	Votes     []models.Vote   `json:"votes"`
}

type VotingResetPayload struct {
	SessionID string          `json:"sessionId"`
	Session   *models.Session `json:"session"`
	Stories   []models.Story  `json:"stories"`
}

type StoryPayload struct {
	SessionID string          `json:"sessionId"`
	Story     *models.Story   `json:"story"`
	Stories   []models.Story  `json:"stories,omitempty"`
	Session   *models.Session `json:"session,omitempty"`
}

type StoriesPayload struct {
	SessionID string         `json:"sessionId"`
	Stories   []models.Story `json:"stories"`
}

type ErrorPayload struct {
	Message string `json:"message"`
}
