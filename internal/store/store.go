package store

import (
	"errors"

	"github.com/verstuyftj/ScrumPointPlanner/internal/models"
)

// ErrNotFound is returned by all Get* methods when no matching record exists.
var ErrNotFound = errors.New("record not found")

// Store is the CRUD surface the coordination layer depends on. Both the
// postgres-backed implementation and the in-memory one satisfy it, so the
// protocol handler and services can be exercised without a database.
type Store interface {
	CreateSession(session *models.Session) error
	GetSession(id string) (*models.Session, error)
	ListSessions() ([]models.Session, error)
	UpdateSession(session *models.Session) error
	DeleteSession(id string) error

	CreateParticipant(participant *models.Participant) error
	GetParticipant(id uint) (*models.Participant, error)
	GetParticipantByName(sessionID, name string) (*models.Participant, error)
	ListParticipants(sessionID string) ([]models.Participant, error)
	UpdateParticipant(participant *models.Participant) error
	DeleteParticipant(id uint) error

	CreateStory(story *models.Story) error
	GetStory(id uint) (*models.Story, error)
	ListStories(sessionID string) ([]models.Story, error)
	UpdateStory(story *models.Story) error
	DeleteStory(id uint) error

	CreateVote(vote *models.Vote) error
	GetVote(id uint) (*models.Vote, error)
	GetVoteByParticipant(sessionID string, participantID uint) (*models.Vote, error)
	ListVotes(sessionID string) ([]models.Vote, error)
	UpdateVote(vote *models.Vote) error
	DeleteVotes(sessionID string) error
}
