package services

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/verstuyftj/ScrumPointPlanner/internal/models"
	"github.com/verstuyftj/ScrumPointPlanner/internal/store"
)

type SessionService struct {
	store store.Store
}

func NewSessionService(st store.Store) *SessionService {
	return &SessionService{store: st}
}

// CreateSession creates a session plus its admin participant. When id is empty
// a unique 6-character code is generated; a client-supplied id that collides
// with a live session is rejected.
func (s *SessionService) CreateSession(id, name, createdBy, votingSystem string) (*models.Session, *models.Participant, error) {
	if name == "" || createdBy == "" {
		return nil, nil, errors.New("session name and creator name are required")
	}
	if !models.IsValidVotingSystem(votingSystem) {
		return nil, nil, errors.New("unknown voting system")
	}

	if id == "" {
		id = s.generateUniqueCode()
	} else if _, err := s.store.GetSession(id); err == nil {
		return nil, nil, errors.New("session already exists")
	}

	session := models.Session{
		ID:           id,
		Name:         name,
		CreatedBy:    createdBy,
		VotingSystem: votingSystem,
		Active:       true,
		CreatedAt:    time.Now(),
	}
	if err := s.store.CreateSession(&session); err != nil {
		return nil, nil, err
	}

	participant := models.Participant{
		SessionID:  session.ID,
		Name:       createdBy,
		IsAdmin:    true,
		Connected:  true,
		LastActive: time.Now(),
	}
	if err := s.store.CreateParticipant(&participant); err != nil {
		return nil, nil, err
	}

	return &session, &participant, nil
}

// JoinSession adds a participant to an existing session. A name held by a
// connected participant is rejected; a disconnected participant with that name
// is reactivated instead of duplicated.
func (s *SessionService) JoinSession(sessionID, name string) (*models.Participant, bool, error) {
	if name == "" {
		return nil, false, errors.New("display name is required")
	}

	if _, err := s.store.GetSession(sessionID); err != nil {
		return nil, false, errors.New("session not found")
	}

	if existing, err := s.store.GetParticipantByName(sessionID, name); err == nil {
		if existing.Connected {
			return nil, false, errors.New("name already exists in this session")
		}
		existing.Connected = true
		existing.LastActive = time.Now()
		if err := s.store.UpdateParticipant(existing); err != nil {
			return nil, false, err
		}
		return existing, true, nil
	}

	participant := models.Participant{
		SessionID:  sessionID,
		Name:       name,
		IsAdmin:    false,
		Connected:  true,
		LastActive: time.Now(),
	}
	if err := s.store.CreateParticipant(&participant); err != nil {
		return nil, false, err
	}
	return &participant, false, nil
}

// Disconnect marks a participant as no longer connected. The row is kept so
// the same identity can rejoin later.
func (s *SessionService) Disconnect(participantID uint) (*models.Participant, error) {
	participant, err := s.store.GetParticipant(participantID)
	if err != nil {
		return nil, errors.New("participant not found")
	}
	participant.Connected = false
	participant.LastActive = time.Now()
	if err := s.store.UpdateParticipant(participant); err != nil {
		return nil, err
	}
	return participant, nil
}

func (s *SessionService) GetSession(sessionID string) (*models.Session, error) {
	session, err := s.store.GetSession(sessionID)
	if err != nil {
		return nil, errors.New("session not found")
	}
	return session, nil
}

func (s *SessionService) GetParticipant(id uint) (*models.Participant, error) {
	participant, err := s.store.GetParticipant(id)
	if err != nil {
		return nil, errors.New("participant not found")
	}
	return participant, nil
}

func (s *SessionService) ListParticipants(sessionID string) ([]models.Participant, error) {
	return s.store.ListParticipants(sessionID)
}

// Reveal makes the current votes visible to every session member.
func (s *SessionService) Reveal(sessionID string) (*models.Session, []models.Vote, error) {
	session, err := s.store.GetSession(sessionID)
	if err != nil {
		return nil, nil, errors.New("session not found")
	}
	session.Revealed = true
	if err := s.store.UpdateSession(session); err != nil {
		return nil, nil, err
	}
	votes, err := s.store.ListVotes(sessionID)
	if err != nil {
		return nil, nil, err
	}
	return session, votes, nil
}

// ResetVoting completes the current story (if one is selected), removes every
// vote in the session and clears the reveal flag and story descriptor.
func (s *SessionService) ResetVoting(sessionID string) (*models.Session, []models.Story, error) {
	session, err := s.store.GetSession(sessionID)
	if err != nil {
		return nil, nil, errors.New("session not found")
	}

	if session.CurrentStoryID != nil {
		if story, err := s.store.GetStory(*session.CurrentStoryID); err == nil {
			story.Completed = true
			if err := s.store.UpdateStory(story); err != nil {
				return nil, nil, err
			}
		}
	}

	if err := s.store.DeleteVotes(sessionID); err != nil {
		return nil, nil, err
	}

	session.Revealed = false
	session.CurrentStory = ""
	session.CurrentStoryID = nil
	if err := s.store.UpdateSession(session); err != nil {
		return nil, nil, err
	}

	stories, err := s.store.ListStories(sessionID)
	if err != nil {
		return nil, nil, err
	}
	return session, stories, nil
}

// SetCurrentStory selects a persisted story for estimation: the session points
// at it directly, the descriptor is refreshed for display, and any votes from
// the previous round are discarded.
func (s *SessionService) SetCurrentStory(sessionID string, storyID uint) (*models.Session, *models.Story, error) {
	session, err := s.store.GetSession(sessionID)
	if err != nil {
		return nil, nil, errors.New("session not found")
	}

	story, err := s.store.GetStory(storyID)
	if err != nil || story.SessionID != sessionID {
		return nil, nil, errors.New("story not found")
	}

	if err := s.store.DeleteVotes(sessionID); err != nil {
		return nil, nil, err
	}

	session.CurrentStory = StoryDescriptor(story)
	session.CurrentStoryID = &story.ID
	session.Revealed = false
	if err := s.store.UpdateSession(session); err != nil {
		return nil, nil, err
	}
	return session, story, nil
}

// SetStoryText sets the current story to free text not backed by a story row.
// This is a deliberate second path next to SetCurrentStory.
func (s *SessionService) SetStoryText(sessionID, text string) (*models.Session, error) {
	if text == "" {
		return nil, errors.New("story text is required")
	}
	session, err := s.store.GetSession(sessionID)
	if err != nil {
		return nil, errors.New("session not found")
	}

	if err := s.store.DeleteVotes(sessionID); err != nil {
		return nil, err
	}

	session.CurrentStory = text
	session.CurrentStoryID = nil
	session.Revealed = false
	if err := s.store.UpdateSession(session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *SessionService) ListSessions() ([]SessionSummary, error) {
	sessions, err := s.store.ListSessions()
	if err != nil {
		return nil, err
	}

	result := make([]SessionSummary, 0, len(sessions))
	for _, sess := range sessions {
		participants, err := s.store.ListParticipants(sess.ID)
		if err != nil {
			return nil, err
		}
		connected := 0
		for _, p := range participants {
			if p.Connected {
				connected++
			}
		}
		result = append(result, SessionSummary{
			ID:               sess.ID,
			Name:             sess.Name,
			VotingSystem:     sess.VotingSystem,
			CurrentStory:     sess.CurrentStory,
			Revealed:         sess.Revealed,
			ParticipantCount: len(participants),
			ConnectedCount:   connected,
			CreatedAt:        sess.CreatedAt,
		})
	}
	return result, nil
}

func (s *SessionService) generateUniqueCode() string {
	for {
		code := fmt.Sprintf("%06d", rand.Intn(1000000))
		if _, err := s.store.GetSession(code); err != nil {
			return code
		}
	}
}

// StoryDescriptor renders a story as the display text stored on the session.
func StoryDescriptor(story *models.Story) string {
	if story.Link == "" {
		return story.Title
	}
	return fmt.Sprintf("%s (%s)", story.Title, story.Link)
}

type SessionSummary struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	VotingSystem     string    `json:"voting_system"`
	CurrentStory     string    `json:"current_story"`
	Revealed         bool      `json:"revealed"`
	ParticipantCount int       `json:"participant_count"`
	ConnectedCount   int       `json:"connected_count"`
	CreatedAt        time.Time `json:"created_at"`
}
