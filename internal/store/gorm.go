package store

import (
	"errors"

	"github.com/verstuyftj/ScrumPointPlanner/internal/models"

	"gorm.io/gorm"
)

type gormStore struct {
	db *gorm.DB
}

// NewGormStore wraps a gorm connection in the Store interface.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func (s *gormStore) CreateSession(session *models.Session) error {
	return s.db.Create(session).Error
}

func (s *gormStore) GetSession(id string) (*models.Session, error) {
	var session models.Session
	if err := s.db.First(&session, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &session, nil
}

func (s *gormStore) ListSessions() ([]models.Session, error) {
	var sessions []models.Session
	if err := s.db.Order("created_at DESC").Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

func (s *gormStore) UpdateSession(session *models.Session) error {
	return s.db.Save(session).Error
}

func (s *gormStore) DeleteSession(id string) error {
	return s.db.Delete(&models.Session{}, "id = ?", id).Error
}

func (s *gormStore) CreateParticipant(participant *models.Participant) error {
	return s.db.Create(participant).Error
}

func (s *gormStore) GetParticipant(id uint) (*models.Participant, error) {
	var participant models.Participant
	if err := s.db.First(&participant, id).Error; err != nil {
		return nil, translate(err)
	}
	return &participant, nil
}

func (s *gormStore) GetParticipantByName(sessionID, name string) (*models.Participant, error) {
	var participant models.Participant
	if err := s.db.Where("session_id = ? AND name = ?", sessionID, name).
		First(&participant).Error; err != nil {
		return nil, translate(err)
	}
	return &participant, nil
}

func (s *gormStore) ListParticipants(sessionID string) ([]models.Participant, error) {
	var participants []models.Participant
	if err := s.db.Where("session_id = ?", sessionID).
		Order("id ASC").
		Find(&participants).Error; err != nil {
		return nil, err
	}
	return participants, nil
}

func (s *gormStore) UpdateParticipant(participant *models.Participant) error {
	return s.db.Save(participant).Error
}

func (s *gormStore) DeleteParticipant(id uint) error {
	return s.db.Delete(&models.Participant{}, id).Error
}

func (s *gormStore) CreateStory(story *models.Story) error {
	return s.db.Create(story).Error
}

func (s *gormStore) GetStory(id uint) (*models.Story, error) {
	var story models.Story
	if err := s.db.First(&story, id).Error; err != nil {
		return nil, translate(err)
	}
	return &story, nil
}

func (s *gormStore) ListStories(sessionID string) ([]models.Story, error) {
	var stories []models.Story
	if err := s.db.Where("session_id = ?", sessionID).
		Order("id ASC").
		Find(&stories).Error; err != nil {
		return nil, err
	}
	return stories, nil
}

func (s *gormStore) UpdateStory(story *models.Story) error {
	return s.db.Save(story).Error
}

func (s *gormStore) DeleteStory(id uint) error {
	return s.db.Delete(&models.Story{}, id).Error
}

func (s *gormStore) CreateVote(vote *models.Vote) error {
	return s.db.Create(vote).Error
}

func (s *gormStore) GetVote(id uint) (*models.Vote, error) {
	var vote models.Vote
	if err := s.db.First(&vote, id).Error; err != nil {
		return nil, translate(err)
	}
	return &vote, nil
}

func (s *gormStore) GetVoteByParticipant(sessionID string, participantID uint) (*models.Vote, error) {
	var vote models.Vote
	if err := s.db.Where("session_id = ? AND participant_id = ?", sessionID, participantID).
		First(&vote).Error; err != nil {
		return nil, translate(err)
	}
	return &vote, nil
}

func (s *gormStore) ListVotes(sessionID string) ([]models.Vote, error) {
	var votes []models.Vote
	if err := s.db.Where("session_id = ?", sessionID).
		Order("id ASC").
		Find(&votes).Error; err != nil {
		return nil, err
	}
	return votes, nil
}

func (s *gormStore) UpdateVote(vote *models.Vote) error {
	return s.db.Save(vote).Error
}

func (s *gormStore) DeleteVotes(sessionID string) error {
	return s.db.Where("session_id = ?", sessionID).Delete(&models.Vote{}).Error
}
