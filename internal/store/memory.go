package store

import (
	"sort"
	"sync"

	"github.com/verstuyftj/ScrumPointPlanner/internal/models"
)

// MemoryStore keeps everything in process memory. It backs single-process
// deployments without a database (DB_DRIVER=memory) and every service test.
// Deleting a session cascades to its participants, stories and votes, matching
// the postgres constraints.
type MemoryStore struct {
	mu           sync.RWMutex
	sessions     map[string]models.Session
	participants map[uint]models.Participant
	stories      map[uint]models.Story
	votes        map[uint]models.Vote
	nextID       uint
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions:     make(map[string]models.Session),
		participants: make(map[uint]models.Participant),
		stories:      make(map[uint]models.Story),
		votes:        make(map[uint]models.Vote),
	}
}

func (s *MemoryStore) assignID() uint {
	s.nextID++
	return s.nextID
}

func (s *MemoryStore) CreateSession(session *models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = *session
	return nil
}

func (s *MemoryStore) GetSession(id string) (*models.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &session, nil
}

func (s *MemoryStore) ListSessions() ([]models.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sessions := make([]models.Session, 0, len(s.sessions))
	for _, session := range s.sessions {
		sessions = append(sessions, session)
	}
	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].CreatedAt.After(sessions[j].CreatedAt)
	})
	return sessions, nil
}

func (s *MemoryStore) UpdateSession(session *models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[session.ID]; !ok {
		return ErrNotFound
	}
	s.sessions[session.ID] = *session
	return nil
}

func (s *MemoryStore) DeleteSession(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	for pid, p := range s.participants {
		if p.SessionID == id {
			delete(s.participants, pid)
		}
	}
	for sid, st := range s.stories {
		if st.SessionID == id {
			delete(s.stories, sid)
		}
	}
	for vid, v := range s.votes {
		if v.SessionID == id {
			delete(s.votes, vid)
		}
	}
	return nil
}

func (s *MemoryStore) CreateParticipant(participant *models.Participant) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if participant.ID == 0 {
		participant.ID = s.assignID()
	}
	s.participants[participant.ID] = *participant
	return nil
}

func (s *MemoryStore) GetParticipant(id uint) (*models.Participant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	participant, ok := s.participants[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &participant, nil
}

func (s *MemoryStore) GetParticipantByName(sessionID, name string) (*models.Participant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, participant := range s.participants {
		if participant.SessionID == sessionID && participant.Name == name {
			p := participant
			return &p, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) ListParticipants(sessionID string) ([]models.Participant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var participants []models.Participant
	for _, participant := range s.participants {
		if participant.SessionID == sessionID {
			participants = append(participants, participant)
		}
	}
	sort.Slice(participants, func(i, j int) bool {
		return participants[i].ID < participants[j].ID
	})
	return participants, nil
}

func (s *MemoryStore) UpdateParticipant(participant *models.Participant) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.participants[participant.ID]; !ok {
		return ErrNotFound
	}
	s.participants[participant.ID] = *participant
	return nil
}

func (s *MemoryStore) DeleteParticipant(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.participants, id)
	return nil
}

func (s *MemoryStore) CreateStory(story *models.Story) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if story.ID == 0 {
		story.ID = s.assignID()
	}
	s.stories[story.ID] = *story
	return nil
}

func (s *MemoryStore) GetStory(id uint) (*models.Story, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	story, ok := s.stories[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &story, nil
}

func (s *MemoryStore) ListStories(sessionID string) ([]models.Story, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var stories []models.Story
	for _, story := range s.stories {
		if story.SessionID == sessionID {
			stories = append(stories, story)
		}
	}
	sort.Slice(stories, func(i, j int) bool {
		return stories[i].ID < stories[j].ID
	})
	return stories, nil
}

func (s *MemoryStore) UpdateStory(story *models.Story) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.stories[story.ID]; !ok {
		return ErrNotFound
	}
	s.stories[story.ID] = *story
	return nil
}

func (s *MemoryStore) DeleteStory(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.stories, id)
	return nil
}

func (s *MemoryStore) CreateVote(vote *models.Vote) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if vote.ID == 0 {
		vote.ID = s.assignID()
	}
	s.votes[vote.ID] = *vote
	return nil
}

func (s *MemoryStore) GetVote(id uint) (*models.Vote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	vote, ok := s.votes[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &vote, nil
}

func (s *MemoryStore) GetVoteByParticipant(sessionID string, participantID uint) (*models.Vote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, vote := range s.votes {
		if vote.SessionID == sessionID && vote.ParticipantID == participantID {
			v := vote
			return &v, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) ListVotes(sessionID string) ([]models.Vote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var votes []models.Vote
	for _, vote := range s.votes {
		if vote.SessionID == sessionID {
			votes = append(votes, vote)
		}
	}
	sort.Slice(votes, func(i, j int) bool {
		return votes[i].ID < votes[j].ID
	})
	return votes, nil
}

func (s *MemoryStore) UpdateVote(vote *models.Vote) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.votes[vote.ID]; !ok {
		return ErrNotFound
	}
	s.votes[vote.ID] = *vote
	return nil
}

func (s *MemoryStore) DeleteVotes(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, vote := range s.votes {
		if vote.SessionID == sessionID {
			delete(s.votes, id)
		}
	}
	return nil
}
