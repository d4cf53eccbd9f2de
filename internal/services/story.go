package services

import (
	"errors"

	"github.com/verstuyftj/ScrumPointPlanner/internal/models"
	"github.com/verstuyftj/ScrumPointPlanner/internal/store"
)

type StoryService struct {
	store store.Store
}

func NewStoryService(st store.Store) *StoryService {
	return &StoryService{store: st}
}

func (s *StoryService) AddStory(sessionID, title, link string) (*models.Story, error) {
	if title == "" || link == "" {
		return nil, errors.New("story title and link are required")
	}
	if _, err := s.store.GetSession(sessionID); err != nil {
		return nil, errors.New("session not found")
	}

	story := models.Story{
		SessionID: sessionID,
		Title:     title,
		Link:      link,
		Completed: false,
	}
	if err := s.store.CreateStory(&story); err != nil {
		return nil, err
	}
	return &story, nil
}

// UpdateStory edits a story's title and link. When the story is the session's
// current one the session descriptor is refreshed too; the returned session is
// nil when it did not change.
func (s *StoryService) UpdateStory(sessionID string, storyID uint, title, link string) (*models.Story, *models.Session, error) {
	story, err := s.store.GetStory(storyID)
	if err != nil || story.SessionID != sessionID {
		return nil, nil, errors.New("story not found")
	}

	if title != "" {
		story.Title = title
	}
	if link != "" {
		story.Link = link
	}
	if err := s.store.UpdateStory(story); err != nil {
		return nil, nil, err
	}

	session, err := s.store.GetSession(sessionID)
	if err != nil {
		return nil, nil, errors.New("session not found")
	}
	if session.CurrentStoryID != nil && *session.CurrentStoryID == story.ID {
		session.CurrentStory = StoryDescriptor(story)
		if err := s.store.UpdateSession(session); err != nil {
			return nil, nil, err
		}
		return story, session, nil
	}
	return story, nil, nil
}

func (s *StoryService) ListStories(sessionID string) ([]models.Story, error) {
	return s.store.ListStories(sessionID)
}
