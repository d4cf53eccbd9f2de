package services

import (
	"errors"

	"github.com/verstuyftj/ScrumPointPlanner/internal/models"
	"github.com/verstuyftj/ScrumPointPlanner/internal/store"
)

type VoteService struct {
	store store.Store
}

func NewVoteService(st store.Store) *VoteService {
	return &VoteService{store: st}
}

// CastVote records a participant's estimate, overwriting any earlier vote for
// the same participant in the same session. The second return value reports
// whether every connected participant has now voted.
//
// The all-votes-in check reads participants and votes in two separate store
// calls, so two concurrent casts can make it under- or over-fire. Tolerated at
// this scale; the signal is advisory.
func (v *VoteService) CastVote(sessionID string, participantID uint, value string) (*models.Vote, bool, error) {
	if value == "" {
		return nil, false, errors.New("vote value is required")
	}

	session, err := v.store.GetSession(sessionID)
	if err != nil {
		return nil, false, errors.New("session not found")
	}

	vote, err := v.store.GetVoteByParticipant(sessionID, participantID)
	if err == nil {
		vote.Value = value
		vote.StoryID = session.CurrentStoryID
		if err := v.store.UpdateVote(vote); err != nil {
			return nil, false, err
		}
	} else {
		vote = &models.Vote{
			SessionID:     sessionID,
			ParticipantID: participantID,
			Value:         value,
			StoryID:       session.CurrentStoryID,
		}
		if err := v.store.CreateVote(vote); err != nil {
			return nil, false, err
		}
	}

	participants, err := v.store.ListParticipants(sessionID)
	if err != nil {
		return nil, false, err
	}
	connected := 0
	for _, p := range participants {
		if p.Connected {
			connected++
		}
	}

	votes, err := v.store.ListVotes(sessionID)
	if err != nil {
		return nil, false, err
	}

	return vote, connected > 0 && len(votes) >= connected, nil
}

func (v *VoteService) ListVotes(sessionID string) ([]models.Vote, error) {
	return v.store.ListVotes(sessionID)
}
