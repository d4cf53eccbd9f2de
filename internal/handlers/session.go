package handlers

import (
	"net/http"

	"github.com/verstuyftj/ScrumPointPlanner/internal/models"
	"github.com/verstuyftj/ScrumPointPlanner/internal/services"

	"github.com/gin-gonic/gin"
)

type SessionHandler struct {
	sessions    *services.SessionService
	stories     *services.StoryService
	votes       *services.VoteService
	aggregation *services.AggregationService
}

func NewSessionHandler(sessions *services.SessionService, stories *services.StoryService, votes *services.VoteService, aggregation *services.AggregationService) *SessionHandler {
	return &SessionHandler{sessions: sessions, stories: stories, votes: votes, aggregation: aggregation}
}

// ListSessions godoc
// @Summary      List sessions
// @Description  Get summaries of all sessions with participant counts
// @Tags         sessions
// @Produce      json
// @Success      200 {array} services.SessionSummary
// @Router       /api/v1/sessions [get]
func (h *SessionHandler) ListSessions(c *gin.Context) {
	sessions, err := h.sessions.ListSessions()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, sessions)
}

// GetSession godoc
// @Summary      Get a session
// @Description  Get one session by its code
// @Tags         sessions
// @Produce      json
// @Param        id path string true "Session code"
// @Success      200 {object} Session
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/sessions/{id} [get]
func (h *SessionHandler) GetSession(c *gin.Context) {
	session, err := h.sessions.GetSession(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, session)
}

// ListParticipants godoc
// @Summary      List session participants
// @Tags         sessions
// @Produce      json
// @Param        id path string true "Session code"
// @Success      200 {array} Participant
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/sessions/{id}/participants [get]
func (h *SessionHandler) ListParticipants(c *gin.Context) {
	session, err := h.sessions.GetSession(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}

	participants, err := h.sessions.ListParticipants(session.ID)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, participants)
}

// ListVotes godoc
// @Summary      List session votes
// @Description  Get the votes of a session. Rejected until the votes are revealed.
// @Tags         sessions
// @Produce      json
// @Param        id path string true "Session code"
// @Success      200 {array} Vote
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/sessions/{id}/votes [get]
func (h *SessionHandler) ListVotes(c *gin.Context) {
	session, err := h.sessions.GetSession(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}

	if !session.Revealed {
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "votes are not revealed yet"})
		return
	}

	votes, err := h.votes.ListVotes(session.ID)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, votes)
}

type SessionResults struct {
	Session    *models.Session     `json:"session"`
	Votes      []models.Vote       `json:"votes"`
	Stories    []models.Story      `json:"stories"`
	Consensus  string              `json:"consensus"`
	Statistics services.Statistics `json:"statistics"`
}

// GetResults godoc
// @Summary      Session results
// @Description  Votes with consensus and statistics for the current round, plus the story list. Rejected until revealed.
// @Tags         sessions
// @Produce      json
// @Param        id path string true "Session code"
// @Success      200 {object} SessionResults
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/sessions/{id}/results [get]
func (h *SessionHandler) GetResults(c *gin.Context) {
	session, err := h.sessions.GetSession(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}

	if !session.Revealed {
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "votes are not revealed yet"})
		return
	}

	votes, err := h.votes.ListVotes(session.ID)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	stories, err := h.stories.ListStories(session.ID)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	values := make([]string, len(votes))
	for i, v := range votes {
		values[i] = v.Value
	}

	c.JSON(http.StatusOK, SessionResults{
		Session:    session,
		Votes:      votes,
		Stories:    stories,
		Consensus:  h.aggregation.Consensus(values),
		Statistics: h.aggregation.Statistics(values, session.VotingSystem),
	})
}
