package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/verstuyftj/ScrumPointPlanner/internal/models"
	"github.com/verstuyftj/ScrumPointPlanner/internal/services"
	"github.com/verstuyftj/ScrumPointPlanner/internal/store"

	"github.com/gin-gonic/gin"
)

func newTestRouter(t *testing.T) (*gin.Engine, *services.SessionService, *services.VoteService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st := store.NewMemoryStore()
	sessions := services.NewSessionService(st)
	stories := services.NewStoryService(st)
	votes := services.NewVoteService(st)
	handler := NewSessionHandler(sessions, stories, votes, services.NewAggregationService())

	r := gin.New()
	r.GET("/api/v1/sessions", handler.ListSessions)
	r.GET("/api/v1/sessions/:id", handler.GetSession)
	r.GET("/api/v1/sessions/:id/participants", handler.ListParticipants)
	r.GET("/api/v1/sessions/:id/votes", handler.ListVotes)
	r.GET("/api/v1/sessions/:id/results", handler.GetResults)
	return r, sessions, votes
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestListVotesRejectedBeforeReveal(t *testing.T) {
	r, sessions, votes := newTestRouter(t)

	session, admin, err := sessions.CreateSession("S1", "Sprint", "Alice", models.VotingSystemFibonacci)
	if err != nil {
		t.Fatalf("create session: %v", err)
	}
	if _, _, err := votes.CastVote(session.ID, admin.ID, "5"); err != nil {
		t.Fatalf("cast: %v", err)
	}

	w := get(r, "/api/v1/sessions/S1/votes")
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 before reveal, got %d", w.Code)
	}

	if _, _, err := sessions.Reveal(session.ID); err != nil {
		t.Fatalf("reveal: %v", err)
	}

	w = get(r, "/api/v1/sessions/S1/votes")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 after reveal, got %d", w.Code)
	}

	var listed []models.Vote
	if err := json.Unmarshal(w.Body.Bytes(), &listed); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(listed) != 1 || listed[0].Value != "5" {
		t.Fatalf("unexpected votes %+v", listed)
	}
}

func TestGetSessionNotFound(t *testing.T) {
	r, _, _ := newTestRouter(t)

	if w := get(r, "/api/v1/sessions/nope"); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestListSessionsSummaries(t *testing.T) {
	r, sessions, _ := newTestRouter(t)

	if _, _, err := sessions.CreateSession("S1", "Sprint", "Alice", models.VotingSystemFibonacci); err != nil {
		t.Fatalf("create session: %v", err)
	}

	w := get(r, "/api/v1/sessions")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var summaries []services.SessionSummary
	if err := json.Unmarshal(w.Body.Bytes(), &summaries); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(summaries) != 1 {
		t.Fatalf("expected 1 summary, got %d", len(summaries))
	}
	if summaries[0].ConnectedCount != 1 || summaries[0].ParticipantCount != 1 {
		t.Fatalf("unexpected counts %+v", summaries[0])
	}
}

func TestResultsIncludeAggregates(t *testing.T) {
	r, sessions, votes := newTestRouter(t)

	session, alice, _ := sessions.CreateSession("S1", "Sprint", "Alice", models.VotingSystemFibonacci)
	bob, _, err := sessions.JoinSession(session.ID, "Bob")
	if err != nil {
		t.Fatalf("join: %v", err)
	}
	votes.CastVote(session.ID, alice.ID, "5")
	votes.CastVote(session.ID, bob.ID, "8")

	if w := get(r, "/api/v1/sessions/S1/results"); w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 before reveal, got %d", w.Code)
	}

	sessions.Reveal(session.ID)

	w := get(r, "/api/v1/sessions/S1/results")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var results SessionResults
	if err := json.Unmarshal(w.Body.Bytes(), &results); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if results.Consensus != services.ConsensusWeak {
		t.Errorf("expected weak consensus, got %q", results.Consensus)
	}
	if results.Statistics.Average != "6.5" || results.Statistics.Median != "6.5" {
		t.Errorf("unexpected statistics %+v", results.Statistics)
	}
	if len(results.Votes) != 2 {
		t.Errorf("expected 2 votes, got %d", len(results.Votes))
	}
}
