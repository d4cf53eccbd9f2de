package services

import (
	"testing"

	"github.com/verstuyftj/ScrumPointPlanner/internal/models"
	"github.com/verstuyftj/ScrumPointPlanner/internal/store"
)

func TestCastVoteUpserts(t *testing.T) {
	st := store.NewMemoryStore()
	sessions := NewSessionService(st)
	votes := NewVoteService(st)

	session, admin, err := sessions.CreateSession("S1", "Sprint", "Alice", models.VotingSystemFibonacci)
	if err != nil {
		t.Fatalf("create session: %v", err)
	}

	if _, _, err := votes.CastVote(session.ID, admin.ID, "5"); err != nil {
		t.Fatalf("first cast: %v", err)
	}
	if _, _, err := votes.CastVote(session.ID, admin.ID, "8"); err != nil {
		t.Fatalf("second cast: %v", err)
	}

	all, err := votes.ListVotes(session.ID)
	if err != nil {
		t.Fatalf("list votes: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected exactly one vote, got %d", len(all))
	}
	if all[0].Value != "8" {
		t.Errorf("expected latest value 8, got %q", all[0].Value)
	}
}

func TestCastVoteValueRequired(t *testing.T) {
	st := store.NewMemoryStore()
	sessions := NewSessionService(st)
	votes := NewVoteService(st)

	session, admin, _ := sessions.CreateSession("S1", "Sprint", "Alice", models.VotingSystemFibonacci)
	if _, _, err := votes.CastVote(session.ID, admin.ID, ""); err == nil {
		t.Fatal("expected error for empty vote value")
	}
}

func TestCastVoteAllVotesIn(t *testing.T) {
	st := store.NewMemoryStore()
	sessions := NewSessionService(st)
	votes := NewVoteService(st)

	session, alice, _ := sessions.CreateSession("S1", "Sprint", "Alice", models.VotingSystemFibonacci)
	bob, _, err := sessions.JoinSession(session.ID, "Bob")
	if err != nil {
		t.Fatalf("join: %v", err)
	}

	_, allIn, err := votes.CastVote(session.ID, alice.ID, "5")
	if err != nil {
		t.Fatalf("cast: %v", err)
	}
	if allIn {
		t.Error("one of two votes should not report all votes in")
	}

	_, allIn, err = votes.CastVote(session.ID, bob.ID, "8")
	if err != nil {
		t.Fatalf("cast: %v", err)
	}
	if !allIn {
		t.Error("expected all votes in after second participant voted")
	}
}

func TestCastVoteIgnoresDisconnectedForAllIn(t *testing.T) {
	st := store.NewMemoryStore()
	sessions := NewSessionService(st)
	votes := NewVoteService(st)

	session, alice, _ := sessions.CreateSession("S1", "Sprint", "Alice", models.VotingSystemFibonacci)
	bob, _, _ := sessions.JoinSession(session.ID, "Bob")
	sessions.Disconnect(bob.ID)

	_, allIn, err := votes.CastVote(session.ID, alice.ID, "5")
	if err != nil {
		t.Fatalf("cast: %v", err)
	}
	if !allIn {
		t.Error("disconnected participants should not block the all-votes-in signal")
	}
}

func TestCastVoteCarriesCurrentStory(t *testing.T) {
	st := store.NewMemoryStore()
	sessions := NewSessionService(st)
	stories := NewStoryService(st)
	votes := NewVoteService(st)

	session, admin, _ := sessions.CreateSession("S1", "Sprint", "Alice", models.VotingSystemFibonacci)
	story, _ := stories.AddStory(session.ID, "Login page", "https://issues/1")
	sessions.SetCurrentStory(session.ID, story.ID)

	vote, _, err := votes.CastVote(session.ID, admin.ID, "13")
	if err != nil {
		t.Fatalf("cast: %v", err)
	}
	if vote.StoryID == nil || *vote.StoryID != story.ID {
		t.Error("vote should be associated with the current story")
	}
}
