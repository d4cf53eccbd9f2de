package services

import (
	"testing"

	"github.com/verstuyftj/ScrumPointPlanner/internal/models"
)

func TestConsensusEmpty(t *testing.T) {
	a := NewAggregationService()
	if got := a.Consensus(nil); got != ConsensusNoVotes {
		t.Fatalf("expected %q for empty votes, got %q", ConsensusNoVotes, got)
	}
}

func TestConsensusClassification(t *testing.T) {
	a := NewAggregationService()

	cases := []struct {
		name   string
		values []string
		want   string
	}{
		{"all identical", []string{"5", "5", "5", "5", "5"}, ConsensusStrong},
		{"two values in five", []string{"5", "5", "8", "5", "5"}, ConsensusModerate},
		{"all distinct", []string{"1", "2", "3"}, ConsensusWeak},
		{"two voters split", []string{"5", "8"}, ConsensusWeak},
		{"single vote", []string{"13"}, ConsensusWeak},
	}

	for _, tc := range cases {
		if got := a.Consensus(tc.values); got != tc.want {
			t.Errorf("%s: expected %q, got %q", tc.name, tc.want, got)
		}
	}
}

func TestConsensusAlwaysClassified(t *testing.T) {
	a := NewAggregationService()
	valid := map[string]bool{ConsensusStrong: true, ConsensusModerate: true, ConsensusWeak: true}

	collections := [][]string{
		{"?"},
		{"0", "0"},
		{"1", "2", "3", "5", "8", "13"},
		{"XL", "XL", "S"},
	}
	for _, values := range collections {
		if got := a.Consensus(values); !valid[got] {
			t.Errorf("non-empty collection %v classified as %q", values, got)
		}
	}
}

func TestStatisticsNumericScale(t *testing.T) {
	a := NewAggregationService()

	stats := a.Statistics([]string{"1", "3", "3", "?"}, models.VotingSystemFibonacci)
	if stats.Average != "2.3" {
		t.Errorf("expected average 2.3, got %q", stats.Average)
	}
	if stats.Median != "3" {
		t.Errorf("expected median 3, got %q", stats.Median)
	}
	if stats.Mode != "3" {
		t.Errorf("expected mode 3, got %q", stats.Mode)
	}
}

func TestStatisticsEvenCount(t *testing.T) {
	a := NewAggregationService()

	stats := a.Statistics([]string{"5", "8"}, models.VotingSystemFibonacci)
	if stats.Average != "6.5" {
		t.Errorf("expected average 6.5, got %q", stats.Average)
	}
	if stats.Median != "6.5" {
		t.Errorf("expected median 6.5, got %q", stats.Median)
	}
}

func TestStatisticsAllUnknown(t *testing.T) {
	a := NewAggregationService()

	stats := a.Statistics([]string{"?", "?", "?"}, models.VotingSystemFibonacci)
	if stats.Average != NotAvailable || stats.Median != NotAvailable || stats.Mode != NotAvailable {
		t.Fatalf("expected all N/A, got %+v", stats)
	}
}

func TestStatisticsTShirtOrdinals(t *testing.T) {
	a := NewAggregationService()

	stats := a.Statistics([]string{"S", "M", "M", "?"}, models.VotingSystemTShirt)
	// S=2, M=3 -> average 2.7, median 3, mode M
	if stats.Average != "2.7" {
		t.Errorf("expected average 2.7, got %q", stats.Average)
	}
	if stats.Median != "3" {
		t.Errorf("expected median 3, got %q", stats.Median)
	}
	if stats.Mode != "M" {
		t.Errorf("expected mode M, got %q", stats.Mode)
	}
}

func TestStatisticsModeTieFirstEncountered(t *testing.T) {
	a := NewAggregationService()

	stats := a.Statistics([]string{"8", "8", "5", "5"}, models.VotingSystemFibonacci)
	if stats.Mode != "8" {
		t.Errorf("expected first-encountered mode 8, got %q", stats.Mode)
	}
}
