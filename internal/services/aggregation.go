package services

import (
	"math"
	"sort"
	"strconv"

	"github.com/verstuyftj/ScrumPointPlanner/internal/models"
)

const (
	ConsensusStrong   = "Strong"
	ConsensusModerate = "Moderate"
	ConsensusWeak     = "Weak"
	ConsensusNoVotes  = "No votes"

	// NotAvailable is reported when no numeric votes remain after filtering.
	NotAvailable = "N/A"
)

// AggregationService computes the display figures for a revealed vote set.
// All methods are pure.
type AggregationService struct{}

func NewAggregationService() *AggregationService {
	return &AggregationService{}
}

// Consensus classifies agreement by the ratio of distinct values to votes.
func (a *AggregationService) Consensus(values []string) string {
	if len(values) == 0 {
		return ConsensusNoVotes
	}

	distinct := make(map[string]struct{}, len(values))
	for _, v := range values {
		distinct[v] = struct{}{}
	}

	ratio := float64(len(distinct)) / float64(len(values))
	switch {
	case ratio <= 0.2:
		return ConsensusStrong
	case ratio <= 0.4:
		return ConsensusModerate
	default:
		return ConsensusWeak
	}
}

type Statistics struct {
	Average string `json:"average"`
	Median  string `json:"median"`
	Mode    string `json:"mode"`
}

// Statistics computes average, median and mode over the vote values, excluding
// the unknown sentinel. Size-letter scales are mapped to their ordinals.
func (a *AggregationService) Statistics(values []string, system string) Statistics {
	var known []string
	var numbers []float64
	for _, v := range values {
		if v == models.UnknownValue {
			continue
		}
		n, ok := numericValue(v, system)
		if !ok {
			continue
		}
		known = append(known, v)
		numbers = append(numbers, n)
	}

	if len(numbers) == 0 {
		return Statistics{Average: NotAvailable, Median: NotAvailable, Mode: NotAvailable}
	}

	sum := 0.0
	for _, n := range numbers {
		sum += n
	}
	average := formatNumber(sum / float64(len(numbers)))

	sorted := append([]float64(nil), numbers...)
	sort.Float64s(sorted)
	var median string
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		median = formatNumber((sorted[mid-1] + sorted[mid]) / 2)
	} else {
		median = formatNumber(sorted[mid])
	}

	// Mode: highest occurrence count, first-encountered wins ties.
	counts := make(map[string]int, len(known))
	mode := known[0]
	for _, v := range known {
		counts[v]++
		if counts[v] > counts[mode] {
			mode = v
		}
	}

	return Statistics{Average: average, Median: median, Mode: mode}
}

func numericValue(value, system string) (float64, bool) {
	if system == models.VotingSystemTShirt {
		n, ok := models.TShirtOrdinals[value]
		return n, ok
	}
	n, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// formatNumber rounds to one decimal place and drops a trailing ".0".
func formatNumber(n float64) string {
	return strconv.FormatFloat(math.Round(n*10)/10, 'f', -1, 64)
}
