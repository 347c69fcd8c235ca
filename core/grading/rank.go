package grading

import (
	"sort"

	"github.com/kalulu/darasa/core"
)

// ScoredStudent is one (student, score) pair entering a ranking call.
type ScoredStudent struct {
	ID    int     `json:"id"`
	Score float64 `json:"score"`
}

// RankedStudent is a ScoredStudent with its standard competition rank and percentile.
type RankedStudent struct {
	ID         int     `json:"id"`
	Score      float64 `json:"score"`
	Rank       int     `json:"rank"`
	Percentile float64 `json:"percentile"`
}

// CalculateRanks ranks students by score, highest first, using standard
// competition ranking: tied scores share a rank and the next distinct score's
// rank skips past the tied group (rank = 1 + count of strictly higher scores).
// Percentile = 100 * (scores <= own score) / total, rounded to 2 decimal
// places, so the top group always sits at 100.
//
// The output holds every input id exactly once. An empty input yields an empty
// slice. The computation is deterministic: equal inputs produce equal outputs,
// and students tied on score keep their input order.
func CalculateRanks(students []ScoredStudent) []RankedStudent {
	n := len(students)
	ranked := make([]RankedStudent, n)
	for i, s := range students {
		ranked[i] = RankedStudent{ID: s.ID, Score: s.Score}
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Score > ranked[j].Score })

	var rank int
	var percentile float64
	for i := range ranked {
		if i == 0 || ranked[i].Score != ranked[i-1].Score {
			rank = i + 1
			// i students scored strictly higher; the remaining n-i scored <= this one
			percentile = core.Round2(100 * float64(n-i) / float64(n))
		}
		ranked[i].Rank = rank
		ranked[i].Percentile = percentile
	}
	return ranked
}
