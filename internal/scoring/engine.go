// Package scoring maps questionnaire answers to ranked role
// recommendations. Rank is pure and cheap over the ~13-role catalog,
// so callers recompute on every read instead of caching.
package scoring

import (
	"math"
	"sort"

	"github.com/abhisek/cyberpath/internal/answers"
	"github.com/abhisek/cyberpath/internal/catalog"
)

// TopN is the number of recommendations returned by Rank.
const TopN = 3

// Recommendation is one ranked role with its raw and display scores.
type Recommendation struct {
	Role catalog.Role
	// Raw is the additive score before display normalization.
	Raw int
	// MatchPercent is the 0-99 display value: min(99, round(Raw/1.5)).
	MatchPercent int
}

// Rank scores every catalog role against the answer set and returns
// the top 3 by raw score, ties broken by catalog order. Unanswered
// questions contribute no adjustment, so a partially filled set ranks
// without error.
func Rank(set *answers.Set) []Recommendation {
	roles := catalog.Roles()
	scores := rawScores(set, roles)

	ranked := make([]Recommendation, len(roles))
	for i, role := range roles {
		ranked[i] = Recommendation{Role: role, Raw: scores[role.ID]}
	}

	// Stable keeps catalog order for equal raw scores.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Raw > ranked[j].Raw
	})

	if len(ranked) > TopN {
		ranked = ranked[:TopN]
	}
	for i := range ranked {
		ranked[i].MatchPercent = displayScore(ranked[i].Raw)
	}
	return ranked
}

// rawScores applies the rule tables to produce role ID -> raw score.
func rawScores(set *answers.Set, roles []catalog.Role) map[string]int {
	scores := make(map[string]int, len(roles))
	for _, role := range roles {
		scores[role.ID] = Baseline
	}

	if v, ok := set.Single(orientationQuestion); ok {
		if cat, ok := orientationCategories[v]; ok {
			for _, role := range roles {
				if role.Category == cat {
					scores[role.ID] += orientationBonus
				}
			}
		}
	}

	if v, ok := set.Single(inclinationQuestion); ok {
		if v == "both" {
			for id := range scores {
				scores[id] += inclinationBothBonus
			}
		} else {
			apply(scores, inclinationRules[v])
		}
	}

	if v, ok := set.Single(levelQuestion); ok {
		apply(scores, levelRules[v])
	}

	for _, interest := range set.Multi(interestQuestion) {
		apply(scores, interestRules[interest])
	}

	return scores
}

// apply adds the rule deltas to the score table. Adjustments naming a
// role absent from the table are skipped, so rule data can never
// introduce phantom roles.
func apply(scores map[string]int, adjustments []adjustment) {
	for _, adj := range adjustments {
		if _, ok := scores[adj.RoleID]; ok {
			scores[adj.RoleID] += adj.Delta
		}
	}
}

// displayScore clamps the raw score into the 0-99 presentation range.
func displayScore(raw int) int {
	d := int(math.Round(float64(raw) / 1.5))
	if d > 99 {
		return 99
	}
	if d < 0 {
		return 0
	}
	return d
}
