package ranking

import (
	"sort"
	"strings"

	"nuresults/lib/results"

	"github.com/antzucaro/matchr"
)

// canonical cohort labels offered by the portal form
var canonicalGroups = []string{"B.A", "B.S.S", "B.Sc", "B.B.A", "B.Music", "B.Sports"}

const groupSimilarityFloor = 0.85

// CanonicalGroup snaps a free-text cohort label to the closest canonical
// one. Labels that resemble nothing known are kept verbatim so an
// unexpected cohort still ranks, just on its own.
func CanonicalGroup(label string) string {
	if label == "" {
		return ""
	}
	best := ""
	var bestSim float64
	for _, g := range canonicalGroups {
		sim := matchr.JaroWinkler(strings.ToLower(label), strings.ToLower(g), true)
		if sim > bestSim {
			bestSim = sim
			best = g
		}
	}
	if bestSim >= groupSimilarityFloor {
		return best
	}
	return label
}

// RankByGroup partitions records by cohort and ranks each cohort
// independently. Ranking is never cross-group. The returned map is keyed
// by the canonical cohort label.
func RankByGroup(records []results.StudentRecord) map[string][]RankedRecord {
	byGroup := map[string][]results.StudentRecord{}
	for _, rec := range records {
		g := CanonicalGroup(rec.Group)
		byGroup[g] = append(byGroup[g], rec)
	}

	out := map[string][]RankedRecord{}
	for g, recs := range byGroup {
		out[g] = Rank(recs)
	}
	return out
}

// Groups returns the cohort labels of a ranked map in stable order.
func Groups(ranked map[string][]RankedRecord) []string {
	groups := make([]string, 0, len(ranked))
	for g := range ranked {
		groups = append(groups, g)
	}
	sort.Strings(groups)
	return groups
}
