package ranking

import (
	"testing"

	"nuresults/lib/results"

	"github.com/stretchr/testify/require"
)

func TestCanonicalGroup(t *testing.T) {
	testCases := []struct {
		label    string
		expected string
	}{
		{"B.Sc", "B.Sc"},
		{"b.sc", "B.Sc"},
		{"B.SC", "B.Sc"},
		{"B.Music", "B.Music"},
		{"B.B.A", "B.B.A"},
		{"Diploma in Nursing", "Diploma in Nursing"},
		{"", ""},
	}
	for _, test := range testCases {
		require.Equal(t, test.expected, CanonicalGroup(test.label), "label %q", test.label)
	}
}

func TestRankByGroupNeverRanksAcrossGroups(t *testing.T) {
	sci := student("1", "a+", "a+")
	sci.Group = "B.Sc"
	art := student("2", "f", "f")
	art.Group = "B.A"
	art2 := student("3", "a", "a")
	art2.Group = "b.a"

	ranked := RankByGroup([]results.StudentRecord{sci, art, art2})
	require.Equal(t, []string{"B.A", "B.Sc"}, Groups(ranked))

	require.Len(t, ranked["B.Sc"], 1)
	require.Equal(t, 1, ranked["B.Sc"][0].Rank)

	require.Len(t, ranked["B.A"], 2)
	require.Equal(t, "3", ranked["B.A"][0].RegistrationNo)
	require.Equal(t, 1, ranked["B.A"][0].Rank)
	require.Equal(t, 2, ranked["B.A"][1].Rank)
}
