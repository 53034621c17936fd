package gradeledger

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPointTable(t *testing.T) {
	testCases := []struct {
		grade    string
		expected float64
	}{
		{"a+", 4.00},
		{"a", 3.75},
		{"a-", 3.50},
		{"b+", 3.25},
		{"b", 3.00},
		{"b-", 2.75},
		{"c+", 2.50},
		{"c", 2.25},
		{"d", 2.00},
		{"f", 0.00},
		{"fail", 0.00},
		{"absent", -1.00},
		{"A+", 4.00},
		{" B- ", 2.75},
		{"withheld", -1.00},
		{"", -1.00},
	}

	for _, test := range testCases {
		require.Equal(t, test.expected, Point(test.grade), "grade %q", test.grade)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	for _, g := range []string{"A+", "fail", "Fail", "ABSENT", " b- ", "x", ""} {
		once := Normalize(g)
		require.Equal(t, once, Normalize(once))
	}
}

func TestNormalizeKeepsUnknownSymbols(t *testing.T) {
	require.Equal(t, "withheld", Normalize("Withheld"))
	require.Equal(t, "f", Normalize("FAIL"))
}
