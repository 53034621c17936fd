package gradeledger

import "strings"

// DefaultPoint is the score for any grade symbol outside the ledger,
// the same value as an explicit absence. This is a deliberate worst-case
// default, not a data error.
const DefaultPoint = -1.00

var points = map[string]float64{
	"a+":     4.00,
	"a":      3.75,
	"a-":     3.50,
	"b+":     3.25,
	"b":      3.00,
	"b-":     2.75,
	"c+":     2.50,
	"c":      2.25,
	"d":      2.00,
	"f":      0.00,
	"absent": -1.00,
}

// Normalize lowercases and trims a grade symbol. "fail" collapses to "f",
// everything else is kept verbatim, recognized or not.
func Normalize(grade string) string {
	grade = strings.ToLower(strings.TrimSpace(grade))
	if grade == "fail" {
		return "f"
	}
	return grade
}

// Point returns the point value for a normalized grade symbol.
func Point(grade string) float64 {
	p, ok := points[Normalize(grade)]
	if !ok {
		return DefaultPoint
	}
	return p
}
