package ranking

import (
	"math"
	"sort"

	"nuresults/lib/gradeledger"
	"nuresults/lib/results"
)

// RankedRecord widens a student record with its computed point and class
// rank. Records are never mutated after rank assignment.
type RankedRecord struct {
	results.StudentRecord
	Point float64
	Rank  int
}

// Point computes the GPA-like score for a record: the mean of the grade
// points over its courses, rounded to two decimals. A record without
// courses scores 0.00 by definition, not by error.
func Point(rec results.StudentRecord) float64 {
	if len(rec.Courses) == 0 {
		return 0.00
	}
	sum := 0.0
	for _, c := range rec.Courses {
		sum += gradeledger.Point(c.Grade)
	}
	return round2(sum / float64(len(rec.Courses)))
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// Rank orders records and assigns competition ranks: ties share a rank and
// the next distinct entry's rank is its 1-based position, leaving gaps
// after tie groups. Two records tie only when both the rounded point and
// the per-position grade-point vector match. The rounded point is
// deliberately the primary key, to stay output-compatible with earlier
// runs of this pipeline.
//
// Callers are expected to have filtered sentinel and malformed records
// already; Rank itself only applies the default grade point to anything
// it does not recognize.
func Rank(records []results.StudentRecord) []RankedRecord {
	if len(records) == 0 {
		return nil
	}

	ranked := make([]RankedRecord, len(records))
	for i, rec := range records {
		ranked[i] = RankedRecord{
			StudentRecord: rec,
			Point:         Point(rec),
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Point != ranked[j].Point {
			return ranked[i].Point > ranked[j].Point
		}
		return compareGradeVectors(ranked[i].Courses, ranked[j].Courses) > 0
	})

	currentRank := 1
	for i := range ranked {
		if i > 0 && !tied(ranked[i-1], ranked[i]) {
			currentRank = i + 1
		}
		ranked[i].Rank = currentRank
	}
	return ranked
}

func tied(a, b RankedRecord) bool {
	return a.Point == b.Point && compareGradeVectors(a.Courses, b.Courses) == 0
}

// compareGradeVectors compares per-course grade points element-wise in
// original course order. Longer vectors win once they are equal over the
// shared prefix.
func compareGradeVectors(a, b []results.CourseResult) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		pa := gradeledger.Point(a[i].Grade)
		pb := gradeledger.Point(b[i].Grade)
		if pa != pb {
			if pa > pb {
				return 1
			}
			return -1
		}
	}
	if len(a) > len(b) {
		return 1
	}
	if len(a) < len(b) {
		return -1
	}
	return 0
}
