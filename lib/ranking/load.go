package ranking

import (
	"log/slog"

	"nuresults/lib/gradeledger"
	"nuresults/lib/results"
)

type Options struct {
	// ExpectedCourses is the cohort's course count; records with any
	// other count are excluded before ranking. Zero relaxes the rule to
	// "any non-zero count".
	ExpectedCourses int
}

// Load reads persisted records and applies the load-boundary rules the
// engine relies on: sentinel outcomes and malformed rows are dropped with
// a log line, grades are normalized, and the batch proceeds with whatever
// rows survive.
func Load(path string, opts Options) ([]results.StudentRecord, error) {
	records, err := results.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Filter(records, opts), nil
}

// Filter is the load-boundary validation on an in-memory batch.
func Filter(records []results.StudentRecord, opts Options) []results.StudentRecord {
	var out []results.StudentRecord
	for _, rec := range records {
		if rec.IsSentinel() {
			continue
		}
		if len(rec.Courses) == 0 {
			slog.Warn("dropping record without courses", "registration_no", rec.RegistrationNo)
			continue
		}
		if opts.ExpectedCourses > 0 && len(rec.Courses) != opts.ExpectedCourses {
			slog.Warn(
				"dropping record with unexpected course count",
				"registration_no", rec.RegistrationNo,
				"expected", opts.ExpectedCourses,
				"got", len(rec.Courses),
			)
			continue
		}
		normalized := make([]results.CourseResult, len(rec.Courses))
		for i, c := range rec.Courses {
			normalized[i] = results.CourseResult{
				Code:  c.Code,
				Grade: gradeledger.Normalize(c.Grade),
			}
		}
		rec.Courses = normalized
		out = append(out, rec)
	}
	return out
}
