package ranking

import (
	"path/filepath"
	"testing"

	"nuresults/lib/results"

	"github.com/stretchr/testify/require"
)

func TestLoadDropsSentinelsAndBadCounts(t *testing.T) {
	outcomes := []results.Outcome{
		{
			RegistrationNo: "1",
			Kind:           results.Success,
			Record: results.StudentRecord{
				Name: "Valid Student",
				Courses: []results.CourseResult{
					{Code: "211501", Grade: "A+"},
					{Code: "211503", Grade: "Fail"},
				},
			},
		},
		{RegistrationNo: "2", Kind: results.NotRegistered},
		{RegistrationNo: "3", Kind: results.RetryExhausted},
		{
			RegistrationNo: "4",
			Kind:           results.Success,
			Record: results.StudentRecord{
				Name: "Short Course List",
				Courses: []results.CourseResult{
					{Code: "211501", Grade: "a"},
				},
			},
		},
	}

	path := filepath.Join(t.TempDir(), "nu_results.csv")
	require.NoError(t, results.WriteFile(path, outcomes))

	records, err := Load(path, Options{ExpectedCourses: 2})
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, "1", records[0].RegistrationNo)

	// grades come back normalized at the load boundary
	require.Equal(t, "a+", records[0].Courses[0].Grade)
	require.Equal(t, "f", records[0].Courses[1].Grade)
}

func TestLoadAnyNonZeroCourseCount(t *testing.T) {
	records := Filter([]results.StudentRecord{
		{RegistrationNo: "1", Name: "A", Courses: []results.CourseResult{{Code: "x", Grade: "a"}}},
		{RegistrationNo: "2", Name: "B"},
	}, Options{})

	require.Len(t, records, 1)
	require.Equal(t, "1", records[0].RegistrationNo)
}
