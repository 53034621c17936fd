package results

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteReadRoundTrip(t *testing.T) {
	outcomes := []Outcome{
		{
			RegistrationNo: "123456789",
			Kind:           Success,
			Record: StudentRecord{
				Name:          "Jahid Hasan",
				ExamRoll:      "410233",
				ResultStatus:  "Passed",
				PublishedDate: "2024-03-01",
				Courses: []CourseResult{
					{Code: "211501", Grade: "a+"},
					{Code: "211503", Grade: "b-"},
					{Code: "211505", Grade: "absent"},
				},
				Group: "B.Sc",
				Year:  "2023",
			},
		},
		{
			RegistrationNo: "123456790",
			Kind:           NotRegistered,
			Record:         StudentRecord{Group: "B.Sc", Year: "2023"},
		},
	}

	path := filepath.Join(t.TempDir(), "results", "nu_results.csv")
	require.NoError(t, WriteFile(path, outcomes))

	records, err := ReadFile(path)
	require.NoError(t, err)
	require.Len(t, records, 2)

	require.Equal(t, "123456789", records[0].RegistrationNo)
	require.Equal(t, "Jahid Hasan", records[0].Name)
	require.Equal(t, outcomes[0].Record.Courses, records[0].Courses)
	require.False(t, records[0].IsSentinel())

	require.Equal(t, "This Student Is Not Registered", records[1].Name)
	require.True(t, records[1].IsSentinel())
	require.Equal(t, NotRegistered, KindFromName(records[1].Name))
	require.Empty(t, records[1].Courses)
}

func TestReadMismatchedTokenCounts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	data := "Registration No,Name,Exam Roll,Result,Published Date,Courses,Grades,Group,Year\n" +
		"1,Someone,2,Passed,,\"211501, 211503\",\"a+\",B.A,2023\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	records, err := ReadFile(path)
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Nil(t, records[0].Courses)
}

func TestOutcomeRowSubstitutesSentinel(t *testing.T) {
	o := Outcome{
		RegistrationNo: "42",
		Kind:           RetryExhausted,
		Record: StudentRecord{
			Name:    "should not survive",
			Courses: []CourseResult{{Code: "x", Grade: "a"}},
		},
	}
	row := o.Row()
	require.Equal(t, "Failed to retrieve", row.Name)
	require.Nil(t, row.Courses)
	require.Equal(t, "42", row.RegistrationNo)
}
