package report

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"nuresults/lib/ranking"
	"nuresults/lib/results"

	"github.com/stretchr/testify/require"
)

func sampleRanked() []ranking.RankedRecord {
	return []ranking.RankedRecord{
		{
			StudentRecord: results.StudentRecord{
				RegistrationNo: "123456789",
				Name:           "Jahid Hasan",
				ExamRoll:       "410233",
				ResultStatus:   "Passed",
				Courses: []results.CourseResult{
					{Code: "211501", Grade: "a+"},
					{Code: "211503", Grade: "b-"},
				},
			},
			Point: 3.38,
			Rank:  1,
		},
	}
}

func TestWritePDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports", "B.Sc.pdf")
	require.NoError(t, WritePDF(path, "B.Sc", "2023", sampleRanked()))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Greater(t, info.Size(), int64(0))
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	WriteTable(&buf, "B.Sc", sampleRanked())

	out := buf.String()
	require.Contains(t, out, "Jahid Hasan")
	require.Contains(t, out, "3.38")
	require.Contains(t, out, "A+ B-")
}
