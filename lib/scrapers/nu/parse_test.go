package nu

import (
	"testing"

	"nuresults/lib/results"

	"github.com/stretchr/testify/require"
)

const samplePage = `National University
Bachelor Degree (Honours) 1st Year Examination Result
Name of Student KARIM RAHMAN
Exam. Roll 410233
Registration No 123456789
Result Passed
Published on: 2024-03-01
Course Code Obtained Grade
211501 A+
211503 B-
211505 Absent

Printed from the result portal`

func TestParseResult(t *testing.T) {
	rec := ParseResult(samplePage, "123456789")

	require.Equal(t, "KARIM RAHMAN", rec.Name)
	require.Equal(t, "410233", rec.ExamRoll)
	require.Equal(t, "Passed", rec.ResultStatus)
	require.Equal(t, "2024-03-01", rec.PublishedDate)
	require.Equal(t, []results.CourseResult{
		{Code: "211501", Grade: "a+"},
		{Code: "211503", Grade: "b-"},
		{Code: "211505", Grade: "absent"},
	}, rec.Courses)
}

func TestParseResultStatusGuard(t *testing.T) {
	// a results-table header row mentions "Result" but carries four or
	// more fields, it must not be mistaken for the status line
	text := "Course Result Grade Point Table\nResult Failed"
	rec := ParseResult(text, "1")
	require.Equal(t, "Failed", rec.ResultStatus)
}

func TestParseResultSparseText(t *testing.T) {
	rec := ParseResult("nothing recognizable here at all", "42")
	require.Equal(t, "42", rec.RegistrationNo)
	require.Empty(t, rec.Name)
	require.Empty(t, rec.ExamRoll)
	require.Empty(t, rec.Courses)
}

func TestParseResultTableStopsAtBrokenRow(t *testing.T) {
	text := `Course Code Obtained Grade
211501 A+
211503
211505 B-`
	rec := ParseResult(text, "1")
	require.Equal(t, []results.CourseResult{{Code: "211501", Grade: "a+"}}, rec.Courses)
}

func TestParseResultOversizedTableIsKept(t *testing.T) {
	// course-count validation belongs to the load boundary, the parser
	// keeps whatever the table holds
	text := `Course Code Obtained Grade
1 a
2 b
3 c
4 d
5 f
6 a+
7 b+
8 c+`
	rec := ParseResult(text, "1")
	require.Len(t, rec.Courses, 8)
}
