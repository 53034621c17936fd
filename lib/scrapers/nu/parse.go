package nu

import (
	"strings"

	"nuresults/lib/results"
)

// ParseResult extracts a structured record from the rendered text of a
// result page. Extraction is line oriented and label driven; it never
// fails, fields without a matching line simply stay empty. Course counts
// are not validated here, that happens at the load boundary in front of
// ranking.
func ParseResult(text, registrationNo string) results.StudentRecord {
	rec := results.StudentRecord{RegistrationNo: registrationNo}

	lines := strings.Split(text, "\n")
	for i, raw := range lines {
		line := strings.TrimSpace(raw)
		switch {
		case strings.Contains(line, "Name of Student"):
			rec.Name = strings.TrimSpace(strings.ReplaceAll(line, "Name of Student", ""))
		case strings.Contains(line, "Exam. Roll"):
			rec.ExamRoll = strings.TrimSpace(strings.ReplaceAll(line, "Exam. Roll", ""))
		case strings.Contains(line, "Result") && len(strings.Fields(line)) < 4:
			// the field count guard keeps this from matching the
			// header row of the results table
			rec.ResultStatus = strings.TrimSpace(strings.ReplaceAll(line, "Result", ""))
		case strings.Contains(line, "Published on:"):
			rec.PublishedDate = strings.TrimSpace(strings.ReplaceAll(line, "Published on:", ""))
		case strings.Contains(line, "Course Code") && strings.Contains(line, "Obtained Grade"):
			// every following line with at least two fields is a table
			// row, the first line that breaks that shape ends the table
			for _, gradeLine := range lines[i+1:] {
				fields := strings.Fields(gradeLine)
				if strings.TrimSpace(gradeLine) == "" || len(fields) < 2 {
					break
				}
				rec.Courses = append(rec.Courses, results.CourseResult{
					Code:  fields[0],
					Grade: strings.ToLower(fields[1]),
				})
			}
		}
	}
	return rec
}
