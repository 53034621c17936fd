package results

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// cell separator inside the Courses and Grades columns. Readers must split
// on this exact sequence and zip the two lists positionally.
const listSep = ", "

var header = []string{
	"Registration No", "Name", "Exam Roll", "Result",
	"Published Date", "Courses", "Grades", "Group", "Year",
}

// WriteFile persists a batch of outcomes as CSV, creating the parent
// directory if needed. Data already in memory is never discarded on
// failure; the caller may retry with a fallback path.
func WriteFile(path string, outcomes []Outcome) error {
	err := os.MkdirAll(filepath.Dir(path), 0755)
	if err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	err = w.Write(header)
	if err != nil {
		return err
	}
	for _, o := range outcomes {
		rec := o.Row()
		codes := make([]string, len(rec.Courses))
		grades := make([]string, len(rec.Courses))
		for i, c := range rec.Courses {
			codes[i] = c.Code
			grades[i] = c.Grade
		}
		err = w.Write([]string{
			rec.RegistrationNo,
			rec.Name,
			rec.ExamRoll,
			rec.ResultStatus,
			rec.PublishedDate,
			strings.Join(codes, listSep),
			strings.Join(grades, listSep),
			rec.Group,
			rec.Year,
		})
		if err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// ReadFile loads previously persisted records. Rows whose course and grade
// token counts disagree come back with nil Courses; the load boundary in
// front of ranking drops them. Sentinel rows are returned as-is so callers
// can keep them for audit.
func ReadFile(path string) ([]StudentRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	cols, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	idx := map[string]int{}
	for i, c := range cols {
		idx[strings.TrimSpace(c)] = i
	}
	field := func(row []string, name string) string {
		i, ok := idx[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	var records []StudentRecord
	for line := 2; ; line++ {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			slog.Warn("skipping malformed row", "line", line, "err", err)
			continue
		}

		rec := StudentRecord{
			RegistrationNo: field(row, "Registration No"),
			Name:           field(row, "Name"),
			ExamRoll:       field(row, "Exam Roll"),
			ResultStatus:   field(row, "Result"),
			PublishedDate:  field(row, "Published Date"),
			Group:          field(row, "Group"),
			Year:           field(row, "Year"),
		}
		rec.Courses = zipCourses(field(row, "Courses"), field(row, "Grades"))
		records = append(records, rec)
	}
	return records, nil
}

func zipCourses(courseCell, gradeCell string) []CourseResult {
	if courseCell == "" && gradeCell == "" {
		return nil
	}
	codes := strings.Split(courseCell, listSep)
	grades := strings.Split(gradeCell, listSep)
	if len(codes) != len(grades) {
		slog.Warn("course/grade token count mismatch",
			"courses", len(codes), "grades", len(grades))
		return nil
	}
	out := make([]CourseResult, len(codes))
	for i := range codes {
		out[i] = CourseResult{Code: codes[i], Grade: grades[i]}
	}
	return out
}
