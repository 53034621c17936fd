package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"nuresults/lib/ranking"

	"github.com/jung-kurt/gofpdf"
)

// WritePDF renders one ranking sheet for a cohort: a title block followed
// by a per-student section with identity lines and a bordered course/grade
// table. Grades are shown uppercased, course order is the record's
// original order.
func WritePDF(path, group, year string, ranked []ranking.RankedRecord) error {
	err := os.MkdirAll(filepath.Dir(path), 0755)
	if err != nil {
		return fmt.Errorf("create report directory: %w", err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, "National University - Examination Results", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "B", 12)
	title := fmt.Sprintf("Ranking List - %s", group)
	if year != "" {
		title = fmt.Sprintf("%s (%s)", title, year)
	}
	pdf.CellFormat(0, 10, title, "", 1, "C", false, 0, "")
	pdf.Ln(10)

	for _, student := range ranked {
		pdf.SetFont("Arial", "", 12)
		info := []string{
			fmt.Sprintf("Rank: %d", student.Rank),
			fmt.Sprintf("Name: %s", student.Name),
			fmt.Sprintf("Roll: %s", student.ExamRoll),
			fmt.Sprintf("Reg: %s", student.RegistrationNo),
			fmt.Sprintf("Result: %s", student.ResultStatus),
			fmt.Sprintf("GPA: %.2f", student.Point),
		}
		for _, line := range info {
			pdf.CellFormat(0, 10, line, "", 1, "", false, 0, "")
		}
		pdf.Ln(5)

		pdf.SetFont("Arial", "B", 12)
		pdf.CellFormat(40, 10, "Course Code", "1", 0, "", false, 0, "")
		pdf.CellFormat(30, 10, "Grade", "1", 1, "", false, 0, "")

		pdf.SetFont("Arial", "", 12)
		for _, course := range student.Courses {
			pdf.CellFormat(40, 10, course.Code, "1", 0, "", false, 0, "")
			pdf.CellFormat(30, 10, strings.ToUpper(course.Grade), "1", 1, "", false, 0, "")
		}
		pdf.Ln(10)
	}

	err = pdf.OutputFileAndClose(path)
	if err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	return nil
}
