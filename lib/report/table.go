package report

import (
	"fmt"
	"io"
	"strings"

	"nuresults/lib/ranking"

	"github.com/jedib0t/go-pretty/v6/table"
)

// WriteTable renders the cohort ranking as a terminal table.
func WriteTable(out io.Writer, group string, ranked []ranking.RankedRecord) {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(out)
	t.SetTitle(group)

	t.AppendHeader(table.Row{"Rank", "Name", "Exam Roll", "Registration No", "Result", "Point", "Grades"})
	for _, student := range ranked {
		grades := make([]string, len(student.Courses))
		for i, c := range student.Courses {
			grades[i] = strings.ToUpper(c.Grade)
		}
		t.AppendRow(table.Row{
			student.Rank,
			student.Name,
			student.ExamRoll,
			student.RegistrationNo,
			student.ResultStatus,
			fmt.Sprintf("%.2f", student.Point),
			strings.Join(grades, " "),
		})
	}
	t.Render()
}
