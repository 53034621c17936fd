package htmlutil

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

func TestGetTextRendersRowsAsLines(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(`
		<div>
			<table>
				<tr><td>Name of Student</td><td>KARIM RAHMAN</td></tr>
				<tr><td>Exam. Roll</td><td>410233</td></tr>
			</table>
			<p>Published on: 2024-03-01</p>
		</div>`))
	require.NoError(t, err)

	text := GetText(doc.Find("div").Nodes[0])
	lines := strings.Split(text, "\n")

	var trimmed []string
	for _, l := range lines {
		if strings.TrimSpace(l) != "" {
			trimmed = append(trimmed, strings.TrimSpace(l))
		}
	}
	require.Equal(t, []string{
		"Name of Student KARIM RAHMAN",
		"Exam. Roll 410233",
		"Published on: 2024-03-01",
	}, trimmed)
}
