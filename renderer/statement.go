package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/etnz/finview"
	md "github.com/nao1215/markdown"
)

// StatementMarkdown renders a shaped statement table to markdown: one row
// per indicator, one column per selected year, oldest year first.
func StatementMarkdown(tab string, t finview.TableModel) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(tab)

	if t.IsEmpty() {
		doc.PlainText("No years selected.")
		return doc.String()
	}

	alignment := make([]md.TableAlignment, 0, t.Cols()+1)
	alignment = append(alignment, md.AlignLeft)
	header := make([]string, 0, t.Cols()+1)
	header = append(header, md.Bold("Indicador"))
	for _, year := range t.Years() {
		alignment = append(alignment, md.AlignRight)
		header = append(header, md.Bold(strconv.Itoa(year)))
	}

	table := md.TableSet{
		Alignment: alignment,
		Header:    header,
		Rows:      [][]string{},
	}
	for row := 0; row < t.Rows(); row++ {
		cells := make([]string, 0, t.Cols()+1)
		cells = append(cells, t.Header(row))
		for col := 0; col < t.Cols(); col++ {
			cells = append(cells, cellText(t, row, col))
		}
		table.Rows = append(table.Rows, cells)
	}
	doc.Table(table)

	return doc.String()
}

// TabsMarkdown renders the list of statement tabs of a workbook.
func TabsMarkdown(tabs []string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Statement Tabs")
	if len(tabs) == 0 {
		doc.PlainText("The workbook has no tabs.")
		return doc.String()
	}
	doc.BulletList(tabs...)
	return doc.String()
}

// cellText formats one cell, appending the percentage annotation when the
// indicator carries one for that year.
func cellText(t finview.TableModel, row, col int) string {
	text := t.Cell(row, col).String()
	if p, ok := t.CellPercent(row, col); ok {
		text = fmt.Sprintf("%s (%s)", text, p)
	}
	return text
}
