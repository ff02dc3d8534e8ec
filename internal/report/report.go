// Package report renders the end-of-run console summary.
package report

import (
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"govtable/pkg/utils"
)

// maxCellWidth caps a cell's display width so one long title cannot
// blow up the whole table.
const maxCellWidth = 40

// DatasetSummary holds per-dataset counters for the summary table.
type DatasetSummary struct {
	Name       string
	Rows       int
	New        int
	Duplicates int
}

// Table formats the summaries as an aligned plaintext table. Column
// widths are computed from display width, so CJK headers and values
// line up in a terminal.
func Table(summaries []DatasetSummary) string {
	rows := [][]string{{"数据集", "行数", "新增", "去重"}}

	for _, s := range summaries {
		rows = append(rows, []string{
			utils.Truncate(s.Name, maxCellWidth),
			strconv.Itoa(s.Rows),
			strconv.Itoa(s.New),
			strconv.Itoa(s.Duplicates),
		})
	}

	return alignRows(rows)
}

func alignRows(rows [][]string) string {
	colCount := 0
	for _, row := range rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}

	widths := make([]int, colCount)

	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var sb strings.Builder

	for rIdx, row := range rows {
		sb.WriteString("|")

		for j := 0; j < colCount; j++ {
			cell := ""
			if j < len(row) {
				cell = row[j]
			}

			sb.WriteString(" ")
			sb.WriteString(cell)

			if padding := widths[j] - runewidth.StringWidth(cell); padding > 0 {
				sb.WriteString(strings.Repeat(" ", padding))
			}

			sb.WriteString(" |")
		}

		sb.WriteString("\n")

		// Separator under the header row.
		if rIdx == 0 {
			sb.WriteString("|")

			for j := 0; j < colCount; j++ {
				sb.WriteString(" ")
				sb.WriteString(strings.Repeat("-", widths[j]))
				sb.WriteString(" |")
			}

			sb.WriteString("\n")
		}
	}

	return sb.String()
}
