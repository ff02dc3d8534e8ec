package report

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
)

func TestTable_AlignsCJKColumns(t *testing.T) {
	out := Table([]DatasetSummary{
		{Name: "采购公告", Rows: 12, New: 3, Duplicates: 1},
		{Name: "采购意向公告", Rows: 5, New: 0, Duplicates: 0},
	})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header, separator and 2 data lines, got %d:\n%s", len(lines), out)
	}

	// Every line must have the same display width for the table to
	// line up in a terminal.
	want := runewidth.StringWidth(lines[0])
	for i, line := range lines[1:] {
		if got := runewidth.StringWidth(line); got != want {
			t.Errorf("line %d display width = %d, want %d:\n%s", i+1, got, want, out)
		}
	}

	if !strings.Contains(lines[0], "数据集") {
		t.Errorf("header missing, got %q", lines[0])
	}

	if !strings.Contains(lines[2], "采购公告") || !strings.Contains(lines[2], "12") {
		t.Errorf("first data row wrong: %q", lines[2])
	}
}

func TestTable_TruncatesLongNames(t *testing.T) {
	long := strings.Repeat("很长的数据集名称", 10)

	out := Table([]DatasetSummary{{Name: long, Rows: 1}})

	if strings.Contains(out, long) {
		t.Error("long name should be truncated")
	}

	if !strings.Contains(out, "...") {
		t.Error("truncated name should end with an ellipsis")
	}
}

func TestTable_NoDatasets(t *testing.T) {
	out := Table(nil)

	if !strings.Contains(out, "数据集") {
		t.Errorf("even an empty report keeps the header, got %q", out)
	}
}
