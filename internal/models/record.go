// Package models defines the tabular data types shared across the generation pipeline.
package models

import "time"

// Sentinel cell values used throughout the pipeline.
const (
	// NoData marks a missing or absent value.
	NoData = "无数据"
	// Uncategorized marks an empty category cell.
	Uncategorized = "未分类"
	// Unknown appears in crawled sources and is treated like NoData
	// when parsing times and rendering links.
	Unknown = "未知"
)

// Schema describes the fixed column layout of one dataset.
type Schema struct {
	// ID identifies the table in the rendered page (e.g. "notice").
	ID string
	// Heading is the section title shown above the table.
	Heading string
	// Columns is the ordered list of column names.
	Columns []string
	// UniqueKey is the column used to detect duplicates and new rows.
	UniqueKey string
	// FilterCols are the columns that get a dropdown filter.
	FilterCols []string
	// TimeCol is the column used for time sorting.
	TimeCol string
	// LinkCol is the column rendered as a hyperlink when it holds a URL.
	LinkCol string
	// CategoryCol, if set, has empty cells filled with Uncategorized
	// instead of NoData.
	CategoryCol string
}

// Index returns the position of col in the schema, or -1 if absent.
func (s *Schema) Index(col string) int {
	for i, c := range s.Columns {
		if c == col {
			return i
		}
	}

	return -1
}

// Record is one normalized row. Cells are aligned positionally with the
// schema columns, so every expected column is present by construction.
type Record struct {
	Cells []string
	// IsNew is true when the unique key was not seen in the prior run.
	IsNew bool
	// Parsed is the parsed time-column value; nil when unparseable.
	Parsed *time.Time
}

// Timestamp returns the unix seconds of the parsed time, or 0 when the
// time could not be parsed. Rows with 0 land at the earliest position
// under newest-first sorting.
func (r *Record) Timestamp() int64 {
	if r.Parsed == nil {
		return 0
	}

	return r.Parsed.Unix()
}

// Dataset is an ordered sequence of records sharing one schema.
type Dataset struct {
	Schema  Schema
	Records []Record
}

// Empty reports whether the dataset has no rows.
func (d *Dataset) Empty() bool {
	return len(d.Records) == 0
}

// Cell returns the value of col for record i, or NoData if the column
// is not part of the schema.
func (d *Dataset) Cell(i int, col string) string {
	idx := d.Schema.Index(col)
	if idx < 0 || idx >= len(d.Records[i].Cells) {
		return NoData
	}

	return d.Records[i].Cells[idx]
}
