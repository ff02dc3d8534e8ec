package normalizer

import (
	"time"

	"govtable/internal/models"
)

// timeFormats are tried in order against the raw time-column value.
var timeFormats = []string{
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02",
	"2006年01月02日",
	"2006年1月2日",
	"01-02-2006",
	"02/01/2006",
}

// ParseTimes derives the parsed timestamp for every record from the
// schema's time column. Empty and sentinel values yield a nil
// timestamp; values matching none of the known formats fall back to a
// single deterministic RFC 3339 attempt, then nil. The original string
// cell is never touched.
func ParseTimes(ds *models.Dataset) {
	idx := ds.Schema.Index(ds.Schema.TimeCol)
	if idx < 0 {
		return
	}

	for i := range ds.Records {
		ds.Records[i].Parsed = parseTime(ds.Records[i].Cells[idx])
	}
}

func parseTime(value string) *time.Time {
	if value == "" || value == models.NoData || value == models.Unknown {
		return nil
	}

	for _, layout := range timeFormats {
		if t, err := time.Parse(layout, value); err == nil {
			return &t
		}
	}

	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return &t
	}

	return nil
}
