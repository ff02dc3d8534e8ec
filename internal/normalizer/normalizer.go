// Package normalizer coerces raw CSV rows into datasets with a fixed schema.
package normalizer

import (
	"strings"

	"govtable/internal/models"
)

// Normalize reindexes raw rows onto the target schema. Columns absent
// from the source are created and filled with the no-data sentinel;
// empty cells in the schema's category column default to the
// uncategorized sentinel, every other empty cell to no-data. The
// output always has exactly the schema columns, in order.
func Normalize(schema models.Schema, header []string, rows [][]string) models.Dataset {
	srcIndex := make(map[string]int, len(header))
	for i, col := range header {
		// First occurrence wins for duplicated source headers.
		if _, ok := srcIndex[col]; !ok {
			srcIndex[col] = i
		}
	}

	ds := models.Dataset{Schema: schema}

	for _, row := range rows {
		cells := make([]string, len(schema.Columns))

		for j, col := range schema.Columns {
			pos, ok := srcIndex[col]
			if !ok {
				cells[j] = models.NoData

				continue
			}

			var value string
			if pos < len(row) {
				value = strings.TrimSpace(row[pos])
			}

			if value == "" {
				if col == schema.CategoryCol {
					value = models.Uncategorized
				} else {
					value = models.NoData
				}
			}

			cells[j] = value
		}

		ds.Records = append(ds.Records, models.Record{Cells: cells})
	}

	return ds
}
