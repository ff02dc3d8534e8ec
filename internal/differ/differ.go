// Package differ marks new rows against the previous run and removes duplicates.
package differ

import "govtable/internal/models"

// Apply processes a dataset against the prior run's key set:
//
//  1. every row is tagged new when its unique key is not in priorKeys;
//  2. rows duplicating an earlier row's key are dropped, first
//     occurrence wins (source order);
//  3. rows are stable-partitioned with new rows first, preserving the
//     relative order inside each partition.
//
// It returns the processed dataset plus the deduplicated key list,
// which replaces the stored history for the next run. An empty dataset
// yields an empty dataset and an empty key list.
func Apply(ds models.Dataset, priorKeys map[string]struct{}) (models.Dataset, []string) {
	out := models.Dataset{Schema: ds.Schema}
	keys := []string{}

	keyIdx := ds.Schema.Index(ds.Schema.UniqueKey)
	if keyIdx < 0 {
		return out, keys
	}

	seen := make(map[string]struct{}, len(ds.Records))

	var fresh, rest []models.Record

	for _, rec := range ds.Records {
		key := rec.Cells[keyIdx]
		if _, dup := seen[key]; dup {
			continue
		}

		seen[key] = struct{}{}
		keys = append(keys, key)

		_, prior := priorKeys[key]
		rec.IsNew = !prior

		if rec.IsNew {
			fresh = append(fresh, rec)
		} else {
			rest = append(rest, rec)
		}
	}

	out.Records = append(fresh, rest...)

	return out, keys
}
