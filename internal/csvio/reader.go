// Package csvio reads the raw CSV sources feeding the generator.
package csvio

import (
	"encoding/csv"
	"errors"
	"io"
	"os"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"govtable/internal/logger"
)

// ReadFile reads a CSV file and returns its header row and data rows.
// A UTF-8 byte-order mark is stripped if present. Rows may have fewer
// or more fields than the header; the normalizer coerces them to the
// target schema. A missing file or a parse failure degrades to an
// empty result with a logged warning, never an error to the caller.
func ReadFile(path string, log *logger.Logger) ([]string, [][]string) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Warn("⚠️  CSV file not found", "path", path)
		} else {
			log.Warn("⚠️  failed to open CSV file", "path", path, "error", err)
		}

		return nil, nil
	}
	defer f.Close()

	// utf-8-sig input: decode through a BOM-stripping reader.
	dec := unicode.UTF8BOM.NewDecoder()
	reader := csv.NewReader(transform.NewReader(f, dec))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var (
		header []string
		rows   [][]string
	)

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			// Mirror a wholesale parse failure: the dataset is
			// dropped, not half-read.
			log.Warn("⚠️  failed to parse CSV file", "path", path, "error", err)

			return nil, nil
		}

		if header == nil {
			header = record

			continue
		}

		rows = append(rows, record)
	}

	return header, rows
}
