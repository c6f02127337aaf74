package dataset

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strings"
)

// readCSV reads every row of a comma-delimited export. Fields may be
// double-quote-escaped so embedded commas survive; rows may carry a variable
// number of columns. A row the reader cannot parse at all is skipped, matching
// the skip-malformed-rows policy for these exports.
func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	var rows [][]string
	first := true
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			continue
		}
		if err != nil {
			return nil, err
		}
		if first && len(row) > 0 {
			// Strip a UTF-8 BOM from the first header cell.
			row[0] = strings.TrimPrefix(row[0], "\uFEFF")
			first = false
		}
		rows = append(rows, row)
	}
	return rows, nil
}
