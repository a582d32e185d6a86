// Package site renders the static site: template assets plus one index.html
// generated from the categories in the local data directory.
package site

import (
	"encoding/csv"
	"fmt"
	"html/template"
	"os"
	"regexp"
	"strconv"
)

// Record is one row of a sheet, keyed by the sheet's header fields. The field
// set is whatever the header declares - nothing here is fixed.
type Record map[string]string

// Category is one section of the rendered page, assembled from one CSV file.
// The label may contain HTML entities and is rendered unescaped.
type Category struct {
	Ordinal int
	Key     string
	Label   template.HTML
	Records []Record
}

// Tabular files are expected to be named like '1_learning_resources.csv' -
// the leading digit fixes the display order and the remainder is the
// category key.
var filenamePattern = regexp.MustCompile(`^([0-9])_(.+)\.csv$`)

// parseFilename extracts the (ordinal, key) pair encoded in a tabular
// filename. A filename that does not match the pattern is an error, not a
// skip - a malformed data directory aborts the whole run.
func parseFilename(name string) (int, string, error) {
	match := filenamePattern.FindStringSubmatch(name)
	if len(match) < 3 {
		return 0, "", fmt.Errorf("invalid tabular filename '%s' - expected something like '1_learning_resources.csv'", name)
	}

	ordinal, err := strconv.Atoi(match[1])
	if err != nil {
		return 0, "", fmt.Errorf("invalid tabular filename '%s' (%v)", name, err)
	}

	return ordinal, match[2], nil
}

// readRecords parses a CSV file as header-keyed records. Rows shorter than
// the header leave the missing fields empty.
func readRecords(file string) ([]Record, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}

	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("unable to parse '%s' (%v)", file, err)
	}

	if len(rows) == 0 {
		return []Record{}, nil
	}

	header := rows[0]
	records := make([]Record, 0, len(rows)-1)

	for _, row := range rows[1:] {
		record := Record{}
		for i, field := range header {
			if i < len(row) {
				record[field] = row[i]
			} else {
				record[field] = ""
			}
		}

		records = append(records, record)
	}

	return records, nil
}

// label maps a category key to its display label, falling back to the raw
// key when the table has no entry.
func label(key string, labels map[string]string) template.HTML {
	if v, ok := labels[key]; ok {
		return template.HTML(v)
	}

	return template.HTML(key)
}
