package workbook

import (
	"encoding/csv"
	"fmt"
	"io"

	"google.golang.org/api/sheets/v4"
)

// sheetToCSV writes a sheet's full grid - header row included - as CSV. Cell
// values arrive from the Sheets API as interface{} and are stringified as-is;
// an empty grid produces an empty file.
func sheetToCSV(f io.Writer, data *sheets.ValueRange) error {
	w := csv.NewWriter(f)

	for _, row := range data.Values {
		record := make([]string, len(row))
		for i, v := range row {
			record[i] = fmt.Sprintf("%v", v)
		}

		if err := w.Write(record); err != nil {
			return err
		}
	}

	w.Flush()

	return w.Error()
}
