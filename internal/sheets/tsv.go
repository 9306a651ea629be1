package sheets

import (
	"fmt"
	"strings"
)

// ValuesToTSV flattens a value grid into tab-separated text. Cells are
// stringified with %v (nil becomes the empty string), cells within a row are
// tab-joined, rows are newline-joined. Ragged rows stay ragged; short rows
// are not padded to the widest row.
func ValuesToTSV(values [][]interface{}) string {
	if len(values) == 0 {
		return ""
	}

	rows := make([]string, 0, len(values))
	for _, row := range values {
		cells := make([]string, 0, len(row))
		for _, cell := range row {
			cells = append(cells, cellString(cell))
		}
		rows = append(rows, strings.Join(cells, "\t"))
	}
	return strings.Join(rows, "\n")
}

func cellString(cell interface{}) string {
	if cell == nil {
		return ""
	}
	return fmt.Sprintf("%v", cell)
}
