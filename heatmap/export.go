package heatmap

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// WriteCSV writes f as Rows lines of Cols readings. When brush is non-nil a
// trailing "# brush" comment line carries the selection stats.
func WriteCSV(w io.Writer, f Frame, brush *Stats) error {
	cw := csv.NewWriter(w)
	for r, row := range f {
		rec := make([]string, len(row))
		for c, v := range row {
			rec[c] = strconv.FormatFloat(v, 'f', -1, 64)
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("write row %d: %w", r, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	if brush != nil {
		if _, err := fmt.Fprintf(w, "# brush: %s\n", brush); err != nil {
			return fmt.Errorf("write brush summary: %w", err)
		}
	}
	return nil
}
