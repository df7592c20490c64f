package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"project-explorer/dataset"
	"project-explorer/engine"
)

// CSV serializes the base filtered view (not the search-narrowed table
// view) with a header row in the canonical column order. An empty view
// produces a header-only file.
func CSV(v engine.View) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(dataset.Columns); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}
	for i := 0; i < v.Len(); i++ {
		r := v.At(i)
		row := []string{
			r.Title,
			r.Category,
			r.Description,
			formatFloat(r.X),
			formatFloat(r.Y),
			formatFloat(r.Z),
			strconv.Itoa(r.LaunchYear),
			strconv.Itoa(r.TeamSize),
			formatFloat(r.Funding),
			formatFloat(r.SuccessRate),
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+1, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Filename embeds a generation timestamp so repeated downloads do not
// collide, e.g. project_data_20260829_153004.csv.
func Filename(now time.Time) string {
	return "project_data_" + now.Format("20060102_150405") + ".csv"
}

// formatFloat uses the shortest representation that parses back to the
// same value, so exported files round-trip exactly through Load.
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
