package engine

import "strconv"

// TableColumns is the fixed column subset shown in the data table.
var TableColumns = []string{
	"title", "category", "launch_year", "team_size", "funding", "success_rate",
}

// Table is the rendered data table for the search-narrowed view.
type Table struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// BuildTable renders the narrowed view into display rows. Row order
// follows the view, which follows the original dataset.
func BuildTable(v View) Table {
	t := Table{
		Columns: TableColumns,
		Rows:    make([][]string, 0, v.Len()),
	}
	for i := 0; i < v.Len(); i++ {
		r := v.At(i)
		t.Rows = append(t.Rows, []string{
			r.Title,
			r.Category,
			strconv.Itoa(r.LaunchYear),
			strconv.Itoa(r.TeamSize),
			strconv.FormatFloat(r.Funding, 'f', 2, 64),
			strconv.FormatFloat(r.SuccessRate, 'f', 3, 64),
		})
	}
	return t
}
