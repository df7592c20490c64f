package engine

import (
	"strings"

	"project-explorer/dataset"
)

// CategoryAll is the sentinel that disables category filtering.
const CategoryAll = "All"

// Params are the sidebar controls for one request. Ranges are inclusive.
type Params struct {
	Categories []string
	YearMin    int
	YearMax    int
	TeamMin    int
	TeamMax    int
	Search     string
}

// DefaultParams selects everything the dataset contains.
func DefaultParams(b dataset.Bounds) Params {
	return Params{
		Categories: []string{CategoryAll},
		YearMin:    b.MinYear,
		YearMax:    b.MaxYear,
		TeamMin:    b.MinTeam,
		TeamMax:    b.MaxTeam,
	}
}

func (p Params) allCategories() bool {
	if len(p.Categories) == 0 {
		return true
	}
	for _, c := range p.Categories {
		if c == CategoryAll {
			return true
		}
	}
	return false
}

// Filter applies the category and range predicates and returns the base
// view: the input charts, metrics and exports all consume. Record order is
// preserved. The search term is NOT applied here; see Narrow.
func Filter(ds *dataset.Dataset, p Params) View {
	var catSet map[string]bool
	if !p.allCategories() {
		catSet = make(map[string]bool, len(p.Categories))
		for _, c := range p.Categories {
			catSet[c] = true
		}
	}

	indices := make([]int, 0, ds.Len())
	for i, r := range ds.Records {
		if catSet != nil && !catSet[r.Category] {
			continue
		}
		if r.LaunchYear < p.YearMin || r.LaunchYear > p.YearMax {
			continue
		}
		if r.TeamSize < p.TeamMin || r.TeamSize > p.TeamMax {
			continue
		}
		indices = append(indices, i)
	}
	return View{ds: ds, indices: indices}
}

// Narrow applies the free-text search on top of an already filtered view.
// Only the data table and its display consume the narrowed view; charts,
// metrics and exports keep using the base view. Matching is a
// case-insensitive substring test against title or description.
func Narrow(v View, term string) View {
	term = strings.TrimSpace(term)
	if term == "" {
		return v
	}
	needle := strings.ToLower(term)

	indices := make([]int, 0, len(v.indices))
	for _, idx := range v.indices {
		r := v.ds.Records[idx]
		if strings.Contains(strings.ToLower(r.Title), needle) ||
			strings.Contains(strings.ToLower(r.Description), needle) {
			indices = append(indices, idx)
		}
	}
	return View{ds: v.ds, indices: indices}
}
