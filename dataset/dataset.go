package dataset

// Record is a single project row.
type Record struct {
	Title       string  `json:"title"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Z           float64 `json:"z"`
	LaunchYear  int     `json:"launch_year"`
	TeamSize    int     `json:"team_size"`
	Funding     float64 `json:"funding"`
	SuccessRate float64 `json:"success_rate"`
}

// Columns is the canonical column order for CSV input and output.
var Columns = []string{
	"title", "category", "description",
	"x", "y", "z",
	"launch_year", "team_size", "funding", "success_rate",
}

// Bounds holds the observed min/max of the sliderable fields.
// The dashboard constrains its range controls to these values.
type Bounds struct {
	MinYear int `json:"min_year"`
	MaxYear int `json:"max_year"`
	MinTeam int `json:"min_team"`
	MaxTeam int `json:"max_team"`
}

// Dataset is the loaded project data. It is immutable after load;
// all filtering produces index views, never mutates Records.
type Dataset struct {
	Records []Record
	Source  string // "file" or "synthetic"
	Notice  string // non-fatal load warning surfaced on the dashboard
	Bounds  Bounds
}

// New builds a Dataset over records, computing the observed bounds.
func New(records []Record, source string) *Dataset {
	return &Dataset{Records: records, Source: source, Bounds: computeBounds(records)}
}

func (d *Dataset) Len() int { return len(d.Records) }

// Categories returns the distinct category values in first-seen order.
func (d *Dataset) Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, r := range d.Records {
		if !seen[r.Category] {
			seen[r.Category] = true
			out = append(out, r.Category)
		}
	}
	return out
}

func computeBounds(records []Record) Bounds {
	if len(records) == 0 {
		return Bounds{}
	}
	b := Bounds{
		MinYear: records[0].LaunchYear,
		MaxYear: records[0].LaunchYear,
		MinTeam: records[0].TeamSize,
		MaxTeam: records[0].TeamSize,
	}
	for _, r := range records[1:] {
		if r.LaunchYear < b.MinYear {
			b.MinYear = r.LaunchYear
		}
		if r.LaunchYear > b.MaxYear {
			b.MaxYear = r.LaunchYear
		}
		if r.TeamSize < b.MinTeam {
			b.MinTeam = r.TeamSize
		}
		if r.TeamSize > b.MaxTeam {
			b.MaxTeam = r.TeamSize
		}
	}
	return b
}
