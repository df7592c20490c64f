package engine

import (
	"fmt"
	"sort"
)

// ChartSet bundles every dashboard panel's chart spec for one base view.
// Specs are declarative: the page renders them, nothing here draws.
type ChartSet struct {
	CategoryPie       PieSpec       `json:"category_pie"`
	YearTrend         LineSpec      `json:"year_trend"`
	TeamSuccess       ScatterSpec   `json:"team_success"`
	Spatial           Scatter3DSpec `json:"spatial"`
	FundingByCategory BarSpec       `json:"funding_by_category"`
	FundingHistogram  HistogramSpec `json:"funding_histogram"`
}

// PieSpec is a share-of-total chart over labelled values.
type PieSpec struct {
	Title  string    `json:"title"`
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

// LineSpec is a single-series trend over an integer x axis.
type LineSpec struct {
	Title  string    `json:"title"`
	XLabel string    `json:"x_label"`
	YLabel string    `json:"y_label"`
	X      []int     `json:"x"`
	Y      []float64 `json:"y"`
}

// ScatterSpec carries one series per category; color is the series.
type ScatterSpec struct {
	Title  string          `json:"title"`
	XLabel string          `json:"x_label"`
	YLabel string          `json:"y_label"`
	Series []ScatterSeries `json:"series"`
}

// ScatterSeries is one category's points. Size carries the funding
// encoding; Hover the per-point tooltip lines.
type ScatterSeries struct {
	Name  string    `json:"name"`
	X     []float64 `json:"x"`
	Y     []float64 `json:"y"`
	Size  []float64 `json:"size"`
	Hover []string  `json:"hover"`
}

// Scatter3DSpec is the project-space scatter. Size encodes team size,
// Color encodes launch year on a continuous scale.
type Scatter3DSpec struct {
	Title      string    `json:"title"`
	X          []float64 `json:"x"`
	Y          []float64 `json:"y"`
	Z          []float64 `json:"z"`
	Size       []float64 `json:"size"`
	Color      []float64 `json:"color"`
	ColorScale string    `json:"color_scale"`
	Hover      []string  `json:"hover"`
}

// BarSpec is a labelled bar chart; Horizontal selects orientation.
type BarSpec struct {
	Title      string    `json:"title"`
	XLabel     string    `json:"x_label"`
	YLabel     string    `json:"y_label"`
	Horizontal bool      `json:"horizontal"`
	Labels     []string  `json:"labels"`
	Values     []float64 `json:"values"`
}

// HistogramSpec is a pre-binned distribution: Counts has exactly Bins
// entries, bin i spanning [Start+i*Width, Start+(i+1)*Width).
type HistogramSpec struct {
	Title  string  `json:"title"`
	XLabel string  `json:"x_label"`
	Bins   int     `json:"bins"`
	Start  float64 `json:"start"`
	Width  float64 `json:"width"`
	Counts []int   `json:"counts"`
}

// HistogramBins is the default funding histogram bin count.
const HistogramBins = 20

// Charts builds every chart spec from the base view. Grouping happens once
// per dimension here; no chart re-filters or re-aggregates on its own.
func Charts(v View, bins int) ChartSet {
	if bins <= 0 {
		bins = HistogramBins
	}
	byCategory := groupByCategory(v)

	return ChartSet{
		CategoryPie:       buildCategoryPie(byCategory),
		YearTrend:         buildYearTrend(v),
		TeamSuccess:       buildTeamSuccess(v),
		Spatial:           buildSpatial(v),
		FundingByCategory: buildFundingByCategory(byCategory),
		FundingHistogram:  buildFundingHistogram(v, bins),
	}
}

// YearTrendSpec builds the launch-year trend on its own; the PNG export
// uses it without composing the full chart set.
func YearTrendSpec(v View) LineSpec { return buildYearTrend(v) }

// FundingByCategorySpec builds the funding bar chart on its own.
func FundingByCategorySpec(v View) BarSpec {
	return buildFundingByCategory(groupByCategory(v))
}

// categoryGroup is the shared per-category aggregate consumed by the pie
// and bar builders.
type categoryGroup struct {
	Category string
	Count    int
	Funding  float64
}

func groupByCategory(v View) []categoryGroup {
	pos := make(map[string]int)
	var groups []categoryGroup
	for i := 0; i < v.Len(); i++ {
		r := v.At(i)
		p, ok := pos[r.Category]
		if !ok {
			p = len(groups)
			pos[r.Category] = p
			groups = append(groups, categoryGroup{Category: r.Category})
		}
		groups[p].Count++
		groups[p].Funding += r.Funding
	}
	return groups
}

func buildCategoryPie(groups []categoryGroup) PieSpec {
	spec := PieSpec{Title: "Projects by Category"}
	for _, g := range groups {
		spec.Labels = append(spec.Labels, g.Category)
		spec.Values = append(spec.Values, float64(g.Count))
	}
	return spec
}

func buildYearTrend(v View) LineSpec {
	counts := make(map[int]int)
	for i := 0; i < v.Len(); i++ {
		counts[v.At(i).LaunchYear]++
	}
	years := make([]int, 0, len(counts))
	for y := range counts {
		years = append(years, y)
	}
	sort.Ints(years)

	spec := LineSpec{
		Title:  "Projects Launched by Year",
		XLabel: "Year",
		YLabel: "Number of Projects",
	}
	for _, y := range years {
		spec.X = append(spec.X, y)
		spec.Y = append(spec.Y, float64(counts[y]))
	}
	return spec
}

func buildTeamSuccess(v View) ScatterSpec {
	spec := ScatterSpec{
		Title:  "Team Size vs Success Rate (bubble size = funding)",
		XLabel: "Team Size",
		YLabel: "Success Rate",
	}
	pos := make(map[string]int)
	for i := 0; i < v.Len(); i++ {
		r := v.At(i)
		p, ok := pos[r.Category]
		if !ok {
			p = len(spec.Series)
			pos[r.Category] = p
			spec.Series = append(spec.Series, ScatterSeries{Name: r.Category})
		}
		s := &spec.Series[p]
		s.X = append(s.X, float64(r.TeamSize))
		s.Y = append(s.Y, r.SuccessRate)
		s.Size = append(s.Size, r.Funding)
		s.Hover = append(s.Hover, fmt.Sprintf("%s (launched %d)", r.Title, r.LaunchYear))
	}
	return spec
}

func buildSpatial(v View) Scatter3DSpec {
	spec := Scatter3DSpec{
		Title:      "3D Project Space (Marker size = Team Size)",
		ColorScale: "Viridis",
	}
	for i := 0; i < v.Len(); i++ {
		r := v.At(i)
		spec.X = append(spec.X, r.X)
		spec.Y = append(spec.Y, r.Y)
		spec.Z = append(spec.Z, r.Z)
		spec.Size = append(spec.Size, float64(r.TeamSize*2))
		spec.Color = append(spec.Color, float64(r.LaunchYear))
		spec.Hover = append(spec.Hover, fmt.Sprintf(
			"%s<br>Category: %s<br>Team Size: %d<br>Launch Year: %d<br>X: %.2f<br>Y: %.2f<br>Z: %.2f",
			r.Title, r.Category, r.TeamSize, r.LaunchYear, r.X, r.Y, r.Z))
	}
	return spec
}

func buildFundingByCategory(groups []categoryGroup) BarSpec {
	sorted := make([]categoryGroup, len(groups))
	copy(sorted, groups)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Funding < sorted[j].Funding
	})

	spec := BarSpec{
		Title:      "Total Funding by Category",
		XLabel:     "Funding ($)",
		YLabel:     "Category",
		Horizontal: true,
	}
	for _, g := range sorted {
		spec.Labels = append(spec.Labels, g.Category)
		spec.Values = append(spec.Values, g.Funding)
	}
	return spec
}

func buildFundingHistogram(v View, bins int) HistogramSpec {
	spec := HistogramSpec{
		Title:  "Funding Distribution",
		XLabel: "Funding ($)",
		Bins:   bins,
		Counts: make([]int, bins),
	}
	if v.Len() == 0 {
		return spec
	}

	min, max := v.At(0).Funding, v.At(0).Funding
	for i := 1; i < v.Len(); i++ {
		f := v.At(i).Funding
		if f < min {
			min = f
		}
		if f > max {
			max = f
		}
	}
	spec.Start = min
	spec.Width = (max - min) / float64(bins)

	for i := 0; i < v.Len(); i++ {
		f := v.At(i).Funding
		var b int
		if spec.Width > 0 {
			b = int((f - min) / spec.Width)
		}
		if b >= bins { // max value lands in the last bin
			b = bins - 1
		}
		spec.Counts[b]++
	}
	return spec
}
