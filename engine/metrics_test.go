package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"project-explorer/dataset"
)

func TestAggregateConcreteScenario(t *testing.T) {
	ds := threeProjects()
	p := DefaultParams(ds.Bounds)
	p.Categories = []string{"catA"}

	m := Aggregate(Filter(ds, p), ds.Len())

	assert.Equal(t, 2, m.Count)
	assert.Equal(t, -1, m.Delta)
	assert.Equal(t, 1, m.DistinctCategories)
	assert.Equal(t, 400.0, m.TotalFunding)
	assert.Equal(t, "$400", m.FundingLabel)
	assert.True(t, m.HasAvg)
	assert.Equal(t, 2021.0, m.AvgLaunchYear)
	assert.Equal(t, "2021.0", m.AvgLabel)
}

func TestAggregateEmptyView(t *testing.T) {
	ds := threeProjects()
	p := DefaultParams(ds.Bounds)
	p.YearMin, p.YearMax = 2030, 2035

	m := Aggregate(Filter(ds, p), ds.Len())

	assert.Equal(t, 0, m.Count)
	assert.Equal(t, -3, m.Delta)
	assert.Equal(t, 0, m.DistinctCategories)
	assert.Equal(t, 0.0, m.TotalFunding)
	assert.Equal(t, "$0", m.FundingLabel)
	assert.False(t, m.HasAvg)
	assert.Equal(t, "no data", m.AvgLabel)
}

func TestAggregateDeltaZeroWhenUnfiltered(t *testing.T) {
	ds := dataset.Generate()
	m := Aggregate(Filter(ds, DefaultParams(ds.Bounds)), ds.Len())
	assert.Equal(t, 0, m.Delta)
	assert.Equal(t, ds.Len(), m.Count)
}

func TestAggregateDeltaAgainstUnfilteredTotal(t *testing.T) {
	ds := dataset.Generate()
	p := DefaultParams(ds.Bounds)
	p.Categories = []string{"Game Dev"}
	v := Filter(ds, p)

	m := Aggregate(v, ds.Len())
	assert.Equal(t, v.Len()-ds.Len(), m.Delta)
	assert.LessOrEqual(t, m.Delta, 0)
}

func TestDistinctCategoriesNeverGrow(t *testing.T) {
	ds := dataset.Generate()
	total := Aggregate(NewView(ds), ds.Len()).DistinctCategories

	p := DefaultParams(ds.Bounds)
	p.YearMin, p.YearMax = 2020, 2021
	filtered := Aggregate(Filter(ds, p), ds.Len()).DistinctCategories

	assert.LessOrEqual(t, filtered, total)
}

func TestAvgLaunchYearRounding(t *testing.T) {
	ds := dataset.New([]dataset.Record{
		{Category: "c", LaunchYear: 2020, TeamSize: 1},
		{Category: "c", LaunchYear: 2021, TeamSize: 1},
		{Category: "c", LaunchYear: 2021, TeamSize: 1},
	}, "file")

	m := Aggregate(NewView(ds), ds.Len())
	assert.Equal(t, 2020.7, m.AvgLaunchYear) // 2020.666... rounds to one decimal
	assert.Equal(t, "2020.7", m.AvgLabel)
}

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "$0"},
		{999, "$999"},
		{1000, "$1,000"},
		{1234567.8, "$1,234,568"},
		{1000000, "$1,000,000"},
		{-5000, "-$5,000"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatCurrency(tt.in), "input %v", tt.in)
	}
}
