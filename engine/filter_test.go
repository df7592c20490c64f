package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"project-explorer/dataset"
)

// threeProjects is the smallest fixture covering two categories, three
// years and two team sizes.
func threeProjects() *dataset.Dataset {
	return dataset.New([]dataset.Record{
		{Title: "One", Category: "catA", Description: "first entry", LaunchYear: 2020, TeamSize: 2, Funding: 100, SuccessRate: 0.4},
		{Title: "Two", Category: "catB", Description: "second entry", LaunchYear: 2021, TeamSize: 5, Funding: 200, SuccessRate: 0.6},
		{Title: "Three", Category: "catA", Description: "third entry", LaunchYear: 2022, TeamSize: 2, Funding: 300, SuccessRate: 0.8},
	}, "file")
}

func titles(v View) []string {
	out := make([]string, 0, v.Len())
	for i := 0; i < v.Len(); i++ {
		out = append(out, v.At(i).Title)
	}
	return out
}

func TestFilterCategory(t *testing.T) {
	ds := threeProjects()
	p := DefaultParams(ds.Bounds)
	p.Categories = []string{"catA"}

	v := Filter(ds, p)
	assert.Equal(t, []string{"One", "Three"}, titles(v))
}

func TestFilterPredicatesAllHold(t *testing.T) {
	ds := dataset.Generate()
	p := Params{
		Categories: []string{"AI/ML", "IoT"},
		YearMin:    2019, YearMax: 2022,
		TeamMin: 3, TeamMax: 10,
	}
	v := Filter(ds, p)

	assert.LessOrEqual(t, v.Len(), ds.Len())
	for i := 0; i < v.Len(); i++ {
		r := v.At(i)
		assert.Contains(t, []string{"AI/ML", "IoT"}, r.Category)
		assert.GreaterOrEqual(t, r.LaunchYear, 2019)
		assert.LessOrEqual(t, r.LaunchYear, 2022)
		assert.GreaterOrEqual(t, r.TeamSize, 3)
		assert.LessOrEqual(t, r.TeamSize, 10)
	}
}

func TestFilterAllSentinelEqualsEveryCategory(t *testing.T) {
	ds := dataset.Generate()

	all := Filter(ds, DefaultParams(ds.Bounds))
	explicit := DefaultParams(ds.Bounds)
	explicit.Categories = ds.Categories()
	each := Filter(ds, explicit)

	assert.Equal(t, titles(all), titles(each))
	assert.Equal(t, ds.Len(), all.Len())
}

func TestFilterAllSentinelAmongOthers(t *testing.T) {
	ds := threeProjects()
	p := DefaultParams(ds.Bounds)
	p.Categories = []string{"catA", CategoryAll}

	// "All" in the selection disables category filtering entirely.
	assert.Equal(t, 3, Filter(ds, p).Len())
}

func TestFilterCategoryCaseSensitive(t *testing.T) {
	ds := threeProjects()
	p := DefaultParams(ds.Bounds)
	p.Categories = []string{"cata"}

	assert.Equal(t, 0, Filter(ds, p).Len())
}

func TestFilterRangesInclusive(t *testing.T) {
	ds := threeProjects()
	p := DefaultParams(ds.Bounds)
	p.YearMin, p.YearMax = 2020, 2021

	assert.Equal(t, []string{"One", "Two"}, titles(Filter(ds, p)))

	p = DefaultParams(ds.Bounds)
	p.TeamMin, p.TeamMax = 5, 5
	assert.Equal(t, []string{"Two"}, titles(Filter(ds, p)))
}

func TestFilterPreservesOrderAndSource(t *testing.T) {
	ds := dataset.Generate()
	before := make([]dataset.Record, len(ds.Records))
	copy(before, ds.Records)

	p := DefaultParams(ds.Bounds)
	p.Categories = []string{"Blockchain"}
	v := Filter(ds, p)

	// Relative order of surviving records matches the dataset.
	last := -1
	for i := 0; i < v.Len(); i++ {
		idx := v.indices[i]
		assert.Greater(t, idx, last)
		last = idx
	}
	// Filtering never mutates the source.
	assert.Equal(t, before, ds.Records)
}

func TestNarrowMatchesTitleOrDescription(t *testing.T) {
	ds := threeProjects()
	base := Filter(ds, DefaultParams(ds.Bounds))

	assert.Equal(t, []string{"One"}, titles(Narrow(base, "one")))
	assert.Equal(t, []string{"Two"}, titles(Narrow(base, "SECOND")))
	assert.Equal(t, 0, Narrow(base, "absent").Len())
}

func TestNarrowEmptyTermIsIdentity(t *testing.T) {
	ds := threeProjects()
	base := Filter(ds, DefaultParams(ds.Bounds))

	assert.Equal(t, titles(base), titles(Narrow(base, "")))
	assert.Equal(t, titles(base), titles(Narrow(base, "   ")))
}

func TestNarrowIdempotent(t *testing.T) {
	ds := dataset.Generate()
	base := Filter(ds, DefaultParams(ds.Bounds))

	once := Narrow(base, "project 1")
	twice := Narrow(once, "project 1")
	require.Equal(t, titles(once), titles(twice))
	assert.Greater(t, once.Len(), 0)
}

func TestNarrowMissingTextDoesNotMatch(t *testing.T) {
	ds := dataset.New([]dataset.Record{
		{Title: "", Category: "catA", Description: "", LaunchYear: 2020, TeamSize: 1},
	}, "file")
	base := Filter(ds, DefaultParams(ds.Bounds))

	assert.Equal(t, 0, Narrow(base, "anything").Len())
}
