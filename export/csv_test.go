package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"project-explorer/dataset"
	"project-explorer/engine"
)

func TestCSVRoundTrip(t *testing.T) {
	ds := dataset.Generate()
	p := engine.DefaultParams(ds.Bounds)
	p.Categories = []string{"AI/ML", "Blockchain"}
	view := engine.Filter(ds, p)

	data, err := CSV(view)
	require.NoError(t, err)

	// Parsing the exported file yields the exact records of the view.
	path := filepath.Join(t.TempDir(), "export.csv")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	reloaded, err := dataset.Load(path)
	require.NoError(t, err)

	require.Equal(t, view.Records(), reloaded.Records)
}

func TestCSVHeaderAndOrder(t *testing.T) {
	ds := dataset.New([]dataset.Record{
		{Title: "A", Category: "c", Description: "d", X: 1, Y: 2, Z: 3,
			LaunchYear: 2020, TeamSize: 4, Funding: 5.5, SuccessRate: 0.25},
	}, "file")
	data, err := CSV(engine.NewView(ds))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, strings.Join(dataset.Columns, ","), lines[0])
	assert.Equal(t, "A,c,d,1,2,3,2020,4,5.5,0.25", lines[1])
}

func TestCSVEmptyViewHeaderOnly(t *testing.T) {
	data, err := CSV(engine.NewView(dataset.New(nil, "file")))
	require.NoError(t, err)
	assert.Equal(t, strings.Join(dataset.Columns, ",")+"\n", string(data))
}

func TestFilenameTimestamped(t *testing.T) {
	now := time.Date(2026, 8, 29, 15, 30, 4, 0, time.UTC)
	assert.Equal(t, "project_data_20260829_153004.csv", Filename(now))
}
