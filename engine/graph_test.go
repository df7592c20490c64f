package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"project-explorer/dataset"
)

func TestBuildNeighborGraphKnownLayout(t *testing.T) {
	// Three collinear points: p0 and p1 are 1 apart, p2 is far away.
	ds := dataset.New([]dataset.Record{
		{Title: "A", Category: "c1", X: 0, TeamSize: 1, LaunchYear: 2020},
		{Title: "B", Category: "c1", X: 1, TeamSize: 1, LaunchYear: 2020},
		{Title: "C", Category: "c2", X: 100, TeamSize: 1, LaunchYear: 2020},
	}, "file")

	net, err := BuildNeighborGraph(NewView(ds), 1)
	require.NoError(t, err)

	require.Len(t, net.Nodes, 3)
	assert.Equal(t, Node{ID: "p0", Label: "A", Group: "c1"}, net.Nodes[0])

	// p0<->p1 are mutual nearest neighbors (one undirected edge), and
	// p2's nearest is p1.
	require.Len(t, net.Links, 2)
	assert.Equal(t, "p0", net.Links[0].Source)
	assert.Equal(t, "p1", net.Links[0].Target)
	assert.InDelta(t, 1.0, net.Links[0].Distance, 1e-9)
	assert.InDelta(t, 99.0, net.Links[1].Distance, 1e-9)
}

func TestBuildNeighborGraphNoSelfLoops(t *testing.T) {
	ds := dataset.Generate()
	net, err := BuildNeighborGraph(NewView(ds), 3)
	require.NoError(t, err)

	require.Len(t, net.Nodes, ds.Len())
	seen := make(map[string]bool)
	for _, l := range net.Links {
		assert.NotEqual(t, l.Source, l.Target)
		key := l.Source + "-" + l.Target
		assert.False(t, seen[key], "duplicate link %s", key)
		seen[key] = true
	}
}

func TestBuildNeighborGraphEmptyAndSingle(t *testing.T) {
	empty, err := BuildNeighborGraph(NewView(dataset.New(nil, "file")), 3)
	require.NoError(t, err)
	assert.Empty(t, empty.Nodes)
	assert.Empty(t, empty.Links)

	single, err := BuildNeighborGraph(NewView(dataset.New([]dataset.Record{
		{Title: "Only", Category: "c", TeamSize: 1, LaunchYear: 2020},
	}, "file")), 3)
	require.NoError(t, err)
	assert.Len(t, single.Nodes, 1)
	assert.Empty(t, single.Links)
}
