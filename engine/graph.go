package engine

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/dominikbraun/graph"
)

// Node is one project in the neighbor graph.
type Node struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Group string `json:"group"`
}

// Link connects two projects that are spatial neighbors; Distance is the
// Euclidean distance between them in (x, y, z).
type Link struct {
	Source   string  `json:"source"`
	Target   string  `json:"target"`
	Distance float64 `json:"distance"`
}

// Network is the nodes/links payload for the force-graph panel.
type Network struct {
	Nodes []Node `json:"nodes"`
	Links []Link `json:"links"`
}

// DefaultNeighborK is the default neighbor count per project.
const DefaultNeighborK = 3

// BuildNeighborGraph connects every project in the view to its k nearest
// neighbors in coordinate space. The graph is undirected, so mutual
// nearest-neighbor edges are stored once.
func BuildNeighborGraph(v View, k int) (Network, error) {
	if k <= 0 {
		k = DefaultNeighborK
	}

	net := Network{Nodes: make([]Node, 0, v.Len()), Links: []Link{}}
	g := graph.New(graph.StringHash)

	for i := 0; i < v.Len(); i++ {
		r := v.At(i)
		id := nodeID(i)
		net.Nodes = append(net.Nodes, Node{ID: id, Label: r.Title, Group: r.Category})
		if err := g.AddVertex(id); err != nil {
			return Network{}, fmt.Errorf("add vertex %s: %w", id, err)
		}
	}

	for i := 0; i < v.Len(); i++ {
		for _, n := range nearest(v, i, k) {
			err := g.AddEdge(nodeID(i), nodeID(n.index), graph.EdgeData(n.dist))
			if err != nil && !errors.Is(err, graph.ErrEdgeAlreadyExists) {
				return Network{}, fmt.Errorf("add edge: %w", err)
			}
		}
	}

	edges, err := g.Edges()
	if err != nil {
		return Network{}, fmt.Errorf("list edges: %w", err)
	}
	for _, e := range edges {
		dist, _ := e.Properties.Data.(float64)
		src, dst := e.Source, e.Target
		if src > dst {
			src, dst = dst, src
		}
		net.Links = append(net.Links, Link{Source: src, Target: dst, Distance: dist})
	}
	sort.Slice(net.Links, func(i, j int) bool {
		if net.Links[i].Source != net.Links[j].Source {
			return net.Links[i].Source < net.Links[j].Source
		}
		return net.Links[i].Target < net.Links[j].Target
	})
	return net, nil
}

func nodeID(i int) string { return fmt.Sprintf("p%d", i) }

type neighbor struct {
	index int
	dist  float64
}

func nearest(v View, from, k int) []neighbor {
	a := v.At(from)
	candidates := make([]neighbor, 0, v.Len()-1)
	for j := 0; j < v.Len(); j++ {
		if j == from {
			continue
		}
		b := v.At(j)
		dx, dy, dz := a.X-b.X, a.Y-b.Y, a.Z-b.Z
		candidates = append(candidates, neighbor{
			index: j,
			dist:  math.Sqrt(dx*dx + dy*dy + dz*dz),
		})
	}
	sort.Slice(candidates, func(i, j int) bool { return candidates[i].dist < candidates[j].dist })
	if len(candidates) > k {
		candidates = candidates[:k]
	}
	return candidates
}
