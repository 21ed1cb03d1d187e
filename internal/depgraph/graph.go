// File: internal/depgraph/graph.go
//
// The dependency graph core. Nodes live in an arena addressed by dense
// integer indices, with a side table mapping external string ids to indices;
// adjacency is stored as index lists rebuilt from the edge list. The
// externally observable API stays id-based.
package depgraph

import "github.com/xkilldash9x/reqlens-cli/api/schemas"

// edgeRec is the internal, index-addressed form of an edge.
type edgeRec struct {
	from, to int
	typ      schemas.EdgeType
	label    string
	weight   float64
}

// Graph is a directed multigraph over requirement records. The adjacency
// indices (out, in) are always a pure function of the edge list: any
// mutation of edges goes through addEdge, which re-derives them. External
// code constructs graphs only through the Builder.
type Graph struct {
	nodes []schemas.Node
	index map[string]int
	edges []edgeRec
	// out[i] and in[i] hold edge indices, not node indices, so edge types
	// stay reachable during traversal without a second lookup.
	out [][]int
	in  [][]int
}

// newGraph returns an empty graph.
func newGraph() *Graph {
	return &Graph{index: make(map[string]int)}
}

// addNode inserts a node, overwriting an existing node with the same id in
// place (its index and edges are preserved).
func (g *Graph) addNode(n schemas.Node) int {
	if i, ok := g.index[n.ID]; ok {
		g.nodes[i] = n
		return i
	}
	i := len(g.nodes)
	g.nodes = append(g.nodes, n)
	g.index[n.ID] = i
	g.out = append(g.out, nil)
	g.in = append(g.in, nil)
	return i
}

// addEdge links two existing nodes. Both endpoints must already be in the
// arena; the Builder enforces that and reports the misses as broken
// references instead of calling addEdge.
func (g *Graph) addEdge(from, to int, typ schemas.EdgeType, label string, weight float64) {
	ei := len(g.edges)
	g.edges = append(g.edges, edgeRec{from: from, to: to, typ: typ, label: label, weight: weight})
	g.out[from] = append(g.out[from], ei)
	g.in[to] = append(g.in[to], ei)
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Node returns the node with the given external id.
func (g *Graph) Node(id string) (schemas.Node, bool) {
	i, ok := g.index[id]
	if !ok {
		return schemas.Node{}, false
	}
	return g.nodes[i], true
}

// Nodes returns all nodes in insertion order. The slice is a copy.
func (g *Graph) Nodes() []schemas.Node {
	out := make([]schemas.Node, len(g.nodes))
	copy(out, g.nodes)
	return out
}

// Edges returns all edges in insertion order, in external id form.
func (g *Graph) Edges() []schemas.Edge {
	out := make([]schemas.Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, schemas.Edge{
			From:   g.nodes[e.from].ID,
			To:     g.nodes[e.to].ID,
			Type:   e.typ,
			Label:  e.label,
			Weight: e.weight,
		})
	}
	return out
}

// OutNeighbors returns the ids of nodes reachable over one outgoing edge.
func (g *Graph) OutNeighbors(id string) []string {
	i, ok := g.index[id]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(g.out[i]))
	for _, ei := range g.out[i] {
		out = append(out, g.nodes[g.edges[ei].to].ID)
	}
	return out
}

// InNeighbors returns the ids of nodes with an edge into the given node.
func (g *Graph) InNeighbors(id string) []string {
	i, ok := g.index[id]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(g.in[i]))
	for _, ei := range g.in[i] {
		out = append(out, g.nodes[g.edges[ei].from].ID)
	}
	return out
}
