// File: internal/depgraph/analyzer.go
package depgraph

import (
	"math"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/xkilldash9x/reqlens-cli/api/schemas"
)

// Parameters of the iterative importance ranking. The iteration always
// terminates: either the L1 delta drops under the tolerance or the cap is
// hit, in which case the last computed scores are kept.
const (
	rankDamping    = 0.85
	rankTolerance  = 1e-6
	rankIterations = 100
)

// Analyzer computes the structural analysis of a dependency graph. It is
// stateless apart from its logger.
type Analyzer struct {
	log *zap.Logger
}

// NewAnalyzer creates an Analyzer.
func NewAnalyzer(logger *zap.Logger) *Analyzer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Analyzer{log: logger.Named("graphanalyzer")}
}

// Analyze runs the full analysis pass: statistics, cycle detection,
// importance ranking, isolation, and (when the graph is acyclic) a
// topological order. A zero-node or zero-edge graph yields zeroed statistics
// rather than an error. The supplied broken references are carried through
// into the result so renderers and the recommendation engine see them.
func (a *Analyzer) Analyze(g *Graph, broken []schemas.BrokenReference) schemas.GraphAnalysisResult {
	res := schemas.GraphAnalysisResult{
		Stats:            a.stats(g),
		BrokenReferences: broken,
		Importance:       make(map[string]schemas.NodeImportance),
		RankConverged:    true,
	}
	if g.NodeCount() == 0 {
		return res
	}

	res.CircularDependencies = a.findCycles(g)

	ranks, converged := a.rankScores(g)
	res.RankConverged = converged
	centrality := a.betweenness(g)
	buckets := bucketize(ranks)
	for i, n := range g.nodes {
		res.Importance[n.ID] = schemas.NodeImportance{
			NodeID:     n.ID,
			InDegree:   len(g.in[i]),
			OutDegree:  len(g.out[i]),
			RankScore:  ranks[i],
			Centrality: centrality[i],
			Bucket:     buckets[i],
		}
	}

	for i, n := range g.nodes {
		if len(g.in[i]) == 0 && len(g.out[i]) == 0 {
			res.IsolatedNodes = append(res.IsolatedNodes, n.ID)
		}
	}

	if len(res.CircularDependencies) == 0 {
		res.TopologicalOrder = a.topologicalOrder(g)
	}

	a.log.Debug("graph analysis complete",
		zap.Int("cycles", len(res.CircularDependencies)),
		zap.Int("isolated", len(res.IsolatedNodes)),
		zap.Bool("rank_converged", converged))
	return res
}

func (a *Analyzer) stats(g *Graph) schemas.GraphStats {
	stats := schemas.GraphStats{
		NodeCount:   g.NodeCount(),
		EdgeCount:   g.EdgeCount(),
		NodesByType: make(map[schemas.RecordType]int),
		EdgesByType: make(map[schemas.EdgeType]int),
	}
	for _, n := range g.nodes {
		stats.NodesByType[n.Type]++
	}
	for _, e := range g.edges {
		stats.EdgesByType[e.typ]++
	}
	if stats.NodeCount > 0 {
		stats.AverageDegree = float64(stats.EdgeCount) / float64(stats.NodeCount)
	}
	return stats
}

// findCycles enumerates minimal cycles by depth-first search with an
// explicit recursion stack: every back edge to a node currently on the stack
// yields the stack slice from that node to the top. The search starts from
// every unvisited node, and equal cycles (same members, same rotation) are
// reported once, canonicalized to start at their smallest member id.
func (a *Analyzer) findCycles(g *Graph) []schemas.CircularDependency {
	const (
		white = 0 // unvisited
		grey  = 1 // on the recursion stack
		black = 2 // fully explored
	)
	color := make([]int, len(g.nodes))
	stack := make([]int, 0, len(g.nodes))
	onStackPos := make(map[int]int) // node index -> position in stack

	var cycles []schemas.CircularDependency
	seen := make(map[string]bool)

	var visit func(int)
	visit = func(u int) {
		color[u] = grey
		onStackPos[u] = len(stack)
		stack = append(stack, u)

		for _, ei := range g.out[u] {
			v := g.edges[ei].to
			switch color[v] {
			case white:
				visit(v)
			case grey:
				cycle := append([]int(nil), stack[onStackPos[v]:]...)
				cd := a.canonicalCycle(g, cycle)
				key := strings.Join(cd.NodeIDs, "\x00")
				if !seen[key] {
					seen[key] = true
					cycles = append(cycles, cd)
				}
			}
		}

		stack = stack[:len(stack)-1]
		delete(onStackPos, u)
		color[u] = black
	}

	for u := range g.nodes {
		if color[u] == white {
			visit(u)
		}
	}

	sort.SliceStable(cycles, func(i, j int) bool {
		if cycles[i].Length != cycles[j].Length {
			return cycles[i].Length < cycles[j].Length
		}
		return cycles[i].NodeIDs[0] < cycles[j].NodeIDs[0]
	})
	return cycles
}

// canonicalCycle rotates a cycle to start at its lexicographically smallest
// member and derives its edge types and severity.
func (a *Analyzer) canonicalCycle(g *Graph, cycle []int) schemas.CircularDependency {
	start := 0
	for i := range cycle {
		if g.nodes[cycle[i]].ID < g.nodes[cycle[start]].ID {
			start = i
		}
	}
	ids := make([]string, 0, len(cycle))
	for i := range cycle {
		ids = append(ids, g.nodes[cycle[(start+i)%len(cycle)]].ID)
	}

	types := make([]schemas.EdgeType, 0, len(cycle))
	for i := range cycle {
		from := cycle[(start+i)%len(cycle)]
		to := cycle[(start+i+1)%len(cycle)]
		types = append(types, a.edgeTypeBetween(g, from, to))
	}

	return schemas.CircularDependency{
		NodeIDs:   ids,
		Length:    len(ids),
		EdgeTypes: types,
		Severity:  cycleSeverity(len(ids)),
	}
}

func (a *Analyzer) edgeTypeBetween(g *Graph, from, to int) schemas.EdgeType {
	for _, ei := range g.out[from] {
		if g.edges[ei].to == to {
			return g.edges[ei].typ
		}
	}
	return schemas.EdgeTypeReferences
}

// cycleSeverity grades by length: tighter cycles are worse.
func cycleSeverity(length int) schemas.CycleSeverity {
	switch {
	case length <= 2:
		return schemas.CycleSeverityCritical
	case length == 3:
		return schemas.CycleSeverityHigh
	case length <= 5:
		return schemas.CycleSeverityMedium
	default:
		return schemas.CycleSeverityLow
	}
}

// rankScores runs the fixed-point score propagation: each node's score is
// redistributed across its out-neighbors proportionally to out-degree, with
// damping; nodes without outgoing edges redistribute uniformly. The same
// normalization applies on every iteration, so the result is deterministic
// for any finite graph.
func (a *Analyzer) rankScores(g *Graph) ([]float64, bool) {
	n := len(g.nodes)
	scores := make([]float64, n)
	next := make([]float64, n)
	for i := range scores {
		scores[i] = 1.0 / float64(n)
	}

	base := (1.0 - rankDamping) / float64(n)
	for iter := 0; iter < rankIterations; iter++ {
		var dangling float64
		for i := range next {
			next[i] = base
		}
		for u := range g.nodes {
			if len(g.out[u]) == 0 {
				dangling += scores[u]
				continue
			}
			share := scores[u] / float64(len(g.out[u]))
			for _, ei := range g.out[u] {
				next[g.edges[ei].to] += rankDamping * share
			}
		}
		if dangling > 0 {
			spread := rankDamping * dangling / float64(n)
			for i := range next {
				next[i] += spread
			}
		}

		var delta float64
		for i := range next {
			delta += math.Abs(next[i] - scores[i])
		}
		scores, next = next, scores
		if delta < rankTolerance {
			return scores, true
		}
	}
	return scores, false
}

// betweenness computes Brandes' betweenness centrality on the unweighted
// digraph. Scores are normalized by the number of possible ordered pairs so
// graphs of different sizes stay comparable.
func (a *Analyzer) betweenness(g *Graph) []float64 {
	n := len(g.nodes)
	centrality := make([]float64, n)
	if n < 3 {
		return centrality
	}

	for s := 0; s < n; s++ {
		// BFS phase: shortest-path counts and predecessor lists from s.
		sigma := make([]float64, n)
		dist := make([]int, n)
		pred := make([][]int, n)
		for i := range dist {
			dist[i] = -1
		}
		sigma[s] = 1
		dist[s] = 0
		queue := []int{s}
		var order []int
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			order = append(order, u)
			for _, ei := range g.out[u] {
				v := g.edges[ei].to
				if dist[v] < 0 {
					dist[v] = dist[u] + 1
					queue = append(queue, v)
				}
				if dist[v] == dist[u]+1 {
					sigma[v] += sigma[u]
					pred[v] = append(pred[v], u)
				}
			}
		}

		// Accumulation phase, in reverse BFS order.
		delta := make([]float64, n)
		for i := len(order) - 1; i >= 0; i-- {
			w := order[i]
			for _, u := range pred[w] {
				delta[u] += sigma[u] / sigma[w] * (1 + delta[w])
			}
			if w != s {
				centrality[w] += delta[w]
			}
		}
	}

	norm := float64((n - 1) * (n - 2))
	for i := range centrality {
		centrality[i] /= norm
	}
	return centrality
}

// bucketize grades rank scores relative to the mean score, so buckets stay
// meaningful across graph sizes.
func bucketize(scores []float64) []schemas.ImportanceBucket {
	buckets := make([]schemas.ImportanceBucket, len(scores))
	if len(scores) == 0 {
		return buckets
	}
	var sum float64
	for _, s := range scores {
		sum += s
	}
	mean := sum / float64(len(scores))
	for i, s := range scores {
		switch {
		case s >= 2.5*mean:
			buckets[i] = schemas.ImportanceCritical
		case s >= 1.5*mean:
			buckets[i] = schemas.ImportanceHigh
		case s >= 0.75*mean:
			buckets[i] = schemas.ImportanceMedium
		default:
			buckets[i] = schemas.ImportanceLow
		}
	}
	return buckets
}

// topologicalOrder is Kahn's algorithm with a deterministic tie-break: among
// ready nodes, the one inserted into the arena first goes next. Only called
// on acyclic graphs, so every node is placed.
func (a *Analyzer) topologicalOrder(g *Graph) []string {
	n := len(g.nodes)
	indeg := make([]int, n)
	for i := range g.nodes {
		indeg[i] = len(g.in[i])
	}

	ready := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if indeg[i] == 0 {
			ready = append(ready, i)
		}
	}

	order := make([]string, 0, n)
	for len(ready) > 0 {
		// Take the smallest arena index; ready stays sorted by construction.
		u := ready[0]
		ready = ready[1:]
		order = append(order, g.nodes[u].ID)
		for _, ei := range g.out[u] {
			v := g.edges[ei].to
			indeg[v]--
			if indeg[v] == 0 {
				pos := sort.SearchInts(ready, v)
				ready = append(ready, 0)
				copy(ready[pos+1:], ready[pos:])
				ready[pos] = v
			}
		}
	}
	return order
}
