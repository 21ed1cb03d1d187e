// File: internal/depgraph/impact.go
package depgraph

import (
	"fmt"
	"sort"

	"github.com/xkilldash9x/reqlens-cli/api/schemas"
)

// Change-impact effort thresholds, by size of the total impacted set.
const (
	impactSmallMax  = 3
	impactMediumMax = 8
	impactLargeMax  = 20
)

// ImpactOf computes the change-impact set of one node: every node that
// (transitively) references it, leveled by reverse-BFS depth. Direct impact
// is depth one; indirect is everything deeper. Critical nodes are the
// impacted nodes the importance analysis graded critical or high.
//
// An unknown node id is a caller contract violation and returns an error;
// this is the API boundary, not mid-computation degradation.
func (a *Analyzer) ImpactOf(g *Graph, nodeID string, analysis schemas.GraphAnalysisResult) (schemas.ChangeImpactAnalysis, error) {
	start, ok := g.index[nodeID]
	if !ok {
		return schemas.ChangeImpactAnalysis{}, fmt.Errorf("impact analysis: node %q not in graph", nodeID)
	}

	impact := schemas.ChangeImpactAnalysis{NodeID: nodeID}

	dist := make([]int, len(g.nodes))
	for i := range dist {
		dist[i] = -1
	}
	dist[start] = 0
	queue := []int{start}
	var levels [][]int
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, ei := range g.in[u] {
			v := g.edges[ei].from
			if dist[v] >= 0 {
				continue
			}
			dist[v] = dist[u] + 1
			queue = append(queue, v)
			for len(levels) < dist[v] {
				levels = append(levels, nil)
			}
			levels[dist[v]-1] = append(levels[dist[v]-1], v)
		}
	}

	for depth, nodes := range levels {
		// Within a level, order by id for reproducible output.
		ids := make([]string, 0, len(nodes))
		for _, v := range nodes {
			ids = append(ids, g.nodes[v].ID)
		}
		sort.Strings(ids)
		impact.Levels = append(impact.Levels, ids)
		if depth == 0 {
			impact.Direct = ids
		} else {
			impact.Indirect = append(impact.Indirect, ids...)
		}
		for _, id := range ids {
			if imp, ok := analysis.Importance[id]; ok {
				if imp.Bucket == schemas.ImportanceCritical || imp.Bucket == schemas.ImportanceHigh {
					impact.CriticalNodes = append(impact.CriticalNodes, id)
				}
			}
		}
	}

	impact.TotalImpacted = len(impact.Direct) + len(impact.Indirect)
	impact.Effort = impactEffort(impact.TotalImpacted)
	return impact, nil
}

func impactEffort(total int) schemas.ImpactEffort {
	switch {
	case total <= impactSmallMax:
		return schemas.ImpactEffortSmall
	case total <= impactMediumMax:
		return schemas.ImpactEffortMedium
	case total <= impactLargeMax:
		return schemas.ImpactEffortLarge
	default:
		return schemas.ImpactEffortXLarge
	}
}
