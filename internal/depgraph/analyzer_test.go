package depgraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xkilldash9x/reqlens-cli/api/schemas"
)

// chainRecords builds business goals whose dependsOn fields encode the given
// adjacency.
func chainRecords(deps map[string][]string) map[schemas.RecordType][]schemas.Record {
	var goals []schemas.Record
	for _, id := range sortedIDs(deps) {
		fields := map[string]any{}
		if targets := deps[id]; len(targets) > 0 {
			list := make([]any, 0, len(targets))
			for _, t := range targets {
				list = append(list, t)
			}
			fields["dependsOn"] = list
		}
		goals = append(goals, schemas.Record{ID: id, Name: id, Fields: fields})
	}
	return map[schemas.RecordType][]schemas.Record{
		schemas.RecordTypeBusinessGoal: goals,
	}
}

func sortedIDs(deps map[string][]string) []string {
	ids := make(map[string]bool)
	for id, targets := range deps {
		ids[id] = true
		for _, t := range targets {
			ids[t] = true
		}
	}
	out := make([]string, 0, len(ids))
	for id := range ids {
		out = append(out, id)
	}
	// Insertion-sort keeps the helper dependency-free.
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j] < out[j-1]; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

func analyzeDeps(t *testing.T, deps map[string][]string) schemas.GraphAnalysisResult {
	t.Helper()
	g, broken := NewBuilder(nil).Build(chainRecords(deps))
	require.Empty(t, broken)
	return NewAnalyzer(nil).Analyze(g, broken)
}

func TestAnalyzeEmptyGraph(t *testing.T) {
	g := newGraph()
	res := NewAnalyzer(nil).Analyze(g, nil)

	assert.Zero(t, res.Stats.NodeCount)
	assert.Empty(t, res.CircularDependencies)
	assert.Empty(t, res.Importance)
	assert.Empty(t, res.IsolatedNodes)
	assert.True(t, res.RankConverged)
}

func TestAnalyzeFindsSingleTriangleCycle(t *testing.T) {
	res := analyzeDeps(t, map[string][]string{
		"goal-a": {"goal-b"},
		"goal-b": {"goal-c"},
		"goal-c": {"goal-a"},
	})

	require.Len(t, res.CircularDependencies, 1, "a triangle is one cycle, not three rotations")
	cycle := res.CircularDependencies[0]
	assert.Equal(t, 3, cycle.Length)
	assert.Equal(t, "goal-a", cycle.NodeIDs[0], "cycles start at their smallest member")
	assert.Equal(t, []string{"goal-a", "goal-b", "goal-c"}, cycle.NodeIDs)
	assert.Equal(t, schemas.CycleSeverityHigh, cycle.Severity)
	// A cyclic graph has no topological order.
	assert.Empty(t, res.TopologicalOrder)
}

func TestAnalyzeCycleSeverityByLength(t *testing.T) {
	res := analyzeDeps(t, map[string][]string{
		"goal-a": {"goal-b"},
		"goal-b": {"goal-a"},
	})
	require.Len(t, res.CircularDependencies, 1)
	assert.Equal(t, schemas.CycleSeverityCritical, res.CircularDependencies[0].Severity)

	res = analyzeDeps(t, map[string][]string{
		"goal-a": {"goal-b"},
		"goal-b": {"goal-c"},
		"goal-c": {"goal-d"},
		"goal-d": {"goal-a"},
	})
	require.Len(t, res.CircularDependencies, 1)
	assert.Equal(t, schemas.CycleSeverityMedium, res.CircularDependencies[0].Severity)
}

func TestAnalyzeTopologicalOrderRespectsEdges(t *testing.T) {
	res := analyzeDeps(t, map[string][]string{
		"goal-a": {"goal-b"},
		"goal-b": {"goal-c"},
		"goal-d": {"goal-c"},
	})

	require.Len(t, res.TopologicalOrder, 4)
	pos := make(map[string]int, 4)
	for i, id := range res.TopologicalOrder {
		pos[id] = i
	}
	assert.Less(t, pos["goal-a"], pos["goal-b"])
	assert.Less(t, pos["goal-b"], pos["goal-c"])
	assert.Less(t, pos["goal-d"], pos["goal-c"])
}

func TestAnalyzeIsolatedNodes(t *testing.T) {
	res := analyzeDeps(t, map[string][]string{
		"goal-a": {"goal-b"},
		"goal-x": nil,
	})

	assert.Equal(t, []string{"goal-x"}, res.IsolatedNodes)
}

func TestAnalyzeImportanceFavorsReferencedNodes(t *testing.T) {
	// Everything points at goal-hub.
	res := analyzeDeps(t, map[string][]string{
		"goal-a": {"goal-hub"},
		"goal-b": {"goal-hub"},
		"goal-c": {"goal-hub"},
		"goal-d": {"goal-hub"},
	})

	assert.True(t, res.RankConverged)
	hub := res.Importance["goal-hub"]
	assert.Equal(t, 4, hub.InDegree)
	for id, imp := range res.Importance {
		if id == "goal-hub" {
			continue
		}
		assert.Greater(t, hub.RankScore, imp.RankScore, "hub must outrank %s", id)
	}
	assert.NotEqual(t, schemas.ImportanceLow, hub.Bucket)
}

func TestAnalyzeStats(t *testing.T) {
	res := analyzeDeps(t, map[string][]string{
		"goal-a": {"goal-b", "goal-c"},
	})

	assert.Equal(t, 3, res.Stats.NodeCount)
	assert.Equal(t, 2, res.Stats.EdgeCount)
	assert.Equal(t, 3, res.Stats.NodesByType[schemas.RecordTypeBusinessGoal])
	assert.Equal(t, 2, res.Stats.EdgesByType[schemas.EdgeTypeDependsOn])
	assert.InDelta(t, 2.0/3.0, res.Stats.AverageDegree, 1e-9)
}

func TestAnalyzeCarriesBrokenReferences(t *testing.T) {
	g, broken := NewBuilder(nil).Build(map[schemas.RecordType][]schemas.Record{
		schemas.RecordTypeBusinessGoal: {
			{ID: "goal-a", Name: "A", Fields: map[string]any{"dependsOn": []any{"goal-void"}}},
		},
	})
	require.Len(t, broken, 1)

	res := NewAnalyzer(nil).Analyze(g, broken)
	assert.Equal(t, broken, res.BrokenReferences)
}
