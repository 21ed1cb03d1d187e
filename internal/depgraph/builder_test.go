package depgraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xkilldash9x/reqlens-cli/api/schemas"
)

func goal(id, name string, fields map[string]any) schemas.Record {
	return schemas.Record{ID: id, Name: name, Fields: fields}
}

func TestBuildCreatesTypedNodesAndEdges(t *testing.T) {
	b := NewBuilder(nil)

	records := map[schemas.RecordType][]schemas.Record{
		schemas.RecordTypeBusinessGoal: {
			goal("goal-1", "Grow revenue", nil),
		},
		schemas.RecordTypeUseCase: {
			{ID: "uc-1", Name: "Checkout", Fields: map[string]any{
				"businessGoals": []any{"goal-1"},
				"primaryActor":  "actor-customer",
			}},
		},
		schemas.RecordTypeActor: {
			{ID: "actor-customer", Name: "Customer"},
		},
	}

	g, broken := b.Build(records)

	assert.Empty(t, broken)
	assert.Equal(t, 3, g.NodeCount())
	assert.Equal(t, 2, g.EdgeCount())

	n, ok := g.Node("uc-1")
	require.True(t, ok)
	assert.Equal(t, schemas.RecordTypeUseCase, n.Type)

	var types []schemas.EdgeType
	for _, e := range g.Edges() {
		types = append(types, e.Type)
	}
	assert.Contains(t, types, schemas.EdgeTypeImplements)
	assert.Contains(t, types, schemas.EdgeTypeUses)
}

func TestBuildReportsBrokenReferences(t *testing.T) {
	b := NewBuilder(nil)

	records := map[schemas.RecordType][]schemas.Record{
		schemas.RecordTypeUseCase: {
			{ID: "uc-1", Name: "Checkout", Fields: map[string]any{
				"businessGoals": []any{"goal-missing"},
			}},
		},
	}

	g, broken := b.Build(records)

	// The dangling target never becomes a placeholder node.
	_, exists := g.Node("goal-missing")
	assert.False(t, exists)
	assert.Equal(t, 1, g.NodeCount())
	assert.Zero(t, g.EdgeCount())

	require.Len(t, broken, 1)
	assert.Equal(t, "uc-1", broken[0].FromID)
	assert.Equal(t, "goal-missing", broken[0].TargetID)
	assert.Equal(t, "businessGoals", broken[0].Field)
	assert.Equal(t, schemas.EdgeTypeImplements, broken[0].EdgeType)
}

func TestBuildUnknownTypeStillGetsNode(t *testing.T) {
	b := NewBuilder(nil)

	records := map[schemas.RecordType][]schemas.Record{
		schemas.RecordType("glossary"): {
			{ID: "g-1", Name: "Terms"},
		},
	}

	g, broken := b.Build(records)
	assert.Empty(t, broken)
	n, ok := g.Node("g-1")
	require.True(t, ok)
	assert.Equal(t, schemas.RecordType("glossary"), n.Type)
}

func TestBuildUseCaseSteps(t *testing.T) {
	b := NewBuilder(nil)

	records := map[schemas.RecordType][]schemas.Record{
		schemas.RecordTypeActor: {
			{ID: "actor-a", Name: "Clerk"},
			{ID: "actor-b", Name: "Manager"},
			{ID: "actor-c", Name: "Auditor"},
		},
		schemas.RecordTypeUseCase: {
			{ID: "uc-1", Name: "Approve order", Fields: map[string]any{
				"steps": []any{
					map[string]any{"action": "submit", "actor": "actor-a"},
					map[string]any{"action": "approve", "actor": "actor-b"},
				},
			}},
		},
	}

	g, broken := b.Build(records)
	assert.Empty(t, broken)

	// One node per step, contained by the use case.
	step1, ok := g.Node("uc-1:step-1")
	require.True(t, ok)
	assert.Equal(t, schemas.RecordTypeUseCaseStep, step1.Type)
	assert.Equal(t, "submit", step1.Label)
	assert.Contains(t, g.OutNeighbors("uc-1"), "uc-1:step-1")
	assert.Contains(t, g.OutNeighbors("uc-1"), "uc-1:step-2")

	// Actors referenced by steps gain an incoming triggers edge; the actor
	// no step mentions stays isolated.
	assert.Contains(t, g.InNeighbors("actor-a"), "uc-1:step-1")
	assert.Contains(t, g.InNeighbors("actor-b"), "uc-1:step-2")
	assert.Empty(t, g.InNeighbors("actor-c"))
	assert.Empty(t, g.OutNeighbors("actor-c"))
}

func TestBuildStepReferenceCanBreak(t *testing.T) {
	b := NewBuilder(nil)

	records := map[schemas.RecordType][]schemas.Record{
		schemas.RecordTypeUseCase: {
			{ID: "uc-1", Name: "Approve order", Fields: map[string]any{
				"steps": []any{
					map[string]any{"action": "submit", "actor": "actor-ghost"},
				},
			}},
		},
	}

	_, broken := b.Build(records)
	require.Len(t, broken, 1)
	assert.Equal(t, "uc-1:step-1", broken[0].FromID)
	assert.Equal(t, "actor-ghost", broken[0].TargetID)
	assert.Equal(t, schemas.EdgeTypeTriggers, broken[0].EdgeType)
}

func TestBuildSkipsRecordsWithoutID(t *testing.T) {
	b := NewBuilder(nil)

	records := map[schemas.RecordType][]schemas.Record{
		schemas.RecordTypeBusinessGoal: {
			{Name: "anonymous"},
			goal("goal-1", "Grow revenue", nil),
		},
	}

	g, _ := b.Build(records)
	assert.Equal(t, 1, g.NodeCount())
}

func TestBuildDeterministicAcrossRuns(t *testing.T) {
	b := NewBuilder(nil)

	records := map[schemas.RecordType][]schemas.Record{
		schemas.RecordTypeBusinessGoal: {
			goal("goal-1", "A", map[string]any{"dependsOn": []any{"goal-2"}}),
			goal("goal-2", "B", nil),
		},
		schemas.RecordTypeScreenFlow: {
			{ID: "flow-1", Name: "Onboarding", Fields: map[string]any{"screens": []any{"screen-1"}}},
		},
		schemas.RecordTypeScreen: {
			{ID: "screen-1", Name: "Welcome"},
		},
	}

	first, _ := b.Build(records)
	second, _ := b.Build(records)
	assert.Equal(t, first.Edges(), second.Edges())
	assert.Equal(t, first.Nodes(), second.Nodes())
}
