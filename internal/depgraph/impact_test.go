package depgraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xkilldash9x/reqlens-cli/api/schemas"
)

func TestImpactOfUnknownNode(t *testing.T) {
	g, _ := NewBuilder(nil).Build(chainRecords(map[string][]string{"goal-a": nil}))
	a := NewAnalyzer(nil)

	_, err := a.ImpactOf(g, "goal-nope", a.Analyze(g, nil))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "goal-nope")
}

func TestImpactOfLeveledBlastRadius(t *testing.T) {
	// goal-a and goal-b reference goal-target directly; goal-c references
	// goal-a, so it is impacted indirectly at depth two.
	deps := map[string][]string{
		"goal-a": {"goal-target"},
		"goal-b": {"goal-target"},
		"goal-c": {"goal-a"},
	}
	g, _ := NewBuilder(nil).Build(chainRecords(deps))
	a := NewAnalyzer(nil)
	analysis := a.Analyze(g, nil)

	impact, err := a.ImpactOf(g, "goal-target", analysis)
	require.NoError(t, err)

	assert.Equal(t, []string{"goal-a", "goal-b"}, impact.Direct)
	assert.Equal(t, []string{"goal-c"}, impact.Indirect)
	require.Len(t, impact.Levels, 2)
	assert.Equal(t, []string{"goal-a", "goal-b"}, impact.Levels[0])
	assert.Equal(t, []string{"goal-c"}, impact.Levels[1])
	assert.Equal(t, 3, impact.TotalImpacted)
	assert.Equal(t, schemas.ImpactEffortSmall, impact.Effort)
}

func TestImpactOfLeafNode(t *testing.T) {
	// Nothing references goal-c, so changing it ripples nowhere.
	deps := map[string][]string{
		"goal-c": {"goal-a"},
	}
	g, _ := NewBuilder(nil).Build(chainRecords(deps))
	a := NewAnalyzer(nil)

	impact, err := a.ImpactOf(g, "goal-c", a.Analyze(g, nil))
	require.NoError(t, err)
	assert.Empty(t, impact.Direct)
	assert.Empty(t, impact.Indirect)
	assert.Zero(t, impact.TotalImpacted)
	assert.Equal(t, schemas.ImpactEffortSmall, impact.Effort)
}

func TestImpactEffortBuckets(t *testing.T) {
	assert.Equal(t, schemas.ImpactEffortSmall, impactEffort(0))
	assert.Equal(t, schemas.ImpactEffortSmall, impactEffort(3))
	assert.Equal(t, schemas.ImpactEffortMedium, impactEffort(4))
	assert.Equal(t, schemas.ImpactEffortMedium, impactEffort(8))
	assert.Equal(t, schemas.ImpactEffortLarge, impactEffort(9))
	assert.Equal(t, schemas.ImpactEffortLarge, impactEffort(20))
	assert.Equal(t, schemas.ImpactEffortXLarge, impactEffort(21))
}

func TestImpactOfFlagsCriticalNodes(t *testing.T) {
	deps := map[string][]string{
		"goal-a": {"goal-target"},
	}
	g, _ := NewBuilder(nil).Build(chainRecords(deps))
	a := NewAnalyzer(nil)

	// Hand the impact pass an analysis that grades goal-a critical.
	analysis := a.Analyze(g, nil)
	imp := analysis.Importance["goal-a"]
	imp.Bucket = schemas.ImportanceCritical
	analysis.Importance["goal-a"] = imp

	impact, err := a.ImpactOf(g, "goal-target", analysis)
	require.NoError(t, err)
	assert.Equal(t, []string{"goal-a"}, impact.CriticalNodes)
}
