package dashboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xkilldash9x/reqlens-cli/api/schemas"
)

// fixedDashboard pins the clock and id source so snapshots compare exactly.
func fixedDashboard() *Dashboard {
	d := New(nil)
	d.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }
	d.newID = func() string { return "snap-test" }
	return d
}

// balancedMaturity yields equal dimension completion rates at the given
// level, which maximizes the consistency category.
func balancedMaturity(level schemas.MaturityLevel, rate float64) schemas.ProjectMaturityAssessment {
	dims := make(map[schemas.Dimension]schemas.DimensionMaturity, 5)
	for _, dim := range schemas.AllDimensions() {
		dims[dim] = schemas.DimensionMaturity{Dimension: dim, Level: level, CompletionRate: rate}
	}
	return schemas.ProjectMaturityAssessment{
		ProjectLevel:   level,
		CompletionRate: rate,
		Dimensions:     dims,
	}
}

func TestCreateSnapshotEmbedsInputsAndHealth(t *testing.T) {
	d := fixedDashboard()

	snap := d.CreateSnapshot("webshop", balancedMaturity(schemas.LevelDefined, 0.8),
		schemas.ContextApplicationResult{}, schemas.GraphAnalysisResult{}, schemas.RecommendationSet{})

	assert.Equal(t, "snap-test", snap.ID)
	assert.Equal(t, "webshop", snap.ProjectName)
	assert.Equal(t, time.UTC, snap.TakenAt.Location())
	assert.Equal(t, schemas.LevelDefined, snap.Maturity.ProjectLevel)
	assert.NotZero(t, snap.Health.Overall)
}

func TestHealthScoreBlend(t *testing.T) {
	d := fixedDashboard()

	snap := schemas.Snapshot{Maturity: balancedMaturity(schemas.LevelOptimized, 1.0)}
	health := d.CalculateHealthScore(snap)

	// Perfect maturity, completeness, consistency, and an empty (pathology
	// free) graph blend to 100.
	assert.Equal(t, 100.0, health.Categories[schemas.HealthMaturity])
	assert.Equal(t, 100.0, health.Categories[schemas.HealthCompleteness])
	assert.Equal(t, 100.0, health.Categories[schemas.HealthConsistency])
	assert.Equal(t, 100.0, health.Categories[schemas.HealthArchitecture])
	assert.Equal(t, 100.0, health.Overall)
	assert.Len(t, health.Strengths, 4)
	assert.Empty(t, health.Weaknesses)
}

func TestHealthScoreWeights(t *testing.T) {
	d := fixedDashboard()

	// Initial level (20), zero completeness, balanced (100 consistency),
	// clean graph (100 architecture).
	snap := schemas.Snapshot{Maturity: balancedMaturity(schemas.LevelInitial, 0.0)}
	health := d.CalculateHealthScore(snap)

	want := 0.30*20 + 0.30*0 + 0.20*100 + 0.20*100
	assert.InDelta(t, want, health.Overall, 1e-9)
	assert.Contains(t, health.Weaknesses, schemas.HealthMaturity)
	assert.Contains(t, health.Weaknesses, schemas.HealthCompleteness)
}

func TestConsistencyPenalizesLopsidedDimensions(t *testing.T) {
	d := fixedDashboard()

	lopsided := balancedMaturity(schemas.LevelDefined, 0.0)
	dm := lopsided.Dimensions[schemas.DimensionStructure]
	dm.CompletionRate = 1.0
	lopsided.Dimensions[schemas.DimensionStructure] = dm

	balanced := d.CalculateHealthScore(schemas.Snapshot{Maturity: balancedMaturity(schemas.LevelDefined, 0.5)})
	skewed := d.CalculateHealthScore(schemas.Snapshot{Maturity: lopsided})

	assert.Greater(t, balanced.Categories[schemas.HealthConsistency],
		skewed.Categories[schemas.HealthConsistency])
}

func TestArchitectureScoreDeductions(t *testing.T) {
	d := fixedDashboard()

	graph := schemas.GraphAnalysisResult{
		Stats: schemas.GraphStats{NodeCount: 10},
		CircularDependencies: []schemas.CircularDependency{
			{Severity: schemas.CycleSeverityCritical}, // -25
			{Severity: schemas.CycleSeverityMedium},   // -8
		},
		IsolatedNodes:    []string{"a", "b"},                 // -50 * 2/10 = -10
		BrokenReferences: make([]schemas.BrokenReference, 2), // -6
	}

	health := d.CalculateHealthScore(schemas.Snapshot{
		Maturity: balancedMaturity(schemas.LevelDefined, 0.5),
		Graph:    graph,
	})

	assert.InDelta(t, 100-25-8-10-6, health.Categories[schemas.HealthArchitecture], 1e-9)
}

func TestHealthScoreClamped(t *testing.T) {
	d := fixedDashboard()

	graph := schemas.GraphAnalysisResult{
		Stats: schemas.GraphStats{NodeCount: 2},
		CircularDependencies: []schemas.CircularDependency{
			{Severity: schemas.CycleSeverityCritical},
			{Severity: schemas.CycleSeverityCritical},
			{Severity: schemas.CycleSeverityCritical},
			{Severity: schemas.CycleSeverityCritical},
			{Severity: schemas.CycleSeverityCritical},
		},
	}
	health := d.CalculateHealthScore(schemas.Snapshot{Graph: graph})
	assert.Equal(t, 0.0, health.Categories[schemas.HealthArchitecture])
}

func TestGenerateAlertsRegression(t *testing.T) {
	d := fixedDashboard()

	previous := schemas.Snapshot{Health: schemas.HealthScore{Overall: 90}}
	current := schemas.Snapshot{Health: schemas.HealthScore{
		Overall: 83,
		Categories: map[schemas.HealthCategory]float64{
			schemas.HealthMaturity:     80,
			schemas.HealthCompleteness: 80,
			schemas.HealthConsistency:  80,
			schemas.HealthArchitecture: 80,
		},
	}}

	alerts := d.GenerateAlerts(current, &previous)
	require.Len(t, alerts, 1)
	assert.Equal(t, schemas.AlertSeverityWarning, alerts[0].Severity)
	assert.Equal(t, 83.0, alerts[0].Current)
	assert.Equal(t, 90.0, alerts[0].Previous)

	previous.Health.Overall = 99
	alerts = d.GenerateAlerts(current, &previous)
	require.Len(t, alerts, 1)
	assert.Equal(t, schemas.AlertSeverityCritical, alerts[0].Severity)
}

func TestGenerateAlertsNewSevereCycles(t *testing.T) {
	d := fixedDashboard()

	healthy := schemas.HealthScore{
		Overall: 80,
		Categories: map[schemas.HealthCategory]float64{
			schemas.HealthMaturity:     80,
			schemas.HealthCompleteness: 80,
			schemas.HealthConsistency:  80,
			schemas.HealthArchitecture: 80,
		},
	}
	previous := schemas.Snapshot{Health: healthy}
	current := schemas.Snapshot{
		Health: healthy,
		Graph: schemas.GraphAnalysisResult{
			CircularDependencies: []schemas.CircularDependency{
				{Severity: schemas.CycleSeverityCritical},
				{Severity: schemas.CycleSeverityLow},
			},
		},
	}

	alerts := d.GenerateAlerts(current, &previous)
	require.Len(t, alerts, 1)
	assert.Equal(t, schemas.AlertSeverityCritical, alerts[0].Severity)
	assert.Contains(t, alerts[0].Message, "circular")
}

func TestGenerateAlertsLowCategoryAndBrokenRefs(t *testing.T) {
	d := fixedDashboard()

	current := schemas.Snapshot{
		Health: schemas.HealthScore{
			Overall: 55,
			Categories: map[schemas.HealthCategory]float64{
				schemas.HealthMaturity:     35,
				schemas.HealthCompleteness: 70,
				schemas.HealthConsistency:  70,
				schemas.HealthArchitecture: 70,
			},
		},
		Graph: schemas.GraphAnalysisResult{
			BrokenReferences: []schemas.BrokenReference{{FromID: "uc-1", TargetID: "x"}},
		},
	}

	alerts := d.GenerateAlerts(current, nil)
	require.Len(t, alerts, 2)
	assert.Equal(t, schemas.AlertSeverityWarning, alerts[0].Severity)
	assert.Equal(t, schemas.HealthMaturity, alerts[0].Category)
	assert.Equal(t, schemas.AlertSeverityInfo, alerts[1].Severity)
}

func TestGenerateAlertsQuietWhenHealthy(t *testing.T) {
	d := fixedDashboard()

	healthy := schemas.Snapshot{Health: schemas.HealthScore{
		Overall: 90,
		Categories: map[schemas.HealthCategory]float64{
			schemas.HealthMaturity:     90,
			schemas.HealthCompleteness: 90,
			schemas.HealthConsistency:  90,
			schemas.HealthArchitecture: 90,
		},
	}}

	assert.Empty(t, d.GenerateAlerts(healthy, &healthy))
}
