// File: internal/dashboard/dashboard.go
package dashboard

import (
	"math"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/xkilldash9x/reqlens-cli/api/schemas"
)

// Category weights of the blended health score. They sum to 1.
const (
	weightMaturity     = 0.30
	weightCompleteness = 0.30
	weightConsistency  = 0.20
	weightArchitecture = 0.20
)

// Strength/weakness thresholds on the 0-100 category scale.
const (
	strengthThreshold = 80.0
	weaknessThreshold = 60.0
)

// healthCategories is the canonical iteration order.
var healthCategories = []schemas.HealthCategory{
	schemas.HealthMaturity,
	schemas.HealthCompleteness,
	schemas.HealthConsistency,
	schemas.HealthArchitecture,
}

// Dashboard aggregates one assessment run into a snapshot and derives the
// health score and alerts from it.
type Dashboard struct {
	log *zap.Logger
	// now and newID are swappable for tests; snapshots are the only place
	// the engine touches wall-clock time or randomness.
	now   func() time.Time
	newID func() string
}

// New creates a Dashboard.
func New(logger *zap.Logger) *Dashboard {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dashboard{
		log:   logger.Named("dashboard"),
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// CreateSnapshot assembles the full result of one assessment run, including
// its health score. Inputs are embedded as-is; nothing is recomputed.
func (d *Dashboard) CreateSnapshot(
	projectName string,
	maturity schemas.ProjectMaturityAssessment,
	ctxResult schemas.ContextApplicationResult,
	graph schemas.GraphAnalysisResult,
	recs schemas.RecommendationSet,
) schemas.Snapshot {
	snap := schemas.Snapshot{
		ID:              d.newID(),
		ProjectName:     projectName,
		TakenAt:         d.now().UTC(),
		Maturity:        maturity,
		Context:         ctxResult,
		Graph:           graph,
		Recommendations: recs,
	}
	snap.Health = d.CalculateHealthScore(snap)
	return snap
}

// CalculateHealthScore blends the four category scores into the 0-100
// aggregate and labels strengths and weaknesses.
func (d *Dashboard) CalculateHealthScore(snap schemas.Snapshot) schemas.HealthScore {
	score := schemas.HealthScore{
		Categories: map[schemas.HealthCategory]float64{
			schemas.HealthMaturity:     maturityScore(snap.Maturity),
			schemas.HealthCompleteness: clamp(snap.Maturity.CompletionRate * 100),
			schemas.HealthConsistency:  consistencyScore(snap.Maturity),
			schemas.HealthArchitecture: architectureScore(snap.Graph),
		},
	}
	score.Overall = clamp(weightMaturity*score.Categories[schemas.HealthMaturity] +
		weightCompleteness*score.Categories[schemas.HealthCompleteness] +
		weightConsistency*score.Categories[schemas.HealthConsistency] +
		weightArchitecture*score.Categories[schemas.HealthArchitecture])

	for _, cat := range healthCategories {
		switch v := score.Categories[cat]; {
		case v >= strengthThreshold:
			score.Strengths = append(score.Strengths, cat)
		case v < weaknessThreshold:
			score.Weaknesses = append(score.Weaknesses, cat)
		}
	}
	return score
}

// maturityScore normalizes the weakest-link project level to 0-100.
func maturityScore(m schemas.ProjectMaturityAssessment) float64 {
	return clamp(float64(m.ProjectLevel) / float64(schemas.MaxLevel) * 100)
}

// consistencyScore rewards balanced dimensions: it is the inverse of the
// spread of the five dimension completion rates. Identical rates score 100;
// a maximally lopsided profile approaches 0.
func consistencyScore(m schemas.ProjectMaturityAssessment) float64 {
	rates := make([]float64, 0, 5)
	for _, dim := range schemas.AllDimensions() {
		if dm, ok := m.Dimensions[dim]; ok {
			rates = append(rates, dm.CompletionRate)
		}
	}
	if len(rates) == 0 {
		return 0
	}
	var mean float64
	for _, r := range rates {
		mean += r
	}
	mean /= float64(len(rates))
	var variance float64
	for _, r := range rates {
		variance += (r - mean) * (r - mean)
	}
	variance /= float64(len(rates))
	// Rates live in [0,1], so the standard deviation is at most 0.5.
	return clamp(100 * (1 - 2*math.Sqrt(variance)))
}

// architectureScore starts from 100 and deducts for each graph pathology.
// An empty graph has no pathologies and scores 100.
func architectureScore(g schemas.GraphAnalysisResult) float64 {
	score := 100.0
	for _, cycle := range g.CircularDependencies {
		switch cycle.Severity {
		case schemas.CycleSeverityCritical:
			score -= 25
		case schemas.CycleSeverityHigh:
			score -= 15
		default:
			score -= 8
		}
	}
	if g.Stats.NodeCount > 0 {
		isolatedRatio := float64(len(g.IsolatedNodes)) / float64(g.Stats.NodeCount)
		score -= 50 * isolatedRatio
	}
	score -= 3 * float64(len(g.BrokenReferences))
	return clamp(score)
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
