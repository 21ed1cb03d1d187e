// File: api/schemas/dashboard.go
package schemas

import "time"

// HealthCategory is one of the four axes blended into the health score.
type HealthCategory string

// Health score categories.
const (
	HealthMaturity     HealthCategory = "maturity"
	HealthCompleteness HealthCategory = "completeness"
	HealthConsistency  HealthCategory = "consistency"
	HealthArchitecture HealthCategory = "architecture"
)

// HealthScore is the 0-100 aggregate plus its category breakdown.
type HealthScore struct {
	Overall    float64                    `json:"overall"`
	Categories map[HealthCategory]float64 `json:"categories"`
	// Strengths are categories at or above the high threshold; Weaknesses
	// those below the low threshold. Both keep canonical category order.
	Strengths  []HealthCategory `json:"strengths,omitempty"`
	Weaknesses []HealthCategory `json:"weaknesses,omitempty"`
}

// AlertSeverity grades a dashboard alert.
type AlertSeverity string

// Alert severities.
const (
	AlertSeverityCritical AlertSeverity = "critical"
	AlertSeverityWarning  AlertSeverity = "warning"
	AlertSeverityInfo     AlertSeverity = "info"
)

// Alert is one threshold-crossing notification produced while comparing a
// snapshot against thresholds and, optionally, a prior snapshot.
type Alert struct {
	Severity AlertSeverity  `json:"severity"`
	Category HealthCategory `json:"category,omitempty"`
	Message  string         `json:"message"`
	Current  float64        `json:"current,omitempty"`
	Previous float64        `json:"previous,omitempty"`
}

// Snapshot is one assessment run's full result, suitable for rendering,
// serialization, and append-only trend history.
type Snapshot struct {
	ID          string    `json:"id"`
	ProjectName string    `json:"project_name"`
	TakenAt     time.Time `json:"taken_at"`

	Maturity        ProjectMaturityAssessment `json:"maturity"`
	Context         ContextApplicationResult  `json:"context"`
	Graph           GraphAnalysisResult       `json:"graph"`
	Recommendations RecommendationSet         `json:"recommendations"`
	Health          HealthScore               `json:"health"`
}
