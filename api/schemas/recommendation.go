// File: api/schemas/recommendation.go
package schemas

// Priority ranks a recommendation.
type Priority string

// Recommendation priorities, highest first.
const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
	PriorityLow      Priority = "low"
)

// PriorityRank returns a sortable numeric rank, lower meaning more urgent.
func PriorityRank(p Priority) int {
	switch p {
	case PriorityCritical:
		return 0
	case PriorityHigh:
		return 1
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 3
	default:
		return 4
	}
}

// Complexity is the qualitative half of an effort estimate.
type Complexity string

// Effort complexity grades.
const (
	ComplexityLow    Complexity = "low"
	ComplexityMedium Complexity = "medium"
	ComplexityHigh   Complexity = "high"
)

// Effort estimates the work a recommendation implies.
type Effort struct {
	Hours      float64    `json:"hours"`
	Complexity Complexity `json:"complexity"`
}

// RecommendationCategory names the source a recommendation was derived from.
type RecommendationCategory string

// Recommendation sources.
const (
	CategoryUnmetCriterion  RecommendationCategory = "unmet-criterion"
	CategoryCircularDep     RecommendationCategory = "circular-dependency"
	CategoryBrokenReference RecommendationCategory = "broken-reference"
	CategoryIsolatedNode    RecommendationCategory = "isolated-node"
)

// Recommendation is one prioritized, effort-estimated suggested action. IDs
// are deterministic (uuid v5 over the dedup key) so identical inputs always
// produce identical recommendation lists.
type Recommendation struct {
	ID       string                 `json:"id"`
	Title    string                 `json:"title"`
	Category RecommendationCategory `json:"category"`
	Priority Priority               `json:"priority"`
	Problem  string                 `json:"problem"`
	Effort   Effort                 `json:"effort"`
	// AffectedElements lists the record ids the action touches.
	AffectedElements []string `json:"affected_elements"`
	// QuickWin marks low-effort, low-complexity items worth doing first.
	QuickWin bool `json:"quick_win"`
}

// RecommendationSet is the engine's ranked output: the full list plus the
// bounded top-priority slice and the quick-win subset.
type RecommendationSet struct {
	Recommendations []Recommendation `json:"recommendations"`
	TopPriority     []Recommendation `json:"top_priority"`
	QuickWins       []Recommendation `json:"quick_wins"`
}
