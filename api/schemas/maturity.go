// File: api/schemas/maturity.go
package schemas

// MaturityLevel is one of the five ordered maturity stages. Levels are
// attained sequentially: a record holds level L only when every required
// criterion at levels 1..L is satisfied.
type MaturityLevel int

// The five maturity stages, lowest to highest.
const (
	LevelInitial    MaturityLevel = 1
	LevelRepeatable MaturityLevel = 2
	LevelDefined    MaturityLevel = 3
	LevelManaged    MaturityLevel = 4
	LevelOptimized  MaturityLevel = 5
)

// MaxLevel is the highest attainable maturity level.
const MaxLevel = LevelOptimized

// String returns the conventional CMM-style stage name.
func (l MaturityLevel) String() string {
	switch l {
	case LevelInitial:
		return "Initial"
	case LevelRepeatable:
		return "Repeatable"
	case LevelDefined:
		return "Defined"
	case LevelManaged:
		return "Managed"
	case LevelOptimized:
		return "Optimized"
	default:
		return "Unknown"
	}
}

// Dimension is one of the five orthogonal quality axes a record is scored
// on, independently of its level.
type Dimension string

// The five quality dimensions.
const (
	DimensionStructure       Dimension = "structure"
	DimensionDetail          Dimension = "detail"
	DimensionTraceability    Dimension = "traceability"
	DimensionTestability     Dimension = "testability"
	DimensionMaintainability Dimension = "maintainability"
)

// AllDimensions returns the dimensions in their fixed canonical order. Any
// loop that must produce reproducible output iterates in this order rather
// than ranging over a map.
func AllDimensions() []Dimension {
	return []Dimension{
		DimensionStructure,
		DimensionDetail,
		DimensionTraceability,
		DimensionTestability,
		DimensionMaintainability,
	}
}

// Criterion is one testable maturity condition, tied to a single record
// type, level, and dimension. Criteria are static catalog data; the engine
// never creates or mutates them at runtime.
type Criterion struct {
	ID          string        `json:"id" yaml:"id"`
	Name        string        `json:"name" yaml:"name"`
	Description string        `json:"description" yaml:"description"`
	RecordType  RecordType    `json:"record_type" yaml:"record_type"`
	Level       MaturityLevel `json:"level" yaml:"level"`
	Dimension   Dimension     `json:"dimension" yaml:"dimension"`
	Required    bool          `json:"required" yaml:"required"`
	// Condition is the human-readable statement of what the check verifies.
	Condition string `json:"condition" yaml:"condition"`
	// Weight in [0,1] scales the criterion's contribution to completion rates.
	Weight float64 `json:"weight" yaml:"weight"`
}

// CriterionEvaluation is the outcome of checking one criterion against one
// record. Owned by the DimensionMaturity that contains it; produced fresh on
// every assessment run.
type CriterionEvaluation struct {
	Criterion  Criterion `json:"criterion"`
	Satisfied  bool      `json:"satisfied"`
	Score      int       `json:"score"` // 1 when satisfied, else 0
	Evidence   string    `json:"evidence,omitempty"`
	Suggestion string    `json:"suggestion,omitempty"`
}

// DimensionMaturity is one record's standing on a single quality dimension.
type DimensionMaturity struct {
	Dimension Dimension `json:"dimension"`
	// Level is the highest level whose required criteria in this dimension
	// are all satisfied.
	Level MaturityLevel `json:"level"`
	// CompletionRate is the weighted fraction of satisfied criteria among
	// all criteria at or below the element's tested level, in [0,1].
	CompletionRate float64               `json:"completion_rate"`
	Evaluations    []CriterionEvaluation `json:"evaluations"`
	// MissingForNext lists the criteria still unsatisfied at the next level.
	MissingForNext []Criterion `json:"missing_for_next,omitempty"`
}

// NextStep is one element-local improvement suggestion, ordered by priority
// within the element's assessment.
type NextStep struct {
	CriterionID string        `json:"criterion_id"`
	Description string        `json:"description"`
	Dimension   Dimension     `json:"dimension"`
	TargetLevel MaturityLevel `json:"target_level"`
	Required    bool          `json:"required"`
}

// ElementMaturityAssessment is the full maturity result for one record.
type ElementMaturityAssessment struct {
	ElementID   string        `json:"element_id"`
	ElementName string        `json:"element_name"`
	ElementType RecordType    `json:"element_type"`
	Level       MaturityLevel `json:"level"`
	// CompletionRate aggregates all dimensions, weighted by criterion weight.
	CompletionRate float64                         `json:"completion_rate"`
	Dimensions     map[Dimension]DimensionMaturity `json:"dimensions"`
	Satisfied      []string                        `json:"satisfied_criteria"`
	Unsatisfied    []string                        `json:"unsatisfied_criteria"`
	NextSteps      []NextStep                      `json:"next_steps,omitempty"`
	// Recognized is false for record types without a criteria catalog; such
	// elements carry a degraded (all-zero) assessment rather than an error.
	Recognized bool `json:"recognized"`
}

// ProjectMaturityAssessment aggregates every evaluated element.
type ProjectMaturityAssessment struct {
	// ProjectLevel is the minimum level across all evaluated elements (the
	// weakest-link rule). LevelInitial for an empty project.
	ProjectLevel   MaturityLevel                   `json:"project_level"`
	CompletionRate float64                         `json:"completion_rate"`
	Elements       []ElementMaturityAssessment     `json:"elements"`
	Dimensions     map[Dimension]DimensionMaturity `json:"dimensions"`
	// LevelDistribution counts elements per attained level.
	LevelDistribution map[MaturityLevel]int `json:"level_distribution"`
	// SkippedElements counts records whose type had no criteria catalog.
	SkippedElements int `json:"skipped_elements"`
}
