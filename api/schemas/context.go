// File: api/schemas/context.go
package schemas

// Domain is the business domain a project operates in.
type Domain string

// Known project domains. DomainGeneral is the fallback when nothing matches.
const (
	DomainGeneral    Domain = "general"
	DomainECommerce  Domain = "ecommerce"
	DomainFintech    Domain = "fintech"
	DomainHealthcare Domain = "healthcare"
	DomainGovernment Domain = "government"
	DomainInternal   Domain = "internal-tools"
)

// Stage is the project's lifecycle stage.
type Stage string

// Known lifecycle stages.
const (
	StagePrototype   Stage = "prototype"
	StageMVP         Stage = "mvp"
	StageGrowth      Stage = "growth"
	StageMaintenance Stage = "maintenance"
)

// TeamSize buckets the delivery team's headcount.
type TeamSize string

// Known team-size buckets.
const (
	TeamSizeSolo   TeamSize = "solo"
	TeamSizeSmall  TeamSize = "small"  // 2-5
	TeamSizeMedium TeamSize = "medium" // 6-15
	TeamSizeLarge  TeamSize = "large"  // 16+
)

// Criticality expresses how much damage a defect in the delivered system
// would cause. It drives the global strictness factor.
type Criticality string

// Known criticality grades, least to most severe.
const (
	CriticalityExperimental     Criticality = "experimental"
	CriticalityStandard         Criticality = "standard"
	CriticalityBusinessCritical Criticality = "business-critical"
	CriticalityMissionCritical  Criticality = "mission-critical"
)

// ProjectContext is the declared or inferred profile used to reweight
// scoring. Zero-valued fields are treated as "not supplied" and filled by
// inference or defaults; inference never overrides an explicit value.
type ProjectContext struct {
	ProjectName string      `json:"project_name,omitempty" yaml:"project_name,omitempty"`
	Domain      Domain      `json:"domain,omitempty" yaml:"domain,omitempty"`
	Stage       Stage       `json:"stage,omitempty" yaml:"stage,omitempty"`
	TeamSize    TeamSize    `json:"team_size,omitempty" yaml:"team_size,omitempty"`
	Criticality Criticality `json:"criticality,omitempty" yaml:"criticality,omitempty"`
	Tags        []string    `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// WeightAdjustment is one rule's multiplier on one dimension, with the
// rationale that surfaces in the adjustment log.
type WeightAdjustment struct {
	Dimension  Dimension `json:"dimension"`
	Multiplier float64   `json:"multiplier"`
	Rationale  string    `json:"rationale"`
}

// AppliedAdjustment is one entry of the reproducible adjustment log: which
// rule touched which dimension, and the weight before and after.
type AppliedAdjustment struct {
	RuleName string `json:"rule_name"`
	WeightAdjustment
	Before float64 `json:"before"`
	After  float64 `json:"after"`
}

// ContextApplicationResult is the outcome of applying the context rule set
// to a project context. Weight composition is a product of positive
// multipliers, so the final weights are independent of rule order; only the
// Log is order-sensitive, and it is emitted in catalog order for
// reproducibility.
type ContextApplicationResult struct {
	Context      ProjectContext        `json:"context"`
	MatchedRules []string              `json:"matched_rules"`
	Weights      map[Dimension]float64 `json:"weights"`
	// StrictnessFactor is the criticality-derived scalar applied to every
	// dimension after rule multipliers.
	StrictnessFactor float64             `json:"strictness_factor"`
	Log              []AppliedAdjustment `json:"log"`
	// RelaxedCriteria are criterion ids demoted from required by matched
	// rules; AdditionalCriteria are promoted to required. The assessor may
	// consult these for a context-aware re-evaluation.
	RelaxedCriteria    []string `json:"relaxed_criteria,omitempty"`
	AdditionalCriteria []string `json:"additional_criteria,omitempty"`
}
