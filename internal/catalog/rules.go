// File: internal/catalog/rules.go
//
// The built-in context rule set: an ordered list of (predicate, effect)
// pairs evaluated against a ProjectContext. New rules are additive; nothing
// special-cases a particular domain outside this table.
package catalog

import "github.com/xkilldash9x/reqlens-cli/api/schemas"

// ContextRule is one conditional weight adjustment. Matches decides whether
// the rule fires; Adjustments multiply dimension weights; Relax demotes
// criterion ids from required and Add promotes them.
type ContextRule struct {
	Name        string
	Description string
	Matches     func(schemas.ProjectContext) bool
	Adjustments []schemas.WeightAdjustment
	Relax       []string
	Add         []string
}

// builtinRules fire in slice order. Order only affects the adjustment log;
// final weights are a commutative product.
var builtinRules = []ContextRule{
	{
		Name:        "fintech-regulation",
		Description: "Regulated financial domains need audit trails and verifiable behavior.",
		Matches:     func(c schemas.ProjectContext) bool { return c.Domain == schemas.DomainFintech },
		Adjustments: []schemas.WeightAdjustment{
			{Dimension: schemas.DimensionTraceability, Multiplier: 1.3, Rationale: "financial records must trace to their source requirements"},
			{Dimension: schemas.DimensionTestability, Multiplier: 1.2, Rationale: "regulated behavior must be verifiable"},
		},
	},
	{
		Name:        "healthcare-compliance",
		Description: "Healthcare projects carry compliance and long-maintenance obligations.",
		Matches:     func(c schemas.ProjectContext) bool { return c.Domain == schemas.DomainHealthcare },
		Adjustments: []schemas.WeightAdjustment{
			{Dimension: schemas.DimensionTraceability, Multiplier: 1.4, Rationale: "clinical requirements must trace to policy"},
			{Dimension: schemas.DimensionMaintainability, Multiplier: 1.2, Rationale: "healthcare systems live for decades"},
		},
		Add: []string{"uc-ownership", "br-owner"},
	},
	{
		Name:        "government-traceability",
		Description: "Public-sector delivery is audit-heavy.",
		Matches:     func(c schemas.ProjectContext) bool { return c.Domain == schemas.DomainGovernment },
		Adjustments: []schemas.WeightAdjustment{
			{Dimension: schemas.DimensionTraceability, Multiplier: 1.3, Rationale: "procurement audits follow the paper trail"},
			{Dimension: schemas.DimensionStructure, Multiplier: 1.1, Rationale: "formal documentation standards apply"},
		},
	},
	{
		Name:        "ecommerce-detail",
		Description: "Commerce flows fail on under-specified edge cases.",
		Matches:     func(c schemas.ProjectContext) bool { return c.Domain == schemas.DomainECommerce },
		Adjustments: []schemas.WeightAdjustment{
			{Dimension: schemas.DimensionDetail, Multiplier: 1.2, Rationale: "checkout and payment paths need exhaustive flows"},
			{Dimension: schemas.DimensionTestability, Multiplier: 1.1, Rationale: "conversion-critical paths need acceptance criteria"},
		},
	},
	{
		Name:        "internal-tools-lightweight",
		Description: "Internal tooling tolerates lighter documentation.",
		Matches:     func(c schemas.ProjectContext) bool { return c.Domain == schemas.DomainInternal },
		Adjustments: []schemas.WeightAdjustment{
			{Dimension: schemas.DimensionDetail, Multiplier: 0.9, Rationale: "the audience is in the building"},
			{Dimension: schemas.DimensionMaintainability, Multiplier: 0.9, Rationale: "shorter feedback loops"},
		},
	},
	{
		Name:        "prototype-relaxation",
		Description: "Prototypes trade rigor for speed of learning.",
		Matches:     func(c schemas.ProjectContext) bool { return c.Stage == schemas.StagePrototype },
		Adjustments: []schemas.WeightAdjustment{
			{Dimension: schemas.DimensionMaintainability, Multiplier: 0.6, Rationale: "the prototype may be thrown away"},
			{Dimension: schemas.DimensionTraceability, Multiplier: 0.7, Rationale: "the goal map is still moving"},
		},
		Relax: []string{"uc-ownership", "br-owner", "uc-versioned", "br-versioned"},
	},
	{
		Name:        "mvp-focus",
		Description: "An MVP documents what ships, not what might.",
		Matches:     func(c schemas.ProjectContext) bool { return c.Stage == schemas.StageMVP },
		Adjustments: []schemas.WeightAdjustment{
			{Dimension: schemas.DimensionDetail, Multiplier: 0.9, Rationale: "only shipped scope needs full flows"},
			{Dimension: schemas.DimensionMaintainability, Multiplier: 0.8, Rationale: "process overhead is deferred"},
		},
		Relax: []string{"uc-versioned", "br-versioned"},
	},
	{
		Name:        "growth-traceability",
		Description: "Growing systems accumulate cross-team dependencies.",
		Matches:     func(c schemas.ProjectContext) bool { return c.Stage == schemas.StageGrowth },
		Adjustments: []schemas.WeightAdjustment{
			{Dimension: schemas.DimensionTraceability, Multiplier: 1.2, Rationale: "more consumers depend on each record being linked"},
		},
	},
	{
		Name:        "maintenance-rigor",
		Description: "In maintenance, the documentation is the institutional memory.",
		Matches:     func(c schemas.ProjectContext) bool { return c.Stage == schemas.StageMaintenance },
		Adjustments: []schemas.WeightAdjustment{
			{Dimension: schemas.DimensionMaintainability, Multiplier: 1.3, Rationale: "original authors have moved on"},
		},
		Add: []string{"uc-versioned"},
	},
	{
		Name:        "solo-lightweight",
		Description: "A solo builder carries the context in their head.",
		Matches:     func(c schemas.ProjectContext) bool { return c.TeamSize == schemas.TeamSizeSolo },
		Adjustments: []schemas.WeightAdjustment{
			{Dimension: schemas.DimensionStructure, Multiplier: 0.8, Rationale: "no handoffs to formalize for"},
			{Dimension: schemas.DimensionMaintainability, Multiplier: 0.7, Rationale: "single owner by construction"},
		},
		Relax: []string{"actor-permissions"},
	},
	{
		Name:        "large-team-structure",
		Description: "Large teams coordinate through the written record.",
		Matches:     func(c schemas.ProjectContext) bool { return c.TeamSize == schemas.TeamSizeLarge },
		Adjustments: []schemas.WeightAdjustment{
			{Dimension: schemas.DimensionStructure, Multiplier: 1.3, Rationale: "many readers need a predictable shape"},
			{Dimension: schemas.DimensionMaintainability, Multiplier: 1.2, Rationale: "ownership must be explicit at scale"},
		},
		Add: []string{"uc-ownership", "br-owner"},
	},
}

// BuiltinRules returns the built-in rule list in its fixed firing order. The
// caller receives a fresh slice header but shares the rule values; rules are
// immutable by convention and never mutated by the engine.
func BuiltinRules() []ContextRule {
	out := make([]ContextRule, len(builtinRules))
	copy(out, builtinRules)
	return out
}

// strictness maps criticality to the global factor applied after all rule
// multipliers.
var strictness = map[schemas.Criticality]float64{
	schemas.CriticalityExperimental:     0.5,
	schemas.CriticalityStandard:         1.0,
	schemas.CriticalityBusinessCritical: 1.2,
	schemas.CriticalityMissionCritical:  1.5,
}

// StrictnessFactor returns the criticality-derived scalar. Unknown values
// fall back to standard strictness rather than failing the run.
func StrictnessFactor(c schemas.Criticality) float64 {
	if f, ok := strictness[c]; ok {
		return f
	}
	return strictness[schemas.CriticalityStandard]
}
