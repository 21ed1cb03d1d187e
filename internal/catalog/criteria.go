// File: internal/catalog/criteria.go
//
// The static maturity criteria catalog. One row per record type x level x
// dimension condition, built once at package init into immutable lookup
// indices. Nothing here changes at runtime.
package catalog

import (
	"fmt"
	"sort"

	"github.com/xkilldash9x/reqlens-cli/api/schemas"
)

// CriterionSpec couples the serializable criterion row with its predicate.
type CriterionSpec struct {
	schemas.Criterion
	Check CheckFunc
}

// criteria is the full catalog. Order within the table is not significant;
// lookups sort by (level, dimension, id) for deterministic iteration.
var criteria = []CriterionSpec{
	// -- Use case --
	{Criterion: schemas.Criterion{
		ID: "uc-identity", Name: "Use case identified",
		Description: "The use case carries a stable id and a display name.",
		RecordType:  schemas.RecordTypeUseCase, Level: schemas.LevelInitial,
		Dimension: schemas.DimensionStructure, Required: true,
		Condition: "id and name are present and non-blank", Weight: 1.0,
	}, Check: hasIdentity},
	{Criterion: schemas.Criterion{
		ID: "uc-description", Name: "Use case described",
		Description: "A substantive description explains the use case's purpose.",
		RecordType:  schemas.RecordTypeUseCase, Level: schemas.LevelRepeatable,
		Dimension: schemas.DimensionDetail, Required: true,
		Condition: "description is at least 50 characters", Weight: 0.9,
	}, Check: stringMinLen("description", 50)},
	{Criterion: schemas.Criterion{
		ID: "uc-preconditions", Name: "Preconditions listed",
		Description: "The state assumed before the use case starts is stated.",
		RecordType:  schemas.RecordTypeUseCase, Level: schemas.LevelRepeatable,
		Dimension: schemas.DimensionStructure, Required: true,
		Condition: "at least one precondition", Weight: 0.7,
	}, Check: listMin("preconditions", 1)},
	{Criterion: schemas.Criterion{
		ID: "uc-postconditions", Name: "Postconditions listed",
		Description: "The state guaranteed after completion is stated.",
		RecordType:  schemas.RecordTypeUseCase, Level: schemas.LevelRepeatable,
		Dimension: schemas.DimensionStructure, Required: true,
		Condition: "at least one postcondition", Weight: 0.7,
	}, Check: listMin("postconditions", 1)},
	{Criterion: schemas.Criterion{
		ID: "uc-priority", Name: "Priority assigned",
		Description: "The use case carries a delivery priority.",
		RecordType:  schemas.RecordTypeUseCase, Level: schemas.LevelRepeatable,
		Dimension: schemas.DimensionStructure, Required: true,
		Condition: "priority is present and non-empty", Weight: 0.5,
	}, Check: fieldPresent("priority")},
	{Criterion: schemas.Criterion{
		ID: "uc-steps-complete", Name: "Steps fully specified",
		Description: "Every step states what happens and what outcome is expected.",
		RecordType:  schemas.RecordTypeUseCase, Level: schemas.LevelRepeatable,
		Dimension: schemas.DimensionDetail, Required: true,
		Condition: "every step has a non-empty action and an expectedResult of at least 10 characters", Weight: 0.9,
	}, Check: stepsComplete(10)},
	{Criterion: schemas.Criterion{
		ID: "uc-primary-actor", Name: "Primary actor referenced",
		Description: "The use case names the actor who initiates it.",
		RecordType:  schemas.RecordTypeUseCase, Level: schemas.LevelRepeatable,
		Dimension: schemas.DimensionTraceability, Required: false,
		Condition: "primaryActor resolves to at least one reference", Weight: 0.6,
	}, Check: refsMin("primaryActor", 1)},
	{Criterion: schemas.Criterion{
		ID: "uc-goals-linked", Name: "Business goals linked",
		Description: "The use case traces to the business goals it delivers.",
		RecordType:  schemas.RecordTypeUseCase, Level: schemas.LevelDefined,
		Dimension: schemas.DimensionTraceability, Required: true,
		Condition: "businessGoals resolves to at least one reference", Weight: 0.8,
	}, Check: refsMin("businessGoals", 1)},
	{Criterion: schemas.Criterion{
		ID: "uc-alternative-flows", Name: "Alternative flows captured",
		Description: "Deviations from the main flow are written down.",
		RecordType:  schemas.RecordTypeUseCase, Level: schemas.LevelDefined,
		Dimension: schemas.DimensionDetail, Required: true,
		Condition: "at least one alternative flow", Weight: 0.7,
	}, Check: listMin("alternativeFlows", 1)},
	{Criterion: schemas.Criterion{
		ID: "uc-acceptance", Name: "Acceptance criteria present",
		Description: "Completion of the use case is verifiable.",
		RecordType:  schemas.RecordTypeUseCase, Level: schemas.LevelDefined,
		Dimension: schemas.DimensionTestability, Required: true,
		Condition: "at least one acceptance criterion", Weight: 0.9,
	}, Check: listMin("acceptanceCriteria", 1)},
	{Criterion: schemas.Criterion{
		ID: "uc-trigger", Name: "Trigger stated",
		Description: "The event that starts the use case is explicit.",
		RecordType:  schemas.RecordTypeUseCase, Level: schemas.LevelDefined,
		Dimension: schemas.DimensionStructure, Required: false,
		Condition: "trigger is present and non-empty", Weight: 0.4,
	}, Check: fieldPresent("trigger")},
	{Criterion: schemas.Criterion{
		ID: "uc-exception-flows", Name: "Exception flows captured",
		Description: "Failure paths are documented alongside the happy path.",
		RecordType:  schemas.RecordTypeUseCase, Level: schemas.LevelDefined,
		Dimension: schemas.DimensionDetail, Required: false,
		Condition: "at least one exception flow", Weight: 0.5,
	}, Check: listMin("exceptionFlows", 1)},
	{Criterion: schemas.Criterion{
		ID: "uc-acceptance-measurable", Name: "Acceptance criteria measurable",
		Description: "Each acceptance criterion is specific enough to test against.",
		RecordType:  schemas.RecordTypeUseCase, Level: schemas.LevelManaged,
		Dimension: schemas.DimensionTestability, Required: true,
		Condition: "every acceptance criterion is at least 20 characters", Weight: 0.8,
	}, Check: eachEntryMinLen("acceptanceCriteria", 20)},
	{Criterion: schemas.Criterion{
		ID: "uc-data-linked", Name: "Data requirements linked",
		Description: "The use case traces to the data it reads or writes.",
		RecordType:  schemas.RecordTypeUseCase, Level: schemas.LevelManaged,
		Dimension: schemas.DimensionTraceability, Required: true,
		Condition: "dataRequirements resolves to at least one reference", Weight: 0.6,
	}, Check: refsMin("dataRequirements", 1)},
	{Criterion: schemas.Criterion{
		ID: "uc-ownership", Name: "Owner assigned",
		Description: "Someone is accountable for keeping the use case current.",
		RecordType:  schemas.RecordTypeUseCase, Level: schemas.LevelManaged,
		Dimension: schemas.DimensionMaintainability, Required: true,
		Condition: "owner is present and non-empty", Weight: 0.6,
	}, Check: fieldPresent("owner")},
	{Criterion: schemas.Criterion{
		ID: "uc-estimated-effort", Name: "Effort estimated",
		Description: "Delivery effort has been sized.",
		RecordType:  schemas.RecordTypeUseCase, Level: schemas.LevelManaged,
		Dimension: schemas.DimensionMaintainability, Required: false,
		Condition: "estimatedEffort is present", Weight: 0.5,
	}, Check: fieldPresent("estimatedEffort")},
	{Criterion: schemas.Criterion{
		ID: "uc-versioned", Name: "Version tracked",
		Description: "Changes to the use case are versioned.",
		RecordType:  schemas.RecordTypeUseCase, Level: schemas.LevelOptimized,
		Dimension: schemas.DimensionMaintainability, Required: true,
		Condition: "version is present and non-empty", Weight: 0.6,
	}, Check: fieldPresent("version")},
	{Criterion: schemas.Criterion{
		ID: "uc-reviewed", Name: "Recently reviewed",
		Description: "The use case carries a last-review marker.",
		RecordType:  schemas.RecordTypeUseCase, Level: schemas.LevelOptimized,
		Dimension: schemas.DimensionMaintainability, Required: false,
		Condition: "lastReviewed is present", Weight: 0.5,
	}, Check: fieldPresent("lastReviewed")},
	{Criterion: schemas.Criterion{
		ID: "uc-success-metrics", Name: "Success metrics defined",
		Description: "Post-delivery success is measurable.",
		RecordType:  schemas.RecordTypeUseCase, Level: schemas.LevelOptimized,
		Dimension: schemas.DimensionTestability, Required: false,
		Condition: "at least one success metric", Weight: 0.6,
	}, Check: listMin("successMetrics", 1)},
	{Criterion: schemas.Criterion{
		ID: "uc-consistent-naming", Name: "Terminology is consistent",
		Description: "The description uses the same terms as the use case name.",
		RecordType:  schemas.RecordTypeUseCase, Level: schemas.LevelOptimized,
		Dimension: schemas.DimensionMaintainability, Required: false,
		Condition: "at least half of the significant name terms reappear in the description", Weight: 0.4,
	}, Check: nameEchoedInDescription},

	// -- Actor --
	{Criterion: schemas.Criterion{
		ID: "actor-identity", Name: "Actor identified",
		Description: "The actor carries a stable id and a display name.",
		RecordType:  schemas.RecordTypeActor, Level: schemas.LevelInitial,
		Dimension: schemas.DimensionStructure, Required: true,
		Condition: "id and name are present and non-blank", Weight: 1.0,
	}, Check: hasIdentity},
	{Criterion: schemas.Criterion{
		ID: "actor-description", Name: "Actor described",
		Description: "Who the actor is and what they want is written down.",
		RecordType:  schemas.RecordTypeActor, Level: schemas.LevelRepeatable,
		Dimension: schemas.DimensionDetail, Required: true,
		Condition: "description is at least 30 characters", Weight: 0.8,
	}, Check: stringMinLen("description", 30)},
	{Criterion: schemas.Criterion{
		ID: "actor-kind", Name: "Actor kind classified",
		Description: "The actor is classified as primary, secondary, or system.",
		RecordType:  schemas.RecordTypeActor, Level: schemas.LevelRepeatable,
		Dimension: schemas.DimensionStructure, Required: true,
		Condition: "kind is present and non-empty", Weight: 0.6,
	}, Check: fieldPresent("kind")},
	{Criterion: schemas.Criterion{
		ID: "actor-goals", Name: "Actor goals listed",
		Description: "The actor's goals in the system are explicit.",
		RecordType:  schemas.RecordTypeActor, Level: schemas.LevelDefined,
		Dimension: schemas.DimensionDetail, Required: true,
		Condition: "at least one goal", Weight: 0.7,
	}, Check: listMin("goals", 1)},
	{Criterion: schemas.Criterion{
		ID: "actor-usecases-linked", Name: "Use cases linked",
		Description: "The actor traces to the use cases they participate in.",
		RecordType:  schemas.RecordTypeActor, Level: schemas.LevelDefined,
		Dimension: schemas.DimensionTraceability, Required: false,
		Condition: "useCases resolves to at least one reference", Weight: 0.6,
	}, Check: refsMin("useCases", 1)},
	{Criterion: schemas.Criterion{
		ID: "actor-permissions", Name: "Permissions specified",
		Description: "What the actor may and may not do is bounded.",
		RecordType:  schemas.RecordTypeActor, Level: schemas.LevelManaged,
		Dimension: schemas.DimensionMaintainability, Required: true,
		Condition: "at least one permission", Weight: 0.7,
	}, Check: listMin("permissions", 1)},
	{Criterion: schemas.Criterion{
		ID: "actor-scenarios", Name: "Scenarios captured",
		Description: "Representative usage scenarios exist for testing.",
		RecordType:  schemas.RecordTypeActor, Level: schemas.LevelManaged,
		Dimension: schemas.DimensionTestability, Required: false,
		Condition: "at least one scenario", Weight: 0.5,
	}, Check: listMin("scenarios", 1)},
	{Criterion: schemas.Criterion{
		ID: "actor-reviewed", Name: "Recently reviewed",
		Description: "The actor profile carries a last-review marker.",
		RecordType:  schemas.RecordTypeActor, Level: schemas.LevelOptimized,
		Dimension: schemas.DimensionMaintainability, Required: false,
		Condition: "lastReviewed is present", Weight: 0.5,
	}, Check: fieldPresent("lastReviewed")},

	// -- Business requirement --
	{Criterion: schemas.Criterion{
		ID: "br-identity", Name: "Requirement identified",
		Description: "The requirement carries a stable id and a display name.",
		RecordType:  schemas.RecordTypeBusinessRequirement, Level: schemas.LevelInitial,
		Dimension: schemas.DimensionStructure, Required: true,
		Condition: "id and name are present and non-blank", Weight: 1.0,
	}, Check: hasIdentity},
	{Criterion: schemas.Criterion{
		ID: "br-description", Name: "Requirement described",
		Description: "The requirement is stated in full sentences, not a title.",
		RecordType:  schemas.RecordTypeBusinessRequirement, Level: schemas.LevelRepeatable,
		Dimension: schemas.DimensionDetail, Required: true,
		Condition: "description is at least 50 characters", Weight: 0.9,
	}, Check: stringMinLen("description", 50)},
	{Criterion: schemas.Criterion{
		ID: "br-priority", Name: "Priority assigned",
		Description: "The requirement carries a delivery priority.",
		RecordType:  schemas.RecordTypeBusinessRequirement, Level: schemas.LevelRepeatable,
		Dimension: schemas.DimensionStructure, Required: true,
		Condition: "priority is present and non-empty", Weight: 0.6,
	}, Check: fieldPresent("priority")},
	{Criterion: schemas.Criterion{
		ID: "br-rationale", Name: "Rationale recorded",
		Description: "Why the requirement exists is written down.",
		RecordType:  schemas.RecordTypeBusinessRequirement, Level: schemas.LevelRepeatable,
		Dimension: schemas.DimensionDetail, Required: false,
		Condition: "rationale is at least 30 characters", Weight: 0.5,
	}, Check: stringMinLen("rationale", 30)},
	{Criterion: schemas.Criterion{
		ID: "br-goal-linked", Name: "Business goal linked",
		Description: "The requirement traces to a business goal.",
		RecordType:  schemas.RecordTypeBusinessRequirement, Level: schemas.LevelDefined,
		Dimension: schemas.DimensionTraceability, Required: true,
		Condition: "businessGoals resolves to at least one reference", Weight: 0.8,
	}, Check: refsMin("businessGoals", 1)},
	{Criterion: schemas.Criterion{
		ID: "br-acceptance", Name: "Acceptance criteria present",
		Description: "Satisfaction of the requirement is verifiable.",
		RecordType:  schemas.RecordTypeBusinessRequirement, Level: schemas.LevelDefined,
		Dimension: schemas.DimensionTestability, Required: true,
		Condition: "at least one acceptance criterion", Weight: 0.9,
	}, Check: listMin("acceptanceCriteria", 1)},
	{Criterion: schemas.Criterion{
		ID: "br-category", Name: "Category assigned",
		Description: "The requirement is filed under a category.",
		RecordType:  schemas.RecordTypeBusinessRequirement, Level: schemas.LevelDefined,
		Dimension: schemas.DimensionStructure, Required: false,
		Condition: "category is present and non-empty", Weight: 0.4,
	}, Check: fieldPresent("category")},
	{Criterion: schemas.Criterion{
		ID: "br-measurable", Name: "Acceptance criteria measurable",
		Description: "Each acceptance criterion is specific enough to test against.",
		RecordType:  schemas.RecordTypeBusinessRequirement, Level: schemas.LevelManaged,
		Dimension: schemas.DimensionTestability, Required: true,
		Condition: "every acceptance criterion is at least 20 characters", Weight: 0.8,
	}, Check: eachEntryMinLen("acceptanceCriteria", 20)},
	{Criterion: schemas.Criterion{
		ID: "br-owner", Name: "Owner assigned",
		Description: "Someone is accountable for the requirement.",
		RecordType:  schemas.RecordTypeBusinessRequirement, Level: schemas.LevelManaged,
		Dimension: schemas.DimensionMaintainability, Required: true,
		Condition: "owner is present and non-empty", Weight: 0.6,
	}, Check: fieldPresent("owner")},
	{Criterion: schemas.Criterion{
		ID: "br-usecases-linked", Name: "Use cases linked",
		Description: "The requirement traces forward to implementing use cases.",
		RecordType:  schemas.RecordTypeBusinessRequirement, Level: schemas.LevelManaged,
		Dimension: schemas.DimensionTraceability, Required: false,
		Condition: "useCases resolves to at least one reference", Weight: 0.6,
	}, Check: refsMin("useCases", 1)},
	{Criterion: schemas.Criterion{
		ID: "br-versioned", Name: "Version tracked",
		Description: "Changes to the requirement are versioned.",
		RecordType:  schemas.RecordTypeBusinessRequirement, Level: schemas.LevelOptimized,
		Dimension: schemas.DimensionMaintainability, Required: true,
		Condition: "version is present and non-empty", Weight: 0.6,
	}, Check: fieldPresent("version")},
	{Criterion: schemas.Criterion{
		ID: "br-metrics", Name: "Success metrics defined",
		Description: "Fulfilment of the requirement is measurable in production.",
		RecordType:  schemas.RecordTypeBusinessRequirement, Level: schemas.LevelOptimized,
		Dimension: schemas.DimensionTestability, Required: false,
		Condition: "at least one success metric", Weight: 0.6,
	}, Check: listMin("successMetrics", 1)},

	// -- Business goal --
	{Criterion: schemas.Criterion{
		ID: "goal-identity", Name: "Goal identified",
		Description: "The goal carries a stable id and a display name.",
		RecordType:  schemas.RecordTypeBusinessGoal, Level: schemas.LevelInitial,
		Dimension: schemas.DimensionStructure, Required: true,
		Condition: "id and name are present and non-blank", Weight: 1.0,
	}, Check: hasIdentity},
	{Criterion: schemas.Criterion{
		ID: "goal-description", Name: "Goal described",
		Description: "The goal is stated beyond its title.",
		RecordType:  schemas.RecordTypeBusinessGoal, Level: schemas.LevelRepeatable,
		Dimension: schemas.DimensionDetail, Required: true,
		Condition: "description is at least 40 characters", Weight: 0.8,
	}, Check: stringMinLen("description", 40)},
	{Criterion: schemas.Criterion{
		ID: "goal-measurable", Name: "Goal measurable",
		Description: "The goal carries a measurable target.",
		RecordType:  schemas.RecordTypeBusinessGoal, Level: schemas.LevelDefined,
		Dimension: schemas.DimensionTestability, Required: true,
		Condition: "at least one metric", Weight: 0.8,
	}, Check: listMin("metrics", 1)},
	{Criterion: schemas.Criterion{
		ID: "goal-owner", Name: "Owner assigned",
		Description: "Someone is accountable for the goal.",
		RecordType:  schemas.RecordTypeBusinessGoal, Level: schemas.LevelManaged,
		Dimension: schemas.DimensionMaintainability, Required: false,
		Condition: "owner is present and non-empty", Weight: 0.5,
	}, Check: fieldPresent("owner")},

	// -- Business rule --
	{Criterion: schemas.Criterion{
		ID: "rule-identity", Name: "Rule identified",
		Description: "The rule carries a stable id and a display name.",
		RecordType:  schemas.RecordTypeBusinessRule, Level: schemas.LevelInitial,
		Dimension: schemas.DimensionStructure, Required: true,
		Condition: "id and name are present and non-blank", Weight: 1.0,
	}, Check: hasIdentity},
	{Criterion: schemas.Criterion{
		ID: "rule-statement", Name: "Rule stated precisely",
		Description: "The rule is written as a testable statement.",
		RecordType:  schemas.RecordTypeBusinessRule, Level: schemas.LevelRepeatable,
		Dimension: schemas.DimensionDetail, Required: true,
		Condition: "statement is at least 30 characters", Weight: 0.9,
	}, Check: stringMinLen("statement", 30)},
	{Criterion: schemas.Criterion{
		ID: "rule-applies-to", Name: "Scope linked",
		Description: "The rule traces to the records it constrains.",
		RecordType:  schemas.RecordTypeBusinessRule, Level: schemas.LevelDefined,
		Dimension: schemas.DimensionTraceability, Required: true,
		Condition: "appliesTo resolves to at least one reference", Weight: 0.7,
	}, Check: refsMin("appliesTo", 1)},
	{Criterion: schemas.Criterion{
		ID: "rule-examples", Name: "Examples given",
		Description: "Concrete pass/fail examples accompany the rule.",
		RecordType:  schemas.RecordTypeBusinessRule, Level: schemas.LevelManaged,
		Dimension: schemas.DimensionTestability, Required: false,
		Condition: "at least one example", Weight: 0.5,
	}, Check: listMin("examples", 1)},

	// -- Security policy --
	{Criterion: schemas.Criterion{
		ID: "sec-identity", Name: "Policy identified",
		Description: "The policy carries a stable id and a display name.",
		RecordType:  schemas.RecordTypeSecurityPolicy, Level: schemas.LevelInitial,
		Dimension: schemas.DimensionStructure, Required: true,
		Condition: "id and name are present and non-blank", Weight: 1.0,
	}, Check: hasIdentity},
	{Criterion: schemas.Criterion{
		ID: "sec-statement", Name: "Policy stated",
		Description: "The policy is written out, not just named.",
		RecordType:  schemas.RecordTypeSecurityPolicy, Level: schemas.LevelRepeatable,
		Dimension: schemas.DimensionDetail, Required: true,
		Condition: "statement is at least 40 characters", Weight: 0.9,
	}, Check: stringMinLen("statement", 40)},
	{Criterion: schemas.Criterion{
		ID: "sec-affects", Name: "Affected records linked",
		Description: "The policy traces to the records it governs.",
		RecordType:  schemas.RecordTypeSecurityPolicy, Level: schemas.LevelDefined,
		Dimension: schemas.DimensionTraceability, Required: true,
		Condition: "affects resolves to at least one reference", Weight: 0.7,
	}, Check: refsMin("affects", 1)},

	// -- Data requirement --
	{Criterion: schemas.Criterion{
		ID: "data-identity", Name: "Data requirement identified",
		Description: "The data requirement carries a stable id and a display name.",
		RecordType:  schemas.RecordTypeDataRequirement, Level: schemas.LevelInitial,
		Dimension: schemas.DimensionStructure, Required: true,
		Condition: "id and name are present and non-blank", Weight: 1.0,
	}, Check: hasIdentity},
	{Criterion: schemas.Criterion{
		ID: "data-fields", Name: "Fields enumerated",
		Description: "The data entity's fields are listed.",
		RecordType:  schemas.RecordTypeDataRequirement, Level: schemas.LevelRepeatable,
		Dimension: schemas.DimensionDetail, Required: true,
		Condition: "at least one field definition", Weight: 0.8,
	}, Check: listMin("fields", 1)},
	{Criterion: schemas.Criterion{
		ID: "data-validation", Name: "Validation rules linked",
		Description: "The data requirement traces to its validation rules.",
		RecordType:  schemas.RecordTypeDataRequirement, Level: schemas.LevelDefined,
		Dimension: schemas.DimensionTraceability, Required: false,
		Condition: "validationRules resolves to at least one reference", Weight: 0.6,
	}, Check: refsMin("validationRules", 1)},
}

// byType indexes the catalog, built once in init.
var byType map[schemas.RecordType][]CriterionSpec

// byID maps criterion id to its spec for O(1) lookups.
var byID map[string]CriterionSpec

func init() {
	byType = make(map[schemas.RecordType][]CriterionSpec)
	byID = make(map[string]CriterionSpec, len(criteria))
	for _, spec := range criteria {
		if _, dup := byID[spec.Criterion.ID]; dup {
			panic(fmt.Sprintf("catalog: duplicate criterion id %q", spec.Criterion.ID))
		}
		byID[spec.Criterion.ID] = spec
		byType[spec.RecordType] = append(byType[spec.RecordType], spec)
	}
	for rt := range byType {
		rows := byType[rt]
		sort.Slice(rows, func(i, j int) bool {
			if rows[i].Level != rows[j].Level {
				return rows[i].Level < rows[j].Level
			}
			if rows[i].Dimension != rows[j].Dimension {
				return rows[i].Dimension < rows[j].Dimension
			}
			return rows[i].Criterion.ID < rows[j].Criterion.ID
		})
	}
}

// ForType returns the criteria applicable to a record type, sorted by
// (level, dimension, id). The returned slice is shared; callers must not
// modify it.
func ForType(rt schemas.RecordType) []CriterionSpec {
	return byType[rt]
}

// ByID looks a criterion up by its id.
func ByID(id string) (CriterionSpec, bool) {
	spec, ok := byID[id]
	return spec, ok
}

// HasCatalog reports whether the record type has any criteria defined.
func HasCatalog(rt schemas.RecordType) bool {
	return len(byType[rt]) > 0
}
