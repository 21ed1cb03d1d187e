// File: internal/assessor/assessor.go
package assessor

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/xkilldash9x/reqlens-cli/api/schemas"
	"github.com/xkilldash9x/reqlens-cli/internal/catalog"
)

// maxNextSteps bounds the per-element recommendation list.
const maxNextSteps = 5

// Assessor evaluates records against the criteria catalog. It is stateless
// apart from its logger; every call computes a fresh result and never
// mutates its inputs.
type Assessor struct {
	log *zap.Logger
}

// New creates an Assessor. A nil logger is replaced with a no-op one so the
// assessor stays total.
func New(logger *zap.Logger) *Assessor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Assessor{log: logger.Named("assessor")}
}

// RequiredOverride adjusts which criteria count as required, typically built
// from a ContextApplicationResult. A nil override leaves the catalog's
// required flags untouched.
type RequiredOverride struct {
	relax map[string]bool
	add   map[string]bool
}

// NewRequiredOverride builds an override from relaxed and additional
// criterion id lists.
func NewRequiredOverride(relax, add []string) *RequiredOverride {
	o := &RequiredOverride{
		relax: make(map[string]bool, len(relax)),
		add:   make(map[string]bool, len(add)),
	}
	for _, id := range relax {
		o.relax[id] = true
	}
	for _, id := range add {
		o.add[id] = true
	}
	return o
}

// OverrideFromContext derives the override a matched context rule set
// implies. Returns nil when the context changed nothing.
func OverrideFromContext(res schemas.ContextApplicationResult) *RequiredOverride {
	if len(res.RelaxedCriteria) == 0 && len(res.AdditionalCriteria) == 0 {
		return nil
	}
	return NewRequiredOverride(res.RelaxedCriteria, res.AdditionalCriteria)
}

// required resolves a criterion's effective required flag under an override.
func (o *RequiredOverride) required(spec catalog.CriterionSpec) bool {
	if o == nil {
		return spec.Required
	}
	if o.add[spec.Criterion.ID] {
		return true
	}
	if o.relax[spec.Criterion.ID] {
		return false
	}
	return spec.Required
}

// AssessElement evaluates one record against the criteria for its type.
// Records of a type with no catalog yield a degraded assessment (level
// Initial, zero rates, Recognized false) rather than an error.
func (a *Assessor) AssessElement(rec schemas.Record, rt schemas.RecordType) schemas.ElementMaturityAssessment {
	return a.AssessElementInContext(rec, rt, nil)
}

// AssessElementInContext is AssessElement with a context-derived required
// set override.
func (a *Assessor) AssessElementInContext(rec schemas.Record, rt schemas.RecordType, override *RequiredOverride) schemas.ElementMaturityAssessment {
	specs := catalog.ForType(rt)
	if len(specs) == 0 {
		a.log.Debug("record type has no criteria catalog, skipping evaluation",
			zap.String("element_id", rec.ID), zap.String("type", string(rt)))
		return degradedAssessment(rec, rt)
	}

	evals := make([]evaluated, 0, len(specs))
	for _, spec := range specs {
		ok, evidence := spec.Check(rec)
		ev := schemas.CriterionEvaluation{
			Criterion: spec.Criterion,
			Satisfied: ok,
			Evidence:  evidence,
		}
		if ok {
			ev.Score = 1
		} else {
			ev.Suggestion = fmt.Sprintf("%s: %s", spec.Criterion.Name, spec.Condition)
		}
		evals = append(evals, evaluated{
			CriterionEvaluation: ev,
			required:            override.required(spec),
		})
	}

	level := attainedLevel(evals, nil)
	tested := testedLevel(level)

	out := schemas.ElementMaturityAssessment{
		ElementID:   rec.ID,
		ElementName: rec.Name,
		ElementType: rt,
		Level:       level,
		Dimensions:  make(map[schemas.Dimension]schemas.DimensionMaturity, 5),
		Recognized:  true,
	}

	for _, dim := range schemas.AllDimensions() {
		out.Dimensions[dim] = dimensionMaturity(evals, dim, tested, level)
	}
	out.CompletionRate = completionRate(evals, nil, tested)

	for _, ev := range evals {
		if ev.Satisfied {
			out.Satisfied = append(out.Satisfied, ev.Criterion.ID)
		} else {
			out.Unsatisfied = append(out.Unsatisfied, ev.Criterion.ID)
		}
	}
	out.NextSteps = nextSteps(evals, level)
	return out
}

// AssessProject evaluates every record of every recognized type and
// aggregates the results. The project level follows the weakest-link rule:
// it is the minimum level across all evaluated elements.
func (a *Assessor) AssessProject(records map[schemas.RecordType][]schemas.Record) schemas.ProjectMaturityAssessment {
	return a.AssessProjectInContext(records, nil)
}

// AssessProjectInContext is AssessProject with a context-derived required
// set override applied to every element.
func (a *Assessor) AssessProjectInContext(records map[schemas.RecordType][]schemas.Record, override *RequiredOverride) schemas.ProjectMaturityAssessment {
	out := schemas.ProjectMaturityAssessment{
		ProjectLevel:      schemas.LevelInitial,
		Dimensions:        make(map[schemas.Dimension]schemas.DimensionMaturity, 5),
		LevelDistribution: make(map[schemas.MaturityLevel]int),
	}

	// Walk types in canonical order, then any unknown types in sorted order,
	// so the element list is reproducible regardless of map iteration.
	for _, rt := range orderedTypes(records) {
		for _, rec := range records[rt] {
			if !catalog.HasCatalog(rt) {
				out.SkippedElements++
				continue
			}
			out.Elements = append(out.Elements, a.AssessElementInContext(rec, rt, override))
		}
	}

	if len(out.Elements) == 0 {
		for _, dim := range schemas.AllDimensions() {
			out.Dimensions[dim] = schemas.DimensionMaturity{Dimension: dim, Level: schemas.LevelInitial}
		}
		return out
	}

	minLevel := schemas.MaxLevel
	var rateSum float64
	for _, el := range out.Elements {
		if el.Level < minLevel {
			minLevel = el.Level
		}
		out.LevelDistribution[el.Level]++
		rateSum += el.CompletionRate
	}
	out.ProjectLevel = minLevel
	out.CompletionRate = rateSum / float64(len(out.Elements))

	for _, dim := range schemas.AllDimensions() {
		out.Dimensions[dim] = aggregateDimension(out.Elements, dim)
	}
	return out
}

// evaluated pairs an evaluation with its effective required flag.
type evaluated struct {
	schemas.CriterionEvaluation
	required bool
}

// attainedLevel returns the highest level L such that every required
// criterion at level <= L is satisfied, optionally restricted to one
// dimension. Levels are sequential: a failure at level l caps the result at
// l-1 no matter what higher-level criteria say. LevelInitial is the floor.
func attainedLevel(evals []evaluated, dim *schemas.Dimension) schemas.MaturityLevel {
	level := schemas.LevelInitial
	for l := schemas.LevelInitial; l <= schemas.MaxLevel; l++ {
		for _, ev := range evals {
			if dim != nil && ev.Criterion.Dimension != *dim {
				continue
			}
			if ev.required && ev.Criterion.Level == l && !ev.Satisfied {
				return level
			}
		}
		level = l
	}
	return level
}

// testedLevel is the level completion rates are measured against: the next
// unattained level, capped at the maximum.
func testedLevel(attained schemas.MaturityLevel) schemas.MaturityLevel {
	if attained >= schemas.MaxLevel {
		return schemas.MaxLevel
	}
	return attained + 1
}

// completionRate is the weighted fraction of satisfied criteria among all
// criteria at or below the tested level, optionally restricted to one
// dimension. Zero when nothing applies.
func completionRate(evals []evaluated, dim *schemas.Dimension, tested schemas.MaturityLevel) float64 {
	var satisfied, total float64
	for _, ev := range evals {
		if dim != nil && ev.Criterion.Dimension != *dim {
			continue
		}
		if ev.Criterion.Level > tested {
			continue
		}
		total += ev.Criterion.Weight
		if ev.Satisfied {
			satisfied += ev.Criterion.Weight
		}
	}
	if total == 0 {
		return 0
	}
	return satisfied / total
}

// dimensionMaturity computes one dimension's standing. A dimension the
// catalog never tests for this record type carries no evidence of its own,
// so its level follows the element level instead of drifting to the
// ladder's top.
func dimensionMaturity(evals []evaluated, dim schemas.Dimension, tested, elementLevel schemas.MaturityLevel) schemas.DimensionMaturity {
	dm := schemas.DimensionMaturity{
		Dimension: dim,
		Level:     attainedLevel(evals, &dim),
	}
	dm.CompletionRate = completionRate(evals, &dim, tested)
	for _, ev := range evals {
		if ev.Criterion.Dimension != dim {
			continue
		}
		dm.Evaluations = append(dm.Evaluations, ev.CriterionEvaluation)
		if !ev.Satisfied && ev.Criterion.Level == dm.Level+1 {
			dm.MissingForNext = append(dm.MissingForNext, ev.Criterion)
		}
	}
	if len(dm.Evaluations) == 0 {
		dm.Level = elementLevel
	}
	return dm
}

// nextSteps derives the element's local improvement list: unsatisfied
// criteria at or below the next level, required first, then by level,
// weight, and id. The list is bounded.
func nextSteps(evals []evaluated, attained schemas.MaturityLevel) []schemas.NextStep {
	tested := testedLevel(attained)
	var pending []evaluated
	for _, ev := range evals {
		if !ev.Satisfied && ev.Criterion.Level <= tested {
			pending = append(pending, ev)
		}
	}
	sort.SliceStable(pending, func(i, j int) bool {
		a, b := pending[i], pending[j]
		if a.required != b.required {
			return a.required
		}
		if a.Criterion.Level != b.Criterion.Level {
			return a.Criterion.Level < b.Criterion.Level
		}
		if a.Criterion.Weight != b.Criterion.Weight {
			return a.Criterion.Weight > b.Criterion.Weight
		}
		return a.Criterion.ID < b.Criterion.ID
	})
	if len(pending) > maxNextSteps {
		pending = pending[:maxNextSteps]
	}
	steps := make([]schemas.NextStep, 0, len(pending))
	for _, ev := range pending {
		steps = append(steps, schemas.NextStep{
			CriterionID: ev.Criterion.ID,
			Description: ev.Suggestion,
			Dimension:   ev.Criterion.Dimension,
			TargetLevel: ev.Criterion.Level,
			Required:    ev.required,
		})
	}
	return steps
}

// aggregateDimension folds per-element dimension results into the
// project-wide view. The project dimension level is the weakest element's;
// the completion rate is weight-aggregated across all evaluations.
func aggregateDimension(elements []schemas.ElementMaturityAssessment, dim schemas.Dimension) schemas.DimensionMaturity {
	agg := schemas.DimensionMaturity{Dimension: dim, Level: schemas.MaxLevel}
	var satisfied, total float64
	for _, el := range elements {
		dm, ok := el.Dimensions[dim]
		if !ok {
			continue
		}
		if dm.Level < agg.Level {
			agg.Level = dm.Level
		}
		for _, ev := range dm.Evaluations {
			total += ev.Criterion.Weight
			if ev.Satisfied {
				satisfied += ev.Criterion.Weight
			}
		}
	}
	if total > 0 {
		agg.CompletionRate = satisfied / total
	} else {
		agg.Level = schemas.LevelInitial
	}
	return agg
}

// degradedAssessment is the total-function fallback for unrecognized record
// types: a valid, all-zero result.
func degradedAssessment(rec schemas.Record, rt schemas.RecordType) schemas.ElementMaturityAssessment {
	out := schemas.ElementMaturityAssessment{
		ElementID:   rec.ID,
		ElementName: rec.Name,
		ElementType: rt,
		Level:       schemas.LevelInitial,
		Dimensions:  make(map[schemas.Dimension]schemas.DimensionMaturity, 5),
		Recognized:  false,
	}
	for _, dim := range schemas.AllDimensions() {
		out.Dimensions[dim] = schemas.DimensionMaturity{Dimension: dim, Level: schemas.LevelInitial}
	}
	return out
}

// orderedTypes returns the input's record types: known types first in
// canonical order, then any others sorted lexically.
func orderedTypes(records map[schemas.RecordType][]schemas.Record) []schemas.RecordType {
	seen := make(map[schemas.RecordType]bool, len(records))
	var out []schemas.RecordType
	for _, rt := range schemas.KnownRecordTypes() {
		if _, ok := records[rt]; ok {
			out = append(out, rt)
			seen[rt] = true
		}
	}
	var extra []schemas.RecordType
	for rt := range records {
		if !seen[rt] {
			extra = append(extra, rt)
		}
	}
	sort.Slice(extra, func(i, j int) bool { return extra[i] < extra[j] })
	return append(out, extra...)
}
