// File: internal/contextengine/engine.go
package contextengine

import (
	"sort"

	"go.uber.org/zap"

	"github.com/xkilldash9x/reqlens-cli/api/schemas"
	"github.com/xkilldash9x/reqlens-cli/internal/catalog"
)

// Engine applies the context rule set to a project context, producing the
// final per-dimension weight vector. It never mutates the built-in catalog.
type Engine struct {
	log *zap.Logger
}

// New creates a context engine.
func New(logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{log: logger.Named("contextengine")}
}

// ApplyContext filters the rule set (built-in plus any custom rules) down to
// the rules whose predicate matches, composes their dimension multipliers
// multiplicatively, and finally applies the criticality strictness factor to
// every dimension.
//
// Because composition is a product of positive multipliers, the final
// weights are independent of rule order. The adjustment log, however, is
// emitted strictly in rule-list order (built-ins first, then custom) so two
// runs over the same context produce byte-identical output.
func (e *Engine) ApplyContext(ctx schemas.ProjectContext, custom []catalog.ContextRule) schemas.ContextApplicationResult {
	ctx = Normalize(ctx)

	res := schemas.ContextApplicationResult{
		Context: ctx,
		Weights: make(map[schemas.Dimension]float64, 5),
	}
	for _, dim := range schemas.AllDimensions() {
		res.Weights[dim] = 1.0
	}

	rules := catalog.BuiltinRules()
	rules = append(rules, custom...)

	relaxed := make(map[string]bool)
	additional := make(map[string]bool)

	for _, rule := range rules {
		if rule.Matches == nil || !rule.Matches(ctx) {
			continue
		}
		res.MatchedRules = append(res.MatchedRules, rule.Name)
		for _, adj := range rule.Adjustments {
			before := res.Weights[adj.Dimension]
			after := before * adj.Multiplier
			res.Weights[adj.Dimension] = after
			res.Log = append(res.Log, schemas.AppliedAdjustment{
				RuleName:         rule.Name,
				WeightAdjustment: adj,
				Before:           before,
				After:            after,
			})
		}
		for _, id := range rule.Relax {
			relaxed[id] = true
		}
		for _, id := range rule.Add {
			additional[id] = true
		}
	}

	// Criticality strictness applies once, after every rule multiplier.
	res.StrictnessFactor = catalog.StrictnessFactor(ctx.Criticality)
	for _, dim := range schemas.AllDimensions() {
		res.Weights[dim] *= res.StrictnessFactor
	}

	res.RelaxedCriteria = sortedKeys(relaxed)
	res.AdditionalCriteria = sortedKeys(additional)

	e.log.Debug("context applied",
		zap.Int("matched_rules", len(res.MatchedRules)),
		zap.Float64("strictness", res.StrictnessFactor))
	return res
}

func sortedKeys(set map[string]bool) []string {
	if len(set) == 0 {
		return nil
	}
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
