// File: internal/recommend/engine.go
package recommend

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/xkilldash9x/reqlens-cli/api/schemas"
)

const (
	// topPriorityCount bounds the highlighted slice of the ranked list.
	topPriorityCount = 5
	// quickWinMaxHours is the effort ceiling for quick wins.
	quickWinMaxHours = 8.0
)

// idNamespace seeds the deterministic (uuid v5) recommendation ids: the same
// dedup key always yields the same id, which keeps full pipeline runs
// byte-identical for identical inputs.
var idNamespace = uuid.MustParse("8c9e3b52-24f1-45a0-9d8e-5b1c7a69f402")

// Engine merges maturity gaps and graph pathologies into one ranked,
// deduplicated action list.
type Engine struct {
	log *zap.Logger
}

// New creates a recommendation engine.
func New(logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{log: logger.Named("recommend")}
}

// Generate builds the recommendation set from the three analysis outputs.
// The result is deterministic: same inputs, same list, same order.
func (e *Engine) Generate(
	maturity schemas.ProjectMaturityAssessment,
	ctxResult schemas.ContextApplicationResult,
	graph schemas.GraphAnalysisResult,
) schemas.RecommendationSet {
	var recs []schemas.Recommendation
	seen := make(map[string]bool)

	add := func(key string, r schemas.Recommendation) {
		if seen[key] {
			return
		}
		seen[key] = true
		r.ID = uuid.NewSHA1(idNamespace, []byte(key)).String()
		r.QuickWin = r.Effort.Hours <= quickWinMaxHours && r.Effort.Complexity == schemas.ComplexityLow
		recs = append(recs, r)
	}

	e.fromUnmetCriteria(maturity, ctxResult, add)
	e.fromCycles(graph, add)
	e.fromBrokenReferences(graph, add)
	e.fromIsolatedNodes(graph, add)

	// Priority descending, effort ascending as tiebreak, title as the final
	// tiebreak so equal items still order identically across runs.
	sort.SliceStable(recs, func(i, j int) bool {
		pi, pj := schemas.PriorityRank(recs[i].Priority), schemas.PriorityRank(recs[j].Priority)
		if pi != pj {
			return pi < pj
		}
		if recs[i].Effort.Hours != recs[j].Effort.Hours {
			return recs[i].Effort.Hours < recs[j].Effort.Hours
		}
		return recs[i].Title < recs[j].Title
	})

	set := schemas.RecommendationSet{Recommendations: recs}
	if len(recs) > topPriorityCount {
		set.TopPriority = recs[:topPriorityCount]
	} else {
		set.TopPriority = recs
	}
	for _, r := range recs {
		if r.QuickWin {
			set.QuickWins = append(set.QuickWins, r)
		}
	}
	sort.SliceStable(set.QuickWins, func(i, j int) bool {
		if set.QuickWins[i].Effort.Hours != set.QuickWins[j].Effort.Hours {
			return set.QuickWins[i].Effort.Hours < set.QuickWins[j].Effort.Hours
		}
		return set.QuickWins[i].Title < set.QuickWins[j].Title
	})

	e.log.Debug("recommendations generated",
		zap.Int("total", len(recs)),
		zap.Int("quick_wins", len(set.QuickWins)))
	return set
}

// fromUnmetCriteria maps every unsatisfied, effectively-required criterion
// of every element to one recommendation, deduplicated by criterion id and
// element id. "Effectively required" honors the context's relax/add sets.
func (e *Engine) fromUnmetCriteria(
	maturity schemas.ProjectMaturityAssessment,
	ctxResult schemas.ContextApplicationResult,
	add func(string, schemas.Recommendation),
) {
	relaxed := toSet(ctxResult.RelaxedCriteria)
	additional := toSet(ctxResult.AdditionalCriteria)

	for _, el := range maturity.Elements {
		for _, dim := range schemas.AllDimensions() {
			dm, ok := el.Dimensions[dim]
			if !ok {
				continue
			}
			for _, ev := range dm.Evaluations {
				if ev.Satisfied {
					continue
				}
				required := ev.Criterion.Required
				if additional[ev.Criterion.ID] {
					required = true
				}
				if relaxed[ev.Criterion.ID] {
					required = false
				}
				if !required {
					continue
				}
				weight := ev.Criterion.Weight
				if w, ok := ctxResult.Weights[dim]; ok {
					weight *= w
				}
				add(fmt.Sprintf("criterion:%s:%s", ev.Criterion.ID, el.ElementID), schemas.Recommendation{
					Title:            fmt.Sprintf("%s on %q", ev.Criterion.Name, el.ElementName),
					Category:         schemas.CategoryUnmetCriterion,
					Priority:         criterionPriority(weight),
					Problem:          fmt.Sprintf("%s (%s): %s", ev.Criterion.Condition, ev.Criterion.ID, ev.Evidence),
					Effort:           criterionEffort(ev.Criterion.Level),
					AffectedElements: []string{el.ElementID},
				})
			}
		}
	}
}

func (e *Engine) fromCycles(graph schemas.GraphAnalysisResult, add func(string, schemas.Recommendation)) {
	for _, cycle := range graph.CircularDependencies {
		add("cycle:"+strings.Join(cycle.NodeIDs, ","), schemas.Recommendation{
			Title:    fmt.Sprintf("Break the %d-record reference cycle starting at %s", cycle.Length, cycle.NodeIDs[0]),
			Category: schemas.CategoryCircularDep,
			Priority: cyclePriority(cycle.Severity),
			Problem: fmt.Sprintf("Records %s reference each other in a cycle; none can change independently.",
				strings.Join(cycle.NodeIDs, " -> ")),
			Effort:           cycleEffort(cycle),
			AffectedElements: cycle.NodeIDs,
		})
	}
}

func (e *Engine) fromBrokenReferences(graph schemas.GraphAnalysisResult, add func(string, schemas.Recommendation)) {
	for _, br := range graph.BrokenReferences {
		add(fmt.Sprintf("broken:%s:%s:%s", br.FromID, br.TargetID, br.Field), schemas.Recommendation{
			Title:            fmt.Sprintf("Fix the dangling reference %s -> %s", br.FromID, br.TargetID),
			Category:         schemas.CategoryBrokenReference,
			Priority:         schemas.PriorityHigh,
			Problem:          fmt.Sprintf("Field %q of %s references %q, which does not exist.", br.Field, br.FromID, br.TargetID),
			Effort:           schemas.Effort{Hours: 1, Complexity: schemas.ComplexityLow},
			AffectedElements: []string{br.FromID},
		})
	}
}

func (e *Engine) fromIsolatedNodes(graph schemas.GraphAnalysisResult, add func(string, schemas.Recommendation)) {
	for _, id := range graph.IsolatedNodes {
		add("isolated:"+id, schemas.Recommendation{
			Title:            fmt.Sprintf("Connect the isolated record %s", id),
			Category:         schemas.CategoryIsolatedNode,
			Priority:         schemas.PriorityLow,
			Problem:          fmt.Sprintf("Record %s is referenced by nothing and references nothing; it may be dead weight or missing its links.", id),
			Effort:           schemas.Effort{Hours: 2, Complexity: schemas.ComplexityLow},
			AffectedElements: []string{id},
		})
	}
}

// criterionPriority maps the context-weighted criterion weight to a
// priority grade.
func criterionPriority(weighted float64) schemas.Priority {
	switch {
	case weighted >= 1.2:
		return schemas.PriorityCritical
	case weighted >= 0.9:
		return schemas.PriorityHigh
	case weighted >= 0.6:
		return schemas.PriorityMedium
	default:
		return schemas.PriorityLow
	}
}

// criterionEffort sizes the work to satisfy a criterion by its level:
// higher-level criteria ask for more substantial documentation.
func criterionEffort(level schemas.MaturityLevel) schemas.Effort {
	eff := schemas.Effort{Hours: 2 * float64(level)}
	switch {
	case level <= schemas.LevelRepeatable:
		eff.Complexity = schemas.ComplexityLow
	case level <= schemas.LevelManaged:
		eff.Complexity = schemas.ComplexityMedium
	default:
		eff.Complexity = schemas.ComplexityHigh
	}
	return eff
}

func cyclePriority(sev schemas.CycleSeverity) schemas.Priority {
	switch sev {
	case schemas.CycleSeverityCritical:
		return schemas.PriorityCritical
	case schemas.CycleSeverityHigh:
		return schemas.PriorityHigh
	case schemas.CycleSeverityMedium:
		return schemas.PriorityMedium
	default:
		return schemas.PriorityLow
	}
}

func cycleEffort(cycle schemas.CircularDependency) schemas.Effort {
	eff := schemas.Effort{Hours: 4 * float64(cycle.Length)}
	if eff.Hours > 40 {
		eff.Hours = 40
	}
	switch cycle.Severity {
	case schemas.CycleSeverityCritical, schemas.CycleSeverityHigh:
		eff.Complexity = schemas.ComplexityHigh
	default:
		eff.Complexity = schemas.ComplexityMedium
	}
	return eff
}

func toSet(ids []string) map[string]bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}
