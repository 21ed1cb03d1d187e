// File: internal/depgraph/builder.go
package depgraph

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/xkilldash9x/reqlens-cli/api/schemas"
)

// refField declares one cross-reference field on a record type and the
// semantic relation its edges carry. The builder is driven entirely by this
// table; adding a reference field is a table change, not code.
type refField struct {
	field    string
	edgeType schemas.EdgeType
}

// refFieldsByType maps each record type to its reference fields in a fixed
// order. Fields absent on a given record are simply skipped.
var refFieldsByType = map[schemas.RecordType][]refField{
	schemas.RecordTypeUseCase: {
		{"businessGoals", schemas.EdgeTypeImplements},
		{"requirements", schemas.EdgeTypeImplements},
		{"primaryActor", schemas.EdgeTypeUses},
		{"secondaryActors", schemas.EdgeTypeUses},
		{"dataRequirements", schemas.EdgeTypeUses},
		{"businessRules", schemas.EdgeTypeReferences},
		{"screens", schemas.EdgeTypeReferences},
		{"dependsOn", schemas.EdgeTypeDependsOn},
	},
	schemas.RecordTypeBusinessRequirement: {
		{"businessGoals", schemas.EdgeTypeImplements},
		{"useCases", schemas.EdgeTypeReferences},
		{"dependsOn", schemas.EdgeTypeDependsOn},
	},
	schemas.RecordTypeActor: {
		{"useCases", schemas.EdgeTypeReferences},
	},
	schemas.RecordTypeBusinessGoal: {
		{"dependsOn", schemas.EdgeTypeDependsOn},
	},
	schemas.RecordTypeBusinessRule: {
		{"appliesTo", schemas.EdgeTypeAffects},
	},
	schemas.RecordTypeSecurityPolicy: {
		{"affects", schemas.EdgeTypeAffects},
	},
	schemas.RecordTypeDataRequirement: {
		{"validationRules", schemas.EdgeTypeReferences},
	},
	schemas.RecordTypeScreen: {
		{"useCases", schemas.EdgeTypeReferences},
		{"validationRules", schemas.EdgeTypeUses},
	},
	schemas.RecordTypeScreenFlow: {
		{"screens", schemas.EdgeTypeContains},
	},
	schemas.RecordTypeValidationRule: {
		{"appliesTo", schemas.EdgeTypeAffects},
	},
}

// stepRefFields are the reference fields recognized inside use-case steps.
var stepRefFields = []refField{
	{"actor", schemas.EdgeTypeTriggers},
	{"data", schemas.EdgeTypeUses},
	{"screen", schemas.EdgeTypeReferences},
}

// Builder turns record collections into a dependency graph.
type Builder struct {
	log *zap.Logger
}

// NewBuilder creates a Builder.
func NewBuilder(logger *zap.Logger) *Builder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Builder{log: logger.Named("depgraph")}
}

// Build creates one node per record (including records of types the
// assessor does not recognize, which then surface as isolated nodes), one
// node per use-case step, and one typed edge per resolvable cross-reference.
//
// Unresolvable references are never dropped silently and never materialized
// as placeholder nodes: each one is reported as a BrokenReference finding.
func (b *Builder) Build(records map[schemas.RecordType][]schemas.Record) (*Graph, []schemas.BrokenReference) {
	g := newGraph()
	var broken []schemas.BrokenReference

	types := orderedTypes(records)

	// First pass: every record becomes a node before any edge is resolved,
	// so reference resolution is independent of type ordering.
	for _, rt := range types {
		for _, rec := range records[rt] {
			if rec.ID == "" {
				b.log.Warn("record without id skipped from graph", zap.String("type", string(rt)))
				continue
			}
			g.addNode(schemas.Node{ID: rec.ID, Label: rec.Name, Type: rt})
			if rt == schemas.RecordTypeUseCase {
				b.addStepNodes(g, rec)
			}
		}
	}

	// Second pass: edges.
	for _, rt := range types {
		for _, rec := range records[rt] {
			if rec.ID == "" {
				continue
			}
			from := g.index[rec.ID]
			for _, rf := range refFieldsByType[rt] {
				refs, ok := rec.RefsField(rf.field)
				if !ok {
					continue
				}
				for _, ref := range refs {
					to, exists := g.index[ref.ID]
					if !exists {
						broken = append(broken, schemas.BrokenReference{
							FromID:   rec.ID,
							TargetID: ref.ID,
							Field:    rf.field,
							EdgeType: rf.edgeType,
						})
						continue
					}
					g.addEdge(from, to, rf.edgeType, ref.Label, 0)
				}
			}
			if rt == schemas.RecordTypeUseCase {
				broken = append(broken, b.addStepEdges(g, rec)...)
			}
		}
	}

	b.log.Info("dependency graph built",
		zap.Int("nodes", g.NodeCount()),
		zap.Int("edges", g.EdgeCount()),
		zap.Int("broken_references", len(broken)))
	return g, broken
}

// stepNodeID derives the synthetic id of a use-case step node.
func stepNodeID(useCaseID string, n int) string {
	return fmt.Sprintf("%s:step-%d", useCaseID, n)
}

// addStepNodes creates one node per use-case step, contained by the use
// case. Steps have no ids of their own in the source files, so they get
// synthetic, position-derived ids.
func (b *Builder) addStepNodes(g *Graph, rec schemas.Record) {
	steps, ok := rec.MapListField("steps")
	if !ok {
		return
	}
	for i, step := range steps {
		action, _ := step["action"].(string)
		g.addNode(schemas.Node{
			ID:    stepNodeID(rec.ID, i+1),
			Label: action,
			Type:  schemas.RecordTypeUseCaseStep,
		})
	}
}

// addStepEdges links each use case to its step nodes and each step to the
// records it references.
func (b *Builder) addStepEdges(g *Graph, rec schemas.Record) []schemas.BrokenReference {
	steps, ok := rec.MapListField("steps")
	if !ok {
		return nil
	}
	var broken []schemas.BrokenReference
	from := g.index[rec.ID]
	for i, step := range steps {
		sid := stepNodeID(rec.ID, i+1)
		si := g.index[sid]
		g.addEdge(from, si, schemas.EdgeTypeContains, "", 0)
		for _, rf := range stepRefFields {
			raw, ok := step[rf.field]
			if !ok {
				continue
			}
			stepRec := schemas.Record{ID: sid, Fields: map[string]any{rf.field: raw}}
			refs, _ := stepRec.RefsField(rf.field)
			for _, ref := range refs {
				to, exists := g.index[ref.ID]
				if !exists {
					broken = append(broken, schemas.BrokenReference{
						FromID:   sid,
						TargetID: ref.ID,
						Field:    rf.field,
						EdgeType: rf.edgeType,
					})
					continue
				}
				g.addEdge(si, to, rf.edgeType, ref.Label, 0)
			}
		}
	}
	return broken
}

// orderedTypes mirrors the assessor's type ordering: known types in
// canonical order, unknown ones sorted, so graph construction is
// reproducible.
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
