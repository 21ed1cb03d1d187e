// File: internal/orchestrator/orchestrator.go
//
// The orchestrator wires the engine components into the full assessment
// pipeline: records -> {assessor, graph builder} -> context engine ->
// graph analyzer -> recommendation engine -> dashboard snapshot. It owns no
// logic of its own beyond sequencing.
package orchestrator

import (
	"go.uber.org/zap"

	"github.com/xkilldash9x/reqlens-cli/api/schemas"
	"github.com/xkilldash9x/reqlens-cli/internal/assessor"
	"github.com/xkilldash9x/reqlens-cli/internal/contextengine"
	"github.com/xkilldash9x/reqlens-cli/internal/dashboard"
	"github.com/xkilldash9x/reqlens-cli/internal/depgraph"
	"github.com/xkilldash9x/reqlens-cli/internal/recommend"
)

// Orchestrator runs the full assessment pipeline over one record snapshot.
type Orchestrator struct {
	assessor  *assessor.Assessor
	ctxEngine *contextengine.Engine
	builder   *depgraph.Builder
	analyzer  *depgraph.Analyzer
	recommend *recommend.Engine
	dashboard *dashboard.Dashboard
	log       *zap.Logger
}

// New creates an Orchestrator with all engine components.
func New(logger *zap.Logger) *Orchestrator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Orchestrator{
		assessor:  assessor.New(logger),
		ctxEngine: contextengine.New(logger),
		builder:   depgraph.NewBuilder(logger),
		analyzer:  depgraph.NewAnalyzer(logger),
		recommend: recommend.New(logger),
		dashboard: dashboard.New(logger),
		log:       logger.Named("orchestrator"),
	}
}

// Run executes one complete assessment. The supplied context is completed by
// inference (explicit fields always win), applied to the rule catalog, and
// its relax/add sets feed the context-aware maturity evaluation. The whole
// pipeline is a pure function of its inputs except for the snapshot's id and
// timestamp.
func (o *Orchestrator) Run(records map[schemas.RecordType][]schemas.Record, declared schemas.ProjectContext) schemas.Snapshot {
	ctx := contextengine.InferContext(declared)
	ctxResult := o.ctxEngine.ApplyContext(ctx, nil)

	override := assessor.OverrideFromContext(ctxResult)
	maturity := o.assessor.AssessProjectInContext(records, override)

	graph, broken := o.builder.Build(records)
	analysis := o.analyzer.Analyze(graph, broken)

	recs := o.recommend.Generate(maturity, ctxResult, analysis)

	snap := o.dashboard.CreateSnapshot(ctx.ProjectName, maturity, ctxResult, analysis, recs)
	o.log.Info("assessment complete",
		zap.String("project", ctx.ProjectName),
		zap.String("level", maturity.ProjectLevel.String()),
		zap.Float64("health", snap.Health.Overall),
		zap.Int("recommendations", len(recs.Recommendations)))
	return snap
}

// Dashboard exposes the dashboard component for alert generation and export.
func (o *Orchestrator) Dashboard() *dashboard.Dashboard { return o.dashboard }

// Builder exposes the graph builder for graph-only commands.
func (o *Orchestrator) Builder() *depgraph.Builder { return o.builder }

// Analyzer exposes the graph analyzer for graph-only commands.
func (o *Orchestrator) Analyzer() *depgraph.Analyzer { return o.analyzer }
