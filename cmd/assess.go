// -- cmd/assess.go --
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/xkilldash9x/reqlens-cli/api/schemas"
	"github.com/xkilldash9x/reqlens-cli/internal/dashboard"
	"github.com/xkilldash9x/reqlens-cli/internal/loader"
	"github.com/xkilldash9x/reqlens-cli/internal/observability"
	"github.com/xkilldash9x/reqlens-cli/internal/orchestrator"
)

var assessFlags struct {
	project     string
	domain      string
	stage       string
	teamSize    string
	criticality string
	tags        []string
	output      string
}

var assessCmd = &cobra.Command{
	Use:   "assess <records-dir>",
	Short: "Assess the maturity of a directory of requirement records",
	Long: `Assess loads every requirement record under the given directory,
scores each element against the maturity criteria catalog, applies the
project context, and prints the resulting snapshot.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log := observability.GetLogger().Named("assess")

		snapshot, orch, err := runPipeline(args[0], log)
		if err != nil {
			return err
		}

		format := assessFlags.output
		if format == "" {
			format = cfg.Output.Format
		}
		out, err := orch.Dashboard().Export(snapshot, dashboard.ExportFormat(format))
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	assessCmd.Flags().StringVar(&assessFlags.project, "project", "", "project name for the snapshot")
	assessCmd.Flags().StringVar(&assessFlags.domain, "domain", "", "project domain (fintech, healthcare, ecommerce, government, internal-tools, general)")
	assessCmd.Flags().StringVar(&assessFlags.stage, "stage", "", "delivery stage (prototype, mvp, growth, maintenance)")
	assessCmd.Flags().StringVar(&assessFlags.teamSize, "team-size", "", "team size (solo, small, medium, large)")
	assessCmd.Flags().StringVar(&assessFlags.criticality, "criticality", "", "system criticality (experimental, standard, business-critical, mission-critical)")
	assessCmd.Flags().StringSliceVar(&assessFlags.tags, "tag", nil, "project tag, repeatable (used for context inference)")
	assessCmd.Flags().StringVarP(&assessFlags.output, "output", "o", "", "output format (json, yaml, markdown)")
	rootCmd.AddCommand(assessCmd)
}

// declaredContext merges the configuration-file context with any flag
// overrides. Empty fields are filled later by inference.
func declaredContext() schemas.ProjectContext {
	pc := cfg.Context.ProjectContext()
	if assessFlags.project != "" {
		pc.ProjectName = assessFlags.project
	}
	if assessFlags.domain != "" {
		pc.Domain = schemas.Domain(assessFlags.domain)
	}
	if assessFlags.stage != "" {
		pc.Stage = schemas.Stage(assessFlags.stage)
	}
	if assessFlags.teamSize != "" {
		pc.TeamSize = schemas.TeamSize(assessFlags.teamSize)
	}
	if assessFlags.criticality != "" {
		pc.Criticality = schemas.Criticality(assessFlags.criticality)
	}
	if len(assessFlags.tags) > 0 {
		pc.Tags = append(pc.Tags, assessFlags.tags...)
	}
	return pc
}

// runPipeline loads records from dir and runs the full assessment.
func runPipeline(dir string, log *zap.Logger) (schemas.Snapshot, *orchestrator.Orchestrator, error) {
	res, err := loader.New(log).Load(dir)
	if err != nil {
		return schemas.Snapshot{}, nil, fmt.Errorf("loading records from %s: %w", dir, err)
	}
	total := 0
	for _, recs := range res.Records {
		total += len(recs)
	}
	if total == 0 {
		return schemas.Snapshot{}, nil, fmt.Errorf("no requirement records found under %s", dir)
	}
	log.Info("Records loaded",
		zap.Int("records", total),
		zap.Int("files", res.FilesLoaded),
		zap.Int("skipped", res.FilesSkipped))

	orch := orchestrator.New(observability.GetLogger())
	return orch.Run(res.Records, declaredContext()), orch, nil
}
