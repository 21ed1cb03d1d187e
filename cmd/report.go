// -- cmd/report.go --
package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/xkilldash9x/reqlens-cli/api/schemas"
	"github.com/xkilldash9x/reqlens-cli/internal/dashboard"
	"github.com/xkilldash9x/reqlens-cli/internal/history"
	"github.com/xkilldash9x/reqlens-cli/internal/observability"
)

var reportFlags struct {
	historyPath string
	output      string
}

var reportCmd = &cobra.Command{
	Use:   "report <records-dir>",
	Short: "Produce the full health report, with trend alerts against history",
	Long: `Report runs the complete assessment pipeline, records the snapshot in
the local history store, and raises alerts for health regressions, new severe
dependency cycles, and weak categories relative to the previous snapshot.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log := observability.GetLogger().Named("report")

		snapshot, orch, err := runPipeline(args[0], log)
		if err != nil {
			return err
		}

		var previous *schemas.Snapshot
		historyPath := reportFlags.historyPath
		if historyPath == "" && cfg.History.Enabled {
			historyPath = cfg.History.Path
		}
		if historyPath != "" {
			previous, err = recordSnapshot(cmd.Context(), historyPath, snapshot, log)
			if err != nil {
				return err
			}
		}

		alerts := orch.Dashboard().GenerateAlerts(snapshot, previous)
		for _, a := range alerts {
			log.Warn("Health alert",
				zap.String("severity", string(a.Severity)),
				zap.String("message", a.Message))
		}

		format := reportFlags.output
		if format == "" {
			format = cfg.Output.Format
		}
		out, err := orch.Dashboard().Export(snapshot, dashboard.ExportFormat(format))
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		if format == string(dashboard.FormatMarkdown) && len(alerts) > 0 {
			fmt.Fprintln(cmd.OutOrStdout(), renderAlerts(alerts))
		}
		return nil
	},
}

func init() {
	reportCmd.Flags().StringVar(&reportFlags.historyPath, "history", "", "path to the snapshot history database (overrides config)")
	reportCmd.Flags().StringVarP(&reportFlags.output, "output", "o", "", "output format (json, yaml, markdown)")
	// The report command shares the assess context flags.
	reportCmd.Flags().AddFlagSet(assessCmd.Flags())
	rootCmd.AddCommand(reportCmd)
}

// recordSnapshot appends snap to the history store at path and returns the
// previous snapshot for the same project, or nil when this is the first run.
func recordSnapshot(ctx context.Context, path string, snap schemas.Snapshot, log *zap.Logger) (*schemas.Snapshot, error) {
	store, err := history.Open(path, observability.GetLogger())
	if err != nil {
		return nil, fmt.Errorf("opening history store %s: %w", path, err)
	}
	defer store.Close()

	var previous *schemas.Snapshot
	prev, err := store.Latest(ctx, snap.ProjectName)
	switch {
	case err == nil:
		previous = &prev
	case errors.Is(err, history.ErrNoSnapshots):
		log.Info("No previous snapshot on record", zap.String("project", snap.ProjectName))
	default:
		return nil, err
	}

	if err := store.Append(ctx, snap); err != nil {
		return nil, fmt.Errorf("recording snapshot: %w", err)
	}
	return previous, nil
}

func renderAlerts(alerts []schemas.Alert) string {
	out := "## Alerts\n\n"
	for _, a := range alerts {
		out += fmt.Sprintf("- **%s**: %s\n", a.Severity, a.Message)
	}
	return out
}
