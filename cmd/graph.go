// -- cmd/graph.go --
package cmd

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/xkilldash9x/reqlens-cli/internal/depgraph"
	"github.com/xkilldash9x/reqlens-cli/internal/loader"
	"github.com/xkilldash9x/reqlens-cli/internal/observability"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var graphFlags struct {
	impact string
	output string
}

var graphCmd = &cobra.Command{
	Use:   "graph <records-dir>",
	Short: "Build and analyze the record dependency graph",
	Long: `Graph builds the dependency graph across every record under the given
directory and reports cycles, importance rankings, broken references, and
isolated elements. With --impact it additionally traces the change blast
radius of a single node.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log := observability.GetLogger().Named("graph")

		res, err := loader.New(log).Load(args[0])
		if err != nil {
			return fmt.Errorf("loading records from %s: %w", args[0], err)
		}

		builder := depgraph.NewBuilder(observability.GetLogger())
		analyzer := depgraph.NewAnalyzer(observability.GetLogger())
		g, broken := builder.Build(res.Records)
		analysis := analyzer.Analyze(g, broken)
		log.Info("Graph analyzed",
			zap.Int("nodes", analysis.Stats.NodeCount),
			zap.Int("edges", analysis.Stats.EdgeCount),
			zap.Int("cycles", len(analysis.CircularDependencies)))

		var payload any = analysis
		if graphFlags.impact != "" {
			impact, err := analyzer.ImpactOf(g, graphFlags.impact, analysis)
			if err != nil {
				return err
			}
			payload = impact
		}
		return printEncoded(cmd, payload, graphFlags.output)
	},
}

func init() {
	graphCmd.Flags().StringVar(&graphFlags.impact, "impact", "", "node id to run change-impact analysis for")
	graphCmd.Flags().StringVarP(&graphFlags.output, "output", "o", "json", "output format (json, yaml)")
	rootCmd.AddCommand(graphCmd)
}

// printEncoded writes v to the command's stdout in the requested format.
func printEncoded(cmd *cobra.Command, v any, format string) error {
	var (
		data []byte
		err  error
	)
	switch format {
	case "yaml":
		data, err = yaml.Marshal(v)
	case "json", "":
		data, err = json.MarshalIndent(v, "", "  ")
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
