// File: internal/dashboard/export.go
package dashboard

import (
	"fmt"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"

	"github.com/xkilldash9x/reqlens-cli/api/schemas"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ExportFormat names a snapshot serialization.
type ExportFormat string

// Supported export formats.
const (
	FormatJSON     ExportFormat = "json"
	FormatYAML     ExportFormat = "yaml"
	FormatMarkdown ExportFormat = "markdown"
)

// Export serializes a snapshot. JSON and YAML are full-fidelity; markdown is
// a human-oriented summary.
func (d *Dashboard) Export(snap schemas.Snapshot, format ExportFormat) (string, error) {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(snap, "", "  ")
		if err != nil {
			return "", fmt.Errorf("export snapshot as json: %w", err)
		}
		return string(data), nil
	case FormatYAML:
		data, err := yaml.Marshal(snap)
		if err != nil {
			return "", fmt.Errorf("export snapshot as yaml: %w", err)
		}
		return string(data), nil
	case FormatMarkdown:
		return d.markdown(snap), nil
	default:
		return "", fmt.Errorf("unknown export format %q", format)
	}
}

func (d *Dashboard) markdown(snap schemas.Snapshot) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Requirements health: %s\n\n", snap.ProjectName)
	fmt.Fprintf(&b, "Assessed %s, overall health **%.0f/100**\n\n",
		snap.TakenAt.Format("2006-01-02 15:04 MST"), snap.Health.Overall)

	b.WriteString("| Category | Score |\n|---|---|\n")
	for _, cat := range healthCategories {
		fmt.Fprintf(&b, "| %s | %.0f |\n", cat, snap.Health.Categories[cat])
	}

	fmt.Fprintf(&b, "\n## Maturity\n\nProject level: **%s** (%d/%d elements at this level)\n\n",
		snap.Maturity.ProjectLevel,
		snap.Maturity.LevelDistribution[snap.Maturity.ProjectLevel],
		len(snap.Maturity.Elements))
	b.WriteString("| Dimension | Level | Completion |\n|---|---|---|\n")
	for _, dim := range schemas.AllDimensions() {
		dm := snap.Maturity.Dimensions[dim]
		fmt.Fprintf(&b, "| %s | %s | %.0f%% |\n", dim, dm.Level, dm.CompletionRate*100)
	}

	fmt.Fprintf(&b, "\n## Dependency graph\n\n%d nodes, %d edges, %d cycles, %d isolated, %d broken references\n",
		snap.Graph.Stats.NodeCount, snap.Graph.Stats.EdgeCount,
		len(snap.Graph.CircularDependencies), len(snap.Graph.IsolatedNodes),
		len(snap.Graph.BrokenReferences))

	if len(snap.Recommendations.TopPriority) > 0 {
		b.WriteString("\n## Top recommendations\n\n")
		for _, rec := range snap.Recommendations.TopPriority {
			fmt.Fprintf(&b, "- **[%s]** %s (%.0fh, %s)\n", rec.Priority, rec.Title,
				rec.Effort.Hours, rec.Effort.Complexity)
		}
	}
	if len(snap.Recommendations.QuickWins) > 0 {
		b.WriteString("\n## Quick wins\n\n")
		for _, rec := range snap.Recommendations.QuickWins {
			fmt.Fprintf(&b, "- %s (%.0fh)\n", rec.Title, rec.Effort.Hours)
		}
	}
	return b.String()
}
