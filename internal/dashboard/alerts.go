// File: internal/dashboard/alerts.go
package dashboard

import (
	"fmt"

	"github.com/xkilldash9x/reqlens-cli/api/schemas"
)

// Alert thresholds.
const (
	regressionWarning  = 5.0  // overall-score drop that raises a warning
	regressionCritical = 15.0 // overall-score drop that raises a critical alert
	categoryFloor      = 40.0 // category score considered critically low
)

// GenerateAlerts compares a snapshot against fixed thresholds and, when a
// prior snapshot is supplied, against the previous run. Alerts come out in a
// fixed order: regressions first, then new cycles, then low categories, then
// broken-reference notices.
func (d *Dashboard) GenerateAlerts(current schemas.Snapshot, previous *schemas.Snapshot) []schemas.Alert {
	var alerts []schemas.Alert

	if previous != nil {
		drop := previous.Health.Overall - current.Health.Overall
		if drop >= regressionCritical {
			alerts = append(alerts, schemas.Alert{
				Severity: schemas.AlertSeverityCritical,
				Message:  fmt.Sprintf("Health score regressed by %.1f points since the last assessment.", drop),
				Current:  current.Health.Overall,
				Previous: previous.Health.Overall,
			})
		} else if drop >= regressionWarning {
			alerts = append(alerts, schemas.Alert{
				Severity: schemas.AlertSeverityWarning,
				Message:  fmt.Sprintf("Health score regressed by %.1f points since the last assessment.", drop),
				Current:  current.Health.Overall,
				Previous: previous.Health.Overall,
			})
		}

		prevSevere := severeCycleCount(previous.Graph)
		curSevere := severeCycleCount(current.Graph)
		if curSevere > prevSevere {
			alerts = append(alerts, schemas.Alert{
				Severity: schemas.AlertSeverityCritical,
				Message: fmt.Sprintf("%d new high-severity circular dependencies appeared since the last assessment.",
					curSevere-prevSevere),
				Current:  float64(curSevere),
				Previous: float64(prevSevere),
			})
		}
	}

	for _, cat := range healthCategories {
		if v := current.Health.Categories[cat]; v < categoryFloor {
			alerts = append(alerts, schemas.Alert{
				Severity: schemas.AlertSeverityWarning,
				Category: cat,
				Message:  fmt.Sprintf("Category %s is critically low at %.0f.", cat, v),
				Current:  v,
			})
		}
	}

	if n := len(current.Graph.BrokenReferences); n > 0 {
		alerts = append(alerts, schemas.Alert{
			Severity: schemas.AlertSeverityInfo,
			Message:  fmt.Sprintf("%d cross-references point at records that do not exist.", n),
			Current:  float64(n),
		})
	}
	return alerts
}

func severeCycleCount(g schemas.GraphAnalysisResult) int {
	var n int
	for _, c := range g.CircularDependencies {
		if c.Severity == schemas.CycleSeverityCritical || c.Severity == schemas.CycleSeverityHigh {
			n++
		}
	}
	return n
}
