// File: api/schemas/graph.go
package schemas

// EdgeType captures the semantic relation a cross-reference expresses.
type EdgeType string

// Relation types for dependency graph edges.
const (
	EdgeTypeReferences EdgeType = "references"
	EdgeTypeImplements EdgeType = "implements"
	EdgeTypeUses       EdgeType = "uses"
	EdgeTypeContains   EdgeType = "contains"
	EdgeTypeDependsOn  EdgeType = "depends-on"
	EdgeTypeAffects    EdgeType = "affects"
	EdgeTypeTriggers   EdgeType = "triggers"
)

// Node is one record's projection into the dependency graph.
type Node struct {
	ID         string         `json:"id"`
	Label      string         `json:"label"`
	Type       RecordType     `json:"type"`
	Properties map[string]any `json:"properties,omitempty"`
}

// Edge is a directed, typed reference between two nodes, identified by the
// external string ids of its endpoints.
type Edge struct {
	From   string   `json:"from"`
	To     string   `json:"to"`
	Type   EdgeType `json:"type"`
	Label  string   `json:"label,omitempty"`
	Weight float64  `json:"weight,omitempty"`
}

// BrokenReference is a cross-reference whose target id matches no known
// node. Broken references are reported as findings; they never become
// placeholder nodes and are never silently dropped.
type BrokenReference struct {
	FromID   string   `json:"from_id"`
	TargetID string   `json:"target_id"`
	Field    string   `json:"field"`
	EdgeType EdgeType `json:"edge_type"`
}

// CycleSeverity grades a circular dependency; shorter cycles couple records
// more tightly and rank higher.
type CycleSeverity string

// Severity grades for cycles.
const (
	CycleSeverityCritical CycleSeverity = "critical" // length <= 2
	CycleSeverityHigh     CycleSeverity = "high"     // length 3
	CycleSeverityMedium   CycleSeverity = "medium"   // length 4-5
	CycleSeverityLow      CycleSeverity = "low"      // length > 5
)

// CircularDependency is one minimal cycle found in the graph. NodeIDs lists
// the cycle members in traversal order, starting from the lexicographically
// smallest member so equal cycles always serialize identically.
type CircularDependency struct {
	NodeIDs   []string      `json:"node_ids"`
	Length    int           `json:"length"`
	EdgeTypes []EdgeType    `json:"edge_types"`
	Severity  CycleSeverity `json:"severity"`
}

// ImportanceBucket is the discrete grade derived from a node's rank score.
type ImportanceBucket string

// Importance buckets, highest first.
const (
	ImportanceCritical ImportanceBucket = "critical"
	ImportanceHigh     ImportanceBucket = "high"
	ImportanceMedium   ImportanceBucket = "medium"
	ImportanceLow      ImportanceBucket = "low"
)

// NodeImportance holds the structural-centrality measures for one node.
type NodeImportance struct {
	NodeID    string `json:"node_id"`
	InDegree  int    `json:"in_degree"`
	OutDegree int    `json:"out_degree"`
	// RankScore comes from the iterative propagation pass (page-rank style).
	RankScore float64 `json:"rank_score"`
	// Centrality is a betweenness-like estimate of how often the node sits
	// on shortest paths between other nodes.
	Centrality float64          `json:"centrality"`
	Bucket     ImportanceBucket `json:"bucket"`
}

// GraphStats summarizes the graph's gross shape.
type GraphStats struct {
	NodeCount     int                `json:"node_count"`
	EdgeCount     int                `json:"edge_count"`
	NodesByType   map[RecordType]int `json:"nodes_by_type"`
	EdgesByType   map[EdgeType]int   `json:"edges_by_type"`
	AverageDegree float64            `json:"average_degree"`
}

// GraphAnalysisResult is the analyzer's full output for one graph.
type GraphAnalysisResult struct {
	Stats                GraphStats                `json:"stats"`
	CircularDependencies []CircularDependency      `json:"circular_dependencies"`
	Importance           map[string]NodeImportance `json:"importance"`
	IsolatedNodes        []string                  `json:"isolated_nodes"`
	BrokenReferences     []BrokenReference         `json:"broken_references,omitempty"`
	// TopologicalOrder is only present when the graph is acyclic.
	TopologicalOrder []string `json:"topological_order,omitempty"`
	// RankConverged is false when the importance iteration hit its cap
	// before reaching tolerance; the last computed scores are still used.
	RankConverged bool `json:"rank_converged"`
}

// ImpactEffort buckets the effort implied by an impacted-set size.
type ImpactEffort string

// Effort buckets for change impact, by total impacted nodes.
const (
	ImpactEffortSmall  ImpactEffort = "small"  // <= 3
	ImpactEffortMedium ImpactEffort = "medium" // <= 8
	ImpactEffortLarge  ImpactEffort = "large"  // <= 20
	ImpactEffortXLarge ImpactEffort = "xlarge" // > 20
)

// ChangeImpactAnalysis describes what changing one node would ripple into.
type ChangeImpactAnalysis struct {
	NodeID string `json:"node_id"`
	// Direct holds the immediate reverse-adjacency neighbors; Indirect the
	// rest of the reverse-reachable set.
	Direct   []string `json:"direct"`
	Indirect []string `json:"indirect"`
	// Levels groups the impacted set by BFS depth from the node, depth 1 first.
	Levels [][]string `json:"levels,omitempty"`
	// CriticalNodes are high-importance nodes inside the impacted set.
	CriticalNodes []string     `json:"critical_nodes,omitempty"`
	TotalImpacted int          `json:"total_impacted"`
	Effort        ImpactEffort `json:"effort"`
}
