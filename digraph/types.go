package digraph

// Category is the classification outcome of a Graph.
type Category int

const (
	// NegativeCycle: a negative-weight cycle is reachable from vertex 0.
	NegativeCycle Category = iota
	// NegativeEdge: negative weights exist but form no reachable negative cycle.
	NegativeEdge
	// NonNegative: all weights are ≥ 0 and a cycle is reachable from vertex 0.
	NonNegative
	// DAG: all weights are ≥ 0 and no cycle is reachable from vertex 0.
	DAG
)

// categoryNames holds the stable identifiers used in logs and JSON output.
var categoryNames = [...]string{
	NegativeCycle: "NEGATIVE_CYCLE",
	NegativeEdge:  "NEGATIVE_EDGE",
	NonNegative:   "ALL_NON_NEGATIVE",
	DAG:           "DAG",
}

// String returns the stable identifier of c.
func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return "UNKNOWN"
	}

	return categoryNames[c]
}

// Categories lists every category in declaration order.
func Categories() []Category {
	return []Category{NegativeCycle, NegativeEdge, NonNegative, DAG}
}
