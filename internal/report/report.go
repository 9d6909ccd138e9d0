// Package report renders analysis results, either as the line-oriented text
// report (description, then one "0 i d" line per vertex) or as JSON.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/graphkind/bellmanford"
	"github.com/katalvlaran/graphkind/digraph"
)

// ErrUnknownFormat reports an output format no writer handles.
var ErrUnknownFormat = errors.New("report: unknown format")

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// NoPathsText is printed instead of distances when a negative cycle is
// reachable from vertex 0.
const NoPathsText = "No shortest paths can be found."

var descriptions = map[digraph.Category]string{
	digraph.NegativeCycle: "A graph with negative weight cycles.",
	digraph.NegativeEdge:  "A graph with negative weight edges but no negative weight cycles.",
	digraph.NonNegative:   "A graph with no negative weight edges.",
	digraph.DAG:           "A directed acyclic graph.",
}

// Description returns the human-readable sentence for c.
func Description(c digraph.Category) string {
	if d, ok := descriptions[c]; ok {
		return d
	}

	return c.String()
}

// Result is the outcome of analysing one graph.
type Result struct {
	Name      string                 // input name, usually a file path
	Category  digraph.Category       // classification
	Distances []bellmanford.Distance // nil when HasPaths is false
	HasPaths  bool                   // false on a reachable negative cycle
}

// Analyze runs both analyses on g.
func Analyze(name string, g *digraph.Graph) Result {
	dist, ok := g.ShortestPaths()

	return Result{
		Name:      name,
		Category:  g.Classify(),
		Distances: dist,
		HasPaths:  ok,
	}
}

// Write renders results in the named format.
func Write(w io.Writer, format string, results []Result) error {
	switch format {
	case FormatText:
		return WriteText(w, results)
	case FormatJSON:
		return WriteJSON(w, results)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// WriteText prints each result as its category description followed by
// "0 i d" per vertex i ≥ 1, or by NoPathsText. With more than one result
// every block is preceded by a "==> name <==" header.
func WriteText(w io.Writer, results []Result) error {
	headers := len(results) > 1
	for i, r := range results {
		if headers {
			if i > 0 {
				if _, err := fmt.Fprintln(w); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintf(w, "==> %s <==\n", r.Name); err != nil {
				return err
			}
		}
		if err := writeOne(w, r); err != nil {
			return err
		}
	}

	return nil
}

func writeOne(w io.Writer, r Result) error {
	if _, err := fmt.Fprintln(w, Description(r.Category)); err != nil {
		return err
	}
	if !r.HasPaths {
		_, err := fmt.Fprintln(w, NoPathsText)
		return err
	}
	for i := 1; i < len(r.Distances); i++ {
		if _, err := fmt.Fprintf(w, "%d %d %s\n", bellmanford.Source, i, r.Distances[i]); err != nil {
			return err
		}
	}

	return nil
}

// jsonResult is the wire shape of a Result. Distances are exact decimal
// numbers, possibly beyond the int64 range; unreachable ones are null.
type jsonResult struct {
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	HasPaths    bool     `json:"has_shortest_paths"`
	Distances   []*json.Number `json:"distances,omitempty"`
}

// WriteJSON writes results as an indented JSON array.
func WriteJSON(w io.Writer, results []Result) error {
	out := make([]jsonResult, len(results))
	for i, r := range results {
		jr := jsonResult{
			Name:        r.Name,
			Category:    r.Category.String(),
			Description: Description(r.Category),
			HasPaths:    r.HasPaths,
		}
		if r.HasPaths {
			jr.Distances = make([]*json.Number, len(r.Distances))
			for v, d := range r.Distances {
				if d.IsFinite() {
					num := json.Number(d.String())
					jr.Distances[v] = &num
				}
			}
		}
		out[i] = jr
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(out)
}
