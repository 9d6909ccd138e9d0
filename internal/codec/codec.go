// Package codec reads graph descriptions into a Document and builds a
// *digraph.Graph from it.
//
// Three encodings carry the same content, a vertex count plus a list of
// directed weighted edges:
//
//	text  first line "V E", then E lines "from to weight"
//	toml  vertices = V, then [[edges]] tables with from/to/weight
//	yaml  vertices: V, then edges: a list of {from, to, weight}
//
// The format is picked from the file extension; anything unknown is text.
package codec

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/graphkind/digraph"
)

var (
	// ErrSyntax reports malformed input: bad tokens, wrong field counts or
	// unknown keys.
	ErrSyntax = errors.New("codec: syntax error")

	// ErrEdgeCount reports a text document whose edge lines do not match the
	// declared count.
	ErrEdgeCount = errors.New("codec: edge count mismatch")

	// ErrUnknownFormat reports a Format value no decoder handles.
	ErrUnknownFormat = errors.New("codec: unknown format")
)

// Format names an input encoding.
type Format string

const (
	FormatText Format = "text"
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// Edge is one directed, weighted edge of a Document.
type Edge struct {
	From   int   `toml:"from" yaml:"from" json:"from"`
	To     int   `toml:"to" yaml:"to" json:"to"`
	Weight int64 `toml:"weight" yaml:"weight" json:"weight"`
}

// Document is the decoded, not yet validated, description of a graph.
type Document struct {
	Vertices int    `toml:"vertices" yaml:"vertices" json:"vertices"`
	Edges    []Edge `toml:"edges" yaml:"edges" json:"edges"`
}

// Build turns d into a graph. Duplicate or out-of-range edges are reported
// with their position in the document.
func (d *Document) Build() (*digraph.Graph, error) {
	g, err := digraph.New(d.Vertices)
	if err != nil {
		return nil, fmt.Errorf("codec: Build: %w", err)
	}
	for i, e := range d.Edges {
		if err = g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, fmt.Errorf("codec: Build: edge #%d: %w", i+1, err)
		}
	}

	return g, nil
}

// FormatFromPath picks a Format from the file extension.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatText
	}
}

// Decode reads a Document in the given format.
func Decode(r io.Reader, f Format) (*Document, error) {
	switch f {
	case FormatText:
		return decodeText(r)
	case FormatTOML:
		return decodeTOML(r)
	case FormatYAML:
		return decodeYAML(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}

// Load opens path, decodes it by extension and builds the graph.
func Load(path string) (*digraph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	doc, err := Decode(f, FormatFromPath(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	g, err := doc.Build()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}
