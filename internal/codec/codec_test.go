package codec_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphkind/digraph"
	"github.com/katalvlaran/graphkind/internal/codec"
	"github.com/katalvlaran/graphkind/matrix"
)

const scenarioB = `4 5
0 1 2
0 2 4
1 2 -3
1 3 2
2 3 3
`

const scenarioBTOML = `
vertices = 4

[[edges]]
from = 0
to = 1
weight = 2

[[edges]]
from = 0
to = 2
weight = 4

[[edges]]
from = 1
to = 2
weight = -3

[[edges]]
from = 1
to = 3
weight = 2

[[edges]]
from = 2
to = 3
weight = 3
`

const scenarioBYAML = `
vertices: 4
edges:
  - {from: 0, to: 1, weight: 2}
  - {from: 0, to: 2, weight: 4}
  - {from: 1, to: 2, weight: -3}
  - {from: 1, to: 3, weight: 2}
  - {from: 2, to: 3, weight: 3}
`

var scenarioBDoc = &codec.Document{
	Vertices: 4,
	Edges: []codec.Edge{
		{From: 0, To: 1, Weight: 2},
		{From: 0, To: 2, Weight: 4},
		{From: 1, To: 2, Weight: -3},
		{From: 1, To: 3, Weight: 2},
		{From: 2, To: 3, Weight: 3},
	},
}

func TestDecode_AllFormats(t *testing.T) {
	cases := []struct {
		format codec.Format
		input  string
	}{
		{codec.FormatText, scenarioB},
		{codec.FormatTOML, scenarioBTOML},
		{codec.FormatYAML, scenarioBYAML},
	}
	for _, tc := range cases {
		t.Run(string(tc.format), func(t *testing.T) {
			doc, err := codec.Decode(strings.NewReader(tc.input), tc.format)
			require.NoError(t, err)
			assert.Equal(t, scenarioBDoc, doc)

			g, err := doc.Build()
			require.NoError(t, err)
			assert.Equal(t, digraph.NegativeEdge, g.Classify())
		})
	}
}

func TestDecodeText_CommentsAndBlankLines(t *testing.T) {
	in := "# diamond\n\n4 4\n0 1 1\n\n0 2 2\n# tail\n1 3 4\n2 3 3\n\n"
	doc, err := codec.Decode(strings.NewReader(in), codec.FormatText)
	require.NoError(t, err)
	assert.Equal(t, 4, doc.Vertices)
	assert.Len(t, doc.Edges, 4)
}

func TestDecodeText_Errors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  error
	}{
		{"empty", "", codec.ErrSyntax},
		{"short header", "3\n", codec.ErrSyntax},
		{"negative edge count", "3 -1\n", codec.ErrSyntax},
		{"bad token", "2 1\n0 x 1\n", codec.ErrSyntax},
		{"two fields", "2 1\n0 1\n", codec.ErrSyntax},
		{"float weight", "2 1\n0 1 1.5\n", codec.ErrSyntax},
		{"too few edges", "3 2\n0 1 1\n", codec.ErrEdgeCount},
		{"too many edges", "3 1\n0 1 1\n1 2 1\n", codec.ErrEdgeCount},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := codec.Decode(strings.NewReader(tc.input), codec.FormatText)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestDecode_UnknownKeys(t *testing.T) {
	_, err := codec.Decode(strings.NewReader("vertices = 2\ncolour = \"red\"\n"), codec.FormatTOML)
	assert.ErrorIs(t, err, codec.ErrSyntax)

	_, err = codec.Decode(strings.NewReader("vertices: 2\ncolour: red\n"), codec.FormatYAML)
	assert.ErrorIs(t, err, codec.ErrSyntax)

	_, err = codec.Decode(strings.NewReader(""), codec.FormatYAML)
	assert.ErrorIs(t, err, codec.ErrSyntax)
}

func TestDecode_UnknownFormat(t *testing.T) {
	_, err := codec.Decode(strings.NewReader(""), codec.Format("xml"))
	assert.ErrorIs(t, err, codec.ErrUnknownFormat)
}

func TestBuild_Errors(t *testing.T) {
	dup := &codec.Document{Vertices: 3, Edges: []codec.Edge{
		{From: 0, To: 1, Weight: 1},
		{From: 0, To: 1, Weight: 1},
	}}
	_, err := dup.Build()
	assert.ErrorIs(t, err, matrix.ErrDuplicateEdge)
	assert.Contains(t, err.Error(), "edge #2")

	oob := &codec.Document{Vertices: 2, Edges: []codec.Edge{{From: 0, To: 2, Weight: 1}}}
	_, err = oob.Build()
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)

	empty := &codec.Document{}
	_, err = empty.Build()
	assert.ErrorIs(t, err, matrix.ErrBadShape)
}

// TestBuild_HugeHeader rejects a vertex count whose matrix cannot be
// addressed instead of crashing on allocation.
func TestBuild_HugeHeader(t *testing.T) {
	doc, err := codec.Decode(strings.NewReader("2147483647 0\n"), codec.FormatText)
	require.NoError(t, err)

	g, err := doc.Build()
	assert.ErrorIs(t, err, matrix.ErrBadShape)
	assert.Nil(t, g)
}

func TestFormatFromPath(t *testing.T) {
	assert.Equal(t, codec.FormatText, codec.FormatFromPath("input.txt"))
	assert.Equal(t, codec.FormatText, codec.FormatFromPath("graph"))
	assert.Equal(t, codec.FormatTOML, codec.FormatFromPath("g.TOML"))
	assert.Equal(t, codec.FormatYAML, codec.FormatFromPath("g.yml"))
	assert.Equal(t, codec.FormatYAML, codec.FormatFromPath("dir/g.yaml"))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	for name, body := range map[string]string{
		"b.txt":  scenarioB,
		"b.toml": scenarioBTOML,
		"b.yaml": scenarioBYAML,
	} {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

		g, err := codec.Load(path)
		require.NoError(t, err, name)
		assert.Equal(t, 4, g.Order(), name)
	}

	_, err := codec.Load(filepath.Join(dir, "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.txt")
	require.NoError(t, os.WriteFile(bad, []byte("2 1\n0 0 1\n"), 0o600))
	_, err = codec.Load(bad)
	assert.ErrorIs(t, err, matrix.ErrDuplicateEdge)
	assert.Contains(t, err.Error(), bad)
}
