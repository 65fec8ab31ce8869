// SPDX-License-Identifier: MIT

package graphfile_test

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/zerr"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/graphfile"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad_Testdata(t *testing.T) {
	g, err := graphfile.Load(filepath.Join("testdata", "stations.yaml"))
	require.NoError(t, err)
	assert.True(t, g.Weighted())
	assert.Equal(t, []string{"Alder", "Birch", "Cedar", "Dogwood", "Elm"}, g.Vertices())
	w, ok := g.EdgeWeight("Cedar", "Elm")
	assert.True(t, ok)
	assert.Equal(t, int64(6), w)

	h, err := graphfile.Load(filepath.Join("testdata", "houses.json"))
	require.NoError(t, err)
	assert.False(t, h.Weighted())
	assert.Equal(t, 5, h.VertexCount())
	nbrs, err := h.NeighborIDs("D")
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C", "E"}, nbrs)
	nbrs, err = h.NeighborIDs("E")
	require.NoError(t, err)
	assert.Empty(t, nbrs)
}

func TestDecode_Forms(t *testing.T) {
	tests := []struct {
		name   string
		format graphfile.Format
		doc    string
		want   core.Definition
	}{
		{
			name:   "json list",
			format: graphfile.JSON,
			doc:    `{"A": ["B"], "B": ["C"], "C": []}`,
			want:   core.Definition{"A": core.List("B"), "B": core.List("C"), "C": core.List()},
		},
		{
			name:   "json costs",
			format: graphfile.JSON,
			doc:    `{"A": {"B": 1, "C": 4}, "B": {"C": 1}, "C": {}}`,
			want: core.Definition{
				"A": core.Costs(map[string]int64{"B": 1, "C": 4}),
				"B": core.Costs(map[string]int64{"C": 1}),
				"C": core.Costs(map[string]int64{}),
			},
		},
		{
			name:   "yaml mixed with null",
			format: graphfile.YAML,
			doc:    "A: [B]\nB: {C: 2}\nC:\n",
			want: core.Definition{
				"A": core.List("B"),
				"B": core.Costs(map[string]int64{"C": 2}),
				"C": core.List(),
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def, err := graphfile.Decode([]byte(tt.doc), tt.format)
			require.NoError(t, err)
			assert.Equal(t, tt.want, def)
		})
	}
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name   string
		format graphfile.Format
		doc    string
		want   error
	}{
		{"json syntax", graphfile.JSON, `{"A": [`, graphfile.ErrParseFailed},
		{"json scalar entry", graphfile.JSON, `{"A": 3}`, graphfile.ErrMalformedEntry},
		{"json fractional cost", graphfile.JSON, `{"A": {"B": 1.5}}`, graphfile.ErrParseFailed},
		{"yaml syntax", graphfile.YAML, "A: [B\n", graphfile.ErrParseFailed},
		{"yaml scalar entry", graphfile.YAML, "A: nope\n", graphfile.ErrMalformedEntry},
		{"unknown format", graphfile.Format("toml"), "", graphfile.ErrUnsupportedFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := graphfile.Decode([]byte(tt.doc), tt.format)
			require.Error(t, err)
			require.ErrorIs(t, err, tt.want)
			require.ErrorContains(t, err, tt.want.Error())
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	_, err := graphfile.Load(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	require.ErrorIs(t, err, graphfile.ErrReadFailed)
	require.ErrorIs(t, err, fs.ErrNotExist)
	zErr, ok := err.(*zerr.Error)
	require.True(t, ok, "expected *zerr.Error, got %T", err)
	assert.Contains(t, zErr.Metadata(), "path")

	_, err = graphfile.Load(writeFile(t, "graph.toml", ""))
	require.ErrorIs(t, err, graphfile.ErrUnsupportedFormat)

	// Undeclared neighbors are caught by core.
	_, err = graphfile.Load(writeFile(t, "graph.yml", "A: [B]\n"))
	assert.ErrorIs(t, err, core.ErrInvalidGraph)

	// Options reach core.NewGraph.
	mixed := writeFile(t, "mixed.json", `{"A": ["B"], "B": {"A": 2}}`)
	_, err = graphfile.Load(mixed)
	require.NoError(t, err)
	_, err = graphfile.Load(mixed, core.WithStrict())
	assert.ErrorIs(t, err, core.ErrInvalidGraph)
}

func TestFormatOf(t *testing.T) {
	for path, want := range map[string]graphfile.Format{
		"a.json": graphfile.JSON,
		"a.JSON": graphfile.JSON,
		"a.yaml": graphfile.YAML,
		"b.yml":  graphfile.YAML,
	} {
		got, err := graphfile.FormatOf(path)
		require.NoError(t, err, path)
		assert.Equal(t, want, got, path)
	}
	_, err := graphfile.FormatOf("graph")
	assert.Error(t, err)
}

func TestEncode_RoundTrip(t *testing.T) {
	g, err := graphfile.Load(filepath.Join("testdata", "stations.yaml"))
	require.NoError(t, err)

	for _, format := range []graphfile.Format{graphfile.JSON, graphfile.YAML} {
		var buf bytes.Buffer
		require.NoError(t, graphfile.Encode(&buf, g.Definition(), format))
		def, err := graphfile.Decode(buf.Bytes(), format)
		require.NoError(t, err, "%s:\n%s", format, buf.String())
		again, err := core.NewGraph(def)
		require.NoError(t, err)
		assert.Equal(t, g.Fingerprint(), again.Fingerprint(), format)
	}
}

func TestEncode_YAMLLayout(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, graphfile.Encode(&buf, core.Definition{
		"B": core.List(),
		"A": core.List("B"),
	}, graphfile.YAML))
	assert.Equal(t, "A: [B]\nB: []\n", buf.String())

	assert.Error(t, graphfile.Encode(&buf, core.Definition{}, graphfile.Format("ini")))
}
