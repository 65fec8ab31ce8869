// SPDX-License-Identifier: MIT

package graphfile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvroute/core"
)

var (
	// ErrReadFailed is returned when the graph file cannot be read.
	ErrReadFailed = zerr.New("failed to read graph file")

	// ErrParseFailed is returned when the document is not valid JSON or YAML.
	ErrParseFailed = zerr.New("failed to parse graph file")

	// ErrUnsupportedFormat is returned for unknown file extensions.
	ErrUnsupportedFormat = zerr.New("unsupported graph file format")

	// ErrMalformedEntry is returned when an entry is neither a list nor an object.
	ErrMalformedEntry = zerr.New("graph entry must be a list or an object")
)

// Format is a graph file encoding.
type Format string

const (
	// JSON is the encoding/json format.
	JSON Format = "json"
	// YAML is the gopkg.in/yaml.v3 format.
	YAML Format = "yaml"
)

// FormatOf picks the format from the file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSON, nil
	case ".yaml", ".yml":
		return YAML, nil
	default:
		return "", zerr.With(zerr.Wrap(ErrUnsupportedFormat, "detect format"), "path", path)
	}
}

// Load reads the graph file at path and builds the graph.
// opts are passed to core.NewGraph.
func Load(path string, opts ...core.Option) (*core.Graph, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	// #nosec G304 -- the path is chosen by the user on purpose
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(fmt.Errorf("%w: %w", ErrReadFailed, err), "path", path)
	}
	def, err := Decode(data, format)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}

	return core.NewGraph(def, opts...)
}

// Decode parses a graph document without validating it; core.NewGraph does that.
func Decode(data []byte, format Format) (core.Definition, error) {
	switch format {
	case JSON:
		return decodeJSON(data)
	case YAML:
		return decodeYAML(data)
	default:
		return nil, zerr.With(zerr.Wrap(ErrUnsupportedFormat, "select codec"), "format", string(format))
	}
}

func decodeJSON(data []byte) (core.Definition, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParseFailed, err)
	}
	def := make(core.Definition, len(raw))
	for id, msg := range raw {
		msg = bytes.TrimSpace(msg)
		switch {
		case bytes.Equal(msg, []byte("null")):
			def[id] = core.List()
		case len(msg) > 0 && msg[0] == '[':
			var nbrs []string
			if err := json.Unmarshal(msg, &nbrs); err != nil {
				return nil, zerr.With(fmt.Errorf("%w: %w", ErrParseFailed, err), "node", id)
			}
			def[id] = core.List(nbrs...)
		case len(msg) > 0 && msg[0] == '{':
			var costs map[string]int64
			if err := json.Unmarshal(msg, &costs); err != nil {
				return nil, zerr.With(fmt.Errorf("%w: %w", ErrParseFailed, err), "node", id)
			}
			def[id] = core.Costs(costs)
		default:
			return nil, zerr.With(zerr.Wrap(ErrMalformedEntry, "decode entry"), "node", id)
		}
	}

	return def, nil
}

func decodeYAML(data []byte) (core.Definition, error) {
	var raw map[string]yaml.Node
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParseFailed, err)
	}
	def := make(core.Definition, len(raw))
	for id, node := range raw {
		switch {
		case node.Kind == yaml.SequenceNode:
			var nbrs []string
			if err := node.Decode(&nbrs); err != nil {
				return nil, zerr.With(fmt.Errorf("%w: %w", ErrParseFailed, err), "node", id)
			}
			def[id] = core.List(nbrs...)
		case node.Kind == yaml.MappingNode:
			var costs map[string]int64
			if err := node.Decode(&costs); err != nil {
				return nil, zerr.With(fmt.Errorf("%w: %w", ErrParseFailed, err), "node", id)
			}
			def[id] = core.Costs(costs)
		case node.Kind == yaml.ScalarNode && node.Tag == "!!null", node.Kind == 0:
			def[id] = core.List()
		default:
			return nil, zerr.With(zerr.Wrap(ErrMalformedEntry, "decode entry"), "node", id)
		}
	}

	return def, nil
}

// Encode writes def to w. Weighted entries become objects and unweighted
// entries become lists; node keys are emitted in sorted order.
func Encode(w io.Writer, def core.Definition, format Format) error {
	switch format {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(document(def))
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(yamlDocument(def)); err != nil {
			return err
		}
		return enc.Close()
	default:
		return zerr.With(zerr.Wrap(ErrUnsupportedFormat, "select codec"), "format", string(format))
	}
}

// document maps entries to plain values; encoding/json sorts map keys.
func document(def core.Definition) map[string]any {
	out := make(map[string]any, len(def))
	for id, e := range def {
		out[id] = entryValue(e)
	}

	return out
}

// yamlDocument builds an ordered mapping node so output is stable.
func yamlDocument(def core.Definition) *yaml.Node {
	ids := make([]string, 0, len(def))
	for id := range def {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, id := range ids {
		val := &yaml.Node{}
		// Encoding plain slices and maps into a node cannot fail.
		_ = val.Encode(entryValue(def[id]))
		if val.Kind == yaml.SequenceNode || val.Kind == yaml.MappingNode {
			val.Style = yaml.FlowStyle
		}
		root.Content = append(root.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: id},
			val,
		)
	}

	return root
}

func entryValue(e core.Entry) any {
	if e.IsWeighted() {
		return e.Costs
	}
	if e.Neighbors == nil {
		return []string{}
	}

	return e.Neighbors
}
