// SPDX-License-Identifier: MIT

// Package graphfile reads and writes route graph definitions.
//
// A graph file maps every node to either a list of neighbors (unweighted)
// or an object of neighbor costs (weighted). JSON and YAML are accepted:
//
//	# stations.yaml
//	A: {B: 1, C: 4}
//	B: {C: 1}
//	C: {}
//
//	{"A": ["B"], "B": ["C"], "C": []}
//
// A null entry is read as a node without outgoing connections.
package graphfile
