// SPDX-License-Identifier: MIT

package app

import "go.trai.ch/zerr"

var (
	// ErrNoGraph is returned when neither flags, env nor config name a graph file.
	ErrNoGraph = zerr.New("no graph file configured")

	// ErrUnknownStation is returned for names matching no node.
	ErrUnknownStation = zerr.New("unknown station")

	// ErrNoRoute is returned by Path when the destination is unreachable.
	// The message has already been printed when it is returned.
	ErrNoRoute = zerr.New("no route")
)
