// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
)

const (
	methodComplete = "Complete"
	methodCycle    = "Cycle"
	methodPath     = "Path"
	methodStar     = "Star"
	methodWheel    = "Wheel"
	methodGrid     = "Grid"

	minCompleteNodes = 1
	minCycleNodes    = 3
	minPathNodes     = 2
	minStarNodes     = 2
	minWheelNodes    = 4
	minGridDim       = 1

	gridIDFmt = "%d,%d" // "r,c"
)

// validateMin returns ErrTooFewVertices with method context when v < lo.
func validateMin(method, name string, v, lo int) error {
	if v < lo {
		return fmt.Errorf("%s: %s=%d < min=%d: %w", method, name, v, lo, ErrTooFewVertices)
	}

	return nil
}

// Complete returns a Constructor for the complete digraph on n vertices:
// every ordered pair (i, j) with i ≠ j, emitted by ascending i then j.
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(d *Draft, cfg builderConfig) error {
		if err := validateMin(methodComplete, "n", n, minCompleteNodes); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			d.vertex(cfg.idFn(i))
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i != j {
					d.edge(cfg, cfg.idFn(i), cfg.idFn(j))
				}
			}
		}

		return nil
	}
}

// Cycle returns a Constructor for the directed ring i → (i+1) mod n.
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(d *Draft, cfg builderConfig) error {
		if err := validateMin(methodCycle, "n", n, minCycleNodes); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			d.edge(cfg, cfg.idFn(i), cfg.idFn((i+1)%n))
		}

		return nil
	}
}

// Path returns a Constructor for the chain 0 → 1 → … → n-1.
// Complexity: O(n).
func Path(n int) Constructor {
	return func(d *Draft, cfg builderConfig) error {
		if err := validateMin(methodPath, "n", n, minPathNodes); err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			d.edge(cfg, cfg.idFn(i), cfg.idFn(i+1))
		}

		return nil
	}
}

// Star returns a Constructor with hub 0 pointing at leaves 1..n-1.
// Complexity: O(n).
func Star(n int) Constructor {
	return func(d *Draft, cfg builderConfig) error {
		if err := validateMin(methodStar, "n", n, minStarNodes); err != nil {
			return err
		}
		hub := cfg.idFn(0)
		for i := 1; i < n; i++ {
			d.edge(cfg, hub, cfg.idFn(i))
		}

		return nil
	}
}

// Wheel returns a Constructor for a rim cycle over 1..n-1 plus spokes from
// hub 0 to every rim vertex.
// Complexity: O(n).
func Wheel(n int) Constructor {
	return func(d *Draft, cfg builderConfig) error {
		if err := validateMin(methodWheel, "n", n, minWheelNodes); err != nil {
			return err
		}
		hub := cfg.idFn(0)
		d.vertex(hub)
		rim := n - 1
		for i := 0; i < rim; i++ {
			d.edge(cfg, cfg.idFn(1+i), cfg.idFn(1+(i+1)%rim))
		}
		for i := 1; i < n; i++ {
			d.edge(cfg, hub, cfg.idFn(i))
		}

		return nil
	}
}

// Grid returns a Constructor for a rows×cols lattice with IDs "r,c" and
// edges to the right and lower neighbor. The ID scheme option is ignored.
// Combine with WithBidirectional for a street grid.
// Complexity: O(rows·cols).
func Grid(rows, cols int) Constructor {
	return func(d *Draft, cfg builderConfig) error {
		if err := validateMin(methodGrid, "rows", rows, minGridDim); err != nil {
			return err
		}
		if err := validateMin(methodGrid, "cols", cols, minGridDim); err != nil {
			return err
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				d.vertex(fmt.Sprintf(gridIDFmt, r, c))
			}
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := fmt.Sprintf(gridIDFmt, r, c)
				if c+1 < cols {
					d.edge(cfg, u, fmt.Sprintf(gridIDFmt, r, c+1))
				}
				if r+1 < rows {
					d.edge(cfg, u, fmt.Sprintf(gridIDFmt, r+1, c))
				}
			}
		}

		return nil
	}
}
