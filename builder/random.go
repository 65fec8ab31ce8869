// SPDX-License-Identifier: MIT

package builder

import "fmt"

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that keeps each ordered pair (i, j),
// i ≠ j, independently with probability p.
//
// Trials run for i ascending, then j ascending, so a fixed seed yields a
// fixed Definition. p = 0 and p = 1 need no RNG.
//
// Complexity: O(n²) trials.
func RandomSparse(n int, p float64) Constructor {
	return func(d *Draft, cfg builderConfig) error {
		// 1) Validate parameters before touching the draft.
		if err := validateMin(methodRandomSparse, "n", n, minRandomSparseVertices); err != nil {
			return err
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		// 2) Declare every vertex so isolated ones survive.
		for i := 0; i < n; i++ {
			d.vertex(cfg.idFn(i))
		}

		// 3) One Bernoulli trial per ordered pair.
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				if keep(cfg, p) {
					d.edge(cfg, cfg.idFn(i), cfg.idFn(j))
				}
			}
		}

		return nil
	}
}

func keep(cfg builderConfig, p float64) bool {
	switch {
	case p >= probMax:
		return true
	case p <= probMin:
		return false
	default:
		return cfg.rng.Float64() < p
	}
}
