// SPDX-License-Identifier: MIT

package tsp

import (
	"context"
	"math"
)

const (
	// unreachable marks a missing hop in the cost matrix.
	unreachable int64 = -1

	// ctxCheckEvery is how many permutations are scored between context checks.
	ctxCheckEvery = 1 << 16
)

// search holds the state of one brute-force enumeration.
type search struct {
	cost   [][]int64
	anchor int // -1 when unanchored

	best   int64
	order  []int
	found  bool
	scored uint64
}

// run enumerates permutations in lexicographic order and keeps the first
// one reaching the minimum total.
//
// Implementation:
//   - Stage 1: Build the initial (ascending) permutation of free indices.
//   - Stage 2: Score each permutation, prefixed with the anchor if set.
//   - Stage 3: Advance with nextPermutation until exhausted or cancelled.
func (s *search) run(ctx context.Context) error {
	n := len(s.cost)
	free := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if i != s.anchor {
			free = append(free, i)
		}
	}
	s.best = math.MaxInt64
	if err := ctx.Err(); err != nil {
		return err
	}

	for {
		s.score(free)
		s.scored++
		if s.scored%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		if !nextPermutation(free) {
			return nil
		}
	}
}

// score totals one candidate and records it if strictly cheaper than the best.
// A prefix already at or above the best is abandoned, and so is one whose
// total would overflow int64.
func (s *search) score(free []int) {
	var (
		total int64
		prev  = s.anchor
	)
	for _, cur := range free {
		if prev >= 0 {
			c := s.cost[prev][cur]
			if c == unreachable {
				return
			}
			if c > math.MaxInt64-total {
				return
			}
			total += c
			if s.found && total >= s.best {
				return
			}
		}
		prev = cur
	}
	if s.found && total >= s.best {
		return
	}

	s.best = total
	s.found = true
	s.order = s.order[:0]
	if s.anchor >= 0 {
		s.order = append(s.order, s.anchor)
	}
	s.order = append(s.order, free...)
}
