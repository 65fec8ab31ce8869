// SPDX-License-Identifier: MIT

package tsp

import "math/big"

// PermutationCount returns n!, the number of orders a full enumeration of
// n nodes visits. Non-positive n yields 1.
// Complexity: O(n) big-integer multiplications.
func PermutationCount(n int) *big.Int {
	if n < 2 {
		return big.NewInt(1)
	}

	return new(big.Int).MulRange(1, int64(n))
}

// EstimateFor describes the search over nodes nodes, anchored or not.
func EstimateFor(nodes int, anchored bool) Estimate {
	candidates := PermutationCount(nodes)
	if anchored && nodes > 0 {
		candidates = PermutationCount(nodes - 1)
	}

	return Estimate{
		Nodes:        nodes,
		Permutations: PermutationCount(nodes),
		Candidates:   candidates,
		Anchored:     anchored,
	}
}
