// SPDX-License-Identifier: MIT

package tsp

// nextPermutation rearranges p into its lexicographic successor and reports
// whether one existed. On false, p is left as the last permutation.
//
// Complexity: O(n) worst case, O(1) amortized.
func nextPermutation(p []int) bool {
	// 1) Find the longest non-increasing suffix; i is the pivot before it.
	i := len(p) - 2
	for i >= 0 && p[i] >= p[i+1] {
		i--
	}
	if i < 0 {
		return false
	}
	// 2) Swap the pivot with the rightmost element greater than it.
	j := len(p) - 1
	for p[j] <= p[i] {
		j--
	}
	p[i], p[j] = p[j], p[i]
	// 3) Reverse the suffix into ascending order.
	for l, r := i+1, len(p)-1; l < r; l, r = l+1, r-1 {
		p[l], p[r] = p[r], p[l]
	}

	return true
}
