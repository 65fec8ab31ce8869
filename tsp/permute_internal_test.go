// SPDX-License-Identifier: MIT

package tsp

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextPermutation_Lexicographic(t *testing.T) {
	p := []int{0, 1, 2, 3}
	seen := []string{fmt.Sprint(p)}
	for nextPermutation(p) {
		seen = append(seen, fmt.Sprint(p))
	}

	assert.Len(t, seen, 24)
	assert.Equal(t, "[0 1 2 3]", seen[0])
	assert.Equal(t, "[0 1 3 2]", seen[1])
	assert.Equal(t, "[3 2 1 0]", seen[23])
	assert.IsIncreasing(t, seen)
}

func TestNextPermutation_Trivial(t *testing.T) {
	assert.False(t, nextPermutation(nil))
	assert.False(t, nextPermutation([]int{7}))
}
