// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"strconv"
)

// IDFn generates a vertex ID from its zero-based index. It must be pure.
type IDFn func(idx int) string

// DefaultIDFn returns the decimal index: 0 → "0", 42 → "42".
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// SymbolIDFn returns a single uppercase letter for idx in [0, 25].
// Panics outside that range.
func SymbolIDFn(idx int) string {
	if idx < 0 || idx > 25 {
		panic(fmt.Sprintf("SymbolIDFn: idx must be in [0,25], got %d", idx))
	}

	return string('A' + rune(idx))
}

// ExcelColumnIDFn returns spreadsheet column names: 0 → "A", 25 → "Z",
// 26 → "AA". Panics if idx < 0.
// Complexity: O(log₂₆ idx).
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnIDFn: idx must be ≥ 0, got %d", idx))
	}
	var rev []byte
	for i := idx; i >= 0; i = i/26 - 1 {
		rev = append(rev, byte('A'+i%26))
	}
	for l, r := 0, len(rev)-1; l < r; l, r = l+1, r-1 {
		rev[l], rev[r] = rev[r], rev[l]
	}

	return string(rev)
}

// PrefixIDFn returns an IDFn producing prefix + decimal index. Panics on a
// negative index.
//
// The IDs sort lexicographically ("s10" before "s2"), which changes the
// order vertices are enumerated in; use ExcelColumnIDFn when that matters.
func PrefixIDFn(prefix string) IDFn {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("PrefixIDFn: idx must be ≥ 0, got %d", idx))
		}

		return prefix + strconv.Itoa(idx)
	}
}
