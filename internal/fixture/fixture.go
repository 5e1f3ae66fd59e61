// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

// Package fixture builds the fixed-content sequences shared by the
// tests.
package fixture

import "github.com/samber/lo"

// Size is the length of the longer fixtures.
const Size = 21

// Vectors is a set of freshly allocated test sequences. Tests may
// mutate them freely.
type Vectors struct {
	Ascending  []int // 0 through 9.
	Ascending2 []int // An independent copy of Ascending.
	Descending []int // 10 through 1.
	Odd        []int // The odd values below Size.
	Even       []int // The even values below Size.
	Zeros      []int // Size zeros.
}

// New returns a new set of Vectors.
func New() *Vectors {
	all := lo.Range(Size)
	return &Vectors{
		Ascending:  lo.Range(10),
		Ascending2: lo.Range(10),
		Descending: lo.RangeWithSteps(10, 0, -1),
		Odd:        lo.Filter(all, func(x int, _ int) bool { return IsOdd(x) }),
		Even:       lo.Filter(all, func(x int, _ int) bool { return IsEven(x) }),
		Zeros:      make([]int, Size),
	}
}

// IsEven is a predicate for even integers.
func IsEven(x int) bool { return x%2 == 0 }

// IsOdd is a predicate for odd integers.
func IsOdd(x int) bool { return x%2 != 0 }

// Double returns twice its argument.
func Double(x int) int { return 2 * x }
