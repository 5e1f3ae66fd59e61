// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package seq

import (
	"iter"

	"vawter.tech/algs"
)

// Values returns an iterator over the elements of [b, e). Each use of
// the iterator starts again from b, so it is repeatable if the cursors
// support multiple passes.
func Values[C algs.Input[C, T], T any](b, e C) iter.Seq[T] {
	return func(yield func(T) bool) {
		for c := b; !c.Equal(e); c = c.Next() {
			if !yield(c.Get()) {
				return
			}
		}
	}
}

// All is a pairwise version of [Values] that also yields the distance
// of each element from b.
func All[C algs.Input[C, T], T any](b, e C) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		idx := 0
		for c := b; !c.Equal(e); c = c.Next() {
			if !yield(idx, c.Get()) {
				return
			}
			idx++
		}
	}
}
