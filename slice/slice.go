// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

// Package slice provides a random-access cursor over a Go slice.
package slice

import (
	"fmt"

	"vawter.tech/algs"
)

// A Cursor identifies an offset within a slice. Cursors are compared
// by offset alone, so cursors created from different slices must not
// be mixed.
type Cursor[T any] struct {
	s []T
	i int
}

var _ algs.RandomAccess[Cursor[int], int] = Cursor[int]{}

// At returns a cursor at offset i of s. An offset of len(s) is the
// end cursor.
func At[T any](s []T, i int) Cursor[T] {
	return Cursor[T]{s: s, i: i}
}

// Range returns the begin and end cursors of s.
func Range[T any](s []T) (Cursor[T], Cursor[T]) {
	return At(s, 0), At(s, len(s))
}

// Advance implements [algs.RandomAccess].
func (c Cursor[T]) Advance(n int) Cursor[T] {
	c.i += n
	return c
}

// Distance implements [algs.RandomAccess].
func (c Cursor[T]) Distance(to Cursor[T]) int { return to.i - c.i }

// Equal implements [algs.Input].
func (c Cursor[T]) Equal(o Cursor[T]) bool { return c.i == o.i }

// Get implements [algs.Input].
func (c Cursor[T]) Get() T { return c.s[c.i] }

// Index returns the cursor's offset into the slice.
func (c Cursor[T]) Index() int { return c.i }

// Less implements [algs.RandomAccess].
func (c Cursor[T]) Less(o Cursor[T]) bool { return c.i < o.i }

// Next implements [algs.Input].
func (c Cursor[T]) Next() Cursor[T] {
	c.i++
	return c
}

// Prev implements [algs.Bidirectional].
func (c Cursor[T]) Prev() Cursor[T] {
	c.i--
	return c
}

// Set implements [algs.Output].
func (c Cursor[T]) Set(v T) { c.s[c.i] = v }

// String is for debugging use only.
func (c Cursor[T]) String() string {
	return fmt.Sprintf("slice.Cursor[%d/%d]", c.i, len(c.s))
}
