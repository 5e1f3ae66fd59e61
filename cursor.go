// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package algs

// Input is a single-pass, read-only cursor of type C over elements of
// type T.
type Input[C, T any] interface {
	// Get returns the element at the current position. It must not be
	// called on an end cursor.
	Get() T

	// Next returns a cursor at the following position.
	Next() C

	// Equal reports whether both cursors identify the same position.
	Equal(C) bool
}

// Output is a single-pass, write-only cursor.
type Output[C, T any] interface {
	// Set replaces the element at the current position.
	Set(T)

	// Next returns a cursor at the following position.
	Next() C
}

// Forward is a readable and writable cursor that may be copied and
// revisited, allowing multi-pass algorithms and in-place compaction.
type Forward[C, T any] interface {
	Input[C, T]
	Output[C, T]
}

// Bidirectional is a [Forward] cursor that can also be moved backward.
type Bidirectional[C, T any] interface {
	Forward[C, T]

	// Prev returns a cursor at the preceding position.
	Prev() C
}

// RandomAccess is a [Bidirectional] cursor that supports constant-time
// offsets, distances, and ordering.
type RandomAccess[C, T any] interface {
	Bidirectional[C, T]

	// Advance returns a cursor n positions away. A negative n moves
	// backward.
	Advance(n int) C

	// Distance returns the number of positions from the receiver to
	// the argument, which is negative if the argument precedes it.
	Distance(to C) int

	// Less reports whether the receiver precedes the argument.
	Less(C) bool
}

// Distance returns the number of times b must be advanced to reach e.
// Single-pass cursors are consumed by the walk.
func Distance[C Input[C, T], T any](b, e C) int {
	n := 0
	for ; !b.Equal(e); b = b.Next() {
		n++
	}
	return n
}
