// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package algs

// ForEach applies op to every element of [b, e) in order and returns
// op. Returning the function allows a stateful closure, or a method
// value, to be handed back to the caller.
func ForEach[C Input[C, T], T any, F ~func(T)](b, e C, op F) F {
	for ; !b.Equal(e); b = b.Next() {
		op(b.Get())
	}
	return op
}

// Accumulate folds [b, e) into a by repeated addition, left to right.
// An empty range returns a unchanged.
func Accumulate[C Input[C, T], T Summable](b, e C, a T) T {
	for ; !b.Equal(e); b = b.Next() {
		a += b.Get()
	}
	return a
}

// AccumulateFunc is a generalization of [Accumulate] that folds with
// an arbitrary operation into an accumulator of a different type.
func AccumulateFunc[C Input[C, T], T, A any](b, e C, a A, op func(A, T) A) A {
	for ; !b.Equal(e); b = b.Next() {
		a = op(a, b.Get())
	}
	return a
}
