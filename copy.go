// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package algs

// Equal reports whether [b1, e) and the range of the same length
// starting at b2 hold equal elements, stopping at the first mismatch.
// The second range must have at least as many elements as the first;
// its end is never checked.
func Equal[C1 Input[C1, T], C2 Input[C2, T], T comparable](b1, e C1, b2 C2) bool {
	for ; !b1.Equal(e); b1, b2 = b1.Next(), b2.Next() {
		if b1.Get() != b2.Get() {
			return false
		}
	}
	return true
}

// Copy writes the elements of [b, e) to successive positions starting
// at d and returns the cursor past the last write. The destination may
// not overlap any source element that has yet to be read.
func Copy[I Input[I, T], O Output[O, T], T any](b, e I, d O) O {
	for ; !b.Equal(e); b = b.Next() {
		d.Set(b.Get())
		d = d.Next()
	}
	return d
}

// RemoveCopy is like [Copy], but skips elements equal to x.
func RemoveCopy[I Input[I, T], O Output[O, T], T comparable](b, e I, d O, x T) O {
	for ; !b.Equal(e); b = b.Next() {
		if v := b.Get(); v != x {
			d.Set(v)
			d = d.Next()
		}
	}
	return d
}

// RemoveCopyIf is like [Copy], but skips elements for which p returns
// true.
func RemoveCopyIf[I Input[I, T], O Output[O, T], T any](b, e I, d O, p func(T) bool) O {
	for ; !b.Equal(e); b = b.Next() {
		if v := b.Get(); !p(v) {
			d.Set(v)
			d = d.Next()
		}
	}
	return d
}
