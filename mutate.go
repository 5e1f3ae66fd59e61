// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package algs

// Replace overwrites every element of [b, e) that is equal to x with
// y.
func Replace[C Forward[C, T], T comparable](b, e C, x, y T) {
	for ; !b.Equal(e); b = b.Next() {
		if b.Get() == x {
			b.Set(y)
		}
	}
}

// Remove compacts [b, e) in place so that the elements not equal to x
// keep their relative order at the front of the range. It returns the
// new logical end. Elements from the returned cursor up to e are left
// with unspecified values.
func Remove[C Forward[C, T], T comparable](b, e C, x T) C {
	ret := b
	for ; !b.Equal(e); b = b.Next() {
		if v := b.Get(); v != x {
			if !ret.Equal(b) {
				ret.Set(v)
			}
			ret = ret.Next()
		}
	}
	return ret
}

// RemoveIf is like [Remove], but drops the elements for which p
// returns true.
func RemoveIf[C Forward[C, T], T any](b, e C, p func(T) bool) C {
	ret := b
	for ; !b.Equal(e); b = b.Next() {
		if v := b.Get(); !p(v) {
			if !ret.Equal(b) {
				ret.Set(v)
			}
			ret = ret.Next()
		}
	}
	return ret
}

// Reverse reverses the order of the elements in [b, e).
func Reverse[C Bidirectional[C, T], T any](b, e C) {
	for !b.Equal(e) {
		e = e.Prev()
		if b.Equal(e) {
			return
		}
		swapAt[C, T](b, e)
		b = b.Next()
	}
}

// Partition reorders [b, e) so that every element for which p returns
// true precedes every element for which it returns false. It returns a
// cursor to the first element of the second group. The relative order
// within each group is not preserved.
func Partition[C Bidirectional[C, T], T any](b, e C, p func(T) bool) C {
	for !b.Equal(e) {
		for p(b.Get()) {
			b = b.Next()
			if b.Equal(e) {
				return b
			}
		}
		for {
			e = e.Prev()
			if b.Equal(e) {
				return b
			}
			if p(e.Get()) {
				break
			}
		}
		swapAt[C, T](b, e)
		b = b.Next()
	}
	return b
}
