// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package algs

import (
	"errors"

	"github.com/go-softwarelab/common/pkg/types"
)

// ErrDepthExceeded is returned by [RFindLimit] when the recursion limit
// is reached before a match or the end of the range.
var ErrDepthExceeded = errors.New("recursion depth exceeded")

// Find returns a cursor to the first element of [b, e) that is equal
// to x, or e if there is none.
func Find[C Input[C, T], T comparable](b, e C, x T) C {
	for !b.Equal(e) && b.Get() != x {
		b = b.Next()
	}
	return b
}

// RFind has the same contract as [Find], but is implemented by
// recursive descent. The stack depth equals the number of elements
// examined, so a sufficiently long range will exhaust the goroutine
// stack and crash the program. Callers that cannot bound their input
// should use [Find] or [RFindLimit].
func RFind[C Input[C, T], T comparable](b, e C, x T) C {
	if b.Equal(e) || b.Get() == x {
		return b
	}
	return RFind(b.Next(), e, x)
}

// RFindLimit is a bounded form of [RFind]. At most limit elements will
// be skipped. If the search has neither matched nor reached e by then,
// the cursor at which it stopped is returned alongside
// [ErrDepthExceeded].
func RFindLimit[C Input[C, T], T comparable](b, e C, x T, limit int) (C, error) {
	if limit < 0 {
		panic(errors.New("limit must not be negative"))
	}
	return rfindLimit(b, e, x, limit)
}

func rfindLimit[C Input[C, T], T comparable](b, e C, x T, limit int) (C, error) {
	if b.Equal(e) || b.Get() == x {
		return b, nil
	}
	if limit == 0 {
		return b, ErrDepthExceeded
	}
	return rfindLimit(b.Next(), e, x, limit-1)
}

// FindIf returns a cursor to the first element of [b, e) for which p
// returns true, or e if there is none.
func FindIf[C Input[C, T], T any](b, e C, p func(T) bool) C {
	for !b.Equal(e) && !p(b.Get()) {
		b = b.Next()
	}
	return b
}

// Search returns a cursor to the start of the first occurrence of
// [b2, e2) within [b1, e1), or e1 if there is none. An empty needle
// matches at b1.
func Search[C1 Forward[C1, T], C2 Forward[C2, T], T comparable](b1, e1 C1, b2, e2 C2) C1 {
	if b2.Equal(e2) {
		return b1
	}
	for ; !b1.Equal(e1); b1 = b1.Next() {
		it1, it2 := b1, b2
		for it1.Get() == it2.Get() {
			it1, it2 = it1.Next(), it2.Next()
			if it2.Equal(e2) {
				return b1
			}
			// The haystack ran out mid-match, so no later start fits.
			if it1.Equal(e1) {
				return e1
			}
		}
	}
	return e1
}

// BinarySearch reports whether x is present in [b, e), which must be
// sorted in ascending order. Only the < operator is applied to
// elements. The result is unspecified if the range is not sorted.
func BinarySearch[C RandomAccess[C, T], T types.Ordered](b, e C, x T) bool {
	return BinarySearchFunc(b, e, x, func(l, r T) bool { return l < r })
}

// BinarySearchFunc is a generalization of [BinarySearch] that orders
// elements with the given strict weak ordering.
func BinarySearchFunc[C RandomAccess[C, T], T any](b, e C, x T, less func(a, b T) bool) bool {
	for b.Less(e) {
		// Halve the distance before offsetting; b+e is never formed.
		mid := b.Advance(b.Distance(e) / 2)
		switch v := mid.Get(); {
		case less(x, v):
			e = mid
		case less(v, x):
			b = mid.Next()
		default:
			return true
		}
	}
	return false
}
