// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

// Package algs provides generic sequence algorithms that operate on
// half-open ranges of cursors, in the style of a minimal standard
// algorithms library.
//
// # Cursors
//
// A cursor is a small value that identifies a position in a sequence.
// The capability interfaces form a strict hierarchy:
//
//  1. [Input]: read the current element, advance, compare positions.
//     Single-pass: once advanced, earlier positions may be gone.
//  2. [Output]: write the current element and advance.
//  3. [Forward]: both of the above, and copies may be revisited.
//  4. [Bidirectional]: a forward cursor that can also retreat.
//  5. [RandomAccess]: a bidirectional cursor with offset arithmetic,
//     distance, and ordering.
//
// Each interface is parameterized by the cursor's own type C so that
// Next and friends return the concrete cursor rather than an
// interface value. Algorithms are written against the weakest
// capability they need:
//
//	b, e := slice.Range([]int{3, 1, 4, 1, 5})
//	if found := algs.Find(b, e, 4); !found.Equal(e) {
//	    fmt.Println(found.Index()) // 2
//	}
//
// The [vawter.tech/algs/slice], [vawter.tech/algs/list], and
// [vawter.tech/algs/seq] packages provide random-access, bidirectional,
// and single-pass input/output cursors respectively.
//
// # Ranges
//
// Every algorithm that accepts [b, e) treats e as a position that is
// compared against but never dereferenced. Loops terminate on cursor
// equality, or on [RandomAccess.Less] for random-access algorithms. No
// algorithm grows or shrinks the underlying storage; compacting
// algorithms such as [Remove] rearrange elements and return a new
// logical end.
//
// # Errors
//
// The algorithms do not validate their inputs. Passing a malformed
// range, an unsorted range to [BinarySearch], or a second range to
// [Equal] that is shorter than the first is undefined behavior. The
// only error in the package is [ErrDepthExceeded], reported by
// [RFindLimit].
package algs
