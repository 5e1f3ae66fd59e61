// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

// Package seq connects cursors to the standard library's [iter]
// package.
//
// [Range] turns an [iter.Seq] into a pair of single-pass input cursors.
// [AppendTo] and [Func] are output cursors that accept writes from
// algorithms such as [algs.Copy]. [Values] and [All] go the other way,
// exposing any input range as an iterator.
package seq
