// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package seq

import "vawter.tech/algs"

// An Appender is an output cursor that appends every written value to
// a slice. Advancing an Appender has no effect.
type Appender[T any] struct {
	dst *[]T
}

var _ algs.Output[Appender[int], int] = Appender[int]{}

// AppendTo returns an Appender that grows *dst.
func AppendTo[T any](dst *[]T) Appender[T] {
	return Appender[T]{dst: dst}
}

// Next implements [algs.Output].
func (a Appender[T]) Next() Appender[T] { return a }

// Set implements [algs.Output].
func (a Appender[T]) Set(v T) { *a.dst = append(*a.dst, v) }

// Func is an output cursor that passes every written value to the
// function.
type Func[T any] func(T)

var _ algs.Output[Func[int], int] = Func[int](nil)

// Next implements [algs.Output].
func (f Func[T]) Next() Func[T] { return f }

// Set implements [algs.Output].
func (f Func[T]) Set(v T) { f(v) }
