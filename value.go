// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package algs

import (
	"github.com/go-softwarelab/common/pkg/types"
	"golang.org/x/exp/constraints"
)

// Summable is the set of types that support the += operator.
type Summable interface {
	constraints.Integer | constraints.Float | constraints.Complex | ~string
}

// Max returns x if x > y. Otherwise, including when the values are
// equal, it returns y.
func Max[T types.Ordered](x, y T) T {
	if x > y {
		return x
	}
	return y
}

// Min returns x if x < y. Otherwise, including when the values are
// equal, it returns y.
func Min[T types.Ordered](x, y T) T {
	if x < y {
		return x
	}
	return y
}

// Swap exchanges the values that x and y point to. Swap(p, p) leaves
// the value unchanged.
func Swap[T any](x, y *T) {
	t := *x
	*x = *y
	*y = t
}

// swapAt exchanges the elements under two cursors.
func swapAt[C Forward[C, T], T any](a, b C) {
	x, y := a.Get(), b.Get()
	Swap(&x, &y)
	a.Set(x)
	b.Set(y)
}
