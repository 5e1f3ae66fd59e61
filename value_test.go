// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package algs_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"vawter.tech/algs"
)

func TestMax(t *testing.T) {
	r := require.New(t)

	r.Equal(100, algs.Max(100, 10))
	r.Equal(100, algs.Max(10, 100))
	r.Equal('z', algs.Max('z', 'a'))
	r.Equal("pear", algs.Max("apple", "pear"))

	// Ties return the second argument.
	negZero := math.Copysign(0, -1)
	r.True(math.Signbit(algs.Max(0.0, negZero)))
	r.False(math.Signbit(algs.Max(negZero, 0.0)))

	// Only > is consulted, so an unordered first argument loses.
	r.Equal(1.0, algs.Max(math.NaN(), 1.0))
	r.True(math.IsNaN(algs.Max(1.0, math.NaN())))
}

func TestMin(t *testing.T) {
	r := require.New(t)

	r.Equal(10, algs.Min(100, 10))
	r.Equal(10, algs.Min(10, 100))
	r.Equal('a', algs.Min('z', 'a'))
	r.Equal("apple", algs.Min("apple", "pear"))

	// Ties return the second argument.
	negZero := math.Copysign(0, -1)
	r.True(math.Signbit(algs.Min(0.0, negZero)))
	r.False(math.Signbit(algs.Min(negZero, 0.0)))

	r.Equal(1.0, algs.Min(math.NaN(), 1.0))
	r.True(math.IsNaN(algs.Min(1.0, math.NaN())))
}

func TestSwap(t *testing.T) {
	r := require.New(t)

	x, y := 69, 420
	algs.Swap(&x, &y)
	r.Equal(420, x)
	r.Equal(69, y)

	// Swapping twice restores the original values.
	algs.Swap(&x, &y)
	r.Equal(69, x)
	r.Equal(420, y)

	u, v := 'u', 'v'
	algs.Swap(&u, &v)
	r.Equal('v', u)
	r.Equal('u', v)

	// Self-swap is a no-op.
	algs.Swap(&x, &x)
	r.Equal(69, x)

	type pair struct{ a, b string }
	p, q := pair{"a", "b"}, pair{"c", "d"}
	algs.Swap(&p, &q)
	r.Equal(pair{"c", "d"}, p)
	r.Equal(pair{"a", "b"}, q)
}
