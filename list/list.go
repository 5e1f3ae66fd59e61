// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

// Package list provides a bidirectional cursor over a
// [container/list.List]. It is useful for exercising algorithms that
// must not rely on random access.
package list

import (
	"container/list"

	"vawter.tech/algs"
)

// A Cursor identifies an element of a [list.List] whose values are all
// of type T. The end cursor of a list refers to no element.
type Cursor[T any] struct {
	l *list.List
	e *list.Element // Nil for the end cursor.
}

var _ algs.Bidirectional[Cursor[int], int] = Cursor[int]{}

// Range returns the begin and end cursors of l.
func Range[T any](l *list.List) (Cursor[T], Cursor[T]) {
	return Cursor[T]{l: l, e: l.Front()}, Cursor[T]{l: l}
}

// New returns a list containing the values, in order.
func New[T any](values ...T) *list.List {
	l := list.New()
	for _, v := range values {
		l.PushBack(v)
	}
	return l
}

// Collect returns the values of l as a slice.
func Collect[T any](l *list.List) []T {
	ret := make([]T, 0, l.Len())
	for e := l.Front(); e != nil; e = e.Next() {
		ret = append(ret, e.Value.(T))
	}
	return ret
}

// Equal implements [algs.Input].
func (c Cursor[T]) Equal(o Cursor[T]) bool { return c.e == o.e }

// Get implements [algs.Input].
func (c Cursor[T]) Get() T { return c.e.Value.(T) }

// Next implements [algs.Input].
func (c Cursor[T]) Next() Cursor[T] {
	c.e = c.e.Next()
	return c
}

// Prev implements [algs.Bidirectional]. Retreating from the end cursor
// yields the last element.
func (c Cursor[T]) Prev() Cursor[T] {
	if c.e == nil {
		c.e = c.l.Back()
	} else {
		c.e = c.e.Prev()
	}
	return c
}

// Set implements [algs.Output].
func (c Cursor[T]) Set(v T) { c.e.Value = v }
