// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package seq

import (
	"iter"

	"vawter.tech/algs"
)

// source holds the pull state shared by every copy of a Cursor.
type source[T any] struct {
	next func() (T, bool)
	stop func()

	cur  T    // The element at pos.
	done bool // The sequence is exhausted or stopped.
	pos  int  // The index of cur, or -1 before the first pull.
}

// fill pulls until the element at index want is loaded or the
// sequence runs out.
func (s *source[T]) fill(want int) {
	for !s.done && s.pos < want {
		v, ok := s.next()
		if !ok {
			s.release()
			return
		}
		s.pos++
		s.cur = v
	}
}

func (s *source[T]) release() {
	if s.done {
		return
	}
	s.done = true
	s.stop()
}

// A Cursor is a single-pass input cursor over an [iter.Seq]. All copies
// of a Cursor share the underlying pull state: once any copy has read
// past a position, the other copies that refer to it are invalid.
type Cursor[T any] struct {
	src *source[T]
	pos int
	end bool
}

var _ algs.Input[Cursor[int], int] = Cursor[int]{}

// Range returns the begin and end cursors for a single pass over
// items. The stop function releases the underlying [iter.Pull]; it is
// called automatically once the sequence is exhausted, and may be
// called more than once. Cursors must not be read after an early stop.
func Range[T any](items iter.Seq[T]) (b, e Cursor[T], stop func()) {
	next, pullStop := iter.Pull(items)
	src := &source[T]{next: next, stop: pullStop, pos: -1}
	return Cursor[T]{src: src}, Cursor[T]{src: src, end: true}, src.release
}

// Equal implements [algs.Input]. A cursor is equal to the end cursor
// once the sequence has no element at its position.
func (c Cursor[T]) Equal(o Cursor[T]) bool {
	switch {
	case c.end && o.end:
		return true
	case c.end:
		return o.atEnd()
	case o.end:
		return c.atEnd()
	default:
		return c.pos == o.pos
	}
}

// Get implements [algs.Input].
func (c Cursor[T]) Get() T {
	c.src.fill(c.pos)
	return c.src.cur
}

// Next implements [algs.Input].
func (c Cursor[T]) Next() Cursor[T] {
	c.pos++
	return c
}

func (c Cursor[T]) atEnd() bool {
	c.src.fill(c.pos)
	return c.src.pos < c.pos
}
