// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

// Package linger reports on where single-pass sequences were created
// when they have been started but not yet released.
//
// A sequence that is pulled with [seq.Range] holds a coroutine until it
// is either exhausted or stopped. Wrapping the sequence with [Track]
// allows a test to verify that every range it opened was released.
package linger

import (
	"iter"
	"runtime"
	"sync"
	"sync/atomic"
)

// This value is sensitive to the code structure.
const callersOffset = 2

// NewRecorder constructs a [Recorder] that samples the call stack at the
// requested depth. A depth of 1 will record the location at which
// [Track] was called.
func NewRecorder(depth int) *Recorder {
	return &Recorder{depth: depth}
}

// A Recorder tracks the sequences returned by [Track] that are
// currently running.
type Recorder struct {
	counter atomic.Uintptr
	data    sync.Map
	depth   int
}

// Callers returns a snapshot of the caller stacks associated with any
// tracked sequences that are currently running.
func (r *Recorder) Callers() [][]uintptr {
	var ret [][]uintptr
	r.data.Range(func(_, value any) bool {
		ret = append(ret, value.([]uintptr))
		return true
	})
	return ret
}

// Track returns a sequence that yields the same values as items. The
// Recorder reports the caller of Track from the time the sequence
// starts until it returns, whether by running out or by being stopped.
// A sequence that is never started is never reported.
func Track[T any](r *Recorder, items iter.Seq[T]) iter.Seq[T] {
	pc := make([]uintptr, r.depth)
	pc = pc[:runtime.Callers(callersOffset, pc)]

	return func(yield func(T) bool) {
		id := r.counter.Add(1)
		r.data.Store(id, pc)
		defer r.data.Delete(id)

		items(yield)
	}
}
