// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package algs_test

import (
	"fmt"
	"slices"

	"github.com/go-softwarelab/common/pkg/is"
	"vawter.tech/algs"
	"vawter.tech/algs/list"
	"vawter.tech/algs/seq"
	"vawter.tech/algs/slice"
)

func ExampleFind() {
	b, e := slice.Range([]int{3, 1, 4, 1, 5})

	if found := algs.Find(b, e, 4); !found.Equal(e) {
		fmt.Println("found at", found.Index())
	}
	if algs.Find(b, e, 9).Equal(e) {
		fmt.Println("9 is absent")
	}

	// Output:
	// found at 2
	// 9 is absent
}

func ExampleSearch() {
	b1, e1 := slice.Range([]int{1, 2, 3, 4, 5})
	b2, e2 := slice.Range([]int{3, 4})

	fmt.Println(algs.Search(b1, e1, b2, e2).Index())

	// Output:
	// 2
}

func ExampleBinarySearch() {
	b, e := slice.Range([]int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9})

	fmt.Println(algs.BinarySearch(b, e, 5))
	fmt.Println(algs.BinarySearch(b, e, 13))

	// Output:
	// true
	// false
}

func ExampleRemove() {
	s := []int{1, 2, 3, 2, 5}
	b, e := slice.Range(s)

	// Remove does not shrink the slice; reslice to the new end.
	m := algs.Remove(b, e, 2)
	fmt.Println(s[:m.Index()])

	// Output:
	// [1 3 5]
}

func ExamplePartition() {
	s := []int{1, 2, 3, 4, 5, 6, 7, 8}
	b, e := slice.Range(s)

	m := algs.Partition(b, e, func(x int) bool { return x%2 == 0 })
	fmt.Println(s[:m.Index()], s[m.Index():])

	// Output:
	// [8 2 6 4] [5 3 7 1]
}

func ExampleReverse() {
	l := list.New("a", "b", "c", "d")
	b, e := list.Range[string](l)

	algs.Reverse(b, e)
	fmt.Println(list.Collect[string](l))

	// Output:
	// [d c b a]
}

func ExampleRemoveCopyIf() {
	b, e, stop := seq.Range(slices.Values([]int{9, 2, 7, 4, 5}))
	defer stop()

	var small []int
	algs.RemoveCopyIf(b, e, seq.AppendTo(&small), is.GreaterThan(5))
	fmt.Println(small)

	// Output:
	// [2 4 5]
}

func ExampleAccumulate() {
	b, e := slice.Range([]int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9})

	fmt.Println(algs.Accumulate(b, e, 0))
	fmt.Println(algs.Accumulate(e, e, 100))

	// Output:
	// 45
	// 100
}

func ExampleForEach() {
	b, e := slice.Range([]string{"alpha", "bravo", "charlie"})

	count := 0
	algs.ForEach(b, e, func(s string) {
		count++
		fmt.Printf("%d: %s\n", count, s)
	})

	// Output:
	// 1: alpha
	// 2: bravo
	// 3: charlie
}
