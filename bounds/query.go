// SPDX-License-Identifier: MIT

// Package bounds - queries over collections of volumes.
//
// Both queries are read-only and may run concurrently over shared slices.
// Complexity: OverlappingPairs is O(n²); Cull is O(n).
package bounds

import (
	"github.com/katalvlaran/spatiumgl/vector"
	"golang.org/x/exp/constraints"
)

// Pair holds the indexes of two intersecting volumes, I < J.
type Pair struct {
	I, J int
}

// OverlappingPairs returns every pair (i, j), i < j, of intersecting
// volumes, ordered by i then j.
func OverlappingPairs[T constraints.Float, A vector.Array[T]](volumes []Volume[T, A]) []Pair {
	var pairs []Pair
	for i := 0; i < len(volumes); i++ {
		for j := i + 1; j < len(volumes); j++ {
			if Intersects(volumes[i], volumes[j]) {
				pairs = append(pairs, Pair{I: i, J: j})
			}
		}
	}

	return pairs
}

// Cull returns the indexes, in order, of the volumes that intersect view.
func Cull[T constraints.Float, A vector.Array[T]](volumes []Volume[T, A], view Volume[T, A]) []int {
	visible := make([]int, 0, len(volumes))
	for i, v := range volumes {
		if Intersects(view, v) {
			visible = append(visible, i)
		}
	}

	return visible
}

// ContainedPoints returns the points inside v, in input order.
func ContainedPoints[T constraints.Float, A vector.Array[T]](v Volume[T, A], points []vector.Vector[T, A]) []vector.Vector[T, A] {
	var in []vector.Vector[T, A]
	for _, p := range points {
		if v.Contains(p) {
			in = append(in, p)
		}
	}

	return in
}
