// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package arrayidx

import (
	"iter"

	"github.com/pkg/errors"
)

// Iter iterates sequentially over all coordinates of the shape idx, in packed order: axis 0
// (the inside axis) changes fastest.
//
// It yields the flat index (counter) and the coordinate. The flat index is the same as
// coordinate.FlatIndex(idx.ToPackedStride()).
//
// To avoid allocating a new coordinate per step, the yielded coordinate is owned by the Iter()
// method: don't change it inside the loop, and clone it if it needs to be kept.
func (idx IndexNd) Iter() iter.Seq2[int, IndexNd] {
	coord := make(IndexNd, len(idx))
	return idx.IterOn(coord)
}

// IterOn iterates over all coordinates of the shape idx, like Iter, but updating the given
// coord slice.
//
// During the iteration the caller shouldn't modify coord, otherwise it will lead to undefined behavior.
//
// It expects len(coord) == idx.Dim(). It will panic otherwise.
func (idx IndexNd) IterOn(coord IndexNd) iter.Seq2[int, IndexNd] {
	if len(coord) != len(idx) {
		panic(errors.Errorf("IndexNd.IterOn given len(coord) == %d, want it to be equal to the rank %d", len(coord), len(idx)))
	}
	return func(yield func(int, IndexNd) bool) {
		rank := len(idx)
		if rank == 0 {
			// Rank 0: yield one empty coordinate.
			_ = yield(0, coord)
			return
		}

		// Any axis with non-positive dimension means there is nothing to iterate over.
		// Also count the number of "non-trivial" axes: axes whose dimensions > 1.
		numNonTrivialAxes := 0
		for _, dim := range idx {
			if dim <= 0 {
				return
			}
			if dim > 1 {
				numNonTrivialAxes++
			}
		}
		for axis := range coord {
			coord[axis] = 0
		}

		// Version 1: there are only trivial axes, there is only one coordinate.
		if numNonTrivialAxes == 0 {
			yield(0, coord)
			return
		}

		// Version 2: most axes are non-trivial, simply iterate over all of them.
		if rank <= numNonTrivialAxes+2 {
			flatIdx := 0
		v2Yielder:
			for {
				if !yield(flatIdx, coord) {
					return
				}
				flatIdx++

				// Increment like a counter, with axis 0 as the lowest digit.
				for axis := 0; axis < rank; axis++ {
					coord[axis]++
					if coord[axis] < idx[axis] {
						continue v2Yielder
					}
					// Carry over to the next axis.
					coord[axis] = 0
				}

				// The outside axis overflowed: all coordinates were visited.
				break
			}
			return
		}

		// Version 3: many "trivial" axes (dimension == 1), only iterate over the non-trivial ones.
		nonTrivialAxes := make([]int, 0, numNonTrivialAxes)
		for axis, dim := range idx {
			if dim > 1 {
				nonTrivialAxes = append(nonTrivialAxes, axis)
			}
		}
		flatIdx := 0
	v3Yielder:
		for {
			if !yield(flatIdx, coord) {
				return
			}
			flatIdx++
			for _, axis := range nonTrivialAxes {
				coord[axis]++
				if coord[axis] < idx[axis] {
					continue v3Yielder
				}
				coord[axis] = 0
			}
			break
		}
	}
}

// Coords iterates over all coordinates of a fixed-rank shape, in packed order (axis 0 changes
// fastest), yielding the flat index and the coordinate.
//
// For Index0d it yields exactly one coordinate, and for shapes with a zero dimension none.
func Coords[I ArrayIndex[I]](shape I) iter.Seq2[int, I] {
	shapeNd := shape.ToNd()
	return func(yield func(int, I) bool) {
		var zero I
		for flatIdx, coord := range shapeNd.Iter() {
			if !yield(flatIdx, zero.FromNd(coord)) {
				return
			}
		}
	}
}
