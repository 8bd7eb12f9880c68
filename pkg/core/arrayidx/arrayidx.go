// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package arrayidx defines fixed-rank multidimensional array indices and the stride
// arithmetic needed to address flat (linear) memory as a dense N-dimensional array.
//
// The same index value serves as a shape (extent of each axis), a stride (linear step of
// each axis) or a coordinate (a position within a shape); the operation determines the
// interpretation.
//
// ## Glossary
//
//   - Rank: number of axes of an index. Fixed-rank types exist for ranks 0 to 5 (Index0d to
//     Index5d) and IndexNd covers any rank known only at runtime.
//   - Axis: a zero-based position in an index, typed Ax. Axis 0 is the "inside" axis (the
//     fastest varying in memory) and the highest axis is the "outside" axis (the slowest
//     varying). This is the column-major (Fortran) convention.
//   - Packed stride: the stride that makes the elements of a shape contiguous in memory:
//     stride[0] = 1 and stride[d] = stride[d-1] * shape[d-1].
//   - Flat index: the dot product of a coordinate and a stride.
//   - Prepend/Append: add a new inside (axis 0) or outside (new highest axis) axis.
//   - Cut: remove one axis.
//
// Example: a buffer holding an image with 3 channels (inside), width 640 and height 480
// (outside):
//
//	shape := arrayidx.Index3d{3, 640, 480}
//	stride := shape.ToPackedStride()            // {1, 3, 1920}
//	offset := arrayidx.Index3d{2, 10, 1}.FlatIndex(stride) // 2 + 30 + 1920
//	batched := stride.StrideAppendPacked(480)   // Stride of a batch of such images.
//
// ## Asserts
//
// Passing an out-of-range axis, a list of the wrong length to FromNd or a range that
// doesn't fit its axis is a programming error, and panics (with exceptions.Panicf).
// Where the input may come from a user, use the Check* or Try* variations, which
// return an error instead.
package arrayidx

import (
	"fmt"

	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"
)

// Ax labels an integer as an axis index.
//
// Axes are signed so that a negative value is reported as out-of-range instead of
// wrapping around.
type Ax int

// String implements fmt.Stringer.
func (ax Ax) String() string { return fmt.Sprintf("ax%d", int(ax)) }

// ArrayIndex is the capability set shared by every index type, regardless of rank.
//
// Methods like Zero and FromNd don't use the receiver value, so generic code can call them
// on the zero value of the type:
//
//	var zero I
//	shape := zero.FromNd(dims)
type ArrayIndex[I any] interface {
	// Zero returns the all-zero index of the same rank.
	Zero() I

	// FromNd converts the rank-agnostic list of sizes to an index. It panics if
	// len(sizes) differs from the rank.
	FromNd(sizes []int) I

	// ToNd returns a new IndexNd with the components of the index.
	ToNd() IndexNd

	// IndexAdd adds shift component-wise.
	IndexAdd(shift I) I

	// IndexSub subtracts shift component-wise.
	IndexSub(shift I) I

	// IndexAt returns the component at the given axis. It panics for axes out of [0, rank).
	IndexAt(axis Ax) int

	// ToPackedStride returns the packed stride of the index interpreted as a shape.
	ToPackedStride() I

	// IsPacked returns whether stride is exactly the packed stride of the index.
	IsPacked(stride I) bool

	// FlatLen is the product of all components.
	FlatLen() int

	// FlatIndex is the dot product of the index (as a coordinate) and the stride.
	FlatIndex(stride I) int

	// Inside returns the component of axis 0.
	Inside() int

	// Outside returns the component of the highest axis.
	Outside() int

	// Dim returns the rank.
	Dim() int

	// Ndim is an alias to Dim.
	Ndim() int
}

// RankChain extends ArrayIndex with the operations that change the rank: Above is the
// index type with one more axis, and Below the one with one less.
//
// The chain is explicit: Index0d -> Index1d -> ... -> Index5d -> UnimplIndex. Index0d is
// its own Below.
type RankChain[I, Above, Below any] interface {
	ArrayIndex[I]

	// IndexPrepend returns a new index with newInside as axis 0, and the existing
	// components shifted one axis up.
	IndexPrepend(newInside int) Above

	// IndexAppend returns a new index with the existing components and newOutside as the
	// new highest axis.
	IndexAppend(newOutside int) Above

	// StrideAppendPacked extends a packed stride with one more packed axis, whose
	// preceding axis has the given extent: it appends Outside() * outside.
	StrideAppendPacked(outside int) Above

	// IndexCut returns the index without the given axis, preserving the order of the others.
	IndexCut(axis Ax) Below
}

// Compile-time check that every index type is linked in the rank chain.
var (
	_ RankChain[Index0d, Index1d, Index0d]         = Index0d{}
	_ RankChain[Index1d, Index2d, Index0d]         = Index1d{}
	_ RankChain[Index2d, Index3d, Index1d]         = Index2d{}
	_ RankChain[Index3d, Index4d, Index2d]         = Index3d{}
	_ RankChain[Index4d, Index5d, Index3d]         = Index4d{}
	_ RankChain[Index5d, UnimplIndex, Index4d]     = Index5d{}
	_ RankChain[UnimplIndex, UnimplIndex, Index5d] = UnimplIndex{}
	_ RankChain[IndexNd, IndexNd, IndexNd]         = IndexNd(nil)
)

// outsideAppender is the part of RankChain used by strideAppendPacked.
type outsideAppender[Above any] interface {
	IndexAppend(newOutside int) Above
	Outside() int
}

// strideAppendPacked implements StrideAppendPacked for every rank.
func strideAppendPacked[I outsideAppender[Above], Above any](stride I, outside int) Above {
	return stride.IndexAppend(stride.Outside() * outside)
}

// TryFromNd converts sizes to the index type I, returning an error if len(sizes) doesn't
// match the rank of I.
//
// It doesn't work with IndexNd (which accepts any length) or UnimplIndex (which panics).
func TryFromNd[I ArrayIndex[I]](sizes []int) (idx I, err error) {
	rank := idx.Dim()
	if len(sizes) != rank {
		err = errors.Errorf("arrayidx: cannot convert %d sizes %v to an index of rank %d", len(sizes), sizes, rank)
		return
	}
	idx = idx.FromNd(sizes)
	return
}

// checkFromNd is used by the FromNd implementations of the fixed-rank types.
func checkFromNd(sizes []int, rank int) {
	if len(sizes) != rank {
		exceptions.Panicf("arrayidx: FromNd(%v) got %d sizes, the index has rank %d", sizes, len(sizes), rank)
	}
}

// checkAxis panics if the axis is not in [0, rank).
func checkAxis(method string, axis Ax, rank int) {
	if axis < 0 || int(axis) >= rank {
		exceptions.Panicf("arrayidx: %s(%d) out-of-bounds for rank %d", method, int(axis), rank)
	}
}
