// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package arrayidx

import (
	"fmt"
	"slices"

	"github.com/gomlx/exceptions"
	"golang.org/x/exp/constraints"
)

// IndexNd is an index whose rank is only known at runtime.
//
// It follows the same conventions as the fixed-rank indices: axis 0 is the inside axis.
// Methods never modify the receiver, and any IndexNd returned is a new slice, except for
// the parts returned by SpliceAt.
type IndexNd []int

// ZeroNd returns the all-zero index of the given rank.
func ZeroNd(dim int) IndexNd {
	if dim < 0 {
		exceptions.Panicf("arrayidx: ZeroNd(%d) with negative rank", dim)
	}
	return make(IndexNd, dim)
}

// NewIndexNd creates an IndexNd from sizes of any integer type, converted to int.
func NewIndexNd[T constraints.Integer](sizes ...T) IndexNd {
	idx := make(IndexNd, len(sizes))
	for ii, size := range sizes {
		idx[ii] = int(size)
	}
	return idx
}

// Zero returns the all-zero index with the same rank as idx.
func (idx IndexNd) Zero() IndexNd { return ZeroNd(len(idx)) }

// FromNd returns a copy of sizes. It accepts any length.
func (IndexNd) FromNd(sizes []int) IndexNd {
	return IndexNd(sizes).Clone()
}

// ToNd returns a copy of idx.
func (idx IndexNd) ToNd() IndexNd { return idx.Clone() }

// Clone returns a copy of idx. The copy of a nil index is an empty non-nil index.
func (idx IndexNd) Clone() IndexNd {
	idx2 := make(IndexNd, len(idx))
	copy(idx2, idx)
	return idx2
}

// Equal returns whether both indices have the same rank and components.
func (idx IndexNd) Equal(other IndexNd) bool { return slices.Equal(idx, other) }

// String implements fmt.Stringer.
func (idx IndexNd) String() string { return fmt.Sprintf("%v", []int(idx)) }

func (idx IndexNd) checkSameRank(method string, other IndexNd) {
	if len(idx) != len(other) {
		exceptions.Panicf("arrayidx: IndexNd.%s: rank mismatch between %v (rank %d) and %v (rank %d)",
			method, idx, len(idx), other, len(other))
	}
}

// IndexAdd adds shift component-wise. It panics if the ranks differ.
func (idx IndexNd) IndexAdd(shift IndexNd) IndexNd {
	idx.checkSameRank("IndexAdd", shift)
	result := make(IndexNd, len(idx))
	for axis := range idx {
		result[axis] = idx[axis] + shift[axis]
	}
	return result
}

// IndexSub subtracts shift component-wise. It panics if the ranks differ.
func (idx IndexNd) IndexSub(shift IndexNd) IndexNd {
	idx.checkSameRank("IndexSub", shift)
	result := make(IndexNd, len(idx))
	for axis := range idx {
		result[axis] = idx[axis] - shift[axis]
	}
	return result
}

// IndexPrepend returns a new index with newInside as axis 0.
func (idx IndexNd) IndexPrepend(newInside int) IndexNd {
	result := make(IndexNd, 0, len(idx)+1)
	result = append(result, newInside)
	return append(result, idx...)
}

// IndexAppend returns a new index with newOutside as the new highest axis.
func (idx IndexNd) IndexAppend(newOutside int) IndexNd {
	result := make(IndexNd, 0, len(idx)+1)
	result = append(result, idx...)
	return append(result, newOutside)
}

// StrideAppendPacked extends the packed stride idx with one more packed axis.
func (idx IndexNd) StrideAppendPacked(outside int) IndexNd {
	return strideAppendPacked[IndexNd, IndexNd](idx, outside)
}

// IndexAt returns the component at the given axis. It panics for axes out of [0, Dim()).
func (idx IndexNd) IndexAt(axis Ax) int {
	checkAxis("IndexNd.IndexAt", axis, len(idx))
	return idx[axis]
}

// IndexCut returns a new index without the given axis. It panics for axes out of [0, Dim()).
func (idx IndexNd) IndexCut(axis Ax) IndexNd {
	checkAxis("IndexNd.IndexCut", axis, len(idx))
	result := make(IndexNd, 0, len(idx)-1)
	result = append(result, idx[:axis]...)
	return append(result, idx[axis+1:]...)
}

// SpliceAt splits the index around axis: prefix holds the axes < axis, selected the
// component at axis (empty if axis is out of [0, Dim())) and suffix the axes > axis.
//
// Concatenating prefix, selected and suffix always gives back idx. To build an index
// with a different component at axis, concatenate prefix, the new component and suffix.
//
// The three parts are sub-slices of idx, with their capacity clipped so that appending
// to one of them doesn't overwrite idx.
func (idx IndexNd) SpliceAt(axis Ax) (prefix, selected, suffix IndexNd) {
	rank := len(idx)
	switch {
	case axis < 0:
		return idx[:0:0], idx[:0:0], idx[0:rank:rank]
	case int(axis) >= rank:
		return idx[0:rank:rank], idx[rank:rank:rank], idx[rank:rank:rank]
	}
	a := int(axis)
	return idx[0:a:a], idx[a : a+1 : a+1], idx[a+1 : rank : rank]
}

// ToPackedStride returns the packed stride of idx interpreted as a shape.
func (idx IndexNd) ToPackedStride() IndexNd {
	stride := make(IndexNd, len(idx))
	currentStride := 1
	for axis, dim := range idx {
		stride[axis] = currentStride
		currentStride *= dim
	}
	return stride
}

// IsPacked returns whether stride has the same rank and exactly the values of the packed
// stride of idx.
func (idx IndexNd) IsPacked(stride IndexNd) bool {
	return idx.ToPackedStride().Equal(stride)
}

// IsZero returns whether all components are 0. It is true for rank 0.
func (idx IndexNd) IsZero() bool {
	for _, v := range idx {
		if v != 0 {
			return false
		}
	}
	return true
}

// FlatLen is the product of all components, 1 for rank 0.
func (idx IndexNd) FlatLen() int {
	size := 1
	for _, dim := range idx {
		size *= dim
	}
	return size
}

// FlatIndex is the dot product of idx and stride. It panics if the ranks differ.
func (idx IndexNd) FlatIndex(stride IndexNd) int {
	idx.checkSameRank("FlatIndex", stride)
	flat := 0
	for axis, v := range idx {
		flat += v * stride[axis]
	}
	return flat
}

// Inside returns the component of axis 0, or 1 for rank 0.
func (idx IndexNd) Inside() int {
	if len(idx) == 0 {
		return 1
	}
	return idx[0]
}

// Outside returns the component of the highest axis, or 1 for rank 0.
func (idx IndexNd) Outside() int {
	if len(idx) == 0 {
		return 1
	}
	return idx[len(idx)-1]
}

// Dim returns the rank of idx.
func (idx IndexNd) Dim() int { return len(idx) }

// Ndim is an alias to Dim.
func (idx IndexNd) Ndim() int { return len(idx) }
