// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package arrayidx

import "github.com/gomlx/exceptions"

// Index5d is the index of rank 5, the highest fixed rank. Its Above type is UnimplIndex,
// so IndexPrepend, IndexAppend and StrideAppendPacked always panic.
//
// Use IndexNd for higher ranks.
type Index5d [5]int

func (Index5d) Zero() Index5d { return Index5d{} }

func (Index5d) FromNd(sizes []int) Index5d {
	checkFromNd(sizes, 5)
	return Index5d{sizes[0], sizes[1], sizes[2], sizes[3], sizes[4]}
}

func (idx Index5d) ToNd() IndexNd { return IndexNd{idx[0], idx[1], idx[2], idx[3], idx[4]} }

func (idx Index5d) IndexAdd(shift Index5d) Index5d {
	return Index5d{
		idx[0] + shift[0],
		idx[1] + shift[1],
		idx[2] + shift[2],
		idx[3] + shift[3],
		idx[4] + shift[4],
	}
}

func (idx Index5d) IndexSub(shift Index5d) Index5d {
	return Index5d{
		idx[0] - shift[0],
		idx[1] - shift[1],
		idx[2] - shift[2],
		idx[3] - shift[3],
		idx[4] - shift[4],
	}
}

func (Index5d) IndexPrepend(newInside int) UnimplIndex {
	exceptions.Panicf("arrayidx: Index5d.IndexPrepend(%d): %s", newInside, errRankAbove5)
	return UnimplIndex{}
}

func (Index5d) IndexAppend(newOutside int) UnimplIndex {
	exceptions.Panicf("arrayidx: Index5d.IndexAppend(%d): %s", newOutside, errRankAbove5)
	return UnimplIndex{}
}

func (idx Index5d) StrideAppendPacked(outside int) UnimplIndex {
	return strideAppendPacked[Index5d, UnimplIndex](idx, outside)
}

func (idx Index5d) IndexAt(axis Ax) int {
	checkAxis("Index5d.IndexAt", axis, 5)
	return idx[axis]
}

func (idx Index5d) IndexCut(axis Ax) Index4d {
	checkAxis("Index5d.IndexCut", axis, 5)
	switch axis {
	case 0:
		return Index4d{idx[1], idx[2], idx[3], idx[4]}
	case 1:
		return Index4d{idx[0], idx[2], idx[3], idx[4]}
	case 2:
		return Index4d{idx[0], idx[1], idx[3], idx[4]}
	case 3:
		return Index4d{idx[0], idx[1], idx[2], idx[4]}
	default:
		return Index4d{idx[0], idx[1], idx[2], idx[3]}
	}
}

func (idx Index5d) ToPackedStride() Index5d {
	var s Index5d
	s[0] = 1
	s[1] = s[0] * idx[0]
	s[2] = s[1] * idx[1]
	s[3] = s[2] * idx[2]
	s[4] = s[3] * idx[3]
	return s
}

func (idx Index5d) IsPacked(stride Index5d) bool { return idx.ToPackedStride() == stride }

func (idx Index5d) FlatLen() int { return idx[0] * idx[1] * idx[2] * idx[3] * idx[4] }

func (idx Index5d) FlatIndex(stride Index5d) int {
	return idx[0]*stride[0] +
		idx[1]*stride[1] +
		idx[2]*stride[2] +
		idx[3]*stride[3] +
		idx[4]*stride[4]
}

func (idx Index5d) Inside() int { return idx[0] }

func (idx Index5d) Outside() int { return idx[4] }

func (Index5d) Dim() int { return 5 }

func (Index5d) Ndim() int { return 5 }
