// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package arrayidx

// Index1d is the index of rank 1.
type Index1d [1]int

func (Index1d) Zero() Index1d { return Index1d{} }

func (Index1d) FromNd(sizes []int) Index1d {
	checkFromNd(sizes, 1)
	return Index1d{sizes[0]}
}

func (idx Index1d) ToNd() IndexNd { return IndexNd{idx[0]} }

func (idx Index1d) IndexAdd(shift Index1d) Index1d { return Index1d{idx[0] + shift[0]} }

func (idx Index1d) IndexSub(shift Index1d) Index1d { return Index1d{idx[0] - shift[0]} }

func (idx Index1d) IndexPrepend(newInside int) Index2d { return Index2d{newInside, idx[0]} }

func (idx Index1d) IndexAppend(newOutside int) Index2d { return Index2d{idx[0], newOutside} }

func (idx Index1d) StrideAppendPacked(outside int) Index2d {
	return strideAppendPacked[Index1d, Index2d](idx, outside)
}

func (idx Index1d) IndexAt(axis Ax) int {
	checkAxis("Index1d.IndexAt", axis, 1)
	return idx[0]
}

func (idx Index1d) IndexCut(axis Ax) Index0d {
	checkAxis("Index1d.IndexCut", axis, 1)
	return Index0d{}
}

func (Index1d) ToPackedStride() Index1d { return Index1d{1} }

func (idx Index1d) IsPacked(stride Index1d) bool { return idx.ToPackedStride() == stride }

func (idx Index1d) FlatLen() int { return idx[0] }

func (idx Index1d) FlatIndex(stride Index1d) int { return idx[0] * stride[0] }

func (idx Index1d) Inside() int { return idx[0] }

func (idx Index1d) Outside() int { return idx[0] }

func (Index1d) Dim() int { return 1 }

func (Index1d) Ndim() int { return 1 }
