// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package arrayidx

// Index2d is the index of rank 2: {inside, outside}.
type Index2d [2]int

func (Index2d) Zero() Index2d { return Index2d{} }

func (Index2d) FromNd(sizes []int) Index2d {
	checkFromNd(sizes, 2)
	return Index2d{sizes[0], sizes[1]}
}

func (idx Index2d) ToNd() IndexNd { return IndexNd{idx[0], idx[1]} }

func (idx Index2d) IndexAdd(shift Index2d) Index2d {
	return Index2d{
		idx[0] + shift[0],
		idx[1] + shift[1],
	}
}

func (idx Index2d) IndexSub(shift Index2d) Index2d {
	return Index2d{
		idx[0] - shift[0],
		idx[1] - shift[1],
	}
}

func (idx Index2d) IndexPrepend(newInside int) Index3d {
	return Index3d{newInside, idx[0], idx[1]}
}

func (idx Index2d) IndexAppend(newOutside int) Index3d {
	return Index3d{idx[0], idx[1], newOutside}
}

func (idx Index2d) StrideAppendPacked(outside int) Index3d {
	return strideAppendPacked[Index2d, Index3d](idx, outside)
}

func (idx Index2d) IndexAt(axis Ax) int {
	checkAxis("Index2d.IndexAt", axis, 2)
	return idx[axis]
}

func (idx Index2d) IndexCut(axis Ax) Index1d {
	checkAxis("Index2d.IndexCut", axis, 2)
	switch axis {
	case 0:
		return Index1d{idx[1]}
	default:
		return Index1d{idx[0]}
	}
}

func (idx Index2d) ToPackedStride() Index2d {
	var s Index2d
	s[0] = 1
	s[1] = s[0] * idx[0]
	return s
}

func (idx Index2d) IsPacked(stride Index2d) bool { return idx.ToPackedStride() == stride }

func (idx Index2d) FlatLen() int { return idx[0] * idx[1] }

func (idx Index2d) FlatIndex(stride Index2d) int {
	return idx[0]*stride[0] +
		idx[1]*stride[1]
}

func (idx Index2d) Inside() int { return idx[0] }

func (idx Index2d) Outside() int { return idx[1] }

func (Index2d) Dim() int { return 2 }

func (Index2d) Ndim() int { return 2 }
