// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package arrayidx

// Index3d is the index of rank 3.
type Index3d [3]int

func (Index3d) Zero() Index3d { return Index3d{} }

func (Index3d) FromNd(sizes []int) Index3d {
	checkFromNd(sizes, 3)
	return Index3d{sizes[0], sizes[1], sizes[2]}
}

func (idx Index3d) ToNd() IndexNd { return IndexNd{idx[0], idx[1], idx[2]} }

func (idx Index3d) IndexAdd(shift Index3d) Index3d {
	return Index3d{
		idx[0] + shift[0],
		idx[1] + shift[1],
		idx[2] + shift[2],
	}
}

func (idx Index3d) IndexSub(shift Index3d) Index3d {
	return Index3d{
		idx[0] - shift[0],
		idx[1] - shift[1],
		idx[2] - shift[2],
	}
}

func (idx Index3d) IndexPrepend(newInside int) Index4d {
	return Index4d{newInside, idx[0], idx[1], idx[2]}
}

func (idx Index3d) IndexAppend(newOutside int) Index4d {
	return Index4d{idx[0], idx[1], idx[2], newOutside}
}

func (idx Index3d) StrideAppendPacked(outside int) Index4d {
	return strideAppendPacked[Index3d, Index4d](idx, outside)
}

func (idx Index3d) IndexAt(axis Ax) int {
	checkAxis("Index3d.IndexAt", axis, 3)
	return idx[axis]
}

func (idx Index3d) IndexCut(axis Ax) Index2d {
	checkAxis("Index3d.IndexCut", axis, 3)
	switch axis {
	case 0:
		return Index2d{idx[1], idx[2]}
	case 1:
		return Index2d{idx[0], idx[2]}
	default:
		return Index2d{idx[0], idx[1]}
	}
}

func (idx Index3d) ToPackedStride() Index3d {
	var s Index3d
	s[0] = 1
	s[1] = s[0] * idx[0]
	s[2] = s[1] * idx[1]
	return s
}

func (idx Index3d) IsPacked(stride Index3d) bool { return idx.ToPackedStride() == stride }

func (idx Index3d) FlatLen() int { return idx[0] * idx[1] * idx[2] }

func (idx Index3d) FlatIndex(stride Index3d) int {
	return idx[0]*stride[0] +
		idx[1]*stride[1] +
		idx[2]*stride[2]
}

func (idx Index3d) Inside() int { return idx[0] }

func (idx Index3d) Outside() int { return idx[2] }

func (Index3d) Dim() int { return 3 }

func (Index3d) Ndim() int { return 3 }
