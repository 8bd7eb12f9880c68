// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package arrayidx

// Index4d is the index of rank 4.
type Index4d [4]int

func (Index4d) Zero() Index4d { return Index4d{} }

func (Index4d) FromNd(sizes []int) Index4d {
	checkFromNd(sizes, 4)
	return Index4d{sizes[0], sizes[1], sizes[2], sizes[3]}
}

func (idx Index4d) ToNd() IndexNd { return IndexNd{idx[0], idx[1], idx[2], idx[3]} }

func (idx Index4d) IndexAdd(shift Index4d) Index4d {
	return Index4d{
		idx[0] + shift[0],
		idx[1] + shift[1],
		idx[2] + shift[2],
		idx[3] + shift[3],
	}
}

func (idx Index4d) IndexSub(shift Index4d) Index4d {
	return Index4d{
		idx[0] - shift[0],
		idx[1] - shift[1],
		idx[2] - shift[2],
		idx[3] - shift[3],
	}
}

func (idx Index4d) IndexPrepend(newInside int) Index5d {
	return Index5d{newInside, idx[0], idx[1], idx[2], idx[3]}
}

func (idx Index4d) IndexAppend(newOutside int) Index5d {
	return Index5d{idx[0], idx[1], idx[2], idx[3], newOutside}
}

func (idx Index4d) StrideAppendPacked(outside int) Index5d {
	return strideAppendPacked[Index4d, Index5d](idx, outside)
}

func (idx Index4d) IndexAt(axis Ax) int {
	checkAxis("Index4d.IndexAt", axis, 4)
	return idx[axis]
}

func (idx Index4d) IndexCut(axis Ax) Index3d {
	checkAxis("Index4d.IndexCut", axis, 4)
	switch axis {
	case 0:
		return Index3d{idx[1], idx[2], idx[3]}
	case 1:
		return Index3d{idx[0], idx[2], idx[3]}
	case 2:
		return Index3d{idx[0], idx[1], idx[3]}
	default:
		return Index3d{idx[0], idx[1], idx[2]}
	}
}

func (idx Index4d) ToPackedStride() Index4d {
	var s Index4d
	s[0] = 1
	s[1] = s[0] * idx[0]
	s[2] = s[1] * idx[1]
	s[3] = s[2] * idx[2]
	return s
}

func (idx Index4d) IsPacked(stride Index4d) bool { return idx.ToPackedStride() == stride }

func (idx Index4d) FlatLen() int { return idx[0] * idx[1] * idx[2] * idx[3] }

func (idx Index4d) FlatIndex(stride Index4d) int {
	return idx[0]*stride[0] +
		idx[1]*stride[1] +
		idx[2]*stride[2] +
		idx[3]*stride[3]
}

func (idx Index4d) Inside() int { return idx[0] }

func (idx Index4d) Outside() int { return idx[3] }

func (Index4d) Dim() int { return 4 }

func (Index4d) Ndim() int { return 4 }
