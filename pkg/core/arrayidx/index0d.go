// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package arrayidx

import "github.com/gomlx/exceptions"

// Index0d is the index of rank 0 (a scalar). It has exactly one value.
//
// By convention Inside and Outside return 1, the extent of a degenerate zero-dimensional
// block, and cutting an axis returns Index0d unchanged.
type Index0d struct{}

func (Index0d) Zero() Index0d { return Index0d{} }

func (Index0d) FromNd(sizes []int) Index0d {
	checkFromNd(sizes, 0)
	return Index0d{}
}

func (Index0d) ToNd() IndexNd { return IndexNd{} }

func (Index0d) IndexAdd(_ Index0d) Index0d { return Index0d{} }

func (Index0d) IndexSub(_ Index0d) Index0d { return Index0d{} }

func (Index0d) IndexPrepend(newInside int) Index1d { return Index1d{newInside} }

func (Index0d) IndexAppend(newOutside int) Index1d { return Index1d{newOutside} }

func (idx Index0d) StrideAppendPacked(outside int) Index1d {
	return strideAppendPacked[Index0d, Index1d](idx, outside)
}

// IndexAt always panics: there are no axes in rank 0.
func (Index0d) IndexAt(axis Ax) int {
	exceptions.Panicf("arrayidx: Index0d.IndexAt(%d): rank 0 has no axes", int(axis))
	return 0
}

// IndexCut returns Index0d, for any axis.
func (Index0d) IndexCut(_ Ax) Index0d { return Index0d{} }

func (Index0d) ToPackedStride() Index0d { return Index0d{} }

func (Index0d) IsPacked(_ Index0d) bool { return true }

func (Index0d) FlatLen() int { return 1 }

func (Index0d) FlatIndex(_ Index0d) int { return 0 }

func (Index0d) Inside() int { return 1 }

func (Index0d) Outside() int { return 1 }

func (Index0d) Dim() int { return 0 }

func (Index0d) Ndim() int { return 0 }
