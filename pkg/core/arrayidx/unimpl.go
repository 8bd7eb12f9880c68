// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package arrayidx

import "github.com/gomlx/exceptions"

const errRankAbove5 = "fixed-rank indices above rank 5 are not implemented, use IndexNd"

// UnimplIndex is the Above type of Index5d: it only exists to close the rank chain.
//
// It is never meant to be used, and every method panics.
type UnimplIndex struct{}

func unimplemented(method string) {
	exceptions.Panicf("arrayidx: UnimplIndex.%s: %s", method, errRankAbove5)
}

func (UnimplIndex) Zero() UnimplIndex {
	unimplemented("Zero")
	return UnimplIndex{}
}

func (UnimplIndex) FromNd(_ []int) UnimplIndex {
	unimplemented("FromNd")
	return UnimplIndex{}
}

func (UnimplIndex) ToNd() IndexNd {
	unimplemented("ToNd")
	return nil
}

func (UnimplIndex) IndexAdd(_ UnimplIndex) UnimplIndex {
	unimplemented("IndexAdd")
	return UnimplIndex{}
}

func (UnimplIndex) IndexSub(_ UnimplIndex) UnimplIndex {
	unimplemented("IndexSub")
	return UnimplIndex{}
}

func (UnimplIndex) IndexPrepend(_ int) UnimplIndex {
	unimplemented("IndexPrepend")
	return UnimplIndex{}
}

func (UnimplIndex) IndexAppend(_ int) UnimplIndex {
	unimplemented("IndexAppend")
	return UnimplIndex{}
}

func (UnimplIndex) StrideAppendPacked(_ int) UnimplIndex {
	unimplemented("StrideAppendPacked")
	return UnimplIndex{}
}

func (UnimplIndex) IndexAt(_ Ax) int {
	unimplemented("IndexAt")
	return 0
}

func (UnimplIndex) IndexCut(_ Ax) Index5d {
	unimplemented("IndexCut")
	return Index5d{}
}

func (UnimplIndex) ToPackedStride() UnimplIndex {
	unimplemented("ToPackedStride")
	return UnimplIndex{}
}

func (UnimplIndex) IsPacked(_ UnimplIndex) bool {
	unimplemented("IsPacked")
	return false
}

func (UnimplIndex) FlatLen() int {
	unimplemented("FlatLen")
	return 0
}

func (UnimplIndex) FlatIndex(_ UnimplIndex) int {
	unimplemented("FlatIndex")
	return 0
}

func (UnimplIndex) Inside() int {
	unimplemented("Inside")
	return 0
}

func (UnimplIndex) Outside() int {
	unimplemented("Outside")
	return 0
}

func (UnimplIndex) Dim() int {
	unimplemented("Dim")
	return 0
}

func (UnimplIndex) Ndim() int {
	unimplemented("Ndim")
	return 0
}
