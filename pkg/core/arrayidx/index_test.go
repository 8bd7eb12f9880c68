// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package arrayidx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndex0d(t *testing.T) {
	var idx Index0d
	require.Equal(t, 0, idx.Dim())
	require.Equal(t, 1, idx.Inside())
	require.Equal(t, 1, idx.Outside())
	require.Equal(t, 1, idx.FlatLen())
	require.True(t, idx.IsPacked(idx.ToPackedStride()))
	require.Equal(t, Index1d{3}, idx.IndexPrepend(3))
	require.Equal(t, Index1d{3}, idx.IndexAppend(3))
	require.Equal(t, Index1d{5}, idx.StrideAppendPacked(5))

	// Rank 0 has no axes: IndexAt always panics, but IndexCut loops back to rank 0.
	require.Panics(t, func() { _ = idx.IndexAt(0) })
	require.NotPanics(t, func() { require.Equal(t, Index0d{}, idx.IndexCut(0)) })
	require.NotPanics(t, func() { require.Equal(t, Index0d{}, idx.IndexCut(7)) })
}

func TestIndex1d(t *testing.T) {
	idx := Index1d{7}
	require.Equal(t, Index1d{0}, idx.Zero())
	require.Equal(t, 7, idx.Inside())
	require.Equal(t, 7, idx.Outside())
	require.Equal(t, Index1d{1}, idx.ToPackedStride())
	require.False(t, idx.IsPacked(Index1d{2}))
	require.Equal(t, Index2d{1, 7}, idx.IndexPrepend(1))
	require.Equal(t, Index2d{7, 1}, idx.IndexAppend(1))
	require.Equal(t, Index0d{}, idx.IndexCut(0))
	require.Panics(t, func() { _ = idx.IndexCut(1) })
	require.Panics(t, func() { _ = idx.IndexCut(-1) })
}

func TestIndexCut(t *testing.T) {
	require.Equal(t, Index1d{20}, Index2d{10, 20}.IndexCut(0))
	require.Equal(t, Index1d{10}, Index2d{10, 20}.IndexCut(1))

	idx3 := Index3d{10, 20, 30}
	require.Equal(t, Index2d{20, 30}, idx3.IndexCut(0))
	require.Equal(t, Index2d{10, 30}, idx3.IndexCut(1))
	require.Equal(t, Index2d{10, 20}, idx3.IndexCut(2))

	idx4 := Index4d{10, 20, 30, 40}
	require.Equal(t, Index3d{20, 30, 40}, idx4.IndexCut(0))
	require.Equal(t, Index3d{10, 30, 40}, idx4.IndexCut(1))
	require.Equal(t, Index3d{10, 20, 40}, idx4.IndexCut(2))
	require.Equal(t, Index3d{10, 20, 30}, idx4.IndexCut(3))

	idx5 := Index5d{10, 20, 30, 40, 50}
	require.Equal(t, Index4d{20, 30, 40, 50}, idx5.IndexCut(0))
	require.Equal(t, Index4d{10, 30, 40, 50}, idx5.IndexCut(1))
	require.Equal(t, Index4d{10, 20, 40, 50}, idx5.IndexCut(2))
	require.Equal(t, Index4d{10, 20, 30, 50}, idx5.IndexCut(3))
	require.Equal(t, Index4d{10, 20, 30, 40}, idx5.IndexCut(4))

	idxNd := IndexNd{10, 20, 30, 40, 50, 60}
	require.Equal(t, IndexNd{10, 20, 30, 40, 60}, idxNd.IndexCut(4))
	require.Equal(t, IndexNd{10, 20, 30, 40, 50, 60}, idxNd, "IndexCut must not modify the receiver")

	for _, fn := range []func(){
		func() { _ = Index2d{}.IndexCut(2) },
		func() { _ = Index3d{}.IndexCut(3) },
		func() { _ = Index4d{}.IndexCut(-1) },
		func() { _ = Index5d{}.IndexCut(5) },
		func() { _ = IndexNd{1, 2}.IndexCut(2) },
		func() { _ = IndexNd{}.IndexCut(0) },
	} {
		require.Panics(t, fn)
	}
}

func TestPackedStride(t *testing.T) {
	require.Equal(t, Index2d{1, 3}, Index2d{3, 4}.ToPackedStride())
	require.Equal(t, Index3d{1, 3, 12}, Index3d{3, 4, 5}.ToPackedStride())
	require.Equal(t, Index4d{1, 2, 6, 24}, Index4d{2, 3, 4, 5}.ToPackedStride())
	require.Equal(t, Index5d{1, 2, 6, 24, 120}, Index5d{2, 3, 4, 5, 6}.ToPackedStride())
	require.Equal(t, IndexNd{1, 2, 6, 24, 120, 720}, IndexNd{2, 3, 4, 5, 6, 7}.ToPackedStride())

	// The outside dimension doesn't affect the stride.
	require.Equal(t, Index3d{3, 4, 5}.ToPackedStride(), Index3d{3, 4, 1000}.ToPackedStride())

	// A larger than necessary stride is not packed.
	require.False(t, Index2d{3, 4}.IsPacked(Index2d{1, 4}))
	require.True(t, Index2d{3, 4}.IsPacked(Index2d{1, 3}))

	// Packed strides can be built incrementally.
	stride := Index0d{}.StrideAppendPacked(1).
		StrideAppendPacked(3).
		StrideAppendPacked(4).
		StrideAppendPacked(5)
	require.Equal(t, Index4d{1, 3, 12, 60}, stride)
	require.True(t, Index4d{3, 4, 5, 9}.IsPacked(stride))
}

func TestInsideOutside(t *testing.T) {
	assert.Equal(t, 2, Index2d{2, 3}.Inside())
	assert.Equal(t, 3, Index2d{2, 3}.Outside())
	assert.Equal(t, 2, Index3d{2, 3, 4}.Inside())
	assert.Equal(t, 4, Index3d{2, 3, 4}.Outside())
	assert.Equal(t, 2, Index4d{2, 3, 4, 5}.Inside())
	assert.Equal(t, 5, Index4d{2, 3, 4, 5}.Outside())
	assert.Equal(t, 2, Index5d{2, 3, 4, 5, 6}.Inside())
	assert.Equal(t, 6, Index5d{2, 3, 4, 5, 6}.Outside())
}

func TestIndex5dAbove(t *testing.T) {
	idx := Index5d{1, 2, 3, 4, 5}
	require.PanicsWithError(t,
		"arrayidx: Index5d.IndexAppend(6): "+errRankAbove5,
		func() { _ = idx.IndexAppend(6) })
	require.Panics(t, func() { _ = idx.IndexPrepend(0) })
	require.Panics(t, func() { _ = idx.ToPackedStride().StrideAppendPacked(5) })
}

func TestUnimplIndex(t *testing.T) {
	var u UnimplIndex
	for name, fn := range map[string]func(){
		"Zero":               func() { _ = u.Zero() },
		"FromNd":             func() { _ = u.FromNd(make([]int, 6)) },
		"ToNd":               func() { _ = u.ToNd() },
		"IndexAdd":           func() { _ = u.IndexAdd(u) },
		"IndexSub":           func() { _ = u.IndexSub(u) },
		"IndexPrepend":       func() { _ = u.IndexPrepend(1) },
		"IndexAppend":        func() { _ = u.IndexAppend(1) },
		"StrideAppendPacked": func() { _ = u.StrideAppendPacked(1) },
		"IndexAt":            func() { _ = u.IndexAt(0) },
		"IndexCut":           func() { _ = u.IndexCut(0) },
		"ToPackedStride":     func() { _ = u.ToPackedStride() },
		"IsPacked":           func() { _ = u.IsPacked(u) },
		"FlatLen":            func() { _ = u.FlatLen() },
		"FlatIndex":          func() { _ = u.FlatIndex(u) },
		"Inside":             func() { _ = u.Inside() },
		"Outside":            func() { _ = u.Outside() },
		"Dim":                func() { _ = u.Dim() },
		"Ndim":               func() { _ = u.Ndim() },
	} {
		require.Panicsf(t, fn, "UnimplIndex.%s should panic", name)
	}
}
