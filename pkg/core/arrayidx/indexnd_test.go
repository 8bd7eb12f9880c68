// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package arrayidx

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

func TestIndexNd(t *testing.T) {
	require.Equal(t, IndexNd{0, 0, 0}, ZeroNd(3))
	require.Equal(t, IndexNd{}, ZeroNd(0))
	require.Panics(t, func() { _ = ZeroNd(-1) })
	require.Equal(t, IndexNd{2, 3, 4}, NewIndexNd[int32](2, 3, 4))
	require.Equal(t, IndexNd{2, 3, 4}, NewIndexNd([]int64{2, 3, 4}...))
	require.Equal(t, IndexNd{2, 3}, NewIndexNd[uint8](2, 3))

	idx := IndexNd{3, 4, 5}
	require.Equal(t, 3, idx.Dim())
	require.Equal(t, 3, idx.Ndim())
	require.Equal(t, 3, idx.Inside())
	require.Equal(t, 5, idx.Outside())
	require.Equal(t, 4, idx.IndexAt(1))
	require.Panics(t, func() { _ = idx.IndexAt(3) })
	require.Panics(t, func() { _ = idx.IndexAt(-1) })
	require.Equal(t, "[3 4 5]", idx.String())
	require.Equal(t, ZeroNd(3), idx.Zero())

	// Rank 0 conventions match Index0d.
	var scalar IndexNd
	require.Equal(t, 1, scalar.Inside())
	require.Equal(t, 1, scalar.Outside())
	require.Equal(t, 1, scalar.FlatLen())
	require.True(t, scalar.IsZero())
	require.True(t, scalar.IsPacked(IndexNd{}))
}

func TestIndexNd_IsZero(t *testing.T) {
	require.True(t, IndexNd{}.IsZero())
	require.True(t, IndexNd{0}.IsZero())
	require.True(t, ZeroNd(7).IsZero())
	require.False(t, IndexNd{0, 0, 1}.IsZero())
	require.False(t, IndexNd{-1}.IsZero())
}

func TestIndexNd_Immutable(t *testing.T) {
	idx := IndexNd{3, 4, 5}
	original := idx.Clone()
	_ = idx.IndexAdd(IndexNd{1, 1, 1})
	_ = idx.IndexSub(IndexNd{1, 1, 1})
	_ = idx.IndexPrepend(2)
	_ = idx.IndexAppend(2)
	_ = idx.IndexCut(1)
	_ = idx.ToPackedStride()
	_ = idx.StrideAppendPacked(2)

	prefix, selected, suffix := idx.SpliceAt(1)
	prefix = append(prefix, 100)
	selected = append(selected, 100)
	_ = append(suffix, 100)
	if diff := cmp.Diff(original, idx); diff != "" {
		t.Errorf("IndexNd modified (-want +got):\n%s", diff)
	}
	require.Equal(t, IndexNd{3, 100}, prefix)
	require.Equal(t, IndexNd{4, 100}, selected)

	// Clone and FromNd don't share the underlying array.
	sizes := []int{1, 2}
	fromNd := IndexNd(nil).FromNd(sizes)
	sizes[0] = 10
	require.Equal(t, IndexNd{1, 2}, fromNd)
}

func TestIndexNd_RankMismatch(t *testing.T) {
	idx := IndexNd{3, 4, 5}
	require.Panics(t, func() { _ = idx.IndexAdd(IndexNd{1, 1}) })
	require.Panics(t, func() { _ = idx.IndexSub(IndexNd{1, 1, 1, 1}) })
	require.Panics(t, func() { _ = idx.FlatIndex(IndexNd{1}) })
	require.False(t, idx.IsPacked(IndexNd{1, 3}))
	require.False(t, idx.IsPacked(IndexNd{1, 3, 12, 60}))
}

func TestIndexNd_SpliceAt(t *testing.T) {
	for _, idx := range []IndexNd{{}, {7}, {3, 4}, {3, 4, 5, 6, 7, 8, 9}} {
		rank := idx.Dim()
		for axis := Ax(-2); int(axis) <= rank+1; axis++ {
			prefix, selected, suffix := idx.SpliceAt(axis)
			joined := slices.Concat(prefix, selected, suffix)
			if diff := cmp.Diff(idx, joined, cmpopts.EquateEmpty()); diff != "" {
				t.Fatalf("SpliceAt(%d) of %v didn't reconstruct the index (-want +got):\n%s", axis, idx, diff)
			}

			inRange := axis >= 0 && int(axis) < rank
			if !inRange {
				require.Emptyf(t, selected, "SpliceAt(%d) of %v", axis, idx)
				continue
			}
			require.Equal(t, IndexNd{idx.IndexAt(axis)}, selected)
			require.Len(t, prefix, int(axis))
			require.Len(t, suffix, rank-int(axis)-1)
			require.Truef(t, idx.IndexCut(axis).Equal(slices.Concat(prefix, suffix)), "SpliceAt(%d) of %v", axis, idx)
		}
	}

	// Substituting the selected part.
	idx := IndexNd{3, 4, 5}
	prefix, _, suffix := idx.SpliceAt(1)
	require.Equal(t, IndexNd{3, 40, 5}, slices.Concat(prefix, IndexNd{40}, suffix))

	// Out-of-range axes keep the order: negative axes put everything in the suffix.
	prefix, selected, suffix := idx.SpliceAt(-1)
	require.Empty(t, prefix)
	require.Empty(t, selected)
	require.Equal(t, idx, suffix)
	prefix, selected, suffix = idx.SpliceAt(3)
	require.Equal(t, idx, prefix)
	require.Empty(t, selected)
	require.Empty(t, suffix)
}

func TestIndexNd_MatchesFixedRank(t *testing.T) {
	shape := Index4d{2, 3, 4, 5}
	shapeNd := shape.ToNd()
	require.Equal(t, shape.ToPackedStride().ToNd(), shapeNd.ToPackedStride())
	require.Equal(t, shape.FlatLen(), shapeNd.FlatLen())
	require.Equal(t, shape.IndexAppend(6).ToNd(), shapeNd.IndexAppend(6))
	require.Equal(t, shape.IndexPrepend(6).ToNd(), shapeNd.IndexPrepend(6))
	require.Equal(t, shape.ToPackedStride().StrideAppendPacked(5).ToNd(),
		shapeNd.ToPackedStride().StrideAppendPacked(5))
	coord := Index4d{1, 2, 3, 4}
	require.Equal(t, coord.FlatIndex(shape.ToPackedStride()), coord.ToNd().FlatIndex(shapeNd.ToPackedStride()))
	for axis := range Ax(4) {
		require.Equal(t, shape.IndexCut(axis).ToNd(), shapeNd.IndexCut(axis))
	}

	// Higher ranks than the fixed-rank types support.
	shape6 := shapeNd.IndexAppend(6).IndexAppend(7)
	require.Equal(t, 6, shape6.Dim())
	require.Equal(t, IndexNd{1, 2, 6, 24, 120, 720}, shape6.ToPackedStride())
	require.Equal(t, 5040, shape6.FlatLen())
}
