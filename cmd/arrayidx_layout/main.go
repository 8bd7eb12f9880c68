// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// arrayidx_layout prints the packed memory layout of a shape: the stride of each axis,
// the flat length, and optionally the flat index of a coordinate and the bounds of a slice.
//
// Axis 0 is the inside axis (the fastest varying in memory).
//
// Example:
//
//	arrayidx_layout -shape=3,640,480 -coord=2,10,1 -ranges=":,100:200,=0"
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/gomlx/arrayidx/pkg/core/arrayidx"
	"github.com/gomlx/exceptions"
	"github.com/janpfeifer/must"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

var (
	flagShape = flag.String("shape", "", "Comma-separated dimensions of the shape, starting from the inside axis (axis 0). "+
		"Required.")

	flagCoord = flag.String("coord", "", "Optional comma-separated coordinate within the shape, whose flat index is reported.")

	flagRanges = flag.String("ranges", "", "Optional comma-separated ranges, one per axis, to slice the shape. "+
		"Each range can be \":\", \"a:\", \":b\", \":=b\", \"a:b\", \"a:=b\" or a single index \"a\".")
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()

	if *flagShape == "" {
		klog.Errorf("Missing -shape. See 'arrayidx_layout -help'")
		os.Exit(1)
	}
	if len(flag.Args()) > 0 {
		klog.Errorf("Unexpected arguments %q. See 'arrayidx_layout -help'.", flag.Args())
		os.Exit(1)
	}
	err := exceptions.TryCatch[error](func() {
		shape := must.M1(parseIndex(*flagShape))
		klog.V(1).Infof("shape=%s, rank=%d", shape, shape.Dim())
		report(shape)
	})
	if err != nil {
		klog.Errorf("Failed: %+v", err)
		os.Exit(1)
	}
}

// parseIndex parses a comma-separated list of integers.
func parseIndex(s string) (arrayidx.IndexNd, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return arrayidx.IndexNd{}, nil
	}
	parts := strings.Split(s, ",")
	idx := make(arrayidx.IndexNd, len(parts))
	for axis, part := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, errors.Wrapf(err, "failed to parse axis %d of %q", axis, s)
		}
		if v < 0 {
			return nil, errors.Errorf("axis %d of %q is negative", axis, s)
		}
		idx[axis] = v
	}
	return idx, nil
}

func report(shape arrayidx.IndexNd) {
	stride := shape.ToPackedStride()
	reportLayout(shape, stride)

	if *flagCoord != "" {
		coord := must.M1(parseIndex(*flagCoord))
		if coord.Dim() != shape.Dim() {
			exceptions.Panicf("-coord=%s has rank %d, but -shape=%s has rank %d", coord, coord.Dim(), shape, shape.Dim())
		}
		for axis := range coord {
			if coord[axis] >= shape[axis] {
				exceptions.Panicf("-coord=%s is out of bounds for axis %d of -shape=%s", coord, axis, shape)
			}
		}
		reportCoord(coord, stride)
	}

	if *flagRanges != "" {
		ranges := must.M1(arrayidx.ParseRanges(*flagRanges))
		if len(ranges) != shape.Dim() {
			exceptions.Panicf("-ranges=%q has %d ranges, but -shape=%s has rank %d", *flagRanges, len(ranges), shape, shape.Dim())
		}
		for axis, r := range ranges {
			_, _, err := arrayidx.CheckRange(r, shape[axis])
			must.M(errors.WithMessagef(err, "-ranges, axis %d", axis))
		}
		start, end := arrayidx.Range2IdxsNd(ranges, shape)
		reportSlice(ranges, start, end, stride)
	}
	fmt.Println()
}

// isContiguous returns whether a slice shaped sliceShape, within a buffer with the given
// stride, occupies a contiguous range of the buffer.
func isContiguous(sliceShape, stride arrayidx.IndexNd) bool {
	if sliceShape.FlatLen() == 0 {
		return true
	}
	// Axes of dimension 1 don't move in memory, whatever their stride.
	for axis := sliceShape.Dim() - 1; axis >= 0; axis-- {
		if sliceShape[axis] == 1 {
			sliceShape = sliceShape.IndexCut(arrayidx.Ax(axis))
			stride = stride.IndexCut(arrayidx.Ax(axis))
		}
	}
	return sliceShape.IsPacked(stride)
}
