// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	lgtable "github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"github.com/gomlx/arrayidx/pkg/core/arrayidx"
)

var (
	headerRowStyle = lipgloss.NewStyle().Reverse(true).
			Padding(0, 2, 0, 2).Align(lipgloss.Center)

	oddRowStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFF")).
			PaddingLeft(1).PaddingRight(1)
	evenRowStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#999")).
			PaddingLeft(1).PaddingRight(1)

	titleStyle = lipgloss.NewStyle().Bold(true).Padding(1, 4, 0, 4)
)

func newPlainTable(headers ...string) *lgtable.Table {
	table := lgtable.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("99"))).
		StyleFunc(func(row, col int) (s lipgloss.Style) {
			if row == lgtable.HeaderRow {
				s = headerRowStyle
				return
			}
			switch {
			case row%2 == 0:
				s = oddRowStyle
			default:
				s = evenRowStyle
			}
			if col == 0 {
				s = s.Align(lipgloss.Right)
			} else {
				s = s.Align(lipgloss.Left)
			}
			return
		})
	if len(headers) > 0 {
		table = table.Headers(headers...)
	}
	return table
}

func comma(v int) string { return humanize.Comma(int64(v)) }

func axisLabel(axis, rank int) string {
	label := arrayidx.Ax(axis).String()
	switch {
	case rank == 1:
		return label + " (inside, outside)"
	case axis == 0:
		return label + " (inside)"
	case axis == rank-1:
		return label + " (outside)"
	}
	return label
}

// reportLayout prints the dimension and packed stride of each axis.
func reportLayout(shape, stride arrayidx.IndexNd) {
	fmt.Println(titleStyle.Render("Layout"))
	table := newPlainTable("Axis", "Dimension", "Stride")
	for axis := range shape {
		table.Row(axisLabel(axis, shape.Dim()), comma(shape[axis]), comma(stride[axis]))
	}
	fmt.Println(table.Render())

	summary := newPlainTable()
	summary.Row("shape", shape.String())
	summary.Row("rank", strconv.Itoa(shape.Dim()))
	summary.Row("flat length", comma(shape.FlatLen()))
	summary.Row("outer stride", comma(stride.StrideAppendPacked(shape.Outside()).Outside()))
	fmt.Println(summary.Render())
}

// reportCoord prints the flat index of the coordinate.
func reportCoord(coord, stride arrayidx.IndexNd) {
	fmt.Println(titleStyle.Render("Coordinate"))
	table := newPlainTable()
	table.Row("coordinate", coord.String())
	table.Row("flat index", comma(coord.FlatIndex(stride)))
	fmt.Println(table.Render())
}

// reportSlice prints the normalized bounds of each axis and the resulting slice.
func reportSlice(ranges []arrayidx.Range, start, end, stride arrayidx.IndexNd) {
	fmt.Println(titleStyle.Render("Slice"))
	table := newPlainTable("Axis", "Range", "Start", "End", "Dimension")
	sliceShape := end.IndexSub(start)
	for axis, r := range ranges {
		table.Row(axisLabel(axis, len(ranges)), r.String(), comma(start[axis]), comma(end[axis]), comma(sliceShape[axis]))
	}
	fmt.Println(table.Render())

	summary := newPlainTable()
	summary.Row("slice shape", sliceShape.String())
	summary.Row("# elements", comma(sliceShape.FlatLen()))
	summary.Row("origin flat index", comma(start.FlatIndex(stride)))
	summary.Row("contiguous", strconv.FormatBool(isContiguous(sliceShape, stride)))
	fmt.Println(summary.Render())
}
