// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package arrayidx

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// BoundKind is the kind of one end of a Range.
type BoundKind int

const (
	// Unbounded means the range extends to the start (or end) of the axis. It is the zero value.
	Unbounded BoundKind = iota

	// Included means the bound value is part of the range.
	Included

	// Excluded means the bound value is not part of the range.
	Excluded
)

// String implements fmt.Stringer.
func (k BoundKind) String() string {
	switch k {
	case Unbounded:
		return "Unbounded"
	case Included:
		return "Included"
	case Excluded:
		return "Excluded"
	default:
		return fmt.Sprintf("BoundKind(%d)", int(k))
	}
}

// Bound is one end of a Range.
type Bound struct {
	Kind  BoundKind
	Value int
}

// IncludedBound returns a bound that includes x.
func IncludedBound(x int) Bound { return Bound{Kind: Included, Value: x} }

// ExcludedBound returns a bound that excludes x.
func ExcludedBound(x int) Bound { return Bound{Kind: Excluded, Value: x} }

// UnboundedBound returns a bound that extends to the limit of the axis.
func UnboundedBound() Bound { return Bound{Kind: Unbounded} }

// Range selects a contiguous sub-range of one axis.
//
// The recommendation is to use FullRange, RangeFrom, RangeTo, RangeToInclusive, Span,
// SpanInclusive or Elem to create it. The zero value is the full range.
type Range struct {
	Start, End Bound
}

// FullRange is the whole axis.
func FullRange() Range { return Range{} }

// RangeFrom is the range from start (included) to the end of the axis.
func RangeFrom(start int) Range { return Range{Start: IncludedBound(start)} }

// RangeTo is the range from the start of the axis to end (excluded).
func RangeTo(end int) Range { return Range{End: ExcludedBound(end)} }

// RangeToInclusive is the range from the start of the axis to end (included).
func RangeToInclusive(end int) Range { return Range{End: IncludedBound(end)} }

// Span is the range [start, end).
func Span(start, end int) Range {
	return Range{Start: IncludedBound(start), End: ExcludedBound(end)}
}

// SpanInclusive is the range [start, end].
func SpanInclusive(start, end int) Range {
	return Range{Start: IncludedBound(start), End: IncludedBound(end)}
}

// Elem is the range with the single element i.
func Elem(i int) Range { return SpanInclusive(i, i) }

// resolve converts the range to a half-open interval, without any checks.
func (r Range) resolve(size int) (start, end int) {
	switch r.Start.Kind {
	case Included:
		start = r.Start.Value
	case Excluded:
		start = r.Start.Value + 1
	default:
		start = 0
	}
	switch r.End.Kind {
	case Included:
		end = r.End.Value + 1
	case Excluded:
		end = r.End.Value
	default:
		end = size
	}
	return
}

// String renders the range in the syntax accepted by ParseRange.
// An excluded start, which ParseRange can't express, is rendered as "(x".
func (r Range) String() string {
	if r.Start.Kind == Included && r.End.Kind == Included && r.Start.Value == r.End.Value {
		return strconv.Itoa(r.Start.Value)
	}
	var sb strings.Builder
	switch r.Start.Kind {
	case Included:
		sb.WriteString(strconv.Itoa(r.Start.Value))
	case Excluded:
		sb.WriteString("(" + strconv.Itoa(r.Start.Value))
	}
	sb.WriteString(":")
	switch r.End.Kind {
	case Included:
		sb.WriteString("=" + strconv.Itoa(r.End.Value))
	case Excluded:
		sb.WriteString(strconv.Itoa(r.End.Value))
	}
	return sb.String()
}

// CheckRange converts the range r over an axis of dimension size to the half-open
// interval [start, end).
//
// It returns an error if the interval is not within 0 <= start <= end <= size.
func CheckRange(r Range, size int) (start, end int, err error) {
	start, end = r.resolve(size)
	if start < 0 || start > end || end > size {
		err = errors.Errorf("range %s resolves to [%d, %d), which doesn't fit an axis of dimension %d",
			r, start, end, size)
	}
	return
}

// Range2Idxs1d converts the range r over an axis of dimension size to the half-open
// interval [start, end).
//
// It panics if the interval is not within 0 <= start <= end <= size.
func Range2Idxs1d(r Range, size int) (start, end int) {
	var err error
	start, end, err = CheckRange(r, size)
	if err != nil {
		exceptions.Panicf("arrayidx.Range2Idxs1d: %v", err)
	}
	return
}

// Range2Idxs2d applies Range2Idxs1d to each axis independently.
func Range2Idxs2d(ranges [2]Range, size Index2d) (start, end Index2d) {
	start[0], end[0] = Range2Idxs1d(ranges[0], size[0])
	start[1], end[1] = Range2Idxs1d(ranges[1], size[1])
	return
}

// Range2Idxs3d applies Range2Idxs1d to each axis independently.
func Range2Idxs3d(ranges [3]Range, size Index3d) (start, end Index3d) {
	start[0], end[0] = Range2Idxs1d(ranges[0], size[0])
	start[1], end[1] = Range2Idxs1d(ranges[1], size[1])
	start[2], end[2] = Range2Idxs1d(ranges[2], size[2])
	return
}

// Range2Idxs4d applies Range2Idxs1d to each axis independently.
func Range2Idxs4d(ranges [4]Range, size Index4d) (start, end Index4d) {
	start[0], end[0] = Range2Idxs1d(ranges[0], size[0])
	start[1], end[1] = Range2Idxs1d(ranges[1], size[1])
	start[2], end[2] = Range2Idxs1d(ranges[2], size[2])
	start[3], end[3] = Range2Idxs1d(ranges[3], size[3])
	return
}

// Range2Idxs5d applies Range2Idxs1d to each axis independently.
func Range2Idxs5d(ranges [5]Range, size Index5d) (start, end Index5d) {
	for axis := range size {
		start[axis], end[axis] = Range2Idxs1d(ranges[axis], size[axis])
	}
	return
}

// Range2IdxsNd applies Range2Idxs1d to each axis independently.
//
// It panics if the number of ranges doesn't match the rank of size.
func Range2IdxsNd(ranges []Range, size IndexNd) (start, end IndexNd) {
	if len(ranges) != len(size) {
		exceptions.Panicf("arrayidx.Range2IdxsNd: %d ranges given for an index of rank %d", len(ranges), len(size))
	}
	start, end = make(IndexNd, len(size)), make(IndexNd, len(size))
	for axis := range size {
		start[axis], end[axis] = Range2Idxs1d(ranges[axis], size[axis])
	}
	return
}

// ParseRange parses a range in the following formats:
//
//   - "" or ":": FullRange().
//   - "a:": RangeFrom(a).
//   - ":b": RangeTo(b).
//   - ":=b": RangeToInclusive(b).
//   - "a:b": Span(a, b).
//   - "a:=b": SpanInclusive(a, b).
//   - "a": Elem(a).
//
// Spaces around the values are ignored.
func ParseRange(s string) (r Range, err error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return
	}
	before, after, found := strings.Cut(s, ":")
	if !found {
		var i int
		i, err = parseBoundValue(s)
		if err != nil {
			err = errors.WithMessagef(err, "failed to parse range %q", s)
			return
		}
		r = Elem(i)
		return
	}
	if before = strings.TrimSpace(before); before != "" {
		var start int
		start, err = parseBoundValue(before)
		if err != nil {
			err = errors.WithMessagef(err, "failed to parse start of range %q", s)
			return
		}
		r.Start = IncludedBound(start)
	}
	after = strings.TrimSpace(after)
	inclusive := strings.HasPrefix(after, "=")
	if inclusive {
		after = strings.TrimSpace(after[1:])
		if after == "" {
			err = errors.Errorf("failed to parse range %q: inclusive end \"=\" without a value", s)
			return
		}
	}
	if after != "" {
		var end int
		end, err = parseBoundValue(after)
		if err != nil {
			err = errors.WithMessagef(err, "failed to parse end of range %q", s)
			return
		}
		if inclusive {
			r.End = IncludedBound(end)
		} else {
			r.End = ExcludedBound(end)
		}
	}
	return
}

func parseBoundValue(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid bound %q", s)
	}
	return v, nil
}

// ParseRanges parses a comma-separated list of ranges, one per axis, each in the format
// accepted by ParseRange.
//
// An empty string is parsed as zero ranges. The returned error combines the errors of
// every axis that failed to parse.
func ParseRanges(s string) (ranges []Range, err error) {
	if strings.TrimSpace(s) == "" {
		return
	}
	parts := strings.Split(s, ",")
	ranges = make([]Range, len(parts))
	for axis, part := range parts {
		r, axisErr := ParseRange(part)
		if axisErr != nil {
			err = multierr.Append(err, errors.WithMessagef(axisErr, "axis %d", axis))
			continue
		}
		ranges[axis] = r
	}
	if err != nil {
		ranges = nil
	}
	return
}
