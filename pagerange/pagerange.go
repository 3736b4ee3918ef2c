// seehuhn.de/go/pdftools - split, merge and watermark PDF files
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package pagerange determines which pages of a document go into which part
// when a PDF file is split.
//
// Two modes are supported.  In [Evenly] mode, [Halves] cuts a document into
// two parts, with the first part receiving the extra page if the page count
// is odd.  In [Custom] mode, [ParseCustom] reads one range per line from
// user-supplied text, in the form "START-END".  Page numbers are 1-based and
// ranges are inclusive.  Custom ranges may overlap or leave gaps; only ranges
// which fall outside the document are rejected.
package pagerange

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Range is an inclusive interval of 1-based page numbers.
type Range struct {
	Start int
	End   int

	// Label names the part of the split this range produces,
	// e.g. "Part 2".
	Label string
}

// Len returns the number of pages in the range.
func (r Range) Len() int {
	return r.End - r.Start + 1
}

// Indices returns the 0-based page indices covered by the range, in order.
func (r Range) Indices() []int {
	if r.End < r.Start {
		return nil
	}
	res := make([]int, 0, r.Len())
	for i := r.Start; i <= r.End; i++ {
		res = append(res, i-1)
	}
	return res
}

func (r Range) String() string {
	return strconv.Itoa(r.Start) + "-" + strconv.Itoa(r.End)
}

// Resolve computes the page ranges for splitting a document with numPages
// pages.  For [Custom] mode, text holds one "START-END" range per line;
// for [Evenly] mode, text is ignored.
//
// On failure, the error is a [*FormatError] or a [*RangeError], and no
// ranges are returned.
func Resolve(numPages int, mode Mode, text string) ([]Range, error) {
	switch mode {
	case Evenly:
		return Halves(numPages)
	case Custom:
		return ParseCustom(numPages, text)
	default:
		return nil, fmt.Errorf("unknown split mode %d", int(mode))
	}
}

// Halves splits numPages pages into two parts.  The first part has
// ceil(numPages/2) pages.
//
// A single-page document cannot be divided, and the result then consists of
// the first part only.
func Halves(numPages int) ([]Range, error) {
	if numPages < 1 {
		return nil, &RangeError{Start: 1, End: numPages, NumPages: numPages}
	}

	mid := (numPages + 1) / 2
	res := []Range{{Start: 1, End: mid, Label: partLabel(1)}}
	if mid < numPages {
		res = append(res, Range{Start: mid + 1, End: numPages, Label: partLabel(2)})
	}
	return res, nil
}

var rangePat = regexp.MustCompile(`^(\d+)-(\d+)$`)

// ParseCustom reads page ranges from text, one range per line.
//
// Blank lines are skipped and do not count towards line numbers.  Each
// remaining line, after removing leading and trailing white space, must have
// the form "START-END".  Parsing stops at the first invalid line.
// Empty input gives an empty result.
func ParseCustom(numPages int, text string) ([]Range, error) {
	var res []Range
	lineNo := 0
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lineNo++

		m := rangePat.FindStringSubmatch(line)
		if m == nil {
			return nil, &FormatError{Line: lineNo, Text: line}
		}

		// The pattern guarantees decimal digits, so conversion can only fail
		// by overflow.  Such numbers are certainly out of range.
		start, err1 := strconv.Atoi(m[1])
		end, err2 := strconv.Atoi(m[2])
		if err1 != nil || err2 != nil {
			return nil, &RangeError{
				Line:     lineNo,
				Start:    start,
				End:      end,
				NumPages: numPages,
				text:     line,
			}
		}

		if start < 1 || end > numPages || start > end {
			return nil, &RangeError{
				Line:     lineNo,
				Start:    start,
				End:      end,
				NumPages: numPages,
			}
		}

		res = append(res, Range{Start: start, End: end, Label: partLabel(lineNo)})
	}
	return res, nil
}

func partLabel(i int) string {
	return "Part " + strconv.Itoa(i)
}
