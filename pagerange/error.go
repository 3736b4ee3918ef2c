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

package pagerange

import (
	"strconv"
)

// FormatError is returned when a line of custom range text is not of the
// form "START-END".
type FormatError struct {
	// Line is the 1-based number of the offending line,
	// not counting blank lines.
	Line int

	// Text is the offending line, with surrounding white space removed.
	Text string
}

func (err *FormatError) Error() string {
	return "line " + strconv.Itoa(err.Line) + ": invalid range " +
		strconv.Quote(err.Text) + " (expected START-END)"
}

// RangeError is returned when a page range does not fit the document.
type RangeError struct {
	// Line is the 1-based number of the offending line, or 0 if the range
	// was not read from text.
	Line int

	Start    int
	End      int
	NumPages int

	// text is set if the page numbers could not be represented as int.
	text string
}

func (err *RangeError) Error() string {
	prefix := ""
	if err.Line > 0 {
		prefix = "line " + strconv.Itoa(err.Line) + ": "
	}
	rng := err.text
	if rng == "" {
		rng = strconv.Itoa(err.Start) + "-" + strconv.Itoa(err.End)
	}

	var tail string
	switch {
	case err.NumPages < 1:
		tail = " (document has no pages)"
	case err.NumPages == 1:
		tail = " (document has 1 page)"
	default:
		tail = " (document has " + strconv.Itoa(err.NumPages) + " pages)"
	}
	return prefix + "invalid page range " + rng + tail
}
