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
	"flag"
	"fmt"
	"strings"
)

// Flag collects custom page ranges from the command line.
// Every use of the flag adds one or more comma-separated "START-END" ranges.
// The ranges are only checked against the document by [ParseCustom].
type Flag struct {
	lines []string
}

var _ flag.Value = (*Flag)(nil)

func (f *Flag) String() string {
	if f == nil {
		return ""
	}
	return strings.Join(f.lines, ",")
}

// Set implements the [flag.Value] interface.
func (f *Flag) Set(s string) error {
	var lines []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if !rangePat.MatchString(part) {
			return fmt.Errorf("invalid range %q (expected START-END)", part)
		}
		lines = append(lines, part)
	}
	f.lines = append(f.lines, lines...)
	return nil
}

// Text returns the collected ranges in the form expected by [ParseCustom],
// one range per line.
func (f *Flag) Text() string {
	return strings.Join(f.lines, "\n")
}
