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

package watermark

import "fmt"

// Position selects the layout of a watermark on the page.
type Position int

// These are the supported watermark layouts.
const (
	// Center draws a single copy of the text in the middle of the page,
	// rotated by -45 degrees.
	Center Position = iota

	// Diagonal covers the page with a sparse diagonal pattern of rotated
	// copies of the text, at half the configured opacity.
	Diagonal

	// Tiled covers the page with a regular grid of rotated copies of the
	// text, at a third of the configured opacity.
	Tiled

	// TopLeft draws a single, unrotated copy of the text near the top left
	// corner of the page.
	TopLeft
)

var positionNames = [...]string{
	Center:   "center",
	Diagonal: "diagonal",
	Tiled:    "tiled",
	TopLeft:  "top-left",
}

func (p Position) valid() bool {
	return p >= 0 && int(p) < len(positionNames)
}

func (p Position) String() string {
	if !p.valid() {
		return fmt.Sprintf("Position(%d)", int(p))
	}
	return positionNames[p]
}

// ParsePosition converts the name of a layout, as returned by
// [Position.String], into a Position.
func ParsePosition(s string) (Position, error) {
	for i, name := range positionNames {
		if s == name {
			return Position(i), nil
		}
	}
	return 0, fmt.Errorf("unknown watermark position %q", s)
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (p Position) MarshalText() ([]byte, error) {
	if !p.valid() {
		return nil, fmt.Errorf("invalid watermark position %d", int(p))
	}
	return []byte(positionNames[p]), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (p *Position) UnmarshalText(text []byte) error {
	pos, err := ParsePosition(string(text))
	if err != nil {
		return err
	}
	*p = pos
	return nil
}
