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

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// Color is a colour in the DeviceRGB colour space, with 8 bits per
// component.
type Color [3]uint8

// ParseColor reads a colour in the form "#rrggbb".  The leading "#" is
// optional and hex digits may be upper or lower case.  Malformed input gives
// black.
func ParseColor(s string) Color {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return Color{}
	}
	var c Color
	_, err := hex.Decode(c[:], []byte(s))
	if err != nil {
		return Color{}
	}
	return c
}

// RGB returns the colour components scaled to the range [0, 1].
func (c Color) RGB() (r, g, b float64) {
	return float64(c[0]) / 255, float64(c[1]) / 255, float64(c[2]) / 255
}

func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c[0], c[1], c[2])
}
