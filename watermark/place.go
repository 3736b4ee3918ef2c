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
	"math"
	"unicode/utf8"
)

// Instruction describes one copy of the watermark text to be drawn on a
// page.
type Instruction struct {
	Text string

	// X and Y give the start of the text baseline, in default user space.
	X, Y float64

	FontSize float64
	Opacity  float64
	Color    Color

	// Rotation is the counter-clockwise rotation of the text around (X, Y),
	// in degrees.
	Rotation float64
}

// rotation of the text in all layouts except TopLeft
const slant = -45

// Place computes the watermark instructions for a page of the given size.
// The result is deterministic.  If cfg.Text is empty, Place returns nil.
//
// The horizontal centering of the text is approximate: every character is
// assumed to be half as wide as the font size.
//
// In the Diagonal layout, candidate points are spaced 3*FontSize apart in a
// region three times the size of the page, and a point (x, y) is used only if
// x+y is a multiple of 6*FontSize.  Depending on the page size this may
// select many or no points.
func Place(width, height float64, cfg Config) []Instruction {
	if cfg.Text == "" {
		return nil
	}

	size := cfg.FontSize
	n := float64(utf8.RuneCountInString(cfg.Text))
	halfWidth := n * size / 4

	base := Instruction{
		Text:     cfg.Text,
		FontSize: size,
		Color:    cfg.Color,
	}

	var res []Instruction
	switch cfg.Position {
	case Center:
		ins := base
		ins.X = width/2 - halfWidth
		ins.Y = height / 2
		ins.Opacity = cfg.Opacity
		ins.Rotation = slant
		res = append(res, ins)

	case Diagonal:
		spacing := size * 3
		if !(spacing > 0) {
			return nil
		}
		for x := -width; x < 2*width; x += spacing {
			for y := -height; y < 2*height; y += spacing {
				if math.Mod(x+y, 2*spacing) != 0 {
					continue
				}
				ins := base
				ins.X = x
				ins.Y = y
				ins.Opacity = cfg.Opacity / 2
				ins.Rotation = slant
				res = append(res, ins)
			}
		}

	case Tiled:
		cols := math.Ceil(width / (size * n * 0.6))
		rows := math.Ceil(height / (size * 1.5))
		if !(cols > 0 && rows > 0) || math.IsInf(cols, 0) || math.IsInf(rows, 0) {
			return nil
		}
		colSpacing := width / cols
		rowSpacing := height / rows
		for col := 0; col < int(cols); col++ {
			for row := 0; row < int(rows); row++ {
				ins := base
				ins.X = float64(col)*colSpacing + colSpacing/2 - halfWidth
				ins.Y = float64(row)*rowSpacing + rowSpacing/2
				ins.Opacity = cfg.Opacity / 3
				ins.Rotation = slant
				res = append(res, ins)
			}
		}

	case TopLeft:
		ins := base
		ins.X = size
		ins.Y = height - size*1.5
		ins.Opacity = cfg.Opacity
		res = append(res, ins)
	}

	return res
}
