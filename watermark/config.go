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

// Package watermark computes where the text of a watermark is drawn on a
// page.
//
// A watermark is described by a [Config].  For every page, [Place] turns the
// page size and the configuration into a list of [Instruction] values, one
// for every copy of the text which must be drawn.  Drawing itself is left to
// the caller.
package watermark

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
)

// Config describes a text watermark.
//
// Config is a value type.  Copies taken at the start of an operation are not
// affected by later changes to the original.
type Config struct {
	// Text is the watermark text.  If Text is empty, no watermark is drawn.
	Text string

	// FontSize is the font size in PDF units.  It must be positive.
	FontSize float64

	// Position selects the layout of the watermark on the page.
	Position Position

	// Opacity is the opacity of the text, between 0 (invisible) and 1.
	// The Diagonal and Tiled layouts draw with reduced opacity,
	// see [Place].
	Opacity float64

	// Color is the text colour.
	Color Color
}

// Default returns the default watermark configuration.
func Default() Config {
	return Config{
		Text:     "SAMPLE",
		FontSize: 30,
		Position: Center,
		Opacity:  0.3,
		Color:    Color{0, 0, 0},
	}
}

// Validate checks that all fields of the configuration have usable values.
// An empty Text is allowed.
func (c Config) Validate() error {
	if !(c.FontSize > 0) || math.IsInf(c.FontSize, 0) {
		return fmt.Errorf("invalid font size %g", c.FontSize)
	}
	if !(c.Opacity >= 0 && c.Opacity <= 1) {
		return fmt.Errorf("opacity %g not in [0, 1]", c.Opacity)
	}
	if !c.Position.valid() {
		return fmt.Errorf("invalid position %d", int(c.Position))
	}
	return nil
}

// Enabled reports whether a watermark is to be drawn.
func (c Config) Enabled() bool {
	return c.Text != ""
}

// configJSON is the serialised form of a Config.  The field names are
// shared with settings written by earlier versions of the tools.
type configJSON struct {
	Text     string   `json:"text"`
	Size     float64  `json:"size"`
	Position Position `json:"position"`
	Opacity  float64  `json:"opacity"`
	Color    string   `json:"color"`
}

var errIncomplete = errors.New("incomplete watermark configuration")

// MarshalJSON implements the [json.Marshaler] interface.
func (c Config) MarshalJSON() ([]byte, error) {
	return json.Marshal(configJSON{
		Text:     c.Text,
		Size:     c.FontSize,
		Position: c.Position,
		Opacity:  c.Opacity,
		Color:    c.Color.String(),
	})
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
//
// All fields must be present and the result must pass [Config.Validate].
// On error, c is left unchanged.
func (c *Config) UnmarshalJSON(data []byte) error {
	var raw struct {
		Text     *string   `json:"text"`
		Size     *float64  `json:"size"`
		Position *Position `json:"position"`
		Opacity  *float64  `json:"opacity"`
		Color    *string   `json:"color"`
	}
	err := json.Unmarshal(data, &raw)
	if err != nil {
		return err
	}
	if raw.Text == nil || raw.Size == nil || raw.Position == nil ||
		raw.Opacity == nil || raw.Color == nil {
		return errIncomplete
	}

	res := Config{
		Text:     *raw.Text,
		FontSize: *raw.Size,
		Position: *raw.Position,
		Opacity:  *raw.Opacity,
		Color:    ParseColor(*raw.Color),
	}
	err = res.Validate()
	if err != nil {
		return err
	}
	*c = res
	return nil
}

var _ json.Marshaler = Config{}
