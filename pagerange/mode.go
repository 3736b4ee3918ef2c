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

import "fmt"

// Mode selects how the page ranges for a split are determined.
type Mode int

// These are the supported split modes.
const (
	// Evenly divides the document into two halves.
	Evenly Mode = iota

	// Custom reads the ranges from user-supplied text.
	Custom
)

func (m Mode) String() string {
	switch m {
	case Evenly:
		return "evenly"
	case Custom:
		return "custom"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode converts the textual form of a split mode ("evenly" or "custom")
// back into a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "evenly":
		return Evenly, nil
	case "custom":
		return Custom, nil
	default:
		return 0, fmt.Errorf("unknown split mode %q", s)
	}
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (m Mode) MarshalText() ([]byte, error) {
	if m != Evenly && m != Custom {
		return nil, fmt.Errorf("unknown split mode %d", int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (m *Mode) UnmarshalText(text []byte) error {
	mode, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = mode
	return nil
}
