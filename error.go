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

package pdftools

import (
	"errors"
	"strconv"
)

var (
	// ErrInsufficientInput is matched by [*InsufficientInputError] values,
	// using [errors.Is].
	ErrInsufficientInput = errors.New("at least two files are needed for merging")

	// ErrNoRanges is returned by [Split] if no page ranges were given.
	ErrNoRanges = errors.New("no page ranges given")
)

// InsufficientInputError is returned by [Merge] when fewer than two files
// are given.
type InsufficientInputError struct {
	Count int
}

func (err *InsufficientInputError) Error() string {
	return "cannot merge " + strconv.Itoa(err.Count) + " file(s): " + ErrInsufficientInput.Error()
}

// Is reports whether target is [ErrInsufficientInput].
func (err *InsufficientInputError) Is(target error) bool {
	return target == ErrInsufficientInput
}

// LibraryError indicates that the PDF library failed to process a file.
type LibraryError struct {
	// Op is the operation which failed, e.g. "load" or "save".
	Op string

	// File is the name of the file concerned, if known.
	File string

	Err error
}

func (err *LibraryError) Error() string {
	msg := err.Op
	if err.File != "" {
		msg += " " + strconv.Quote(err.File)
	}
	if err.Err != nil {
		msg += ": " + err.Err.Error()
	}
	return msg
}

func (err *LibraryError) Unwrap() error {
	return err.Err
}
