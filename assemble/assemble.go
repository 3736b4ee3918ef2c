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

// Package assemble builds new PDF documents from pages of existing ones.
//
// The package does not read or write PDF files itself.  This is delegated to
// a [Library], which provides access to loaded documents and their pages.
// The [seehuhn.de/go/pdftools/codec] package contains an implementation
// based on pdfcpu.
package assemble

import (
	"fmt"

	"seehuhn.de/go/pdftools/watermark"
)

// Library loads and creates PDF documents.
type Library interface {
	// Load parses a PDF file.
	Load(data []byte) (Document, error)

	// Create returns a new document without pages.
	Create() (Document, error)
}

// Document is a PDF document held in memory.
type Document interface {
	// NumPages returns the number of pages in the document.
	NumPages() int

	// CopyPages prepares copies of the pages of src at the given 0-based
	// indices, for inclusion in this document.  The copies are returned in
	// the order of the indices.  They are not part of the document until
	// they are passed to AddPage.
	CopyPages(src Document, indices []int) ([]Page, error)

	// AddPage appends a page, obtained from CopyPages, to the document.
	AddPage(p Page) error

	// Pages returns the pages of the document, in order.
	Pages() []Page

	// Save serialises the document.
	Save() ([]byte, error)
}

// Page is a page of a Document.
type Page interface {
	// Size returns the width and height of the page, in PDF units.
	Size() (width, height float64)

	// DrawText draws a line of text on top of the existing page content.
	DrawText(text string, opt TextOptions) error
}

// TextOptions gives the placement and appearance of text drawn by
// [Page.DrawText].
type TextOptions struct {
	// X and Y give the start of the baseline.
	X, Y float64

	FontSize float64
	Opacity  float64
	Color    watermark.Color

	// Rotation is the counter-clockwise rotation around (X, Y), in degrees.
	Rotation float64
}

// Source selects pages from a document.
type Source struct {
	Doc Document

	// Pages holds 0-based page indices.  Pages can be listed in any order
	// and may be repeated.
	Pages []int
}

// Assemble creates a new document which contains the selected pages of all
// sources, in order.
//
// If wm is not nil and has non-empty text, the watermark is drawn on every
// page of the new document, after all pages have been added.
//
// The new document is returned unsaved.  On error, no document is returned.
func Assemble(lib Library, sources []Source, wm *watermark.Config) (Document, error) {
	doc, err := lib.Create()
	if err != nil {
		return nil, fmt.Errorf("creating document: %w", err)
	}

	for i, src := range sources {
		pages, err := doc.CopyPages(src.Doc, src.Pages)
		if err != nil {
			return nil, fmt.Errorf("copying pages of source %d: %w", i+1, err)
		}
		for _, p := range pages {
			err = doc.AddPage(p)
			if err != nil {
				return nil, fmt.Errorf("adding page from source %d: %w", i+1, err)
			}
		}
	}

	if wm != nil && wm.Enabled() {
		err = Stamp(doc, *wm)
		if err != nil {
			return nil, err
		}
	}

	return doc, nil
}

// Stamp draws the watermark described by cfg on every page of doc.
func Stamp(doc Document, cfg watermark.Config) error {
	for i, p := range doc.Pages() {
		width, height := p.Size()
		for _, ins := range watermark.Place(width, height, cfg) {
			err := p.DrawText(ins.Text, TextOptions{
				X:        ins.X,
				Y:        ins.Y,
				FontSize: ins.FontSize,
				Opacity:  ins.Opacity,
				Color:    ins.Color,
				Rotation: ins.Rotation,
			})
			if err != nil {
				return fmt.Errorf("watermark on page %d: %w", i+1, err)
			}
		}
	}
	return nil
}
