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

// Package memdoc implements an in-memory stand-in for a PDF library.
//
// Documents are registered under a name together with their page sizes.
// Every page remembers which document and page it was copied from, and every
// text drawing operation is recorded.  Saved documents are encoded as JSON
// which can be inspected using [Decode].
package memdoc

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"seehuhn.de/go/pdftools/assemble"
)

// Size is the size of a page.
type Size struct {
	Width, Height float64
}

// Letter is the size of a US Letter page.
var Letter = Size{612, 792}

// Library implements [assemble.Library].
type Library struct {
	// If FailSave is set, all calls to Document.Save return this error.
	FailSave error

	// If FailDraw is set, all calls to Page.DrawText return this error.
	FailDraw error

	mu      sync.Mutex
	sources map[string][]Size
	created int
}

// New returns a new, empty library.
func New() *Library {
	return &Library{
		sources: make(map[string][]Size),
	}
}

const prefix = "memdoc:"

// Register makes a document with the given page sizes available and returns
// the data which loads it.
func (l *Library) Register(name string, sizes ...Size) []byte {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.sources[name] = append([]Size(nil), sizes...)
	return []byte(prefix + name)
}

// Created returns the number of documents created so far.
func (l *Library) Created() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.created
}

// Load implements [assemble.Library].
func (l *Library) Load(data []byte) (assemble.Document, error) {
	name, ok := strings.CutPrefix(string(data), prefix)
	if !ok {
		return nil, errors.New("memdoc: not a memdoc file")
	}

	l.mu.Lock()
	sizes, ok := l.sources[name]
	l.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("memdoc: unknown document %q", name)
	}

	doc := &Document{lib: l, name: name}
	for i, sz := range sizes {
		doc.pages = append(doc.pages, &Page{
			Origin: Origin{Doc: name, Index: i},
			Width:  sz.Width,
			Height: sz.Height,
			lib:    l,
		})
	}
	return doc, nil
}

// Create implements [assemble.Library].
func (l *Library) Create() (assemble.Document, error) {
	l.mu.Lock()
	l.created++
	l.mu.Unlock()
	return &Document{lib: l}, nil
}

// Document implements [assemble.Document].
type Document struct {
	lib   *Library
	name  string
	pages []*Page
}

// NumPages implements [assemble.Document].
func (d *Document) NumPages() int {
	return len(d.pages)
}

// CopyPages implements [assemble.Document].
func (d *Document) CopyPages(src assemble.Document, indices []int) ([]assemble.Page, error) {
	s, ok := src.(*Document)
	if !ok {
		return nil, fmt.Errorf("memdoc: cannot copy from %T", src)
	}
	res := make([]assemble.Page, 0, len(indices))
	for _, idx := range indices {
		if idx < 0 || idx >= len(s.pages) {
			return nil, fmt.Errorf("memdoc: page index %d out of range", idx)
		}
		orig := s.pages[idx]
		res = append(res, &Page{
			Origin: orig.Origin,
			Width:  orig.Width,
			Height: orig.Height,
			Draws:  append([]Draw(nil), orig.Draws...),
			lib:    d.lib,
		})
	}
	return res, nil
}

// AddPage implements [assemble.Document].
func (d *Document) AddPage(p assemble.Page) error {
	page, ok := p.(*Page)
	if !ok {
		return fmt.Errorf("memdoc: cannot add %T", p)
	}
	d.pages = append(d.pages, page)
	return nil
}

// Pages implements [assemble.Document].
func (d *Document) Pages() []assemble.Page {
	res := make([]assemble.Page, len(d.pages))
	for i, p := range d.pages {
		res[i] = p
	}
	return res
}

// Save implements [assemble.Document].
func (d *Document) Save() ([]byte, error) {
	if d.lib.FailSave != nil {
		return nil, d.lib.FailSave
	}
	snap := &Snapshot{Pages: make([]Page, len(d.pages))}
	for i, p := range d.pages {
		snap.Pages[i] = *p
	}
	return json.Marshal(snap)
}

// Origin identifies the page a copy was made from.
type Origin struct {
	Doc   string
	Index int
}

// Draw records a call to [Page.DrawText].
type Draw struct {
	Text string
	Opt  assemble.TextOptions
}

// Page implements [assemble.Page].
type Page struct {
	Origin        Origin
	Width, Height float64
	Draws         []Draw

	lib *Library
}

// Size implements [assemble.Page].
func (p *Page) Size() (width, height float64) {
	return p.Width, p.Height
}

// DrawText implements [assemble.Page].
func (p *Page) DrawText(text string, opt assemble.TextOptions) error {
	if p.lib != nil && p.lib.FailDraw != nil {
		return p.lib.FailDraw
	}
	p.Draws = append(p.Draws, Draw{Text: text, Opt: opt})
	return nil
}

// Snapshot is the decoded form of a saved document.
type Snapshot struct {
	Pages []Page
}

// Origins lists the origins of all pages.
func (s *Snapshot) Origins() []Origin {
	res := make([]Origin, len(s.Pages))
	for i, p := range s.Pages {
		res[i] = p.Origin
	}
	return res
}

// Decode reads a document written by [Document.Save].
func Decode(data []byte) (*Snapshot, error) {
	snap := &Snapshot{}
	err := json.Unmarshal(data, snap)
	if err != nil {
		return nil, err
	}
	return snap, nil
}
