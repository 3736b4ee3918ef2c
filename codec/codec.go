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

// Package codec implements [assemble.Library] on top of pdfcpu.
//
// Documents are handled lazily: a document records which source pages it
// contains and which text is to be drawn on them.  The PDF objects are only
// copied when [Document.Save] is called.  Consecutive pages from the same
// source are extracted in one go, the resulting files are then joined.
//
// Watermark text is set in the standard Helvetica font, using
// WinAnsiEncoding.  Text which cannot be represented in this encoding is
// rejected by [Page.DrawText].
package codec

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/unicode/norm"
	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/pdftools/assemble"
)

var (
	errNoPages = errors.New("document has no pages")
	errForeign = errors.New("document not created by this package")
)

// Library loads and creates documents.
type Library struct {
	conf *model.Configuration
}

var _ assemble.Library = (*Library)(nil)

// New returns a library which uses the given pdfcpu configuration.
// If conf is nil, the pdfcpu default configuration is used.
func New(conf *model.Configuration) *Library {
	if conf == nil {
		conf = model.NewDefaultConfiguration()
	}
	return &Library{conf: conf}
}

// config returns a copy of the pdfcpu configuration.  Some pdfcpu calls
// modify the configuration they are given, so every call gets its own copy.
func (l *Library) config() *model.Configuration {
	conf := *l.conf
	return &conf
}

// Load reads and validates a PDF file.
func (l *Library) Load(data []byte) (assemble.Document, error) {
	ctx, err := api.ReadValidateAndOptimize(bytes.NewReader(data), l.config())
	if err != nil {
		return nil, err
	}
	err = ctx.EnsurePageCount()
	if err != nil {
		return nil, err
	}

	doc := &Document{lib: l}
	for nr := 1; nr <= ctx.PageCount; nr++ {
		_, _, inh, err := ctx.PageDict(nr, false)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", nr, err)
		}
		var box *types.Rectangle
		if inh != nil {
			box = inh.MediaBox
			if box == nil {
				box = inh.CropBox
			}
		}
		if box == nil {
			return nil, fmt.Errorf("page %d: missing media box", nr)
		}
		doc.pages = append(doc.pages, &Page{
			src:    ctx,
			nr:     nr,
			llx:    box.LL.X,
			lly:    box.LL.Y,
			width:  box.Width(),
			height: box.Height(),
		})
	}
	return doc, nil
}

// Create returns a new, empty document.
func (l *Library) Create() (assemble.Document, error) {
	return &Document{lib: l}, nil
}

// Document is a list of pages, each referring to a page of a loaded PDF
// file.
type Document struct {
	lib   *Library
	pages []*Page
}

// NumPages implements [assemble.Document].
func (d *Document) NumPages() int {
	return len(d.pages)
}

// CopyPages implements [assemble.Document].
// The source document must have been obtained from a [Library].
func (d *Document) CopyPages(src assemble.Document, indices []int) ([]assemble.Page, error) {
	s, ok := src.(*Document)
	if !ok {
		return nil, errForeign
	}
	res := make([]assemble.Page, len(indices))
	for i, idx := range indices {
		if idx < 0 || idx >= len(s.pages) {
			return nil, fmt.Errorf("page index %d out of range [0, %d)", idx, len(s.pages))
		}
		p := *s.pages[idx]
		p.draws = append([]draw(nil), p.draws...)
		res[i] = &p
	}
	return res, nil
}

// AddPage implements [assemble.Document].
func (d *Document) AddPage(p assemble.Page) error {
	page, ok := p.(*Page)
	if !ok {
		return errForeign
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

// Save writes the document as a PDF file.
func (d *Document) Save() ([]byte, error) {
	if len(d.pages) == 0 {
		return nil, errNoPages
	}

	var parts [][]byte
	for _, run := range runs(d.pages) {
		data, err := d.lib.extract(run)
		if err != nil {
			return nil, err
		}
		parts = append(parts, data)
	}
	if len(parts) == 1 {
		return parts[0], nil
	}

	readers := make([]io.ReadSeeker, len(parts))
	for i, data := range parts {
		readers[i] = bytes.NewReader(data)
	}
	var out bytes.Buffer
	err := api.MergeRaw(readers, &out, false, d.lib.config())
	if err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// runs splits a page list into maximal runs of pages from the same source,
// with strictly increasing page numbers.
func runs(pages []*Page) [][]*Page {
	var res [][]*Page
	start := 0
	for i := 1; i <= len(pages); i++ {
		if i < len(pages) && pages[i].src == pages[i-1].src && pages[i].nr > pages[i-1].nr {
			continue
		}
		res = append(res, pages[start:i])
		start = i
	}
	return res
}

// extract writes a run of pages as a PDF file, with the recorded text drawn
// on top of the page content.
func (l *Library) extract(run []*Page) ([]byte, error) {
	nrs := make([]int, len(run))
	for i, p := range run {
		nrs[i] = p.nr
	}
	ctx, err := pdfcpu.ExtractPages(run[0].src, nrs, false)
	if err != nil {
		return nil, err
	}
	err = ctx.EnsurePageCount()
	if err != nil {
		return nil, err
	}

	for i, p := range run {
		if len(p.draws) == 0 {
			continue
		}
		err := p.overlay(ctx, i+1)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", p.nr, err)
		}
	}

	var out bytes.Buffer
	err = api.WriteContext(ctx, &out)
	if err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// Page is a page of a [Document].
type Page struct {
	src *model.Context
	nr  int // 1-based

	llx, lly      float64
	width, height float64

	draws []draw
}

type draw struct {
	code []byte // WinAnsiEncoding
	opt  assemble.TextOptions
}

// Size implements [assemble.Page].
func (p *Page) Size() (width, height float64) {
	return p.width, p.height
}

// DrawText implements [assemble.Page].
// The coordinates are relative to the lower left corner of the media box.
func (p *Page) DrawText(text string, opt assemble.TextOptions) error {
	code, err := charmap.Windows1252.NewEncoder().Bytes([]byte(norm.NFC.String(text)))
	if err != nil {
		return fmt.Errorf("text %q cannot be encoded: %w", text, err)
	}
	p.draws = append(p.draws, draw{code: code, opt: opt})
	return nil
}

// overlay appends the recorded text to the content of page nr in ctx.
// The existing content streams are kept as they are and enclosed between a
// new "q" stream and the overlay stream, which starts with "Q".  This way
// changes of the graphics state in the page content do not affect the
// overlay, and the existing streams never need to be decoded.
func (p *Page) overlay(ctx *model.Context, nr int) error {
	pageDict, _, inh, err := ctx.PageDict(nr, false)
	if err != nil {
		return err
	}
	if pageDict == nil {
		return fmt.Errorf("page %d not found", nr)
	}

	var base types.Dict
	if obj, ok := pageDict["Resources"]; ok {
		base, err = ctx.DereferenceDict(obj)
		if err != nil {
			return err
		}
	}
	if base == nil && inh != nil {
		base = inh.Resources
	}
	res := types.Dict{}
	for k, v := range base {
		res[k] = v
	}

	fontRef, err := ctx.IndRefForNewObject(types.Dict{
		"Type":     types.Name("Font"),
		"Subtype":  types.Name("Type1"),
		"BaseFont": types.Name("Helvetica"),
		"Encoding": types.Name("WinAnsiEncoding"),
	})
	if err != nil {
		return err
	}
	font, err := addResource(ctx, res, "Font", "WmF", *fontRef)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	buf.WriteString("\nQ\n")
	gsNames := make(map[float64]string)
	for _, d := range p.draws {
		gs, ok := gsNames[d.opt.Opacity]
		if !ok {
			gs, err = addResource(ctx, res, "ExtGState", "WmGS", types.Dict{
				"Type": types.Name("ExtGState"),
				"ca":   types.Float(d.opt.Opacity),
				"CA":   types.Float(d.opt.Opacity),
			})
			if err != nil {
				return err
			}
			gsNames[d.opt.Opacity] = gs
		}
		p.writeText(&buf, font, gs, d)
	}

	pushRef, err := newStream(ctx, []byte("q\n"))
	if err != nil {
		return err
	}
	textRef, err := newStream(ctx, buf.Bytes())
	if err != nil {
		return err
	}

	contents := types.Array{*pushRef}
	if obj, ok := pageDict["Contents"]; ok && obj != nil {
		old, err := ctx.Dereference(obj)
		if err != nil {
			return err
		}
		if arr, isArray := old.(types.Array); isArray {
			contents = append(contents, arr...)
		} else if old != nil {
			contents = append(contents, obj)
		}
	}
	contents = append(contents, *textRef)

	pageDict["Contents"] = contents
	pageDict["Resources"] = res
	return nil
}

// newStream adds a content stream with the given data to ctx.
func newStream(ctx *model.Context, data []byte) (*types.IndirectRef, error) {
	sd, err := ctx.NewStreamDictForBuf(data)
	if err != nil {
		return nil, err
	}
	err = sd.Encode()
	if err != nil {
		return nil, err
	}
	return ctx.IndRefForNewObject(*sd)
}

func (p *Page) writeText(buf *bytes.Buffer, font, gs string, d draw) {
	r, g, b := d.opt.Color.RGB()
	m := matrix.RotateDeg(d.opt.Rotation).Mul(matrix.Translate(p.llx+d.opt.X, p.lly+d.opt.Y))

	fmt.Fprintf(buf, "q\n/%s gs\n%s %s %s rg\nBT\n/%s %s Tf\n", gs, num(r), num(g), num(b), font, num(d.opt.FontSize))
	fmt.Fprintf(buf, "%s %s %s %s %s %s Tm\n", num(m[0]), num(m[1]), num(m[2]), num(m[3]), num(m[4]), num(m[5]))
	fmt.Fprintf(buf, "<%s> Tj\nET\nQ\n", hex.EncodeToString(d.code))
}

// addResource adds obj to the given category of the resource dictionary res,
// under a name which starts with prefix and is not yet in use.  The
// category dictionary is copied, so that resources shared with other pages
// are not modified.
func addResource(ctx *model.Context, res types.Dict, category, prefix string, obj types.Object) (string, error) {
	sub := types.Dict{}
	if o, ok := res[category]; ok {
		old, err := ctx.DereferenceDict(o)
		if err != nil {
			return "", err
		}
		for k, v := range old {
			sub[k] = v
		}
	}

	var name string
	for i := 1; ; i++ {
		name = prefix + strconv.Itoa(i)
		if _, used := sub[name]; !used {
			break
		}
	}
	sub[name] = obj
	res[category] = sub
	return name, nil
}

// num formats a number for use in a content stream.
func num(x float64) string {
	s := strconv.FormatFloat(x, 'f', 3, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" || s == "" {
		s = "0"
	}
	return s
}
