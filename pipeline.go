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
	"fmt"
	"path/filepath"
	"strings"

	"seehuhn.de/go/pdftools/assemble"
	"seehuhn.de/go/pdftools/pagerange"
	"seehuhn.de/go/pdftools/watermark"
)

// DefaultMergedName is the name of the merged file if no name is given.
const DefaultMergedName = "merged.pdf"

// File is an input PDF file.
type File struct {
	Name string
	Data []byte
}

// Artifact is an output PDF file.
type Artifact struct {
	Name string
	Data []byte
	Size int
}

// Options control [Split] and [Merge].
type Options struct {
	// Watermark is drawn on every output page, unless Watermark.Text is
	// empty.  The configuration is copied when an operation starts.
	Watermark watermark.Config

	// Progress, if not nil, is called after every major step of an
	// operation, with the percentage of work done and a description of the
	// step.
	Progress func(percent float64, msg string)
}

// run holds the state of a single Split or Merge call.
type run struct {
	wm       *watermark.Config
	progress func(float64, string)
}

func newRun(opt *Options) (*run, error) {
	r := &run{}
	if opt == nil {
		return r, nil
	}
	r.progress = opt.Progress
	if opt.Watermark.Enabled() {
		wm := opt.Watermark
		err := wm.Validate()
		if err != nil {
			return nil, fmt.Errorf("watermark: %w", err)
		}
		r.wm = &wm
	}
	return r, nil
}

func (r *run) report(percent float64, format string, args ...any) {
	if r.progress == nil {
		return
	}
	r.progress(percent, fmt.Sprintf(format, args...))
}

// Split divides a PDF file into parts, one part for every page range.
// The ranges are determined by [pagerange.Resolve], using the given mode and
// range text.
//
// The output files are named after the input file and the range labels,
// e.g. "report_Part 1.pdf".
//
// If the ranges are invalid, the error is a [*pagerange.FormatError] or
// [*pagerange.RangeError].  Failures of the PDF library are reported as
// [*LibraryError].
func Split(lib assemble.Library, in File, mode pagerange.Mode, rangeText string, opt *Options) ([]Artifact, error) {
	r, err := newRun(opt)
	if err != nil {
		return nil, err
	}

	r.report(0, "loading %s", in.Name)
	src, err := lib.Load(in.Data)
	if err != nil {
		return nil, &LibraryError{Op: "load", File: in.Name, Err: err}
	}
	numPages := src.NumPages()
	r.report(20, "loaded %s, %d pages", in.Name, numPages)

	ranges, err := pagerange.Resolve(numPages, mode, rangeText)
	if err != nil {
		return nil, err
	}
	if len(ranges) == 0 {
		return nil, ErrNoRanges
	}
	r.report(40, "splitting into %d parts", len(ranges))

	base := baseName(in.Name)
	res := make([]Artifact, 0, len(ranges))
	for i, rng := range ranges {
		doc, err := assemble.Assemble(lib, []assemble.Source{
			{Doc: src, Pages: rng.Indices()},
		}, r.wm)
		if err != nil {
			return nil, &LibraryError{Op: "split", File: in.Name, Err: fmt.Errorf("pages %s: %w", rng, err)}
		}

		name := base + "_" + rng.Label + ".pdf"
		data, err := doc.Save()
		if err != nil {
			return nil, &LibraryError{Op: "save", File: name, Err: err}
		}
		res = append(res, Artifact{Name: name, Data: data, Size: len(data)})

		r.report(40+float64(i+1)*50/float64(len(ranges)),
			"part %d/%d done (pages %s)", i+1, len(ranges), rng)
	}

	r.report(100, "split complete")
	return res, nil
}

// Merge concatenates PDF files, in the order given.  The output file gets
// the given name, with ".pdf" appended if needed.  If outputName is empty,
// [DefaultMergedName] is used.
//
// At least two files must be given, otherwise an [*InsufficientInputError]
// is returned.  Failures of the PDF library are reported as [*LibraryError].
func Merge(lib assemble.Library, files []File, outputName string, opt *Options) (Artifact, error) {
	if len(files) < 2 {
		return Artifact{}, &InsufficientInputError{Count: len(files)}
	}
	r, err := newRun(opt)
	if err != nil {
		return Artifact{}, err
	}

	sources := make([]assemble.Source, 0, len(files))
	for i, f := range files {
		r.report(float64(i)/float64(len(files))*80,
			"processing file %d/%d: %s", i+1, len(files), f.Name)

		doc, err := lib.Load(f.Data)
		if err != nil {
			return Artifact{}, &LibraryError{Op: "load", File: f.Name, Err: err}
		}
		pages := make([]int, doc.NumPages())
		for j := range pages {
			pages[j] = j
		}
		sources = append(sources, assemble.Source{Doc: doc, Pages: pages})
	}

	if r.wm != nil {
		r.report(90, "merging and adding watermark")
	} else {
		r.report(90, "merging")
	}
	doc, err := assemble.Assemble(lib, sources, r.wm)
	if err != nil {
		return Artifact{}, &LibraryError{Op: "merge", Err: err}
	}

	name := outputName
	if name == "" {
		name = DefaultMergedName
	} else if !strings.HasSuffix(name, ".pdf") {
		name += ".pdf"
	}

	data, err := doc.Save()
	if err != nil {
		return Artifact{}, &LibraryError{Op: "save", File: name, Err: err}
	}

	r.report(100, "merge complete")
	return Artifact{Name: name, Data: data, Size: len(data)}, nil
}

// baseName strips the directory and a trailing ".pdf" extension (in any
// case) from a file name.
func baseName(name string) string {
	if name == "" {
		return "document"
	}
	name = filepath.Base(name)
	if ext := filepath.Ext(name); strings.EqualFold(ext, ".pdf") {
		name = strings.TrimSuffix(name, ext)
	}
	return name
}
