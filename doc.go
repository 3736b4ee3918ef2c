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

// Package pdftools splits PDF files into parts, merges PDF files, and
// stamps text watermarks on the resulting pages.
//
// [Split] divides one file into several parts, as determined by the
// [seehuhn.de/go/pdftools/pagerange] package.  [Merge] concatenates several
// files.  Both operations optionally add a watermark, described by a
// [seehuhn.de/go/pdftools/watermark.Config], to every output page.
//
// The PDF files themselves are handled by an [assemble.Library].  For
// production use, [seehuhn.de/go/pdftools/codec.New] returns a library based
// on pdfcpu:
//
//	lib := codec.New(nil)
//	parts, err := pdftools.Split(lib, pdftools.File{Name: "report.pdf", Data: data},
//		pagerange.Custom, "1-4\n5-10", &pdftools.Options{Watermark: watermark.Default()})
//
// Operations are all-or-nothing: if any step fails, no output is returned.
package pdftools
