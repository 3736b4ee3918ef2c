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
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/pdftools/internal/memdoc"
	"seehuhn.de/go/pdftools/pagerange"
	"seehuhn.de/go/pdftools/watermark"
)

func register(lib *memdoc.Library, name string, n int) File {
	sizes := make([]memdoc.Size, n)
	for i := range sizes {
		sizes[i] = memdoc.Letter
	}
	return File{Name: name + ".pdf", Data: lib.Register(name, sizes...)}
}

func decode(t *testing.T, a Artifact) *memdoc.Snapshot {
	t.Helper()
	snap, err := memdoc.Decode(a.Data)
	if err != nil {
		t.Fatal(err)
	}
	return snap
}

func TestSplitCustom(t *testing.T) {
	lib := memdoc.New()
	in := register(lib, "book", 10)

	parts, err := Split(lib, in, pagerange.Custom, "1-4\n5-10", nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(parts) != 2 {
		t.Fatalf("got %d parts, want 2", len(parts))
	}

	var all []int
	for i, want := range []struct {
		name  string
		pages int
	}{
		{"book_Part 1.pdf", 4},
		{"book_Part 2.pdf", 6},
	} {
		if parts[i].Name != want.name {
			t.Errorf("part %d: name %q, want %q", i+1, parts[i].Name, want.name)
		}
		if parts[i].Size != len(parts[i].Data) {
			t.Errorf("part %d: size %d, data length %d", i+1, parts[i].Size, len(parts[i].Data))
		}
		snap := decode(t, parts[i])
		if len(snap.Pages) != want.pages {
			t.Errorf("part %d: %d pages, want %d", i+1, len(snap.Pages), want.pages)
		}
		for _, o := range snap.Origins() {
			all = append(all, o.Index)
		}
	}

	want := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	if d := cmp.Diff(want, all); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
}

func TestSplitEvenly(t *testing.T) {
	lib := memdoc.New()

	parts, err := Split(lib, register(lib, "a", 5), pagerange.Evenly, "", nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(parts) != 2 {
		t.Fatalf("got %d parts", len(parts))
	}
	if n := len(decode(t, parts[0]).Pages); n != 3 {
		t.Errorf("first part has %d pages", n)
	}
	if n := len(decode(t, parts[1]).Pages); n != 2 {
		t.Errorf("second part has %d pages", n)
	}

	parts, err = Split(lib, register(lib, "single", 1), pagerange.Evenly, "", nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(parts) != 1 || parts[0].Name != "single_Part 1.pdf" {
		t.Errorf("unexpected result for single page document: %v", parts)
	}
}

func TestSplitWatermark(t *testing.T) {
	lib := memdoc.New()
	opt := &Options{Watermark: watermark.Config{
		Text:     "COPY",
		FontSize: 20,
		Position: watermark.TopLeft,
		Opacity:  0.5,
	}}

	parts, err := Split(lib, register(lib, "a", 4), pagerange.Custom, "1-2\n2-4", opt)
	if err != nil {
		t.Fatal(err)
	}
	for _, part := range parts {
		for _, p := range decode(t, part).Pages {
			if len(p.Draws) != 1 || p.Draws[0].Text != "COPY" {
				t.Errorf("%s: unexpected draws %v", part.Name, p.Draws)
			}
		}
	}
}

func TestSplitRangeErrors(t *testing.T) {
	lib := memdoc.New()
	in := register(lib, "a", 10)

	_, err := Split(lib, in, pagerange.Custom, "2-5\n7-20", nil)
	var rangeErr *pagerange.RangeError
	if !errors.As(err, &rangeErr) || rangeErr.Line != 2 {
		t.Errorf("expected range error on line 2, got %v", err)
	}

	_, err = Split(lib, in, pagerange.Custom, "abc", nil)
	var formatErr *pagerange.FormatError
	if !errors.As(err, &formatErr) || formatErr.Line != 1 {
		t.Errorf("expected format error on line 1, got %v", err)
	}

	_, err = Split(lib, in, pagerange.Custom, "\n  \n", nil)
	if !errors.Is(err, ErrNoRanges) {
		t.Errorf("expected ErrNoRanges, got %v", err)
	}

	if n := lib.Created(); n != 0 {
		t.Errorf("%d documents created for invalid ranges", n)
	}
}

func TestSplitAllOrNothing(t *testing.T) {
	lib := memdoc.New()
	lib.FailSave = errors.New("disk full")

	parts, err := Split(lib, register(lib, "a", 4), pagerange.Evenly, "", nil)
	if parts != nil {
		t.Errorf("got %d parts despite error", len(parts))
	}
	var libErr *LibraryError
	if !errors.As(err, &libErr) || libErr.Op != "save" {
		t.Errorf("expected save error, got %v", err)
	}
	if !errors.Is(err, lib.FailSave) {
		t.Errorf("cause not preserved: %v", err)
	}
}

func TestSplitLoadError(t *testing.T) {
	lib := memdoc.New()
	_, err := Split(lib, File{Name: "x.pdf", Data: []byte("%PDF-garbage")}, pagerange.Evenly, "", nil)
	var libErr *LibraryError
	if !errors.As(err, &libErr) || libErr.Op != "load" || libErr.File != "x.pdf" {
		t.Errorf("expected load error, got %v", err)
	}
}

func TestSplitProgress(t *testing.T) {
	lib := memdoc.New()
	var steps []float64
	opt := &Options{
		Progress: func(percent float64, msg string) {
			steps = append(steps, percent)
		},
	}
	_, err := Split(lib, register(lib, "a", 10), pagerange.Custom, "1-2\n3-4", opt)
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{0, 20, 40, 65, 90, 100}
	if d := cmp.Diff(want, steps); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
}

func TestMergeOrder(t *testing.T) {
	lib := memdoc.New()
	a := register(lib, "a", 3)
	b := register(lib, "b", 2)

	out, err := Merge(lib, []File{a, b}, "combined", nil)
	if err != nil {
		t.Fatal(err)
	}
	if out.Name != "combined.pdf" {
		t.Errorf("name %q", out.Name)
	}

	want := []memdoc.Origin{
		{Doc: "a", Index: 0}, {Doc: "a", Index: 1}, {Doc: "a", Index: 2},
		{Doc: "b", Index: 0}, {Doc: "b", Index: 1},
	}
	if d := cmp.Diff(want, decode(t, out).Origins()); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
}

func TestMergeMarkers(t *testing.T) {
	lib := memdoc.New()

	const n = 7
	var files []File
	var want []memdoc.Origin
	for i := n - 1; i >= 0; i-- {
		name := fmt.Sprintf("marker%d", i)
		files = append(files, register(lib, name, 1))
		want = append(want, memdoc.Origin{Doc: name})
	}

	out, err := Merge(lib, files, "m.pdf", &Options{Watermark: watermark.Default()})
	if err != nil {
		t.Fatal(err)
	}
	if out.Name != "m.pdf" {
		t.Errorf("name %q", out.Name)
	}
	snap := decode(t, out)
	if d := cmp.Diff(want, snap.Origins()); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
	for i, p := range snap.Pages {
		if len(p.Draws) != 1 {
			t.Errorf("page %d: %d draws", i+1, len(p.Draws))
		}
	}
}

func TestMergeInsufficientInput(t *testing.T) {
	lib := memdoc.New()
	for _, files := range [][]File{nil, {register(lib, "only", 2)}} {
		_, err := Merge(lib, files, "out", nil)
		if !errors.Is(err, ErrInsufficientInput) {
			t.Errorf("%d files: expected ErrInsufficientInput, got %v", len(files), err)
		}
		var inErr *InsufficientInputError
		if !errors.As(err, &inErr) || inErr.Count != len(files) {
			t.Errorf("%d files: got %v", len(files), err)
		}
	}
}

func TestMergeName(t *testing.T) {
	lib := memdoc.New()
	files := []File{register(lib, "a", 1), register(lib, "b", 1)}
	for in, want := range map[string]string{
		"":          DefaultMergedName,
		"out":       "out.pdf",
		"out.pdf":   "out.pdf",
		"out.PDF":   "out.PDF.pdf",
		"a.pdf.txt": "a.pdf.txt.pdf",
	} {
		out, err := Merge(lib, files, in, nil)
		if err != nil {
			t.Fatal(err)
		}
		if out.Name != want {
			t.Errorf("%q: got %q, want %q", in, out.Name, want)
		}
	}
}

func TestMergeLoadError(t *testing.T) {
	lib := memdoc.New()
	files := []File{register(lib, "a", 1), {Name: "broken.pdf", Data: []byte("junk")}}
	_, err := Merge(lib, files, "out", nil)
	var libErr *LibraryError
	if !errors.As(err, &libErr) || libErr.File != "broken.pdf" {
		t.Errorf("expected load error for broken.pdf, got %v", err)
	}
}

func TestInvalidWatermark(t *testing.T) {
	lib := memdoc.New()
	opt := &Options{Watermark: watermark.Config{Text: "x", FontSize: 0, Opacity: 0.5}}
	_, err := Split(lib, register(lib, "a", 2), pagerange.Evenly, "", opt)
	if err == nil {
		t.Error("expected error for invalid watermark")
	}

	// an invalid configuration without text is never used
	opt.Watermark.Text = ""
	_, err = Split(lib, register(lib, "a", 2), pagerange.Evenly, "", opt)
	if err != nil {
		t.Error(err)
	}
}

func TestWatermarkSnapshot(t *testing.T) {
	lib := memdoc.New()
	opt := &Options{Watermark: watermark.Default()}
	opt.Progress = func(percent float64, msg string) {
		// changes made while the operation runs have no effect
		opt.Watermark.Text = "CHANGED"
	}

	out, err := Merge(lib, []File{register(lib, "a", 1), register(lib, "b", 1)}, "x", opt)
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range decode(t, out).Pages {
		if p.Draws[0].Text != watermark.Default().Text {
			t.Errorf("got watermark %q", p.Draws[0].Text)
		}
	}
}

func TestBaseName(t *testing.T) {
	cases := map[string]string{
		"report.pdf":       "report",
		"dir/report.PDF":   "report",
		"report":           "report",
		"archive.pdf.bak":  "archive.pdf.bak",
		"":                 "document",
		"my.report.v2.pdf": "my.report.v2",
	}
	for in, want := range cases {
		if got := baseName(in); got != want {
			t.Errorf("%q: got %q, want %q", in, got, want)
		}
	}
}
