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

package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/pdftools/pagerange"
	"seehuhn.de/go/pdftools/watermark"
)

func TestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "settings.json")

	s, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(Defaults(), s.Load()); d != "" {
		t.Errorf("empty store (-want +got):\n%s", d)
	}

	want := Settings{
		Watermark: watermark.Config{
			Text:     "CONFIDENTIAL",
			FontSize: 48,
			Position: watermark.Tiled,
			Opacity:  0.25,
			Color:    watermark.Color{0x12, 0x34, 0x56},
		},
		SplitMode:      pagerange.Custom,
		PageRanges:     "1-3\n4-9",
		MergedFileName: "all.pdf",
	}
	err = s.Save(want)
	if err != nil {
		t.Fatal(err)
	}

	s2, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(want, s2.Load()); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
	if d := cmp.Diff([]string{KeyMergedFileName, KeyPageRanges, KeySplitType, KeyWatermark}, s2.Keys()); d != "" {
		t.Errorf("keys (-want +got):\n%s", d)
	}
}

func TestEmptyValuesNotStored(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	s, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}

	err = s.Save(Settings{
		Watermark:      watermark.Default(),
		SplitMode:      pagerange.Custom,
		PageRanges:     "1-2",
		MergedFileName: "x.pdf",
	})
	if err != nil {
		t.Fatal(err)
	}
	err = s.Save(Settings{Watermark: watermark.Default(), SplitMode: pagerange.Evenly})
	if err != nil {
		t.Fatal(err)
	}

	got := s.Load()
	if got.PageRanges != "1-2" || got.MergedFileName != "x.pdf" {
		t.Errorf("stored values overwritten: %q, %q", got.PageRanges, got.MergedFileName)
	}
	if got.SplitMode != pagerange.Evenly {
		t.Errorf("split mode %v", got.SplitMode)
	}
}

func TestMalformedValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	s, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	s.Set(KeyWatermark, `{"text":"x","size":-1,"position":"center","opacity":0.5,"color":"#000000"}`)
	s.Set(KeySplitType, "sideways")
	s.Set(KeyPageRanges, "2-4")

	got := s.Load()
	want := Defaults()
	want.PageRanges = "2-4"
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}

	s.Set(KeyWatermark, "not json")
	if d := cmp.Diff(watermark.Default(), s.Load().Watermark); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
}

func TestCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	err := os.WriteFile(path, []byte("{garbage"), 0o644)
	if err != nil {
		t.Fatal(err)
	}

	s, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(s.Keys()) != 0 {
		t.Errorf("unexpected keys %v", s.Keys())
	}

	// the corrupt file is replaced on the next save
	err = s.Save(Defaults())
	if err != nil {
		t.Fatal(err)
	}
	s2, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := s2.Get(KeyWatermark); !ok {
		t.Error("watermark not stored")
	}
}

func TestNonStringEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	body := `{
  "pdfTools_splitType": "custom",
  "pdfTools_pageRanges": 5,
  "pdfTools_watermark": {"text": "x"},
  "pdfTools_mergedFileName": "a.pdf",
  "other": null
}`
	err := os.WriteFile(path, []byte(body), 0o644)
	if err != nil {
		t.Fatal(err)
	}

	s, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff([]string{KeyMergedFileName, KeySplitType}, s.Keys()); d != "" {
		t.Errorf("keys (-want +got):\n%s", d)
	}
	want := Defaults()
	want.SplitMode = pagerange.Custom
	want.MergedFileName = "a.pdf"
	if d := cmp.Diff(want, s.Load()); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}

	// the remaining entries survive a save
	err = s.Save(s.Load())
	if err != nil {
		t.Fatal(err)
	}
	s2, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if v, _ := s2.Get(KeyMergedFileName); v != "a.pdf" {
		t.Errorf("merged file name %q", v)
	}
	if v, _ := s2.Get(KeySplitType); v != "custom" {
		t.Errorf("split type %q", v)
	}
}

func TestResetWatermark(t *testing.T) {
	s := Settings{
		Watermark:  watermark.Config{Text: "x", FontSize: 5, Opacity: 1},
		SplitMode:  pagerange.Custom,
		PageRanges: "1-1",
	}
	s.ResetWatermark()
	want := Settings{
		Watermark:  watermark.Default(),
		SplitMode:  pagerange.Custom,
		PageRanges: "1-1",
	}
	if d := cmp.Diff(want, s); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
}

func TestDelete(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "settings.json"))
	if err != nil {
		t.Fatal(err)
	}
	s.Set(KeyMergedFileName, "a.pdf")
	s.Delete(KeyMergedFileName)
	if _, ok := s.Get(KeyMergedFileName); ok {
		t.Error("value not deleted")
	}
}
