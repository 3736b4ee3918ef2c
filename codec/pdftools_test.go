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

package codec_test

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"testing"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/pdftools"
	"seehuhn.de/go/pdftools/codec"
	"seehuhn.de/go/pdftools/pagerange"
	"seehuhn.de/go/pdftools/watermark"
)

// pageContents returns the media box width and the decoded content of
// every page of a PDF file.
func pageContents(t *testing.T, data []byte) ([]float64, []string) {
	t.Helper()
	ctx, err := api.ReadValidateAndOptimize(bytes.NewReader(data), model.NewDefaultConfiguration())
	require.NoError(t, err)
	require.NoError(t, ctx.EnsurePageCount())

	var widths []float64
	var contents []string
	for nr := 1; nr <= ctx.PageCount; nr++ {
		pageDict, _, inh, err := ctx.PageDict(nr, false)
		require.NoError(t, err)
		require.NotNil(t, inh)
		require.NotNil(t, inh.MediaBox)
		widths = append(widths, inh.MediaBox.Width())

		content, err := ctx.PageContent(pageDict, nr)
		require.NoError(t, err)
		contents = append(contents, string(content))
	}
	return widths, contents
}

func TestSplitWithDefaultWatermark(t *testing.T) {
	lib := codec.New(nil)
	in := pdftools.File{Name: "report.pdf", Data: codec.MakePDF(100, 110, 120, 130, 140)}
	opt := &pdftools.Options{Watermark: watermark.Default()}

	parts, err := pdftools.Split(lib, in, pagerange.Evenly, "", opt)
	require.NoError(t, err)
	require.Len(t, parts, 2)

	text := "<" + hex.EncodeToString([]byte("SAMPLE")) + "> Tj"
	wantNames := []string{"report_Part 1.pdf", "report_Part 2.pdf"}
	wantWidths := [][]float64{{100, 110, 120}, {130, 140}}
	for i, part := range parts {
		assert.Equal(t, wantNames[i], part.Name)
		assert.Equal(t, len(part.Data), part.Size)

		widths, contents := pageContents(t, part.Data)
		assert.Equal(t, wantWidths[i], widths, "part %d", i+1)
		for j, s := range contents {
			orig := fmt.Sprintf("0 0 m %g 500 l S", widths[j])
			assert.Contains(t, s, orig, "part %d, page %d", i+1, j+1)
			assert.Contains(t, s, text, "part %d, page %d", i+1, j+1)
		}
	}
}

func TestMergeWithDefaultWatermark(t *testing.T) {
	lib := codec.New(nil)
	files := []pdftools.File{
		{Name: "a.pdf", Data: codec.MakePDF(100, 110)},
		{Name: "b.pdf", Data: codec.MakePDF(200)},
		{Name: "c.pdf", Data: codec.MakePDF(300, 310)},
	}
	opt := &pdftools.Options{Watermark: watermark.Default()}

	out, err := pdftools.Merge(lib, files, "all", opt)
	require.NoError(t, err)
	assert.Equal(t, "all.pdf", out.Name)

	widths, contents := pageContents(t, out.Data)
	assert.Equal(t, []float64{100, 110, 200, 300, 310}, widths)
	text := "<" + hex.EncodeToString([]byte("SAMPLE")) + "> Tj"
	for j, s := range contents {
		assert.Contains(t, s, fmt.Sprintf("0 0 m %g 500 l S", widths[j]), "page %d", j+1)
		assert.Contains(t, s, text, "page %d", j+1)
	}
}

func TestSplitWithoutWatermark(t *testing.T) {
	lib := codec.New(nil)
	in := pdftools.File{Name: "report.pdf", Data: codec.MakePDF(100, 110, 120)}

	parts, err := pdftools.Split(lib, in, pagerange.Custom, "2-3\n1-1", nil)
	require.NoError(t, err)
	require.Len(t, parts, 2)

	widths, contents := pageContents(t, parts[0].Data)
	assert.Equal(t, []float64{110, 120}, widths)
	assert.Contains(t, contents[0], "0 0 m 110 500 l S")
	assert.NotContains(t, contents[0], " Tj")

	widths, _ = pageContents(t, parts[1].Data)
	assert.Equal(t, []float64{100}, widths)
}
