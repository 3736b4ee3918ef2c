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

// Pdf-split divides a PDF file into parts.
//
// The parts are either the two halves of the document, or given by a list
// of page ranges.  Optionally, a text watermark is added to every page of
// the output.  Settings are remembered between runs.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"seehuhn.de/go/pdftools"
	"seehuhn.de/go/pdftools/codec"
	"seehuhn.de/go/pdftools/pagerange"
	"seehuhn.de/go/pdftools/tools/internal/cli"
)

var (
	modeArg    = flag.String("mode", "", "split `mode`: evenly or custom (default: last used mode)")
	rangesFile = flag.String("ranges-file", "", "read page ranges from `file`, one START-END per line")
	outDir     = flag.String("o", ".", "output `directory`")
	force      = flag.Bool("f", false, "overwrite output files if they exist")

	rangesArg pagerange.Flag

	wmFlags = cli.AddWatermarkFlags(flag.CommandLine)
	common  = cli.AddCommonFlags(flag.CommandLine)
)

func main() {
	flag.Var(&rangesArg, "ranges", "page `ranges` like \"1-3,4-10\", implies -mode custom")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "pdf-split \u2014 divide a PDF file into parts\n")
		fmt.Fprintf(os.Stderr, "%s\n\n", cli.Version("pdf-split"))
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  pdf-split [options] <file.pdf>\n\n")
		fmt.Fprintf(os.Stderr, "The output files are named after the input file and the part,\n")
		fmt.Fprintf(os.Stderr, "e.g. \"report_Part 1.pdf\".\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  pdf-split report.pdf\n")
		fmt.Fprintf(os.Stderr, "  pdf-split -ranges 1-4,5-10 -o parts report.pdf\n")
		fmt.Fprintf(os.Stderr, "  pdf-split -text DRAFT -position diagonal report.pdf\n")
	}
	flag.Parse()

	if common.Version {
		fmt.Println(cli.Version("pdf-split"))
		return
	}
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	log := cli.NewLogger(os.Stderr, common.Verbose)
	if err := run(log, flag.Arg(0)); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(log *logrus.Logger, fname string) error {
	stop, err := cli.StartProfile(common.CPUProfile, common.MemProfile, log)
	if err != nil {
		return err
	}
	defer stop()

	store, err := common.OpenSettings()
	if err != nil {
		return err
	}
	cur := common.LoadSettings(store)
	err = wmFlags.Apply(&cur.Watermark)
	if err != nil {
		return err
	}

	switch {
	case *rangesFile != "":
		data, err := os.ReadFile(*rangesFile)
		if err != nil {
			return err
		}
		cur.PageRanges = string(data)
		cur.SplitMode = pagerange.Custom
	case cli.IsSet(flag.CommandLine, "ranges"):
		cur.PageRanges = rangesArg.Text()
		cur.SplitMode = pagerange.Custom
	}
	if *modeArg != "" {
		cur.SplitMode, err = pagerange.ParseMode(*modeArg)
		if err != nil {
			return err
		}
	}

	data, err := os.ReadFile(fname)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"file":  fname,
		"bytes": len(data),
		"mode":  cur.SplitMode,
	}).Debug("splitting")

	progress := cli.NewProgress(os.Stderr, log)
	parts, err := pdftools.Split(codec.New(nil), pdftools.File{Name: fname, Data: data},
		cur.SplitMode, cur.PageRanges, &pdftools.Options{
			Watermark: cur.Watermark,
			Progress:  progress.Update,
		})
	progress.Done()
	if err != nil {
		return err
	}

	// check all names first, so that either all parts are written or none
	names := make([]string, len(parts))
	for i, part := range parts {
		names[i] = filepath.Join(*outDir, part.Name)
		err := cli.CheckOutput(names[i], *force)
		if err != nil {
			return err
		}
	}
	err = os.MkdirAll(*outDir, 0o755)
	if err != nil {
		return err
	}
	for i, part := range parts {
		err := os.WriteFile(names[i], part.Data, 0o644)
		if err != nil {
			return err
		}
		log.WithFields(logrus.Fields{
			"artifact": names[i],
			"size":     cli.FormatSize(int64(part.Size)),
		}).Info("written")
	}

	if store != nil {
		err = store.Save(cur)
		if err != nil {
			log.WithError(err).Warn("could not save settings")
		}
	}
	return nil
}
