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

// Pdf-merge concatenates PDF files.
//
// The pages of all input files are copied to the output, in the order
// the files are given on the command line.  Optionally, a text watermark
// is added to every page.  Settings are remembered between runs.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"seehuhn.de/go/pdftools"
	"seehuhn.de/go/pdftools/codec"
	"seehuhn.de/go/pdftools/tools/internal/cli"
)

var (
	outArg = flag.String("o", "", "output file `name` (default: last used name, or \""+pdftools.DefaultMergedName+"\")")
	force  = flag.Bool("f", false, "overwrite output file if it exists")

	wmFlags = cli.AddWatermarkFlags(flag.CommandLine)
	common  = cli.AddCommonFlags(flag.CommandLine)
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "pdf-merge \u2014 concatenate PDF files\n")
		fmt.Fprintf(os.Stderr, "%s\n\n", cli.Version("pdf-merge"))
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  pdf-merge [options] <a.pdf> <b.pdf>...\n\n")
		fmt.Fprintf(os.Stderr, "Arguments:\n")
		fmt.Fprintf(os.Stderr, "  a.pdf, b.pdf, ...   two or more PDF files, in output order\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  pdf-merge -o book.pdf ch1.pdf ch2.pdf ch3.pdf\n")
		fmt.Fprintf(os.Stderr, "  pdf-merge -text \"\" a.pdf b.pdf\n")
	}
	flag.Parse()

	if common.Version {
		fmt.Println(cli.Version("pdf-merge"))
		return
	}
	if flag.NArg() < 2 {
		flag.Usage()
		os.Exit(1)
	}

	log := cli.NewLogger(os.Stderr, common.Verbose)
	if err := run(log, flag.Args()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(log *logrus.Logger, fnames []string) error {
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
	if *outArg != "" {
		cur.MergedFileName = *outArg
	}

	files := make([]pdftools.File, len(fnames))
	for i, fname := range fnames {
		data, err := os.ReadFile(fname)
		if err != nil {
			return err
		}
		files[i] = pdftools.File{Name: fname, Data: data}
		log.WithFields(logrus.Fields{
			"file":  fname,
			"bytes": len(data),
		}).Debug("input")
	}

	progress := cli.NewProgress(os.Stderr, log)
	out, err := pdftools.Merge(codec.New(nil), files, cur.MergedFileName, &pdftools.Options{
		Watermark: cur.Watermark,
		Progress:  progress.Update,
	})
	progress.Done()
	if err != nil {
		return err
	}

	err = cli.CheckOutput(out.Name, *force)
	if err != nil {
		return err
	}
	err = os.WriteFile(out.Name, out.Data, 0o644)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"artifact": out.Name,
		"files":    len(files),
		"size":     cli.FormatSize(int64(out.Size)),
	}).Info("written")

	if store != nil {
		err = store.Save(cur)
		if err != nil {
			log.WithError(err).Warn("could not save settings")
		}
	}
	return nil
}
